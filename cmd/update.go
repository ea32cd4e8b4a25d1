package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/wellcheck/internal/selfupdate"
)

// binaryName is the executable name inside release archives, fixed even
// when releases come from a fork.
const binaryName = "wellcheck"

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update wellcheck to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("resolve config: %w", err)
		}
		repo, err := selfupdate.ParseRepository(cfg.UpdateRepo)
		if err != nil {
			return err
		}
		checker := selfupdate.NewChecker(
			selfupdate.WithRepository(repo),
			selfupdate.WithBinaryName(binaryName),
			selfupdate.WithTimeout(2*time.Minute),
		)

		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		out := cmd.OutOrStdout()
		target, _ := cmd.Flags().GetString("to")
		err = checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  target,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Fprintln(out, p.Message)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Fprintln(out, "Cannot update a development build. Install a release build first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Fprintln(out, "Already running the latest version.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nTry running: sudo wellcheck update", err)
		}
		return err
	},
}

func init() {
	updateCmd.Flags().String("to", "", "Install a specific release tag instead of the latest")
}
