package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/wellcheck/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "wellcheck",
	Short: "Hormone balance self-assessment",
	Long:  "Wellcheck — a five-question terminal questionnaire that scores hormone-balance symptoms.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("host-output", "", `Where host messages go: "none", "stdout", "stderr" or a file path (overrides WELLCHECK_HOST_OUTPUT)`)
	rootCmd.PersistentFlags().String("log-file", "", "File for operational logs (overrides WELLCHECK_LOG_FILE)")
	rootCmd.PersistentFlags().String("redirect-target", "", "Host element named in redirect messages (overrides WELLCHECK_REDIRECT_TARGET)")
	rootCmd.Flags().Bool("skip-intro", false, "Start at the first question")

	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads configuration from the environment, then applies
// flags, which take the highest priority.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	if v, _ := cmd.Flags().GetString("host-output"); v != "" {
		cfg.HostOutput = v
	}
	if v, _ := cmd.Flags().GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if v, _ := cmd.Flags().GetString("redirect-target"); v != "" {
		cfg.RedirectTarget = v
	}
	return cfg, nil
}
