package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/wellcheck/internal/app"
	"github.com/abhisek/wellcheck/internal/config"
	"github.com/abhisek/wellcheck/internal/hostmsg"
)

// runApp resolves configuration, opens the host sink, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	sink, closeSink, err := openSink(cfg)
	if err != nil {
		return err
	}
	defer closeSink()

	skipIntro, _ := cmd.Flags().GetBool("skip-intro")
	return app.Run(app.Options{
		Sink:           sink,
		RedirectTarget: cfg.RedirectTarget,
		SkipWelcome:    skipIntro,
	})
}

// openSink builds the host sink wrapped with delivery logging. The
// returned func releases the sink and log file.
func openSink(cfg config.Config) (hostmsg.Sink, func(), error) {
	sink, sinkCloser, err := hostmsg.Open(cfg.HostOutput)
	if err != nil {
		return nil, nil, fmt.Errorf("open host output: %w", err)
	}

	var logOut io.Writer = io.Discard
	var logFile *os.File
	if cfg.LogFile != "" {
		logFile, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			// Logging is best effort; the assessment still runs.
			fmt.Fprintf(os.Stderr, "warning: open log file: %v\n", err)
		} else {
			logOut = logFile
		}
	}

	closeAll := func() {
		if err := sinkCloser.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: close host output: %v\n", err)
		}
		if logFile != nil {
			logFile.Close()
		}
	}
	return hostmsg.WithLogging(sink, logOut), closeAll, nil
}
