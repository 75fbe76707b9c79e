package commands

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pdfcraft/pdfcraft/internal/config"
	"github.com/pdfcraft/pdfcraft/internal/observability"
	"github.com/pdfcraft/pdfcraft/internal/store"
)

var sweepOlderThan time.Duration

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove expired scratch files once",
	Long:  "Delete uploads and outputs older than the retention window. Uses the same configuration as the server.",
	RunE:  runSweep,
}

func init() {
	sweepCmd.Flags().DurationVar(&sweepOlderThan, "older-than", 0, "Override the configured retention window")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	retention := cfg.Storage.Retention
	if sweepOlderThan > 0 {
		retention = sweepOlderThan
	}

	logger := observability.NewTestLogger()
	if verbose {
		logger = observability.NewLogger(observability.LogConfig{
			Level:       "debug",
			Format:      "console",
			ServiceName: cfg.Observability.ServiceName,
		})
	}

	st, err := store.New(cfg.Storage.UploadDir, cfg.Storage.OutputDir, logger)
	if err != nil {
		return fmt.Errorf("open scratch storage: %w", err)
	}

	sweeper := store.NewSweeper(st, cfg.Storage.SweepInterval, retention, logger)
	removed := sweeper.SweepOnce(time.Now())

	color.Green("Removed %d expired file(s) older than %s", removed, retention)
	return nil
}
