package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"messdigest/internal/config"
	"messdigest/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Run flags
	runDate string

	// Loaded in PersistentPreRunE
	appConfig *config.Config
	logger    *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "digest",
	Short: "Daily mess complaint digest",
	Long: `digest reads the complaint spreadsheet, keeps the rows submitted today,
asks a text-generation provider for an HTML summary and mails it.

Run without arguments to perform one run for the current day.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg

		opts := loggingOptions(cfg)
		if verbose {
			opts.Level = "debug"
		}
		logger, err = logging.New(opts)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runDigest,
}

// runCmd performs one pipeline run
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Fetch, filter, summarize and mail today's complaints",
	Long: `Performs a single run:
  1. Fetch every row of the first sheet
  2. Keep rows whose timestamp falls on today's date
  3. Request an HTML summary of the kept complaints
  4. Mail the summary to the configured recipient

The command exits non-zero only when the spreadsheet cannot be read.

Example:
  digest run --date 2024-03-15`,
	Args: cobra.NoArgs,
	RunE: runDigest,
}

// parseDateCmd explains how timestamps are read
var parseDateCmd = &cobra.Command{
	Use:   "parse-date [timestamp...]",
	Short: "Show how raw sheet timestamps are interpreted",
	Long: `Prints the layout and calendar instant each argument parses to.

Examples:
  digest parse-date "03/15/2024" "15/03/2024 08:00"`,
	Args: cobra.MinimumNArgs(1),
	RunE: parseDates,
}

// checkCmd validates configuration and mail connectivity
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and verify the SMTP server without sending",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "digest.yaml", "Config file (optional; environment overrides)")

	rootCmd.Flags().StringVar(&runDate, "date", "", "Run for this day (YYYY-MM-DD) instead of today")
	runCmd.Flags().StringVar(&runDate, "date", "", "Run for this day (YYYY-MM-DD) instead of today")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(parseDateCmd)
	rootCmd.AddCommand(checkCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loggingOptions(cfg *config.Config) logging.Options {
	return logging.Options{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		File:       cfg.Logging.File,
		Categories: cfg.Logging.Categories,
	}
}
