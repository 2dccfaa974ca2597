package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"messdigest/internal/config"
)

var forceInit bool

// initCmd writes a starter config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file to the --config path",
	Long: `Writes the default configuration as YAML so it can be edited.
Secrets are better supplied through the environment:
  SPREADSHEET_ID, OPENAI_API_KEY or GEMINI_API_KEY,
  EMAIL_USER, EMAIL_APP_PASSWORD, TARGET_EMAIL

An existing file is kept unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

// runInit saves the default configuration to configPath
func runInit(cmd *cobra.Command, args []string) error {
	return writeDefaultConfig(cmd, configPath, forceInit)
}

func writeDefaultConfig(cmd *cobra.Command, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return err
	}
	logger.Info("wrote default config", zap.String("path", path))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
