package commands

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cashlens-dev/cashlens/internal/buildinfo"
	"github.com/cashlens-dev/cashlens/internal/config"
	"github.com/cashlens-dev/cashlens/internal/model"
)

const defaultConfigFile = "cashlens.yaml"

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:     "cashlens",
		Short:   "Underwriting analytics for classified bank transactions",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logrus.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("parsing log level: %w", err)
			}
			logrus.SetLevel(level)

			// The category table is a build-time invariant; a hole in it
			// means every analysis silently misbuckets.
			if missing := model.ValidateMapping(nil); len(missing) > 0 {
				return fmt.Errorf("category/bucket table incomplete: %v", missing)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAnalyzeCommand())
	rootCmd.AddCommand(newBucketsCommand())
	rootCmd.AddCommand(newReconcileCommand())

	return rootCmd
}

// loadConfig loads the named config file, or cashlens.yaml from the
// working directory, or defaults when neither exists.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return config.Load(defaultConfigFile)
	}
	return config.Default(), nil
}
