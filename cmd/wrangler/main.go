package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bridgewrangler/internal/config"
	"bridgewrangler/internal/logging"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Loaded user config and logger, available to all subcommands.
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "wrangler",
	Short: "CLI tool for operations on bridge PBN files",
	Long: `wrangler performs operations on bridge deal records in PBN format.

Its core command, rotate, rewrites deal records so the same hands can
be replayed with different seat assignments - for example reusing one
set of hands across multiple tables with seats rotated. Everything the
tool does not understand in a source file is copied byte-for-byte.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}

		logger, err = logging.Build(cfg.GetLogging(), verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to .wrangler.yaml config file")

	rootCmd.AddCommand(rotateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
