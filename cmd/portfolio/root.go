package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"troywu.dev/internal/config"
	"troywu.dev/internal/content"
	"troywu.dev/internal/logging"
	"troywu.dev/internal/models"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site and terminal viewer",
	Long: `portfolio serves a single-page portfolio over HTTP, renders the same
content in the terminal, or exports it as a static site.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The terminal UI owns stdout and stderr and sets up its own logger.
		if cmd.Name() == "tui" || cmd.Name() == "version" {
			return nil
		}
		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l
		zap.ReplaceGlobals(logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "portfolio.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadAll reads the configuration and the portfolio it points at
func loadAll() (*config.Config, *models.Portfolio, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	p, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading content: %w", err)
	}
	return cfg, p, nil
}
