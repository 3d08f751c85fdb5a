package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"troywu.dev/internal/logging"
	"troywu.dev/internal/tui"
)

var tuiLogFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the portfolio in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, err := loadAll()
		if err != nil {
			return err
		}

		if tuiLogFile != "" {
			cfg.LogFile = tuiLogFile
		}
		l, err := logging.NewFile(cfg.LogFile, verbose)
		if err != nil {
			return err
		}
		logger = l

		m := tui.NewModel(p, tui.Options{
			Lookahead:    cfg.View.Lookahead,
			RowUnits:     cfg.View.RowUnits,
			FPS:          cfg.View.FPS,
			GlamourStyle: cfg.View.GlamourStyle,
			Logger:       logger,
		})

		prog := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := prog.Run(); err != nil {
			return fmt.Errorf("running terminal view: %w", err)
		}
		return nil
	},
}

func init() {
	tuiCmd.Flags().StringVar(&tuiLogFile, "log-file", "", "write logs to this file (overrides log_file)")
	rootCmd.AddCommand(tuiCmd)
}
