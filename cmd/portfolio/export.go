package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"troywu.dev/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Write the portfolio as a static site",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, err := loadAll()
		if err != nil {
			return err
		}

		res, err := export.New(args[0], cfg.StaticDir, cfg.View.Lookahead).Export(p)
		if err != nil {
			return err
		}
		logger.Info("Export complete",
			zap.String("dir", args[0]),
			zap.Strings("files", res.Files),
			zap.Int("static_files", res.Copied))
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d files (%d static) to %s\n", len(res.Files), res.Copied, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
