package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"troywu.dev/internal/handlers"
	"troywu.dev/internal/services"
	"troywu.dev/internal/watcher"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, p, err := loadAll()
		if err != nil {
			return err
		}
		if serveAddr != "" {
			cfg.ServerAddr = serveAddr
		}

		contentService := services.NewContentService(p, cfg.ContentPath, logger)
		router, err := handlers.SetupRoutes(cfg, contentService, logger)
		if err != nil {
			return fmt.Errorf("setting up routes: %w", err)
		}

		srv := &http.Server{
			Addr:              cfg.ServerAddr,
			Handler:           router,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
			IdleTimeout:       120 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		g, ctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			logger.Info("Server starting", zap.String("addr", cfg.ServerAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("listening on %s: %w", cfg.ServerAddr, err)
			}
			return nil
		})

		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			logger.Info("Server shutting down")
			return srv.Shutdown(shutdownCtx)
		})

		if cfg.Watch && cfg.ContentPath != "" {
			w := watcher.New(cfg.ContentPath, 0, func() {
				// Reload logs its own failures and keeps the old content.
				_ = contentService.Reload()
			}, logger)
			g.Go(func() error { return w.Run(ctx) })
		}

		return g.Wait()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server_addr)")
	rootCmd.AddCommand(serveCmd)
}
