package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/pawerflow/question-service/internal/config"
	"github.com/pawerflow/question-service/internal/service/tag"
)

// Run is the application entry point. It loads configuration, connects the
// storage driver, seeds the tag catalog and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
	)

	c, err := openStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.close()

	if cfg.Questions.SeedTagsOnStartup {
		if err := c.registry.Seed(ctx, tag.DefaultCatalog()); err != nil {
			return fmt.Errorf("seed tag catalog: %w", err)
		}
	}

	handler, stopHandler := newHandler(cfg, logger, c)
	defer stopHandler()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.InfoContext(gctx, "http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve http: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
