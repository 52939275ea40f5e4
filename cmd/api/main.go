package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"portfolio-gallery/internal/catalogue"
	"portfolio-gallery/internal/config"
	"portfolio-gallery/internal/db"
	"portfolio-gallery/internal/httpserver"
	"portfolio-gallery/internal/logging"
	projectrepo "portfolio-gallery/internal/repository/project"
	gallerysvc "portfolio-gallery/internal/service/gallery"
	sessionsvc "portfolio-gallery/internal/service/session"
	"portfolio-gallery/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "api")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cat, pool, err := loadCatalogue(ctx, cfg, logger)
	if err != nil {
		return err
	}
	var pinger httpserver.Pinger
	if pool != nil {
		defer pool.Close()
		pinger = pool
	}
	logger.Info("catalogue loaded",
		zap.String("source", cfg.CatalogueSource),
		zap.Int("projects", cat.Len()),
		zap.Int("categories", len(cat.Categories())),
	)

	store := session.NewStore(cfg.SessionTTL)
	srv, err := httpserver.New(cfg.HTTPAddr, logger, pinger, httpserver.Deps{
		Gallery:     gallerysvc.New(cat),
		Sessions:    sessionsvc.New(store, cat),
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return store.Run(gctx, cfg.SessionSweepInterval, func(removed int) {
			if removed > 0 {
				logger.Debug("expired sessions swept", zap.Int("removed", removed), zap.Int("live", store.Len()))
			}
		})
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// loadCatalogue resolves the configured catalogue source. The pool is only
// returned for the postgres source and stays open for readiness checks.
func loadCatalogue(ctx context.Context, cfg config.Config, logger *zap.Logger) (*catalogue.Catalogue, *pgxpool.Pool, error) {
	switch {
	case cfg.CatalogueSource == config.SourcePostgres:
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, fmt.Errorf("connect to db: %w", err)
		}
		cat, err := catalogue.Load(ctx, projectrepo.NewPostgres(pool, logger))
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return cat, pool, nil
	case cfg.CatalogueFile != "":
		cat, err := catalogue.ReadFile(cfg.CatalogueFile)
		return cat, nil, err
	default:
		cat, err := catalogue.Embedded()
		return cat, nil, err
	}
}
