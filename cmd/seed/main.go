package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"portfolio-gallery/internal/catalogue"
	"portfolio-gallery/internal/config"
	"portfolio-gallery/internal/db"
	"portfolio-gallery/internal/logging"
	projectrepo "portfolio-gallery/internal/repository/project"
	"portfolio-gallery/internal/seed"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "seed")
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalogue.Embedded()
	if cfg.CatalogueFile != "" {
		cat, err = catalogue.ReadFile(cfg.CatalogueFile)
	}
	if err != nil {
		logger.Fatal("load catalogue", zap.Error(err))
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatal("connect db", zap.Error(err))
	}
	defer pool.Close()

	res, err := seed.Apply(ctx, projectrepo.NewPostgres(pool, logger), cat)
	if err != nil {
		logger.Fatal("seed apply", zap.Error(err))
	}

	logger.Info("seed applied", zap.Int("projects", res.Written), zap.Int64("removed", res.Removed))
}
