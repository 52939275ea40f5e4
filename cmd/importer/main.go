package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio-gallery/internal/config"
	"portfolio-gallery/internal/db"
	"portfolio-gallery/internal/importer"
	"portfolio-gallery/internal/logging"
	projectrepo "portfolio-gallery/internal/repository/project"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var filePath string
	cmd := &cobra.Command{
		Use:          "importer --file projects.csv",
		Short:        "Import project records from CSV into Postgres",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, filePath)
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path to a project CSV export")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func run(cmd *cobra.Command, filePath string) error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, "importer")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := cmd.Context()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer pool.Close()

	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f, projectrepo.NewPostgres(pool, logger))

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	logger.Info("import finished", zap.Int("projects", count), zap.Duration("elapsed", time.Since(start).Truncate(time.Millisecond)))
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d projects in %s\n", count, time.Since(start).Truncate(time.Millisecond))
	return nil
}
