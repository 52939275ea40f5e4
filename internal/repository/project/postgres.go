package project

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"portfolio-gallery/internal/domain"
	"portfolio-gallery/internal/logging"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *zap.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logging.OrNop(logger)}
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Project, error) {
	const q = `
SELECT position, name, category, thumbnail, one_liner, problem, solution, tech_stack, learnings, images, link, built_in, featured, views, rating
FROM projects
ORDER BY position ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Error("project repo: list", zap.Error(err))
		return nil, err
	}
	projects, err := pgx.CollectRows(rows, scanProject)
	if err != nil {
		r.logger.Error("project repo: list rows", zap.Error(err))
		return nil, err
	}
	r.logger.Debug("project repo: list", zap.Int("count", len(projects)))
	return projects, nil
}

func (r *postgresRepo) Upsert(ctx context.Context, p domain.Project) (*domain.Project, error) {
	if p.ID < 1 {
		return nil, fmt.Errorf("project repo: position must be positive, got %d for %q", p.ID, p.Name)
	}
	const q = `
INSERT INTO projects (position, name, category, thumbnail, one_liner, problem, solution, tech_stack, learnings, images, link, built_in, featured, views, rating)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
ON CONFLICT (position) DO UPDATE SET
    name = EXCLUDED.name,
    category = EXCLUDED.category,
    thumbnail = EXCLUDED.thumbnail,
    one_liner = EXCLUDED.one_liner,
    problem = EXCLUDED.problem,
    solution = EXCLUDED.solution,
    tech_stack = EXCLUDED.tech_stack,
    learnings = EXCLUDED.learnings,
    images = EXCLUDED.images,
    link = EXCLUDED.link,
    built_in = EXCLUDED.built_in,
    featured = EXCLUDED.featured,
    views = EXCLUDED.views,
    rating = EXCLUDED.rating
RETURNING position, name, category, thumbnail, one_liner, problem, solution, tech_stack, learnings, images, link, built_in, featured, views, rating
`
	rows, err := r.pool.Query(ctx, q,
		p.ID,
		p.Name,
		p.Category,
		p.Thumbnail,
		p.OneLiner,
		p.Problem,
		p.Solution,
		nonNil(p.TechStack),
		nonNil(p.Learnings),
		nonNil(p.Images),
		p.Link,
		p.BuiltIn,
		p.Featured,
		p.Views,
		p.Rating,
	)
	if err != nil {
		r.logger.Error("project repo: upsert", zap.Int("position", p.ID), zap.Error(err))
		return nil, err
	}
	out, err := pgx.CollectExactlyOneRow(rows, scanProject)
	if err != nil {
		r.logger.Error("project repo: upsert", zap.Int("position", p.ID), zap.Error(err))
		return nil, err
	}
	r.logger.Debug("project repo: upserted", zap.Int("position", out.ID), zap.String("name", out.Name))
	return &out, nil
}

func (r *postgresRepo) DeleteAfter(ctx context.Context, position int) (int64, error) {
	if position < 0 {
		return 0, fmt.Errorf("project repo: position must not be negative, got %d", position)
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE position > $1`, position)
	if err != nil {
		r.logger.Error("project repo: delete after", zap.Int("position", position), zap.Error(err))
		return 0, err
	}
	r.logger.Debug("project repo: pruned", zap.Int("after", position), zap.Int64("removed", tag.RowsAffected()))
	return tag.RowsAffected(), nil
}

func scanProject(row pgx.CollectableRow) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.Name, &p.Category, &p.Thumbnail, &p.OneLiner, &p.Problem, &p.Solution,
		&p.TechStack, &p.Learnings, &p.Images, &p.Link, &p.BuiltIn, &p.Featured, &p.Views, &p.Rating)
	return p, err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
