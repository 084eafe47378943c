package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxProjectRepository struct {
	BaseRepository
}

func newPgxProjectRepository(db *pgxpool.Pool) *PgxProjectRepository {
	return &PgxProjectRepository{BaseRepository{Pool: db}}
}

var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.Pool.Query(ctx, `SELECT name FROM projects ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.Name); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) error {
	if _, err := r.Pool.Exec(ctx, `INSERT INTO projects (name) VALUES ($1);`, project.Name); err != nil {
		return mapWriteError(err, "failed to save project")
	}
	return nil
}

func (r *PgxProjectRepository) DeleteProject(ctx context.Context, name string) error {
	if _, err := r.Pool.Exec(ctx, `DELETE FROM projects WHERE name = $1;`, name); err != nil {
		return fmt.Errorf("failed to delete project %s: %w", name, err)
	}
	return nil
}
