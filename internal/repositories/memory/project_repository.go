package memory

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
)

// ProjectRepository keeps the project list in memory.
type ProjectRepository struct {
	rows *table[domain.Project]
}

// NewProjectRepository creates an empty project repository.
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{rows: newTable(func(p domain.Project) string { return p.Name })}
}

var _ portsrepo.ProjectRepositoryFacade = (*ProjectRepository)(nil)

func (r *ProjectRepository) ListProjects(_ context.Context) ([]domain.Project, error) {
	return r.rows.all(), nil
}

func (r *ProjectRepository) SaveProject(_ context.Context, project domain.Project) error {
	return r.rows.insert(project)
}

func (r *ProjectRepository) DeleteProject(_ context.Context, name string) error {
	r.rows.remove(name)
	return nil
}
