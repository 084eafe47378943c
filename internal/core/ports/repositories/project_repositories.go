package repositories

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// ProjectRepositoryFacade stores the list of project names.
type ProjectRepositoryFacade interface {
	// ListProjects returns every project in insertion order.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// SaveProject adds a project. Returns apperrors.ErrDuplicate if the name exists.
	SaveProject(ctx context.Context, project domain.Project) error

	// DeleteProject removes a project by name. Unknown names are ignored.
	DeleteProject(ctx context.Context, name string) error
}
