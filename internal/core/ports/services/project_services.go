package services

import (
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
)

// ProjectSvcFacade maintains the project list claims are booked against.
type ProjectSvcFacade interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// AddProject adds a trimmed, non-empty, unique name. Admin only.
	AddProject(ctx context.Context, admin domain.Identity, name string) (*domain.Project, error)

	// RemoveProject removes a name. Unknown names are ignored. Admin only.
	RemoveProject(ctx context.Context, admin domain.Identity, name string) error
}
