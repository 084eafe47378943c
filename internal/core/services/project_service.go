package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	portsrepo "github.com/SscSPs/site_claims_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
)

type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates the project list service.
func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade, opts ...Option) portssvc.ProjectSvcFacade {
	return &projectService{BaseService: newBaseService(opts), projectRepo: projectRepo}
}

func (s *projectService) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	if projects == nil {
		return []domain.Project{}, nil
	}
	return projects, nil
}

func (s *projectService) AddProject(ctx context.Context, admin domain.Identity, name string) (*domain.Project, error) {
	if err := s.RequireAdmin(ctx, admin, "add project"); err != nil {
		return nil, err
	}
	project := domain.Project{Name: strings.TrimSpace(name)}
	if project.Name == "" {
		return nil, invalid("project name is required")
	}
	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		return nil, fmt.Errorf("failed to add project %q: %w", project.Name, err)
	}
	s.LogInfo(ctx, "Project added", slog.String("project", project.Name))
	return &project, nil
}

func (s *projectService) RemoveProject(ctx context.Context, admin domain.Identity, name string) error {
	if err := s.RequireAdmin(ctx, admin, "remove project"); err != nil {
		return err
	}
	if err := s.projectRepo.DeleteProject(ctx, strings.TrimSpace(name)); err != nil {
		s.LogError(ctx, err, "Failed to remove project", slog.String("project", name))
		return fmt.Errorf("failed to remove project %q: %w", name, err)
	}
	return nil
}
