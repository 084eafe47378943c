package dto

import "github.com/SscSPs/site_claims_app/internal/core/domain"

// CreateProjectRequest adds a project to the list.
type CreateProjectRequest struct {
	Name string `json:"name" binding:"required"`
}

// ListProjectsResponse wraps the project names.
type ListProjectsResponse struct {
	Projects []string `json:"projects"`
}

// ToListProjectsResponse flattens projects to their names.
func ToListProjectsResponse(projects []domain.Project) ListProjectsResponse {
	names := make([]string, len(projects))
	for i, p := range projects {
		names[i] = p.Name
	}
	return ListProjectsResponse{Projects: names}
}
