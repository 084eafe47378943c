package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/dto"
	"github.com/SscSPs/site_claims_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := &projectHandler{projectService: projectService}

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.POST("", middleware.RequireAdmin(), h.addProject)
		projects.DELETE("/:name", middleware.RequireAdmin(), h.removeProject)
	}
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce json
// @Success 200 {object} dto.ListProjectsResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err, "list projects")
		return
	}
	c.JSON(http.StatusOK, dto.ToListProjectsResponse(projects))
}

// addProject godoc
// @Summary Add a project
// @Tags projects
// @Accept json
// @Produce json
// @Param body body dto.CreateProjectRequest true "Project name"
// @Success 201 {object} dto.ListProjectsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 409 {object} ErrorResponse "Project already exists"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) addProject(c *gin.Context) {
	admin, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	if _, err := h.projectService.AddProject(c.Request.Context(), admin, req.Name); err != nil {
		respondError(c, err, "add project")
		return
	}
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondError(c, err, "list projects")
		return
	}
	c.JSON(http.StatusCreated, dto.ToListProjectsResponse(projects))
}

// removeProject godoc
// @Summary Remove a project
// @Description Existing claims keep the project name. Unknown names succeed.
// @Tags projects
// @Param name path string true "Project name"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /projects/{name} [delete]
func (h *projectHandler) removeProject(c *gin.Context) {
	admin, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := h.projectService.RemoveProject(c.Request.Context(), admin, c.Param("name")); err != nil {
		respondError(c, err, "remove project")
		return
	}
	c.Status(http.StatusNoContent)
}
