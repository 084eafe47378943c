package handlers

import (
	"net/http"

	"github.com/SscSPs/site_claims_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// getDashboard godoc
// @Summary Home dashboard
// @Description Claim and leave counts for the caller, today's check-in state and, for admins, pending approvals.
// @Tags home
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /home [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	dashboard, err := h.reportingService.Dashboard(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err, "load dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(dashboard))
}
