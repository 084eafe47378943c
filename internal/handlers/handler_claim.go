package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/dto"
	"github.com/SscSPs/site_claims_app/internal/middleware"
	"github.com/SscSPs/site_claims_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// claimHandler handles HTTP requests related to expense claims.
type claimHandler struct {
	claimService portssvc.ClaimSvcFacade
}

func newClaimHandler(cs portssvc.ClaimSvcFacade) *claimHandler {
	return &claimHandler{claimService: cs}
}

func registerClaimRoutes(rg *gin.RouterGroup, claimService portssvc.ClaimSvcFacade) {
	h := newClaimHandler(claimService)

	claims := rg.Group("/claims")
	{
		claims.GET("", h.listClaims)
		claims.POST("", h.submitClaim)
		claims.GET("/:id", h.getClaim)
		claims.PUT("/:id", h.updateClaim)
		claims.DELETE("/:id", h.deleteClaim)
		claims.POST("/:id/approve", middleware.RequireAdmin(), h.approveClaim)
		claims.POST("/:id/reject", middleware.RequireAdmin(), h.rejectClaim)
	}
}

// listClaims godoc
// @Summary List expense claims
// @Description Lists the claims the caller may see. Users see their own, admins see all.
// @Tags claims
// @Produce json
// @Param status query string false "all, pending, approved or rejected"
// @Param category query string false "Category, or all"
// @Param project query string false "Project, or all"
// @Param userId query string false "Owner user ID, or all"
// @Param search query string false "Search over category, description and project"
// @Param from query string false "Earliest claim date (YYYY-MM-DD)"
// @Param to query string false "Latest claim date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.ListClaimsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /claims [get]
func (h *claimHandler) listClaims(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	var params dto.ListClaimsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}

	claims, err := h.claimService.ListClaims(c.Request.Context(), viewer, params.ToCriteria())
	if err != nil {
		respondError(c, err, "list claims")
		return
	}
	page, next, err := pagination.Page(claims, params.Limit, params.NextToken)
	if err != nil {
		bindFailed(c, err, "nextToken")
		return
	}
	c.JSON(http.StatusOK, dto.ListClaimsResponse{Claims: dto.ToClaimResponses(page), NextToken: next})
}

// getClaim godoc
// @Summary Get a claim
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID"
// @Success 200 {object} dto.ClaimResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Claim not found or not visible"
// @Security BearerAuth
// @Router /claims/{id} [get]
func (h *claimHandler) getClaim(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	claim, err := h.claimService.GetClaim(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve claim")
		return
	}
	c.JSON(http.StatusOK, dto.ToClaimResponse(claim))
}

// submitClaim godoc
// @Summary Submit an expense claim
// @Description Creates a pending claim owned by the caller.
// @Tags claims
// @Accept json
// @Produce json
// @Param claim body dto.CreateClaimRequest true "Claim details"
// @Success 201 {object} dto.ClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /claims [post]
func (h *claimHandler) submitClaim(c *gin.Context) {
	submitter, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}

	claim, err := h.claimService.SubmitClaim(c.Request.Context(), submitter, req)
	if err != nil {
		respondError(c, err, "submit claim")
		return
	}
	c.JSON(http.StatusCreated, dto.ToClaimResponse(claim))
}

// updateClaim godoc
// @Summary Edit a pending claim
// @Description Only the owner may edit, and only while the claim is pending.
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Claim ID"
// @Param claim body dto.UpdateClaimRequest true "Fields to change"
// @Success 200 {object} dto.ClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Claim is no longer pending"
// @Security BearerAuth
// @Router /claims/{id} [put]
func (h *claimHandler) updateClaim(c *gin.Context) {
	editor, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req dto.UpdateClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}

	claim, err := h.claimService.UpdateClaim(c.Request.Context(), editor, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "update claim")
		return
	}
	c.JSON(http.StatusOK, dto.ToClaimResponse(claim))
}

// deleteClaim godoc
// @Summary Delete a claim
// @Description Owners may delete pending claims, admins may delete any. Unknown IDs succeed.
// @Tags claims
// @Param id path string true "Claim ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Claim is no longer pending"
// @Security BearerAuth
// @Router /claims/{id} [delete]
func (h *claimHandler) deleteClaim(c *gin.Context) {
	actor, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := h.claimService.DeleteClaim(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "delete claim")
		return
	}
	c.Status(http.StatusNoContent)
}

// approveClaim godoc
// @Summary Approve a claim
// @Tags claims
// @Produce json
// @Param id path string true "Claim ID"
// @Success 200 {object} dto.ClaimResponse
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Claim already decided"
// @Security BearerAuth
// @Router /claims/{id}/approve [post]
func (h *claimHandler) approveClaim(c *gin.Context) {
	approver, ok := mustIdentity(c)
	if !ok {
		return
	}
	claim, err := h.claimService.ApproveClaim(c.Request.Context(), approver, c.Param("id"))
	if err != nil {
		respondError(c, err, "approve claim")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Claim approved", slog.String("claim_id", claim.ID))
	c.JSON(http.StatusOK, dto.ToClaimResponse(claim))
}

// rejectClaim godoc
// @Summary Reject a claim
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Claim ID"
// @Param body body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} dto.ClaimResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Claim already decided"
// @Security BearerAuth
// @Router /claims/{id}/reject [post]
func (h *claimHandler) rejectClaim(c *gin.Context) {
	approver, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	claim, err := h.claimService.RejectClaim(c.Request.Context(), approver, c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err, "reject claim")
		return
	}
	c.JSON(http.StatusOK, dto.ToClaimResponse(claim))
}
