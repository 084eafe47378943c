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

// selfAlias may replace a user ID in balance routes.
const selfAlias = "me"

type leaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
}

func newLeaveHandler(ls portssvc.LeaveSvcFacade) *leaveHandler {
	return &leaveHandler{leaveService: ls}
}

func registerLeaveRoutes(rg *gin.RouterGroup, leaveService portssvc.LeaveSvcFacade) {
	h := newLeaveHandler(leaveService)

	requests := rg.Group("/leave/requests")
	{
		requests.GET("", h.listLeaveRequests)
		requests.POST("", h.requestLeave)
		requests.GET("/:id", h.getLeaveRequest)
		requests.DELETE("/:id", h.cancelLeaveRequest)
		requests.POST("/:id/approve", middleware.RequireAdmin(), h.approveLeaveRequest)
		requests.POST("/:id/reject", middleware.RequireAdmin(), h.rejectLeaveRequest)
	}

	balances := rg.Group("/leave/balances")
	{
		balances.GET("", middleware.RequireAdmin(), h.listBalances)
		balances.GET("/:userId", h.getBalance)
		balances.PUT("/:userId", middleware.RequireAdmin(), h.updateBalance)
	}
}

// listLeaveRequests godoc
// @Summary List leave requests
// @Description Lists the leave requests the caller may see. The date range applies to the start date.
// @Tags leave
// @Produce json
// @Param status query string false "all, pending, approved or rejected"
// @Param leaveType query string false "Leave type, or all"
// @Param userId query string false "Owner user ID, or all"
// @Param search query string false "Search over leave type and reason"
// @Param from query string false "Earliest start date (YYYY-MM-DD)"
// @Param to query string false "Latest start date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.ListLeaveResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/requests [get]
func (h *leaveHandler) listLeaveRequests(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	var params dto.ListLeaveParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}

	requests, err := h.leaveService.ListLeaveRequests(c.Request.Context(), viewer, params.ToCriteria())
	if err != nil {
		respondError(c, err, "list leave requests")
		return
	}
	page, next, err := pagination.Page(requests, params.Limit, params.NextToken)
	if err != nil {
		bindFailed(c, err, "nextToken")
		return
	}
	c.JSON(http.StatusOK, dto.ListLeaveResponse{Requests: dto.ToLeaveRequestResponses(page), NextToken: next})
}

// getLeaveRequest godoc
// @Summary Get a leave request
// @Tags leave
// @Produce json
// @Param id path string true "Leave request ID"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/requests/{id} [get]
func (h *leaveHandler) getLeaveRequest(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	request, err := h.leaveService.GetLeaveRequest(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve leave request")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// requestLeave godoc
// @Summary Request leave
// @Tags leave
// @Accept json
// @Produce json
// @Param body body dto.CreateLeaveRequest true "Leave details"
// @Success 201 {object} dto.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/requests [post]
func (h *leaveHandler) requestLeave(c *gin.Context) {
	requester, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	request, err := h.leaveService.RequestLeave(c.Request.Context(), requester, req)
	if err != nil {
		respondError(c, err, "request leave")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLeaveRequestResponse(request))
}

// cancelLeaveRequest godoc
// @Summary Cancel a pending leave request
// @Tags leave
// @Param id path string true "Leave request ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already decided"
// @Security BearerAuth
// @Router /leave/requests/{id} [delete]
func (h *leaveHandler) cancelLeaveRequest(c *gin.Context) {
	actor, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := h.leaveService.CancelLeaveRequest(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err, "cancel leave request")
		return
	}
	c.Status(http.StatusNoContent)
}

// approveLeaveRequest godoc
// @Summary Approve a leave request
// @Description Approves a pending request and charges its days to the owner's balance.
// @Tags leave
// @Produce json
// @Param id path string true "Leave request ID"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Request already decided"
// @Security BearerAuth
// @Router /leave/requests/{id}/approve [post]
func (h *leaveHandler) approveLeaveRequest(c *gin.Context) {
	approver, ok := mustIdentity(c)
	if !ok {
		return
	}
	request, err := h.leaveService.ApproveLeaveRequest(c.Request.Context(), approver, c.Param("id"))
	if err != nil {
		respondError(c, err, "approve leave request")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// rejectLeaveRequest godoc
// @Summary Reject a leave request
// @Tags leave
// @Accept json
// @Produce json
// @Param id path string true "Leave request ID"
// @Param body body dto.RejectRequest true "Rejection reason"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 409 {object} ErrorResponse "Request already decided"
// @Security BearerAuth
// @Router /leave/requests/{id}/reject [post]
func (h *leaveHandler) rejectLeaveRequest(c *gin.Context) {
	approver, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	request, err := h.leaveService.RejectLeaveRequest(c.Request.Context(), approver, c.Param("id"), req.Reason)
	if err != nil {
		respondError(c, err, "reject leave request")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// listBalances godoc
// @Summary List leave balances
// @Tags leave
// @Produce json
// @Success 200 {array} dto.LeaveBalanceResponse
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /leave/balances [get]
func (h *leaveHandler) listBalances(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	balances, err := h.leaveService.ListBalances(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err, "list leave balances")
		return
	}
	out := make([]dto.LeaveBalanceResponse, len(balances))
	for i := range balances {
		out[i] = dto.ToLeaveBalanceResponse(&balances[i])
	}
	c.JSON(http.StatusOK, out)
}

// getBalance godoc
// @Summary Get a leave balance
// @Description Users may read their own balance ("me"); admins may read anyone's.
// @Tags leave
// @Produce json
// @Param userId path string true "User ID, or me"
// @Success 200 {object} dto.LeaveBalanceResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/balances/{userId} [get]
func (h *leaveHandler) getBalance(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	userID := c.Param("userId")
	if userID == selfAlias {
		userID = viewer.ID
	}
	balance, err := h.leaveService.GetBalance(c.Request.Context(), viewer, userID)
	if err != nil {
		respondError(c, err, "retrieve leave balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveBalanceResponse(balance))
}

// updateBalance godoc
// @Summary Adjust a leave balance
// @Description Overwrites only the fields present in the body. Total is not recomputed.
// @Tags leave
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body dto.UpdateLeaveBalanceRequest true "Balance fields"
// @Success 200 {object} dto.LeaveBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse "User not found"
// @Security BearerAuth
// @Router /leave/balances/{userId} [put]
func (h *leaveHandler) updateBalance(c *gin.Context) {
	admin, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req dto.UpdateLeaveBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	balance, err := h.leaveService.UpdateBalance(c.Request.Context(), admin, c.Param("userId"), req.ToDomain())
	if err != nil {
		respondError(c, err, "update leave balance")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Leave balance adjusted",
		slog.String("target_user_id", balance.UserID), slog.Int("available", balance.Available()))
	c.JSON(http.StatusOK, dto.ToLeaveBalanceResponse(balance))
}
