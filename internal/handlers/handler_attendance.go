package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/dto"
	"github.com/SscSPs/site_claims_app/internal/middleware"
	"github.com/SscSPs/site_claims_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

type attendanceHandler struct {
	attendanceService portssvc.AttendanceSvcFacade
}

func newAttendanceHandler(as portssvc.AttendanceSvcFacade) *attendanceHandler {
	return &attendanceHandler{attendanceService: as}
}

func registerAttendanceRoutes(rg *gin.RouterGroup, attendanceService portssvc.AttendanceSvcFacade) {
	h := newAttendanceHandler(attendanceService)

	attendance := rg.Group("/attendance")
	{
		attendance.GET("", h.listAttendance)
		attendance.GET("/today", h.today)
		attendance.POST("/check-in", h.checkIn)
		attendance.POST("/check-out", h.checkOut)
		attendance.GET("/:id", h.getAttendance)

		admin := attendance.Group("", middleware.RequireAdmin())
		admin.POST("", h.recordAttendance)
		admin.PUT("/:id", h.updateAttendance)
		admin.DELETE("/:id", h.deleteAttendance)
	}
}

// listAttendance godoc
// @Summary List attendance records
// @Description Lists the attendance records the caller may see. Users see their own, admins see all.
// @Tags attendance
// @Produce json
// @Param status query string false "Attendance status, or all"
// @Param userId query string false "Owner user ID, or all"
// @Param search query string false "Search over user name, notes and location address"
// @Param from query string false "Earliest date (YYYY-MM-DD)"
// @Param to query string false "Latest date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.ListAttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance [get]
func (h *attendanceHandler) listAttendance(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	var params dto.ListAttendanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}

	records, err := h.attendanceService.ListAttendance(c.Request.Context(), viewer, params.ToCriteria())
	if err != nil {
		respondError(c, err, "list attendance")
		return
	}
	page, next, err := pagination.Page(records, params.Limit, params.NextToken)
	if err != nil {
		bindFailed(c, err, "nextToken")
		return
	}
	c.JSON(http.StatusOK, dto.ListAttendanceResponse{Records: dto.ToAttendanceResponses(page), NextToken: next})
}

// getAttendance godoc
// @Summary Get an attendance record
// @Tags attendance
// @Produce json
// @Param id path string true "Attendance record ID"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/{id} [get]
func (h *attendanceHandler) getAttendance(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	record, err := h.attendanceService.GetAttendance(c.Request.Context(), viewer, c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve attendance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

// today godoc
// @Summary Today's attendance
// @Description Returns the caller's record for today.
// @Tags attendance
// @Produce json
// @Success 200 {object} dto.AttendanceResponse
// @Failure 404 {object} ErrorResponse "Not checked in today"
// @Security BearerAuth
// @Router /attendance/today [get]
func (h *attendanceHandler) today(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	record, err := h.attendanceService.Today(c.Request.Context(), viewer)
	if err != nil {
		respondError(c, err, "retrieve attendance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

// checkIn godoc
// @Summary Check in
// @Description Records today's arrival for the caller. Status defaults to present.
// @Tags attendance
// @Accept json
// @Produce json
// @Param body body dto.CheckInRequest false "Check-in details"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Already checked in today"
// @Security BearerAuth
// @Router /attendance/check-in [post]
func (h *attendanceHandler) checkIn(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req dto.CheckInRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindFailed(c, err, "request format")
			return
		}
	}

	record, err := h.attendanceService.CheckIn(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err, "check in")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(record))
}

// checkOut godoc
// @Summary Check out
// @Description Stamps the departure time on the caller's record for today.
// @Tags attendance
// @Accept json
// @Produce json
// @Param body body dto.CheckOutRequest false "Check-out notes"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 404 {object} ErrorResponse "Not checked in today"
// @Failure 409 {object} ErrorResponse "Already checked out"
// @Security BearerAuth
// @Router /attendance/check-out [post]
func (h *attendanceHandler) checkOut(c *gin.Context) {
	user, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req dto.CheckOutRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			bindFailed(c, err, "request format")
			return
		}
	}

	record, err := h.attendanceService.CheckOut(c.Request.Context(), user, req)
	if err != nil {
		respondError(c, err, "check out")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

// recordAttendance godoc
// @Summary Record attendance for a user
// @Tags attendance
// @Accept json
// @Produce json
// @Param body body dto.CreateAttendanceRequest true "Attendance record"
// @Success 201 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 409 {object} ErrorResponse "A record already exists for that user and day"
// @Security BearerAuth
// @Router /attendance [post]
func (h *attendanceHandler) recordAttendance(c *gin.Context) {
	admin, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	record, err := h.attendanceService.RecordAttendance(c.Request.Context(), admin, req)
	if err != nil {
		respondError(c, err, "record attendance")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAttendanceResponse(record))
}

// updateAttendance godoc
// @Summary Correct an attendance record
// @Tags attendance
// @Accept json
// @Produce json
// @Param id path string true "Attendance record ID"
// @Param body body dto.UpdateAttendanceRequest true "Fields to change"
// @Success 200 {object} dto.AttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/{id} [put]
func (h *attendanceHandler) updateAttendance(c *gin.Context) {
	admin, ok := mustIdentity(c)
	if !ok {
		return
	}
	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindFailed(c, err, "request format")
		return
	}
	record, err := h.attendanceService.UpdateAttendance(c.Request.Context(), admin, c.Param("id"), req)
	if err != nil {
		respondError(c, err, "update attendance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceResponse(record))
}

// deleteAttendance godoc
// @Summary Delete an attendance record
// @Tags attendance
// @Param id path string true "Attendance record ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse "Admin access required"
// @Security BearerAuth
// @Router /attendance/{id} [delete]
func (h *attendanceHandler) deleteAttendance(c *gin.Context) {
	admin, ok := mustIdentity(c)
	if !ok {
		return
	}
	if err := h.attendanceService.DeleteAttendance(c.Request.Context(), admin, c.Param("id")); err != nil {
		respondError(c, err, "delete attendance")
		return
	}
	c.Status(http.StatusNoContent)
}
