package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/site_claims_app/internal/core/ports/services"
	"github.com/SscSPs/site_claims_app/internal/dto"
	"github.com/SscSPs/site_claims_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reportingHandler handles HTTP requests related to claim, attendance and leave reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the report routes and the home dashboard.
// Every report is computed over the records the caller can see.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/claims", h.getClaimsReport)
		reportingGroup.GET("/claims/export", h.exportClaims)
		reportingGroup.GET("/attendance", h.getAttendanceReport)
		reportingGroup.GET("/leave", h.getLeaveReport)
	}

	rg.GET("/home", h.getDashboard)
}

// getClaimsReport godoc
// @Summary Claims report
// @Description Totals, status/category/project breakdowns and approval rate over the filtered claims.
// @Tags reports
// @Produce json
// @Param status query string false "all, pending, approved or rejected"
// @Param category query string false "Category, or all"
// @Param project query string false "Project, or all"
// @Param userId query string false "Owner user ID, or all"
// @Param from query string false "Earliest claim date (YYYY-MM-DD)"
// @Param to query string false "Latest claim date (YYYY-MM-DD)"
// @Success 200 {object} dto.ClaimsReportResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/claims [get]
func (h *reportingHandler) getClaimsReport(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	var params dto.ListClaimsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}

	report, err := h.reportingService.ClaimsReport(c.Request.Context(), viewer, params.ToCriteria())
	if err != nil {
		respondError(c, err, "generate claims report")
		return
	}
	c.JSON(http.StatusOK, dto.ToClaimsReportResponse(report))
}

// exportClaims godoc
// @Summary Export claims report
// @Description Downloads the filtered claims and a category summary as an XLSX workbook.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param status query string false "all, pending, approved or rejected"
// @Param category query string false "Category, or all"
// @Param project query string false "Project, or all"
// @Param userId query string false "Owner user ID, or all"
// @Param from query string false "Earliest claim date (YYYY-MM-DD)"
// @Param to query string false "Latest claim date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to export claims"
// @Security BearerAuth
// @Router /reports/claims/export [get]
func (h *reportingHandler) exportClaims(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	var params dto.ListClaimsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}

	buf, filename, err := h.reportingService.ExportClaims(c.Request.Context(), viewer, params.ToCriteria())
	if err != nil {
		respondError(c, err, "export claims")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Claims exported",
		slog.String("filename", filename), slog.Int("bytes", buf.Len()))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// getAttendanceReport godoc
// @Summary Attendance report
// @Description Counts by status, present/leave/absent totals and attendance rate over the filtered records.
// @Tags reports
// @Produce json
// @Param status query string false "Attendance status, or all"
// @Param userId query string false "Owner user ID, or all"
// @Param from query string false "Earliest date (YYYY-MM-DD)"
// @Param to query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {object} dto.AttendanceReportResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/attendance [get]
func (h *reportingHandler) getAttendanceReport(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	var params dto.ListAttendanceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}

	report, err := h.reportingService.AttendanceReport(c.Request.Context(), viewer, params.ToCriteria())
	if err != nil {
		respondError(c, err, "generate attendance report")
		return
	}
	c.JSON(http.StatusOK, dto.ToAttendanceReportResponse(report))
}

// getLeaveReport godoc
// @Summary Leave report
// @Description Request counts and day totals by status and leave type.
// @Tags reports
// @Produce json
// @Param status query string false "all, pending, approved or rejected"
// @Param leaveType query string false "Leave type, or all"
// @Param userId query string false "Owner user ID, or all"
// @Param from query string false "Earliest start date (YYYY-MM-DD)"
// @Param to query string false "Latest start date (YYYY-MM-DD)"
// @Success 200 {object} dto.LeaveReportResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/leave [get]
func (h *reportingHandler) getLeaveReport(c *gin.Context) {
	viewer, ok := mustIdentity(c)
	if !ok {
		return
	}
	var params dto.ListLeaveParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindFailed(c, err, "query parameters")
		return
	}

	report, err := h.reportingService.LeaveReport(c.Request.Context(), viewer, params.ToCriteria())
	if err != nil {
		respondError(c, err, "generate leave report")
		return
	}
	c.JSON(http.StatusOK, dto.ToLeaveReportResponse(report))
}
