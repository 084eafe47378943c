package services

import (
	"bytes"
	"context"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
)

// ReportingSvcFacade builds summaries over the records a viewer can see.
type ReportingSvcFacade interface {
	ClaimsReport(ctx context.Context, viewer domain.Identity, criteria query.ClaimCriteria) (*domain.ClaimsReport, error)
	AttendanceReport(ctx context.Context, viewer domain.Identity, criteria query.AttendanceCriteria) (*domain.AttendanceReport, error)
	LeaveReport(ctx context.Context, viewer domain.Identity, criteria query.LeaveCriteria) (*domain.LeaveReport, error)
	Dashboard(ctx context.Context, viewer domain.Identity) (*domain.Dashboard, error)

	// ExportClaims renders the filtered claims report as an XLSX workbook and
	// returns it with a suggested file name.
	ExportClaims(ctx context.Context, viewer domain.Identity, criteria query.ClaimCriteria) (*bytes.Buffer, string, error)
}
