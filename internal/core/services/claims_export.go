package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/site_claims_app/internal/core/domain"
	"github.com/SscSPs/site_claims_app/internal/core/query"
	"github.com/SscSPs/site_claims_app/internal/utils"
	"github.com/xuri/excelize/v2"
)

const (
	claimsSheet  = "Claims"
	summarySheet = "Summary"
)

var claimsHeader = []any{"ID", "Date", "Employee", "Category", "Project", "Description", "Amount (INR)", "Status", "Approved By", "Rejected Reason"}

// ExportClaims writes the same claims ClaimsReport would return into an XLSX
// workbook: one row per claim plus a per-category summary sheet.
func (s *reportingService) ExportClaims(ctx context.Context, viewer domain.Identity, criteria query.ClaimCriteria) (*bytes.Buffer, string, error) {
	claims, err := s.visibleClaims(ctx, viewer, criteria)
	if err != nil {
		return nil, "", err
	}
	report := buildClaimsReport(claims)

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", claimsSheet); err != nil {
		return nil, "", fmt.Errorf("failed to prepare claims sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, "", fmt.Errorf("failed to prepare summary sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#D9E1F2"}, Pattern: 1},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}
	// Zero decimal places, matching the INR display everywhere else.
	amountStyle, err := f.NewStyle(&excelize.Style{NumFmt: 3})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create amount style: %w", err)
	}

	if err := f.SetSheetRow(claimsSheet, "A1", &claimsHeader); err != nil {
		return nil, "", fmt.Errorf("failed to write claims header: %w", err)
	}
	s.formatSheet(ctx, claimsSheet,
		func() error { return f.SetCellStyle(claimsSheet, "A1", "J1", headerStyle) },
		func() error { return f.SetColWidth(claimsSheet, "B", "B", 12) },
		func() error { return f.SetColWidth(claimsSheet, "C", "E", 22) },
		func() error { return f.SetColWidth(claimsSheet, "F", "F", 40) },
		func() error { return f.SetColWidth(claimsSheet, "G", "G", 14) },
	)

	for i, c := range claims {
		row := []any{
			c.ID,
			domain.FormatDate(c.Date),
			c.UserName,
			c.Category,
			c.Project,
			c.Description,
			c.Amount.Round(utils.CurrencyPrecision).InexactFloat64(),
			string(c.Status),
			deref(c.ApprovedBy),
			deref(c.RejectedReason),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, "", fmt.Errorf("failed to address claim row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(claimsSheet, cell, &row); err != nil {
			return nil, "", fmt.Errorf("failed to write claim %s: %w", c.ID, err)
		}
	}
	if len(claims) > 0 {
		s.formatSheet(ctx, claimsSheet, func() error {
			last, err := excelize.CoordinatesToCellName(7, len(claims)+1)
			if err != nil {
				return err
			}
			return f.SetCellStyle(claimsSheet, "G2", last, amountStyle)
		})
	}

	summary := [][]any{
		{"Total claims", report.TotalCount},
		{"Total amount", utils.FormatCurrency(report.TotalAmount)},
		{"Approved amount", utils.FormatCurrency(report.ApprovedAmount)},
		{"Pending amount", utils.FormatCurrency(report.PendingAmount)},
		{"Rejected amount", utils.FormatCurrency(report.RejectedAmount)},
		{"Approval rate (%)", report.ApprovalRate},
		{},
		{"Category", "Claims", "Amount"},
	}
	for _, g := range report.ByCategory {
		summary = append(summary, []any{g.Key, g.Count, utils.FormatCurrency(g.Amount)})
	}
	for i := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, "", fmt.Errorf("failed to address summary row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(summarySheet, cell, &summary[i]); err != nil {
			return nil, "", fmt.Errorf("failed to write summary: %w", err)
		}
	}
	s.formatSheet(ctx, summarySheet,
		func() error { return f.SetCellStyle(summarySheet, "A8", "C8", headerStyle) },
		func() error { return f.SetColWidth(summarySheet, "A", "A", 34) },
		func() error { return f.SetColWidth(summarySheet, "C", "C", 16) },
	)

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.LogError(ctx, err, "Failed to write claims workbook")
		return nil, "", fmt.Errorf("failed to write claims workbook: %w", err)
	}

	filename := fmt.Sprintf("claims_report_%s.xlsx", s.Now().Format("20060102"))
	return buf, filename, nil
}

// formatSheet runs cosmetic steps on a sheet and returns how many failed.
// Failures are logged and skipped; the workbook still carries the data.
func (s *reportingService) formatSheet(ctx context.Context, sheet string, steps ...func() error) int {
	failed := 0
	for _, step := range steps {
		if err := step(); err != nil {
			failed++
			s.LogError(ctx, err, "Failed to format export sheet", slog.String("sheet", sheet))
		}
	}
	return failed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
