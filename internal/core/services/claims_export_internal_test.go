package services

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/SscSPs/site_claims_app/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestFormatSheet_LogsFailedSteps(t *testing.T) {
	var logs bytes.Buffer
	ctx := middleware.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&logs, nil)))
	f := excelize.NewFile()
	defer f.Close()
	svc := &reportingService{}

	failed := svc.formatSheet(ctx, "Missing",
		func() error { return f.SetColWidth("Sheet1", "A", "A", 20) },
		func() error { return f.SetColWidth("Missing", "A", "A", 20) },
	)

	assert.Equal(t, 1, failed)
	assert.Contains(t, logs.String(), "Failed to format export sheet")
	assert.Contains(t, logs.String(), `"sheet":"Missing"`)
}
