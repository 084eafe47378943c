package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "₹0"},
		{"75.50", "₹76"},
		{"32.75", "₹33"},
		{"999", "₹999"},
		{"1000", "₹1,000"},
		{"120000", "₹1,20,000"},
		{"1234567.8", "₹12,34,568"},
		{"-4500", "-₹4,500"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatWithPrecision(t *testing.T) {
	assert.Equal(t, "12.35", FormatWithPrecision(decimal.RequireFromString("12.3456"), 2))
	assert.Equal(t, "12", FormatWithPrecision(decimal.RequireFromString("12.3456"), 0))
	assert.Equal(t, "5.00", FormatWithPrecision(decimal.NewFromInt(5), 2))
}
