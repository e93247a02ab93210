package services

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
)

func TestFormatters(t *testing.T) {
	tests := []struct {
		format models.ValueFormat
		in     float64
		want   string
	}{
		{models.FormatCount, 14755, "14,755"},
		{models.FormatCount, 18, "18"},
		{models.FormatCurrency, 587116, "$587,116"},
		{models.FormatCurrencyThousands, 587116, "$587k"},
		{models.FormatCurrencyThousands, 278534, "$279k"},
		{models.FormatDays, 101, "101 days"},
		{models.FormatNone, 42.5, "42.5"},
	}

	for _, tt := range tests {
		got := FormatterFor(tt.format)(tt.in)
		if got != tt.want {
			t.Errorf("FormatterFor(%q)(%v) = %q; want %q", tt.format, tt.in, got, tt.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	got := FormatMoney(decimal.NewFromInt(346321))
	if got != "$346,321" {
		t.Errorf("FormatMoney: got %q, want %q", got, "$346,321")
	}
}
