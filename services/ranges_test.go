package services

import (
	"errors"
	"testing"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		raw  string
		want models.PriceBounds
	}{
		{"450-499k", models.PriceBounds{Low: 450_000, High: 500_000}},
		{"150-199k", models.PriceBounds{Low: 150_000, High: 200_000}},
		{" 900 - 949K ", models.PriceBounds{Low: 900_000, High: 950_000}},
		{"1-2m", models.PriceBounds{Low: 1_000_000, High: 3_000_000}},
		{"100-199", models.PriceBounds{Low: 100, High: 200}},
	}

	for _, tt := range tests {
		got, err := ParseRange(tt.raw)
		if err != nil {
			t.Errorf("ParseRange(%q) error: %v", tt.raw, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRange(%q) = %+v; want %+v", tt.raw, got, tt.want)
		}
	}
}

func TestParseRangeRejects(t *testing.T) {
	for _, raw := range []string{
		"", "cheap", "499-450k", "$450k", "450k-499k",
		"1-9223372036854775807",
		"1-9223372036854775m",
		"1-99999999999999999999k",
	} {
		if _, err := ParseRange(raw); !errors.Is(err, ErrBadRange) {
			t.Errorf("ParseRange(%q) error = %v; want ErrBadRange", raw, err)
		}
	}
}
