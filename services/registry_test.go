package services

import (
	"strings"
	"testing"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
)

func TestRegistryValidates(t *testing.T) {
	if err := NewRegistry().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestRegistryRangesAscending(t *testing.T) {
	reg := NewRegistry()
	for name, recs := range map[string][]models.PriceRangeRecord{
		"active": reg.ActiveListings(),
		"sold":   reg.SoldProperties(),
	} {
		var prevLow int64 = -1
		for _, r := range recs {
			b, err := ParseRange(r.Range)
			if err != nil {
				t.Fatalf("%s: ParseRange(%q): %v", name, r.Range, err)
			}
			if b.Low <= prevLow {
				t.Errorf("%s: %q not above previous bucket", name, r.Range)
			}
			prevLow = b.Low
		}
	}
}

func TestRegistryReturnsCopies(t *testing.T) {
	reg := NewRegistry()

	active := reg.ActiveListings()
	active[0], active[1] = active[1], active[0]
	active[2].Count = 0

	again := reg.ActiveListings()
	if again[0].Range != "350-399k" {
		t.Errorf("first active range: got %q, want %q", again[0].Range, "350-399k")
	}
	if again[2].Count != 65 {
		t.Errorf("450-499k count: got %d, want 65", again[2].Count)
	}

	groups := reg.InsightGroups()
	groups[0].Items[0].Title = "changed"
	if reg.InsightGroups()[0].Items[0].Title != "Sweet Spot Pricing" {
		t.Error("insight items leaked a mutable reference")
	}
}

func TestRegistryValidateRejectsOutOfOrder(t *testing.T) {
	reg := &Registry{active: []models.PriceRangeRecord{
		{Range: "500-549k"},
		{Range: "450-499k"},
	}}
	err := reg.Validate()
	if err == nil || !strings.Contains(err.Error(), "out of order") {
		t.Errorf("Validate: got %v, want out-of-order error", err)
	}
}

func TestRegistryValidateRejectsDuplicate(t *testing.T) {
	reg := &Registry{sold: []models.PriceRangeRecord{
		{Range: "150-199k"},
		{Range: "150-199k"},
	}}
	err := reg.Validate()
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Validate: got %v, want duplicate error", err)
	}
}

// The "Active Listings" card is a literal, not a sum over the buckets; the
// two are exposed independently and are allowed to disagree.
func TestActiveTotalIsIndependentLiteral(t *testing.T) {
	reg := NewRegistry()

	sum := 0
	for _, r := range reg.ActiveListings() {
		sum += r.Count
	}
	if sum == 0 {
		t.Error("active bucket counts should be exposed")
	}

	cards := reg.OverviewCards()
	if cards[0].Title != "Active Listings" || cards[0].Value != "295" {
		t.Errorf("overview card 0: got %+v", cards[0])
	}
}
