package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
)

// Registry holds the fixed Eagle Mountain market datasets. Every accessor
// returns a copy so callers can never reorder or mutate the source data.
type Registry struct {
	header   models.ReportHeader
	statuses []models.MarketStatusRecord
	active   []models.PriceRangeRecord
	sold     []models.PriceRangeRecord

	overviewCards []models.SummaryCard
	activeCards   []models.SummaryCard
	soldCards     []models.SummaryCard

	insightGroups   []models.InsightGroup
	recommendations []models.Recommendation
}

// NewRegistry returns the registry for the June 13, 2025 market report.
func NewRegistry() *Registry {
	return &Registry{
		header: models.ReportHeader{
			Title:    "Eagle Mountain Real Estate Market Analysis",
			Subtitle: "Market Summary Report - June 13, 2025 | Single Family Homes up to $950k",
		},
		statuses: []models.MarketStatusRecord{
			{Status: models.StatusActive, Count: 295, AveragePrice: decimal.NewFromInt(587116), MedianDaysOnMarket: 42},
			{Status: models.StatusUnderContract, Count: 111, AveragePrice: decimal.NewFromInt(560228), MedianDaysOnMarket: 32},
			{Status: models.StatusSold, Count: 14755, AveragePrice: decimal.NewFromInt(346321), MedianDaysOnMarket: 27},
			{Status: models.StatusExpired, Count: 7801, AveragePrice: decimal.NewFromInt(278034), MedianDaysOnMarket: 101},
			{Status: models.StatusCanceled, Count: 986, AveragePrice: decimal.NewFromInt(492944), MedianDaysOnMarket: 49},
			{Status: models.StatusBackup, Count: 18, AveragePrice: decimal.NewFromInt(588211), MedianDaysOnMarket: 50},
		},
		active: []models.PriceRangeRecord{
			{Range: "350-399k", Count: 2, MedianDaysOnMarket: 53},
			{Range: "400-449k", Count: 14, MedianDaysOnMarket: 59},
			{Range: "450-499k", Count: 65, MedianDaysOnMarket: 44},
			{Range: "500-549k", Count: 62, MedianDaysOnMarket: 45},
			{Range: "550-599k", Count: 40, MedianDaysOnMarket: 38},
			{Range: "600-649k", Count: 37, MedianDaysOnMarket: 31},
			{Range: "650-699k", Count: 27, MedianDaysOnMarket: 46},
			{Range: "700-749k", Count: 17, MedianDaysOnMarket: 25},
			{Range: "750-799k", Count: 12, MedianDaysOnMarket: 34},
			{Range: "800-849k", Count: 8, MedianDaysOnMarket: 43},
			{Range: "850-899k", Count: 6, MedianDaysOnMarket: 43},
			{Range: "900-949k", Count: 5, MedianDaysOnMarket: 44},
		},
		// Top ranges only; the historical set runs from $49k to $1M.
		sold: []models.PriceRangeRecord{
			{Range: "150-199k", Count: 2128, MedianDaysOnMarket: 46},
			{Range: "200-249k", Count: 2096, MedianDaysOnMarket: 31},
			{Range: "250-299k", Count: 1633, MedianDaysOnMarket: 23},
			{Range: "300-349k", Count: 1452, MedianDaysOnMarket: 26},
			{Range: "350-399k", Count: 1245, MedianDaysOnMarket: 22},
			{Range: "400-449k", Count: 1018, MedianDaysOnMarket: 13},
			{Range: "450-499k", Count: 1235, MedianDaysOnMarket: 19},
			{Range: "500-549k", Count: 1100, MedianDaysOnMarket: 22},
			{Range: "550-599k", Count: 698, MedianDaysOnMarket: 17},
			{Range: "600-649k", Count: 505, MedianDaysOnMarket: 19},
		},
		overviewCards: []models.SummaryCard{
			{Title: "Active Listings", Value: "295", Subtitle: "Median: $555,800", Accent: "blue"},
			{Title: "Under Contract", Value: "111", Subtitle: "Median: $530,000", Accent: "green"},
			{Title: "Sold (Historical)", Value: "14,755", Subtitle: "Median: $315,000", Accent: "purple"},
			{Title: "Expired Listings", Value: "7,801", Subtitle: "Median DOM: 101 days", Accent: "red"},
		},
		activeCards: []models.SummaryCard{
			{Title: "Price Range", Value: "$370k - $950k", Accent: "blue"},
			{Title: "Median Price", Value: "$555,800", Accent: "green"},
			{Title: "Average Price", Value: "$587,116", Accent: "purple"},
			{Title: "Median DOM", Value: "42 days", Accent: "orange"},
		},
		soldCards: []models.SummaryCard{
			{Title: "Total Sold", Value: "14,755", Subtitle: "Properties", Accent: "green"},
			{Title: "Price Range", Value: "$49k - $1M", Subtitle: "Wide range", Accent: "blue"},
			{Title: "Median Price", Value: "$315,000", Subtitle: "Historical", Accent: "purple"},
			{Title: "Avg DOM", Value: "27 days", Subtitle: "Fast sales", Accent: "orange"},
		},
		insightGroups: []models.InsightGroup{
			{
				Heading: "Market Dynamics",
				Tone:    "blue",
				Items: []models.InsightItem{
					{Title: "Sweet Spot Pricing", Tone: "blue",
						Body: "Most active inventory is in the $450k-$600k range, with 167 of 295 active listings (57%)"},
					{Title: "Fast Moving Inventory", Tone: "green",
						Body: "Properties $600k+ tend to sell faster (25-34 DOM) compared to lower-priced homes"},
					{Title: "Contract Activity", Tone: "yellow",
						Body: "111 properties under contract with median DOM of 32 days - healthy absorption rate"},
				},
			},
			{
				Heading: "Market Challenges",
				Tone:    "red",
				Items: []models.InsightItem{
					{Title: "High Expiration Rate", Tone: "red",
						Body: "7,801 expired listings with 101 DOM average suggests pricing challenges in some segments"},
					{Title: "Price Appreciation", Tone: "orange",
						Body: "Active median ($556k) vs sold median ($315k) shows significant price appreciation over time"},
					{Title: "Inventory Levels", Tone: "purple",
						Body: "295 active listings may indicate tight inventory in this price-sensitive market"},
				},
			},
		},
		recommendations: []models.Recommendation{
			{Audience: "For Sellers", Tone: "blue", Bullets: []string{
				"Price competitively in the $450k-$600k range",
				"Expect 30-45 days on market",
				"Higher-end properties move faster",
			}},
			{Audience: "For Buyers", Tone: "green", Bullets: []string{
				"Most options in $450k-$600k range",
				"Act quickly - 32-42 day average to contract",
				"Higher-end homes have less competition",
			}},
			{Audience: "Market Trends", Tone: "purple", Bullets: []string{
				"Strong demand in mid-range pricing",
				"Healthy absorption rate",
				"Price appreciation evident",
			}},
		},
	}
}

func (r *Registry) Header() models.ReportHeader { return r.header }

func (r *Registry) MarketStatus() []models.MarketStatusRecord {
	return append([]models.MarketStatusRecord(nil), r.statuses...)
}

func (r *Registry) ActiveListings() []models.PriceRangeRecord {
	return append([]models.PriceRangeRecord(nil), r.active...)
}

func (r *Registry) SoldProperties() []models.PriceRangeRecord {
	return append([]models.PriceRangeRecord(nil), r.sold...)
}

func (r *Registry) OverviewCards() []models.SummaryCard {
	return append([]models.SummaryCard(nil), r.overviewCards...)
}

func (r *Registry) ActiveCards() []models.SummaryCard {
	return append([]models.SummaryCard(nil), r.activeCards...)
}

func (r *Registry) SoldCards() []models.SummaryCard {
	return append([]models.SummaryCard(nil), r.soldCards...)
}

func (r *Registry) InsightGroups() []models.InsightGroup {
	out := make([]models.InsightGroup, len(r.insightGroups))
	for i, g := range r.insightGroups {
		g.Items = append([]models.InsightItem(nil), g.Items...)
		out[i] = g
	}
	return out
}

func (r *Registry) Recommendations() []models.Recommendation {
	out := make([]models.Recommendation, len(r.recommendations))
	for i, rec := range r.recommendations {
		rec.Bullets = append([]string(nil), rec.Bullets...)
		out[i] = rec
	}
	return out
}

// Validate checks that every price-range sequence has unique labels in
// strictly ascending price order.
func (r *Registry) Validate() error {
	if err := validateRanges("active", r.active); err != nil {
		return err
	}
	return validateRanges("sold", r.sold)
}

func validateRanges(name string, recs []models.PriceRangeRecord) error {
	seen := make(map[string]struct{}, len(recs))
	var prev models.PriceBounds
	for i, rec := range recs {
		if _, dup := seen[rec.Range]; dup {
			return fmt.Errorf("registry: %s: duplicate range %q", name, rec.Range)
		}
		seen[rec.Range] = struct{}{}

		b, err := ParseRange(rec.Range)
		if err != nil {
			return fmt.Errorf("registry: %s: %w", name, err)
		}
		if i > 0 && b.Low < prev.High {
			return fmt.Errorf("registry: %s: range %q out of order", name, rec.Range)
		}
		prev = b
	}
	return nil
}
