package services

import (
	"errors"
	"fmt"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
)

var (
	ErrUnknownTab   = errors.New("unknown tab")
	ErrUnknownChart = errors.New("unknown chart")
)

// Chart identifiers, stable across renders.
const (
	ChartStatusDistribution = "status-distribution"
	ChartStatusAvgPrice     = "status-avg-price"
	ChartActiveByRange      = "active-by-range"
	ChartActiveDOM          = "active-dom"
	ChartSoldByRange        = "sold-by-range"
	ChartSoldDOM            = "sold-dom"
)

// Datasets is the read side of the registry the composer projects from.
type Datasets interface {
	MarketStatus() []models.MarketStatusRecord
	ActiveListings() []models.PriceRangeRecord
	SoldProperties() []models.PriceRangeRecord
	OverviewCards() []models.SummaryCard
	ActiveCards() []models.SummaryCard
	SoldCards() []models.SummaryCard
	InsightGroups() []models.InsightGroup
	Recommendations() []models.Recommendation
}

// Compose builds the view for tab. It reads data only and has no side
// effects, so equal inputs give equal descriptors.
func Compose(tab models.Tab, data Datasets) (models.ViewDescriptor, error) {
	switch tab {
	case models.TabOverview:
		return composeOverview(data), nil
	case models.TabActiveListings:
		return composeActive(data), nil
	case models.TabSalesAnalysis:
		return composeSold(data), nil
	case models.TabMarketInsights:
		return models.MarketInsightsView{
			Groups:          data.InsightGroups(),
			Recommendations: data.Recommendations(),
		}, nil
	}
	return nil, fmt.Errorf("compose: %w: %q", ErrUnknownTab, tab)
}

// ChartByID finds the chart projection with the given id on any tab.
func ChartByID(data Datasets, id string) (models.ChartProjection, error) {
	for _, tab := range models.Tabs() {
		view, err := Compose(tab, data)
		if err != nil {
			return models.ChartProjection{}, err
		}
		for _, c := range models.Charts(view) {
			if c.ID == id {
				return c, nil
			}
		}
	}
	return models.ChartProjection{}, fmt.Errorf("compose: %w: %q", ErrUnknownChart, id)
}

// DerivePriceVsDOM reshapes price buckets into days-on-market points.
func DerivePriceVsDOM(recs []models.PriceRangeRecord) []models.DerivedSeriesPoint {
	out := make([]models.DerivedSeriesPoint, len(recs))
	for i, r := range recs {
		out[i] = models.DerivedSeriesPoint{Price: r.Range, DaysOnMarket: r.MedianDaysOnMarket, Count: r.Count}
	}
	return out
}

func composeOverview(data Datasets) models.OverviewView {
	statuses := data.MarketStatus()
	rows := make([]models.Row, len(statuses))
	for i, s := range statuses {
		rows[i] = models.Row{
			"status":             string(s.Status),
			"count":              s.Count,
			"averagePrice":       s.AveragePrice.InexactFloat64(),
			"medianDaysOnMarket": s.MedianDaysOnMarket,
		}
	}

	return models.OverviewView{
		Cards: data.OverviewCards(),
		StatusCounts: models.ChartProjection{
			ID:            ChartStatusDistribution,
			Kind:          models.ChartPie,
			Title:         "Market Status Distribution",
			Rows:          rows,
			CategoryField: "status",
			ValueFields:   []string{"count"},
			ValueFormat:   models.FormatCount,
		},
		StatusAvgPrices: models.ChartProjection{
			ID:            ChartStatusAvgPrice,
			Kind:          models.ChartBar,
			Title:         "Average Prices by Status",
			Rows:          cloneRows(rows),
			CategoryField: "status",
			ValueFields:   []string{"averagePrice"},
			ValueFormat:   models.FormatCurrency,
			AxisFormat:    models.FormatCurrencyThousands,
			Color:         "#8884D8",
		},
	}
}

func composeActive(data Datasets) models.ActiveListingsView {
	recs := data.ActiveListings()
	return models.ActiveListingsView{
		CountByRange: rangeCountChart(ChartActiveByRange, "Active Listings by Price Range", recs, "#0088FE"),
		DOMByRange: models.ChartProjection{
			ID:            ChartActiveDOM,
			Kind:          models.ChartLine,
			Title:         "Days on Market by Price Range",
			Rows:          derivedRows(DerivePriceVsDOM(recs)),
			CategoryField: "price",
			ValueFields:   []string{"daysOnMarket"},
			ValueFormat:   models.FormatDays,
			Color:         "#FF8042",
		},
		Cards: data.ActiveCards(),
	}
}

func composeSold(data Datasets) models.SalesAnalysisView {
	recs := data.SoldProperties()
	return models.SalesAnalysisView{
		CountByRange: rangeCountChart(ChartSoldByRange, "Historical Sales Distribution", recs, "#00C49F"),
		DOMByRange: models.ChartProjection{
			ID:            ChartSoldDOM,
			Kind:          models.ChartLine,
			Title:         "Sales Speed by Price Range",
			Rows:          rangeRows(recs),
			CategoryField: "range",
			ValueFields:   []string{"medianDaysOnMarket"},
			ValueFormat:   models.FormatDays,
			Color:         "#FF8042",
		},
		Cards: data.SoldCards(),
	}
}

func rangeCountChart(id, title string, recs []models.PriceRangeRecord, color string) models.ChartProjection {
	return models.ChartProjection{
		ID:            id,
		Kind:          models.ChartBar,
		Title:         title,
		Rows:          rangeRows(recs),
		CategoryField: "range",
		ValueFields:   []string{"count"},
		ValueFormat:   models.FormatCount,
		Color:         color,
	}
}

func rangeRows(recs []models.PriceRangeRecord) []models.Row {
	rows := make([]models.Row, len(recs))
	for i, r := range recs {
		rows[i] = models.Row{"range": r.Range, "count": r.Count, "medianDaysOnMarket": r.MedianDaysOnMarket}
	}
	return rows
}

func derivedRows(points []models.DerivedSeriesPoint) []models.Row {
	rows := make([]models.Row, len(points))
	for i, p := range points {
		rows[i] = models.Row{"price": p.Price, "daysOnMarket": p.DaysOnMarket, "count": p.Count}
	}
	return rows
}

func cloneRows(rows []models.Row) []models.Row {
	out := make([]models.Row, len(rows))
	for i, r := range rows {
		c := make(models.Row, len(r))
		for k, v := range r {
			c[k] = v
		}
		out[i] = c
	}
	return out
}
