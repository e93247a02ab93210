package models

import "strings"

// Tab identifies one of the four dashboard views.
type Tab string

const (
	TabOverview       Tab = "overview"
	TabActiveListings Tab = "active"
	TabSalesAnalysis  Tab = "sold"
	TabMarketInsights Tab = "insights"
)

var tabLabels = map[Tab]string{
	TabOverview:       "Market Overview",
	TabActiveListings: "Active Listings",
	TabSalesAnalysis:  "Sales Analysis",
	TabMarketInsights: "Market Insights",
}

// Tabs returns the tabs in display order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabActiveListings, TabSalesAnalysis, TabMarketInsights}
}

// Valid reports whether t is one of the four known tabs.
func (t Tab) Valid() bool {
	_, ok := tabLabels[t]
	return ok
}

// Label is the button caption for the tab.
func (t Tab) Label() string {
	return tabLabels[t]
}

// ParseTab normalises s and returns the matching tab.
func ParseTab(s string) (Tab, bool) {
	t := Tab(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

// ChartKind selects the chart the rendering delegate draws.
type ChartKind string

const (
	ChartPie  ChartKind = "pie"
	ChartBar  ChartKind = "bar"
	ChartLine ChartKind = "line"
)

// ValueFormat names the formatter applied to chart values and axis ticks.
type ValueFormat string

const (
	FormatNone              ValueFormat = ""
	FormatCount             ValueFormat = "count"
	FormatCurrency          ValueFormat = "currency"
	FormatCurrencyThousands ValueFormat = "currency_k"
	FormatDays              ValueFormat = "days"
)

// Row is one chart record keyed by field name.
type Row map[string]any

// ChartProjection is everything the charting capability needs for one chart.
type ChartProjection struct {
	ID            string      `json:"id"`
	Kind          ChartKind   `json:"kind"`
	Title         string      `json:"title"`
	Rows          []Row       `json:"rows"`
	CategoryField string      `json:"category_field"`
	ValueFields   []string    `json:"value_fields"`
	ValueFormat   ValueFormat `json:"value_format,omitempty"`
	AxisFormat    ValueFormat `json:"axis_format,omitempty"`
	Color         string      `json:"color,omitempty"`
}

// Categories returns the category labels in row order.
func (p ChartProjection) Categories() []string {
	out := make([]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		s, _ := r[p.CategoryField].(string)
		out = append(out, s)
	}
	return out
}

// Values returns the numeric values of field in row order.
// Non-numeric cells read as zero.
func (p ChartProjection) Values(field string) []float64 {
	out := make([]float64, 0, len(p.Rows))
	for _, r := range p.Rows {
		out = append(out, toFloat(r[field]))
	}
	return out
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// SummaryCard is a literal headline figure.
type SummaryCard struct {
	Title    string `json:"title"`
	Value    string `json:"value"`
	Subtitle string `json:"subtitle,omitempty"`
	Accent   string `json:"accent"`
}

// InsightItem is one titled paragraph on the insights tab.
type InsightItem struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Tone  string `json:"tone"`
}

// InsightGroup is a column of insight items under one heading.
type InsightGroup struct {
	Heading string        `json:"heading"`
	Tone    string        `json:"tone"`
	Items   []InsightItem `json:"items"`
}

// Recommendation is a bulleted advice block for one audience.
type Recommendation struct {
	Audience string   `json:"audience"`
	Tone     string   `json:"tone"`
	Bullets  []string `json:"bullets"`
}

// ReportHeader is the title block shown above the tabs.
type ReportHeader struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// ViewDescriptor is the composed content of one tab. The concrete types
// below are the only implementations.
type ViewDescriptor interface {
	Tab() Tab
	viewDescriptor()
}

type OverviewView struct {
	Cards           []SummaryCard   `json:"cards"`
	StatusCounts    ChartProjection `json:"status_counts"`
	StatusAvgPrices ChartProjection `json:"status_avg_prices"`
}

type ActiveListingsView struct {
	CountByRange ChartProjection `json:"count_by_range"`
	DOMByRange   ChartProjection `json:"dom_by_range"`
	Cards        []SummaryCard   `json:"cards"`
}

type SalesAnalysisView struct {
	CountByRange ChartProjection `json:"count_by_range"`
	DOMByRange   ChartProjection `json:"dom_by_range"`
	Cards        []SummaryCard   `json:"cards"`
}

type MarketInsightsView struct {
	Groups          []InsightGroup   `json:"groups"`
	Recommendations []Recommendation `json:"recommendations"`
}

func (OverviewView) Tab() Tab       { return TabOverview }
func (ActiveListingsView) Tab() Tab { return TabActiveListings }
func (SalesAnalysisView) Tab() Tab  { return TabSalesAnalysis }
func (MarketInsightsView) Tab() Tab { return TabMarketInsights }

func (OverviewView) viewDescriptor()       {}
func (ActiveListingsView) viewDescriptor() {}
func (SalesAnalysisView) viewDescriptor()  {}
func (MarketInsightsView) viewDescriptor() {}

// Charts lists the chart projections a view carries, in display order.
func Charts(v ViewDescriptor) []ChartProjection {
	switch v := v.(type) {
	case OverviewView:
		return []ChartProjection{v.StatusCounts, v.StatusAvgPrices}
	case ActiveListingsView:
		return []ChartProjection{v.CountByRange, v.DOMByRange}
	case SalesAnalysisView:
		return []ChartProjection{v.CountByRange, v.DOMByRange}
	case MarketInsightsView:
		return nil
	}
	return nil
}
