package services

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
)

const barWidth = 30

// ReportPrinter renders a composed view as a terminal report.
type ReportPrinter struct {
	out io.Writer
}

func NewReportPrinter(out io.Writer) *ReportPrinter {
	return &ReportPrinter{out: out}
}

func (p *ReportPrinter) Print(header models.ReportHeader, view models.ViewDescriptor) error {
	sep := strings.Repeat("═", 64)

	fmt.Fprintf(p.out, "\n\033[1;35m%s\033[0m\n", sep)
	fmt.Fprintf(p.out, "\033[1;35m  %s\033[0m\n", header.Title)
	fmt.Fprintf(p.out, "  %s\n", header.Subtitle)
	fmt.Fprintf(p.out, "\033[1;35m%s\033[0m\n\n", sep)
	fmt.Fprintf(p.out, "\033[1;33m  [%s]\033[0m\n\n", view.Tab().Label())

	switch v := view.(type) {
	case models.OverviewView:
		p.cards(v.Cards)
		p.chart(v.StatusCounts)
		p.chart(v.StatusAvgPrices)
	case models.ActiveListingsView:
		p.chart(v.CountByRange)
		p.chart(v.DOMByRange)
		p.cards(v.Cards)
	case models.SalesAnalysisView:
		p.chart(v.CountByRange)
		p.cards(v.Cards)
		p.chart(v.DOMByRange)
	case models.MarketInsightsView:
		p.insights(v)
	default:
		return fmt.Errorf("printer: unsupported view %T", view)
	}

	fmt.Fprintf(p.out, "\033[1;35m%s\033[0m\n\n", sep)
	return nil
}

func (p *ReportPrinter) cards(cards []models.SummaryCard) {
	thin := strings.Repeat("─", 64)
	fmt.Fprintf(p.out, "  %s\n", thin)
	for _, c := range cards {
		fmt.Fprintf(p.out, "  %-20s \033[1m%-16s\033[0m %s\n", c.Title, c.Value, c.Subtitle)
	}
	fmt.Fprintf(p.out, "  %s\n\n", thin)
}

func (p *ReportPrinter) chart(c models.ChartProjection) {
	fmt.Fprintf(p.out, "\033[1;33m  %s\033[0m\n", c.Title)

	if len(c.ValueFields) == 0 {
		fmt.Fprintf(p.out, "  No series\n\n")
		return
	}
	format := FormatterFor(c.ValueFormat)
	cats := c.Categories()
	vals := c.Values(c.ValueFields[0])

	var max float64
	for _, v := range vals {
		max = math.Max(max, v)
	}
	for i, cat := range cats {
		n := 0
		if max > 0 {
			n = int(math.Round(vals[i] / max * barWidth))
		}
		fmt.Fprintf(p.out, "  %-16s %-*s %s\n", truncate(cat, 16), barWidth, strings.Repeat("█", n), format(vals[i]))
	}
	fmt.Fprintln(p.out)
}

func (p *ReportPrinter) insights(v models.MarketInsightsView) {
	for _, g := range v.Groups {
		fmt.Fprintf(p.out, "\033[1;33m  %s\033[0m\n", g.Heading)
		for _, it := range g.Items {
			fmt.Fprintf(p.out, "  \033[1m%s\033[0m\n    %s\n", it.Title, it.Body)
		}
		fmt.Fprintln(p.out)
	}
	fmt.Fprintf(p.out, "\033[1;33m  Market Recommendations\033[0m\n")
	for _, r := range v.Recommendations {
		fmt.Fprintf(p.out, "  \033[1m%s\033[0m\n", r.Audience)
		for _, b := range r.Bullets {
			fmt.Fprintf(p.out, "    • %s\n", b)
		}
	}
	fmt.Fprintln(p.out)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
