package server

import (
	"html/template"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
)

type tabButton struct {
	ID     string
	Label  string
	Active bool
}

type chartImage struct {
	ID    string
	Title string
}

// section is one block of the page, in display order.
type section struct {
	Kind            string
	Title           string
	Cards           []models.SummaryCard
	Charts          []chartImage
	Groups          []models.InsightGroup
	Recommendations []models.Recommendation
}

type pageData struct {
	Header   models.ReportHeader
	Tabs     []tabButton
	Sections []section
}

func newPageData(header models.ReportHeader, view models.ViewDescriptor) pageData {
	data := pageData{Header: header}
	for _, t := range models.Tabs() {
		data.Tabs = append(data.Tabs, tabButton{ID: string(t), Label: t.Label(), Active: t == view.Tab()})
	}

	switch v := view.(type) {
	case models.OverviewView:
		data.Sections = []section{
			cardSection("", v.Cards),
			chartSection(v.StatusCounts, v.StatusAvgPrices),
		}
	case models.ActiveListingsView:
		data.Sections = []section{
			chartSection(v.CountByRange, v.DOMByRange),
			cardSection("Active Listings Summary", v.Cards),
		}
	case models.SalesAnalysisView:
		data.Sections = []section{
			chartSection(v.CountByRange),
			cardSection("Sold Properties Key Metrics", v.Cards),
			chartSection(v.DOMByRange),
		}
	case models.MarketInsightsView:
		data.Sections = []section{
			{Kind: "insights", Title: "Key Market Insights", Groups: v.Groups},
			{Kind: "recommendations", Title: "Market Recommendations", Recommendations: v.Recommendations},
		}
	}
	return data
}

func cardSection(title string, cards []models.SummaryCard) section {
	return section{Kind: "cards", Title: title, Cards: cards}
}

func chartSection(charts ...models.ChartProjection) section {
	s := section{Kind: "charts"}
	for _, c := range charts {
		s.Charts = append(s.Charts, chartImage{ID: c.ID, Title: c.Title})
	}
	return s
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Header.Title}}</title>
<style>
body{font-family:sans-serif;background:#f9fafb;margin:0;padding:24px;color:#111827}
.box{background:#fff;border-radius:8px;box-shadow:0 1px 3px rgba(0,0,0,.1);padding:24px;margin-bottom:24px}
.tabs{display:flex;gap:8px;margin-bottom:24px}
.tabs button{padding:8px 16px;border:0;border-radius:8px;background:#e5e7eb;color:#374151;font-weight:500;cursor:pointer}
.tabs button.active{background:#2563eb;color:#fff}
.grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(220px,1fr));gap:16px}
.card{background:#fff;padding:24px;border-radius:8px;box-shadow:0 1px 3px rgba(0,0,0,.1);border-left:4px solid}
.card.blue{border-color:#3b82f6}.card.green{border-color:#22c55e}.card.purple{border-color:#a855f7}
.card.red{border-color:#ef4444}.card.orange{border-color:#f97316}
.card .value{font-size:1.5rem;font-weight:700}
.charts{display:grid;grid-template-columns:repeat(auto-fit,minmax(480px,1fr));gap:24px}
.charts img{max-width:100%}
.item{padding:12px;border-radius:8px;margin-bottom:12px;background:#eff6ff}
</style>
</head>
<body>
<div class="box">
<h1>{{.Header.Title}}</h1>
<p>{{.Header.Subtitle}}</p>
</div>
<form class="tabs" method="post" action="/select">
{{range .Tabs}}<button type="submit" name="tab" value="{{.ID}}"{{if .Active}} class="active"{{end}}>{{.Label}}</button>
{{end}}</form>
{{range .Sections}}
{{if eq .Kind "cards"}}<div class="box">{{if .Title}}<h3>{{.Title}}</h3>{{end}}<div class="grid">
{{range .Cards}}<div class="card {{.Accent}}"><h3>{{.Title}}</h3><p class="value">{{.Value}}</p>{{if .Subtitle}}<p>{{.Subtitle}}</p>{{end}}</div>
{{end}}</div></div>
{{else if eq .Kind "charts"}}<div class="charts">
{{range .Charts}}<div class="box"><h3>{{.Title}}</h3><img src="/charts/{{.ID}}" alt="{{.Title}}"></div>
{{end}}</div>
{{else if eq .Kind "insights"}}<div class="box"><h3>{{.Title}}</h3><div class="grid">
{{range .Groups}}<div><h4>{{.Heading}}</h4>{{range .Items}}<div class="item"><p><strong>{{.Title}}</strong></p><p>{{.Body}}</p></div>{{end}}</div>
{{end}}</div></div>
{{else if eq .Kind "recommendations"}}<div class="box"><h3>{{.Title}}</h3><div class="grid">
{{range .Recommendations}}<div class="card {{.Tone}}"><h4>{{.Audience}}</h4><ul>{{range .Bullets}}<li>{{.}}</li>{{end}}</ul></div>
{{end}}</div></div>
{{end}}{{end}}
</body>
</html>
`))
