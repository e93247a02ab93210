// Package render draws chart projections with go-chart.
package render

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/models"
	"github.com/dcorpoffice/Eagle-Mnt.-Market-Dashboard/services"
)

var (
	ErrUnsupportedKind   = errors.New("unsupported chart kind")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrEmptyProjection   = errors.New("chart has no rows")
)

// Palette is assigned cyclically by record index.
var Palette = []string{"#0088FE", "#00C49F", "#FFBB28", "#FF8042", "#8884D8", "#82CA9D"}

// ColorAt returns the palette colour for record i.
func ColorAt(i int) drawing.Color {
	return hexColor(Palette[i%len(Palette)])
}

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// Renderer turns projections into images of a fixed size and format.
type Renderer struct {
	width    int
	height   int
	format   string
	provider chart.RendererProvider
}

// NewRenderer accepts "png" or "svg".
func NewRenderer(width, height int, format string) (*Renderer, error) {
	r := &Renderer{width: width, height: height, format: strings.ToLower(format)}
	switch r.format {
	case "png":
		r.provider = chart.PNG
	case "svg":
		r.provider = chart.SVG
	default:
		return nil, fmt.Errorf("render: %w: %q", ErrUnsupportedFormat, format)
	}
	return r, nil
}

// ContentType is the MIME type of the rendered images.
func (r *Renderer) ContentType() string {
	if r.format == "svg" {
		return "image/svg+xml"
	}
	return "image/png"
}

// Render draws p to w.
func (r *Renderer) Render(w io.Writer, p models.ChartProjection) error {
	if len(p.Rows) == 0 || len(p.ValueFields) == 0 {
		return fmt.Errorf("render: %s: %w", p.ID, ErrEmptyProjection)
	}

	var err error
	switch p.Kind {
	case models.ChartPie:
		err = r.pie(p).Render(r.provider, w)
	case models.ChartBar:
		err = r.bar(p).Render(r.provider, w)
	case models.ChartLine:
		err = r.line(p).Render(r.provider, w)
	default:
		return fmt.Errorf("render: %s: %w: %q", p.ID, ErrUnsupportedKind, p.Kind)
	}
	if err != nil {
		return fmt.Errorf("render: %s: %w", p.ID, err)
	}
	return nil
}

func (r *Renderer) pie(p models.ChartProjection) chart.PieChart {
	format := services.FormatterFor(p.ValueFormat)
	cats := p.Categories()
	vals := p.Values(p.ValueFields[0])

	values := make([]chart.Value, len(cats))
	for i, cat := range cats {
		values[i] = chart.Value{
			Label: cat + ": " + format(vals[i]),
			Value: vals[i],
			Style: chart.Style{FillColor: ColorAt(i), StrokeColor: drawing.ColorWhite},
		}
	}
	return chart.PieChart{
		Title:  p.Title,
		Width:  r.width,
		Height: r.height,
		Values: values,
	}
}

func (r *Renderer) bar(p models.ChartProjection) chart.BarChart {
	cats := p.Categories()
	vals := p.Values(p.ValueFields[0])

	bars := make([]chart.Value, len(cats))
	for i, cat := range cats {
		fill := ColorAt(i)
		if p.Color != "" {
			fill = hexColor(p.Color)
		}
		bars[i] = chart.Value{Label: cat, Value: vals[i], Style: chart.Style{FillColor: fill, StrokeColor: fill}}
	}

	barWidth := (r.width - 120) / (len(bars) * 2)
	if barWidth < 4 {
		barWidth = 4
	}
	return chart.BarChart{
		Title:      p.Title,
		Width:      r.width,
		Height:     r.height,
		BarWidth:   barWidth,
		BarSpacing: barWidth / 2,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Bottom: 60},
		},
		XAxis: chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{ValueFormatter: axisFormatter(p)},
		Bars:  bars,
	}
}

func (r *Renderer) line(p models.ChartProjection) chart.Chart {
	cats := p.Categories()
	ys := p.Values(p.ValueFields[0])

	xs := make([]float64, len(cats))
	ticks := make([]chart.Tick, len(cats))
	for i, cat := range cats {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: cat}
	}

	stroke := ColorAt(0)
	if p.Color != "" {
		stroke = hexColor(p.Color)
	}
	ch := chart.Chart{
		Title:  p.Title,
		Width:  r.width,
		Height: r.height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 60},
		},
		XAxis: chart.XAxis{
			Ticks:     ticks,
			TickStyle: chart.Style{TextRotationDegrees: 45},
		},
		YAxis: chart.YAxis{ValueFormatter: axisFormatter(p)},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    p.ValueFields[0],
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: stroke,
					StrokeWidth: 2,
					DotColor:    stroke,
					DotWidth:    3,
				},
			},
		},
	}
	return ch
}

// axisFormatter prefers the projection's axis format and falls back to
// its value format.
func axisFormatter(p models.ChartProjection) chart.ValueFormatter {
	f := p.AxisFormat
	if f == models.FormatNone {
		f = p.ValueFormat
	}
	if f == models.FormatNone {
		return nil
	}
	format := services.FormatterFor(f)
	return func(v interface{}) string {
		if n, ok := v.(float64); ok {
			return format(n)
		}
		return fmt.Sprintf("%v", v)
	}
}
