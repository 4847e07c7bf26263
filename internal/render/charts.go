// Package render produces the report's chart images and HTML document.
package render

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/paasa/advisor/internal/models"
)

const (
	portfolioStrokeHex = "3b82f6" // blue-500
	benchmarkStrokeHex = "ef4444" // red-500
)

// PerformanceChart renders the portfolio-vs-benchmark line chart as a PNG
// data URI. Returns empty with fewer than two aligned points; a report
// without a chart is preferable to a broken one.
func PerformanceChart(series *models.PerformanceSeries) (string, error) {
	if series == nil || len(series.Dates) < 2 {
		return "", nil
	}

	xValues := make([]time.Time, len(series.Dates))
	for i, d := range series.Dates {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return "", fmt.Errorf("performance chart: bad date %q: %w", d, err)
		}
		xValues[i] = t
	}

	portfolioSeries := chart.TimeSeries{
		Name: "Portfolio",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex(portfolioStrokeHex),
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: series.Portfolio,
	}

	benchmarkSeries := chart.TimeSeries{
		Name: "Benchmark (S&P 500)",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex(benchmarkStrokeHex),
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: series.Benchmark,
	}

	graph := chart.Chart{
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 30, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 06")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Series: []chart.Series{
			portfolioSeries,
			benchmarkSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("performance chart render failed: %w", err)
	}

	return pngDataURI(buf.Bytes()), nil
}

// AllocationChart renders the asset-allocation donut as a PNG data URI.
// Segment order and colors follow the buckets so the HTML legend stays in
// sync. Returns empty when there is nothing to chart.
func AllocationChart(buckets []models.AllocationBucket) (string, error) {
	if len(buckets) == 0 {
		return "", nil
	}

	values := make([]chart.Value, 0, len(buckets))
	for _, b := range buckets {
		if b.WeightPct <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: b.WeightPct,
			Label: fmt.Sprintf("%s %.1f%%", b.Category, b.WeightPct),
			Style: chart.Style{
				FillColor:   drawing.ColorFromHex(strings.TrimPrefix(b.Color, "#")),
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}
	if len(values) == 0 {
		return "", nil
	}

	graph := chart.DonutChart{
		Width:  500,
		Height: 500,
		Values: values,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return "", fmt.Errorf("allocation chart render failed: %w", err)
	}

	return pngDataURI(buf.Bytes()), nil
}

func pngDataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}
