package report

import (
	"math"
	"sort"
	"time"

	"github.com/paasa/advisor/internal/models"
)

const (
	// SeriesBase is the common starting value both series are rebased to.
	SeriesBase = 10000.0

	// Window bounds on the number of trading dates charted.
	minSeriesDates = 60
	maxSeriesDates = 252
)

// buildPerformanceSeries compounds daily returns into date-aligned growth
// series for portfolio and benchmark. The window is the most recent
// min(252, max(60, available)) dates of the portfolio series, walked in
// ascending order. A date is skipped only when BOTH returns are exactly
// zero; a genuine zero on one side with movement on the other is kept, which
// keeps the two series aligned by construction. Values are rounded to two
// decimals after each step. Returns nil when the source has no return series.
func buildPerformanceSeries(portfolioReturns, benchmarkReturns map[string]float64) *models.PerformanceSeries {
	if len(portfolioReturns) == 0 {
		return nil
	}

	allDates := make([]string, 0, len(portfolioReturns))
	for d := range portfolioReturns {
		allDates = append(allDates, d)
	}
	sort.Strings(allDates)

	// Window: at most 252 trading dates; when fewer than 60 are available
	// the whole series is charted rather than nothing.
	n := len(allDates)
	points := n
	if points > maxSeriesDates {
		points = maxSeriesDates
	}
	dates := allDates[n-points:]

	series := &models.PerformanceSeries{}
	portfolioBase := SeriesBase
	benchmarkBase := SeriesBase

	for _, d := range dates {
		pReturn := portfolioReturns[d]
		bReturn := benchmarkReturns[d]

		if pReturn == 0 && bReturn == 0 {
			continue
		}

		portfolioBase = round2(portfolioBase * (1 + pReturn))
		benchmarkBase = round2(benchmarkBase * (1 + bReturn))

		series.Dates = append(series.Dates, d)
		series.Labels = append(series.Labels, displayDate(d))
		series.Portfolio = append(series.Portfolio, portfolioBase)
		series.Benchmark = append(series.Benchmark, benchmarkBase)
	}

	if len(series.Dates) == 0 {
		return nil
	}
	return series
}

// deriveBenchmarkThreeYr annualizes the last three years of benchmark daily
// returns: (compounded)^(1/3) - 1, as a percentage. Returns nil with fewer
// than three years (756 trading days) of data.
func deriveBenchmarkThreeYr(benchmarkReturns map[string]float64) *float64 {
	const threeYears = 252 * 3
	if len(benchmarkReturns) < threeYears {
		return nil
	}

	dates := make([]string, 0, len(benchmarkReturns))
	for d := range benchmarkReturns {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	base := 1.0
	for _, d := range dates[len(dates)-threeYears:] {
		base *= 1 + benchmarkReturns[d]
	}
	if base <= 0 {
		return nil
	}

	annualized := (math.Pow(base, 1.0/3.0) - 1) * 100
	return &annualized
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// displayDate converts "2006-01-02" into the chart label form "Jan 2006".
// Unparsable dates pass through unchanged.
func displayDate(d string) string {
	t, err := time.Parse("2006-01-02", d)
	if err != nil {
		return d
	}
	return t.Format("Jan 2006")
}
