// Package report assembles and generates portfolio recommendation reports
package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/models"
	"github.com/paasa/advisor/internal/selector"
)

// Display truncation limits.
const (
	maxHoldingRows  = 8
	maxRegionRows   = 5
	maxPositionRows = 10
	maxThemes       = 10
)

// categoryColors maps asset categories to chart colors. Legend entries use
// the same map so legend order and coloring always match chart segments.
var categoryColors = map[string]string{
	"Bond ETFs":             "#1e3a8a",
	"U.S. stocks ETFs":      "#3b82f6",
	"Global markets ETFs":   "#14b8a6",
	"Technology ETFs":       "#8b5cf6",
	"Emerging markets ETFs": "#f97316",
	"Commodities ETFs":      "#eab308",
}

const defaultCategoryColor = "#6b7280"

// CategoryColor returns the chart color for an asset category.
func CategoryColor(category string) string {
	if c, ok := categoryColors[category]; ok {
		return c
	}
	return defaultCategoryColor
}

// fillerThemes pads the theme list up to its fixed length.
var fillerThemes = []string{
	"Diversification", "Global Markets", "Cost-Effective ETFs", "Strategic Allocation",
	"Risk Management", "Capital Growth", "Market Exposure", "Asset Balance",
}

// BuildRecord merges the profile, selection, fetched portfolio data, and
// derived series into one flat display-ready record. Missing or malformed
// upstream data degrades to placeholders; only structurally invalid input
// (nil profile) is an error.
func BuildRecord(profile *models.UserProfile, selection models.PortfolioSelection, data *models.PortfolioData, now time.Time) (*models.ReportRecord, error) {
	if profile == nil {
		return nil, fmt.Errorf("build record: profile is required")
	}
	if data == nil {
		data = &models.PortfolioData{}
	}

	riskProfile := selector.ResolveRiskLabel(selection.PortfolioID, data.RiskLevel)
	methodology := methodologyContent(riskProfile, profile.TimeHorizon.Display())

	record := &models.ReportRecord{
		GeneratedAt:      now,
		ReportDate:       now.Format("02 January 2006"),
		InvestorName:     common.OrPlaceholder(profile.Contact.Name),
		InvestorEmail:    common.OrPlaceholder(profile.Contact.Email),
		Age:              common.OrPlaceholder(profile.Age),
		InvestmentAmount: common.FormatAmount(profile.InvestmentAmount),
		TimeHorizon:      profile.TimeHorizon.Display(),
		RiskProfile:      riskProfile,
		PortfolioID:      selection.PortfolioID,

		Holdings:     buildHoldingRows(data.Holdings),
		Allocation:   buildAllocationBuckets(data.Holdings),
		Regions:      truncateRegions(data.Regions),
		TopPositions: truncatePositions(data.UnderlyingPositions),
		Performance:  buildPerformanceSeries(data.PortfolioReturns, data.BenchmarkReturns),
		Themes:       buildThemes(data.Holdings, data.Regions, profile.PreferredTopics),

		OneYearReturn:   common.FormatSignedPct(data.OneYrAnnualized),
		ThreeYearReturn: common.FormatSignedPct(data.ThreeYrAnnualized),
		FiveYearReturn:  common.FormatSignedPct(data.FiveYrAnnualized),
		Volatility:      common.FormatSignedPct(data.Volatility),

		MethodologyTitle:       methodology.Title,
		MethodologyDescription: methodology.Description,
		MethodologyBullets:     methodology.Bullets,
	}

	record.Scenarios = buildScenarios(record.Allocation)

	// Benchmark metrics: API values where present, 3-year derived from the
	// benchmark daily series when the API omits it.
	var benchThreeYr, benchFiveYr, benchVol *float64
	if data.Benchmark != nil {
		benchThreeYr = data.Benchmark.ThreeYrAnnualized
		benchFiveYr = data.Benchmark.FiveYrAnnualized
		benchVol = data.Benchmark.Volatility
	}
	if benchThreeYr == nil {
		benchThreeYr = deriveBenchmarkThreeYr(data.BenchmarkReturns)
	}
	record.ThreeYearBenchmark = common.FormatSignedPct(benchThreeYr)
	record.FiveYearBenchmark = common.FormatSignedPct(benchFiveYr)
	record.BenchmarkVolatility = common.FormatSignedPct(benchVol)

	return record, nil
}

// buildHoldingRows formats the first holdings in source order. Unknown
// fields render as "N/A".
func buildHoldingRows(holdings []models.Holding) []models.HoldingRow {
	rows := make([]models.HoldingRow, 0, maxHoldingRows)
	for _, h := range holdings {
		if len(rows) >= maxHoldingRows {
			break
		}
		ratio := h.ExpenseRatio
		if ratio == "" {
			ratio = common.NA
		}
		rows = append(rows, models.HoldingRow{
			Ticker:       orNA(h.Ticker),
			Name:         orNA(h.Name),
			Category:     orNA(h.Category),
			ExpenseRatio: ratio,
			Allocation:   common.FormatPct(h.WeightPct, 1),
		})
	}
	return rows
}

// buildAllocationBuckets aggregates ALL holdings (not just the displayed
// rows) by category, summing weights and preserving first-seen order.
// Source weights are not assumed to sum to 100.
func buildAllocationBuckets(holdings []models.Holding) []models.AllocationBucket {
	index := make(map[string]int)
	var buckets []models.AllocationBucket

	for _, h := range holdings {
		category := orNA(h.Category)
		if i, ok := index[category]; ok {
			buckets[i].WeightPct += h.WeightPct
			continue
		}
		index[category] = len(buckets)
		buckets = append(buckets, models.AllocationBucket{
			Category:  category,
			WeightPct: h.WeightPct,
			Color:     CategoryColor(category),
		})
	}
	return buckets
}

func truncateRegions(regions []models.Region) []models.Region {
	if len(regions) > maxRegionRows {
		regions = regions[:maxRegionRows]
	}
	return regions
}

func truncatePositions(positions []models.UnderlyingPosition) []models.UnderlyingPosition {
	if len(positions) > maxPositionRows {
		positions = positions[:maxPositionRows]
	}
	return positions
}

// buildThemes constructs the deduplicated, order-preserving theme list:
// simplified categories of the first 3 holdings, then the first 2 region
// names, then up to 5 preferred topics, then filler until the list reaches
// 10 entries or the filler pool is exhausted.
func buildThemes(holdings []models.Holding, regions []models.Region, topics []string) []string {
	var themes []string
	seen := make(map[string]bool)

	add := func(theme string) {
		if theme == "" || seen[theme] || len(themes) >= maxThemes {
			return
		}
		seen[theme] = true
		themes = append(themes, theme)
	}

	for i, h := range holdings {
		if i >= 3 {
			break
		}
		add(simplifyCategory(h.Category))
	}

	for i, r := range regions {
		if i >= 2 {
			break
		}
		add(r.Name)
	}

	for i, t := range topics {
		if i >= 5 {
			break
		}
		add(t)
	}

	for _, f := range fillerThemes {
		if len(themes) >= maxThemes {
			break
		}
		add(f)
	}

	return themes
}

// simplifyCategory strips the " ETFs" suffix and title-cases "markets" for
// theme display (e.g. "Emerging markets ETFs" -> "Emerging Markets").
func simplifyCategory(category string) string {
	s := strings.ReplaceAll(category, " ETFs", "")
	return strings.ReplaceAll(s, "markets", "Markets")
}

// buildScenarios estimates best/average/worst one-year outcomes from the
// equity/bond split implied by the allocation buckets. Bond-like categories
// are those whose name contains "bond". Returns nil with no allocation.
func buildScenarios(buckets []models.AllocationBucket) *models.ScenarioReturns {
	var bond, total float64
	for _, b := range buckets {
		total += b.WeightPct
		if strings.Contains(strings.ToLower(b.Category), "bond") {
			bond += b.WeightPct
		}
	}
	if total <= 0 {
		return nil
	}

	bd := bond / total
	eq := 1 - bd

	return &models.ScenarioReturns{
		BestPct:    math.Round(eq*28 + bd*10),
		AveragePct: math.Round(eq*9 + bd*4),
		WorstPct:   math.Round(eq*-22 + bd*-2),
	}
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return common.NA
	}
	return s
}
