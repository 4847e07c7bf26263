package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/models"
	"github.com/paasa/advisor/internal/selector"
)

func testNow() time.Time {
	return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func balancedProfile() *models.UserProfile {
	return &models.UserProfile{
		Goal:             models.GoalGrowModerately,
		RiskBehavior:     models.RiskHold,
		TimeHorizon:      models.HorizonMedium,
		InvestmentAmount: 25000,
		Contact:          models.Contact{Name: "Dana Whitfield", Email: "dana@example.com"},
		Age:              "41",
	}
}

func TestBuildRecord_NilProfileFails(t *testing.T) {
	_, err := BuildRecord(nil, models.PortfolioSelection{}, &models.PortfolioData{}, testNow())
	require.Error(t, err)
}

func TestBuildRecord_EmptyDataRendersPlaceholders(t *testing.T) {
	profile := &models.UserProfile{
		Goal:         models.GoalAvoidLoss,
		RiskBehavior: models.RiskSellEverything,
		TimeHorizon:  models.HorizonShort,
	}
	selection := selector.Select(profile)

	record, err := BuildRecord(profile, selection, &models.PortfolioData{}, testNow())
	require.NoError(t, err)

	assert.Equal(t, "14 March 2026", record.ReportDate)
	assert.Equal(t, common.Placeholder, record.InvestorName)
	assert.Equal(t, common.Placeholder, record.InvestorEmail)
	assert.Equal(t, common.Placeholder, record.InvestmentAmount)
	assert.Equal(t, models.RiskLabelLow, record.RiskProfile)

	assert.Empty(t, record.Holdings)
	assert.Empty(t, record.Allocation)
	assert.Nil(t, record.Performance)
	assert.Nil(t, record.Scenarios)

	for _, metric := range []string{
		record.OneYearReturn, record.ThreeYearReturn, record.FiveYearReturn,
		record.Volatility, record.ThreeYearBenchmark, record.FiveYearBenchmark,
		record.BenchmarkVolatility,
	} {
		assert.Equal(t, common.NA, metric)
	}

	// Copy still selected for the conservative short-horizon case.
	assert.NotEmpty(t, record.MethodologyTitle)
	assert.NotEmpty(t, record.MethodologyBullets)

	// Filler themes pad the list even with no holdings or topics.
	assert.NotEmpty(t, record.Themes)
}

func TestBuildRecord_NilDataTreatedAsEmpty(t *testing.T) {
	record, err := BuildRecord(balancedProfile(), selector.SelectionFor(2), nil, testNow())
	require.NoError(t, err)
	assert.Empty(t, record.Holdings)
}

func TestBuildRecord_SourceRiskLevelWins(t *testing.T) {
	data := &models.PortfolioData{RiskLevel: "high"}
	record, err := BuildRecord(balancedProfile(), selector.SelectionFor(1), data, testNow())
	require.NoError(t, err)
	assert.Equal(t, models.RiskLabelHigh, record.RiskProfile)
}

func TestBuildRecord_MetricsFormatted(t *testing.T) {
	oneYr, threeYr := 12.345, -4.0
	data := &models.PortfolioData{
		OneYrAnnualized:   &oneYr,
		ThreeYrAnnualized: &threeYr,
	}

	record, err := BuildRecord(balancedProfile(), selector.SelectionFor(2), data, testNow())
	require.NoError(t, err)

	assert.Equal(t, "+12.3%", record.OneYearReturn)
	assert.Equal(t, "-4.0%", record.ThreeYearReturn)
	assert.Equal(t, common.NA, record.FiveYearReturn)
	assert.Equal(t, "25,000", record.InvestmentAmount)
}

func TestBuildHoldingRows_TruncatesAndDefaults(t *testing.T) {
	holdings := make([]models.Holding, 12)
	for i := range holdings {
		holdings[i] = models.Holding{Ticker: "VTI", Name: "Total Market", Category: "U.S. stocks ETFs", WeightPct: 5}
	}
	holdings[0] = models.Holding{WeightPct: 2.5}

	rows := buildHoldingRows(holdings)
	require.Len(t, rows, maxHoldingRows)

	assert.Equal(t, common.NA, rows[0].Ticker)
	assert.Equal(t, common.NA, rows[0].Name)
	assert.Equal(t, common.NA, rows[0].ExpenseRatio)
	assert.Equal(t, "2.5%", rows[0].Allocation)
}

func TestBuildAllocationBuckets_AggregatesAllHoldings(t *testing.T) {
	holdings := []models.Holding{
		{Category: "Bond ETFs", WeightPct: 30},
		{Category: "U.S. stocks ETFs", WeightPct: 25},
		{Category: "Bond ETFs", WeightPct: 20},
		{Category: "Technology ETFs", WeightPct: 10},
	}

	buckets := buildAllocationBuckets(holdings)
	require.Len(t, buckets, 3)

	// First-seen order with summed weights.
	assert.Equal(t, "Bond ETFs", buckets[0].Category)
	assert.Equal(t, 50.0, buckets[0].WeightPct)
	assert.Equal(t, "#1e3a8a", buckets[0].Color)
	assert.Equal(t, "U.S. stocks ETFs", buckets[1].Category)
	assert.Equal(t, "Technology ETFs", buckets[2].Category)

	var total float64
	for _, b := range buckets {
		total += b.WeightPct
	}
	assert.Equal(t, 85.0, total, "bucket weights preserve the source sum")
}

func TestCategoryColor_DefaultForUnknown(t *testing.T) {
	assert.Equal(t, "#6b7280", CategoryColor("Mystery ETFs"))
	assert.Equal(t, "#f97316", CategoryColor("Emerging markets ETFs"))
}

func TestBuildRecord_RegionsAndPositionsTruncated(t *testing.T) {
	data := &models.PortfolioData{}
	for i := 0; i < 9; i++ {
		data.Regions = append(data.Regions, models.Region{Name: "Region", WeightPct: 1})
	}
	for i := 0; i < 14; i++ {
		data.UnderlyingPositions = append(data.UnderlyingPositions, models.UnderlyingPosition{Symbol: "AAPL", WeightPct: 1})
	}

	record, err := BuildRecord(balancedProfile(), selector.SelectionFor(2), data, testNow())
	require.NoError(t, err)
	assert.Len(t, record.Regions, maxRegionRows)
	assert.Len(t, record.TopPositions, maxPositionRows)
}

func TestBuildThemes(t *testing.T) {
	holdings := []models.Holding{
		{Category: "U.S. stocks ETFs"},
		{Category: "Emerging markets ETFs"},
		{Category: "Bond ETFs"},
		{Category: "Technology ETFs"}, // beyond the first 3, ignored
	}
	regions := []models.Region{
		{Name: "North America"},
		{Name: "Europe"},
		{Name: "Asia"}, // beyond the first 2, ignored
	}
	topics := []string{"Clean Energy", "Diversification"} // second already covered by filler later

	themes := buildThemes(holdings, regions, topics)

	require.Len(t, themes, maxThemes)
	assert.Equal(t, "U.S. stocks", themes[0])
	assert.Equal(t, "Emerging Markets", themes[1])
	assert.Equal(t, "Bond", themes[2])
	assert.Equal(t, "North America", themes[3])
	assert.Equal(t, "Europe", themes[4])
	assert.Equal(t, "Clean Energy", themes[5])
	assert.Equal(t, "Diversification", themes[6])

	// No duplicates anywhere in the final list.
	seen := map[string]bool{}
	for _, theme := range themes {
		assert.False(t, seen[theme], "duplicate theme %q", theme)
		seen[theme] = true
	}
}

func TestBuildThemes_FillerOnlyWhenEmpty(t *testing.T) {
	themes := buildThemes(nil, nil, nil)
	assert.Equal(t, fillerThemes, themes)
}

func TestSimplifyCategory(t *testing.T) {
	assert.Equal(t, "Emerging Markets", simplifyCategory("Emerging markets ETFs"))
	assert.Equal(t, "Bond", simplifyCategory("Bond ETFs"))
	assert.Equal(t, "Global Markets", simplifyCategory("Global markets ETFs"))
}

func TestBuildScenarios(t *testing.T) {
	buckets := []models.AllocationBucket{
		{Category: "U.S. stocks ETFs", WeightPct: 70},
		{Category: "Bond ETFs", WeightPct: 30},
	}

	s := buildScenarios(buckets)
	require.NotNil(t, s)

	// 0.7 equity / 0.3 bond: 0.7*28+0.3*10=22.6, 0.7*9+0.3*4=7.5, 0.7*-22+0.3*-2=-16.0
	assert.Equal(t, 23.0, s.BestPct)
	assert.Equal(t, 8.0, s.AveragePct)
	assert.Equal(t, -16.0, s.WorstPct)
}

func TestBuildScenarios_NoAllocation(t *testing.T) {
	assert.Nil(t, buildScenarios(nil))
	assert.Nil(t, buildScenarios([]models.AllocationBucket{{Category: "Bond ETFs", WeightPct: 0}}))
}

func TestBuildRecord_DerivedBenchmarkThreeYr(t *testing.T) {
	returns := make(map[string]float64)
	for i := 0; i < 252*3; i++ {
		returns[syntheticDate(i)] = 0.0003
	}
	data := &models.PortfolioData{BenchmarkReturns: returns}

	record, err := BuildRecord(balancedProfile(), selector.SelectionFor(2), data, testNow())
	require.NoError(t, err)
	assert.NotEqual(t, common.NA, record.ThreeYearBenchmark)
	assert.Contains(t, record.ThreeYearBenchmark, "+")
}

func TestBuildRecord_APIBenchmarkPreferred(t *testing.T) {
	three := 9.9
	data := &models.PortfolioData{
		Benchmark: &models.BenchmarkMetrics{ThreeYrAnnualized: &three},
	}

	record, err := BuildRecord(balancedProfile(), selector.SelectionFor(2), data, testNow())
	require.NoError(t, err)
	assert.Equal(t, "+9.9%", record.ThreeYearBenchmark)
}
