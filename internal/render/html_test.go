package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paasa/advisor/internal/models"
)

func sampleRecord() *models.ReportRecord {
	return &models.ReportRecord{
		ID:               "abc-123",
		Number:           7,
		GeneratedAt:      time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		ReportDate:       "14 March 2026",
		InvestorName:     "Dana Whitfield",
		InvestorEmail:    "dana@example.com",
		Age:              "41",
		InvestmentAmount: "25,000",
		TimeHorizon:      "3-5 years",
		RiskProfile:      "Moderate",
		PortfolioID:      2,
		Holdings: []models.HoldingRow{
			{Ticker: "VTI", Name: "Total Market", Category: "U.S. stocks ETFs", ExpenseRatio: "0.03%", Allocation: "50.0%"},
		},
		Allocation: []models.AllocationBucket{
			{Category: "U.S. stocks ETFs", WeightPct: 50, Color: "#3b82f6"},
			{Category: "Bond ETFs", WeightPct: 30, Color: "#1e3a8a"},
		},
		Regions:      []models.Region{{Name: "North America", WeightPct: 62.5}},
		TopPositions: []models.UnderlyingPosition{{Symbol: "AAPL", WeightPct: 4.21}},
		Scenarios:    &models.ScenarioReturns{BestPct: 23, AveragePct: 8, WorstPct: -16},
		Themes:       []string{"U.S. stocks", "Diversification"},

		OneYearReturn:       "+12.3%",
		ThreeYearReturn:     "+6.1%",
		FiveYearReturn:      "N/A",
		Volatility:          "+14.2%",
		ThreeYearBenchmark:  "+7.8%",
		FiveYearBenchmark:   "N/A",
		BenchmarkVolatility: "N/A",

		MethodologyTitle:       "Global Diversification for Mid-Term Preservation",
		MethodologyDescription: "A balanced construction.",
		MethodologyBullets:     []string{"Diversified.", "Cost-effective."},
		Narrative:              "First paragraph.\n\nSecond paragraph.",
	}
}

func TestHTML_ReplacesEveryPlaceholder(t *testing.T) {
	doc, err := HTML(sampleRecord())
	require.NoError(t, err)

	assert.NotContains(t, doc, "{{", "unreplaced placeholder left in document")
	assert.Contains(t, doc, "Dana Whitfield")
	assert.Contains(t, doc, "14 March 2026")
	assert.Contains(t, doc, "+12.3%")
	assert.Contains(t, doc, "Global Diversification for Mid-Term Preservation")
}

func TestHTML_NilRecordFails(t *testing.T) {
	_, err := HTML(nil)
	require.Error(t, err)
}

func TestHTML_RiskBadgeClass(t *testing.T) {
	record := sampleRecord()

	record.RiskProfile = "Low"
	doc, err := HTML(record)
	require.NoError(t, err)
	assert.Contains(t, doc, `class="risk-badge low"`)
	assert.Contains(t, doc, ">LOW<")

	record.RiskProfile = "Moderate"
	doc, err = HTML(record)
	require.NoError(t, err)
	assert.Contains(t, doc, `class="risk-badge medium"`)

	record.RiskProfile = "Custom"
	doc, err = HTML(record)
	require.NoError(t, err)
	assert.Contains(t, doc, `class="risk-badge high"`, "unrecognized labels style as high")
}

func TestHTML_EscapesUserText(t *testing.T) {
	record := sampleRecord()
	record.InvestorName = `<script>alert("x")</script>`

	doc, err := HTML(record)
	require.NoError(t, err)
	assert.NotContains(t, doc, `<script>alert`)
	assert.Contains(t, doc, "&lt;script&gt;")
}

func TestHTML_EmbedsRecordJSON(t *testing.T) {
	doc, err := HTML(sampleRecord())
	require.NoError(t, err)

	assert.Contains(t, doc, `id="portfolio-data"`)
	assert.Contains(t, doc, `"id":"abc-123"`)
	// </ sequences in the payload must not close the script element.
	assert.NotContains(t, jsonForScript([]byte(`{"x":"</script>"}`)), "</script>")
}

func TestHTML_ScenariosNA(t *testing.T) {
	record := sampleRecord()
	record.Scenarios = nil

	doc, err := HTML(record)
	require.NoError(t, err)
	assert.Contains(t, doc, "N/A")
	assert.NotContains(t, doc, "{{SCENARIO")
}

func TestHTML_ChartFallback(t *testing.T) {
	record := sampleRecord()
	doc, err := HTML(record)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(doc, "chart-missing"), "both charts absent")

	record.PerformanceChart = "data:image/png;base64,AAAA"
	doc, err = HTML(record)
	require.NoError(t, err)
	assert.Contains(t, doc, `src="data:image/png;base64,AAAA"`)
	assert.Equal(t, 1, strings.Count(doc, "chart-missing"))
}

func TestNarrativeHTML_Paragraphs(t *testing.T) {
	got := narrativeHTML("One.\n\nTwo.\n\n\n")
	assert.Equal(t, "<p>One.</p><p>Two.</p>", got)
}
