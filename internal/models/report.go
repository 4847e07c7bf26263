package models

import (
	"encoding/gob"
	"time"
)

func init() {
	gob.Register(ReportRecord{})
	gob.Register(ReportSequence{})
}

// AllocationBucket is an asset-category aggregate of holding weights.
// Bucket order is first-seen category order and must match the chart
// segment order.
type AllocationBucket struct {
	Category  string  `json:"category"`
	WeightPct float64 `json:"weight_pct"`
	Color     string  `json:"color"`
}

// PerformanceSeries holds date-aligned compounded values for portfolio and
// benchmark, both rebased to the same starting value. Dates, Labels,
// Portfolio, and Benchmark are always the same length.
type PerformanceSeries struct {
	Dates     []string  `json:"dates"`  // "2006-01-02"
	Labels    []string  `json:"labels"` // display form, e.g. "Jan 2024"
	Portfolio []float64 `json:"portfolio"`
	Benchmark []float64 `json:"benchmark"`
}

// MethodologyContent is the editorial text block selected for the
// investor's risk profile and time bucket.
type MethodologyContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

// ScenarioReturns are the best/average/worst one-year outcomes implied by
// the portfolio's equity/bond split.
type ScenarioReturns struct {
	BestPct    float64 `json:"best_pct"`
	AveragePct float64 `json:"average_pct"`
	WorstPct   float64 `json:"worst_pct"`
}

// HoldingRow is one display-ready line of the holdings table.
type HoldingRow struct {
	Ticker       string `json:"ticker"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	ExpenseRatio string `json:"expense_ratio"`
	Allocation   string `json:"allocation"` // formatted percent string
}

// ReportRecord is the flat assembled output used to render a report.
// Write-once; every field has a display-safe default when source data is
// missing (missing numeric -> "N/A", missing list -> empty, missing
// text -> "-").
type ReportRecord struct {
	ID          string    `json:"id" badgerhold:"key"`
	Number      int       `json:"number"` // output directory sequence
	GeneratedAt time.Time `json:"generated_at" badgerhold:"index"`
	ReportDate  string    `json:"report_date"` // "02 January 2006"

	InvestorName     string `json:"investor_name"`
	InvestorEmail    string `json:"investor_email"`
	Age              string `json:"age"`
	InvestmentAmount string `json:"investment_amount"` // "10,000" or "-"
	TimeHorizon      string `json:"time_horizon"`
	RiskProfile      string `json:"risk_profile"`
	PortfolioID      int    `json:"portfolio_id"`

	Holdings         []HoldingRow         `json:"holdings"`
	Allocation       []AllocationBucket   `json:"allocation"`
	Regions          []Region             `json:"regions"`
	TopPositions     []UnderlyingPosition `json:"top_positions"`
	Performance      *PerformanceSeries   `json:"performance,omitempty"`
	Scenarios        *ScenarioReturns     `json:"scenarios,omitempty"`
	Themes           []string             `json:"themes"`

	OneYearReturn          string `json:"one_year_return"`
	ThreeYearReturn        string `json:"three_year_return"`
	FiveYearReturn         string `json:"five_year_return"`
	Volatility             string `json:"volatility"`
	ThreeYearBenchmark     string `json:"three_year_benchmark"`
	FiveYearBenchmark      string `json:"five_year_benchmark"`
	BenchmarkVolatility    string `json:"benchmark_volatility"`

	MethodologyTitle       string   `json:"methodology_title"`
	MethodologyDescription string   `json:"methodology_description"`
	MethodologyBullets     []string `json:"methodology_bullets"`
	Narrative              string   `json:"narrative"`

	// Rendered chart payloads (data:image/png;base64 URIs, empty when the
	// underlying data was insufficient).
	PerformanceChart string `json:"performance_chart,omitempty"`
	AllocationChart  string `json:"allocation_chart,omitempty"`
}

// ReportSequence is the persisted output-numbering counter.
type ReportSequence struct {
	Key  string `json:"key" badgerhold:"key"`
	Next int    `json:"next"`
}
