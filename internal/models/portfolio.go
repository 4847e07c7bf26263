package models

// Holding is one position (ETF/stock) within a fetched portfolio.
type Holding struct {
	Ticker       string  `json:"ticker"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	WeightPct    float64 `json:"weight_pct"`
	ExpenseRatio string  `json:"expense_ratio"` // percent string or "N/A"
}

// Region is a geographic weight line.
type Region struct {
	Name      string  `json:"name"`
	WeightPct float64 `json:"weight_pct"`
}

// UnderlyingPosition is one of the top underlying positions across the
// portfolio's funds.
type UnderlyingPosition struct {
	Symbol    string  `json:"symbol"`
	WeightPct float64 `json:"weight_pct"`
}

// BenchmarkMetrics holds the benchmark sub-record of the data source
// response. Pointers distinguish "absent" from a genuine zero.
type BenchmarkMetrics struct {
	OneYrAnnualized   *float64 `json:"one_yr_annualized,omitempty"`
	ThreeYrAnnualized *float64 `json:"three_yr_annualized,omitempty"`
	FiveYrAnnualized  *float64 `json:"five_yr_annualized,omitempty"`
	Volatility        *float64 `json:"volatility,omitempty"`
}

// PortfolioData is the validated payload from the portfolio data source.
// The zero value is an empty portfolio, which is a legitimate (degraded)
// outcome, not an error.
type PortfolioData struct {
	Holdings            []Holding            `json:"holdings"`
	Regions             []Region             `json:"regions"`
	UnderlyingPositions []UnderlyingPosition `json:"underlying_positions"`
	RiskLevel           string               `json:"risk_level"` // authoritative when non-empty
	OneYrAnnualized     *float64             `json:"one_yr_annualized,omitempty"`
	ThreeYrAnnualized   *float64             `json:"three_yr_annualized,omitempty"`
	FiveYrAnnualized    *float64             `json:"five_yr_annualized,omitempty"`
	Volatility          *float64             `json:"volatility,omitempty"`
	Benchmark           *BenchmarkMetrics    `json:"benchmark,omitempty"`
	// Daily return series keyed by "2006-01-02" date strings.
	PortfolioReturns map[string]float64 `json:"portfolio_returns,omitempty"`
	BenchmarkReturns map[string]float64 `json:"benchmark_returns,omitempty"`
}

// IsEmpty reports whether the payload carries no usable data.
func (p *PortfolioData) IsEmpty() bool {
	if p == nil {
		return true
	}
	return len(p.Holdings) == 0 && len(p.Regions) == 0 &&
		len(p.UnderlyingPositions) == 0 && len(p.PortfolioReturns) == 0 &&
		p.RiskLevel == "" && p.FiveYrAnnualized == nil
}
