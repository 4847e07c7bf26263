// Package models defines data structures for the advisor report pipeline
package models

// Goal is the investor's stated investment objective, derived from quiz text.
type Goal string

const (
	GoalAvoidLoss        Goal = "avoid_loss"
	GoalGrowCautiously   Goal = "grow_cautiously"
	GoalGrowModerately   Goal = "grow_moderately"
	GoalGrowAggressively Goal = "grow_aggressively"
	GoalUnknown          Goal = "unknown"
)

// RiskBehavior is the investor's stated reaction to a market downturn.
type RiskBehavior string

const (
	RiskSellEverything RiskBehavior = "sell_everything"
	RiskSellSome       RiskBehavior = "sell_some"
	RiskHold           RiskBehavior = "hold"
	RiskBuyMore        RiskBehavior = "buy_more"
	RiskUnknown        RiskBehavior = "unknown"
)

// TimeHorizon is the investor's investment horizon bucket.
type TimeHorizon string

const (
	HorizonShort      TimeHorizon = "short"       // 1-3 years
	HorizonMedium     TimeHorizon = "medium"      // 3-5 years
	HorizonLongMedium TimeHorizon = "long_medium" // 6-10 years
	HorizonLong       TimeHorizon = "long"        // 10+ years
	HorizonUnknown    TimeHorizon = "unknown"
)

// Display returns the horizon as the phrase shown on the report.
func (h TimeHorizon) Display() string {
	switch h {
	case HorizonShort:
		return "1-3 years"
	case HorizonMedium:
		return "3-5 years"
	case HorizonLongMedium:
		return "6-10 years"
	case HorizonLong:
		return "10+ years"
	default:
		return "-"
	}
}

// Contact holds investor contact details. Free text, display only.
type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserProfile is the structured result of parsing a quiz transcript.
// Constructed once per report request; every field has a deterministic
// default when the source text contains nothing recognizable.
type UserProfile struct {
	Goal             Goal         `json:"goal"`
	RiskBehavior     RiskBehavior `json:"risk_behavior"`
	TimeHorizon      TimeHorizon  `json:"time_horizon"`
	InvestmentAmount float64      `json:"investment_amount"` // 0 when absent/unparsable
	Contact          Contact      `json:"contact"`
	Age              string       `json:"age,omitempty"`
	CustomerID       string       `json:"customer_id,omitempty"`
	PortfolioID      int          `json:"portfolio_id,omitempty"` // explicit override, 0 when absent
	PreferredTopics  []string     `json:"preferred_topics,omitempty"`
}

// PortfolioSelection maps a profile onto one of the model portfolios.
type PortfolioSelection struct {
	PortfolioID      int    `json:"portfolio_id"`
	RiskProfileLabel string `json:"risk_profile_label"` // Low, Moderate, High, Custom
}

// Model portfolio identifiers.
const (
	PortfolioConservative = 1
	PortfolioBalanced     = 2
	PortfolioAggressive   = 3
)

// Risk profile labels shown on the report.
const (
	RiskLabelLow      = "Low"
	RiskLabelModerate = "Moderate"
	RiskLabelHigh     = "High"
	RiskLabelCustom   = "Custom"
)
