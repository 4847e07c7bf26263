// Package selector maps a user profile onto one of the model portfolios.
package selector

import (
	"strings"

	"github.com/paasa/advisor/internal/models"
)

// Select maps goal and risk behavior to a portfolio identifier. Pure, total,
// no I/O. The conservative rule is evaluated first: when a profile signals
// both fear and appetite, caution wins. Ambiguous or unknown profiles are
// treated as moderate risk.
func Select(profile *models.UserProfile) models.PortfolioSelection {
	id := models.PortfolioBalanced

	switch {
	case isConservative(profile):
		id = models.PortfolioConservative
	case isAggressive(profile):
		id = models.PortfolioAggressive
	}

	return models.PortfolioSelection{
		PortfolioID:      id,
		RiskProfileLabel: defaultRiskLabel(id),
	}
}

// SelectionFor builds the selection for an explicitly requested portfolio
// identifier, bypassing the profile rules.
func SelectionFor(portfolioID int) models.PortfolioSelection {
	return models.PortfolioSelection{
		PortfolioID:      portfolioID,
		RiskProfileLabel: defaultRiskLabel(portfolioID),
	}
}

func isConservative(p *models.UserProfile) bool {
	if p.Goal == models.GoalAvoidLoss || p.Goal == models.GoalGrowCautiously {
		return true
	}
	return p.RiskBehavior == models.RiskSellEverything || p.RiskBehavior == models.RiskSellSome
}

func isAggressive(p *models.UserProfile) bool {
	return p.Goal == models.GoalGrowAggressively || p.RiskBehavior == models.RiskBuyMore
}

// defaultRiskLabel derives the display label from the identifier alone.
func defaultRiskLabel(portfolioID int) string {
	switch portfolioID {
	case models.PortfolioConservative:
		return models.RiskLabelLow
	case models.PortfolioAggressive:
		return models.RiskLabelHigh
	default:
		return models.RiskLabelModerate
	}
}

// ResolveRiskLabel applies the data source's authoritative risk level when
// present. The identifier is only a request parameter; the source's explicit
// label always wins for display.
func ResolveRiskLabel(portfolioID int, sourceRiskLevel string) string {
	switch strings.ToLower(strings.TrimSpace(sourceRiskLevel)) {
	case "high":
		return models.RiskLabelHigh
	case "low":
		return models.RiskLabelLow
	case "medium", "moderate":
		return models.RiskLabelModerate
	case "custom":
		return models.RiskLabelCustom
	}
	return defaultRiskLabel(portfolioID)
}
