// Package interfaces defines client, service, and storage contracts for the
// advisor pipeline
package interfaces

import (
	"context"
	"time"

	"github.com/paasa/advisor/internal/models"
)

// PortfolioClient fetches model-portfolio data from the advisory API.
type PortfolioClient interface {
	// GetPortfolio retrieves the analyzed portfolio for the given identifier.
	// An empty payload is a legitimate response; callers degrade to defaults.
	GetPortfolio(ctx context.Context, portfolioID int) (*models.PortfolioData, error)
}

// BenchmarkClient provides reference-index market data, used when the
// primary data source omits a benchmark series.
type BenchmarkClient interface {
	// GetBenchmarkReturns returns a date-keyed map of daily returns for the
	// reference index over [from, to].
	GetBenchmarkReturns(ctx context.Context, from, to time.Time) (map[string]float64, error)

	// GetExpenseRatio returns the fund's expense ratio as a percent string,
	// or "N/A" when unavailable.
	GetExpenseRatio(ctx context.Context, ticker string) (string, error)
}

// NarrativeClient generates the human-readable methodology narrative.
type NarrativeClient interface {
	// GenerateNarrative produces methodology text from the structured
	// profile and portfolio. Callers substitute canned fallback text on error.
	GenerateNarrative(ctx context.Context, profile *models.UserProfile, selection models.PortfolioSelection, data *models.PortfolioData) (string, error)
}
