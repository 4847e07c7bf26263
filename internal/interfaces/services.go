package interfaces

import (
	"context"

	"github.com/paasa/advisor/internal/models"
)

// ReportService runs the report pipeline: parse, select, fetch, enhance,
// assemble, render, store.
type ReportService interface {
	// Generate runs the full pipeline for one quiz transcript and stores
	// the result. The report always renders, with placeholders for any
	// field that could not be determined.
	Generate(ctx context.Context, quizText string, options GenerateOptions) (*models.ReportRecord, error)

	// GetReport retrieves a stored report by ID.
	GetReport(ctx context.Context, id string) (*models.ReportRecord, error)

	// ListReports returns stored report IDs, most recent first.
	ListReports(ctx context.Context) ([]string, error)
}

// GenerateOptions configures report generation
type GenerateOptions struct {
	// PortfolioID overrides both the parsed and selected identifier when > 0.
	PortfolioID int

	// RequirePortfolioID makes generation fail when no explicit identifier
	// was supplied via option or quiz text (the one hard-failure input case).
	RequirePortfolioID bool

	// SkipOutput suppresses writing the output directory (server mode).
	SkipOutput bool
}
