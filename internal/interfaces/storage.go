package interfaces

import (
	"context"

	"github.com/paasa/advisor/internal/models"
)

// ReportStorage persists assembled report records.
type ReportStorage interface {
	SaveReport(ctx context.Context, record *models.ReportRecord) error
	GetReport(ctx context.Context, id string) (*models.ReportRecord, error)
	ListReports(ctx context.Context) ([]string, error)
	DeleteReport(ctx context.Context, id string) error

	// NextReportNumber allocates the next output-directory number.
	// Safe under concurrent report generation.
	NextReportNumber(ctx context.Context) (int, error)

	Close() error
}
