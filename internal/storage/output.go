package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paasa/advisor/internal/models"
)

// Output file names inside each portfolio_<n> directory.
const (
	htmlFileName = "portfolio_report.html"
	jsonFileName = "portfolio_data.json"
)

// OutputPaths are the files produced for one generated report.
type OutputPaths struct {
	Dir  string
	HTML string
	JSON string
}

// WriteOutput writes the report's output directory. The JSON record is
// written before the HTML so the raw data survives even when the document
// write fails partway.
func WriteOutput(outputDir string, record *models.ReportRecord, html string) (*OutputPaths, error) {
	dir := filepath.Join(outputDir, fmt.Sprintf("portfolio_%d", record.Number))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	paths := &OutputPaths{
		Dir:  dir,
		HTML: filepath.Join(dir, htmlFileName),
		JSON: filepath.Join(dir, jsonFileName),
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode report data: %w", err)
	}
	if err := os.WriteFile(paths.JSON, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report data: %w", err)
	}

	if err := os.WriteFile(paths.HTML, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write report document: %w", err)
	}

	return paths, nil
}
