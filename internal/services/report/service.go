package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/interfaces"
	"github.com/paasa/advisor/internal/models"
	"github.com/paasa/advisor/internal/quiz"
	"github.com/paasa/advisor/internal/render"
	"github.com/paasa/advisor/internal/selector"
	"github.com/paasa/advisor/internal/storage"
)

// Service runs the report pipeline: parse, select, fetch, enhance, assemble,
// render, store. Upstream failures degrade the report instead of failing it;
// the only hard-failure inputs are a missing required portfolio identifier
// and storage errors.
type Service struct {
	storage   interfaces.ReportStorage
	portfolio interfaces.PortfolioClient
	benchmark interfaces.BenchmarkClient
	narrative interfaces.NarrativeClient
	logger    *common.Logger
	outputDir string
}

// NewService wires the pipeline. The benchmark and narrative clients are
// optional; a nil client skips that enhancement step.
func NewService(store interfaces.ReportStorage, portfolioClient interfaces.PortfolioClient, benchmarkClient interfaces.BenchmarkClient, narrativeClient interfaces.NarrativeClient, logger *common.Logger, outputDir string) *Service {
	return &Service{
		storage:   store,
		portfolio: portfolioClient,
		benchmark: benchmarkClient,
		narrative: narrativeClient,
		logger:    logger,
		outputDir: outputDir,
	}
}

// Generate runs the full pipeline for one quiz transcript.
func (s *Service) Generate(ctx context.Context, quizText string, options interfaces.GenerateOptions) (*models.ReportRecord, error) {
	profile := quiz.Parse(quizText)

	selection, err := s.resolveSelection(profile, options)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int("portfolio_id", selection.PortfolioID).
		Str("risk_profile", selection.RiskProfileLabel).
		Str("goal", string(profile.Goal)).
		Msg("Portfolio selected")

	data := s.fetchPortfolio(ctx, selection.PortfolioID)
	s.ensureBenchmarkReturns(ctx, data)
	s.enrichExpenseRatios(ctx, data)

	record, err := BuildRecord(profile, selection, data, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to assemble report: %w", err)
	}

	record.ID = uuid.NewString()
	record.Narrative = s.generateNarrative(ctx, profile, selection, data)
	s.renderCharts(record)

	number, err := s.storage.NextReportNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate report number: %w", err)
	}
	record.Number = number

	if !options.SkipOutput {
		doc, err := render.HTML(record)
		if err != nil {
			return nil, fmt.Errorf("failed to render report: %w", err)
		}
		paths, err := storage.WriteOutput(s.outputDir, record, doc)
		if err != nil {
			return nil, err
		}
		s.logger.Info().Str("html", paths.HTML).Str("json", paths.JSON).Msg("Report written")
	}

	if err := s.storage.SaveReport(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// GetReport retrieves a stored report by ID.
func (s *Service) GetReport(ctx context.Context, id string) (*models.ReportRecord, error) {
	return s.storage.GetReport(ctx, id)
}

// ListReports returns stored report IDs, most recent first.
func (s *Service) ListReports(ctx context.Context) ([]string, error) {
	return s.storage.ListReports(ctx)
}

// resolveSelection applies the identifier precedence: explicit option, then
// identifier parsed from the quiz text, then the profile rules.
func (s *Service) resolveSelection(profile *models.UserProfile, options interfaces.GenerateOptions) (models.PortfolioSelection, error) {
	switch {
	case options.PortfolioID > 0:
		return selector.SelectionFor(options.PortfolioID), nil
	case profile.PortfolioID > 0:
		return selector.SelectionFor(profile.PortfolioID), nil
	case options.RequirePortfolioID:
		return models.PortfolioSelection{}, fmt.Errorf("no portfolio ID provided and none found in input")
	}
	return selector.Select(profile), nil
}

// fetchPortfolio retrieves portfolio data, degrading to an empty payload on
// any client failure. The report still renders with placeholders.
func (s *Service) fetchPortfolio(ctx context.Context, portfolioID int) *models.PortfolioData {
	if s.portfolio == nil {
		return &models.PortfolioData{}
	}
	data, err := s.portfolio.GetPortfolio(ctx, portfolioID)
	if err != nil {
		s.logger.Warn().Err(err).Int("portfolio_id", portfolioID).Msg("Portfolio fetch failed, continuing with empty data")
		return &models.PortfolioData{}
	}
	if data.IsEmpty() {
		s.logger.Warn().Int("portfolio_id", portfolioID).Msg("Portfolio data source returned an empty payload")
	}
	return data
}

// ensureBenchmarkReturns fills the benchmark series from the reference-index
// client when the primary source supplied portfolio returns without a
// benchmark to compare them against.
func (s *Service) ensureBenchmarkReturns(ctx context.Context, data *models.PortfolioData) {
	if s.benchmark == nil || len(data.PortfolioReturns) == 0 || len(data.BenchmarkReturns) > 0 {
		return
	}

	from, to, ok := returnsDateSpan(data.PortfolioReturns)
	if !ok {
		return
	}

	returns, err := s.benchmark.GetBenchmarkReturns(ctx, from, to)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Benchmark fetch failed, chart will omit the benchmark series")
		return
	}
	data.BenchmarkReturns = returns
}

// enrichExpenseRatios looks up expense ratios for the displayed holdings
// that the primary source left blank.
func (s *Service) enrichExpenseRatios(ctx context.Context, data *models.PortfolioData) {
	if s.benchmark == nil {
		return
	}
	for i := range data.Holdings {
		if i >= maxHoldingRows {
			break
		}
		h := &data.Holdings[i]
		if h.ExpenseRatio != "" && h.ExpenseRatio != common.NA {
			continue
		}
		if h.Ticker == "" {
			continue
		}
		ratio, err := s.benchmark.GetExpenseRatio(ctx, h.Ticker)
		if err != nil {
			s.logger.Debug().Err(err).Str("ticker", h.Ticker).Msg("Expense ratio lookup failed")
			continue
		}
		h.ExpenseRatio = ratio
	}
}

// generateNarrative produces the commentary text, substituting a fixed
// fallback when no client is configured or generation fails.
func (s *Service) generateNarrative(ctx context.Context, profile *models.UserProfile, selection models.PortfolioSelection, data *models.PortfolioData) string {
	if s.narrative != nil {
		text, err := s.narrative.GenerateNarrative(ctx, profile, selection, data)
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			s.logger.Warn().Err(err).Msg("Narrative generation failed, using fallback text")
		}
	}
	return fallbackNarrative(selection, profile)
}

// renderCharts attaches chart data URIs, leaving them empty when the data
// is insufficient or rendering fails.
func (s *Service) renderCharts(record *models.ReportRecord) {
	performance, err := render.PerformanceChart(record.Performance)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Performance chart render failed")
	}
	record.PerformanceChart = performance

	allocation, err := render.AllocationChart(record.Allocation)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Allocation chart render failed")
	}
	record.AllocationChart = allocation
}

// returnsDateSpan finds the first and last dates of a daily return series.
func returnsDateSpan(returns map[string]float64) (time.Time, time.Time, bool) {
	if len(returns) == 0 {
		return time.Time{}, time.Time{}, false
	}
	dates := make([]string, 0, len(returns))
	for d := range returns {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	from, err := time.Parse("2006-01-02", dates[0])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse("2006-01-02", dates[len(dates)-1])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// fallbackNarrative is the commentary used when generation is unavailable.
func fallbackNarrative(selection models.PortfolioSelection, profile *models.UserProfile) string {
	return fmt.Sprintf(
		"This portfolio was selected to match a %s risk profile over a %s investment horizon. "+
			"It combines broad-market equity exposure with stabilizing assets in proportions appropriate "+
			"to that profile, prioritizing diversification across sectors and geographies while keeping "+
			"costs low through ETF-based construction. Allocations are reviewed against long-run capital "+
			"market assumptions rather than short-term market movements.",
		selection.RiskProfileLabel, profile.TimeHorizon.Display())
}

var _ interfaces.ReportService = (*Service)(nil)
