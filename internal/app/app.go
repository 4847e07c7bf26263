// Package app wires configuration, storage, clients, services, and the MCP
// server into the shared core used by both advisor binaries.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/paasa/advisor/internal/clients/eodhd"
	"github.com/paasa/advisor/internal/clients/gemini"
	"github.com/paasa/advisor/internal/clients/paasa"
	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/interfaces"
	"github.com/paasa/advisor/internal/services/report"
	"github.com/paasa/advisor/internal/storage"
)

// App holds all initialized clients, the report service, and the MCP server.
type App struct {
	Config        *common.Config
	Logger        *common.Logger
	DB            *storage.BadgerDB
	Storage       interfaces.ReportStorage
	ReportService interfaces.ReportService
	MCPServer     *server.MCPServer
	StartupTime   time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes storage, clients, the report service, and the MCP
// server. configPath may be empty, in which case the default resolution
// logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	// Config resolution: explicit path, ADVISOR_CONFIG, binary dir, then
	// the development fallback.
	if configPath == "" {
		configPath = os.Getenv("ADVISOR_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "advisor.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/advisor.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	db, err := storage.NewBadgerDB(logger, &config.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	reportStorage := storage.NewReportStorage(db, logger)

	var portfolioClient interfaces.PortfolioClient
	if config.Clients.Paasa.BaseURL != "" && config.Clients.Paasa.BearerToken != "" {
		portfolioClient = paasa.NewClient(config.Clients.Paasa.BaseURL, config.Clients.Paasa.BearerToken,
			paasa.WithLogger(logger),
			paasa.WithRateLimit(config.Clients.Paasa.RateLimit),
			paasa.WithTimeout(config.Clients.Paasa.GetTimeout()),
		)
	} else {
		logger.Warn().Msg("Portfolio data source not configured - reports will render with placeholders")
	}

	var benchmarkClient interfaces.BenchmarkClient
	if config.Clients.EODHD.APIKey != "" {
		benchmarkClient = eodhd.NewClient(config.Clients.EODHD.APIKey,
			eodhd.WithBaseURL(config.Clients.EODHD.BaseURL),
			eodhd.WithLogger(logger),
			eodhd.WithRateLimit(config.Clients.EODHD.RateLimit),
			eodhd.WithTimeout(config.Clients.EODHD.GetTimeout()),
		)
	} else {
		logger.Warn().Msg("EODHD API key not configured - benchmark fallback will be unavailable")
	}

	var narrativeClient interfaces.NarrativeClient
	if config.Clients.Gemini.APIKey != "" {
		geminiClient, err := gemini.NewClient(context.Background(), config.Clients.Gemini.APIKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.Gemini.Model),
			gemini.WithTimeout(config.Clients.Gemini.GetTimeout()),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client")
		} else {
			narrativeClient = geminiClient
		}
	} else {
		logger.Warn().Msg("Gemini API key not configured - narrative will use fallback text")
	}

	reportService := report.NewService(reportStorage, portfolioClient, benchmarkClient, narrativeClient, logger, config.OutputDir)

	mcpServer := server.NewMCPServer(
		"advisor",
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:        config,
		Logger:        logger,
		DB:            db,
		Storage:       reportStorage,
		ReportService: reportService,
		MCPServer:     mcpServer,
		StartupTime:   startupStart,
	}

	a.registerTools()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("Failed to close storage")
		}
		a.DB = nil
	}
}

// registerTools registers all MCP tools on the App's MCPServer.
func (a *App) registerTools() {
	s := a.MCPServer

	s.AddTool(createGetVersionTool(), handleGetVersion())
	s.AddTool(createGenerateReportTool(), handleGenerateReport(a.ReportService, a.Logger))
	s.AddTool(createGetReportTool(), handleGetReport(a.ReportService, a.Logger))
	s.AddTool(createListReportsTool(), handleListReports(a.ReportService, a.Logger))
}
