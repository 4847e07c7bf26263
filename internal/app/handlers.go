package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/interfaces"
	"github.com/paasa/advisor/internal/models"
)

// handleGetVersion implements the get_version tool
func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("Advisor MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.GetVersion(), common.GetBuild(), common.GetGitCommit())
		return textResult(result), nil
	}
}

// handleGenerateReport implements the generate_report tool
func handleGenerateReport(reportService interfaces.ReportService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		quizText, err := request.RequireString("quiz_text")
		if err != nil || strings.TrimSpace(quizText) == "" {
			return errorResult("Error: quiz_text parameter is required"), nil
		}

		options := interfaces.GenerateOptions{
			PortfolioID: request.GetInt("portfolio_id", 0),
			SkipOutput:  request.GetBool("skip_output", false),
		}

		record, err := reportService.Generate(ctx, quizText, options)
		if err != nil {
			logger.Error().Err(err).Msg("Report generation failed")
			return errorResult(fmt.Sprintf("Generation error: %v", err)), nil
		}

		return textResult(formatReportSummary(record)), nil
	}
}

// handleGetReport implements the get_report tool
func handleGetReport(reportService interfaces.ReportService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		reportID, err := request.RequireString("report_id")
		if err != nil || reportID == "" {
			return errorResult("Error: report_id parameter is required"), nil
		}

		record, err := reportService.GetReport(ctx, reportID)
		if err != nil {
			logger.Error().Err(err).Str("report_id", reportID).Msg("Report lookup failed")
			return errorResult(fmt.Sprintf("Lookup error: %v", err)), nil
		}

		// Chart payloads are large and useless to an LLM consumer.
		record.PerformanceChart = ""
		record.AllocationChart = ""

		data, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return errorResult(fmt.Sprintf("Encoding error: %v", err)), nil
		}
		return textResult(string(data)), nil
	}
}

// handleListReports implements the list_reports tool
func handleListReports(reportService interfaces.ReportService, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ids, err := reportService.ListReports(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("Report listing failed")
			return errorResult(fmt.Sprintf("List error: %v", err)), nil
		}
		if len(ids) == 0 {
			return textResult("No reports generated yet."), nil
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%d report(s), most recent first:\n", len(ids)))
		for _, id := range ids {
			sb.WriteString("- " + id + "\n")
		}
		return textResult(sb.String()), nil
	}
}

// formatReportSummary renders a compact markdown summary of a generated report.
func formatReportSummary(record *models.ReportRecord) string {
	var sb strings.Builder

	sb.WriteString("# Portfolio Report Generated\n\n")
	sb.WriteString(fmt.Sprintf("**ID:** %s\n", record.ID))
	sb.WriteString(fmt.Sprintf("**Number:** %d\n", record.Number))
	sb.WriteString(fmt.Sprintf("**Investor:** %s (%s)\n", record.InvestorName, record.InvestorEmail))
	sb.WriteString(fmt.Sprintf("**Risk Profile:** %s (portfolio %d)\n", record.RiskProfile, record.PortfolioID))
	sb.WriteString(fmt.Sprintf("**Time Horizon:** %s\n", record.TimeHorizon))
	sb.WriteString(fmt.Sprintf("**Amount:** $%s\n\n", record.InvestmentAmount))

	if len(record.Holdings) > 0 {
		sb.WriteString("## Holdings\n")
		for _, h := range record.Holdings {
			sb.WriteString(fmt.Sprintf("- %s %s (%s) %s\n", h.Ticker, h.Name, h.Category, h.Allocation))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Performance\n")
	sb.WriteString(fmt.Sprintf("- 1Y: %s, 3Y: %s, 5Y: %s, Volatility: %s\n",
		record.OneYearReturn, record.ThreeYearReturn, record.FiveYearReturn, record.Volatility))

	return sb.String()
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
