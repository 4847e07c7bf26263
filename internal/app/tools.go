package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createGetVersionTool returns the get_version tool definition
func createGetVersionTool() mcp.Tool {
	return mcp.NewTool("get_version",
		mcp.WithDescription("Get the advisor MCP server version and status. Use this to verify connectivity."),
	)
}

// createGenerateReportTool returns the generate_report tool definition
func createGenerateReportTool() mcp.Tool {
	return mcp.NewTool("generate_report",
		mcp.WithDescription("Generate a portfolio recommendation report from investor quiz text. Parses goals, risk tolerance, and time horizon, selects a model portfolio, and returns the assembled report."),
		mcp.WithString("quiz_text",
			mcp.Required(),
			mcp.Description("The investor's quiz answers as free text (labeled lines like 'Goal:', 'Risk:', 'Time Horizon:')"),
		),
		mcp.WithNumber("portfolio_id",
			mcp.Description("Explicit model portfolio to use (1=conservative, 2=balanced, 3=aggressive), overriding selection"),
		),
		mcp.WithBoolean("skip_output",
			mcp.Description("Skip writing output files to disk, return the report data only (default: false)"),
		),
	)
}

// createGetReportTool returns the get_report tool definition
func createGetReportTool() mcp.Tool {
	return mcp.NewTool("get_report",
		mcp.WithDescription("Retrieve a previously generated report by its ID."),
		mcp.WithString("report_id",
			mcp.Required(),
			mcp.Description("ID of the report to retrieve"),
		),
	)
}

// createListReportsTool returns the list_reports tool definition
func createListReportsTool() mcp.Tool {
	return mcp.NewTool("list_reports",
		mcp.WithDescription("List IDs of all generated reports, most recent first."),
	)
}
