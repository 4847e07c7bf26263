package render

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/models"
)

//go:embed template.html
var reportTemplate string

// HTML renders the assembled record into the self-contained report document.
// The template is a static skeleton with {{NAME}} placeholders; everything
// dynamic is substituted here, and the full record is injected as JSON for
// client-side consumers.
func HTML(record *models.ReportRecord) (string, error) {
	if record == nil {
		return "", fmt.Errorf("render html: record is required")
	}

	doc := reportTemplate

	replacements := map[string]string{
		"{{REPORT_DATE}}":            html.EscapeString(record.ReportDate),
		"{{REPORT_NUMBER}}":          fmt.Sprintf("%d", record.Number),
		"{{INVESTOR_NAME}}":          html.EscapeString(record.InvestorName),
		"{{INVESTOR_EMAIL}}":         html.EscapeString(record.InvestorEmail),
		"{{AGE}}":                    html.EscapeString(record.Age),
		"{{INVESTMENT_AMOUNT}}":      html.EscapeString(record.InvestmentAmount),
		"{{TIME_HORIZON}}":           html.EscapeString(record.TimeHorizon),
		"{{RISK_PROFILE}}":           html.EscapeString(strings.ToUpper(record.RiskProfile)),
		"{{ONE_YR_RETURN}}":          html.EscapeString(record.OneYearReturn),
		"{{THREE_YR_RETURN}}":        html.EscapeString(record.ThreeYearReturn),
		"{{FIVE_YR_RETURN}}":         html.EscapeString(record.FiveYearReturn),
		"{{VOLATILITY}}":             html.EscapeString(record.Volatility),
		"{{THREE_YR_BENCHMARK}}":     html.EscapeString(record.ThreeYearBenchmark),
		"{{FIVE_YR_BENCHMARK}}":      html.EscapeString(record.FiveYearBenchmark),
		"{{BENCHMARK_VOLATILITY}}":   html.EscapeString(record.BenchmarkVolatility),
		"{{METHODOLOGY_TITLE}}":      html.EscapeString(record.MethodologyTitle),
		"{{METHODOLOGY_TEXT}}":       html.EscapeString(record.MethodologyDescription),
		"{{PRINCIPLES_LIST}}":        principlesList(record.MethodologyBullets),
		"{{NARRATIVE}}":              narrativeHTML(record.Narrative),
		"{{HOLDINGS_ROWS}}":          holdingsRows(record.Holdings),
		"{{ALLOCATION_LEGEND}}":      allocationLegend(record.Allocation),
		"{{REGIONS_ROWS}}":           regionsRows(record.Regions),
		"{{STOCKS_LIST}}":            stocksList(record.TopPositions),
		"{{THEMES_LIST}}":            themesList(record.Themes),
		"{{SCENARIO_BEST}}":          scenarioValue(record.Scenarios, scenarioBest),
		"{{SCENARIO_AVERAGE}}":       scenarioValue(record.Scenarios, scenarioAverage),
		"{{SCENARIO_WORST}}":         scenarioValue(record.Scenarios, scenarioWorst),
		"{{PERFORMANCE_CHART_IMG}}":  chartImg(record.PerformanceChart, "Portfolio performance vs benchmark"),
		"{{ALLOCATION_CHART_IMG}}":   chartImg(record.AllocationChart, "Asset allocation"),
	}

	for placeholder, value := range replacements {
		doc = strings.ReplaceAll(doc, placeholder, value)
	}

	doc = strings.Replace(doc, `class="risk-badge"`, fmt.Sprintf(`class="risk-badge %s"`, riskClass(record.RiskProfile)), 1)

	payload, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("render html: encode record: %w", err)
	}
	doc = strings.Replace(doc, "{{PORTFOLIO_JSON}}", jsonForScript(payload), 1)

	return doc, nil
}

// riskClass maps the display label onto the badge CSS class.
func riskClass(riskProfile string) string {
	switch strings.ToLower(riskProfile) {
	case "low":
		return "low"
	case "moderate", "medium":
		return "medium"
	}
	return "high"
}

func holdingsRows(rows []models.HoldingRow) string {
	var sb strings.Builder
	for i, r := range rows {
		fmt.Fprintf(&sb, `<tr>
<td class="num">%d</td>
<td class="ticker">%s</td>
<td>%s</td>
<td class="weight">%s</td>
<td class="muted">%s</td>
<td class="muted">%s</td>
</tr>`, i+1, html.EscapeString(r.Ticker), html.EscapeString(r.Name),
			html.EscapeString(r.Allocation), html.EscapeString(r.Category),
			html.EscapeString(r.ExpenseRatio))
	}
	return sb.String()
}

func allocationLegend(buckets []models.AllocationBucket) string {
	var sb strings.Builder
	for _, b := range buckets {
		fmt.Fprintf(&sb, `<div class="legend-item">
<span class="legend-color" style="background:%s;"></span>
<span class="legend-name">%s</span>
<span class="legend-percent">%s</span>
</div>`, html.EscapeString(b.Color), html.EscapeString(b.Category),
			common.FormatPct(b.WeightPct, 1))
	}
	return sb.String()
}

func regionsRows(regions []models.Region) string {
	var sb strings.Builder
	for _, r := range regions {
		fmt.Fprintf(&sb, `<tr><td>%s</td><td class="weight">%s</td></tr>`,
			html.EscapeString(r.Name), common.FormatPct(r.WeightPct, 1))
	}
	return sb.String()
}

func stocksList(positions []models.UnderlyingPosition) string {
	var sb strings.Builder
	for _, p := range positions {
		fmt.Fprintf(&sb, `<span class="stock-item"><span class="stock-symbol">%s</span> <span class="stock-weight">%s</span></span> `,
			html.EscapeString(p.Symbol), common.FormatPct(p.WeightPct, 2))
	}
	return sb.String()
}

func themesList(themes []string) string {
	var sb strings.Builder
	for _, t := range themes {
		fmt.Fprintf(&sb, `<span class="theme-chip">%s</span>`, html.EscapeString(t))
	}
	return sb.String()
}

func principlesList(bullets []string) string {
	var sb strings.Builder
	for _, b := range bullets {
		fmt.Fprintf(&sb, "<li>%s</li>", html.EscapeString(b))
	}
	return sb.String()
}

func narrativeHTML(narrative string) string {
	var sb strings.Builder
	for _, para := range strings.Split(narrative, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		fmt.Fprintf(&sb, "<p>%s</p>", html.EscapeString(para))
	}
	return sb.String()
}

type scenarioField int

const (
	scenarioBest scenarioField = iota
	scenarioAverage
	scenarioWorst
)

func scenarioValue(s *models.ScenarioReturns, field scenarioField) string {
	if s == nil {
		return common.NA
	}
	var v float64
	switch field {
	case scenarioBest:
		v = s.BestPct
	case scenarioAverage:
		v = s.AveragePct
	default:
		v = s.WorstPct
	}
	return fmt.Sprintf("%+.0f%%", v)
}

func chartImg(dataURI, alt string) string {
	if dataURI == "" {
		return `<div class="chart-missing">Chart not available</div>`
	}
	return fmt.Sprintf(`<img class="chart" src="%s" alt="%s">`, dataURI, html.EscapeString(alt))
}

// jsonForScript escapes the payload for embedding inside a <script> block.
func jsonForScript(payload []byte) string {
	s := string(payload)
	s = strings.ReplaceAll(s, "</", `<\/`)
	return s
}
