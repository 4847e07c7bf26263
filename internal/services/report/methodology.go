package report

import (
	"strings"

	"github.com/paasa/advisor/internal/models"
)

// Time buckets used to select methodology copy.
const (
	bucketShort  = "short"
	bucketMedium = "medium"
	bucketLong   = "long"
)

// timeBucket coarsely groups an investment horizon phrase. "10+" style
// phrases are long, a fixed list of mid-length phrases are medium,
// everything else (including unknown) is short.
func timeBucket(horizon string) string {
	h := strings.ToLower(horizon)
	if strings.Contains(h, "10+") || strings.Contains(h, "more than 10") {
		return bucketLong
	}
	for _, m := range []string{"5+", "5-7", "5-10", "6-10", "7-10", "5 years", "7 years", "10 years"} {
		if strings.Contains(h, m) {
			return bucketMedium
		}
	}
	return bucketShort
}

// methodologyTable holds the editorial copy per (risk profile, time bucket).
// The Low profile carries a single entry for all horizons; unknown buckets
// fall back to medium within the matched profile.
var methodologyTable = map[string]map[string]models.MethodologyContent{
	models.RiskLabelLow: {
		bucketShort: lowMethodology,
		bucketMedium: lowMethodology,
		bucketLong:  lowMethodology,
	},
	models.RiskLabelModerate: {
		bucketShort: {
			Title:       "Global Diversification for Short-Term Preservation",
			Description: "We construct this balanced portfolio with 50% US equities as the core holding, complemented by strategic allocations to technology and emerging markets (10% each), and 30% bonds for stability. This mix targets steady growth while managing downside risk through diversified bond exposure and sector allocation across domestic and international markets.",
			Bullets: []string{
				"Balances growth potential with capital preservation.",
				"Globally diversified across equities, bonds, and growth sectors.",
				"Utilizes cost-effective Exchange Traded Funds (ETFs).",
				"Strategic asset allocation tailored for 1-3 year horizons.",
			},
		},
		bucketMedium: {
			Title:       "Global Diversification for Mid-Term Preservation",
			Description: "We construct this balanced portfolio with 50% US equities as the core holding, strategically enhanced by technology and emerging market exposure (10% each), and stabilized with 30% bonds. This allocation balances growth potential with risk management, providing steady wealth accumulation through diversified sector and geographic exposure.",
			Bullets: []string{
				"Balances growth and stability for mid-term goals.",
				"Globally diversified across equities, bonds, and emerging markets.",
				"Utilizes cost-effective Exchange Traded Funds (ETFs).",
				"Strategic asset allocation tailored for 5-10 year horizons.",
			},
		},
		bucketLong: {
			Title:       "Global Diversification for Long-Term Preservation",
			Description: "We construct this balanced portfolio with 50% US equities as the foundation, augmented by technology and emerging market allocations (10% each), and anchored by 30% bonds. This long-term allocation emphasizes consistent growth through diversified equity exposure while maintaining stability through strategic fixed-income positioning.",
			Bullets: []string{
				"Balances growth and stability for long-term horizons.",
				"Globally diversified across equities, bonds, and international markets.",
				"Utilizes cost-effective Exchange Traded Funds (ETFs).",
				"Strategic asset allocation optimized for 10+ year horizons.",
			},
		},
	},
	models.RiskLabelHigh: {
		bucketShort: {
			Title:       "Global Diversification for Short-Term Preservation",
			Description: "We construct this growth-focused portfolio with 50% US equities and 30% technology exposure to maximize capital appreciation. Strategic allocation to emerging markets (10%) provides additional growth potential, with minimal bond exposure (10%) for stability during market volatility. This aggressive positioning targets maximum returns through concentrated exposure to high-growth sectors.",
			Bullets: []string{
				"Maximizes growth potential through strategic concentration.",
				"Globally diversified across technology and emerging markets.",
				"Utilizes cost-effective Exchange Traded Funds (ETFs).",
				"Aggressive asset allocation optimized for 1-3 year horizons.",
			},
		},
		bucketMedium: {
			Title:       "Global Diversification for Mid-Term Aggressive Growth",
			Description: "This aggressive growth portfolio combines high-growth emerging markets, technology innovation, and alternative assets (commodities) to maximize capital appreciation over a 5+ year horizon. By maintaining equal weightings across these three pillars, we capture growth from technological advancement, emerging economy expansion, and inflation-hedging commodities. This concentrated strategy foregoes bonds entirely in favor of maximum growth potential, suitable for investors with high risk tolerance and long-term wealth-building goals.",
			Bullets: []string{
				"Maximizes long-term growth through high-conviction asset classes.",
				"Globally diversified across emerging markets, technology, and commodities.",
				"Utilizes cost-effective Exchange Traded Funds (ETFs).",
				"Aggressive 100% equity allocation optimized for 5+ year horizons.",
			},
		},
		bucketLong: {
			Title:       "Global Diversification for Long-Term Preservation",
			Description: "We construct this growth-focused portfolio with 50% US equities and 30% technology exposure to maximize long-term capital appreciation. Strategic emerging markets allocation (10%) captures high-growth opportunities, while minimal bond exposure (10%) provides stability. This aggressive positioning leverages technology innovation and emerging market growth for maximum wealth accumulation.",
			Bullets: []string{
				"Maximizes long-term growth through aggressive positioning.",
				"Globally diversified across technology and emerging markets.",
				"Utilizes cost-effective Exchange Traded Funds (ETFs).",
				"Aggressive asset allocation optimized for 10+ year horizons.",
			},
		},
	},
	models.RiskLabelCustom: {
		bucketMedium: {
			Title:       "Custom Diversified Portfolio for Mid-Term Growth",
			Description: "This custom portfolio is strategically designed with a balanced allocation across multiple asset classes to optimize risk-adjusted returns. The portfolio combines growth-oriented equities with stability-focused bonds and alternative assets, creating a diversified approach suitable for investors seeking balanced growth with managed risk over a 5+ year horizon.",
			Bullets: []string{
				"Custom asset allocation tailored to specific investment goals.",
				"Globally diversified across equities, bonds, and alternative assets.",
				"Utilizes cost-effective Exchange Traded Funds (ETFs).",
				"Strategic balance between growth and stability for 5+ year horizons.",
			},
		},
	},
}

var lowMethodology = models.MethodologyContent{
	Title:       "Global Diversification for Short-Term Preservation",
	Description: "We construct this conservative portfolio with 50% global markets exposure and 40% bond allocation to prioritize capital preservation. The allocation emphasizes stability through fixed-income securities while maintaining modest growth potential through globally diversified equity ETFs. This balanced approach mitigates market volatility while providing steady, predictable returns.",
	Bullets: []string{
		"Prioritizes capital preservation and low volatility.",
		"Globally diversified across equities, bonds, and stable assets.",
		"Utilizes cost-effective Exchange Traded Funds (ETFs).",
		"Strategic asset allocation tailored for 1-3 year horizons.",
	},
}

// methodologyContent looks up the editorial copy for a risk profile and
// horizon. Unknown risk profiles use the High branch; an unmatched bucket
// falls back to medium within the profile.
func methodologyContent(riskProfile, horizon string) models.MethodologyContent {
	table, ok := methodologyTable[riskProfile]
	if !ok {
		table = methodologyTable[models.RiskLabelHigh]
	}

	bucket := timeBucket(horizon)
	if content, ok := table[bucket]; ok {
		return content
	}
	return table[bucketMedium]
}
