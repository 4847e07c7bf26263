// Package quiz turns free-text quiz transcripts into structured user profiles.
//
// The matching strategy is deliberately simple: case-insensitive keyword
// lookup against a small fixed vocabulary, with documented priority orders
// where keyword groups overlap. Every field has a deterministic default, so
// no input causes a failure.
package quiz

import (
	"strconv"
	"strings"

	"github.com/paasa/advisor/internal/models"
)

// knownLabels are the recognized "Label:" line prefixes. A labeled value is
// cut at the next known label so a multi-word name does not swallow the
// following field.
var knownLabels = []string{
	"portfolio id",
	"name",
	"email",
	"age",
	"customer id",
	"investment amount",
	"amount",
	"time horizon",
	"investment goal",
	"preferred topics",
	"answer",
}

// goalPatterns in priority order. "grow them aggressively" appears in some
// transcripts, so both spellings are checked before weaker matches.
var goalPatterns = []struct {
	phrases []string
	goal    models.Goal
}{
	{[]string{"grow them aggressively", "grow aggressively"}, models.GoalGrowAggressively},
	{[]string{"grow moderately"}, models.GoalGrowModerately},
	{[]string{"grow with caution", "grow cautiously"}, models.GoalGrowCautiously},
	{[]string{"avoid losing money", "avoid loss"}, models.GoalAvoidLoss},
}

// riskPatterns in priority order: "sell everything" must be checked before
// "sell some" since both contain "sell".
var riskPatterns = []struct {
	phrases []string
	risk    models.RiskBehavior
}{
	{[]string{"sell everything"}, models.RiskSellEverything},
	{[]string{"sell some"}, models.RiskSellSome},
	{[]string{"do nothing", "hold"}, models.RiskHold},
	{[]string{"buy more"}, models.RiskBuyMore},
}

var horizonPatterns = []struct {
	phrases []string
	horizon models.TimeHorizon
}{
	{[]string{"1-3 year", "in 1-3"}, models.HorizonShort},
	{[]string{"3-5 year", "in 3-5"}, models.HorizonMedium},
	{[]string{"6-10 year", "in 6-10"}, models.HorizonLongMedium},
	{[]string{"10+ year", "more than 10", "10 year"}, models.HorizonLong},
}

// Parse converts a quiz transcript into a fully populated UserProfile.
// Unrecognized fields keep their defaults; Parse never fails.
func Parse(text string) *models.UserProfile {
	lowered := strings.ToLower(text)

	profile := &models.UserProfile{
		Goal:         models.GoalUnknown,
		RiskBehavior: models.RiskUnknown,
		TimeHorizon:  models.HorizonUnknown,
	}

	for _, p := range goalPatterns {
		if containsAny(lowered, p.phrases) {
			profile.Goal = p.goal
			break
		}
	}

	for _, p := range riskPatterns {
		if containsAny(lowered, p.phrases) {
			profile.RiskBehavior = p.risk
			break
		}
	}

	for _, p := range horizonPatterns {
		if containsAny(lowered, p.phrases) {
			profile.TimeHorizon = p.horizon
			break
		}
	}

	profile.Contact.Name = labelValue(text, "name")
	profile.Contact.Email = labelValue(text, "email")
	profile.Age = labelValue(text, "age")
	profile.CustomerID = labelValue(text, "customer id")

	if id, err := strconv.Atoi(labelValue(text, "portfolio id")); err == nil && id > 0 {
		profile.PortfolioID = id
	}

	amount := labelValue(text, "investment amount")
	if amount == "" {
		amount = labelValue(text, "amount")
	}
	profile.InvestmentAmount = parseAmount(amount)

	if topics := labelValue(text, "preferred topics"); topics != "" {
		for _, t := range strings.Split(topics, ",") {
			if t = strings.TrimSpace(t); t != "" {
				profile.PreferredTopics = append(profile.PreferredTopics, t)
			}
		}
	}

	return profile
}

func containsAny(text string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// labelValue extracts the value of a "Label: value" field. The value is the
// remainder of the labeled line (or the next line when the label ends its
// line), truncated at the next known label.
func labelValue(text, label string) string {
	lowered := strings.ToLower(text)
	idx := indexOfLabel(lowered, label)
	if idx < 0 {
		return ""
	}

	rest := text[idx+len(label)+1:] // past "label:"
	// Value may sit on the same line or the next.
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		if strings.TrimSpace(rest[:nl]) == "" {
			rest = rest[nl+1:]
		}
	}
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}

	// Boundary at the next known label on the same line.
	restLower := strings.ToLower(rest)
	cut := len(rest)
	for _, other := range knownLabels {
		if other == label {
			continue
		}
		if i := strings.Index(restLower, other+":"); i >= 0 && i < cut {
			cut = i
		}
	}

	return strings.TrimSpace(rest[:cut])
}

// indexOfLabel finds "label:" at the start of the text or of a line.
// Matching is anchored so that e.g. "name" does not match inside
// "investor name mentioned in passing".
func indexOfLabel(lowered, label string) int {
	needle := label + ":"
	from := 0
	for {
		i := strings.Index(lowered[from:], needle)
		if i < 0 {
			return -1
		}
		i += from
		j := i
		for j > 0 && (lowered[j-1] == ' ' || lowered[j-1] == '\t') {
			j--
		}
		if j == 0 || lowered[j-1] == '\n' {
			return i
		}
		from = i + len(needle)
	}
}

// parseAmount strips currency symbols and thousands separators, then parses
// a decimal. Invalid input leaves the zero default.
func parseAmount(s string) float64 {
	s = strings.NewReplacer("$", "", ",", "", " ", "").Replace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
