package quiz

import (
	"testing"

	"github.com/paasa/advisor/internal/models"
)

func TestParse_EmptyInputDefaults(t *testing.T) {
	profile := Parse("")

	if profile.Goal != models.GoalUnknown {
		t.Errorf("Goal = %q, want %q", profile.Goal, models.GoalUnknown)
	}
	if profile.RiskBehavior != models.RiskUnknown {
		t.Errorf("RiskBehavior = %q, want %q", profile.RiskBehavior, models.RiskUnknown)
	}
	if profile.TimeHorizon != models.HorizonUnknown {
		t.Errorf("TimeHorizon = %q, want %q", profile.TimeHorizon, models.HorizonUnknown)
	}
	if profile.InvestmentAmount != 0 {
		t.Errorf("InvestmentAmount = %v, want 0", profile.InvestmentAmount)
	}
	if profile.Contact.Name != "" || profile.Contact.Email != "" {
		t.Errorf("Contact = %+v, want empty", profile.Contact)
	}
}

func TestParse_GoalKeywords(t *testing.T) {
	cases := []struct {
		text string
		want models.Goal
	}{
		{"I want to avoid losing money", models.GoalAvoidLoss},
		{"grow with caution please", models.GoalGrowCautiously},
		{"I would like to grow moderately", models.GoalGrowModerately},
		{"grow them aggressively", models.GoalGrowAggressively},
		{"GROW AGGRESSIVELY", models.GoalGrowAggressively},
		{"no recognizable goal here", models.GoalUnknown},
	}
	for _, tc := range cases {
		if got := Parse(tc.text).Goal; got != tc.want {
			t.Errorf("Parse(%q).Goal = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestParse_RiskKeywords(t *testing.T) {
	cases := []struct {
		text string
		want models.RiskBehavior
	}{
		{"I would sell everything", models.RiskSellEverything},
		{"I would sell some of my holdings", models.RiskSellSome},
		{"I would do nothing", models.RiskHold},
		{"I would hold my positions", models.RiskHold},
		{"I would buy more", models.RiskBuyMore},
	}
	for _, tc := range cases {
		if got := Parse(tc.text).RiskBehavior; got != tc.want {
			t.Errorf("Parse(%q).RiskBehavior = %q, want %q", tc.text, got, tc.want)
		}
	}
}

// Overlapping phrases resolve by priority: "sell everything" contains "sell",
// and a transcript mentioning both sells must classify as sell_everything.
func TestParse_RiskPriority(t *testing.T) {
	profile := Parse("If markets crash I might sell some, honestly I'd sell everything")
	if profile.RiskBehavior != models.RiskSellEverything {
		t.Errorf("RiskBehavior = %q, want %q", profile.RiskBehavior, models.RiskSellEverything)
	}
}

func TestParse_HorizonKeywords(t *testing.T) {
	cases := []struct {
		text string
		want models.TimeHorizon
	}{
		{"Time Horizon: 1-3 years", models.HorizonShort},
		{"I plan to invest in 3-5 years", models.HorizonMedium},
		{"6-10 years sounds right", models.HorizonLongMedium},
		{"10+ years", models.HorizonLong},
		{"more than 10 years away", models.HorizonLong},
	}
	for _, tc := range cases {
		if got := Parse(tc.text).TimeHorizon; got != tc.want {
			t.Errorf("Parse(%q).TimeHorizon = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestParse_LabeledFields(t *testing.T) {
	text := `Name: Jordan Reyes
Email: jordan@example.com
Age: 34
Customer ID: C-1042
Investment Amount: $25,000
Preferred Topics: Technology, Clean Energy`

	profile := Parse(text)

	if profile.Contact.Name != "Jordan Reyes" {
		t.Errorf("Name = %q", profile.Contact.Name)
	}
	if profile.Contact.Email != "jordan@example.com" {
		t.Errorf("Email = %q", profile.Contact.Email)
	}
	if profile.Age != "34" {
		t.Errorf("Age = %q", profile.Age)
	}
	if profile.CustomerID != "C-1042" {
		t.Errorf("CustomerID = %q", profile.CustomerID)
	}
	if profile.InvestmentAmount != 25000 {
		t.Errorf("InvestmentAmount = %v, want 25000", profile.InvestmentAmount)
	}
	if len(profile.PreferredTopics) != 2 || profile.PreferredTopics[0] != "Technology" || profile.PreferredTopics[1] != "Clean Energy" {
		t.Errorf("PreferredTopics = %v", profile.PreferredTopics)
	}
}

func TestParse_LabelsOnOneLine(t *testing.T) {
	profile := Parse("Name: Sam Okafor Email: sam@example.com")
	if profile.Contact.Name != "Sam Okafor" {
		t.Errorf("Name = %q, want value cut at the next label", profile.Contact.Name)
	}
	if profile.Contact.Email != "sam@example.com" {
		t.Errorf("Email = %q", profile.Contact.Email)
	}
}

func TestParse_LabelAnchoredToLineStart(t *testing.T) {
	profile := Parse("the nickname: ignored\nName: Actual Value")
	if profile.Contact.Name != "Actual Value" {
		t.Errorf("Name = %q, mid-line label should not match", profile.Contact.Name)
	}
}

func TestParse_PortfolioIDOverride(t *testing.T) {
	if got := Parse("Portfolio ID: 3").PortfolioID; got != 3 {
		t.Errorf("PortfolioID = %d, want 3", got)
	}
	if got := Parse("Portfolio ID: potato").PortfolioID; got != 0 {
		t.Errorf("PortfolioID = %d for invalid value, want 0", got)
	}
	if got := Parse("Portfolio ID: -2").PortfolioID; got != 0 {
		t.Errorf("PortfolioID = %d for negative value, want 0", got)
	}
}

func TestParse_AmountVariants(t *testing.T) {
	cases := []struct {
		text string
		want float64
	}{
		{"Investment Amount: $10,000", 10000},
		{"Amount: 5000.50", 5000.50},
		{"Investment Amount: lots", 0},
		{"Investment Amount: -500", 0},
	}
	for _, tc := range cases {
		if got := Parse(tc.text).InvestmentAmount; got != tc.want {
			t.Errorf("Parse(%q).InvestmentAmount = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestParse_FullTranscript(t *testing.T) {
	text := `Name: Dana Whitfield
Email: dana@example.com
Age: 41
Investment Amount: $50,000
Time Horizon: 3-5 years
Answer: I want to grow moderately. If my portfolio dropped 20% I would hold.`

	profile := Parse(text)

	if profile.Goal != models.GoalGrowModerately {
		t.Errorf("Goal = %q", profile.Goal)
	}
	if profile.RiskBehavior != models.RiskHold {
		t.Errorf("RiskBehavior = %q", profile.RiskBehavior)
	}
	if profile.TimeHorizon != models.HorizonMedium {
		t.Errorf("TimeHorizon = %q", profile.TimeHorizon)
	}
	if profile.InvestmentAmount != 50000 {
		t.Errorf("InvestmentAmount = %v", profile.InvestmentAmount)
	}
}
