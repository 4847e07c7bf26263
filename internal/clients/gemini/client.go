// Package gemini provides a client for the Google Gemini API
package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/interfaces"
	"github.com/paasa/advisor/internal/models"
)

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 60 * time.Second
)

// Client implements the NarrativeClient interface
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *common.Logger
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithModel sets the model to use
func WithModel(model string) ClientOption {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithTimeout bounds each generation call. Narrative generation must never
// block report generation indefinitely.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// NewClient creates a new Gemini client
func NewClient(ctx context.Context, apiKey string, opts ...ClientOption) (*Client, error) {
	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c := &Client{
		client:  genaiClient,
		model:   DefaultModel,
		timeout: DefaultTimeout,
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// GenerateNarrative produces the methodology narrative for a report from
// the structured profile and fetched portfolio.
func (c *Client) GenerateNarrative(ctx context.Context, profile *models.UserProfile, selection models.PortfolioSelection, data *models.PortfolioData) (string, error) {
	prompt := buildNarrativePrompt(profile, selection, data)

	c.logger.Debug().Str("model", c.model).Msg("Generating narrative")

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	contents := genai.Text(prompt)
	result, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate narrative: %w", err)
	}

	return extractTextFromResponse(result)
}

// buildNarrativePrompt creates the prompt from the profile and portfolio.
func buildNarrativePrompt(profile *models.UserProfile, selection models.PortfolioSelection, data *models.PortfolioData) string {
	var sb strings.Builder

	sb.WriteString("Write a short investment methodology narrative (2-3 paragraphs, plain prose, no headings) ")
	sb.WriteString("for a client portfolio recommendation report.\n\n")

	sb.WriteString("Client profile:\n")
	sb.WriteString(fmt.Sprintf("- Goal: %s\n", profile.Goal))
	sb.WriteString(fmt.Sprintf("- Risk behavior in a downturn: %s\n", profile.RiskBehavior))
	sb.WriteString(fmt.Sprintf("- Time horizon: %s\n", profile.TimeHorizon.Display()))
	sb.WriteString(fmt.Sprintf("- Risk profile: %s\n", selection.RiskProfileLabel))

	if data != nil && len(data.Holdings) > 0 {
		sb.WriteString("\nPortfolio holdings:\n")
		for _, h := range data.Holdings {
			sb.WriteString(fmt.Sprintf("- %s (%s, %s): %.1f%%\n", h.Ticker, h.Name, h.Category, h.WeightPct))
		}
	}

	if len(profile.PreferredTopics) > 0 {
		sb.WriteString("\nPreferred investment themes: ")
		sb.WriteString(strings.Join(profile.PreferredTopics, ", "))
		sb.WriteString("\n")
	}

	sb.WriteString("\nExplain why this allocation suits the client's profile. ")
	sb.WriteString("Keep the tone professional and avoid promising returns.")

	return sb.String()
}

// extractTextFromResponse extracts text from a generate content response
func extractTextFromResponse(result *genai.GenerateContentResponse) (string, error) {
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}

	text := ""
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}

	return text, nil
}

// Ensure Client implements NarrativeClient
var _ interfaces.NarrativeClient = (*Client)(nil)
