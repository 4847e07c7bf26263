// Package paasa provides a client for the Paasa advisory API
package paasa

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/paasa/advisor/internal/common"
	"github.com/paasa/advisor/internal/interfaces"
	"github.com/paasa/advisor/internal/models"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client implements the PortfolioClient interface
type Client struct {
	baseURL     string
	bearerToken string
	httpClient  *http.Client
	logger      *common.Logger
	limiter     *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Paasa client
func NewClient(baseURL, bearerToken string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     baseURL,
		bearerToken: bearerToken,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Paasa API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// envelope is the standard {success, data} wrapper on API responses.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

// analyzeResponse mirrors the /analyze payload shape.
type analyzeResponse struct {
	Holdings []struct {
		Ticker       string   `json:"ticker"`
		Name         string   `json:"name"`
		CategoryName string   `json:"category_name"`
		Position     float64  `json:"position"`
		ExpenseRatio string   `json:"expense_ratio"`
	} `json:"holdings"`
	Regions []struct {
		Name string  `json:"name"`
		Size float64 `json:"size"`
	} `json:"regions"`
	UnderlyingStocks []struct {
		Symbol string  `json:"symbol"`
		Weight float64 `json:"weight"`
	} `json:"underlying_stocks"`
	RiskLevel         string             `json:"risk_level"`
	OneYrAnnualized   *float64           `json:"one_yr_annualized"`
	ThreeYrAnnualized *float64           `json:"three_yr_annualized"`
	FiveYrAnnualized  *float64           `json:"five_yr_annualized"`
	Volatility        *float64           `json:"volatility"`
	Benchmark         *struct {
		OneYrAnnualized   *float64 `json:"one_yr_annualized"`
		ThreeYrAnnualized *float64 `json:"three_yr_annualized"`
		FiveYrAnnualized  *float64 `json:"five_yr_annualized"`
		Volatility        *float64 `json:"volatility"`
	} `json:"benchmark"`
	PortfolioReturns map[string]float64 `json:"portfolioReturns"`
	BenchmarkReturns map[string]float64 `json:"benchmarkReturns"`
}

// GetPortfolio retrieves the analyzed model portfolio. A 404 or an empty
// payload maps to an empty PortfolioData, not an error: the report pipeline
// degrades to placeholders rather than aborting.
func (c *Client) GetPortfolio(ctx context.Context, portfolioID int) (*models.PortfolioData, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("portfolioId", strconv.Itoa(portfolioID))
	params.Set("fromTemplates", "true")

	reqURL := fmt.Sprintf("%s/analyze?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearerToken)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Int("portfolio_id", portfolioID).Msg("Paasa API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.logger.Warn().Int("portfolio_id", portfolioID).Msg("Portfolio not found, treating as empty")
		return &models.PortfolioData{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   "/analyze",
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	// Responses normally arrive wrapped in {success, data}; older endpoints
	// return the payload bare.
	payload := body
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Success && len(env.Data) > 0 {
		payload = env.Data
	}

	var raw analyzeResponse
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return toPortfolioData(&raw), nil
}

// toPortfolioData validates and converts the wire payload into the typed
// record used by the rest of the pipeline.
func toPortfolioData(raw *analyzeResponse) *models.PortfolioData {
	data := &models.PortfolioData{
		RiskLevel:         raw.RiskLevel,
		OneYrAnnualized:   raw.OneYrAnnualized,
		ThreeYrAnnualized: raw.ThreeYrAnnualized,
		FiveYrAnnualized:  raw.FiveYrAnnualized,
		Volatility:        raw.Volatility,
		PortfolioReturns:  raw.PortfolioReturns,
		BenchmarkReturns:  raw.BenchmarkReturns,
	}

	for _, h := range raw.Holdings {
		ratio := h.ExpenseRatio
		if ratio == "" {
			ratio = common.NA
		}
		data.Holdings = append(data.Holdings, models.Holding{
			Ticker:       h.Ticker,
			Name:         h.Name,
			Category:     h.CategoryName,
			WeightPct:    h.Position,
			ExpenseRatio: ratio,
		})
	}
	for _, r := range raw.Regions {
		data.Regions = append(data.Regions, models.Region{Name: r.Name, WeightPct: r.Size})
	}
	for _, s := range raw.UnderlyingStocks {
		data.UnderlyingPositions = append(data.UnderlyingPositions, models.UnderlyingPosition{
			Symbol:    s.Symbol,
			WeightPct: s.Weight,
		})
	}
	if raw.Benchmark != nil {
		data.Benchmark = &models.BenchmarkMetrics{
			OneYrAnnualized:   raw.Benchmark.OneYrAnnualized,
			ThreeYrAnnualized: raw.Benchmark.ThreeYrAnnualized,
			FiveYrAnnualized:  raw.Benchmark.FiveYrAnnualized,
			Volatility:        raw.Benchmark.Volatility,
		}
	}

	return data
}

// Ensure Client implements PortfolioClient
var _ interfaces.PortfolioClient = (*Client)(nil)
