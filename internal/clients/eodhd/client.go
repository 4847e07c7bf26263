// Package eodhd provides a client for the EODHD API, used for benchmark
// index data and fund expense ratios.
package eodhd

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
)

const (
	DefaultBaseURL   = "https://eodhd.com/api"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second

	// BenchmarkTicker is the reference index used for relative-performance
	// comparison (S&P 500).
	BenchmarkTicker = "GSPC.INDX"
)

// flexFloat64 handles JSON values that may be either a number or a string.
type flexFloat64 float64

func (f *flexFloat64) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = flexFloat64(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s == "" || s == "N/A" {
			*f = 0
			return nil
		}
		num, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = flexFloat64(num)
		return nil
	}
	return fmt.Errorf("cannot unmarshal %s into float64", string(data))
}

// Client implements the BenchmarkClient interface
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

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

// NewClient creates a new EODHD client
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
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
	return fmt.Sprintf("EODHD API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	if params == nil {
		params = url.Values{}
	}
	params.Set("api_token", c.apiKey)
	params.Set("fmt", "json")

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("url", c.baseURL+path).Msg("EODHD API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// eodBarResponse represents the API response for EOD data
type eodBarResponse struct {
	Date          string  `json:"date"`
	AdjustedClose float64 `json:"adjusted_close"`
	Close         float64 `json:"close"`
}

// GetBenchmarkReturns fetches the reference index over [from, to] and
// converts adjusted closes into a date-keyed map of daily returns.
func (c *Client) GetBenchmarkReturns(ctx context.Context, from, to time.Time) (map[string]float64, error) {
	params := url.Values{}
	params.Set("period", "d")
	params.Set("order", "a") // ascending, oldest first
	if !from.IsZero() {
		params.Set("from", from.Format("2006-01-02"))
	}
	if !to.IsZero() {
		params.Set("to", to.Format("2006-01-02"))
	}

	path := fmt.Sprintf("/eod/%s", BenchmarkTicker)

	var bars []eodBarResponse
	if err := c.get(ctx, path, params, &bars); err != nil {
		return nil, err
	}

	returns := make(map[string]float64, len(bars))
	var prev float64
	for i, bar := range bars {
		px := bar.AdjustedClose
		if px == 0 {
			px = bar.Close
		}
		if i > 0 && prev != 0 {
			returns[bar.Date] = px/prev - 1
		}
		prev = px
	}

	c.logger.Debug().Int("days", len(returns)).Msg("Benchmark returns fetched")

	return returns, nil
}

// expenseRatioResponse carries the subset of /fundamentals used here.
type expenseRatioResponse struct {
	ETFData struct {
		NetExpenseRatio flexFloat64 `json:"Net_Expense_Ratio"`
	} `json:"ETF_Data"`
}

// GetExpenseRatio returns the fund's net expense ratio as a percent string,
// or "N/A" when the fundamentals carry none.
func (c *Client) GetExpenseRatio(ctx context.Context, ticker string) (string, error) {
	path := fmt.Sprintf("/fundamentals/%s", ticker)

	var resp expenseRatioResponse
	if err := c.get(ctx, path, nil, &resp); err != nil {
		return common.NA, err
	}

	ratio := float64(resp.ETFData.NetExpenseRatio)
	if ratio <= 0 {
		return common.NA, nil
	}
	// EODHD reports the ratio in decimal form.
	return fmt.Sprintf("%.2f%%", ratio*100), nil
}

// Ensure Client implements BenchmarkClient
var _ interfaces.BenchmarkClient = (*Client)(nil)
