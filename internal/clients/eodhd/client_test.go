package eodhd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paasa/advisor/internal/common"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", WithBaseURL(srv.URL))
}

func TestGetBenchmarkReturns(t *testing.T) {
	var gotPath, gotToken string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("api_token")
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"date": "2024-01-02", "adjusted_close": 100.0},
			{"date": "2024-01-03", "adjusted_close": 102.0},
			{"date": "2024-01-04", "adjusted_close": 100.98},
		})
	})

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	returns, err := client.GetBenchmarkReturns(context.Background(), from, to)
	require.NoError(t, err)

	assert.Equal(t, "/eod/GSPC.INDX", gotPath)
	assert.Equal(t, "test-key", gotToken)

	// First bar has no prior close, so two returns for three bars.
	require.Len(t, returns, 2)
	assert.InDelta(t, 0.02, returns["2024-01-03"], 1e-9)
	assert.InDelta(t, -0.01, returns["2024-01-04"], 1e-9)
}

func TestGetBenchmarkReturns_FallsBackToClose(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]interface{}{
			{"date": "2024-01-02", "close": 50.0},
			{"date": "2024-01-03", "close": 51.0},
		})
	})

	returns, err := client.GetBenchmarkReturns(context.Background(), time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, returns, 1)
	assert.InDelta(t, 0.02, returns["2024-01-03"], 1e-9)
}

func TestGetBenchmarkReturns_APIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("invalid token"))
	})

	_, err := client.GetBenchmarkReturns(context.Background(), time.Time{}, time.Time{})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestGetExpenseRatio(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fundamentals/VTI", r.URL.Path)
		w.Write([]byte(`{"ETF_Data": {"Net_Expense_Ratio": "0.0003"}}`))
	})

	ratio, err := client.GetExpenseRatio(context.Background(), "VTI")
	require.NoError(t, err)
	assert.Equal(t, "0.03%", ratio)
}

func TestGetExpenseRatio_NumericValue(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ETF_Data": {"Net_Expense_Ratio": 0.002}}`))
	})

	ratio, err := client.GetExpenseRatio(context.Background(), "BND")
	require.NoError(t, err)
	assert.Equal(t, "0.20%", ratio)
}

func TestGetExpenseRatio_MissingIsNA(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	ratio, err := client.GetExpenseRatio(context.Background(), "XYZ")
	require.NoError(t, err)
	assert.Equal(t, common.NA, ratio)
}

func TestGetExpenseRatio_UnparsableStringIsNA(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ETF_Data": {"Net_Expense_Ratio": "N/A"}}`))
	})

	ratio, err := client.GetExpenseRatio(context.Background(), "XYZ")
	require.NoError(t, err)
	assert.Equal(t, common.NA, ratio)
}

func TestFlexFloat64(t *testing.T) {
	var f flexFloat64
	require.NoError(t, json.Unmarshal([]byte(`1.5`), &f))
	assert.Equal(t, flexFloat64(1.5), f)

	require.NoError(t, json.Unmarshal([]byte(`"2.5"`), &f))
	assert.Equal(t, flexFloat64(2.5), f)

	require.NoError(t, json.Unmarshal([]byte(`""`), &f))
	assert.Equal(t, flexFloat64(0), f)

	require.Error(t, json.Unmarshal([]byte(`[1]`), &f))
}
