package vanna_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendlens/internal/config"
	"spendlens/internal/sqlgen/vanna"
)

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/query", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Question string `json:"question"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "total spend by vendor", req.Question)

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"sql":         "SELECT v.name, SUM(i.total_amount) FROM invoices i JOIN vendors v ON v.id = i.vendor_id GROUP BY v.name",
			"results":     []map[string]interface{}{{"name": "Acme", "sum": 100}},
			"explanation": "Sums invoice totals per vendor.",
		})
	}))
	defer srv.Close()

	client := vanna.NewClient(&config.SQLGenProviderConfig{
		Endpoint: srv.URL,
		APIKey:   "test-key",
	})

	out, err := client.Generate(context.Background(), "total spend by vendor")
	require.NoError(t, err)
	assert.Contains(t, out.SQL, "SELECT v.name")
	assert.Equal(t, "vanna", out.Provider)
	assert.Equal(t, "Sums invoice totals per vendor.", out.Explanation)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "Acme", out.Rows[0]["name"])
}

func TestGenerateNoAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"sql": "SELECT 1"})
	}))
	defer srv.Close()

	client := vanna.NewClient(&config.SQLGenProviderConfig{Endpoint: srv.URL})
	out, err := client.Generate(context.Background(), "anything")
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1", out.SQL)
	assert.Nil(t, out.Rows)
}

func TestGenerateServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not trained", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := vanna.NewClient(&config.SQLGenProviderConfig{Endpoint: srv.URL})
	_, err := client.Generate(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestGenerateBadResponseBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := vanna.NewClient(&config.SQLGenProviderConfig{Endpoint: srv.URL})
	_, err := client.Generate(context.Background(), "anything")
	assert.Error(t, err)
}
