package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spendlens/internal/config"
	"spendlens/internal/sqlgen/openai"
)

func newCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "invoices")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  req.Model,
			"choices": []map[string]interface{}{
				{
					"index":         0,
					"finish_reason": "stop",
					"message":       map[string]string{"role": "assistant", "content": content},
				},
			},
		})
	}))
}

func TestGenerateStripsCodeFences(t *testing.T) {
	srv := newCompletionServer(t, "```sql\nSELECT COUNT(*) FROM invoices;\n```")
	defer srv.Close()

	g := openai.NewGenerator(&config.SQLGenProviderConfig{
		APIKey:   "test-key",
		Endpoint: srv.URL + "/v1",
	})

	out, err := g.Generate(context.Background(), "how many invoices are there?")
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM invoices", out.SQL)
	assert.Equal(t, "openai", out.Provider)
	assert.Nil(t, out.Rows, "openai provider never executes")
}

func TestGeneratePlainStatement(t *testing.T) {
	srv := newCompletionServer(t, "SELECT name FROM vendors ORDER BY name")
	defer srv.Close()

	g := openai.NewGenerator(&config.SQLGenProviderConfig{
		APIKey:   "test-key",
		Endpoint: srv.URL + "/v1",
	})

	out, err := g.Generate(context.Background(), "list vendors")
	require.NoError(t, err)
	assert.Equal(t, "SELECT name FROM vendors ORDER BY name", out.SQL)
}

func TestGenerateEmptyCompletion(t *testing.T) {
	srv := newCompletionServer(t, "   ")
	defer srv.Close()

	g := openai.NewGenerator(&config.SQLGenProviderConfig{
		APIKey:   "test-key",
		Endpoint: srv.URL + "/v1",
	})

	_, err := g.Generate(context.Background(), "list vendors")
	assert.Error(t, err)
}
