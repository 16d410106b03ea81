package vanna

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"spendlens/internal/config"
	"spendlens/internal/port"
)

// Client implements port.SQLGenerator against a Vanna-style text-to-SQL
// service. The service answers POST {endpoint}/query with the generated
// statement and, usually, the executed result rows.
type Client struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

// NewClient creates a Vanna client from a provider config.
func NewClient(cfg *config.SQLGenProviderConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		endpoint: strings.TrimRight(cfg.Endpoint, "/"),
		apiKey:   cfg.APIKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type queryRequest struct {
	Question string `json:"question"`
}

type queryResponse struct {
	SQL         string                   `json:"sql"`
	Results     []map[string]interface{} `json:"results"`
	Explanation string                   `json:"explanation"`
}

func (c *Client) Generate(ctx context.Context, question string) (*port.GenerateOutput, error) {
	bodyBytes, err := json.Marshal(queryRequest{Question: question})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/query", bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling vanna service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vanna service error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var out queryResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return &port.GenerateOutput{
		SQL:         out.SQL,
		Explanation: out.Explanation,
		Rows:        out.Results,
		Provider:    "vanna",
	}, nil
}
