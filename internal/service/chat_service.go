package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"spendlens/internal/domain"
	"spendlens/internal/port"
)

// ChatAnswer is the result of one chat-with-data round trip.
type ChatAnswer struct {
	SQL           string                   `json:"sql"`
	Rows          []map[string]interface{} `json:"data"`
	Explanation   string                   `json:"explanation"`
	Provider      string                   `json:"provider"`
	ExecutionTime int64                    `json:"execution_time_ms"`
}

// SQLResult is the result of executing an ad-hoc SELECT.
type SQLResult struct {
	Rows  []map[string]interface{} `json:"results"`
	Count int                      `json:"count"`
}

// ChatService turns natural-language questions into SQL and answers them.
type ChatService interface {
	Ask(ctx context.Context, question string) (*ChatAnswer, error)
	RunSQL(ctx context.Context, query string) (*SQLResult, error)
}

type chatService struct {
	generator port.SQLGenerator
	runner    port.QueryRunner
}

// NewChatService creates a new ChatService implementation.
func NewChatService(generator port.SQLGenerator, runner port.QueryRunner) ChatService {
	return &chatService{generator: generator, runner: runner}
}

func (s *chatService) Ask(ctx context.Context, question string) (*ChatAnswer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, domain.ErrEmptyQuestion
	}

	start := time.Now()
	out, err := s.generator.Generate(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSQLGenUnavailable, err)
	}

	answer := &ChatAnswer{
		SQL:         out.SQL,
		Rows:        out.Rows,
		Explanation: out.Explanation,
		Provider:    out.Provider,
	}

	// Providers that only generate leave execution to us.
	if answer.Rows == nil && answer.SQL != "" {
		rows, err := s.runner.RunSelect(ctx, answer.SQL)
		if err != nil {
			return nil, err
		}
		answer.Rows = rows
	}

	answer.ExecutionTime = time.Since(start).Milliseconds()
	return answer, nil
}

func (s *chatService) RunSQL(ctx context.Context, query string) (*SQLResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, domain.ErrEmptyQuery
	}

	rows, err := s.runner.RunSelect(ctx, query)
	if err != nil {
		return nil, err
	}
	return &SQLResult{Rows: rows, Count: len(rows)}, nil
}
