package openai

import (
	"context"
	"fmt"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"

	"spendlens/internal/config"
	"spendlens/internal/port"
	"spendlens/internal/sqlgen"
)

// Generator implements port.SQLGenerator using the OpenAI Chat Completions
// API. Unlike the Vanna provider it only generates the statement; execution
// is left to the caller.
type Generator struct {
	client *goopenai.Client
	model  string
}

// NewGenerator creates an OpenAI-backed SQL generator from a provider config.
func NewGenerator(cfg *config.SQLGenProviderConfig) *Generator {
	clientCfg := goopenai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientCfg.BaseURL = cfg.Endpoint
	}
	model := cfg.DefaultModel
	if model == "" {
		model = goopenai.GPT4o
	}
	return &Generator{
		client: goopenai.NewClientWithConfig(clientCfg),
		model:  model,
	}
}

func (g *Generator) Generate(ctx context.Context, question string) (*port.GenerateOutput, error) {
	req := goopenai.ChatCompletionRequest{
		Model: g.model,
		Messages: []goopenai.ChatCompletionMessage{
			{
				Role:    goopenai.ChatMessageRoleSystem,
				Content: sqlgen.BuildSchemaPrompt(),
			},
			{
				Role:    goopenai.ChatMessageRoleUser,
				Content: question,
			},
		},
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("calling openai API: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no completion choices returned")
	}

	sql := stripFences(resp.Choices[0].Message.Content)
	if sql == "" {
		return nil, fmt.Errorf("empty SQL in completion")
	}

	return &port.GenerateOutput{
		SQL:      sql,
		Provider: "openai",
	}, nil
}

// stripFences removes markdown code fences the model sometimes adds despite
// the prompt, plus any trailing semicolon.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```sql")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
	}
	return strings.TrimSuffix(strings.TrimSpace(s), ";")
}
