package sqlgen

import (
	"context"
	"fmt"

	"spendlens/internal/logger"
	"spendlens/internal/port"
)

// FallbackGenerator tries generators in order until one succeeds.
// It implements port.SQLGenerator.
type FallbackGenerator struct {
	generators []port.SQLGenerator
	names      []string
}

// NewFallbackGenerator creates a FallbackGenerator from an ordered list of
// generators and their names.
func NewFallbackGenerator(generators []port.SQLGenerator, names []string) *FallbackGenerator {
	return &FallbackGenerator{generators: generators, names: names}
}

func (f *FallbackGenerator) Generate(ctx context.Context, question string) (*port.GenerateOutput, error) {
	log := logger.WithComponent("sqlgen")

	var lastErr error
	for i, g := range f.generators {
		out, err := g.Generate(ctx, question)
		if err == nil {
			return out, nil
		}
		log.Warn().Str("provider", f.names[i]).Err(err).Msg("sql generation failed, trying next provider")
		lastErr = err
	}
	return nil, fmt.Errorf("all sqlgen providers failed: %w", lastErr)
}
