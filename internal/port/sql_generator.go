package port

import "context"

// GenerateOutput is the result of turning a natural-language question into SQL.
// Rows is populated only by providers that execute the statement themselves.
type GenerateOutput struct {
	SQL         string
	Explanation string
	Rows        []map[string]interface{}
	Provider    string
}

// SQLGenerator abstracts natural-language-to-SQL generation.
type SQLGenerator interface {
	Generate(ctx context.Context, question string) (*GenerateOutput, error)
}
