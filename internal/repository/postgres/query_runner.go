package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"spendlens/internal/domain"
	"spendlens/internal/port"
)

type queryRunner struct {
	db *sqlx.DB
}

// NewQueryRunner creates a QueryRunner that executes ad-hoc SELECT queries.
func NewQueryRunner(db *sqlx.DB) port.QueryRunner {
	return &queryRunner{db: db}
}

func (r *queryRunner) RunSelect(ctx context.Context, query string) ([]map[string]interface{}, error) {
	if !IsSelectQuery(query) {
		return nil, domain.ErrUnsafeQuery
	}

	rows, err := r.db.QueryxContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("queryRunner.RunSelect: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []map[string]interface{}
	for rows.Next() {
		row := map[string]interface{}{}
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("queryRunner.RunSelect scan: %w", err)
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("queryRunner.RunSelect rows: %w", err)
	}
	return results, nil
}

// IsSelectQuery reports whether the statement is a single read-only SELECT
// (optionally CTE-prefixed). Statement stacking via semicolons is rejected.
func IsSelectQuery(query string) bool {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return false
	}
	if rest := strings.TrimRight(trimmed, "; \t\n"); strings.Contains(rest, ";") {
		return false
	}
	upper := strings.ToUpper(trimmed)
	return strings.HasPrefix(upper, "SELECT") || strings.HasPrefix(upper, "WITH")
}
