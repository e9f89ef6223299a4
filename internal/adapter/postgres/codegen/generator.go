// Package codegen draws certificate codes from the database-side
// generate_unique_code function.
package codegen

import (
	"context"

	postgres "github.com/Test-app01/sans-intern-verify/internal/adapter/postgres"
)

const generateSQL = `SELECT generate_unique_code($1)`

// Generator produces prefixed codes that are unused in either code column
// at the time of the call.
type Generator struct {
	db postgres.Querier
}

// New creates a Generator.
func New(db postgres.Querier) *Generator {
	return &Generator{db: db}
}

// Generate returns a fresh code starting with prefix.
func (g *Generator) Generate(ctx context.Context, prefix string) (string, error) {
	var code string
	if err := postgres.QuerierFromCtx(ctx, g.db).QueryRow(ctx, generateSQL, prefix).Scan(&code); err != nil {
		return "", postgres.MapError(err, "code", prefix)
	}
	return code, nil
}
