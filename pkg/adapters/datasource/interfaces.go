// Package datasource defines the database collaborator interfaces and a
// registry of dialect adapters keyed by connection-string shape.
package datasource

import (
	"context"

	"github.com/queryscribe/queryscribe/pkg/models"
)

// MaxQueryLimit is the hard cap on rows collected from a query. Generated
// SQL is unpredictable; the cap keeps results and the summarizer's scan
// bounded.
const MaxQueryLimit = 1000

// Adapter is one live connection to a target database for the duration of
// a single analysis. Each instance owns its connection and must be closed
// on every exit path before the response is returned.
type Adapter interface {
	// TestConnection verifies the database is reachable with valid
	// credentials. Returns nil if healthy, an error otherwise.
	TestConnection(ctx context.Context) error

	// ExtractSchema introspects all base tables and columns, preserving
	// the ordering reported by the database (tables by name, columns by
	// ordinal position).
	ExtractSchema(ctx context.Context) (*models.Schema, error)

	// Query executes SQL text and collects up to limit rows.
	// limit <= 0 or limit > MaxQueryLimit uses MaxQueryLimit.
	Query(ctx context.Context, sqlQuery string, limit int) ([]models.Row, error)

	// Close releases the database connection.
	Close() error
}

// EffectiveLimit clamps a requested row limit to (0, MaxQueryLimit].
func EffectiveLimit(limit int) int {
	if limit <= 0 || limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return limit
}
