// Package postgres implements the datasource.Adapter interface on top of
// pgx connection pools.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/queryscribe/queryscribe/pkg/adapters/datasource"
	"github.com/queryscribe/queryscribe/pkg/models"
)

// Adapter provides PostgreSQL connectivity for one analysis request.
type Adapter struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// Matches reports whether the connection string looks like PostgreSQL:
// a postgres:// / postgresql:// URL or a keyword/value DSN with host=.
func Matches(connStr string) bool {
	lower := strings.ToLower(strings.TrimSpace(connStr))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return true
	}
	// Keyword/value DSNs (host=... user=... dbname=...) are pgx territory
	// as long as they aren't SQL Server ADO strings.
	return strings.Contains(lower, "host=") && !strings.Contains(lower, "server=")
}

// NewAdapter opens a pool for the connection string. Pool construction
// validates the string's syntax; reachability is checked separately by
// TestConnection.
func NewAdapter(ctx context.Context, connStr string, logger *zap.Logger) (*Adapter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return &Adapter{
		pool:   pool,
		logger: logger.Named("postgres"),
	}, nil
}

// TestConnection verifies the database is reachable.
func (a *Adapter) TestConnection(ctx context.Context) error {
	if err := a.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}

// Query executes SQL text and collects up to limit rows as tagged values.
func (a *Adapter) Query(ctx context.Context, sqlQuery string, limit int) ([]models.Row, error) {
	limit = datasource.EffectiveLimit(limit)

	rows, err := a.pool.Query(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	fieldDescs := rows.FieldDescriptions()
	columns := make([]string, len(fieldDescs))
	for i, fd := range fieldDescs {
		columns[i] = string(fd.Name)
	}

	result := make([]models.Row, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("read row values: %w", err)
		}

		row := make(models.Row, len(columns))
		for i, col := range columns {
			row[col] = convertValue(values[i])
		}
		result = append(result, row)

		if len(result) >= limit {
			break
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return result, nil
}

// convertValue maps pgx-specific value types onto tagged values before
// the generic conversion. NUMERIC columns decode as pgtype.Numeric, which
// the statistics code needs as a plain float.
func convertValue(v any) models.Value {
	switch x := v.(type) {
	case pgtype.Numeric:
		f, err := x.Float64Value()
		if err != nil || !f.Valid {
			return models.NullValue()
		}
		return models.FloatValue(f.Float64)
	default:
		return models.ValueOf(v)
	}
}

// Close releases the pool.
func (a *Adapter) Close() error {
	if a.pool != nil {
		a.pool.Close()
	}
	return nil
}

// Ensure Adapter implements datasource.Adapter at compile time.
var _ datasource.Adapter = (*Adapter)(nil)
