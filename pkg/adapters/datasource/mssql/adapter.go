// Package mssql implements the datasource.Adapter interface for SQL
// Server via database/sql and the go-mssqldb driver.
package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/microsoft/go-mssqldb" // registers the "sqlserver" driver
	"go.uber.org/zap"

	"github.com/queryscribe/queryscribe/pkg/adapters/datasource"
	"github.com/queryscribe/queryscribe/pkg/models"
)

// Adapter provides SQL Server connectivity for one analysis request.
type Adapter struct {
	db     *sql.DB
	logger *zap.Logger
}

// Matches reports whether the connection string looks like SQL Server:
// a sqlserver:// URL or an ADO-style string with server=/data source=.
func Matches(connStr string) bool {
	lower := strings.ToLower(strings.TrimSpace(connStr))
	if strings.HasPrefix(lower, "sqlserver://") {
		return true
	}
	return strings.Contains(lower, "server=") || strings.Contains(lower, "data source=")
}

// NewAdapter opens a connection for the connection string. go-mssqldb
// accepts both URL and ADO semicolon forms; sql.Open only validates the
// string, reachability is checked by TestConnection.
func NewAdapter(ctx context.Context, connStr string, logger *zap.Logger) (*Adapter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlserver", connStr)
	if err != nil {
		return nil, fmt.Errorf("connect to sqlserver: %w", err)
	}

	return &Adapter{
		db:     db,
		logger: logger.Named("mssql"),
	}, nil
}

// TestConnection verifies the database is reachable.
func (a *Adapter) TestConnection(ctx context.Context) error {
	if err := a.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping sqlserver: %w", err)
	}
	return nil
}

// Query executes SQL text and collects up to limit rows as tagged values.
func (a *Adapter) Query(ctx context.Context, sqlQuery string, limit int) ([]models.Row, error) {
	limit = datasource.EffectiveLimit(limit)

	rows, err := a.db.QueryContext(ctx, sqlQuery)
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	result := make([]models.Row, 0)
	values := make([]any, len(columns))
	scanArgs := make([]any, len(columns))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		row := make(models.Row, len(columns))
		for i, col := range columns {
			row[col] = models.ValueOf(values[i])
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

// Close releases the connection.
func (a *Adapter) Close() error {
	return a.db.Close()
}

// Ensure Adapter implements datasource.Adapter at compile time.
var _ datasource.Adapter = (*Adapter)(nil)
