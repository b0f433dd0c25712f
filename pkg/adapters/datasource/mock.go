package datasource

import (
	"context"

	"github.com/queryscribe/queryscribe/pkg/models"
)

// MockAdapter is a configurable mock for testing adapter consumers.
// Set the function fields to control behavior in tests.
type MockAdapter struct {
	// TestConnectionFunc is called when TestConnection is invoked.
	// If nil, returns nil (healthy).
	TestConnectionFunc func(ctx context.Context) error

	// ExtractSchemaFunc is called when ExtractSchema is invoked.
	// If nil, returns an empty schema.
	ExtractSchemaFunc func(ctx context.Context) (*models.Schema, error)

	// QueryFunc is called when Query is invoked.
	// If nil, returns no rows.
	QueryFunc func(ctx context.Context, sqlQuery string, limit int) ([]models.Row, error)

	// Call tracking for verification.
	TestConnectionCalls int
	ExtractSchemaCalls  int
	QueryCalls          int
	Queries             []string
	Closed              bool
}

// TestConnection implements Adapter.
func (m *MockAdapter) TestConnection(ctx context.Context) error {
	m.TestConnectionCalls++
	if m.TestConnectionFunc != nil {
		return m.TestConnectionFunc(ctx)
	}
	return nil
}

// ExtractSchema implements Adapter.
func (m *MockAdapter) ExtractSchema(ctx context.Context) (*models.Schema, error) {
	m.ExtractSchemaCalls++
	if m.ExtractSchemaFunc != nil {
		return m.ExtractSchemaFunc(ctx)
	}
	return &models.Schema{}, nil
}

// Query implements Adapter.
func (m *MockAdapter) Query(ctx context.Context, sqlQuery string, limit int) ([]models.Row, error) {
	m.QueryCalls++
	m.Queries = append(m.Queries, sqlQuery)
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, sqlQuery, limit)
	}
	return nil, nil
}

// Close implements Adapter.
func (m *MockAdapter) Close() error {
	m.Closed = true
	return nil
}

// Ensure MockAdapter implements Adapter at compile time.
var _ Adapter = (*MockAdapter)(nil)

// MockAdapterFactory returns a fixed adapter from NewAdapter. If
// NewAdapterErr is set it is returned instead.
type MockAdapterFactory struct {
	Adapter       Adapter
	NewAdapterErr error

	// Call tracking.
	ConnStrings []string
}

// NewAdapter implements AdapterFactory.
func (f *MockAdapterFactory) NewAdapter(ctx context.Context, connStr string) (Adapter, error) {
	f.ConnStrings = append(f.ConnStrings, connStr)
	if f.NewAdapterErr != nil {
		return nil, f.NewAdapterErr
	}
	return f.Adapter, nil
}

// ListTypes implements AdapterFactory.
func (f *MockAdapterFactory) ListTypes() []AdapterInfo {
	return nil
}

// Ensure MockAdapterFactory implements AdapterFactory at compile time.
var _ AdapterFactory = (*MockAdapterFactory)(nil)
