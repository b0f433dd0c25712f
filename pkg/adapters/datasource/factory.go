package datasource

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/queryscribe/queryscribe/pkg/apperrors"
)

// AdapterFactory creates adapters from the registry.
// Use this interface for dependency injection and testing.
type AdapterFactory interface {
	// NewAdapter creates an adapter for the database the connection
	// string points at. The adapter type is inferred from the connection
	// string's shape (URL scheme or DSN keywords).
	NewAdapter(ctx context.Context, connStr string) (Adapter, error)

	// ListTypes returns info for all registered adapter types.
	ListTypes() []AdapterInfo
}

type registryFactory struct {
	logger *zap.Logger
}

// NewAdapterFactory returns a factory backed by the global registry.
func NewAdapterFactory(logger *zap.Logger) AdapterFactory {
	return &registryFactory{logger: logger}
}

func (f *registryFactory) NewAdapter(ctx context.Context, connStr string) (Adapter, error) {
	reg, ok := match(connStr)
	if !ok {
		return nil, fmt.Errorf("%w: connection string not recognized by any registered adapter", apperrors.ErrUnsupportedDatasource)
	}
	return reg.New(ctx, connStr, f.logger)
}

func (f *registryFactory) ListTypes() []AdapterInfo {
	return RegisteredAdapters()
}

// Ensure registryFactory implements AdapterFactory at compile time.
var _ AdapterFactory = (*registryFactory)(nil)
