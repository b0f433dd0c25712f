package postgres

import (
	"context"

	"go.uber.org/zap"

	"github.com/queryscribe/queryscribe/pkg/adapters/datasource"
)

func init() {
	datasource.Register(datasource.AdapterRegistration{
		Info: datasource.AdapterInfo{
			Type:        "postgres",
			DisplayName: "PostgreSQL",
			Description: "Connect to PostgreSQL 12+",
		},
		Matches: Matches,
		New: func(ctx context.Context, connStr string, logger *zap.Logger) (datasource.Adapter, error) {
			return NewAdapter(ctx, connStr, logger)
		},
	})
}
