package mssql

import (
	"context"

	"go.uber.org/zap"

	"github.com/queryscribe/queryscribe/pkg/adapters/datasource"
)

func init() {
	datasource.Register(datasource.AdapterRegistration{
		Info: datasource.AdapterInfo{
			Type:        "sqlserver",
			DisplayName: "Microsoft SQL Server",
			Description: "Connect to SQL Server 2017+ or Azure SQL",
		},
		Matches: Matches,
		New: func(ctx context.Context, connStr string, logger *zap.Logger) (datasource.Adapter, error) {
			return NewAdapter(ctx, connStr, logger)
		},
	})
}
