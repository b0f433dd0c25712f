package mssql

import (
	"context"
	"fmt"

	"github.com/queryscribe/queryscribe/pkg/models"
)

// ExtractSchema introspects all user tables and their columns. Tables are
// ordered by schema and name; columns by ordinal position. Microsoft
// system tables are excluded.
func (a *Adapter) ExtractSchema(ctx context.Context) (*models.Schema, error) {
	const tablesQuery = `
	SELECT TABLE_SCHEMA, TABLE_NAME
	FROM INFORMATION_SCHEMA.TABLES
	WHERE TABLE_TYPE = 'BASE TABLE'
	ORDER BY TABLE_SCHEMA, TABLE_NAME
	`

	rows, err := a.db.QueryContext(ctx, tablesQuery)
	if err != nil {
		return nil, fmt.Errorf("query tables: %w", err)
	}
	defer rows.Close()

	type tableRef struct {
		schema string
		name   string
	}
	var refs []tableRef
	for rows.Next() {
		var r tableRef
		if err := rows.Scan(&r.schema, &r.name); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		refs = append(refs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tables: %w", err)
	}

	schema := &models.Schema{Tables: make([]models.Table, 0, len(refs))}
	for _, ref := range refs {
		columns, err := a.extractColumns(ctx, ref.schema, ref.name)
		if err != nil {
			return nil, err
		}
		schema.Tables = append(schema.Tables, models.Table{
			Name:    qualifiedName(ref.schema, ref.name),
			Columns: columns,
		})
	}

	return schema, nil
}

// extractColumns returns the columns of one table in ordinal order with
// primary-key membership from the table's PRIMARY KEY constraint.
func (a *Adapter) extractColumns(ctx context.Context, schemaName, tableName string) ([]models.Column, error) {
	const query = `
	SELECT
	    c.COLUMN_NAME,
	    c.DATA_TYPE,
	    CAST(CASE WHEN c.IS_NULLABLE = 'YES' THEN 1 ELSE 0 END AS BIT) AS is_nullable,
	    CAST(CASE WHEN pk.COLUMN_NAME IS NOT NULL THEN 1 ELSE 0 END AS BIT) AS is_primary_key
	FROM INFORMATION_SCHEMA.COLUMNS c
	LEFT JOIN (
	    SELECT kcu.COLUMN_NAME
	    FROM INFORMATION_SCHEMA.TABLE_CONSTRAINTS tc
	    JOIN INFORMATION_SCHEMA.KEY_COLUMN_USAGE kcu
	        ON tc.CONSTRAINT_NAME = kcu.CONSTRAINT_NAME
	        AND tc.TABLE_SCHEMA = kcu.TABLE_SCHEMA
	    WHERE tc.CONSTRAINT_TYPE = 'PRIMARY KEY'
	      AND tc.TABLE_SCHEMA = @p1
	      AND tc.TABLE_NAME = @p2
	) pk ON c.COLUMN_NAME = pk.COLUMN_NAME
	WHERE c.TABLE_SCHEMA = @p1 AND c.TABLE_NAME = @p2
	ORDER BY c.ORDINAL_POSITION
	`

	rows, err := a.db.QueryContext(ctx, query, schemaName, tableName)
	if err != nil {
		return nil, fmt.Errorf("query columns for %s.%s: %w", schemaName, tableName, err)
	}
	defer rows.Close()

	var columns []models.Column
	for rows.Next() {
		var c models.Column
		if err := rows.Scan(&c.Name, &c.DataType, &c.IsNullable, &c.IsPrimaryKey); err != nil {
			return nil, fmt.Errorf("scan column: %w", err)
		}
		columns = append(columns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate columns: %w", err)
	}

	return columns, nil
}

// qualifiedName renders schema.table for non-default schemas and the bare
// table name for dbo.
func qualifiedName(schemaName, tableName string) string {
	if schemaName == "" || schemaName == "dbo" {
		return tableName
	}
	return schemaName + "." + tableName
}
