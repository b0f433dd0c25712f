package postgres

import (
	"context"
	"fmt"

	"github.com/queryscribe/queryscribe/pkg/models"
)

// ExtractSchema introspects all base tables and their columns. Tables are
// ordered by schema and name as the introspection query reports them;
// columns by ordinal position. System schemas are excluded.
func (a *Adapter) ExtractSchema(ctx context.Context) (*models.Schema, error) {
	const tablesQuery = `
		SELECT table_schema, table_name
		FROM information_schema.tables
		WHERE table_type = 'BASE TABLE'
		  AND table_schema NOT IN ('pg_catalog', 'information_schema', 'pg_toast')
		ORDER BY table_schema, table_name
	`

	rows, err := a.pool.Query(ctx, tablesQuery)
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

// extractColumns returns the columns of one table in ordinal order.
// Primary keys are detected via pg_index.indisprimary, which also catches
// PKs created as unique indexes by ORMs.
func (a *Adapter) extractColumns(ctx context.Context, schemaName, tableName string) ([]models.Column, error) {
	const query = `
		SELECT
			c.column_name,
			c.data_type,
			c.is_nullable = 'YES' AS is_nullable,
			COALESCE(pk.is_pk, false) AS is_primary_key
		FROM information_schema.columns c
		LEFT JOIN (
			SELECT a.attname AS column_name, true AS is_pk
			FROM pg_index ix
			JOIN pg_class t ON t.oid = ix.indrelid
			JOIN pg_namespace n ON n.oid = t.relnamespace
			JOIN pg_attribute a ON a.attrelid = t.oid AND a.attnum = ANY(ix.indkey)
			WHERE ix.indisprimary = true
			  AND n.nspname = $1
			  AND t.relname = $2
		) pk ON c.column_name = pk.column_name
		WHERE c.table_schema = $1 AND c.table_name = $2
		ORDER BY c.ordinal_position
	`

	rows, err := a.pool.Query(ctx, query, schemaName, tableName)
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
// table name for public, matching how users write queries against them.
func qualifiedName(schemaName, tableName string) string {
	if schemaName == "" || schemaName == "public" {
		return tableName
	}
	return schemaName + "." + tableName
}
