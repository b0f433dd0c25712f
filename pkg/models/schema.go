package models

// Schema describes the structure of a target database as introspected at
// request time. It is built fresh for every analysis, never cached, and is
// immutable once constructed. Table order and column order are preserved
// exactly as reported by the source database so that the rendered prompt
// text is reproducible.
type Schema struct {
	Tables []Table `json:"tables"`
}

// Table is a single base table with its columns in ordinal position order.
type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
}

// Column describes one column of a table. DataType is the free-text type
// label reported by the source database, not a closed enum.
type Column struct {
	Name         string `json:"name"`
	DataType     string `json:"data_type"`
	IsNullable   bool   `json:"is_nullable"`
	IsPrimaryKey bool   `json:"is_primary_key"`
}

// TableCount returns the number of tables in the schema.
func (s *Schema) TableCount() int {
	return len(s.Tables)
}

// ColumnCount returns the total number of columns across all tables.
func (s *Schema) ColumnCount() int {
	n := 0
	for _, t := range s.Tables {
		n += len(t.Columns)
	}
	return n
}
