// Package prompts renders schema context and builds the LLM prompts for
// query generation and result summarization. Prompt wording directly
// affects generation quality, so everything here is deterministic: the
// same input always yields byte-identical text.
package prompts

import (
	"strings"

	"github.com/queryscribe/queryscribe/pkg/models"
)

// DescribeSchema renders a schema as prompt-ready text. Tables appear in
// stored order and columns in ordinal order; nothing is sorted or
// deduplicated here. Pure function of its input.
func DescribeSchema(schema *models.Schema) string {
	var b strings.Builder

	for i, table := range schema.Tables {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Table: ")
		b.WriteString(table.Name)
		b.WriteString("\n")

		for _, col := range table.Columns {
			b.WriteString("  - ")
			b.WriteString(col.Name)
			b.WriteString(" ")
			b.WriteString(col.DataType)
			if col.IsNullable {
				b.WriteString(" NULL")
			} else {
				b.WriteString(" NOT NULL")
			}
			if col.IsPrimaryKey {
				b.WriteString(" [PK]")
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}
