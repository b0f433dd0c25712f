package sql

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{
			name:     "already clean",
			raw:      "SELECT * FROM users",
			expected: "SELECT * FROM users",
		},
		{
			name:     "fenced with sql tag",
			raw:      "```sql\nSELECT 1 FROM t\n```",
			expected: "SELECT 1 FROM t",
		},
		{
			name:     "fenced uppercase tag",
			raw:      "```SQL\nSELECT id FROM users\n```",
			expected: "SELECT id FROM users",
		},
		{
			name:     "untagged fence",
			raw:      "```\nDELETE FROM logs\n```",
			expected: "DELETE FROM logs",
		},
		{
			name:     "conversational preamble",
			raw:      "Here is the query you asked for:\nSELECT name FROM products",
			expected: "SELECT name FROM products",
		},
		{
			name:     "preamble and fence together",
			raw:      "Sure! Here you go:\n```sql\nSELECT COUNT(*) FROM orders\n```",
			expected: "SELECT COUNT(*) FROM orders",
		},
		{
			name:     "cte preserved",
			raw:      "```sql\nWITH recent AS (SELECT * FROM orders) SELECT * FROM recent\n```",
			expected: "WITH recent AS (SELECT * FROM orders) SELECT * FROM recent",
		},
		{
			name:     "no keyword returns trimmed text",
			raw:      "  I cannot answer that.  ",
			expected: "I cannot answer that.",
		},
		{
			name:     "empty input",
			raw:      "",
			expected: "",
		},
		{
			name:     "whitespace only",
			raw:      "   \n\t  ",
			expected: "",
		},
		{
			name:     "update statement with prose",
			raw:      "The statement below does it.\nUPDATE users SET active = true",
			expected: "UPDATE users SET active = true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.raw))
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"SELECT * FROM users",
		"```sql\nSELECT 1 FROM t\n```",
		"Here is the query:\nSELECT name FROM products",
		"no sql here at all",
	}

	for _, raw := range inputs {
		once := Clean(raw)
		assert.Equal(t, once, Clean(once), "Clean should be idempotent for %q", raw)
	}
}

func TestClean_NonASCIIPreamble(t *testing.T) {
	// U+017F shrinks under Unicode uppercasing; the cut index must still
	// be a valid byte offset into the original text.
	raw := "geſagt: SELECT id FROM t"
	assert.Equal(t, "SELECT id FROM t", Clean(raw))
}

func TestFirstKeywordIndex(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "keyword at start", text: "SELECT 1", expected: 0},
		{name: "keyword mid-text", text: "abc SELECT 1", expected: 4},
		{name: "lowercase keyword", text: "select 1", expected: 0},
		{name: "earliest keyword wins", text: "x DELETE y SELECT z", expected: 2},
		{name: "no keyword", text: "nothing here", expected: -1},
		{name: "empty", text: "", expected: -1},
		{name: "length-changing fold before keyword", text: "ſſ select 1", expected: 5},
		{name: "fold character alone is no keyword", text: "ſelect 1", expected: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstKeywordIndex(tt.text))
		})
	}
}
