package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/queryscribe/queryscribe/pkg/llm"
	"github.com/queryscribe/queryscribe/pkg/models"
	"github.com/queryscribe/queryscribe/pkg/prompts"
)

// DefaultSampleRows is how many rows are quoted literally in the
// summarization prompt.
const DefaultSampleRows = 5

// ColumnStat holds min/max/average for one numeric result column,
// aggregated over non-null values only.
type ColumnStat struct {
	Column string
	Count  int
	Min    float64
	Max    float64
	Avg    float64
}

// Summarizer turns a result set into a natural-language narrative via a
// second completion call, feeding the model row counts, per-column
// statistics and a literal sample.
type Summarizer struct {
	sampleRows int
	logger     *zap.Logger
}

// NewSummarizer creates a result summarizer. sampleRows <= 0 uses
// DefaultSampleRows.
func NewSummarizer(sampleRows int, logger *zap.Logger) *Summarizer {
	if sampleRows <= 0 {
		sampleRows = DefaultSampleRows
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Summarizer{
		sampleRows: sampleRows,
		logger:     logger.Named("summarizer"),
	}
}

// Summarize builds the summarization prompt and returns the model's
// trimmed response. Narrative text is not sanitized or validated beyond
// whitespace trimming.
func (s *Summarizer) Summarize(ctx context.Context, client llm.CompletionClient, question, query string, rows []models.Row) (string, error) {
	stats := computeColumnStats(rows)

	input := prompts.SummaryInput{
		Question:    question,
		Query:       query,
		RowCount:    len(rows),
		StatsBlock:  formatStats(stats),
		SampleBlock: formatSample(rows, s.sampleRows),
	}

	s.logger.Debug("summarizing results",
		zap.Int("row_count", len(rows)),
		zap.Int("numeric_columns", len(stats)))

	response, err := client.Complete(ctx, prompts.BuildSummaryPrompt(input), prompts.SummarySystemMessage)
	if err != nil {
		return "", fmt.Errorf("summarize results: %w", err)
	}

	return strings.TrimSpace(response), nil
}

// computeColumnStats aggregates min/max/avg for numeric columns. A column
// counts as numeric when its first non-null value is an integer or
// floating-point variant; the single-sample sniff is deliberate, cheaper
// than inspecting every row. Nulls are excluded from aggregation.
func computeColumnStats(rows []models.Row) []ColumnStat {
	if len(rows) == 0 {
		return nil
	}

	columns := sortedColumns(rows[0])

	var stats []ColumnStat
	for _, col := range columns {
		if !sniffNumeric(rows, col) {
			continue
		}

		stat := ColumnStat{Column: col}
		for _, row := range rows {
			v, ok := row[col]
			if !ok || v.IsNull() {
				continue
			}
			n, ok := v.Numeric()
			if !ok {
				continue
			}
			if stat.Count == 0 || n < stat.Min {
				stat.Min = n
			}
			if stat.Count == 0 || n > stat.Max {
				stat.Max = n
			}
			stat.Avg += n
			stat.Count++
		}
		if stat.Count > 0 {
			stat.Avg /= float64(stat.Count)
			stats = append(stats, stat)
		}
	}

	return stats
}

// sniffNumeric checks whether the first non-null value of the column is
// numeric.
func sniffNumeric(rows []models.Row, col string) bool {
	for _, row := range rows {
		v, ok := row[col]
		if !ok || v.IsNull() {
			continue
		}
		_, numeric := v.Numeric()
		return numeric
	}
	return false
}

// formatStats renders per-column statistics to two decimal places.
func formatStats(stats []ColumnStat) string {
	if len(stats) == 0 {
		return ""
	}

	var b strings.Builder
	for _, s := range stats {
		fmt.Fprintf(&b, "  - %s: min=%.2f max=%.2f avg=%.2f\n", s.Column, s.Min, s.Max, s.Avg)
	}
	return b.String()
}

// formatSample renders up to n rows as a readable block, one row per
// line with columns in sorted order.
func formatSample(rows []models.Row, n int) string {
	if len(rows) == 0 {
		return ""
	}
	if n > len(rows) {
		n = len(rows)
	}

	columns := sortedColumns(rows[0])

	var b strings.Builder
	for i := 0; i < n; i++ {
		pairs := make([]string, 0, len(columns))
		for _, col := range columns {
			pairs = append(pairs, fmt.Sprintf("%s=%s", col, rows[i][col].String()))
		}
		fmt.Fprintf(&b, "  %d. %s\n", i+1, strings.Join(pairs, ", "))
	}
	return b.String()
}

// sortedColumns returns the row's column names sorted for deterministic
// prompt text.
func sortedColumns(row models.Row) []string {
	columns := make([]string, 0, len(row))
	for col := range row {
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns
}
