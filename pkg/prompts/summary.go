package prompts

import (
	"fmt"
	"strings"
)

// SummarySystemMessage instructs the model to answer as a business
// analyst rather than an engineer.
const SummarySystemMessage = `You are a business analyst explaining query results to a non-technical audience.

Rules:
- Answer the question directly, using concrete figures from the results.
- Keep it under 150 words.
- Do not mention SQL, queries, tables, or any technical jargon.
- Call out notable patterns or outliers when the numbers show them.`

// SummaryInput carries the material for a result-summarization prompt.
// StatsBlock and SampleBlock are pre-rendered by the summarizer so the
// prompt assembly stays a pure string concern.
type SummaryInput struct {
	Question    string
	Query       string
	RowCount    int
	StatsBlock  string
	SampleBlock string
}

// BuildSummaryPrompt assembles the user prompt for the second LLM call.
func BuildSummaryPrompt(in SummaryInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n\n", in.Question)
	fmt.Fprintf(&b, "Executed query:\n%s\n\n", in.Query)
	fmt.Fprintf(&b, "Row count: %d\n", in.RowCount)

	if in.StatsBlock != "" {
		b.WriteString("\nColumn statistics:\n")
		b.WriteString(in.StatsBlock)
	}

	if in.SampleBlock != "" {
		b.WriteString("\nSample rows:\n")
		b.WriteString(in.SampleBlock)
	}

	b.WriteString("\nSummarize these results for the person who asked the question.")

	return b.String()
}
