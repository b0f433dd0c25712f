package prompts

import (
	"fmt"
	"strings"
)

// GenerationSystemMessage is the fixed system-role instruction for query
// generation. The output rules are strict because the reply is executed
// verbatim after heuristic cleaning.
const GenerationSystemMessage = `You are an expert SQL developer. You translate natural-language questions into SQL queries.

Rules:
- Output ONLY the SQL statement. No explanations, no markdown fences, no commentary.
- Use ONLY the tables and columns listed in the schema, with their exact names.
- Use the dialect idioms of the target database.
- Prefer explicit JOINs over implicit ones.
- Add WHERE filters, ORDER BY and GROUP BY clauses as implied by the question.
- Return a single statement.`

// BuildGenerationPrompt assembles the first-attempt user prompt from the
// rendered schema text and the natural-language question, with a pair of
// input/output examples to anchor the expected style.
func BuildGenerationPrompt(schemaText, question string) string {
	var b strings.Builder

	b.WriteString("Database schema:\n\n")
	b.WriteString(schemaText)
	b.WriteString("\n")

	b.WriteString("Examples:\n\n")
	b.WriteString("Question: How many customers signed up last month?\n")
	b.WriteString("SQL: SELECT COUNT(*) FROM Customers WHERE CreatedAt >= DATE_TRUNC('month', CURRENT_DATE - INTERVAL '1 month') AND CreatedAt < DATE_TRUNC('month', CURRENT_DATE)\n\n")
	b.WriteString("Question: What are the top 5 products by revenue?\n")
	b.WriteString("SQL: SELECT p.Name, SUM(o.Total) AS Revenue FROM Products p JOIN Orders o ON o.ProductId = p.ProductId GROUP BY p.Name ORDER BY Revenue DESC LIMIT 5\n\n")

	fmt.Fprintf(&b, "Question: %s\nSQL:", question)

	return b.String()
}

// RetrySystemMessage is the stricter instruction used for the single
// regeneration attempt after the first reply failed the acceptance check.
const RetrySystemMessage = `You output raw SQL and nothing else. Never explain. Never use markdown.`

// BuildRetryPrompt assembles the shorter, stricter retry prompt. The
// retry's output is used whether or not it passes validation, so the
// instruction leaves the model as little room as possible.
func BuildRetryPrompt(schemaText, question string) string {
	var b strings.Builder

	b.WriteString("Schema:\n")
	b.WriteString(schemaText)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Write one SQL query answering: %s\n", question)
	b.WriteString("Start your response with SELECT.")

	return b.String()
}
