package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGenerationPrompt(t *testing.T) {
	schemaText := "Table: users\n  - id integer NOT NULL [PK]\n"
	question := "How many users are there?"

	prompt := BuildGenerationPrompt(schemaText, question)

	assert.Contains(t, prompt, schemaText)
	assert.Contains(t, prompt, "Examples:")
	assert.True(t, strings.HasSuffix(prompt, "Question: How many users are there?\nSQL:"),
		"prompt must end with the question and an open SQL: cue")
}

func TestBuildGenerationPrompt_Deterministic(t *testing.T) {
	first := BuildGenerationPrompt("Table: t\n", "q?")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildGenerationPrompt("Table: t\n", "q?"))
	}
}

func TestBuildRetryPrompt(t *testing.T) {
	prompt := BuildRetryPrompt("Table: users\n", "count users")

	assert.Contains(t, prompt, "Table: users")
	assert.Contains(t, prompt, "count users")
	assert.True(t, strings.HasSuffix(prompt, "Start your response with SELECT."))

	// The retry prompt is deliberately terse; the few-shot examples from
	// the first attempt must not leak into it.
	assert.NotContains(t, prompt, "Examples:")
}

func TestSystemMessages(t *testing.T) {
	assert.Contains(t, GenerationSystemMessage, "Output ONLY the SQL statement")
	assert.Contains(t, RetrySystemMessage, "raw SQL")
}
