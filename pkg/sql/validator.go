package sql

import "strings"

// markerPhrases indicate the model answered in prose instead of emitting
// pure SQL. Matched case-insensitively anywhere in the text.
var markerPhrases = []string{
	"here is",
	"here's",
	"this query",
	"explanation",
	"note that",
	"this will",
}

// IsAcceptable is the heuristic acceptance gate for a cleaned completion.
// It validates against the raw trimmed text (no preamble stripping; that
// is Clean's job): the text must start with a statement keyword, a SELECT
// must contain FROM, and no conversational marker phrase may appear.
// Casing is only normalized for matching; callers execute the original.
func IsAcceptable(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	upper := strings.ToUpper(trimmed)

	starts := false
	for _, kw := range statementKeywords {
		if strings.HasPrefix(upper, kw) {
			starts = true
			break
		}
	}
	if !starts {
		return false
	}

	// Cheap structural sanity check, not SQL validation.
	if strings.HasPrefix(upper, "SELECT") && !strings.Contains(upper, "FROM") {
		return false
	}

	lower := strings.ToLower(trimmed)
	for _, phrase := range markerPhrases {
		if strings.Contains(lower, phrase) {
			return false
		}
	}

	return true
}
