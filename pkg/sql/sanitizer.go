// Package sql provides heuristic text utilities for LLM-generated SQL:
// cleaning raw completions, gating them with an acceptance check, and
// normalizing statements before execution. None of this is a SQL parser;
// the database itself is the final arbiter of validity.
package sql

import (
	"regexp"
	"strings"
)

// statementKeywords are the leading keywords a SQL statement may start
// with. Shared by the sanitizer and the validator.
var statementKeywords = []string{"SELECT", "INSERT", "UPDATE", "DELETE", "WITH"}

// Matches a markdown code fence, optionally tagged with a language hint
// (```sql, ```SQL, plain ```). Models frequently wrap their answer in one.
var fencePattern = regexp.MustCompile("(?i)```[a-z]*")

// Clean strips markdown fencing and conversational preamble from a raw
// completion, isolating the first SQL statement. Best effort: if no
// statement keyword is found anywhere the text is returned unchanged
// (including empty input). Idempotent on already-clean SQL.
func Clean(raw string) string {
	text := fencePattern.ReplaceAllString(raw, "")
	text = strings.TrimSpace(text)

	// Drop leading prose such as "Here is the query:" by cutting at the
	// first statement keyword that is not already at position 0.
	idx := firstKeywordIndex(text)
	if idx > 0 {
		text = text[idx:]
	}

	return text
}

// firstKeywordIndex returns the smallest case-insensitive index of any
// statement keyword in text, or -1 when none occurs. The index is a byte
// offset into text, so uppercasing must not shift offsets.
func firstKeywordIndex(text string) int {
	upper := asciiUpper(text)

	idx := -1
	for _, kw := range statementKeywords {
		if i := strings.Index(upper, kw); i >= 0 && (idx < 0 || i < idx) {
			idx = i
		}
	}
	return idx
}

// asciiUpper uppercases ASCII letters only. strings.ToUpper applies
// Unicode case folds that can change byte length (U+017F folds to S),
// which would make indexes into the folded copy invalid for the original.
// The keywords are ASCII, so ASCII folding is all the match needs.
func asciiUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
