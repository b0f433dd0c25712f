package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult describes a SQL injection pattern detected in a
// user-supplied text.
type InjectionCheckResult struct {
	IsSQLi      bool   // True if a SQL injection pattern was detected
	Fingerprint string // libinjection fingerprint of the detected pattern
	Input       string // The text that was checked
}

// CheckTextForInjection runs libinjection over a user-supplied text. The
// natural-language prompt is echoed into LLM prompts and influences the
// generated SQL, so payloads smuggled into it are worth flagging.
//
// A hit is a signal for audit logging, not grounds for rejection: the
// generated SQL still goes through the validator and the single-statement
// check before execution.
func CheckTextForInjection(input string) *InjectionCheckResult {
	isSQLi, fingerprint := libinjection.IsSQLi(input)
	if !isSQLi {
		return nil
	}

	return &InjectionCheckResult{
		IsSQLi:      true,
		Fingerprint: string(fingerprint),
		Input:       input,
	}
}
