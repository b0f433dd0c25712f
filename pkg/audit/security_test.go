package audit

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogInjectionAttempt(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	auditor := NewSecurityAuditor(zap.New(core))

	id := uuid.New()
	auditor.LogInjectionAttempt(id, InjectionDetails{
		Input:       "' OR 1=1 --",
		Fingerprint: "s&1c",
	}, "203.0.113.7:51234")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)

	fields := entries[0].ContextMap()
	eventJSON, ok := fields["event_json"].(string)
	require.True(t, ok, "event must be serialized for SIEM ingestion")
	assert.Contains(t, eventJSON, "sql_injection_attempt")
	assert.Contains(t, eventJSON, id.String())
	assert.Contains(t, eventJSON, "203.0.113.7:51234")
}
