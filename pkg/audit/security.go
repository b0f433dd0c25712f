// Package audit provides security audit logging for SIEM consumption.
// Security-relevant events are logged as structured JSON so they can be
// filtered and alerted on independently of application logs.
package audit

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SecurityEventType categorizes security-relevant events.
type SecurityEventType string

const (
	// EventSQLInjectionAttempt is logged when libinjection detects SQL
	// injection patterns in an inbound natural-language prompt.
	EventSQLInjectionAttempt SecurityEventType = "sql_injection_attempt"
)

// SecurityEvent is one auditable event with the context a SIEM needs.
type SecurityEvent struct {
	Timestamp  time.Time         `json:"timestamp"`
	EventType  SecurityEventType `json:"event_type"`
	AnalysisID uuid.UUID         `json:"analysis_id"`
	ClientIP   string            `json:"client_ip,omitempty"`
	Details    any               `json:"details"`
	Severity   string            `json:"severity"` // info, warning, critical
}

// InjectionDetails contains specifics of a detected injection pattern.
type InjectionDetails struct {
	Input       string `json:"input"`
	Fingerprint string `json:"fingerprint"` // libinjection fingerprint
}

// SecurityAuditor logs security events under a dedicated logger namespace
// for easy filtering.
type SecurityAuditor struct {
	logger *zap.Logger
}

// NewSecurityAuditor creates a security auditor.
func NewSecurityAuditor(logger *zap.Logger) *SecurityAuditor {
	return &SecurityAuditor{logger: logger.Named("security_audit")}
}

// LogInjectionAttempt records a SQL injection pattern found in an inbound
// prompt. The prompt is not rejected on a hit - generated SQL still runs
// through the acceptance and single-statement checks - but the event is
// logged at WARN with full context for alerting.
func (a *SecurityAuditor) LogInjectionAttempt(analysisID uuid.UUID, details InjectionDetails, clientIP string) {
	event := SecurityEvent{
		Timestamp:  time.Now().UTC(),
		EventType:  EventSQLInjectionAttempt,
		AnalysisID: analysisID,
		ClientIP:   clientIP,
		Details:    details,
		Severity:   "warning",
	}

	// Marshaling known types should never fail.
	eventJSON, _ := json.Marshal(event)

	a.logger.Warn("SQL injection pattern in prompt",
		zap.String("event_json", string(eventJSON)),
		zap.String("analysis_id", analysisID.String()),
		zap.String("fingerprint", details.Fingerprint),
		zap.String("client_ip", clientIP))
}
