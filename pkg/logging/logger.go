// Package logging builds the process logger and provides redaction
// helpers for credential-bearing strings.
package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// NewLogger constructs the root zap logger for the given environment.
// "local" and "development" get the human-readable development config;
// anything else gets JSON production output.
func NewLogger(env string) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)

	switch env {
	case "local", "development":
		logger, err = zap.NewDevelopment()
	default:
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return logger, nil
}
