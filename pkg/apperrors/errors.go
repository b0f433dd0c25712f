package apperrors

import "errors"

var (
	// ErrConnectionFailed is the fixed user-facing message returned when the
	// target database cannot be reached with the supplied connection string.
	ErrConnectionFailed = errors.New("failed to connect to the database")

	ErrUnsupportedDatasource = errors.New("unsupported datasource type")
	ErrMultipleStatements    = errors.New("multiple SQL statements not allowed; only single statements are permitted")
)
