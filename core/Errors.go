package core

import "errors"

var (
	// ErrReportDirNotFound is returned when the report directory does not exist.
	ErrReportDirNotFound = errors.New("report directory not found")

	// ErrGateFailed signals a policy violation rather than a processing error.
	ErrGateFailed = errors.New("high severity and high confidence findings present")
)
