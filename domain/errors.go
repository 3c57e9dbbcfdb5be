package domain

import "errors"

// Pipeline errors. All three are fatal: there are no retries and no
// skip-and-continue semantics, one failure aborts the entire run before any
// report is written. Call sites wrap these with fmt.Errorf("...: %w", ...)
// so callers can match them with errors.Is().
var (
	// ErrScanFailed is returned when the external scanner is missing, exits
	// non-zero, or produces output that is not valid JSON.
	ErrScanFailed = errors.New("dependency scan failed")

	// ErrLicenseFileRead is returned when metadata references a license file
	// that cannot be read.
	ErrLicenseFileRead = errors.New("license file unreadable")

	// ErrReportWrite is returned when the report destination cannot be
	// opened or written.
	ErrReportWrite = errors.New("report write failed")
)
