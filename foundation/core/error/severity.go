// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses them to
//              choose the level at which an error is reported.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.1.1: Severity mapping for shell helper codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error, typically bad user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with an obvious workaround
	SeverityMedium

	// SeverityHigh indicates an error that aborts the current command
	SeverityHigh

	// SeverityCritical indicates an error that makes the tool unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should be surfaced to the user
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal, CodeEnvironmentError:
		return SeverityCritical

	case CodeIOError, CodePermissionDenied, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeExternalCommandError, CodeTimeout, CodeMissingConfig, CodeUnsupported:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeInvalidFormat,
		CodeValueOutOfRange, CodeDuplicate:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
