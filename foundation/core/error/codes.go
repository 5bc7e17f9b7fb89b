// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures raised by
//              the cmdkit helpers, the settings layer and the CLI. Codes map
//              onto a category and onto a process exit status.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Reduced to shell helper codes, added ExitCode

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"
	CodeDuplicate    Code = "DUPLICATE_ENTRY"
	CodeUnsupported  Code = "UNSUPPORTED"

	// Filesystem and processes
	CodeIOError              Code = "IO_ERROR"
	CodePermissionDenied     Code = "PERMISSION_DENIED"
	CodeExternalCommandError Code = "EXTERNAL_COMMAND_ERROR"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeDuplicate, CodeUnsupported,
		CodeIOError, CodePermissionDenied, CodeExternalCommandError,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeIOError, CodePermissionDenied:
		return "filesystem"
	case CodeExternalCommandError, CodeTimeout:
		return "process"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status a command should use for this code.
// Values follow the BSD sysexits convention.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return 65 // EX_DATAERR
	case CodeNotFound:
		return 66 // EX_NOINPUT
	case CodeExternalCommandError, CodeUnsupported:
		return 69 // EX_UNAVAILABLE
	case CodeInternal:
		return 70 // EX_SOFTWARE
	case CodeIOError:
		return 74 // EX_IOERR
	case CodePermissionDenied:
		return 77 // EX_NOPERM
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return 78 // EX_CONFIG
	default:
		return 1
	}
}
