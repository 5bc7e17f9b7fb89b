// File: standards.go
// Title: Error Standards for cmdkit Modules
// Description: Standardized constructors so that every cmdkit module reports
//              failures with the same detail keys (module, operation) and
//              consistent codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2026-10-16 v0.2.0: Module set of the shell helpers, NotFoundError

package errors

import (
	"errors"
	"fmt"

	kiterror "github.com/msto63/cmdkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleSlicex   = "slicex"
	ModuleCastx    = "castx"
	ModuleExecx    = "execx"
	ModuleFilex    = "filex"
	ModuleConfig   = "config"
	ModuleSettings = "settings"
)

// InputError reports input that an operation cannot accept at all
func InputError(module, operation string, input interface{}, expected string) *kiterror.Error {
	return kiterror.New(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		WithCode(kiterror.CodeInvalidInput).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"input":     input,
			"expected":  expected,
		})
}

// FormatError reports input that could not be parsed into the expected form
func FormatError(module, operation string, input interface{}, expectedFormat string, cause error) *kiterror.Error {
	message := fmt.Sprintf("cannot parse %q as %s", fmt.Sprint(input), expectedFormat)
	var err *kiterror.Error
	if cause != nil {
		err = kiterror.Wrap(cause, message)
	} else {
		err = kiterror.New(message)
	}
	return err.
		WithCode(kiterror.CodeInvalidFormat).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":          module,
			"operation":       operation,
			"input":           input,
			"expected_format": expectedFormat,
		})
}

// NotFoundError reports a missing named resource (file, command, parameter)
func NotFoundError(module, operation, kind, name string) *kiterror.Error {
	return kiterror.New(fmt.Sprintf("%s not found: %s", kind, name)).
		WithCode(kiterror.CodeNotFound).
		WithOperation(module + "." + operation).
		WithDetails(map[string]interface{}{
			"module":    module,
			"operation": operation,
			"kind":      kind,
			"name":      name,
		})
}

// OperationError wraps the failure of an underlying system call or command
func OperationError(module, operation string, code kiterror.Code, cause error, context map[string]interface{}) *kiterror.Error {
	if context == nil {
		context = make(map[string]interface{})
	}
	context["module"] = module
	context["operation"] = operation

	message := fmt.Sprintf("%s.%s failed", module, operation)
	var err *kiterror.Error
	if cause != nil {
		err = kiterror.Wrap(cause, message).WithSeverity(kiterror.SeverityMedium)
	} else {
		err = kiterror.New(message)
	}
	return err.
		WithCode(code).
		WithOperation(module + "." + operation).
		WithDetails(context)
}

// IsModuleError checks if an error in the chain belongs to a specific module
func IsModuleError(err error, module string) bool {
	return GetErrorModule(err) == module
}

// GetErrorModule extracts the module name from a standardized error
func GetErrorModule(err error) string {
	var e *kiterror.Error
	if errors.As(err, &e) {
		if mod, ok := e.Details()["module"].(string); ok {
			return mod
		}
	}
	return ""
}

// GetErrorOperation extracts the operation name from a standardized error
func GetErrorOperation(err error) string {
	var e *kiterror.Error
	if errors.As(err, &e) {
		if op, ok := e.Details()["operation"].(string); ok {
			return op
		}
	}
	return ""
}
