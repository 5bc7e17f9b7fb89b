// File: error_test.go
// Title: Core Error Tests
// Description: Tests for error construction, wrapping, code lookup through
//              wrapped chains and JSON serialization.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: Chain lookups, exit codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New("something failed")

	if err.Error() != "something failed" {
		t.Errorf("Error() = %q, want %q", err.Error(), "something failed")
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if len(err.StackTrace()) == 0 {
		t.Error("New() should capture a stack trace")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller", err.StackTrace()[0].Function)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidInput, SeverityLow},
		{CodeIOError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeExternalCommandError, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("severity = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Fatal("Wrap(nil) should return nil")
	}

	base := errors.New("disk full")
	wrapped := Wrap(base, "write failed")
	if wrapped.Error() != "write failed: disk full" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("errors.Is should find the cause")
	}
	if wrapped.RootCause() != base {
		t.Errorf("RootCause() = %v, want %v", wrapped.RootCause(), base)
	}

	inner := New("bad value").WithCode(CodeInvalidFormat).WithDetail("field", "debug")
	outer := Wrap(inner, "set failed")
	if outer.Code() != CodeInvalidFormat {
		t.Errorf("wrapped code = %v, want %v", outer.Code(), CodeInvalidFormat)
	}
	if outer.Details()["field"] != "debug" {
		t.Errorf("wrapped details = %v", outer.Details())
	}
}

func TestChainLookups(t *testing.T) {
	inner := New("missing").WithCode(CodeNotFound)
	chain := fmt.Errorf("outer: %w", Wrap(inner, "middle").WithCode(CodeIOError))

	if GetCode(chain) != CodeIOError {
		t.Errorf("GetCode() = %v, want %v", GetCode(chain), CodeIOError)
	}
	if !HasCode(chain, CodeNotFound) {
		t.Error("HasCode() should find a code deeper in the chain")
	}
	if HasCode(chain, CodeTimeout) {
		t.Error("HasCode() reported an absent code")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() of a plain error should be SeverityMedium")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("boom"), "run failed").
		WithCode(CodeExternalCommandError).
		WithOperation("execx.LookPath").
		WithDetail("name", "vim")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("Marshal() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if e := json.Unmarshal(data, &decoded); e != nil {
		t.Fatalf("Unmarshal() error = %v", e)
	}
	if decoded["code"] != string(CodeExternalCommandError) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "execx.LookPath" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "boom" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestStringSortsDetails(t *testing.T) {
	err := New("x").WithDetails(map[string]interface{}{"b": 2, "a": 1})
	if !strings.Contains(err.String(), "Details: {a=1, b=2}") {
		t.Errorf("String() = %q", err.String())
	}
}

func TestCodeExitCode(t *testing.T) {
	tests := []struct {
		code Code
		want int
	}{
		{CodeInvalidInput, 65},
		{CodeNotFound, 66},
		{CodeExternalCommandError, 69},
		{CodeIOError, 74},
		{CodeInvalidConfig, 78},
		{CodeUnknown, 1},
	}

	for _, tt := range tests {
		if got := tt.code.ExitCode(); got != tt.want {
			t.Errorf("%s.ExitCode() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestCodeIsValid(t *testing.T) {
	if !CodeIOError.IsValid() {
		t.Error("CodeIOError should be valid")
	}
	if Code("NOPE").IsValid() {
		t.Error("unknown code reported valid")
	}
	if CodeInvalidConfig.Category() != "configuration" {
		t.Errorf("Category() = %q", CodeInvalidConfig.Category())
	}
}
