// File: cast_test.go
// Title: Type Coercion Tests
// Description: Tests for Parse, ParseBool and the diagnostic behavior of Cast.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation
// - 2026-10-16 v0.1.1: Non-ASCII digits and digit separator placement

package castx

import (
	"bytes"
	"strings"
	"testing"
	"time"

	kiterror "github.com/msto63/cmdkit/foundation/core/error"
	kitlog "github.com/msto63/cmdkit/foundation/core/log"
)

type mode string

type level int8

func TestParseBool(t *testing.T) {
	tests := []struct {
		input  string
		want   bool
		wantOK bool
	}{
		{"0", false, true},
		{"1", true, true},
		{"2", true, true},
		{"-0", false, true},
		{" 10 ", true, true},
		{"123456789012345678901234567890", true, true},
		{"on", true, true},
		{"ON", true, true},
		{"off", false, true},
		{"Off", false, true},
		{"yes", true, true},
		{"y", true, true},
		{"true", true, true},
		{"T", true, true},
		{"no", false, true},
		{"false", false, true},
		{"F", false, true},
		{"nope", false, true},
		{"", false, false},
		{"o", false, false},
		{"maybe", false, false},
		{" yes", false, false},
		{"٠", false, true},
		{"١", true, true},
		{"1_", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseBool(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseBool(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		current any
		raw     string
		want    any
	}{
		{"bool from int", true, "0", false},
		{"bool from word", false, "on", true},
		{"int", 5, "42", 42},
		{"int with spaces and sign", 5, " -7 ", -7},
		{"int with underscores", 5, "1_000", 1000},
		{"int leading zeros are decimal", 5, "010", 10},
		{"int arabic-indic digits", 5, "١٢", 12},
		{"int fullwidth digits with sign", 5, "-４２", -42},
		{"int underscores between non-ascii digits", 5, "١_٠٠٠", 1000},
		{"int8", int8(1), "-128", int8(-128)},
		{"uint16", uint16(1), "65535", uint16(65535)},
		{"float64", 1.5, "2.25", 2.25},
		{"float from int text", 1.5, "3", 3.0},
		{"float32", float32(1), "0.5", float32(0.5)},
		{"float with digit separators", 1.5, "1_000.5", 1000.5},
		{"float separator in exponent", 1.5, "1e1_0", 1e10},
		{"float arabic-indic digits", 1.5, "١.٥", 1.5},
		{"string", "old", "new value", "new value"},
		{"string keeps quotes", "old", `"x"`, `"x"`},
		{"duration", time.Second, "1m30s", 90 * time.Second},
		{"named string", mode("vi"), "emacs", mode("emacs")},
		{"named int", level(1), "3", level(3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.current, tt.raw)
			if err != nil {
				t.Fatalf("Parse(%v, %q) error = %v", tt.current, tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%v, %q) = %#v; want %#v", tt.current, tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		current  any
		raw      string
		wantCode kiterror.Code
	}{
		{"int from word", 5, "abc", kiterror.CodeInvalidFormat},
		{"int from float", 5, "3.5", kiterror.CodeInvalidFormat},
		{"int8 overflow", int8(1), "128", kiterror.CodeInvalidFormat},
		{"uint negative", uint(1), "-1", kiterror.CodeInvalidFormat},
		{"int empty", 5, "", kiterror.CodeInvalidFormat},
		{"int double underscore", 5, "1__0", kiterror.CodeInvalidFormat},
		{"int hex", 5, "0x10", kiterror.CodeInvalidFormat},
		{"float from word", 1.0, "abc", kiterror.CodeInvalidFormat},
		{"float hex", 1.0, "0x1p-2", kiterror.CodeInvalidFormat},
		{"float underscore before point", 1.0, "1_.5", kiterror.CodeInvalidFormat},
		{"float underscore after point", 1.0, "1._5", kiterror.CodeInvalidFormat},
		{"float underscore after exponent", 1.0, "1e_5", kiterror.CodeInvalidFormat},
		{"float underscore before exponent", 1.0, "1_e5", kiterror.CodeInvalidFormat},
		{"float leading underscore after sign", 1.0, "-_1.5", kiterror.CodeInvalidFormat},
		{"float trailing underscore", 1.0, "1.5_", kiterror.CodeInvalidFormat},
		{"int underscore after sign", 5, "+_1", kiterror.CodeInvalidFormat},
		{"int trailing underscore", 5, "10_", kiterror.CodeInvalidFormat},
		{"bool unknown", true, "maybe", kiterror.CodeInvalidFormat},
		{"duration", time.Second, "soon", kiterror.CodeInvalidFormat},
		{"nil reference", nil, "x", kiterror.CodeInvalidInput},
		{"unsupported kind", []string{"a"}, "b", kiterror.CodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.current, tt.raw)
			if err == nil {
				t.Fatalf("Parse(%v, %q) should fail", tt.current, tt.raw)
			}
			if code := kiterror.GetCode(err); code != tt.wantCode {
				t.Errorf("error code = %v; want %v (%v)", code, tt.wantCode, err)
			}
		})
	}
}

func TestCasterCast(t *testing.T) {
	var out, logs bytes.Buffer
	caster := &Caster{
		Output: &out,
		Logger: kitlog.NewWithConfig(kitlog.Config{Level: kitlog.LevelDebug, Format: kitlog.FormatText, Output: &logs}),
	}

	if got := caster.Cast(true, "0"); got != false {
		t.Errorf("Cast(true, 0) = %v", got)
	}
	if got := caster.Cast(true, "on"); got != true {
		t.Errorf("Cast(true, on) = %v", got)
	}
	if out.Len() != 0 {
		t.Errorf("successful casts wrote a diagnostic: %q", out.String())
	}

	if got := caster.Cast(5, "abc"); got != 5 {
		t.Errorf("Cast(5, abc) = %v; want 5", got)
	}
	want := "Problem setting parameter (now 5) to abc; incorrect type?\n"
	if out.String() != want {
		t.Errorf("diagnostic = %q; want %q", out.String(), want)
	}
	if !strings.Contains(logs.String(), "cast failed") || !strings.Contains(logs.String(), "type=int") {
		t.Errorf("debug log = %q", logs.String())
	}
}

func TestCasterNeverPanics(t *testing.T) {
	var out bytes.Buffer
	caster := NewCaster(&out)

	for _, current := range []any{nil, struct{}{}, map[string]int{}, true, 1, 1.0, ""} {
		for _, raw := range []string{"", " ", "\x00", "1e400", "-"} {
			caster.Cast(current, raw)
		}
	}
}

func TestCastTo(t *testing.T) {
	if got := CastTo(10, "20"); got != 20 {
		t.Errorf("CastTo(10, 20) = %d", got)
	}
	if got := CastTo(mode("vi"), "nano"); got != "nano" {
		t.Errorf("CastTo(mode) = %q", got)
	}
}
