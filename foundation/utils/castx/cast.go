// File: cast.go
// Title: Type Coercion for Settable Values
// Description: Converts user-supplied text into the type of an existing
//              value, as done when a shell user changes a setting. Failed
//              conversions keep the existing value and print a one-line
//              diagnostic instead of returning an error.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Digits of any script, stricter digit separators

package castx

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	kiterrors "github.com/msto63/cmdkit/foundation/core/errors"
	kitlog "github.com/msto63/cmdkit/foundation/core/log"
	"github.com/msto63/cmdkit/foundation/utils/stringx"
)

var durationType = reflect.TypeOf(time.Duration(0))

// Caster converts strings and reports failed conversions.
// The zero value writes diagnostics to os.Stdout and logs to the default logger.
type Caster struct {
	// Output receives the diagnostic line of a failed conversion
	Output io.Writer

	// Logger receives a debug entry with the underlying error
	Logger *kitlog.Logger
}

// NewCaster creates a Caster writing diagnostics to output
func NewCaster(output io.Writer) *Caster {
	return &Caster{Output: output}
}

// Cast returns raw converted to the dynamic type of current.
// If the conversion fails, a diagnostic is written and current is returned.
func (c *Caster) Cast(current any, raw string) any {
	value, err := Parse(current, raw)
	if err == nil {
		return value
	}

	out := c.Output
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintf(out, "Problem setting parameter (now %v) to %s; incorrect type?\n", current, raw)

	logger := c.Logger
	if logger == nil {
		logger = kitlog.GetDefault()
	}
	logger.DebugWithErr("cast failed", err, kitlog.Fields{
		"module": kiterrors.ModuleCastx,
		"type":   fmt.Sprintf("%T", current),
		"raw":    raw,
	})
	return current
}

var defaultCaster = &Caster{}

// Cast converts raw to the type of current using the default Caster.
//
//	Cast(true, "0")   // false
//	Cast(true, "on")  // true
//	Cast(5, "abc")    // 5, plus a diagnostic on stdout
func Cast(current any, raw string) any {
	return defaultCaster.Cast(current, raw)
}

// CastTo is the typed form of Cast.
func CastTo[T any](current T, raw string) T {
	if v, ok := Cast(current, raw).(T); ok {
		return v
	}
	return current
}

// Parse converts raw to the dynamic type of current and reports failures
// as errors. Supported kinds are bool, integers, floats, strings and
// time.Duration, including named types based on them.
func Parse(current any, raw string) (any, error) {
	if current == nil {
		return nil, kiterrors.InputError(kiterrors.ModuleCastx, "parse", nil, "a non-nil reference value")
	}

	typ := reflect.TypeOf(current)
	out := reflect.New(typ).Elem()

	if typ == durationType {
		d, err := time.ParseDuration(strings.TrimSpace(raw))
		if err != nil {
			return nil, kiterrors.FormatError(kiterrors.ModuleCastx, "parse", raw, "duration", err)
		}
		return d, nil
	}

	switch typ.Kind() {
	case reflect.Bool:
		b, ok := ParseBool(raw)
		if !ok {
			return nil, kiterrors.FormatError(kiterrors.ModuleCastx, "parse", raw, "bool", nil)
		}
		out.SetBool(b)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		digits, ok := integerLiteral(raw)
		if !ok {
			return nil, kiterrors.FormatError(kiterrors.ModuleCastx, "parse", raw, typ.Kind().String(), nil)
		}
		n, err := strconv.ParseInt(digits, 10, typ.Bits())
		if err != nil {
			return nil, kiterrors.FormatError(kiterrors.ModuleCastx, "parse", raw, typ.Kind().String(), err)
		}
		out.SetInt(n)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		digits, ok := integerLiteral(raw)
		if !ok {
			return nil, kiterrors.FormatError(kiterrors.ModuleCastx, "parse", raw, typ.Kind().String(), nil)
		}
		n, err := strconv.ParseUint(strings.TrimPrefix(digits, "+"), 10, typ.Bits())
		if err != nil {
			return nil, kiterrors.FormatError(kiterrors.ModuleCastx, "parse", raw, typ.Kind().String(), err)
		}
		out.SetUint(n)

	case reflect.Float32, reflect.Float64:
		f, err := parseFloat(raw, typ.Bits())
		if err != nil {
			return nil, kiterrors.FormatError(kiterrors.ModuleCastx, "parse", raw, typ.Kind().String(), err)
		}
		out.SetFloat(f)

	case reflect.String:
		out.SetString(raw)

	default:
		return nil, kiterrors.InputError(kiterrors.ModuleCastx, "parse", fmt.Sprintf("%T", current),
			"bool, integer, float, string or duration")
	}

	return out.Interface(), nil
}

// ParseBool interprets raw with the permissive shell vocabulary.
// An integer literal is true when non-zero. Otherwise, case-insensitively,
// "on" or a leading 'y' or 't' is true and "off" or a leading 'n' or 'f'
// is false. ok is false for anything else, including the empty string.
func ParseBool(raw string) (value bool, ok bool) {
	if digits, isInt := integerLiteral(raw); isInt {
		return strings.Trim(digits, "+-0") != "", true
	}

	lower := strings.ToLower(raw)
	if lower == "" {
		return false, false
	}
	if lower == "on" || lower[0] == 'y' || lower[0] == 't' {
		return true, true
	}
	if lower == "off" || lower[0] == 'n' || lower[0] == 'f' {
		return false, true
	}
	return false, false
}

// integerLiteral validates a decimal integer with optional sign, surrounding
// whitespace and single underscores between digits. Digits of any script
// are accepted. It returns the literal in ASCII without whitespace and
// underscores.
func integerLiteral(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	sign := ""
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		sign, s = s[:1], s[1:]
	}
	digits, ok := normalizeDigits(s)
	if !ok || digits == "" {
		return "", false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return "", false
		}
	}
	return sign + digits, true
}

// normalizeDigits maps every decimal digit in s to ASCII and drops digit
// separators. A separator is a single underscore with a digit on both
// sides; any other underscore fails.
func normalizeDigits(s string) (string, bool) {
	var b strings.Builder
	b.Grow(len(s))

	prevDigit := false
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		if r == '_' {
			next, _ := utf8.DecodeRuneInString(s[i:])
			if _, nextDigit := stringx.DigitValue(next); !prevDigit || !nextDigit {
				return "", false
			}
			prevDigit = false
			continue
		}

		if c, ok := stringx.ASCIIDigit(r); ok {
			b.WriteByte(c)
			prevDigit = true
			continue
		}
		b.WriteRune(r)
		prevDigit = false
	}
	return b.String(), true
}

func parseFloat(raw string, bits int) (float64, error) {
	s, ok := normalizeDigits(strings.TrimSpace(raw))
	if !ok {
		return 0, fmt.Errorf("misplaced underscore in %q", raw)
	}
	lower := strings.ToLower(strings.TrimLeft(s, "+-"))
	if strings.HasPrefix(lower, "0x") {
		return 0, fmt.Errorf("hexadecimal float %q not accepted", raw)
	}
	return strconv.ParseFloat(s, bits)
}
