// File: quote.go
// Title: Quote Detection and Handling
// Description: Detects, adds and strips the outer quotes of command-line
//              arguments. Only double and single quotes are recognized and
//              no escaping is performed.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"strings"
)

// Quotes lists the characters recognized as argument quotes.
var Quotes = []byte{'"', '\''}

func isQuoteChar(c byte) bool {
	for _, q := range Quotes {
		if c == q {
			return true
		}
	}
	return false
}

// IsQuoted reports whether arg is wrapped in a matching pair of quotes.
// A string of length one or less is never quoted.
func IsQuoted(arg string) bool {
	return len(arg) > 1 && arg[0] == arg[len(arg)-1] && isQuoteChar(arg[0])
}

// QuoteIfNeeded quotes arg if it contains a space and is not already quoted.
// Double quotes are used unless arg contains one, in which case single
// quotes are used instead.
func QuoteIfNeeded(arg string) string {
	if IsQuoted(arg) || !strings.Contains(arg, " ") {
		return arg
	}

	quote := `"`
	if strings.Contains(arg, `"`) {
		quote = "'"
	}
	return quote + arg + quote
}

// StripQuotes removes one matching pair of outer quotes from arg, if present.
func StripQuotes(arg string) string {
	if IsQuoted(arg) {
		return arg[1 : len(arg)-1]
	}
	return arg
}
