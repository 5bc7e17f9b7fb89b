// File: stringx.go
// Title: Core String Utility Functions
// Description: General string helpers shared by the other cmdkit packages:
//              blank checks, default chains and Unicode-aware truncation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-16 v0.2.0: Reduced to the helpers the shell tooling depends on

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// Truncate truncates a string to maxLen runes, adding an ellipsis if truncated.
// If the ellipsis does not fit, the string is cut without it.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}

	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}
