// File: ansi.go
// Title: ANSI Escape Sequence Handling
// Description: Removes ANSI escape codes (colors, cursor control) from text
//              so it can be measured, compared or written to plain files.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"
)

// ANSIEscapePattern matches an escape character followed by everything up
// to and including the next 'm'.
const ANSIEscapePattern = "\x1b[^m]*m"

var ansiEscapeRe = regexp.MustCompile(ANSIEscapePattern)

// StripANSI removes all ANSI escape codes from text.
// Text without an escape character is returned as is.
func StripANSI(text string) string {
	if !strings.Contains(text, "\x1b") {
		return text
	}
	return ansiEscapeRe.ReplaceAllString(text, "")
}

// ContainsANSI reports whether text contains at least one escape code.
func ContainsANSI(text string) bool {
	return strings.Contains(text, "\x1b") && ansiEscapeRe.MatchString(text)
}
