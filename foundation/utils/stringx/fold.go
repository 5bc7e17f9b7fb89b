// File: fold.go
// Title: Unicode Normalization and Case Folding
// Description: Produces caseless comparison keys for sorting and matching.
//              Keys are meant for comparison only, never for display.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NormFold returns s in NFC normalization form with full Unicode case
// folding applied, so that "Straße", "STRASSE" and "strasse" share a key.
func NormFold(s string) string {
	// cases.Caser keeps state and is not safe for concurrent use
	return cases.Fold().String(norm.NFC.String(s))
}

// EqualFold reports whether a and b are equal under NormFold.
func EqualFold(a, b string) bool {
	return NormFold(a) == NormFold(b)
}
