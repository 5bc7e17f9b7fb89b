// File: sort.go
// Title: Alphabetical and Natural String Sorting
// Description: Caseless alphabetical sort and natural sort, where runs of
//              digits compare by numeric value ("a2" before "a11"). Both sorts
//              are stable and work on NormFold comparison keys.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Digit runs of any script compare by value

package slicex

import (
	"strings"
	"unicode/utf8"

	"github.com/msto63/cmdkit/foundation/utils/stringx"
)

// AlphabeticalSort returns a copy of list sorted caselessly.
// Input order is kept for strings with equal keys.
func AlphabeticalSort(list []string) []string {
	return SortedStableBy(list, stringx.NormFold, strings.Compare)
}

// SortAlphabetically sorts list in place; see AlphabeticalSort.
func SortAlphabetically(list []string) {
	SortStableBy(list, stringx.NormFold, strings.Compare)
}

// NaturalSort returns a copy of list sorted caselessly with embedded
// numbers compared by value.
//
//	NaturalSort([]string{"a1", "A11", "A2", "a22", "a3"})
//	// [a1 A2 a3 A11 a22]
func NaturalSort(list []string) []string {
	return SortedStableBy(list, NaturalKeys, CompareNaturalKeys)
}

// SortNaturally sorts list in place; see NaturalSort.
func SortNaturally(list []string) {
	SortStableBy(list, NaturalKeys, CompareNaturalKeys)
}

// KeyPart is one element of a NaturalKey: either a folded text run or a
// decimal number.
type KeyPart struct {
	// Text holds the NormFold of a non-digit run
	Text string

	// Digits holds a digit run in ASCII with leading zeros removed
	// ("0" for zero)
	Digits string

	Numeric bool
}

// String returns the part as it takes part in comparisons.
func (p KeyPart) String() string {
	if p.Numeric {
		return p.Digits
	}
	return p.Text
}

// NaturalKey is the comparison key of a string for natural sorting.
// Parts alternate text, number, text, ... and the key always starts and
// ends with a (possibly empty) text part, so keys of any two strings carry
// the same part type at the same index.
type NaturalKey []KeyPart

// NaturalKeys splits s on runs of decimal digits and builds its NaturalKey.
// Digits of any script count, so "a١٠" and "a10" share a key.
//
//	NaturalKeys("abc123def") // [abc 123 def]
func NaturalKeys(s string) NaturalKey {
	key := make(NaturalKey, 0, 3)

	start := 0
	var digits []byte
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if _, ok := stringx.DigitValue(r); !ok {
			i += size
			continue
		}

		j := i
		digits = digits[:0]
		for j < len(s) {
			r, size := utf8.DecodeRuneInString(s[j:])
			c, ok := stringx.ASCIIDigit(r)
			if !ok {
				break
			}
			digits = append(digits, c)
			j += size
		}
		key = append(key, textPart(s[start:i]), numberPart(string(digits)))
		start, i = j, j
	}
	return append(key, textPart(s[start:]))
}

// CompareNaturalKeys compares two keys part by part.
// A key that is a prefix of the other sorts first.
func CompareNaturalKeys(a, b NaturalKey) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareParts(a[i], b[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

func compareParts(a, b KeyPart) int {
	switch {
	case a.Numeric && b.Numeric:
		// Without leading zeros, longer means larger
		if len(a.Digits) != len(b.Digits) {
			if len(a.Digits) < len(b.Digits) {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Digits, b.Digits)
	case !a.Numeric && !b.Numeric:
		return strings.Compare(a.Text, b.Text)
	case a.Numeric:
		return -1
	default:
		return 1
	}
}

func textPart(s string) KeyPart {
	return KeyPart{Text: stringx.NormFold(s)}
}

func numberPart(digits string) KeyPart {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return KeyPart{Digits: trimmed, Numeric: true}
}
