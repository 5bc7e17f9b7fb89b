// File: digits.go
// Title: Unicode Decimal Digits
// Description: Maps decimal digits of any script (Unicode category Nd) to
//              their values so numeric parsing and sorting accept them.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"unicode"
	"unicode/utf8"
)

// DigitValue returns the value of the decimal digit r, for any script:
// '7', '٧' (Arabic-Indic) and '７' (fullwidth) all yield 7.
func DigitValue(r rune) (int, bool) {
	if r >= '0' && r <= '9' {
		return int(r - '0'), true
	}
	if r < utf8.RuneSelf || !unicode.Is(unicode.Nd, r) {
		return 0, false
	}

	// Nd is made of contiguous zero-to-nine blocks, so every table
	// range starts at a zero
	for _, rg := range unicode.Nd.R16 {
		if uint32(r) >= uint32(rg.Lo) && uint32(r) <= uint32(rg.Hi) {
			return int((uint32(r) - uint32(rg.Lo)) / uint32(rg.Stride) % 10), true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if uint32(r) >= rg.Lo && uint32(r) <= rg.Hi {
			return int((uint32(r) - rg.Lo) / rg.Stride % 10), true
		}
	}
	return 0, false
}

// ASCIIDigit returns the ASCII form of the decimal digit r.
func ASCIIDigit(r rune) (byte, bool) {
	value, ok := DigitValue(r)
	if !ok {
		return 0, false
	}
	return byte('0' + value), true
}
