// File: doc.go
// Title: Package Documentation for stringx
// Description: Package documentation for the cmdkit string helpers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-16 v0.3.0: Quote handling, ANSI stripping and case folding

// Package stringx provides the string helpers of a command-line shell
// framework.
//
// The functions are independent and stateless. They fall into four groups:
//
//   - Quote handling: IsQuoted, QuoteIfNeeded and StripQuotes work on the
//     outer pair of double or single quotes of an argument. Nothing inside
//     the argument is escaped or unescaped.
//   - Terminal output: StripANSI removes escape codes matching
//     ANSIEscapePattern, for example before measuring or logging output.
//   - Comparison keys: NormFold applies NFC normalization and full case
//     folding. The slicex package uses it for alphabetical and natural sort.
//   - General helpers: IsBlank, FirstNonBlank and Truncate.
//
// Example:
//
//	arg := stringx.QuoteIfNeeded("my file.txt") // "\"my file.txt\""
//	raw := stringx.StripQuotes(arg)             // "my file.txt"
//	plain := stringx.StripANSI("\x1b[31mred\x1b[0m")
package stringx
