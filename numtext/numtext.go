// Package numtext converts integers to English cardinal number words.
//
// The pipeline's number-expansion step (spec §4.8) uses this package two
// ways: ParseToken recognizes a token as numeric (stripping thousands
// commas, parsing the remainder as a signed integer), and Convert turns
// that integer into the English words the pipeline re-feeds through
// resolution ("123" -> "one hundred twenty-three").
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Magnitude range tops out at maxAbs, just under 10^15 (spec's "at
//     least 10^12" floor); larger magnitudes fall back to Convert
//     returning "".
//   - No ordinal, decimal, or reverse (text-to-number) conversion; the
//     spec's Number Expander is cardinal-integer-only.
package numtext

import (
	"strconv"
	"strings"
)

// Convert returns the English cardinal text for n, e.g. 123 -> "one hundred
// twenty-three", -5 -> "minus five". Zero returns "zero". Numbers with
// absolute value exceeding maxAbs return an empty string.
func Convert(n int64) string {
	return convert(n)
}

// ParseToken reports whether text is numeric per spec §4.8 ("stripping
// commas yields a parseable signed integer") and, if so, returns the parsed
// value. Commas are stripped unconditionally, including malformed
// placement; only the digits and an optional leading sign matter.
// strconv.ParseInt, like the original's parse::<i64>(), errors (rather than
// silently wrapping) on a digit run too long to fit an int64, so an
// oversized token is reported as not-numeric instead of landing on a wrong,
// wrapped-around value (spec §7d: such a token is passed through unchanged).
func ParseToken(text string) (int64, bool) {
	stripped := strings.ReplaceAll(text, ",", "")
	if stripped == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(stripped, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
