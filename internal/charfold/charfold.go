// Package charfold normalizes the single-character diacritic and dash
// retry step of the pipeline (spec §4.9.c.vi): "normalize common diacritics
// (é→e, ñ→n, em/en-dash→space, etc.) and retry once."
//
// Diacritic stripping is delegated to golang.org/x/text/unicode/norm for
// full Unicode NFD decomposition (following the same pointer
// az-lang-nlp/internal/azcase leaves for callers who need more than its own
// six Azerbaijani-specific pairs); this package only adds the dash-to-space
// substitution the spec calls out by name, since general NFD decomposition
// has no opinion on punctuation.
package charfold

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Fold strips combining diacritical marks from r via NFD decomposition
// (é -> e, ñ -> n) and returns the base rune unchanged if r carries none.
// Multi-rune decompositions (rare outside combining-mark stripping) return
// only the first base rune, matching the spec's single-character retry.
func Fold(r rune) rune {
	decomposed := norm.NFD.String(string(r))
	for _, d := range decomposed {
		if !unicode.Is(unicode.Mn, d) {
			return d
		}
	}
	return r
}

// FoldDash replaces r with a space if it is one of the dash/ellipsis
// punctuation marks the spec names, and reports whether it did.
func FoldDash(r rune) (rune, bool) {
	switch r {
	case '—', '–', '…':
		return ' ', true
	default:
		return r, false
	}
}

// Retry applies the spec's single-character normalize-and-retry step: dash
// folding first (since a dash has no diacritic decomposition), then
// diacritic stripping. Returns the normalized rune and whether it differs
// from the input (a no-op retry is never worth re-resolving).
func Retry(r rune) (rune, bool) {
	if folded, ok := FoldDash(r); ok {
		return folded, true
	}
	stripped := Fold(r)
	return stripped, stripped != r
}
