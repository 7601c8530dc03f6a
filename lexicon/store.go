// Package lexicon is the dictionary-driven phoneme resolver: the gold and
// silver dictionary tiers (C1), the pre-resolution special-case table
// (C4), the initialism ("spell it out") route (spec §4.6), and the facade
// that ties them together with morphological stemming (spec §4.7).
//
// The package provides two API layers:
//
//   - Structured: Store.GetWord returns phonemes, a rating, and whether
//     resolution succeeded at all, mirroring the facade contract exactly.
//
//   - Convenience: Store.IsKnown answers the narrower "would GetWord even
//     try a dictionary lookup" question used by GetWord's direct-lookup
//     and possessive steps.
//
// All functions are safe for concurrent use by multiple goroutines; a
// Store is built once and never mutated.
//
// Known limitations (v1.0):
//
//   - Words with internal capitals ("iPhone"-style internal
//     capitalization) are detected heuristically, not from a proper-noun
//     database.
//   - The symbol table ({%, &, +, @}) is fixed in code, not data-driven.
package lexicon

import (
	"fmt"

	"github.com/az-ai-labs/g2p-en/morph"
)

// FutureVowel is the tri-state "does the next pronounced token begin with
// a vowel sound" flag (spec §3).
type FutureVowel int

const (
	FutureVowelUnknown FutureVowel = iota
	FutureVowelTrue
	FutureVowelFalse
)

// Context carries the right-to-left resolution state a token's lookup
// depends on (spec §3). Contexts are read-only during resolution of the
// token they belong to.
type Context struct {
	FutureVowel FutureVowel
	FutureTo    bool
}

// Store is the constructed, immutable lexicon: gold and silver
// dictionaries plus the pronunciation variant governing morphological
// suffix rules.
type Store struct {
	gold    *dict
	silver  *dict
	variant morph.Variant
}

// NewStore builds a Store from the gold and silver dictionary JSON blobs
// (spec §6). variant selects US or GB phonetic suffix rules for
// morphological stemming.
func NewStore(goldBlob, silverBlob []byte, variant morph.Variant) (*Store, error) {
	gold, err := newDict(goldBlob)
	if err != nil {
		return nil, fmt.Errorf("lexicon: gold tier: %w", err)
	}
	silver, err := newDict(silverBlob)
	if err != nil {
		return nil, fmt.Errorf("lexicon: silver tier: %w", err)
	}
	return &Store{gold: gold, silver: silver, variant: variant}, nil
}

// IsKnown implements spec §4.7's is_known(word): symbol table membership,
// gold/silver hit, single-character words, all-uppercase words with a
// lowercase gold entry, and words with an internal capital (iPhone-style)
// are all accepted. The symbol-table check runs first since the fixed
// symbols ({%, &, +, @}) would otherwise never pass the charset guard
// (they are not ASCII letters/apostrophe/hyphen); every other acceptance
// path requires the word to pass that guard, so tokens containing any
// other code point outside that set, or containing no letter at all, are
// rejected outright.
func (s *Store) IsKnown(word string) bool {
	if isSymbol(word) {
		return true
	}
	if !isLexiconCharset(word) {
		return false
	}
	if _, ok := s.gold.get(word); ok {
		return true
	}
	if _, ok := s.silver.get(word); ok {
		return true
	}
	runes := []rune(word)
	if len(runes) == 1 {
		return true
	}
	if isAllUpper(runes) {
		if _, ok := s.gold.get(toLowerString(runes)); ok {
			return true
		}
	}
	if hasInternalCapital(runes) {
		return true
	}
	return false
}
