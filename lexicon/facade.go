package lexicon

import (
	"strings"

	"github.com/az-ai-labs/g2p-en/morph"
	"github.com/az-ai-labs/g2p-en/stress"
)

// GetWord implements the lexicon facade get_word(word, tag, stress, ctx)
// (spec §4.7): special cases, a case-fold retry, direct lookup, possessive
// handling, and morphological stemming, tried in that order. Returns
// ok=false only when every stage declines.
func (s *Store) GetWord(word, tag string, target float64, ctx Context) (string, int, bool) {
	if ph, rating, ok := s.specialCase(word, tag, target, ctx); ok {
		return ph, rating, ok
	}

	if s.shouldCaseFold(word, tag) {
		word = strings.ToLower(word)
	}

	if s.IsKnown(word) {
		if ph, rating, ok := s.lookup(word, tag, target, ctx); ok {
			return ph, rating, true
		}
	}

	if ph, rating, ok := s.resolvePossessive(word, tag, target, ctx); ok {
		return ph, rating, ok
	}

	if r, ok := morph.StemS(word, s.variant, s.rawLookupFor(tag, ctx)); ok {
		return stress.Apply(r.Phonemes, target), r.Rating, true
	}
	if r, ok := morph.StemED(word, s.variant, s.rawLookupFor(tag, ctx)); ok {
		return stress.Apply(r.Phonemes, target), r.Rating, true
	}
	if r, ok := morph.StemING(word, s.variant, s.rawLookupFor(tag, ctx)); ok {
		return stress.Apply(r.Phonemes, 0.5), r.Rating, true
	}

	return "", 0, false
}

// rawLookupFor adapts Store.lookupRaw into the morph.Lookup shape that
// the stemmers use to resolve a candidate base, holding tag and ctx fixed.
func (s *Store) rawLookupFor(tag string, ctx Context) morph.Lookup {
	return func(base string) (string, int, bool) {
		return s.lookupRaw(base, tag, ctx)
	}
}

// shouldCaseFold implements the case-fold decision (spec §4.7 step 2): the
// word must be all-letters (apostrophes allowed), differ from its
// lowercase, not be a short NNP, have no dictionary entry under its
// original case, and have a lowercase form that is either in the
// dictionary or stems successfully.
func (s *Store) shouldCaseFold(word, tag string) bool {
	if !isAllLettersOrApostrophe(word) {
		return false
	}
	lw := strings.ToLower(word)
	if lw == word {
		return false
	}
	if tag == "NNP" && len([]rune(word)) <= 7 {
		return false
	}
	if _, ok := s.gold.get(word); ok {
		return false
	}
	if _, ok := s.silver.get(word); ok {
		return false
	}
	if _, ok := s.gold.get(lw); ok {
		return true
	}
	if _, ok := s.silver.get(lw); ok {
		return true
	}
	return s.canStem(lw)
}

func (s *Store) canStem(word string) bool {
	noopCtx := Context{}
	lookup := s.rawLookupFor("DEFAULT", noopCtx)
	if _, ok := morph.StemS(word, s.variant, lookup); ok {
		return true
	}
	if _, ok := morph.StemED(word, s.variant, lookup); ok {
		return true
	}
	if _, ok := morph.StemING(word, s.variant, lookup); ok {
		return true
	}
	return false
}

func isAllLettersOrApostrophe(word string) bool {
	sawLetter := false
	for _, r := range word {
		switch {
		case isASCIILetter(r):
			sawLetter = true
		case r == '\'' || r == '’':
			// allowed, doesn't count as a letter
		default:
			return false
		}
	}
	return sawLetter
}

// resolvePossessive implements spec §4.7 step 4: a trailing "s'" strips
// both the apostrophe and the "s" to recover the singular base ("dogs'"
// -> "dog"), then appends the plural/possessive phonetic suffix to that
// base's own phonemes (the English possessive shares its sound rule with
// the plural). Any trailing apostrophe whose "s'" reading did not resolve
// (including one with no preceding "s") just uses the word minus its
// apostrophes unchanged ("James'" is pronounced the same as "James").
func (s *Store) resolvePossessive(word, tag string, target float64, ctx Context) (string, int, bool) {
	runes := []rune(word)
	n := len(runes)
	if n == 0 {
		return "", 0, false
	}

	if n >= 2 && isApostropheRune(runes[n-1]) && runes[n-2] == 's' {
		stem := string(runes[:n-2])
		if s.IsKnown(stem) {
			if ph, rating, ok := s.lookupRaw(stem, tag, ctx); ok {
				return stress.Apply(morph.AppendS(ph, s.variant), target), rating, true
			}
		}
	}
	if isApostropheRune(runes[n-1]) {
		stem := trimTrailingApostrophes(word)
		if s.IsKnown(stem) {
			if ph, rating, ok := s.lookupRaw(stem, tag, ctx); ok {
				return stress.Apply(ph, target), rating, true
			}
		}
		return "", 0, false
	}
	return "", 0, false
}

func isApostropheRune(r rune) bool {
	return r == '\'' || r == '’'
}

func trimTrailingApostrophes(word string) string {
	runes := []rune(word)
	i := len(runes)
	for i > 0 && (runes[i-1] == '\'' || runes[i-1] == '’') {
		i--
	}
	return string(runes[:i])
}
