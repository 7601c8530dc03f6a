package lexicon

import (
	"strings"

	"github.com/az-ai-labs/g2p-en/stress"
)

// lookupRaw implements spec §4.7's lookup(word, tag, ctx) up to but not
// including the final stress application: probes gold then silver (tag
// dispatch via Entry.Resolve), falling back to the initialism route
// either when nothing resolved, or when an NNP-tagged resolution carries
// no primary stress of its own.
func (s *Store) lookupRaw(word, tag string, ctx Context) (phonemes string, rating int, ok bool) {
	runes := []rune(word)
	probe := word
	isNNP := false
	if isAllUpper(runes) {
		if _, gotGold := s.gold.get(word); !gotGold {
			probe = toLowerString(runes)
			isNNP = tag == "NNP"
		}
	}

	futureVowelUnknown := ctx.FutureVowel == FutureVowelUnknown

	var found bool
	if entry, hit := s.gold.get(probe); hit {
		if p, resolved := entry.Resolve(tag, futureVowelUnknown); resolved {
			phonemes, rating, found = p, 4, true
		}
	}
	if !found && !isNNP {
		if entry, hit := s.silver.get(probe); hit {
			if p, resolved := entry.Resolve(tag, futureVowelUnknown); resolved {
				phonemes, rating, found = p, 3, true
			}
		}
	}

	needsInitialism := !found || (isNNP && !stress.HasPrimary(phonemes))
	if needsInitialism {
		if p, r, iok := s.Initialism(word); iok {
			phonemes, rating, found = p, r, true
		}
	}

	if !found {
		return "", 0, false
	}
	return phonemes, rating, true
}

// lookup is lookupRaw plus the final stress application (spec §4.7).
func (s *Store) lookup(word, tag string, target float64, ctx Context) (string, int, bool) {
	phonemes, rating, ok := s.lookupRaw(word, tag, ctx)
	if !ok {
		return "", 0, false
	}
	return stress.Apply(phonemes, target), rating, true
}

// Initialism implements the get_nnp route (spec §4.6): spells a word out
// letter by letter using single-uppercase-letter gold entries, which are
// expected to carry no stress mark of their own (the mark is added here).
// Concatenating bare phonemes, applying stress target 0, then promoting
// the rightmost (and, after concatenating unstressed letters, only)
// secondary mark to primary places a single primary stress just before
// the first vowel of the whole spelled-out run. Rating 3. Fails if any
// letter is missing from gold.
func (s *Store) Initialism(word string) (string, int, bool) {
	var sb strings.Builder
	sawLetter := false
	for _, r := range word {
		if !isASCIILetter(r) {
			continue
		}
		sawLetter = true
		letter := strings.ToUpper(string(r))
		entry, ok := s.gold.get(letter)
		if !ok {
			return "", 0, false
		}
		p, ok := entry.Resolve("DEFAULT", false)
		if !ok {
			return "", 0, false
		}
		sb.WriteString(p)
	}
	if !sawLetter {
		return "", 0, false
	}
	combined := stress.Apply(sb.String(), 0)
	combined = stress.PromoteRightmostSecondary(combined)
	return combined, 3, true
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
