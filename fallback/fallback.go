// Package fallback defines the out-of-vocabulary phonemizer seam (spec
// §4.10): the last resort the pipeline reaches for once every dictionary,
// stemming, initialism, and diacritic-retry step has declined a word.
//
// The real rule-based phonemizer the spec describes is explicitly out of
// scope (spec §1 "not a general multilingual G2P"); this package specifies
// only the interface boundary and the symbol normalization its output must
// pass through, plus RuleFallback, a small deterministic stand-in that lets
// the rest of the engine be exercised end-to-end without a real external
// phonemizer process.
package fallback

import "strings"

// Fallback phonemizes a word the rest of the engine could not resolve.
// Implementations are free to be backed by a non-reentrant external
// process; the engine itself serializes calls to a single Fallback value,
// never assuming concurrent reentrancy (spec §5).
type Fallback interface {
	Phonemize(word string) (phonemes string, err error)
}

// Rating is the fixed confidence level a Fallback result carries (spec
// §4.10): lower than any dictionary or stemming resolution.
const Rating = 1

// Normalize applies the symbol normalization spec §4.10 requires of every
// Fallback's raw output before it enters the resolved phoneme stream:
// length-marked long vowels collapse to their stressed or unmarked IPA
// counterparts, remaining length markers and syllable separators are
// dropped, and duplicate adjacent stress marks are collapsed to one. The
// specific vowel mapping (which long vowels gain a primary stress mark
// and which just drop the length mark) is grounded on the original
// convert_espeak_to_misaki (fallback.rs): iː/uː become stressed ˈi/ˈu,
// while ɑː/ɔː/ɜː just lose their length mark.
func Normalize(raw string) string {
	s := raw
	for long, short := range longVowels {
		s = strings.ReplaceAll(s, long, short)
	}
	s = strings.ReplaceAll(s, "ː", "")
	s = strings.ReplaceAll(s, "_", "")
	s = collapseDuplicateStress(s)
	return s
}

// longVowels maps a length-marked long vowel to the IPA form the rest of
// this engine's dictionaries use, per fallback.rs's convert_espeak_to_misaki:
// the two high vowels pick up a primary stress mark along with losing
// their length mark, the other three just lose the length mark.
var longVowels = map[string]string{
	"iː": "ˈi",
	"uː": "ˈu",
	"ɜː": "ɜ",
	"ɔː": "ɔ",
	"ɑː": "ɑ",
}

func collapseDuplicateStress(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var prev rune
	for _, r := range s {
		if (r == 'ˈ' || r == 'ˌ') && r == prev {
			continue
		}
		b.WriteRune(r)
		prev = r
	}
	return b.String()
}
