package fallback

import "strings"

// RuleFallback is a minimal letter-to-phoneme table, not a production
// phonemizer. It exists so the rest of the engine's end-to-end behavior is
// exercisable without wiring up a real external rule-based phonemizer
// process (spec §1 places that out of scope). Runes with no mapping are
// dropped from the output.
type RuleFallback struct{}

// letterPhonemes is a rough, single-letter-to-IPA approximation. It makes
// no attempt at digraphs, silent letters, or context — good enough to
// produce *something* for a word no dictionary, stemmer, or initialism
// route resolved.
var letterPhonemes = map[rune]string{
	'a': "æ", 'b': "b", 'c': "k", 'd': "d", 'e': "ɛ", 'f': "f", 'g': "ɡ",
	'h': "h", 'i': "ɪ", 'j': "ʤ", 'k': "k", 'l': "l", 'm': "m", 'n': "n",
	'o': "ɑ", 'p': "p", 'q': "k", 'r': "r", 's': "s", 't': "t", 'u': "ʌ",
	'v': "v", 'w': "w", 'x': "ks", 'y': "j", 'z': "z",
}

// Phonemize implements Fallback by mapping each letter of word through
// letterPhonemes, lowercased, skipping any rune with no mapping.
func (RuleFallback) Phonemize(word string) (string, error) {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if ph, ok := letterPhonemes[r]; ok {
			b.WriteString(ph)
		}
	}
	return b.String(), nil
}
