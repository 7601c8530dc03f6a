// Package morph implements English inflectional stemmers for the three
// suffix families the G2P engine handles without a dictionary entry:
// plural/third-singular -s, past tense -ed, and progressive -ing.
//
// Each stemmer strips a candidate suffix, asks the caller-supplied Lookup
// whether the resulting base is known, and — if so — appends a phonetic
// suffix computed from the base's own phonemes rather than from spelling.
// This package has no notion of a dictionary itself; Lookup is the seam
// that lets the lexicon package drive stemming without creating an import
// cycle between "words that stem" and "words that are looked up".
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - Only three suffix families are handled; derivational morphology
//     (un-, -ness, -ly, ...) is out of scope.
//   - The doubled-consonant/"ck" heuristic for -ing is the same closed
//     consonant set a dictionary-free English stemmer typically uses; it
//     does not special-case every irregular doubling (e.g. "traveling" vs
//     "travelling" GB/US spelling variance is left to the caller's dictionary).
package morph

import (
	"strings"

	"github.com/az-ai-labs/g2p-en/stress"
)

// Variant selects which pronunciation variant's phonetic suffix rules apply.
type Variant int

const (
	US Variant = iota
	GB
)

// Lookup resolves a candidate base word to phonemes, a lookup rating, and
// whether the base is known at all. Stemmers never invent a base that
// Lookup rejects.
type Lookup func(base string) (phonemes string, rating int, ok bool)

// Result is the outcome of a successful stem-and-append.
type Result struct {
	Phonemes string
	Rating   int
}

const doubledConsonants = "bcdgklmnprstvxz"

// StemS implements the -s plural/third-singular stemmer (spec §4.4).
func StemS(word string, v Variant, lookup Lookup) (Result, bool) {
	lw := strings.ToLower(word)
	if len(lw) < 3 || !strings.HasSuffix(lw, "s") {
		return Result{}, false
	}

	if !strings.HasSuffix(lw, "ss") {
		if r, ok := tryBase(lw[:len(lw)-1], v, lookup, appendSSuffix); ok {
			return r, true
		}
	}
	if strings.HasSuffix(lw, "'s") ||
		(strings.HasSuffix(lw, "es") && len(lw) > 4 && !strings.HasSuffix(lw, "ies")) {
		if r, ok := tryBase(lw[:len(lw)-2], v, lookup, appendSSuffix); ok {
			return r, true
		}
	}
	if strings.HasSuffix(lw, "ies") && len(lw) > 4 {
		base := lw[:len(lw)-3] + "y"
		if r, ok := tryBase(base, v, lookup, appendSSuffix); ok {
			return r, true
		}
	}
	return Result{}, false
}

// AppendS appends the plural/possessive -s phonetic suffix to phonemes
// (spec §4.4's append rule), the same rule the English possessive ("dog's")
// shares with the plural stemmer. Always succeeds.
func AppendS(phonemes string, v Variant) string {
	out, _ := appendSSuffix(phonemes, v)
	return out
}

func appendSSuffix(phonemes string, v Variant) (string, bool) {
	last := lastSound(phonemes)
	switch {
	case strings.ContainsRune("ptkfθ", last):
		return phonemes + "s", true
	case strings.ContainsRune("szʃʒʧʤ", last):
		if v == GB {
			return phonemes + "ɪz", true
		}
		return phonemes + "ᵻz", true
	default:
		return phonemes + "z", true
	}
}

// StemED implements the -ed past-tense stemmer (spec §4.4).
func StemED(word string, v Variant, lookup Lookup) (Result, bool) {
	lw := strings.ToLower(word)
	if len(lw) < 4 || !strings.HasSuffix(lw, "d") {
		return Result{}, false
	}

	if !strings.HasSuffix(lw, "dd") {
		if r, ok := tryBase(lw[:len(lw)-1], v, lookup, appendEDSuffix); ok {
			return r, true
		}
	}
	if strings.HasSuffix(lw, "ed") && !strings.HasSuffix(lw, "eed") && len(lw) > 4 {
		if r, ok := tryBase(lw[:len(lw)-2], v, lookup, appendEDSuffix); ok {
			return r, true
		}
	}
	return Result{}, false
}

func appendEDSuffix(phonemes string, v Variant) (string, bool) {
	last := lastSound(phonemes)
	switch {
	case strings.ContainsRune("pkfθʃsʧ", last):
		return phonemes + "t", true
	case last == 'd':
		if v == GB {
			return phonemes + "ɪd", true
		}
		return phonemes + "ᵻd", true
	case last != 't':
		return phonemes + "d", true
	}

	// last == 't'
	if v == GB || runeLen(phonemes) < 2 {
		return phonemes + "ɪd", true
	}
	if penult, ok := penultSound(phonemes); ok && stress.IsTapVowel(penult) {
		return trimLastRune(phonemes) + "ɾᵻd", true
	}
	return phonemes + "ᵻd", true
}

// StemING implements the -ing progressive stemmer (spec §4.4).
func StemING(word string, v Variant, lookup Lookup) (Result, bool) {
	lw := strings.ToLower(word)
	if len(lw) < 5 || !strings.HasSuffix(lw, "ing") {
		return Result{}, false
	}
	stem1 := lw[:len(lw)-3]

	if len(lw) > 5 {
		if r, ok := tryBase(stem1, v, lookup, appendINGSuffix); ok {
			return r, true
		}
	}
	if r, ok := tryBase(stem1+"e", v, lookup, appendINGSuffix); ok {
		return r, true
	}
	if len(stem1) >= 2 {
		last2 := stem1[len(stem1)-2:]
		doubled := last2[0] == last2[1] && strings.ContainsRune(doubledConsonants, rune(last2[0]))
		if doubled || last2 == "ck" {
			if r, ok := tryBase(stem1[:len(stem1)-1], v, lookup, appendINGSuffix); ok {
				return r, true
			}
		}
	}
	return Result{}, false
}

func appendINGSuffix(phonemes string, v Variant) (string, bool) {
	last := lastSound(phonemes)
	if v == GB && (last == 'ə' || last == 'ː') {
		return "", false
	}
	if v == US && last == 't' {
		if penult, ok := penultSound(phonemes); ok && stress.IsTapVowel(penult) {
			return trimLastRune(phonemes) + "ɾɪŋ", true
		}
	}
	return phonemes + "ɪŋ", true
}

// tryBase looks up base and, if known, applies append to its phonemes,
// propagating the base's own lookup rating (spec §4.4: "all stemmers
// propagate the lookup rating of the base"). append itself can reject
// (the GB -ing rule has no valid append for some bases), in which case
// tryBase reports failure even though the base was known.
func tryBase(base string, v Variant, lookup Lookup, appendSuffix func(string, Variant) (string, bool)) (Result, bool) {
	phonemes, rating, ok := lookup(base)
	if !ok {
		return Result{}, false
	}
	suffixed, ok := appendSuffix(phonemes, v)
	if !ok {
		return Result{}, false
	}
	return Result{Phonemes: suffixed, Rating: rating}, true
}

func lastSound(phonemes string) rune {
	stripped := stress.StripAll(phonemes)
	runes := []rune(stripped)
	if len(runes) == 0 {
		return 0
	}
	return runes[len(runes)-1]
}

func penultSound(phonemes string) (rune, bool) {
	stripped := stress.StripAll(phonemes)
	runes := []rune(stripped)
	if len(runes) < 2 {
		return 0, false
	}
	return runes[len(runes)-2], true
}

func runeLen(s string) int {
	return len([]rune(s))
}

func trimLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}
