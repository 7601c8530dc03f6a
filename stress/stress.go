// Package stress applies, removes, and re-places IPA stress marks on a
// phoneme string.
//
// A "stress target" is a small signed number that the lexicon facade and
// pipeline use as a compact protocol for "what should happen to the stress
// marks on this pronunciation": strip them, demote primary to secondary,
// promote secondary to primary, or insert a fresh mark and slide it to sit
// immediately before the vowel it governs. Keeping the protocol numeric
// (rather than a handful of booleans) lets callers express "capitalized
// word" (0.5), "all-uppercase word" (2.0), and "no opinion" (NaN, which
// fails every comparison in Apply and so leaves the marks unchanged)
// without a combinatorial explosion of call sites — see
// capitalizationStress in the root package for where those numbers come from.
//
// All functions are safe for concurrent use by multiple goroutines; there
// is no shared state.
package stress

import "sort"

// Primary and secondary stress marks, per IPA convention.
const (
	Primary   = 'ˈ'
	Secondary = 'ˌ'
)

// vowels is the fixed vowel inventory used for stress placement (spec §3).
// It intentionally does not match any single phoneme set exactly — it is
// the union of symbols that can carry a syllable nucleus across both the
// US and GB dictionaries this engine serves.
const vowels = "AIOQWYaiuæɑɒɔəɛɜɪʊʌᵻ"

// IsVowel reports whether r is a member of the stress-bearing vowel set.
func IsVowel(r rune) bool {
	for _, v := range vowels {
		if v == r {
			return true
		}
	}
	return false
}

// tapVowels is the narrower dialect-tap set (spec §3) that governs American
// flapping in the -ed/-ing stemmers: a 't' following one of these sounds
// becomes a flap [ɾ] instead of staying a stop. It is deliberately distinct
// from vowels — it also includes the rhotic approximant ɹ, since syllabic-r
// environments ("party", "starting") flap too, and it excludes a couple of
// the broader set's members that don't trigger flapping.
const tapVowels = "AIOWYiuæɑəɛɪɹʊʌ"

// IsTapVowel reports whether r is a member of the dialect-tap set.
func IsTapVowel(r rune) bool {
	for _, v := range tapVowels {
		if v == r {
			return true
		}
	}
	return false
}

// HasVowel reports whether ps contains at least one stress-bearing vowel.
func HasVowel(ps string) bool {
	for _, r := range ps {
		if IsVowel(r) {
			return true
		}
	}
	return false
}

func isMark(r rune) bool {
	return r == Primary || r == Secondary
}

// HasPrimary reports whether ps contains a primary stress mark.
func HasPrimary(ps string) bool {
	for _, r := range ps {
		if r == Primary {
			return true
		}
	}
	return false
}

// HasSecondary reports whether ps contains a secondary stress mark.
func HasSecondary(ps string) bool {
	for _, r := range ps {
		if r == Secondary {
			return true
		}
	}
	return false
}

// HasStress reports whether ps contains any stress mark.
func HasStress(ps string) bool {
	for _, r := range ps {
		if isMark(r) {
			return true
		}
	}
	return false
}

// StripAll removes every primary and secondary mark from ps.
func StripAll(ps string) string {
	return filterRunes(ps, func(r rune) bool { return !isMark(r) })
}

func stripSecondary(ps string) string {
	return filterRunes(ps, func(r rune) bool { return r != Secondary })
}

func filterRunes(s string, keep func(rune) bool) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if keep(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

// Apply rewrites the stress marks of ps according to the signed target s,
// following the table in spec §4.3. The conditions are checked in the
// order below; the first one that matches wins.
func Apply(ps string, s float64) string {
	switch {
	case s < -1:
		return StripAll(ps)

	case s == -1 || (s >= -0.5 && s <= 0 && HasPrimary(ps)):
		return demotePrimary(ps)

	case (s == 0 || s == 0.5 || s == 1) && !HasStress(ps):
		if !HasVowel(ps) {
			return ps
		}
		return replace(string(Secondary) + ps)

	case s >= 1 && !HasPrimary(ps) && HasSecondary(ps):
		return promoteSecondary(ps)

	case s > 1 && !HasStress(ps):
		if !HasVowel(ps) {
			return ps
		}
		return replace(string(Primary) + ps)

	default:
		return ps
	}
}

// demotePrimary strips any pre-existing secondary mark, then turns the
// (sole) primary mark into a secondary one, in place.
func demotePrimary(ps string) string {
	ps = stripSecondary(ps)
	out := []rune(ps)
	for i, r := range out {
		if r == Primary {
			out[i] = Secondary
			break
		}
	}
	return string(out)
}

// promoteSecondary turns the first secondary mark into a primary one.
func promoteSecondary(ps string) string {
	out := []rune(ps)
	for i, r := range out {
		if r == Secondary {
			out[i] = Primary
			break
		}
	}
	return string(out)
}

// PromoteRightmostSecondary turns the rightmost secondary mark in ps into
// a primary mark. Used by the initialism route (spec §4.6), which builds
// up a run of single-letter pronunciations and wants the last one to carry
// the primary stress.
func PromoteRightmostSecondary(ps string) string {
	out := []rune(ps)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == Secondary {
			out[i] = Primary
			break
		}
	}
	return string(out)
}

// replace re-places every stress mark in ps so that it immediately
// precedes the next stress-bearing vowel to its right (spec §4.3 "Re-place").
//
// Each mark is assigned a fractional sort key (its governing vowel's index
// minus 0.5) and a stable sort moves it there in one pass, which both
// guarantees a single linear-ish pass and makes repeated application a
// no-op (spec testable property: "Re-place is deterministic").
func replace(ps string) string {
	runes := []rune(ps)
	n := len(runes)
	keys := make([]float64, n)

	for i, r := range runes {
		if !isMark(r) {
			keys[i] = float64(i)
			continue
		}
		v := n // fallback: no vowel to the right, sorts to the very end
		for j := i + 1; j < n; j++ {
			if IsVowel(runes[j]) {
				v = j
				break
			}
		}
		keys[i] = float64(v) - 0.5
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return keys[idx[a]] < keys[idx[b]] })

	out := make([]rune, n)
	for i, j := range idx {
		out[i] = runes[j]
	}
	return string(out)
}
