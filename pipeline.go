package g2p

import (
	"math"
	"strings"
	"unicode"

	"github.com/az-ai-labs/g2p-en/fallback"
	"github.com/az-ai-labs/g2p-en/internal/charfold"
	"github.com/az-ai-labs/g2p-en/lexicon"
	"github.com/az-ai-labs/g2p-en/numtext"
	"github.com/az-ai-labs/g2p-en/stress"
	"github.com/az-ai-labs/g2p-en/tokenizer"
)

// maxRecursionDepth bounds the recursive hyphen/numeric/character-split
// resolution chain (spec §4.9.c.ii/iii/v). Nothing in the grammar this
// engine resolves nests anywhere near this deep; the cap exists only so a
// pathological input (a token built entirely of punctuation that keeps
// round-tripping through the single-character retry) can't recurse
// unboundedly.
const maxRecursionDepth = 16

// G2P implements the two-pass pipeline (spec §4.9): tokenize, tag every
// token, seed right-to-left context from surface orthography, then
// resolve tokens from last to first so that each token's resolution sees
// the already-resolved phonemes of its right neighbor. Never errors or
// panics (spec §7): every token that nothing else can resolve degrades to
// Unknown.
func (e *Engine) G2P(text string) (string, []Token) {
	tz := tokenizer.Tokenize(text)
	n := len(tz)
	if n == 0 {
		return "", nil
	}

	words := make([]string, n)
	for i, t := range tz {
		words[i] = t.Text
	}
	tags := e.tagger.TagAll(words)

	tokens := make([]Token, n)
	ctx := make([]lexicon.Context, n)
	for i, t := range tz {
		tokens[i] = Token{Text: t.Text, Tag: tags[i], Whitespace: t.Whitespace}
	}

	seedContext(tz, ctx)

	for i := n - 1; i >= 0; i-- {
		target := capitalizationStress(tokens[i].Text)
		phonemes, rating := e.resolveWord(tokens[i].Text, tokens[i].Tag, target, ctx[i], 0)

		phCopy := phonemes
		tokens[i].Phonemes = &phCopy
		ratingCopy := rating
		tokens[i].Aux.Rating = &ratingCopy
		tokens[i].Aux.IsHead = true
		if !math.IsNaN(target) {
			targetCopy := target
			tokens[i].Aux.Stress = &targetCopy
		}

		if i > 0 {
			updatePriorContext(&ctx[i-1], phonemes)
		}
	}

	var out strings.Builder
	for _, t := range tokens {
		out.WriteString(*t.Phonemes)
		out.WriteString(t.Whitespace)
	}
	return out.String(), tokens
}

// seedContext implements spec §4.9 step 4b's orthographic half of context
// construction, as a single forward prepass rather than interleaved with
// the backward resolution loop (see DESIGN.md's Open Question #3): for
// every token but the last, future_vowel is seeded from the first
// alphabetic character of the *next* token's surface text, and future_to
// is set when the next token's lowercase form is literally "to". The
// backward loop below later overwrites ctx[i-1].FutureVowel with the
// resolved token's actual phonemic class once it is known; this seed is
// only read for a token whose right neighbor's phonemes gave no
// classifiable leading character (the last token has no seed, and is
// left at FutureVowelUnknown).
func seedContext(tz []tokenizer.Token, ctx []lexicon.Context) {
	n := len(tz)
	for i := 0; i < n-1; i++ {
		next := tz[i+1].Text
		ctx[i].FutureVowel = orthographicFutureVowel(next)
		ctx[i].FutureTo = strings.EqualFold(next, "to")
	}
}

// orthographicFutureVowel implements spec §4.9.b's heuristic: scan next
// for its first alphabetic character and classify it against the fixed
// orthographic vowel set a/e/i/o/u. Non-letter runes (punctuation,
// digits) are skipped; if next carries no letter at all, the result is
// unknown.
func orthographicFutureVowel(next string) lexicon.FutureVowel {
	for _, r := range next {
		if !unicode.IsLetter(r) {
			continue
		}
		switch unicode.ToLower(r) {
		case 'a', 'e', 'i', 'o', 'u':
			return lexicon.FutureVowelTrue
		default:
			return lexicon.FutureVowelFalse
		}
	}
	return lexicon.FutureVowelUnknown
}

// updatePriorContext implements spec §4.9 step d: once token i has
// resolved phonemes, ctx[i-1].FutureVowel is overridden by the *phonemic*
// class of the first classifiable character of those phonemes (skipping
// any leading stress mark), when that class is determinable. An
// unclassifiable leading character (space, Unknown, a digit that slipped
// through) leaves the orthographic seed from seedContext in place.
func updatePriorContext(c *lexicon.Context, phonemes string) {
	for _, r := range phonemes {
		if r == stress.Primary || r == stress.Secondary {
			continue
		}
		switch {
		case stress.IsVowel(r):
			c.FutureVowel = lexicon.FutureVowelTrue
		case unicode.IsLetter(r):
			c.FutureVowel = lexicon.FutureVowelFalse
		}
		return
	}
}

// capitalizationStress implements spec §4.9.a: unknown (represented as
// NaN, a value stress.Apply's target comparisons all treat as "no
// opinion" since every comparison with NaN is false) if word equals its
// own lowercase form, 2.0 if word is all-uppercase, else 0.5.
func capitalizationStress(word string) float64 {
	lw := strings.ToLower(word)
	if lw == word {
		return math.NaN()
	}
	if isAllUpperWord(word) {
		return 2.0
	}
	return 0.5
}

func isAllUpperWord(word string) bool {
	sawLetter := false
	for _, r := range word {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			sawLetter = true
		}
	}
	return sawLetter
}

// resolveWord implements spec §4.9.c in full: the lexicon facade first
// (which already performs §4.7's own stemming fallback — there is no
// separate "apply language rules" step to run again afterwards, since
// Store.GetWord's stemming chain *is* that step), then hyphen-split,
// number-expansion, and character-split recursion, then the
// single-character diacritic/dash retry, then ordinary ASCII punctuation,
// and finally the OOV Fallback. This function always returns a result —
// it is the one place spec §7's "never raises, degrades to the unknown
// sentinel" guarantee is actually implemented.
func (e *Engine) resolveWord(word, tag string, target float64, ctx lexicon.Context, depth int) (string, int) {
	if ph, rating, ok := e.store.GetWord(word, tag, target, ctx); ok {
		return ph, rating
	}

	if depth < maxRecursionDepth {
		if parts, ok := splitHyphen(word); ok {
			return e.resolveJoined(parts, tag, target, ctx, depth)
		}

		if n, ok := numtext.ParseToken(word); ok {
			if expanded := numtext.Convert(n); expanded != "" {
				return e.resolveJoined(strings.Fields(expanded), tag, target, ctx, depth)
			}
			// Overflow (spec §7d): the word is passed through unchanged,
			// i.e. resolution keeps falling through the remaining steps
			// below instead of treating it specially.
		}

		if runeLen(word) > 1 {
			return e.resolveJoined(splitRunes(word), tag, target, ctx, depth)
		}
	}

	if runeLen(word) == 1 {
		r := []rune(word)[0]
		if folded, changed := charfold.Retry(r); changed {
			if folded == ' ' {
				return " ", 0
			}
			foldedWord := string(folded)
			if foldedWord != word {
				if ph, rating := e.resolveWord(foldedWord, tag, target, ctx, depth+1); rating > 0 {
					return ph, rating
				}
			}
		}
		if isASCIIPunct(r) {
			return " ", 0
		}
	}

	if ph, rating, ok := e.tryFallback(word); ok {
		return ph, rating
	}
	return Unknown, 0
}

// resolveJoined recursively resolves each of parts (already split on
// hyphen, expanded-number whitespace, or individual characters) and joins
// the results with spaces, propagating the lowest rating among the parts
// (a joined result is only as confident as its weakest part).
func (e *Engine) resolveJoined(parts []string, tag string, target float64, ctx lexicon.Context, depth int) (string, int) {
	var out strings.Builder
	minRating := 4
	wrote := false
	for _, p := range parts {
		if p == "" {
			continue
		}
		ph, rating := e.resolveWord(p, tag, target, ctx, depth+1)
		if wrote {
			out.WriteByte(' ')
		}
		out.WriteString(ph)
		wrote = true
		if rating < minRating {
			minRating = rating
		}
	}
	if !wrote {
		return Unknown, 0
	}
	return out.String(), minRating
}

// tryFallback invokes the OOV Fallback under the process-wide lock spec
// §5 requires for a non-reentrant implementation, normalizing its output
// per spec §4.10. A Fallback error is a per-token failure recovered by
// the caller falling to the Unknown sentinel (spec §7c).
func (e *Engine) tryFallback(word string) (string, int, bool) {
	e.fallbackMu.Lock()
	raw, err := e.fallback.Phonemize(word)
	e.fallbackMu.Unlock()
	if err != nil {
		return "", 0, false
	}
	return fallback.Normalize(raw), fallback.Rating, true
}

// splitHyphen reports whether word contains an internal hyphen and, if
// so, its hyphen-separated parts (spec §4.9.c.ii "if hyphenated and
// length > 1").
func splitHyphen(word string) ([]string, bool) {
	if runeLen(word) <= 1 || !strings.Contains(word, "-") {
		return nil, false
	}
	return strings.Split(word, "-"), true
}

func splitRunes(word string) []string {
	runes := []rune(word)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return parts
}

func runeLen(s string) int {
	return len([]rune(s))
}

// isASCIIPunct reports whether r is ordinary ASCII punctuation or symbol
// punctuation (spec §4.9.c.vi "emit a single space for ASCII
// punctuation"). Dash/ellipsis punctuation is handled earlier, by
// charfold.Retry's dash-to-space folding, so it never reaches here.
func isASCIIPunct(r rune) bool {
	return r < 128 && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}
