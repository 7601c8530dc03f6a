package lexicon

import (
	"strings"

	"github.com/az-ai-labs/g2p-en/stress"
)

// symbolWords maps the fixed symbol table (spec §4.5) to the gold word
// whose pronunciation stands in for the symbol.
var symbolWords = map[string]string{
	"%": "percent",
	"&": "and",
	"+": "plus",
	"@": "at",
}

func isSymbol(word string) bool {
	_, ok := symbolWords[word]
	return ok
}

// specialCase implements the ordered pre-resolution override table (spec
// §4.5): each rule is tried in the order the spec lists them, and the
// first match wins. Rules that name a literal phoneme return it directly
// (rating 4, the confidence of a hand-specified override); rules that
// describe "phonemes for X" recurse into the ordinary lookup for word X
// and inherit its rating.
func (s *Store) specialCase(word, tag string, target float64, ctx Context) (string, int, bool) {
	lw := strings.ToLower(word)

	if tag == "ADD" && (word == "." || word == "/") {
		base := "dot"
		if word == "/" {
			base = "slash"
		}
		if ph, rating, ok := s.lookupRaw(base, "DEFAULT", ctx); ok {
			return stress.Apply(ph, -0.5), rating, true
		}
		return "", 0, false
	}

	if base, ok := symbolWords[word]; ok {
		return s.lookup(base, "DEFAULT", target, ctx)
	}

	if isDottedAcronym(word) {
		return s.Initialism(word)
	}

	if lw == "a" {
		if tag == "DT" {
			return "ɐ", 4, true
		}
		return "ˈA", 4, true
	}

	if lw == "am" {
		if strings.HasPrefix(tag, "NN") {
			return s.Initialism(word)
		}
		if ph, rating, ok := s.lookup("am", tag, target, ctx); ok {
			if ctx.FutureVowel == FutureVowelUnknown || target <= 0 {
				return "ɐm", rating, true
			}
			return ph, rating, true
		}
		return "ɐm", 4, true
	}

	if lw == "an" {
		if word == "AN" && strings.HasPrefix(tag, "NN") {
			return s.Initialism(word)
		}
		return "ɐn", 4, true
	}

	if word == "I" && tag == "PRP" {
		return "ˌI", 4, true
	}

	if lw == "by" && parentTag(tag) == "ADV" {
		return "bˈI", 4, true
	}

	if lw == "to" && (word != "TO" || tag == "TO" || tag == "IN") {
		if ctx.FutureVowel == FutureVowelUnknown {
			return s.lookup("to", tag, target, ctx)
		}
		if ctx.FutureVowel == FutureVowelTrue {
			return "tʊ", 4, true
		}
		return "tə", 4, true
	}

	if lw == "in" && (word != "IN" || tag != "NNP") {
		if tag == "IN" && ctx.FutureVowel == FutureVowelUnknown {
			return "ɪn", 4, true
		}
		return "ˈɪn", 4, true
	}

	if lw == "the" && (word != "THE" || tag == "DT") {
		if ctx.FutureVowel == FutureVowelTrue {
			return "ði", 4, true
		}
		return "ðə", 4, true
	}

	if tag == "IN" && (lw == "vs" || lw == "vs.") {
		return s.lookup("versus", "DEFAULT", target, ctx)
	}

	if lw == "used" {
		variant := "DEFAULT"
		if (tag == "VBD" || tag == "JJ") && ctx.FutureTo {
			variant = "VBD"
		}
		return s.lookup("used", variant, target, ctx)
	}

	return "", 0, false
}

// isDottedAcronym reports whether word is punctuated with internal dots
// where every inter-dot segment is shorter than 3 characters (spec §4.5),
// e.g. "U.S.A." or "N.Y.".
func isDottedAcronym(word string) bool {
	if !strings.Contains(strings.Trim(word, "."), ".") {
		return false
	}
	segments := strings.Split(word, ".")
	sawSegment := false
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		sawSegment = true
		if len([]rune(seg)) >= 3 {
			return false
		}
	}
	return sawSegment
}
