// Package tagger implements an averaged-perceptron part-of-speech tagger.
//
// The tagger is purely a function of three tables supplied at construction
// time (spec §6): a feature→class→weight map (the trained perceptron
// weights, already averaged), an ordered list of classes (tags), and an
// explicit word→tag override table for cases the corpus-trained model
// gets wrong often enough to special-case (numbers-as-determiners,
// frequent proper nouns, and the like).
//
// All functions are safe for concurrent use by multiple goroutines; the
// tagger holds no mutable state after construction.
//
// Known limitations (v1.0):
//
//   - There is no beam search or Viterbi decoding — each token's tag is
//     picked greedily from the previous two (already-decided) tags, exactly
//     as the reference averaged-perceptron tagger this design follows.
//   - The override table is matched verbatim against the surface token;
//     it does not fold case or try stemmed forms.
package tagger

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Start-of-sequence and end-of-sequence sentinels used to pad context so
// that every real token has two tokens of lookback and lookahead.
const (
	start1 = "-START-"
	start2 = "-START2-"
	end1   = "-END-"
	end2   = "-END2-"
)

// Tagger predicts one part-of-speech tag per token using an averaged
// perceptron plus an override table.
type Tagger struct {
	weights   map[string]map[string]float64
	classes   []string
	overrides map[string]string
}

// New builds a Tagger from its three wire formats (spec §6):
//
//   - weightsJSON: JSON object mapping feature string to a class→weight map.
//   - classesText: newline-separated ordered list of tag classes.
//   - overridesJSON: JSON object mapping a verbatim surface word to a tag.
//
// Returns an error if any blob is malformed — this is the one place the
// engine can fail fatally (spec §7b): a corrupt tagger cannot be used at all.
func New(weightsJSON, classesText, overridesJSON []byte) (*Tagger, error) {
	var weights map[string]map[string]float64
	if err := json.Unmarshal(weightsJSON, &weights); err != nil {
		return nil, fmt.Errorf("tagger: parsing weights: %w", err)
	}

	var classes []string
	for _, line := range strings.Split(string(classesText), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			classes = append(classes, line)
		}
	}
	if len(classes) == 0 {
		return nil, fmt.Errorf("tagger: empty class list")
	}

	var overrides map[string]string
	if len(overridesJSON) > 0 {
		if err := json.Unmarshal(overridesJSON, &overrides); err != nil {
			return nil, fmt.Errorf("tagger: parsing overrides: %w", err)
		}
	}

	return &Tagger{weights: weights, classes: classes, overrides: overrides}, nil
}

// TagAll predicts one tag per word in words, in order, feeding each
// prediction's tag forward as context for the next (spec §4.2).
func (t *Tagger) TagAll(words []string) []string {
	if len(words) == 0 {
		return nil
	}

	ctx := padContext(words)
	tags := make([]string, len(words))

	prev, prev2 := start1, start2
	for i, w := range words {
		var tag string
		if override, ok := t.overrides[w]; ok {
			tag = override
		} else {
			tag = t.predict(ctx, i, prev, prev2)
		}
		tags[i] = tag
		prev2 = prev
		prev = tag
	}

	return tags
}

// padContext builds the normalized, padded context array that features
// are read from: [-START-, -START2-, w0, ..., wn-1, -END-, -END2-].
func padContext(words []string) []string {
	ctx := make([]string, 0, len(words)+4)
	ctx = append(ctx, start1, start2)
	for _, w := range words {
		ctx = append(ctx, normalize(w))
	}
	ctx = append(ctx, end1, end2)
	return ctx
}

// normalize rewrites a word for the perceptron's word-identity features
// (spec §4.2): four-digit runs become the shared !YEAR class, other
// digit-leading tokens become !DIGITS, internally hyphenated tokens become
// !HYPHEN, and everything else passes through unchanged.
func normalize(w string) string {
	if isYear(w) {
		return "!YEAR"
	}
	if isDigitLeading(w) {
		return "!DIGITS"
	}
	if hasInternalHyphen(w) {
		return "!HYPHEN"
	}
	return w
}

func isYear(w string) bool {
	if len(w) != 4 {
		return false
	}
	for _, r := range w {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func isDigitLeading(w string) bool {
	if w == "" {
		return false
	}
	return w[0] >= '0' && w[0] <= '9'
}

func hasInternalHyphen(w string) bool {
	i := strings.IndexByte(w, '-')
	return i > 0 && i < len(w)-1
}

func suffix3(w string) string {
	runes := []rune(w)
	if len(runes) <= 3 {
		return w
	}
	return string(runes[len(runes)-3:])
}

func prefix1(w string) string {
	runes := []rune(w)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[0])
}

// predict scores every class for the token at original index i (ctx index
// i+2) using the feature set from spec §4.2, and returns the class with
// the maximum score, ties broken by class-list order.
func (t *Tagger) predict(ctx []string, i int, prev, prev2 string) string {
	w := ctx[i+2]
	features := []string{
		"bias",
		"i suffix " + suffix3(w),
		"i pref1 " + prefix1(w),
		"i-1 tag " + prev,
		"i-2 tag " + prev2,
		"i tag+i-2 tag " + prev + " " + prev2,
		"i word " + w,
		"i-1 tag+i word " + prev + " " + w,
		"i-1 word " + ctx[i+1],
		"i-2 word " + ctx[i],
		"i+1 word " + ctx[i+3],
		"i+2 word " + ctx[i+4],
		"i+1 suffix " + suffix3(ctx[i+3]),
		"i-1 suffix " + suffix3(ctx[i+1]),
	}

	scores := make(map[string]float64, len(t.classes))
	for _, f := range features {
		classWeights, ok := t.weights[f]
		if !ok {
			continue
		}
		for class, weight := range classWeights {
			scores[class] += weight
		}
	}

	best := t.classes[0]
	bestScore := scores[best]
	for _, class := range t.classes[1:] {
		if s := scores[class]; s > bestScore {
			best, bestScore = class, s
		}
	}
	return best
}
