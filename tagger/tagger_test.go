package tagger

import (
	"encoding/json"
	"testing"
)

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestNewRejectsBadWeights(t *testing.T) {
	if _, err := New([]byte("not json"), []byte("NN\n"), nil); err == nil {
		t.Error("New with malformed weights = nil error, want error")
	}
}

func TestNewRejectsEmptyClasses(t *testing.T) {
	if _, err := New([]byte("{}"), []byte("  \n \n"), nil); err == nil {
		t.Error("New with empty class list = nil error, want error")
	}
}

func TestNewRejectsBadOverrides(t *testing.T) {
	if _, err := New([]byte("{}"), []byte("NN\n"), []byte("not json")); err == nil {
		t.Error("New with malformed overrides = nil error, want error")
	}
}

func TestTagAllEmpty(t *testing.T) {
	tg, err := New([]byte("{}"), []byte("NN\n"), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := tg.TagAll(nil); got != nil {
		t.Errorf("TagAll(nil) = %v, want nil", got)
	}
}

func TestTagAllPicksHighestScoringClass(t *testing.T) {
	weights := map[string]map[string]float64{
		"bias":         {"NN": 0.1, "VB": 0.1},
		"i word cat":   {"NN": 5.0, "VB": -1.0},
		"i suffix cat": {"NN": 2.0},
	}
	tg, err := New(mustJSON(t, weights), []byte("NN\nVB\n"), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := tg.TagAll([]string{"cat"})
	want := []string{"NN"}
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("TagAll = %v, want %v", got, want)
	}
}

func TestTagAllTiesBreakByClassOrder(t *testing.T) {
	// Neither class has any matching feature weights, so every score is 0.
	tg, err := New([]byte("{}"), []byte("VB\nNN\n"), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := tg.TagAll([]string{"whatever"})
	if got[0] != "VB" {
		t.Errorf("TagAll tie = %q, want %q (first class in list)", got[0], "VB")
	}
}

func TestTagAllUsesOverrideVerbatim(t *testing.T) {
	weights := map[string]map[string]float64{
		"i word the": {"DT": 10.0},
	}
	overrides := map[string]string{"the": "FORCED"}
	tg, err := New(mustJSON(t, weights), []byte("DT\nFORCED\n"), mustJSON(t, overrides))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := tg.TagAll([]string{"the"})
	if got[0] != "FORCED" {
		t.Errorf("TagAll override = %q, want %q", got[0], "FORCED")
	}
}

func TestTagAllFeedsTagForward(t *testing.T) {
	// The second token's prediction depends on the first token's tag via
	// the "i-1 tag" feature.
	weights := map[string]map[string]float64{
		"i-1 tag NN": {"VB": 9.0},
		"i-1 tag DT": {"NN": 9.0},
	}
	tg, err := New(mustJSON(t, weights), []byte("NN\nVB\nDT\n"), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// First token has i-1 tag = -START-, matches nothing, ties at 0 -> NN
	// (first in class list). Second token then sees i-1 tag NN -> VB.
	got := tg.TagAll([]string{"a", "b"})
	want := []string{"NN", "VB"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TagAll()[%d] = %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestNormalizeYear(t *testing.T) {
	if got := normalize("1999"); got != "!YEAR" {
		t.Errorf("normalize(1999) = %q, want !YEAR", got)
	}
}

func TestNormalizeDigitsLeading(t *testing.T) {
	if got := normalize("3rd"); got != "!DIGITS" {
		t.Errorf("normalize(3rd) = %q, want !DIGITS", got)
	}
}

func TestNormalizeInternalHyphen(t *testing.T) {
	if got := normalize("state-of-the-art"); got != "!HYPHEN" {
		t.Errorf("normalize(state-of-the-art) = %q, want !HYPHEN", got)
	}
}

func TestNormalizeLeadingHyphenNotInternal(t *testing.T) {
	// A leading hyphen (negative number surface, e.g. "-5") is not an
	// "internal" hyphen and is not digit-leading either, so it passes
	// through unchanged.
	if got := normalize("-5"); got != "-5" {
		t.Errorf("normalize(-5) = %q, want unchanged", got)
	}
}

func TestNormalizePassesThroughOrdinaryWord(t *testing.T) {
	if got := normalize("hello"); got != "hello" {
		t.Errorf("normalize(hello) = %q, want unchanged", got)
	}
}

func TestSuffix3ShortWord(t *testing.T) {
	if got := suffix3("it"); got != "it" {
		t.Errorf("suffix3(it) = %q, want it", got)
	}
}

func TestSuffix3LongWord(t *testing.T) {
	if got := suffix3("running"); got != "ing" {
		t.Errorf("suffix3(running) = %q, want ing", got)
	}
}

func TestPrefix1(t *testing.T) {
	if got := prefix1("Cat"); got != "C" {
		t.Errorf("prefix1(Cat) = %q, want C", got)
	}
}

func TestPrefix1Empty(t *testing.T) {
	if got := prefix1(""); got != "" {
		t.Errorf("prefix1(\"\") = %q, want empty", got)
	}
}
