package lexicon

import (
	"encoding/json"
	"testing"
)

func ptr(s string) *string { return &s }

func TestEntryUnmarshalSimple(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`"kˈæt"`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	ph, ok := e.Resolve("NN", false)
	if !ok || ph != "kˈæt" {
		t.Errorf("Resolve = (%q, %v), want (kˈæt, true)", ph, ok)
	}
}

func TestEntryUnmarshalTagged(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"VBD": "rˈɛd", "DEFAULT": "rˈid"}`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if ph, ok := e.Resolve("VBD", false); !ok || ph != "rˈɛd" {
		t.Errorf("Resolve(VBD) = (%q, %v), want (rˈɛd, true)", ph, ok)
	}
	if ph, ok := e.Resolve("NN", false); !ok || ph != "rˈid" {
		t.Errorf("Resolve(NN) = (%q, %v), want (rˈid, true) via DEFAULT", ph, ok)
	}
}

func TestEntryResolveParentTag(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"VERB": "rˈʌn"}`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if ph, ok := e.Resolve("VBZ", false); !ok || ph != "rˈʌn" {
		t.Errorf("Resolve(VBZ) = (%q, %v), want (rˈʌn, true) via VERB parent", ph, ok)
	}
}

func TestEntryResolveExplicitNilFallsThroughToDefault(t *testing.T) {
	// An explicit nil at the exact-tag key does not stop the dispatch
	// chain — it falls through to the parent tag and then DEFAULT, the
	// same way the original resolve_phonemes's "if let Some(Some(ps))"
	// pattern skips a Some(None) match instead of returning None outright.
	e := Entry{isTagged: true, tagged: map[string]*string{"NN": nil, "DEFAULT": ptr("fallback")}}
	if ph, ok := e.Resolve("NN", false); !ok || ph != "fallback" {
		t.Errorf("Resolve(NN) with nil NN value = (%q, %v), want (fallback, true) via DEFAULT", ph, ok)
	}
}

func TestEntryResolveExplicitNilAtDefaultFails(t *testing.T) {
	// Only when every key in the chain, down to and including DEFAULT, is
	// absent or explicitly nil does resolution finally fail.
	e := Entry{isTagged: true, tagged: map[string]*string{"NN": nil, "DEFAULT": nil}}
	if _, ok := e.Resolve("NN", false); ok {
		t.Error("Resolve(NN) with nil NN and nil DEFAULT = ok, want false")
	}
}

func TestEntryResolveMissingKeyFails(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"NN": "fˈu"}`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if _, ok := e.Resolve("VB", false); ok {
		t.Error("Resolve(VB) with no matching key/parent/DEFAULT = ok, want false")
	}
}

func TestEntryResolveNoneOverrideOnFutureVowelUnknown(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`{"None": "tə", "IN": "tʊ"}`), &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if ph, ok := e.Resolve("IN", true); !ok || ph != "tə" {
		t.Errorf("Resolve(IN, futureVowelUnknown) = (%q, %v), want (tə, true) via None override", ph, ok)
	}
	if ph, ok := e.Resolve("IN", false); !ok || ph != "tʊ" {
		t.Errorf("Resolve(IN, known) = (%q, %v), want (tʊ, true)", ph, ok)
	}
}

func TestEntryMarshalRoundTrip(t *testing.T) {
	var e Entry
	orig := []byte(`{"NN":"fˈu","DEFAULT":"bˈɑr"}`)
	if err := json.Unmarshal(orig, &e); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var roundtrip Entry
	if err := json.Unmarshal(out, &roundtrip); err != nil {
		t.Fatalf("Unmarshal(roundtrip): %v", err)
	}
	if ph, ok := roundtrip.Resolve("NN", false); !ok || ph != "fˈu" {
		t.Errorf("roundtrip Resolve(NN) = (%q, %v), want (fˈu, true)", ph, ok)
	}
}

func TestParentTagMapping(t *testing.T) {
	cases := map[string]string{
		"VBZ": "VERB",
		"NNS": "NOUN",
		"RB":  "ADV",
		"ADVP": "ADV",
		"JJR": "ADJ",
		"IN":  "IN",
	}
	for tag, want := range cases {
		if got := parentTag(tag); got != want {
			t.Errorf("parentTag(%q) = %q, want %q", tag, got, want)
		}
	}
}
