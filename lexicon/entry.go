package lexicon

import (
	"encoding/json"
	"strings"
)

// Entry is the polymorphic phoneme-entry sum type (spec §3): either a
// single IPA string pronounced regardless of tag, or a map from tag key
// (a literal POS tag, a pseudo-key VERB/NOUN/ADV/ADJ, the pseudo-key
// "None", or "DEFAULT") to an optional IPA string. A nil value under a
// tag key means "explicitly no pronunciation for this tag" and is
// distinct from the key being absent (which falls through to the next
// tag in the dispatch chain).
type Entry struct {
	simple   string
	tagged   map[string]*string
	isTagged bool
}

// NewSimpleEntry builds an untagged Entry that resolves to phonemes
// regardless of part-of-speech tag.
func NewSimpleEntry(phonemes string) *Entry {
	return &Entry{simple: phonemes}
}

// NewTaggedEntry builds a Tagged Entry (spec §3) from a tag-key ->
// phonemes map. Keys follow spec §4.7's dispatch chain: a literal POS
// tag, a pseudo-key (VERB/NOUN/ADV/ADJ/None), or DEFAULT.
func NewTaggedEntry(byTag map[string]string) *Entry {
	tagged := make(map[string]*string, len(byTag))
	for tag, phonemes := range byTag {
		p := phonemes
		tagged[tag] = &p
	}
	return &Entry{tagged: tagged, isTagged: true}
}

// UnmarshalJSON decodes a bare JSON string as a Simple entry, or a JSON
// object as a Tagged entry.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.simple, e.isTagged, e.tagged = s, false, nil
		return nil
	}
	var m map[string]*string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	e.tagged, e.isTagged, e.simple = m, true, ""
	return nil
}

// MarshalJSON encodes the entry back to its wire form.
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.isTagged {
		return json.Marshal(e.tagged)
	}
	return json.Marshal(e.simple)
}

// parentTag maps a literal POS tag to its pseudo-key parent class (spec
// §4.7): VB* -> VERB, NN* -> NOUN, ADV*/RB* -> ADV, ADJ*/JJ* -> ADJ,
// otherwise the tag is its own parent (the chain collapses to DEFAULT).
func parentTag(tag string) string {
	switch {
	case strings.HasPrefix(tag, "VB"):
		return "VERB"
	case strings.HasPrefix(tag, "NN"):
		return "NOUN"
	case strings.HasPrefix(tag, "ADV"), strings.HasPrefix(tag, "RB"):
		return "ADV"
	case strings.HasPrefix(tag, "ADJ"), strings.HasPrefix(tag, "JJ"):
		return "ADJ"
	default:
		return tag
	}
}

// Resolve dispatches this entry to a pronunciation for tag (spec §4.7):
// exact tag, then parent tag, then "DEFAULT", first key with a non-nil
// value wins. A key that is present but holds the explicit nil "no
// pronunciation" marker does not stop the chain — it is skipped in favor
// of the next key, exactly as the original resolve_phonemes (lexicon.rs)
// does with its "if let Some(Some(ps))" pattern: an explicit None at the
// tag or parent-tag position falls through to the next candidate, and
// only a nil (or absent) "DEFAULT" finally fails. If futureVowelUnknown is
// set and the entry has an explicit "None" key, the tag is overridden to
// "None" before dispatch starts. Returns ok=false if every key in the
// chain is absent or explicitly nil.
func (e *Entry) Resolve(tag string, futureVowelUnknown bool) (string, bool) {
	if !e.isTagged {
		return e.simple, true
	}

	effective := tag
	if futureVowelUnknown {
		if _, ok := e.tagged["None"]; ok {
			effective = "None"
		}
	}

	tried := make(map[string]bool, 3)
	for _, key := range [3]string{effective, parentTag(effective), "DEFAULT"} {
		if tried[key] {
			continue
		}
		tried[key] = true
		if v, ok := e.tagged[key]; ok && v != nil {
			return *v, true
		}
	}
	return "", false
}
