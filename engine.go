// Package g2p implements the grapheme-to-phoneme resolution pipeline (C9):
// tokenize, tag, then resolve every token right-to-left through the
// lexicon facade, morphological stemming, number expansion, and the
// out-of-vocabulary fallback, threading per-token context (future-vowel,
// future-to) backwards as each token's neighbor is resolved.
//
// Engine is the public entry point. It is built once from five wire
// blobs (spec §6) plus an OOV Fallback implementation, and is safe for
// concurrent use by multiple goroutines thereafter — the only shared
// mutable state is a single mutex serializing calls into the (possibly
// non-reentrant) Fallback, per spec §5.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations (v1.0):
//
//   - No timing/alignment output: Token.StartTS and Token.EndTS are
//     always nil. Producing them is the downstream TTS model's job, an
//     explicit external collaborator per spec §1.
package g2p

import (
	"fmt"
	"sync"

	"github.com/az-ai-labs/g2p-en/fallback"
	"github.com/az-ai-labs/g2p-en/lexicon"
	"github.com/az-ai-labs/g2p-en/morph"
	"github.com/az-ai-labs/g2p-en/tagger"
)

// Lang selects the pronunciation variant the engine resolves against.
type Lang int

const (
	US Lang = iota
	GB
)

func (l Lang) variant() morph.Variant {
	if l == GB {
		return morph.GB
	}
	return morph.US
}

// Engine is a constructed, immutable G2P engine for one language variant.
// Build one with NewEngine and call G2P as many times as needed; nothing
// about a call mutates the Engine itself (spec §5).
type Engine struct {
	lang     Lang
	store    *lexicon.Store
	tagger   *tagger.Tagger
	fallback fallback.Fallback

	// fallbackMu serializes Fallback.Phonemize calls: spec §5 requires
	// an implementation backed by a non-reentrant rule engine to be
	// called under a process-wide lock, not assumed reentrant.
	fallbackMu sync.Mutex
}

// NewEngine builds an Engine from the language selector and the five byte
// blobs spec §6 names: gold dictionary, silver dictionary, tagger
// weights, tagger classes, tag overrides. fb is the OOV Fallback
// implementation to use as a last resort (spec §4.10); a nil fb defaults
// to fallback.RuleFallback{}, the deterministic stand-in this repo ships
// since the real rule-based phonemizer is an external collaborator (spec
// §1).
//
// Construction is the one place this engine can fail fatally (spec
// §7a/§7b): a malformed dictionary or tagger blob is rejected here, never
// discovered mid-resolution.
func NewEngine(lang Lang, gold, silver, weights, classes, overrides []byte, fb fallback.Fallback) (*Engine, error) {
	store, err := lexicon.NewStore(gold, silver, lang.variant())
	if err != nil {
		return nil, fmt.Errorf("g2p: building lexicon: %w", err)
	}
	tg, err := tagger.New(weights, classes, overrides)
	if err != nil {
		return nil, fmt.Errorf("g2p: building tagger: %w", err)
	}
	if fb == nil {
		fb = fallback.RuleFallback{}
	}
	return &Engine{lang: lang, store: store, tagger: tg, fallback: fb}, nil
}
