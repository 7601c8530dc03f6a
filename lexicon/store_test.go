package lexicon

import (
	"testing"

	"github.com/az-ai-labs/g2p-en/morph"
)

func mustStore(t *testing.T, gold, silver string) *Store {
	t.Helper()
	s, err := NewStore([]byte(gold), []byte(silver), morph.US)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

func TestNewStoreRejectsMalformedGold(t *testing.T) {
	if _, err := NewStore([]byte("not json"), nil, morph.US); err == nil {
		t.Error("NewStore(bad gold) = nil error, want error")
	}
}

func TestNewStoreRejectsMalformedSilver(t *testing.T) {
	if _, err := NewStore(nil, []byte("not json"), morph.US); err == nil {
		t.Error("NewStore(bad silver) = nil error, want error")
	}
}

func TestIsKnownGoldHit(t *testing.T) {
	s := mustStore(t, `{"cat": "kˈæt"}`, `{}`)
	if !s.IsKnown("cat") {
		t.Error("IsKnown(cat) = false, want true (gold hit)")
	}
}

func TestIsKnownSilverHit(t *testing.T) {
	s := mustStore(t, `{}`, `{"frobnicate": "frˈɑbnɪkeɪt"}`)
	if !s.IsKnown("frobnicate") {
		t.Error("IsKnown(frobnicate) = false, want true (silver hit)")
	}
}

func TestIsKnownSymbol(t *testing.T) {
	s := mustStore(t, `{}`, `{}`)
	if !s.IsKnown("%") {
		t.Error("IsKnown(%) = false, want true")
	}
}

func TestIsKnownRejectsDigits(t *testing.T) {
	s := mustStore(t, `{}`, `{}`)
	if s.IsKnown("123") {
		t.Error("IsKnown(123) = true, want false (non-alphabetic)")
	}
}

func TestIsKnownRejectsDisallowedCodepoint(t *testing.T) {
	s := mustStore(t, `{}`, `{}`)
	if s.IsKnown("café") {
		t.Error("IsKnown(café) = true, want false (é outside charset)")
	}
}

func TestIsKnownSingleCharacter(t *testing.T) {
	s := mustStore(t, `{}`, `{}`)
	if !s.IsKnown("x") {
		t.Error("IsKnown(x) = false, want true (single character)")
	}
}

func TestIsKnownAllUppercaseWithLowercaseGold(t *testing.T) {
	s := mustStore(t, `{"stop": "stˈɑp"}`, `{}`)
	if !s.IsKnown("STOP") {
		t.Error("IsKnown(STOP) = false, want true (lowercase gold hit)")
	}
}

func TestIsKnownInternalCapital(t *testing.T) {
	s := mustStore(t, `{}`, `{}`)
	if !s.IsKnown("iPhone") {
		t.Error("IsKnown(iPhone) = false, want true (internal capital)")
	}
}

func TestIsKnownRejectsUnknownOrdinaryWord(t *testing.T) {
	s := mustStore(t, `{}`, `{}`)
	if s.IsKnown("zzzznotaword") {
		t.Error("IsKnown(zzzznotaword) = true, want false")
	}
}
