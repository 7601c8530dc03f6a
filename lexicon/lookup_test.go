package lexicon

import "testing"

func TestInitialismSpellsLetters(t *testing.T) {
	// Single-letter gold entries are bare, stress-free phonemes: the
	// initialism route (spec §4.6) is what adds the one primary stress
	// mark, not the per-letter dictionary data.
	s := mustStore(t, `{"N": "ɛn", "A": "eɪ", "S": "ɛs"}`, `{}`)
	ph, rating, ok := s.Initialism("NASA")
	if !ok {
		t.Fatal("Initialism(NASA) = not ok")
	}
	if rating != 3 {
		t.Errorf("Initialism(NASA) rating = %d, want 3", rating)
	}
	if ph != "ˈɛneɪɛseɪ" {
		t.Errorf("Initialism(NASA) = %q, want ˈɛneɪɛseɪ", ph)
	}
}

func TestInitialismFailsOnMissingLetter(t *testing.T) {
	s := mustStore(t, `{"N": "ɛn"}`, `{}`)
	if _, _, ok := s.Initialism("NO"); ok {
		t.Error("Initialism(NO) = ok, want false (O missing from gold)")
	}
}

func TestLookupGoldPreferredOverSilver(t *testing.T) {
	// target 1.0 leaves a dictionary form that already carries a primary
	// stress mark untouched.
	s := mustStore(t, `{"cat": "kˈæt"}`, `{"cat": "WRONG"}`)
	ph, rating, ok := s.lookup("cat", "NN", 1, Context{})
	if !ok || rating != 4 || ph != "kˈæt" {
		t.Errorf("lookup(cat) = (%q, %d, %v), want (kˈæt, 4, true)", ph, rating, ok)
	}
}

func TestLookupFallsBackToSilver(t *testing.T) {
	s := mustStore(t, `{}`, `{"glorp": "ɡlˈɔrp"}`)
	ph, rating, ok := s.lookup("glorp", "NN", 1, Context{})
	if !ok || rating != 3 || ph != "ɡlˈɔrp" {
		t.Errorf("lookup(glorp) = (%q, %d, %v), want (ɡlˈɔrp, 3, true)", ph, rating, ok)
	}
}

func TestLookupAllUppercaseFallsBackToLowercaseGold(t *testing.T) {
	s := mustStore(t, `{"run": "rˈʌn"}`, `{}`)
	ph, rating, ok := s.lookup("RUN", "NN", 1, Context{})
	if !ok || rating != 4 || ph != "rˈʌn" {
		t.Errorf("lookup(RUN) = (%q, %d, %v), want (rˈʌn, 4, true)", ph, rating, ok)
	}
}

func TestLookupNNPWithoutPrimaryFallsToInitialism(t *testing.T) {
	gold := `{"X": "ˈɛks", "Y": "wˈaɪ", "xy": {"NNP": "ɐɪ"}}`
	s := mustStore(t, gold, `{}`)
	ph, rating, ok := s.lookup("XY", "NNP", 0, Context{})
	if !ok {
		t.Fatal("lookup(XY) = not ok")
	}
	if rating != 3 {
		t.Errorf("lookup(XY) rating = %d, want 3 (fell to initialism)", rating)
	}
	if ph == "ɐɪ" {
		t.Errorf("lookup(XY) = %q, want the spelled-out form, not the unstressed gold entry", ph)
	}
}

func TestLookupUnresolvedFails(t *testing.T) {
	s := mustStore(t, `{}`, `{}`)
	if _, _, ok := s.lookup("zzz", "NN", 0, Context{}); ok {
		t.Error("lookup(zzz) = ok, want false")
	}
}
