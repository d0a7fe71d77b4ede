package automaton

import "testing"

// abStar builds a small DFA accepting (ab)*: q0 --a--> q1 --b--> q0,
// q0 final.
func abStar() Automaton {
	return NewBuilder().
		InitialState("q0").
		Transition("q0", 'a', "q1").
		Transition("q1", 'b', "q0").
		FinalState("q0").
		Build()
}

func TestDFAMatch(t *testing.T) {
	a := abStar()
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"ab", true},
		{"abab", true},
		{"a", false},
		{"aba", false},
		{"ba", false},
	}
	for _, tt := range tests {
		if got := a.dfaMatch([]byte(tt.in)); got != tt.want {
			t.Errorf("dfaMatch(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDFAFindNextIsEagerNotLongest(t *testing.T) {
	// (ab)* applied to "ababx": q0 is final immediately, so the eager
	// leftmost search reports the empty match at position 0 rather than
	// scanning ahead for the longer "abab" match.
	a := abStar()
	start, end := a.dfaFindNext([]byte("ababx"))
	if start != 0 || end != 0 {
		t.Fatalf("dfaFindNext = (%d, %d), want (0, 0) — eager match at the start", start, end)
	}
}

func TestDFAFindNextNoMatch(t *testing.T) {
	a := NewBuilder().
		InitialState("q0").
		Transition("q0", 'a', "q1").
		FinalState("q1").
		Build()

	start, end := a.dfaFindNext([]byte("zzz"))
	if start != 3 || end != 3 {
		t.Fatalf("dfaFindNext = (%d, %d), want (3, 3) (degenerate span at len(w))", start, end)
	}
}

func TestRemoveDeadStatesPreservesLanguage(t *testing.T) {
	// q2 is unreachable, q3 cannot reach a final state.
	a := NewBuilder().
		InitialState("q0").
		Transition("q0", 'a', "q1").
		Transition("q1", 'b', "q3").
		Transition("q2", 'c', "q1").
		FinalState("q1").
		Build()

	cleaned := a.RemoveDeadStates()
	if cleaned.dfaMatch([]byte("a")) != a.dfaMatch([]byte("a")) {
		t.Fatalf("RemoveDeadStates changed acceptance of \"a\"")
	}
	if cleaned.NumStates() >= a.NumStates() {
		t.Fatalf("RemoveDeadStates did not shrink the automaton: %d >= %d", cleaned.NumStates(), a.NumStates())
	}
}

func TestRemoveDeadStatesEmptyLanguageWhenInitialIsDead(t *testing.T) {
	a := NewBuilder().
		InitialState("q0").
		Transition("q0", 'a', "q1").
		// q1 is never marked final, so q0 can't reach a final state.
		Build()

	cleaned := a.RemoveDeadStates()
	if len(cleaned.Final()) != 0 {
		t.Fatalf("expected empty language, got final states %v", cleaned.Final())
	}
	if cleaned.dfaMatch([]byte("")) {
		t.Fatalf("expected empty language to reject the empty string too")
	}
}

func TestReverseIsInvolutive(t *testing.T) {
	a := abStar().Determinize() // abStar is already a DFA; round-trip through Determinize to normalize state naming
	rr := a.Reverse().Determinize().Reverse().Determinize().Normalize()
	want := a.Normalize()

	for _, w := range []string{"", "a", "ab", "aba", "abab"} {
		if rr.Match([]byte(w)) != want.Match([]byte(w)) {
			t.Errorf("double-reverse mismatch on %q", w)
		}
	}
}

func TestMinimizeStatesOnEmptyLanguageIsNoop(t *testing.T) {
	a := NewBuilder().
		InitialState("q0").
		Transition("q0", 'a', "q1").
		Build()

	m := a.MinimizeStates()
	if m.NumStates() != a.NumStates() || m.Initial() != a.Initial() {
		t.Fatalf("MinimizeStates on an automaton with no final states should return it unchanged")
	}
}
