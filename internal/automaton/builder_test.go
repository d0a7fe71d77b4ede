package automaton

import "testing"

func TestBuilderClassifiesDFA(t *testing.T) {
	a := NewBuilder().
		InitialState("q0").
		Transition("q0", 'a', "q1").
		Transition("q1", 'b', "q0").
		FinalState("q1").
		Build()

	if !a.IsDFA() {
		t.Fatalf("expected DFA, got %s", a.Kind())
	}
	if a.NumStates() != 2 {
		t.Fatalf("NumStates() = %d, want 2", a.NumStates())
	}
	if a.Initial() != 0 {
		t.Fatalf("Initial() = %d, want 0 (discovery order)", a.Initial())
	}
}

func TestBuilderClassifiesNFAOnEpsilon(t *testing.T) {
	a := NewBuilder().
		InitialState("q0").
		Transition("q0", Epsilon, "q1").
		FinalState("q1").
		Build()

	if !a.IsNFA() {
		t.Fatalf("expected NFA due to epsilon edge, got %s", a.Kind())
	}
}

func TestBuilderClassifiesNFAOnDuplicateFrom(t *testing.T) {
	a := NewBuilder().
		InitialState("q0").
		Transition("q0", 'a', "q1").
		Transition("q0", 'a', "q2").
		FinalState("q1").
		FinalState("q2").
		Build()

	if !a.IsNFA() {
		t.Fatalf("expected NFA due to duplicate (q0, 'a'), got %s", a.Kind())
	}
}

func TestBuilderDropsUnreachableStates(t *testing.T) {
	a := NewBuilder().
		InitialState("q0").
		Transition("q0", 'a', "q1").
		Transition("zzz", 'b', "q2"). // zzz is never reached from q0
		FinalState("q1").
		Build()

	if a.NumStates() != 2 {
		t.Fatalf("NumStates() = %d, want 2 (unreachable state dropped)", a.NumStates())
	}
}

func TestBuilderDeduplicatesTransitions(t *testing.T) {
	a := NewBuilder().
		InitialState("q0").
		Transition("q0", 'a', "q1").
		Transition("q0", 'a', "q1").
		FinalState("q1").
		Build()

	si, ok := a.symbolIndex('a')
	if !ok {
		t.Fatalf("symbol 'a' missing from alphabet")
	}
	if got := len(a.delta[si]); got != 1 {
		t.Fatalf("delta['a'] has %d edges, want 1 (duplicate coalesced)", got)
	}
}

func TestBuilderDropsIsolatedFinalState(t *testing.T) {
	a := NewBuilder().
		InitialState("q0").
		FinalState("ghost"). // never declared reachable via a transition or as initial
		Build()

	if len(a.Final()) != 0 {
		t.Fatalf("Final() = %v, want empty (isolated final name silently dropped)", a.Final())
	}
}
