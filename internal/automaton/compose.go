package automaton

// FromSymbol builds the two-state automaton accepting exactly the
// one-byte string {s}: q0 --s--> q1, q1 final.
func FromSymbol(s Symbol) Automaton {
	return NewBuilder().
		InitialState("q0").
		Transition("q0", s, "q1").
		FinalState("q1").
		Build()
}

// Empty builds the single-state automaton accepting only the empty
// string: q0 with no transitions, final.
func Empty() Automaton {
	return NewBuilder().InitialState("q0").FinalState("q0").Build()
}

// Concatenate builds the automaton for L(a)L(b): a's states prefixed
// with 1, b's with 2, epsilon edges from every final state of a to b's
// initial state, and b's final states carried over as the result's
// final states.
func Concatenate(a, b Automaton) Automaton {
	bld := NewBuilderWithCapacity(totalEdges(a) + totalEdges(b) + len(a.final))
	bld.InitialState(prefixName(1, a.initial))

	copyInto(bld, a, 1)
	copyInto(bld, b, 2)

	for _, f := range a.final {
		bld.Transition(prefixName(1, f), Epsilon, prefixName(2, b.initial))
	}
	for _, f := range b.final {
		bld.FinalState(prefixName(2, f))
	}
	return bld.Build()
}

// Alternate builds the automaton for L(a) | L(b): a fresh initial state
// with epsilon edges to both a's and b's (prefixed) initial states, and
// every final state of either operand carried over as final.
func Alternate(a, b Automaton) Automaton {
	bld := NewBuilderWithCapacity(totalEdges(a) + totalEdges(b) + 2)
	q0 := "alt-q0"
	bld.InitialState(q0)
	bld.Transition(q0, Epsilon, prefixName(1, a.initial))
	bld.Transition(q0, Epsilon, prefixName(2, b.initial))

	copyInto(bld, a, 1)
	copyInto(bld, b, 2)

	for _, f := range a.final {
		bld.FinalState(prefixName(1, f))
	}
	for _, f := range b.final {
		bld.FinalState(prefixName(2, f))
	}
	return bld.Build()
}

// Repeat builds the automaton for L(a)*: a's states prefixed with 1,
// epsilon edges from every final state back to a's initial state (to
// allow repetition), and a's initial state itself marked final (to
// accept the empty string).
func Repeat(a Automaton) Automaton {
	bld := NewBuilderWithCapacity(totalEdges(a) + len(a.final) + 1)
	bld.InitialState(prefixName(1, a.initial))

	copyInto(bld, a, 1)

	for _, f := range a.final {
		bld.Transition(prefixName(1, f), Epsilon, prefixName(1, a.initial))
	}
	bld.FinalState(prefixName(1, a.initial))
	return bld.Build()
}

// copyInto replays every edge of a into bld, with every state name
// prefixed by faNumber. It marks no final states: each caller calls
// FinalState itself for whichever operand states its operator makes
// final (e.g. Concatenate marks none of operand a's states).
func copyInto(bld *Builder, a Automaton, faNumber int) {
	for si, sym := range a.alphabet {
		for _, e := range a.delta[si] {
			bld.Transition(prefixName(faNumber, e.From), sym, prefixName(faNumber, e.To))
		}
	}
}

// totalEdges counts a's transitions, used only to size a fresh
// Builder's preallocation.
func totalEdges(a Automaton) int {
	n := 0
	for _, es := range a.delta {
		n += len(es)
	}
	return n
}
