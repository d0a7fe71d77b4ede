package automaton

import "sort"

// EpsilonClosure returns the set of states reachable from q by zero or
// more epsilon-transitions, as an ordered, duplicate-free slice
// (q itself always included, first).
func (a Automaton) EpsilonClosure(q State) []State {
	closure := []State{q}
	seen := map[State]bool{q: true}

	ei, ok := a.symbolIndex(Epsilon)
	if !ok {
		return closure
	}
	es := a.delta[ei]

	for i := 0; i < len(closure); i++ {
		cur := closure[i]
		for _, e := range es {
			if e.From == cur && !seen[e.To] {
				seen[e.To] = true
				closure = append(closure, e.To)
			}
		}
	}
	return closure
}

// nfaDeltaSet computes delta({Q}, s) for s != Epsilon: the union of the
// epsilon-closures of every state reachable from some q in the
// epsilon-closure of Q by an s-edge. Returns an empty, sorted,
// duplicate-free slice if s is not in the alphabet.
func (a Automaton) nfaDeltaSet(qs []State, s Symbol) []State {
	if s == Epsilon {
		return nil
	}
	si, ok := a.symbolIndex(s)
	if !ok {
		return nil
	}

	closed := map[State]bool{}
	for _, q := range qs {
		for _, c := range a.EpsilonClosure(q) {
			closed[c] = true
		}
	}

	reached := map[State]bool{}
	for _, e := range a.delta[si] {
		if closed[e.From] {
			reached[e.To] = true
		}
	}

	result := map[State]bool{}
	for p := range reached {
		for _, c := range a.EpsilonClosure(p) {
			result[c] = true
		}
	}

	out := make([]State, 0, len(result))
	for q := range result {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// intersectsFinal reports whether any state in qs (assumed sorted) is
// final.
func (a Automaton) intersectsFinal(qs []State) bool {
	for _, q := range qs {
		if a.IsFinal(q) {
			return true
		}
	}
	return false
}

// nfaMatch computes delta({q0}, w) — folding nfaDeltaSet over w's bytes,
// starting from the epsilon-closure of q0 — and accepts iff the result
// intersects F. Seeding with the closure only changes the answer for
// the empty string (nfaDeltaSet closes its input set anyway): an
// automaton whose initial state reaches a final state only through
// epsilon edges, such as the one compiled from a*b*, accepts it.
func (a Automaton) nfaMatch(w []byte) bool {
	cur := a.EpsilonClosure(a.initial)
	for _, c := range w {
		if len(cur) == 0 {
			break
		}
		cur = a.nfaDeltaSet(cur, c)
	}
	return a.intersectsFinal(cur)
}

// nfaFindNext is the set-valued analogue of dfaFindNext: for each start
// position i, it advances a running subset from the epsilon-closure of
// q0 until the subset intersects F (success) or input runs out / the
// subset empties (failure, try i+1). Same eager-leftmost,
// not-longest-match contract as the DFA engine.
func (a Automaton) nfaFindNext(w []byte) (int, int) {
	n := len(w)
	for i := 0; i <= n; i++ {
		cur := a.EpsilonClosure(a.initial)
		j := i
		ok := a.intersectsFinal(cur)
		for !ok {
			if j >= n || len(cur) == 0 {
				break
			}
			cur = a.nfaDeltaSet(cur, w[j])
			j++
			ok = a.intersectsFinal(cur)
		}
		if ok {
			return i, j
		}
	}
	return n, n
}

// Determinize performs the subset (powerset) construction, producing a
// DFA over Σ \ {ε} equivalent to a. Subset states are named by
// encodeSubset, a stable, unambiguous canonicalization of the member
// indices in ascending order.
func (a Automaton) Determinize() Automaton {
	b := NewBuilder()

	start := append([]State(nil), a.EpsilonClosure(a.initial)...)
	sort.Slice(start, func(i, j int) bool { return start[i] < start[j] })
	startKey := encodeSubset(start)
	b.InitialState(startKey)
	if a.intersectsFinal(start) {
		b.FinalState(startKey)
	}

	seen := map[string]bool{startKey: true}
	queue := [][]State{start}

	for qi := 0; qi < len(queue); qi++ {
		subset := queue[qi]
		subsetKey := encodeSubset(subset)

		for _, sym := range a.alphabet {
			if sym == Epsilon {
				continue
			}
			next := a.nfaDeltaSet(subset, sym)
			if len(next) == 0 {
				// No outgoing edge on sym from this subset: leave it
				// unmodeled, which the DFA engine already treats as a
				// NoTransition (reject/retry) exactly as an explicit
				// transition to a dead trap state would.
				continue
			}
			nextKey := encodeSubset(next)
			if !seen[nextKey] {
				seen[nextKey] = true
				queue = append(queue, next)
				if a.intersectsFinal(next) {
					b.FinalState(nextKey)
				}
			}
			b.Transition(subsetKey, sym, nextKey)
		}
	}

	return b.Build()
}

// nfaNormalize is NFA normalization: determinize, then apply DFA
// normalization to the result.
func (a Automaton) nfaNormalize() Automaton {
	return a.Determinize().dfaNormalize()
}
