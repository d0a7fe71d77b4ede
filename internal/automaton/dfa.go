package automaton

import "sort"

// dfaDelta computes delta(q, s) for a DFA by binary-searching the
// alphabet for s, then the corresponding edge list for q. It returns a
// *NoTransitionError when either search misses, matching the original
// engine's NoTransitionException.
func (a Automaton) dfaDelta(q State, s Symbol) (State, error) {
	if s == Epsilon {
		// NUL is reserved for epsilon and can never be a real
		// transition symbol in a DFA (epsilon is never in a DFA's
		// alphabet); treat it as an immediate miss rather than
		// searching for it.
		return 0, &NoTransitionError{State: q, Symbol: s}
	}
	i, ok := a.symbolIndex(s)
	if !ok {
		return 0, &NoTransitionError{State: q, Symbol: s}
	}
	es := a.delta[i]
	j := sort.Search(len(es), func(k int) bool { return es[k].From >= q })
	if j == len(es) || es[j].From != q {
		return 0, &NoTransitionError{State: q, Symbol: s}
	}
	return es[j].To, nil
}

// dfaDeltaString folds dfaDelta left-to-right over w, starting from q.
func (a Automaton) dfaDeltaString(q State, w []byte) (State, error) {
	for _, c := range w {
		next, err := a.dfaDelta(q, c)
		if err != nil {
			return 0, err
		}
		q = next
	}
	return q, nil
}

// dfaMatch evaluates delta(q0, w) and accepts iff the result is final. A
// NoTransitionError anywhere in the fold is treated as rejection, never
// propagated.
func (a Automaton) dfaMatch(w []byte) bool {
	q, err := a.dfaDeltaString(a.initial, w)
	if err != nil {
		return false
	}
	return a.IsFinal(q)
}

// dfaFindNext is the eager-leftmost search described in spec §4.3: for
// each candidate start position i, it runs q forward from q0 until q is
// final (success, span is [i, j)) or the input/transition table is
// exhausted (failure, advance to i+1). It is not a longest-match search
// — it returns the first final state reached, which callers must treat
// as a deliberate contract rather than a bug.
//
// If no start position succeeds, it returns the degenerate span
// (len(w), len(w)).
func (a Automaton) dfaFindNext(w []byte) (int, int) {
	n := len(w)
	for i := 0; i <= n; i++ {
		q := a.initial
		j := i
		ok := a.IsFinal(q)
		for !ok {
			if j >= n {
				break
			}
			next, err := a.dfaDelta(q, w[j])
			if err != nil {
				break
			}
			q = next
			j++
			ok = a.IsFinal(q)
		}
		if ok {
			return i, j
		}
	}
	return n, n
}

// dfaReachableFrom returns the set of states reachable from start by
// following edges forward, including start itself.
func (a Automaton) dfaReachableFrom(start State) map[State]bool {
	seen := map[State]bool{start: true}
	queue := []State{start}
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		for _, es := range a.delta {
			for _, e := range es {
				if e.From == cur && !seen[e.To] {
					seen[e.To] = true
					queue = append(queue, e.To)
				}
			}
		}
	}
	return seen
}

// canReachFinal returns the set of states from which some final state
// is reachable (including the final states themselves), by searching
// the reversed edge relation starting from every final state.
func (a Automaton) canReachFinal() map[State]bool {
	reverse := map[State][]State{}
	for _, es := range a.delta {
		for _, e := range es {
			reverse[e.To] = append(reverse[e.To], e.From)
		}
	}
	seen := map[State]bool{}
	var queue []State
	for _, f := range a.final {
		if !seen[f] {
			seen[f] = true
			queue = append(queue, f)
		}
	}
	for i := 0; i < len(queue); i++ {
		cur := queue[i]
		for _, p := range reverse[cur] {
			if !seen[p] {
				seen[p] = true
				queue = append(queue, p)
			}
		}
	}
	return seen
}

// findDeadStates returns the set of dead states: those unreachable from
// the initial state, or from which no final state is reachable.
func (a Automaton) findDeadStates() map[State]bool {
	reachable := a.dfaReachableFrom(a.initial)
	liveTail := a.canReachFinal()
	dead := map[State]bool{}
	for q := 0; q < a.numStates; q++ {
		st := State(q)
		if !reachable[st] || !liveTail[st] {
			dead[st] = true
		}
	}
	return dead
}

// RemoveDeadStates returns an automaton functionally identical to a but
// with dead states, and their incident edges, removed. If q0 itself is
// dead the result accepts the empty language: no transitions, no final
// states.
func (a Automaton) RemoveDeadStates() Automaton {
	dead := a.findDeadStates()
	b := NewBuilder()
	b.InitialState(stateName(a.initial))

	if dead[a.initial] {
		return b.Build()
	}

	for si, sym := range a.alphabet {
		for _, e := range a.delta[si] {
			if !dead[e.From] && !dead[e.To] {
				b.Transition(stateName(e.From), sym, stateName(e.To))
			}
		}
	}
	for _, f := range a.final {
		if !dead[f] {
			b.FinalState(stateName(f))
		}
	}
	return b.Build()
}

// Reverse returns the automaton (typically an NFA, since it introduces
// an epsilon edge from the fresh initial state to every original final
// state) that accepts the reverse language of a: a new initial state
// q0' with epsilon edges to every original final state, every original
// edge (p, s, q) flipped to (q, s, p), and the original initial state as
// the sole new final state.
func (a Automaton) Reverse() Automaton {
	b := NewBuilder()
	q0 := "rev-q0"
	b.InitialState(q0)
	for _, f := range a.final {
		b.Transition(q0, Epsilon, stateName(f))
	}
	for si, sym := range a.alphabet {
		for _, e := range a.delta[si] {
			b.Transition(stateName(e.To), sym, stateName(e.From))
		}
	}
	b.FinalState(stateName(a.initial))
	return b.Build()
}

// MinimizeStates runs Brzozowski's algorithm: reverse, determinize,
// reverse, determinize. If a accepts the empty language (no final
// states), it is returned unchanged — the algorithm's correctness
// depends on there being at least one final state to seed the first
// reverse with an epsilon edge.
func (a Automaton) MinimizeStates() Automaton {
	if len(a.final) == 0 {
		return a
	}
	step1 := a.Reverse()
	step2 := step1.Determinize()
	step3 := step2.Reverse()
	step4 := step3.Determinize()
	return step4
}

// dfaNormalize is DFA normalization: dead-state elimination followed by
// Brzozowski minimization.
func (a Automaton) dfaNormalize() Automaton {
	return a.RemoveDeadStates().MinimizeStates()
}
