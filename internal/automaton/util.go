package automaton

import "strconv"

// stateName renders a state index as a symbolic builder name. Used by
// operations (Reverse, RemoveDeadStates) that rebuild an automaton
// through a Builder from an existing one's numeric state indices.
func stateName(q State) string {
	return strconv.Itoa(int(q))
}

// prefixName renders a disjointness-preserving symbolic name for state
// q drawn from the faNumber-th operand of a composition operator (1 or
// 2). It replaces the original engine's pair of capture-less lambdas
// (p1, p2) with a single free function parameterized on the prefix
// number, per the "inline as free functions" redesign note.
func prefixName(faNumber int, q State) string {
	return strconv.Itoa(faNumber) + "-" + strconv.Itoa(int(q))
}

// encodeSubset renders a canonical, unambiguous name for a sorted,
// duplicate-free set of states, used by subset construction to name DFA
// states. Members are hyphen-delimited rather than concatenated bare,
// since concatenating decimal indices is ambiguous once any index
// reaches two digits (e.g. "12" could be {1, 2} or {12}).
func encodeSubset(states []State) string {
	if len(states) == 0 {
		return ""
	}
	out := stateName(states[0])
	for _, q := range states[1:] {
		out += "-" + stateName(q)
	}
	return out
}
