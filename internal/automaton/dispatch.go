package automaton

// Match reports whether a accepts w in full, dispatching to the DFA or
// NFA engine according to a.Kind().
func (a Automaton) Match(w []byte) bool {
	if a.IsDFA() {
		return a.dfaMatch(w)
	}
	return a.nfaMatch(w)
}

// FindNext locates the leftmost-starting, eager (not longest) match of
// a within w, returning its [start, end) span. If no substring of w
// matches, it returns (len(w), len(w)).
func (a Automaton) FindNext(w []byte) (int, int) {
	if a.IsDFA() {
		return a.dfaFindNext(w)
	}
	return a.nfaFindNext(w)
}

// Normalize returns an equivalent automaton with dead states removed
// and a minimal number of DFA states, determinizing first if a is an
// NFA.
func (a Automaton) Normalize() Automaton {
	if a.IsDFA() {
		return a.dfaNormalize()
	}
	return a.nfaNormalize()
}
