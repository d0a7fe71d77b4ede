package automaton

import "fmt"

// NoTransitionError reports that a DFA has no outgoing edge for
// (State, Symbol). It is the Go counterpart of the original engine's
// NoTransitionException.
//
// This error is internal to the matching algorithms: only the DFA
// engine produces it, and it catches it locally and translates it into
// a rejection (Match) or an instruction to advance the search start and
// retry (FindNext). The NFA engine never produces it: a missing
// transition there simply yields an empty state set. No exported
// function in this package or in the fa package returns a
// NoTransitionError to its caller; it exists as a typed value so the
// DFA engine can reason about the failure explicitly instead of
// threading a bare bool through its delta functions.
type NoTransitionError struct {
	State  State
	Symbol Symbol
}

// Error implements the error interface.
func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("automaton: no transition from state %d on symbol %q", e.State, e.Symbol)
}
