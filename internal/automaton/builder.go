package automaton

import "sort"

// transition is one symbolic edge accumulated by a Builder, before state
// names have been interned to indices.
type transition struct {
	from   string
	symbol Symbol
	to     string
}

// Builder accumulates transitions by symbolic state name and emits an
// Automaton. States are named by arbitrary strings during construction
// and interned into dense integer indices, in BFS discovery order
// starting from the initial state, when Build is called.
//
// A Builder is not safe for concurrent use; it is meant to be built up
// by a single goroutine (typically a composition operator or the regex
// parser) and discarded after Build.
type Builder struct {
	initial string
	order   []transition    // insertion order, deduplicated
	seen    map[transition]bool
	finals  map[string]bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return NewBuilderWithCapacity(16)
}

// NewBuilderWithCapacity returns an empty Builder that preallocates
// room for capacity transitions. Composition operators that know
// roughly how large their result will be (e.g. the regex parser,
// concatenating operand transition counts) can use this to cut down on
// reallocation.
func NewBuilderWithCapacity(capacity int) *Builder {
	return &Builder{
		order:  make([]transition, 0, capacity),
		seen:   make(map[transition]bool, capacity),
		finals: make(map[string]bool),
	}
}

// InitialState sets the initial state's symbolic name. The last call
// wins if invoked more than once.
func (b *Builder) InitialState(name string) *Builder {
	b.initial = name
	return b
}

// Transition adds one symbolic edge. Duplicate edges (identical
// (from, symbol, to) triples) are silently coalesced. symbol may be
// Epsilon.
func (b *Builder) Transition(from string, symbol Symbol, to string) *Builder {
	t := transition{from, symbol, to}
	if !b.seen[t] {
		b.seen[t] = true
		b.order = append(b.order, t)
	}
	return b
}

// FinalState marks a state final. Repeated calls for the same name are
// idempotent.
func (b *Builder) FinalState(name string) *Builder {
	b.finals[name] = true
	return b
}

// enumerateStates performs a BFS over b.order starting from the initial
// state name, returning states in discovery order together with the
// name-to-index mapping. A transition whose source name is never
// discovered (unreachable from the initial state) contributes neither
// its source nor its destination to the result.
func (b *Builder) enumerateStates() ([]string, map[string]int) {
	states := []string{b.initial}
	index := map[string]int{b.initial: 0}
	for i := 0; i < len(states); i++ {
		cur := states[i]
		for _, t := range b.order {
			if t.from != cur {
				continue
			}
			if _, ok := index[t.to]; ok {
				continue
			}
			index[t.to] = len(states)
			states = append(states, t.to)
		}
	}
	return states, index
}

// Build finalizes the accumulated transitions into an Automaton,
// classifying the result as an NFA or a DFA.
func (b *Builder) Build() Automaton {
	_, index := b.enumerateStates()

	// Alphabet: distinct symbols among transitions whose source is
	// reachable from the initial state.
	symbolSet := map[Symbol]bool{}
	for _, t := range b.order {
		if _, ok := index[t.from]; ok {
			symbolSet[t.symbol] = true
		}
	}
	alphabet := make([]Symbol, 0, len(symbolSet))
	for s := range symbolSet {
		alphabet = append(alphabet, s)
	}
	sort.Slice(alphabet, func(i, j int) bool { return alphabet[i] < alphabet[j] })

	symbolPos := make(map[Symbol]int, len(alphabet))
	for i, s := range alphabet {
		symbolPos[s] = i
	}

	delta := make([][]edge, len(alphabet))
	for _, t := range b.order {
		fromIdx, ok := index[t.from]
		if !ok {
			continue
		}
		toIdx, ok := index[t.to]
		if !ok {
			continue
		}
		pos := symbolPos[t.symbol]
		delta[pos] = append(delta[pos], edge{From: State(fromIdx), To: State(toIdx)})
	}
	for _, es := range delta {
		sort.Slice(es, func(i, j int) bool {
			if es[i].From != es[j].From {
				return es[i].From < es[j].From
			}
			return es[i].To < es[j].To
		})
	}

	finalIdx := map[int]bool{}
	for name := range b.finals {
		if i, ok := index[name]; ok {
			finalIdx[i] = true
		}
	}
	final := make([]State, 0, len(finalIdx))
	for i := range finalIdx {
		final = append(final, State(i))
	}
	sort.Slice(final, func(i, j int) bool { return final[i] < final[j] })

	kind := classify(alphabet, delta)

	return Automaton{
		kind:      kind,
		numStates: len(index),
		initial:   State(index[b.initial]),
		final:     final,
		alphabet:  alphabet,
		delta:     delta,
	}
}

// classify decides NFA vs DFA: an automaton is a DFA iff epsilon is
// absent from the alphabet and no per-symbol edge list repeats a From
// value.
func classify(alphabet []Symbol, delta [][]edge) Kind {
	for _, s := range alphabet {
		if s == Epsilon {
			return KindNFA
		}
	}
	for _, es := range delta {
		for i := 1; i < len(es); i++ {
			if es[i].From == es[i-1].From {
				return KindNFA
			}
		}
	}
	return KindDFA
}
