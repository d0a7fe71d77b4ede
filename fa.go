// Package fa compiles classical regular expressions — literals,
// alternation (|), Kleene star (*), grouping, and backslash escapes —
// into finite automata and matches them against byte strings.
//
// The surface alphabet is single bytes plus the reserved epsilon
// symbol; there is no support for character classes, anchors, counted
// repetition, capture groups, backreferences, or Unicode-aware
// matching. FromRegex produces an automaton directly via Thompson's
// construction (small, possibly nondeterministic); call Normalize to
// determinize and minimize it before repeated matching against long
// inputs.
package fa

import (
	"fmt"

	"github.com/brzozowski/fa/internal/automaton"
)

// Config controls how FromRegex builds an automaton's intermediate
// representation.
type Config struct {
	// InitialBuilderCapacity hints how many tokens to preallocate for
	// when lexing a pattern. Compiling one very long pattern can set
	// this to the pattern's expected length to cut down on
	// reallocation; zero or a negative value preallocates len(pattern).
	// DefaultConfig sets it to 16.
	InitialBuilderCapacity int
}

// DefaultConfig returns the Config used by FromRegex.
func DefaultConfig() Config {
	return Config{InitialBuilderCapacity: 16}
}

// FA is a compiled regular expression: the pattern it was compiled
// from, together with the automaton Thompson's construction produced
// for it.
type FA struct {
	pattern string
	a       automaton.Automaton
}

// FromRegex compiles pattern into an FA using DefaultConfig. It returns
// a *BadRegex error if pattern is malformed: unbalanced parentheses, a
// dangling | or *, or a trailing unescaped backslash.
func FromRegex(pattern string) (*FA, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustFromRegex is like FromRegex but panics if pattern fails to
// compile. It is meant for package-level variables initialized from
// string literals known to be valid at compile time.
func MustFromRegex(pattern string) *FA {
	f, err := FromRegex(pattern)
	if err != nil {
		panic(err)
	}
	return f
}

// CompileWithConfig compiles pattern into an FA, as FromRegex does, but
// lets the caller tune the lexer's token preallocation via cfg.
func CompileWithConfig(pattern string, cfg Config) (*FA, error) {
	if pattern == "" {
		return &FA{pattern: pattern, a: automaton.Empty()}, nil
	}

	toks, err := lex(pattern, cfg.InitialBuilderCapacity)
	if err != nil {
		return nil, wrapBadRegex(pattern, err)
	}

	a, err := parse(toks)
	if err != nil {
		return nil, wrapBadRegex(pattern, err)
	}
	return &FA{pattern: pattern, a: a}, nil
}

func wrapBadRegex(pattern string, err error) error {
	if bp, ok := err.(*badParse); ok {
		return &BadRegex{Pattern: pattern, reason: bp.reason}
	}
	return &BadRegex{Pattern: pattern, reason: err.Error()}
}

// Match reports whether input, in its entirety, is accepted by f.
func (f *FA) Match(input string) bool {
	return f.a.Match([]byte(input))
}

// FindNext locates the leftmost match of f within input and returns its
// byte-offset span [start, end). The search is eager, not
// longest-match: it returns the first position at which an accepting
// state is reached while scanning forward from each candidate start,
// not the longest substring that would also match. If nothing matches,
// it returns (len(input), len(input)).
func (f *FA) FindNext(input string) (int, int) {
	return f.a.FindNext([]byte(input))
}

// Normalize returns a new FA equivalent to f with dead states removed
// and a minimal DFA in place of f's original (possibly nondeterministic
// and redundant) automaton. It does not modify f.
func (f *FA) Normalize() *FA {
	return &FA{pattern: f.pattern, a: f.a.Normalize()}
}

// IsDFA reports whether f's current automaton is deterministic. A
// freshly compiled FA is typically an NFA; Normalize always yields a
// DFA.
func (f *FA) IsDFA() bool { return f.a.IsDFA() }

// Pattern returns the source text f was compiled from.
func (f *FA) Pattern() string { return f.pattern }

// String renders a short diagnostic summary of f.
func (f *FA) String() string {
	return fmt.Sprintf("FA{pattern: %q, %s}", f.pattern, f.a.String())
}
