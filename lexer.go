package fa

import "github.com/brzozowski/fa/internal/automaton"

// tokenKind enumerates the lexical categories produced by lex. EXPR is
// deliberately absent here: it is a parser-only token, never produced
// by the lexer.
type tokenKind uint8

const (
	tokChar tokenKind = iota
	tokStar
	tokVBar
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	ch   automaton.Symbol // valid only when kind == tokChar
}

// lex tokenizes pattern in a single left-to-right pass. A backslash
// consumes the following byte unconditionally as a literal CHAR,
// whatever it is — including another backslash or a metacharacter. A
// trailing backslash with no following byte is rejected.
func lex(pattern string, capacityHint int) ([]token, error) {
	if capacityHint <= 0 {
		capacityHint = len(pattern)
	}
	toks := make([]token, 0, capacityHint)
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch c {
		case '\\':
			i++
			if i >= len(pattern) {
				return nil, &badParse{reason: "trailing backslash with no escaped character"}
			}
			toks = append(toks, token{kind: tokChar, ch: pattern[i]})
		case '*':
			toks = append(toks, token{kind: tokStar})
		case '|':
			toks = append(toks, token{kind: tokVBar})
		case '(':
			toks = append(toks, token{kind: tokLParen})
		case ')':
			toks = append(toks, token{kind: tokRParen})
		default:
			toks = append(toks, token{kind: tokChar, ch: c})
		}
	}
	return toks, nil
}
