package fa

import "github.com/brzozowski/fa/internal/automaton"

// stackKind enumerates what can sit on the parser's token stack,
// extending tokenKind with skExpr — the reduced nonterminal that never
// comes out of the lexer.
type stackKind uint8

const (
	skChar stackKind = iota
	skStar
	skVBar
	skLParen
	skRParen
	skExpr
)

func fromTokenKind(k tokenKind) stackKind {
	switch k {
	case tokChar:
		return skChar
	case tokStar:
		return skStar
	case tokVBar:
		return skVBar
	case tokLParen:
		return skLParen
	case tokRParen:
		return skRParen
	}
	panic("fa: unreachable token kind")
}

// parse drives a handwritten shift/reduce automaton over toks: a token
// stack (tokStack) and a parallel FA stack (faStack) carrying the
// automaton built so far for each EXPR on the token stack. At every
// step it attempts the six reductions below in priority order; if none
// applies, it shifts the next input token. This is an explicit loop
// rather than the original engine's self-recursive closure, so a long
// pattern never risks exhausting the Go call stack.
type stackItem struct {
	kind stackKind
	ch   automaton.Symbol // valid only when kind == skChar
}

func parse(toks []token) (automaton.Automaton, error) {
	var tokStack []stackItem
	var faStack []automaton.Automaton
	pos := 0

	lookahead := func() (stackKind, bool) {
		if pos >= len(toks) {
			return 0, false
		}
		return fromTokenKind(toks[pos].kind), true
	}

	for {
		n := len(tokStack)

		// Rule 1: CHAR -> EXPR.
		if n >= 1 && tokStack[n-1].kind == skChar {
			faStack = append(faStack, automaton.FromSymbol(tokStack[n-1].ch))
			tokStack[n-1] = stackItem{kind: skExpr}
			continue
		}

		// Rule 2: EXPR EXPR, lookahead != STAR -> concatenation.
		if n >= 2 && tokStack[n-2].kind == skExpr && tokStack[n-1].kind == skExpr {
			if la, ok := lookahead(); !ok || la != skStar {
				b := faStack[len(faStack)-1]
				a := faStack[len(faStack)-2]
				faStack = faStack[:len(faStack)-2]
				faStack = append(faStack, automaton.Concatenate(a, b))
				tokStack = tokStack[:n-1]
				continue
			}
		}

		// Rule 3: EXPR STAR -> Kleene closure.
		if n >= 2 && tokStack[n-2].kind == skExpr && tokStack[n-1].kind == skStar {
			a := faStack[len(faStack)-1]
			faStack[len(faStack)-1] = automaton.Repeat(a)
			tokStack = tokStack[:n-1]
			continue
		}

		// Rule 4: EXPR VBAR EXPR, lookahead is VBAR, RPAREN or end of
		// input -> alternation. Any other lookahead (CHAR, LPAREN, STAR)
		// still extends the right operand, since concatenation and star
		// bind tighter than |.
		if n >= 3 && tokStack[n-3].kind == skExpr && tokStack[n-2].kind == skVBar && tokStack[n-1].kind == skExpr {
			if la, ok := lookahead(); !ok || la == skVBar || la == skRParen {
				b := faStack[len(faStack)-1]
				a := faStack[len(faStack)-2]
				faStack = faStack[:len(faStack)-2]
				faStack = append(faStack, automaton.Alternate(a, b))
				tokStack = tokStack[:n-2]
				tokStack[n-3] = stackItem{kind: skExpr}
				continue
			}
		}

		// Rule 5: LPAREN EXPR RPAREN -> drop the parentheses.
		if n >= 3 && tokStack[n-3].kind == skLParen && tokStack[n-2].kind == skExpr && tokStack[n-1].kind == skRParen {
			tokStack = tokStack[:n-2]
			tokStack[n-3] = stackItem{kind: skExpr}
			continue
		}

		// Rule 6: shift, or stop if input is exhausted.
		if pos < len(toks) {
			tokStack = append(tokStack, stackItem{kind: fromTokenKind(toks[pos].kind), ch: toks[pos].ch})
			pos++
			continue
		}
		break
	}

	if len(tokStack) != 1 || tokStack[0].kind != skExpr || len(faStack) != 1 {
		return automaton.Automaton{}, &badParse{reason: "unbalanced or malformed pattern"}
	}
	return faStack[0], nil
}
