package lexer

import (
	"fmt"

	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation, longest match
// first. An unrecognized byte is reported once and skipped.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	kind := token.Invalid
	switch {
	case lx.try2('-', '>'):
		kind = token.Arrow
	case lx.try2('=', '='):
		kind = token.EqEq
	case lx.try2('!', '='):
		kind = token.BangEq
	case lx.try2('<', '='):
		kind = token.LtEq
	case lx.try2('>', '='):
		kind = token.GtEq
	case lx.try2('&', '&'):
		kind = token.AndAnd
	case lx.try2('|', '|'):
		kind = token.OrOr
	default:
		switch b := lx.cursor.Bump(); b {
		case '+':
			kind = token.Plus
		case '-':
			kind = token.Minus
		case '*':
			kind = token.Star
		case '/':
			kind = token.Slash
		case '%':
			kind = token.Percent
		case '=':
			kind = token.Assign
		case '!':
			kind = token.Bang
		case '<':
			kind = token.Lt
		case '>':
			kind = token.Gt
		case '&':
			kind = token.Amp
		case '|':
			kind = token.Pipe
		case '^':
			kind = token.Caret
		case ':':
			kind = token.Colon
		case ';':
			kind = token.Semicolon
		case ',':
			kind = token.Comma
		case '.':
			kind = token.Dot
		case '(':
			kind = token.LParen
		case ')':
			kind = token.RParen
		case '{':
			kind = token.LBrace
		case '}':
			kind = token.RBrace
		case '[':
			kind = token.LBracket
		case ']':
			kind = token.RBracket
		case '@':
			kind = token.At
		default:
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", rune(b)))
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
