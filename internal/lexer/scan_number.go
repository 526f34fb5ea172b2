package lexer

import (
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/token"
)

// scanNumber handles 0, 123, 0x1F, 1.0, 1e-3, 1.0e+10 and the leading-dot
// form .5 (only reached after isNumberAfterDot). '_' is allowed between
// digits. Malformed numbers are reported and become Invalid tokens.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// ".digits" form
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after '.'")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		kind = token.FloatLit
		lx.eatDigits()
		return lx.finishExponent(start, kind)
	}

	// hex
	if lx.cursor.Peek() == '0' {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == 'x' || b == 'X' {
			lx.cursor.Bump()
			if !isHex(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.errLex(diag.LexBadNumber, sp, "expected hex digit after '0x'")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
			}
			for isHex(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.IntLit, Span: sp, Text: lx.text(sp)}
		}
	}

	lx.eatDigits()

	// fraction; "1." with no digit still reads as a float
	if lx.cursor.Peek() == '.' {
		if _, b1, ok := lx.cursor.Peek2(); !ok || !isDec(b1) {
			// member access like "1.foo" keeps the dot out of the number
			if isIdentStartByte(b1) {
				sp := lx.cursor.SpanFrom(start)
				return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
			}
			lx.cursor.Bump()
			kind = token.FloatLit
		} else {
			lx.cursor.Bump()
			kind = token.FloatLit
			lx.eatDigits()
		}
	}

	return lx.finishExponent(start, kind)
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) finishExponent(start Mark, kind token.Kind) token.Token {
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.FloatLit
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "expected digit after exponent")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.eatDigits()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}
