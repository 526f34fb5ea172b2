package lexer

import (
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/token"
)

// scanString scans "..." with escapes. Newlines inside the literal and a
// missing closing quote are errors; both still produce a token so the
// parser can keep going.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '"' {
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.text(sp)}
		}
		if b == '\\' {
			lx.scanEscape()
			continue
		}
		if b == '\n' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanChar scans 'x' including escaped forms like '\n'.
func (lx *Lexer) scanChar() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '\''
	switch b := lx.cursor.Peek(); {
	case lx.cursor.EOF() || b == '\n':
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	case b == '\\':
		lx.scanEscape()
	default:
		lx.bumpRune()
	}
	if !lx.cursor.Eat('\'') {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedChar, sp, "unterminated character literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.CharLit, Span: sp, Text: lx.text(sp)}
}

// scanEscape consumes a backslash escape, reporting unknown ones.
func (lx *Lexer) scanEscape() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'
	if lx.cursor.EOF() {
		return
	}
	switch b := lx.cursor.Bump(); b {
	case '\\', '"', '\'', 'n', 't', 'r', '0':
	case 'u':
		// \u{XXXX}
		if !lx.cursor.Eat('{') {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "expected '{' after '\\u'")
			return
		}
		for isHex(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		if !lx.cursor.Eat('}') {
			lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "unclosed unicode escape")
		}
	default:
		lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start), "unknown escape sequence")
	}
}
