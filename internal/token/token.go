package token

import (
	"github.com/BluPerf/swift/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Name    source.StringID // interned spelling, Ident tokens only
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, or character
// literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwVar, KwFunc, KwTypealias, KwReturn, KwIf, KwElse, KwWhile:
		return true
	default:
		return false
	}
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, Assign, EqEq, Bang, BangEq,
		Lt, LtEq, Gt, GtEq, AndAnd, OrOr, Amp, Pipe, Caret, Arrow,
		Colon, Semicolon, Comma, Dot, LParen, RParen, LBrace, RBrace,
		LBracket, RBracket, At:
		return true
	default:
		return false
	}
}

// IsBinaryOp reports whether the token can appear as an infix operator.
// These are also the kinds accepted as operator function names.
func (t Token) IsBinaryOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, Slash, Percent, EqEq, BangEq, Lt, LtEq,
		Gt, GtEq, AndAnd, OrOr, Amp, Pipe, Caret:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
