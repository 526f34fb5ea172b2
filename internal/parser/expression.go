package parser

import (
	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/token"
)

func (p *Parser) parseExprItem() (ast.ItemID, bool) {
	e, ok := p.parseExpr()
	if !ok {
		return ast.NoItemID, false
	}
	sp := p.ctx.Expr(e).Span
	p.eat(token.Semicolon)
	return p.ctx.NewExprItem(sp, e), true
}

// startsExpr reports whether the current token can begin an expression.
func (p *Parser) startsExpr() bool {
	switch p.lx.Peek().Kind {
	case token.Ident, token.IntLit, token.FloatLit, token.StringLit,
		token.CharLit, token.LParen:
		return true
	default:
		return false
	}
}

// parseExpr parses a flat left-associative operator sequence. Grouping
// by declared precedence is a later phase's job; binding only needs the
// leaves resolved.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	lhs, ok := p.parsePostfix()
	if !ok {
		return ast.NoExprID, false
	}
	for p.lx.Peek().IsBinaryOp() {
		op := p.advance()
		rhs, ok := p.parsePostfix()
		if !ok {
			return ast.NoExprID, false
		}
		sp := p.ctx.Expr(lhs).Span.Cover(p.ctx.Expr(rhs).Span)
		lhs = p.ctx.NewBinary(sp, p.names.Intern(op.Text), lhs, rhs)
	}
	return lhs, true
}

// parsePostfix := primary { '(' args ')' }
func (p *Parser) parsePostfix() (ast.ExprID, bool) {
	e, ok := p.parsePrimary()
	if !ok {
		return ast.NoExprID, false
	}
	for p.at(token.LParen) {
		p.advance()
		var args []ast.ExprID
		if !p.at(token.RParen) {
			for {
				a, ok := p.parseExpr()
				if !ok {
					return ast.NoExprID, false
				}
				args = append(args, a)
				if !p.eat(token.Comma) {
					break
				}
			}
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after call arguments"); !ok {
			return ast.NoExprID, false
		}
		sp := p.ctx.Expr(e).Span.Cover(p.lastSpan)
		e = p.ctx.NewCall(sp, e, args)
	}
	return e, true
}

func (p *Parser) parsePrimary() (ast.ExprID, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		name := tok.Name
		if name == source.NoStringID {
			name = p.names.InternIdent(tok.Text)
		}
		// A miss is not an error: expression references are resolved by
		// a downstream pass, the binder only links what is in scope.
		decl := p.binder.LookupValue(name)
		return p.ctx.NewIdent(tok.Span, name, decl), true

	case token.IntLit:
		p.advance()
		return p.ctx.NewLit(ast.ExprIntLit, tok.Span), true
	case token.FloatLit:
		p.advance()
		return p.ctx.NewLit(ast.ExprFloatLit, tok.Span), true
	case token.StringLit:
		p.advance()
		return p.ctx.NewLit(ast.ExprStringLit, tok.Span), true
	case token.CharLit:
		p.advance()
		return p.ctx.NewLit(ast.ExprCharLit, tok.Span), true

	case token.LParen:
		p.advance()
		e, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')'"); !ok {
			return ast.NoExprID, false
		}
		return e, true

	default:
		p.err(diag.SynExpectExpression, "expected expression")
		return ast.NoExprID, false
	}
}
