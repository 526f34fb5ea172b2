package parser

import (
	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/token"
)

func (p *Parser) parseVarItem() (ast.ItemID, bool) {
	id, sp, ok := p.parseVarDecl()
	if !ok {
		return ast.NoItemID, false
	}
	return p.ctx.NewValueItem(sp, id), true
}

// parseVarDecl := 'var' ident [':' type] ['=' expr] ';'?
//
// The declaration is registered with the binder immediately; without an
// annotation its type stays dependent until a later phase infers it.
func (p *Parser) parseVarDecl() (ast.ValueID, source.Span, bool) {
	kw := p.advance() // 'var'

	name, nameSp, ok := p.parseIdent()
	if !ok {
		return ast.NoValueID, kw.Span, false
	}

	ty := p.ti.Builtins().Dependent
	if p.eat(token.Colon) {
		t, ok := p.parseType()
		if !ok {
			return ast.NoValueID, kw.Span, false
		}
		ty = t
	}

	init := ast.NoExprID
	if p.eat(token.Assign) {
		e, ok := p.parseExpr()
		if !ok {
			return ast.NoValueID, kw.Span, false
		}
		init = e
	}

	id := p.ctx.NewValue(name, nameSp, ast.ValueVar, ty)
	p.ctx.Value(id).Init = init
	p.binder.AddValue(id)

	p.eat(token.Semicolon)
	return id, kw.Span.Cover(p.lastSpan), true
}
