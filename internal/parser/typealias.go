package parser

import (
	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/token"
)

func (p *Parser) parseTypealiasItem() (ast.ItemID, bool) {
	id, sp, ok := p.parseTypealias()
	if !ok {
		return ast.NoItemID, false
	}
	return p.ctx.NewAliasItem(sp, id), true
}

// parseTypealias := 'typealias' ident '=' type ';'?
//
// The binder decides whether this completes a pending placeholder,
// shadows an outer alias, or collides with an existing definition.
func (p *Parser) parseTypealias() (ast.AliasID, source.Span, bool) {
	kw := p.advance() // 'typealias'

	name, nameSp, ok := p.parseIdent()
	if !ok {
		return ast.NoAliasID, kw.Span, false
	}
	if _, ok := p.expect(token.Assign, diag.SynExpectEquals, "expected '=' in typealias declaration"); !ok {
		return ast.NoAliasID, kw.Span, false
	}
	underlying, ok := p.parseType()
	if !ok {
		return ast.NoAliasID, kw.Span, false
	}

	id := p.binder.DefineTypeAlias(nameSp, name, underlying)
	p.eat(token.Semicolon)
	return id, kw.Span.Cover(p.lastSpan), true
}
