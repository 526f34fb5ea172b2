package parser

import (
	"strconv"

	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/token"
	"github.com/BluPerf/swift/internal/types"
)

type param struct {
	name source.StringID
	span source.Span
	ty   types.TypeID
}

func (p *Parser) parseFuncItem() (ast.ItemID, bool) {
	infix := p.parseAttributes()
	if !p.at(token.KwFunc) {
		p.err(diag.SynUnexpectedToken, "expected 'func' after attributes")
		return ast.NoItemID, false
	}
	id, sp, ok := p.parseFuncDecl(infix)
	if !ok {
		return ast.NoItemID, false
	}
	return p.ctx.NewValueItem(sp, id), true
}

// parseAttributes := { '@' ident ['(' ... ')'] }
//
// Only '@infix(N)' is recognized; it carries operator precedence into the
// following func declaration.
func (p *Parser) parseAttributes() uint16 {
	var infix uint16
	for p.at(token.At) {
		atTok := p.advance()
		nameTok, ok := p.expect(token.Ident, diag.SynBadAttribute, "expected attribute name after '@'")
		if !ok {
			continue
		}
		if nameTok.Text != "infix" {
			p.report(diag.SynBadAttribute, diag.SevError, atTok.Span.Cover(nameTok.Span),
				"unknown attribute '"+nameTok.Text+"'")
			p.skipAttributeArgs()
			continue
		}
		if _, ok := p.expect(token.LParen, diag.SynBadAttribute, "expected '(' after 'infix'"); !ok {
			continue
		}
		lit, ok := p.expect(token.IntLit, diag.SynBadAttribute, "expected precedence literal in 'infix' attribute")
		if !ok {
			p.skipToRParen()
			continue
		}
		n, err := strconv.ParseUint(lit.Text, 0, 16)
		if err != nil {
			p.report(diag.SynBadAttribute, diag.SevError, lit.Span,
				"infix precedence must be an integer between 0 and 65535")
		} else {
			infix = uint16(n)
		}
		p.expect(token.RParen, diag.SynBadAttribute, "expected ')' after infix precedence")
	}
	return infix
}

func (p *Parser) skipAttributeArgs() {
	if p.at(token.LParen) {
		p.advance()
		p.skipToRParen()
	}
}

func (p *Parser) skipToRParen() {
	depth := 1
	for depth > 0 && !p.at(token.EOF) {
		switch p.advance().Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		}
	}
}

// parseFuncDecl := 'func' (ident | operator) '(' params ')' ['->' type] (block | ';'?)
//
// The declaration is added to scope before the body is parsed, so the
// body can refer to the function recursively. A bodyless func is a
// declaration (no initializer); a body makes it a definition.
func (p *Parser) parseFuncDecl(infix uint16) (ast.ValueID, source.Span, bool) {
	kw := p.advance() // 'func'

	var name source.StringID
	var nameSp source.Span
	switch tok := p.lx.Peek(); {
	case tok.Kind == token.Ident:
		name, nameSp, _ = p.parseIdent()
	case tok.IsBinaryOp():
		p.advance()
		name = p.names.Intern(tok.Text)
		nameSp = tok.Span
	default:
		p.err(diag.SynExpectIdentifier, "expected function name after 'func'")
		return ast.NoValueID, kw.Span, false
	}

	params, ok := p.parseParams()
	if !ok {
		return ast.NoValueID, kw.Span, false
	}

	result := p.ti.Builtins().EmptyTuple
	if p.eat(token.Arrow) {
		t, ok := p.parseType()
		if !ok {
			return ast.NoValueID, kw.Span, false
		}
		result = t
	}

	paramTypes := make([]types.TypeID, len(params))
	for i, prm := range params {
		paramTypes[i] = prm.ty
	}
	fnType := p.ti.RegisterFn(paramTypes, result)

	id := p.ctx.NewValue(name, nameSp, ast.ValueFunc, fnType)
	p.ctx.Value(id).Infix = infix
	p.binder.AddValue(id)

	if p.at(token.LBrace) {
		body := p.parseFuncBody(params)
		p.ctx.Value(id).Init = body
	} else {
		p.eat(token.Semicolon)
	}
	return id, kw.Span.Cover(p.lastSpan), true
}

// parseParams := '(' [ident ':' type {',' ident ':' type}] ')'
func (p *Parser) parseParams() ([]param, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after function name"); !ok {
		return nil, false
	}
	var params []param
	if !p.at(token.RParen) {
		for {
			name, sp, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after parameter name"); !ok {
				return nil, false
			}
			ty, ok := p.parseType()
			if !ok {
				return nil, false
			}
			params = append(params, param{name: name, span: sp, ty: ty})
			if !p.eat(token.Comma) {
				break
			}
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return nil, false
	}
	return params, true
}

// parseFuncBody opens the function scope, binds the parameters into it,
// and parses the block. Parameters and body locals share one scope, so a
// body-level redeclaration of a parameter is a redefinition.
func (p *Parser) parseFuncBody(params []param) ast.ExprID {
	open := p.advance() // '{'
	p.binder.PushScope()
	for _, prm := range params {
		id := p.ctx.NewValue(prm.name, prm.span, ast.ValueParam, prm.ty)
		p.binder.AddValue(id)
	}
	p.parseStmtsUntilRBrace(open)
	p.binder.PopScope()
	return p.ctx.NewFuncLit(open.Span.Cover(p.lastSpan))
}
