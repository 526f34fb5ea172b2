package parser

import (
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/token"
)

// parseBlock := '{' stmts '}', bracketing a fresh scope.
func (p *Parser) parseBlock() bool {
	open, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{'")
	if !ok {
		return false
	}
	p.binder.PushScope()
	p.parseStmtsUntilRBrace(open)
	p.binder.PopScope()
	return true
}

func (p *Parser) parseStmtsUntilRBrace(open token.Token) {
	for !p.at(token.RBrace) {
		if p.at(token.EOF) {
			p.report(diag.SynUnclosedBrace, diag.SevError, open.Span, "unclosed '{'")
			return
		}
		if !p.parseStmt() {
			p.resyncStmt()
		}
	}
	p.advance() // '}'
}

func (p *Parser) parseStmt() bool {
	switch p.lx.Peek().Kind {
	case token.KwVar:
		_, _, ok := p.parseVarDecl()
		return ok
	case token.KwTypealias:
		_, _, ok := p.parseTypealias()
		return ok
	case token.KwFunc, token.At:
		// nested funcs bind like any other local value
		infix := p.parseAttributes()
		if !p.at(token.KwFunc) {
			p.err(diag.SynUnexpectedToken, "expected 'func' after attributes")
			return false
		}
		_, _, ok := p.parseFuncDecl(infix)
		return ok
	case token.KwReturn:
		return p.parseReturn()
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		p.advance()
		return true
	default:
		if p.startsExpr() {
			_, ok := p.parseExpr()
			p.eat(token.Semicolon)
			return ok
		}
		p.err(diag.SynUnexpectedToken, "unexpected token in block")
		return false
	}
}

// parseReturn := 'return' [expr] ';'?
func (p *Parser) parseReturn() bool {
	p.advance() // 'return'
	if p.startsExpr() {
		if _, ok := p.parseExpr(); !ok {
			return false
		}
	}
	p.eat(token.Semicolon)
	return true
}

// parseIf := 'if' expr block ['else' (if | block)]
func (p *Parser) parseIf() bool {
	p.advance() // 'if'
	if _, ok := p.parseExpr(); !ok {
		return false
	}
	if !p.parseBlock() {
		return false
	}
	if p.eat(token.KwElse) {
		if p.at(token.KwIf) {
			return p.parseIf()
		}
		return p.parseBlock()
	}
	return true
}

// parseWhile := 'while' expr block
func (p *Parser) parseWhile() bool {
	p.advance() // 'while'
	if _, ok := p.parseExpr(); !ok {
		return false
	}
	return p.parseBlock()
}

// resyncStmt recovers inside a block: skip to ';', '}' or the start of
// the next statement.
func (p *Parser) resyncStmt() {
	p.resyncUntil(
		token.Semicolon, token.RBrace, token.KwVar, token.KwFunc,
		token.KwTypealias, token.KwReturn, token.KwIf, token.KwWhile,
		token.At,
	)
	if p.at(token.Semicolon) {
		p.advance()
	}
}
