// Package parser is a recursive-descent front end for the Swift subset.
// It is deliberately thin: declarations are handed to the binder the
// moment they are parsed, the way the semantic layer expects to be driven
// interleaved with parsing rather than over a finished tree.
package parser

import (
	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/lexer"
	"github.com/BluPerf/swift/internal/sema"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/token"
	"github.com/BluPerf/swift/internal/types"
)

type Options struct {
	// MaxErrors stops reporting (not parsing) once reached; 0 = unlimited.
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Unit ast.UnitID
	Bag  *diag.Bag
}

// Parser holds the state for one unit.
type Parser struct {
	lx       *lexer.Lexer
	binder   *sema.Binder
	ctx      *ast.Context
	names    *source.Interner
	ti       *types.Interner
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics at EOF
}

// ParseUnit parses one unit, binding declarations as it goes, and
// finalizes the binder's translation unit at EOF.
func ParseUnit(lx *lexer.Lexer, binder *sema.Binder, opts Options) Result {
	p := Parser{
		lx:       lx,
		binder:   binder,
		ctx:      binder.Context(),
		names:    binder.Names(),
		ti:       binder.Types(),
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	unit := p.parseItems()

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Unit: unit, Bag: bag}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	got := p.lx.Peek().Kind
	for _, k := range kinds {
		if got == k {
			return true
		}
	}
	return false
}

// parseItems is the top-level loop: items until EOF, then finalize.
func (p *Parser) parseItems() ast.UnitID {
	startSpan := p.lx.Peek().Span
	var items []ast.ItemID
	for !p.at(token.EOF) {
		itemID, ok := p.parseItem()
		if !ok {
			p.resyncTop()
			continue
		}
		if itemID.IsValid() {
			items = append(items, itemID)
		}
	}
	unitSpan := startSpan.Cover(p.lx.Peek().Span)
	return p.binder.FinalizeUnit(items, unitSpan)
}

// parseItem dispatches on the first token of a top-level construct.
// A valid empty statement returns (NoItemID, true).
func (p *Parser) parseItem() (ast.ItemID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwVar:
		return p.parseVarItem()
	case token.KwFunc, token.At:
		return p.parseFuncItem()
	case token.KwTypealias:
		return p.parseTypealiasItem()
	case token.Semicolon:
		p.advance()
		return ast.NoItemID, true
	default:
		if p.startsExpr() {
			return p.parseExprItem()
		}
		p.err(diag.SynUnexpectedToken, "unexpected top-level construct")
		return ast.NoItemID, false
	}
}

// resyncTop recovers after a top-level error: skip to ';' or the start of
// the next item, eating the semicolon when that is what stopped us.
func (p *Parser) resyncTop() {
	p.resyncUntil(token.Semicolon, token.KwVar, token.KwFunc, token.KwTypealias, token.At)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func (p *Parser) resyncUntil(stop ...token.Kind) {
	for !p.at(token.EOF) && !p.atAny(stop...) {
		p.advance()
	}
}

// parseIdent expects an identifier and returns its interned name.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		name := tok.Name
		if name == source.NoStringID {
			name = p.names.InternIdent(tok.Text)
		}
		return name, tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.lx.Peek().Text+"\"")
	return source.NoStringID, p.getDiagnosticSpan(), false
}
