package parser

import (
	"github.com/BluPerf/swift/internal/ast"
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/token"
	"github.com/BluPerf/swift/internal/types"
)

// parseType := atom [ '->' type ]
//
// Named types resolve through the binder; a name with no visible
// declaration fabricates a pending placeholder rather than failing, so
// forward references parse clean.
func (p *Parser) parseType() (types.TypeID, bool) {
	first, params, ok := p.parseTypeAtom()
	if !ok {
		return first, false
	}
	if p.eat(token.Arrow) {
		result, ok := p.parseType() // right associative
		if !ok {
			return result, false
		}
		return p.ti.RegisterFn(params, result), true
	}
	return first, true
}

// parseTypeAtom returns the atom's type together with the parameter list
// it denotes when followed by '->'.
func (p *Parser) parseTypeAtom() (types.TypeID, []types.TypeID, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		name, sp, _ := p.parseIdent()
		alias := p.binder.LookupOrCreateType(name, sp)
		ty := p.aliasType(alias, name)
		return ty, []types.TypeID{ty}, true

	case token.LParen:
		p.advance()
		var elems []types.TypeID
		if !p.at(token.RParen) {
			for {
				t, ok := p.parseType()
				if !ok {
					return t, nil, false
				}
				elems = append(elems, t)
				if !p.eat(token.Comma) {
					break
				}
			}
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' in type"); !ok {
			return p.ti.Builtins().Invalid, nil, false
		}
		// (T) is grouping, not a 1-tuple
		if len(elems) == 1 {
			return elems[0], elems, true
		}
		return p.ti.RegisterTuple(elems), elems, true

	default:
		p.err(diag.SynExpectType, "expected type")
		return p.ti.Builtins().Invalid, nil, false
	}
}

// aliasType maps a bound alias to the type annotations carry: the
// underlying type once resolved, a named alias type while pending.
func (p *Parser) aliasType(alias ast.AliasID, name source.StringID) types.TypeID {
	d := p.ctx.Alias(alias)
	if d.IsResolved() && d.Underlying != types.NoTypeID {
		return d.Underlying
	}
	return p.ti.RegisterAlias(name)
}
