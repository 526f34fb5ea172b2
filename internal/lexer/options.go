package lexer

import (
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/source"
)

// Options configure a Lexer.
type Options struct {
	// Reporter receives lexical diagnostics. May be nil; bad input is
	// then skipped silently, but lexing always continues either way.
	Reporter diag.Reporter
	// Interner, when set, interns identifier spellings into Token.Name.
	Interner *source.Interner
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
}
