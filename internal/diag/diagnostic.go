package diag

import (
	"github.com/BluPerf/swift/internal/source"
)

// Note is a secondary location attached to a diagnostic, e.g. the prior
// declaration a redefinition conflicts with.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one finding produced by a pipeline phase. It is plain data;
// rendering lives in internal/diagfmt.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

// New constructs a diagnostic without notes.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError is New with SevError.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// WithNote returns a copy of d with one more note attached.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}
