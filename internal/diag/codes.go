package diag

import "fmt"

// Code is a compact numeric diagnostic identifier. Codes are grouped into
// thousand-ranges per phase; the ranges are part of the stable output format.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000-1999)
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedChar    Code = 1003
	LexBadNumber           Code = 1004
	LexBadEscape           Code = 1005
	LexUnterminatedComment Code = 1006

	// Syntax (2000-2999)
	SynUnexpectedToken  Code = 2001
	SynExpectIdentifier Code = 2002
	SynExpectType       Code = 2003
	SynExpectExpression Code = 2004
	SynUnclosedBrace    Code = 2005
	SynUnclosedParen    Code = 2006
	SynBadAttribute     Code = 2007
	SynExpectEquals     Code = 2008

	// Semantic (3000-3999)
	SemaValueRedefinition    Code = 3001
	SemaOverloadIncompatible Code = 3002
	SemaTypeRedefinition     Code = 3003
	SemaTopLevelTypeMissing  Code = 3004
	SemaUnresolvedType       Code = 3005

	// Driver and file IO (4000-4999)
	IOReadFailed Code = 4001
	IONoInputs   Code = 4002

	// Project manifest (5000-5999)
	ProjBadManifest Code = 5001
	ProjUnknownKey  Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexUnknownChar:         "unknown character",
	LexUnterminatedString:  "unterminated string literal",
	LexUnterminatedChar:    "unterminated character literal",
	LexBadNumber:           "malformed numeric literal",
	LexBadEscape:           "invalid escape sequence",
	LexUnterminatedComment: "unterminated block comment",

	SynUnexpectedToken:  "unexpected token",
	SynExpectIdentifier: "identifier expected",
	SynExpectType:       "type expected",
	SynExpectExpression: "expression expected",
	SynUnclosedBrace:    "unclosed brace",
	SynUnclosedParen:    "unclosed parenthesis",
	SynBadAttribute:     "malformed attribute",
	SynExpectEquals:     "'=' expected",

	SemaValueRedefinition:    "value redefinition in the same scope",
	SemaOverloadIncompatible: "incompatible declaration in overload set",
	SemaTypeRedefinition:     "type redefinition in the same scope",
	SemaTopLevelTypeMissing:  "top-level declaration without a type specifier",
	SemaUnresolvedType:       "use of undeclared type",

	IOReadFailed: "cannot read source file",
	IONoInputs:   "no input files",

	ProjBadManifest: "malformed project manifest",
	ProjUnknownKey:  "unknown manifest key",
}

// ID renders the stable short form, e.g. SEM3001.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
