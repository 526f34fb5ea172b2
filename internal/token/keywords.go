package token

var keywords = map[string]Kind{
	"var":       KwVar,
	"func":      KwFunc,
	"typealias": KwTypealias,
	"return":    KwReturn,
	"if":        KwIf,
	"else":      KwElse,
	"while":     KwWhile,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
// Keywords are case sensitive; only the lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
