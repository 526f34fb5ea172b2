package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"var":       KwVar,
		"func":      KwFunc,
		"typealias": KwTypealias,
		"return":    KwReturn,
		"if":        KwIf,
		"else":      KwElse,
		"while":     KwWhile,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Var", "FUNC", "Typealias", // case matters
		"Int", "Double", "Bool", // type names are plain identifiers
		"identifier", "returned",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
