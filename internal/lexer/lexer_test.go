package lexer_test

import (
	"testing"

	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/lexer"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/token"
)

func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.swift", []byte(input))

	bag := diag.NewBag(0)
	lx := lexer.New(fs.Get(fileID), lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
		Interner: source.NewInterner(),
	})
	return lx, bag
}

func collectKinds(lx *lexer.Lexer) []token.Kind {
	var kinds []token.Kind
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return kinds
		}
		kinds = append(kinds, tok.Kind)
	}
}

func sameKinds(a, b []token.Kind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestKeywordsAndIdents(t *testing.T) {
	lx, bag := makeTestLexer("var x typealias Foo func while")
	want := []token.Kind{
		token.KwVar, token.Ident, token.KwTypealias, token.Ident,
		token.KwFunc, token.KwWhile,
	}
	if got := collectKinds(lx); !sameKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestVarDeclTokenStream(t *testing.T) {
	lx, bag := makeTestLexer("var x : Int = 4;")
	want := []token.Kind{
		token.KwVar, token.Ident, token.Colon, token.Ident,
		token.Assign, token.IntLit, token.Semicolon,
	}
	if got := collectKinds(lx); !sameKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestOperatorGreediness(t *testing.T) {
	lx, _ := makeTestLexer("-> - > == = < <= && & ! !=")
	want := []token.Kind{
		token.Arrow, token.Minus, token.Gt, token.EqEq, token.Assign,
		token.Lt, token.LtEq, token.AndAnd, token.Amp, token.Bang,
		token.BangEq,
	}
	if got := collectKinds(lx); !sameKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestAttributeTokens(t *testing.T) {
	lx, _ := makeTestLexer("@infix(100) func + ()")
	want := []token.Kind{
		token.At, token.Ident, token.LParen, token.IntLit, token.RParen,
		token.KwFunc, token.Plus, token.LParen, token.RParen,
	}
	if got := collectKinds(lx); !sameKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestNumbers(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"0", token.IntLit},
		{"123", token.IntLit},
		{"1_000", token.IntLit},
		{"0xFF", token.IntLit},
		{"1.0", token.FloatLit},
		{"1.", token.FloatLit},
		{".5", token.FloatLit},
		{"1e-3", token.FloatLit},
		{"2.5e+10", token.FloatLit},
	}
	for _, c := range cases {
		lx, bag := makeTestLexer(c.input)
		tok := lx.Next()
		if tok.Kind != c.kind {
			t.Errorf("%q: kind = %v, want %v", c.input, tok.Kind, c.kind)
		}
		if tok.Text != c.input {
			t.Errorf("%q: text = %q", c.input, tok.Text)
		}
		if bag.Len() != 0 {
			t.Errorf("%q: unexpected diagnostics: %+v", c.input, bag.Items())
		}
	}
}

func TestBadExponent(t *testing.T) {
	lx, bag := makeTestLexer("1e+")
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", tok.Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexBadNumber {
		t.Errorf("diagnostics = %+v, want one LexBadNumber", bag.Items())
	}
}

func TestMemberAccessKeepsDot(t *testing.T) {
	lx, _ := makeTestLexer("1.foo")
	want := []token.Kind{token.IntLit, token.Dot, token.Ident}
	if got := collectKinds(lx); !sameKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
}

func TestStringsAndChars(t *testing.T) {
	lx, bag := makeTestLexer(`"hello" "esc\n\"q\"" 'a' '\n'`)
	want := []token.Kind{
		token.StringLit, token.StringLit, token.CharLit, token.CharLit,
	}
	if got := collectKinds(lx); !sameKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestUnterminatedString(t *testing.T) {
	lx, bag := makeTestLexer(`"oops`)
	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Errorf("kind = %v, want Invalid", tok.Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("diagnostics = %+v, want one LexUnterminatedString", bag.Items())
	}
	if lx.Next().Kind != token.EOF {
		t.Error("lexer did not reach EOF after the error")
	}
}

func TestUnknownCharSkipped(t *testing.T) {
	lx, bag := makeTestLexer("a ` b")
	want := []token.Kind{token.Ident, token.Invalid, token.Ident}
	if got := collectKinds(lx); !sameKinds(got, want) {
		t.Errorf("kinds = %v, want %v", got, want)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Errorf("diagnostics = %+v, want one LexUnknownChar", bag.Items())
	}
}

func TestSpansMatchText(t *testing.T) {
	input := "var foo = 42"
	lx, _ := makeTestLexer(input)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		if got := input[tok.Span.Start:tok.Span.End]; got != tok.Text {
			t.Errorf("span slice %q != text %q", got, tok.Text)
		}
	}
}

func TestLeadingTrivia(t *testing.T) {
	lx, _ := makeTestLexer("  // note\nvar")
	tok := lx.Next()
	if tok.Kind != token.KwVar {
		t.Fatalf("kind = %v, want KwVar", tok.Kind)
	}
	if len(tok.Leading) != 3 {
		t.Fatalf("leading trivia count = %d, want 3: %+v", len(tok.Leading), tok.Leading)
	}
	wantKinds := []token.TriviaKind{
		token.TriviaSpace, token.TriviaLineComment, token.TriviaNewline,
	}
	for i, k := range wantKinds {
		if tok.Leading[i].Kind != k {
			t.Errorf("trivia[%d].Kind = %v, want %v", i, tok.Leading[i].Kind, k)
		}
	}
}

func TestNestedBlockComment(t *testing.T) {
	lx, bag := makeTestLexer("/* a /* b */ c */ x")
	tok := lx.Next()
	if tok.Kind != token.Ident || tok.Text != "x" {
		t.Fatalf("token after comment = %v %q", tok.Kind, tok.Text)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %+v", bag.Items())
	}
}

func TestUnterminatedBlockComment(t *testing.T) {
	lx, bag := makeTestLexer("/* never closed")
	if tok := lx.Next(); tok.Kind != token.EOF {
		t.Errorf("kind = %v, want EOF", tok.Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedComment {
		t.Errorf("diagnostics = %+v, want one LexUnterminatedComment", bag.Items())
	}
}

func TestIdentInterning(t *testing.T) {
	// Composed and decomposed spellings of the same identifier intern
	// to the same name.
	lx, _ := makeTestLexer("café café")
	a := lx.Next()
	b := lx.Next()
	if a.Kind != token.Ident || b.Kind != token.Ident {
		t.Fatalf("kinds = %v %v, want Ident Ident", a.Kind, b.Kind)
	}
	if a.Name == source.NoStringID {
		t.Fatal("identifier not interned")
	}
	if a.Name != b.Name {
		t.Errorf("NFC-equal identifiers got different names: %d vs %d", a.Name, b.Name)
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	lx, _ := makeTestLexer("var x")
	if got := lx.Peek().Kind; got != token.KwVar {
		t.Fatalf("Peek = %v, want KwVar", got)
	}
	if got := lx.Next().Kind; got != token.KwVar {
		t.Fatalf("Next after Peek = %v, want KwVar", got)
	}
	if got := lx.Next().Kind; got != token.Ident {
		t.Fatalf("second Next = %v, want Ident", got)
	}
}

func TestEOFIsSticky(t *testing.T) {
	lx, _ := makeTestLexer("")
	for i := 0; i < 3; i++ {
		if got := lx.Next().Kind; got != token.EOF {
			t.Fatalf("Next #%d = %v, want EOF", i, got)
		}
	}
}
