package driver

import (
	"github.com/BluPerf/swift/internal/diag"
	"github.com/BluPerf/swift/internal/lexer"
	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/token"
)

// TokenizeResult carries the token stream of one file, for tooling that
// wants tokens without a parse.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize lexes a single file to EOF. Lexical problems land in the bag;
// the token stream is always complete.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter: diag.BagReporter{Bag: bag},
	})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
