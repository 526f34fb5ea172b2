package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BluPerf/swift/internal/source"
	"github.com/BluPerf/swift/internal/token"
)

// TokenOutput is one token in the JSON token dump.
type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Span    source.Span `json:"span"`
	Leading []string    `json:"leading,omitempty"`
}

// FormatTokensPretty writes one line per token with its position and any
// leading trivia. Stops after EOF.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)

		fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)

		if len(tok.Leading) > 0 {
			kinds := make([]string, len(tok.Leading))
			for j, tr := range tok.Leading {
				kinds[j] = tr.Kind.String()
			}
			fmt.Fprintf(w, " (leading: %s)", strings.Join(kinds, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		entry := TokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
		}
		for _, tr := range tok.Leading {
			entry.Leading = append(entry.Leading, tr.Kind.String())
		}
		out = append(out, entry)

		if tok.Kind == token.EOF {
			break
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
