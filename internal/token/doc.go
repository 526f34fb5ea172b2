// Package token defines lexical token kinds and trivia for the swiftc
// front end.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End byte offsets).
//   - Token.Name is interned only for Ident tokens; everything else
//     carries source.NoStringID.
//   - Attributes are lexed as '@' (Kind: At) + Ident; no per-attribute
//     token kinds.
//   - Built-in type names (Int, Double, Bool, ...) are identifiers. They
//     are recognized by the semantic layer, not the lexer.
package token
