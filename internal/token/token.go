// Package token defines the lexical vocabulary shared by the lexer, parser,
// and resolver: token kinds, source positions, and the fixed
// keyword/symbol/meta-tag tables the lexer classifies against.
package token

import "fmt"

// SourceMeta is an immutable source position, shared by reference from
// every AST node that descends from the token it was copied from.
type SourceMeta struct {
	ModuleRef string // absolute path of the owning module
	Line      int
	Column    int
}

func (m SourceMeta) String() string {
	return fmt.Sprintf("%s:%d:%d", m.ModuleRef, m.Line, m.Column)
}

// Token is a single lexeme.
type Token struct {
	Kind Kind
	Text string
	Meta SourceMeta
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%s", t.Kind, t.Text, t.Meta)
}

// IsZero reports whether t is the zero Token, used by AST nodes that may
// be asked for a token before one is available (e.g. a nil receiver).
func (t Token) IsZero() bool {
	return t.Kind == INVALID && t.Text == "" && t.Meta == SourceMeta{}
}

// InterpSpan records one `\{ expr }` interpolation found
// inside a StringToken's decoded text: ByteOffset is the offset of the
// interpolation marker within Token.Text (the decoded string content, not
// the raw source), and Source is the brace-balanced substring between the
// opening marker and its matching closing brace.
type InterpSpan struct {
	ByteOffset int
	Source     string
}

// StringToken specializes Token for string literals that contain one or
// more interpolated expressions. Spans are ordered by ByteOffset.
type StringToken struct {
	Token
	Spans []InterpSpan
}
