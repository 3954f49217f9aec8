package lexer

import "github.com/accelec/accele/internal/token"

// splits lists, for each splittable composite symbol kind, the text
// pieces it decomposes into (§4.1.1). Only kinds the parser actually
// requests a relex for are listed.
var splits = map[token.Kind][]string{
	token.RSHIFT:        {">", ">"},
	token.RSHIFT_ASSIGN:  {">", ">="},
	token.GE:             {">", "="},
	token.LSHIFT:        {"<", "<"},
	token.LSHIFT_ASSIGN:  {"<", "<="},
	token.LE:             {"<", "="},
	token.QUESTION_QUESTION: {"?", "?"},
	token.QUESTION_DOT:   {"?", "."},
	token.STAR_STAR:      {"*", "*"},
	token.STAR_ASSIGN:    {"*", "="},
	token.POWER_ASSIGN:   {"*", "*="},
	token.DOT_DOT_DOT:    {".", ".."},
	token.DOT_DOT:        {".", "."},
}

// Relex splits one token into an ordered sequence of shorter tokens whose
// concatenated text equals t.Text (Testable Property 3), used by the
// parser when a context needs finer granularity than the lexer produced
// (closing `>` out of `>>`, `?` out of `??`, etc). Tokens not in the split
// table are returned unchanged as a single-element slice.
func Relex(t token.Token) []token.Token {
	pieces, ok := splits[t.Kind]
	if !ok {
		return []token.Token{t}
	}
	out := make([]token.Token, 0, len(pieces))
	col := t.Meta.Column
	for _, text := range pieces {
		kind, ok := token.Symbols[text]
		if !ok {
			kind = token.INVALID
		}
		out = append(out, token.Token{
			Kind: kind,
			Text: text,
			Meta: token.SourceMeta{ModuleRef: t.Meta.ModuleRef, Line: t.Meta.Line, Column: col},
		})
		col += len(text)
	}
	return out
}
