package pipeline

import "github.com/accelec/accele/internal/lexer"

// LexProcessor wires a Lexer over ctx.SourceCode. Unlike funxy's own
// LexProcessor, it never materializes an upfront token slice: the
// Parser's look-ahead buffer pulls tokens from the Lexer lazily (§4.2),
// so this stage's only job is construction.
type LexProcessor struct{}

func (lp *LexProcessor) Process(ctx *Context) *Context {
	ctx.Lexer = lexer.New(ctx.FilePath, ctx.SourceCode, ctx.Diag, ctx.Log)
	return ctx
}
