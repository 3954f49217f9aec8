package pipeline

import (
	"path/filepath"
	"strings"

	"github.com/accelec/accele/internal/config"
	"github.com/accelec/accele/internal/parser"
)

// ParseProcessor runs the Parser to completion, filling AstRoot and
// Global — mirrors funxy's ParserProcessor, generalized to attribute the
// parse to a GlobalScope rather than stamping a package name onto a flat
// *ast.Program after the fact.
type ParseProcessor struct{}

func (pp *ParseProcessor) Process(ctx *Context) *Context {
	if ctx.Lexer == nil {
		return ctx
	}
	p := parser.New(ctx.Lexer, ctx.Diag, ctx.Log, moduleNameOf(ctx.FilePath), ctx.FilePath)
	ctx.Parser = p
	ctx.AstRoot = p.ParseProgram()
	ctx.Global = p.Global()
	return ctx
}

// moduleNameOf derives a module's symbolic name from its file path: the
// base name with the source/header extension stripped.
func moduleNameOf(absPath string) string {
	base := filepath.Base(absPath)
	base = strings.TrimSuffix(base, config.SourceExt)
	base = strings.TrimSuffix(base, config.HeaderExt)
	return base
}
