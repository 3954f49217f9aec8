// Package pipeline composes the Lexer, Parser, and Resolver into the
// staged compilation a driver runs over one module at a time, the way the
// teacher's own internal/pipeline threads a single mutable
// *pipeline.PipelineContext through ParserProcessor/SemanticAnalyzerProcessor.
// Neither of those two types' actual definitions survive anywhere in the
// retrieval pack (only their processor.go call sites do) — this package's
// Context is reconstructed from the field names every processor.go in the
// pack reads or writes (TokenStream, AstRoot, Errors, FilePath, Loader,
// SymbolTable), generalized to this front end's own Lexer/Parser/Resolver
// trio and its single-Diagnoser error model instead of a per-stage Errors
// slice.
package pipeline

import (
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/config"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/lexer"
	"github.com/accelec/accele/internal/modules"
	"github.com/accelec/accele/internal/parser"
	"github.com/accelec/accele/internal/resolver"
	"github.com/accelec/accele/internal/types"
)

// Context threads one module's compilation state through the pipeline's
// stages. A stage whose precondition wasn't met by an earlier stage is a
// no-op rather than a panic (mirrors funxy's ParserProcessor guarding on
// ctx.TokenStream == nil), so a partial run still yields whatever
// diagnostics the stages that did run produced.
type Context struct {
	Ctx      *config.Context
	Diag     *diagnostics.Diagnoser
	Registry *types.Registry
	Loader   *modules.Loader
	Log      *logrus.Entry

	SourceCode string
	FilePath   string // absolute path
	ModuleDir  string

	Lexer    *lexer.Lexer
	Parser   *parser.Parser
	AstRoot  *ast.Program
	Global   *ast.GlobalScope
	Resolver *resolver.Resolver
}

// NewContext builds the initial Context for compiling sourceCode found at
// absPath. Registry, Loader, and Diag are shared across every module
// compiled within one Run so the module table (cfgCtx.Modules) memoizes
// correctly and diagnostics from dependency modules land in one sink.
func NewContext(cfgCtx *config.Context, diag *diagnostics.Diagnoser, loader *modules.Loader, sourceCode, absPath string, log *logrus.Entry) *Context {
	return &Context{
		Ctx:        cfgCtx,
		Diag:       diag,
		Registry:   types.Default(),
		Loader:     loader,
		Log:        log,
		SourceCode: sourceCode,
		FilePath:   absPath,
		ModuleDir:  filepath.Dir(absPath),
	}
}
