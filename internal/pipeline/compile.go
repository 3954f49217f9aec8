package pipeline

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/config"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/modules"
	"github.com/accelec/accele/internal/resolver"
)

// Run holds everything shared across every module compiled within one
// invocation: the module table (via Ctx), the ImportHandler, and the
// diagnostic sink every stage reports into. One Run backs one `accelec
// build` invocation — cmd/accelec constructs exactly one per run, the way
// the teacher's cmd/funxy builds one *pipeline.PipelineContext per file
// but shares one *modules.Loader across everything an entry module pulls
// in (see internal/analyzer/processor.go's loader construction).
type Run struct {
	Ctx    *config.Context
	Diag   *diagnostics.Diagnoser
	Loader *modules.Loader
}

// NewRun wires a Loader whose Compiler callback recurses back into this
// same Run, the indirection internal/modules/loader.go documents: Loader
// cannot import this package directly (pipeline already imports modules),
// so the callback is handed in as a plain function value instead.
func NewRun(cfgCtx *config.Context, diag *diagnostics.Diagnoser) *Run {
	run := &Run{Ctx: cfgCtx, Diag: diag}
	run.Loader = modules.NewLoader(cfgCtx, run.compileDependency)
	return run
}

// CompileEntry compiles absPath as the module under direct compilation:
// every stage runs, all the way to RESOLVED.
func (run *Run) CompileEntry(absPath string) (*ast.Program, error) {
	return run.compile(absPath, resolver.Resolved)
}

// compileDependency is the modules.Compiler callback the Loader invokes
// the first time an import resolves to a not-yet-seen path. A dependency
// is resolved only to INTERNAL_ALL: §4.3's recursion rule reserves
// cross-module (EXTERNAL_*) resolution for the module actually under
// direct compilation, so a diamond or cyclic import graph can't recurse
// into itself chasing EXTERNAL_* resolution through every module it pulls in.
func (run *Run) compileDependency(cfgCtx *config.Context, absPath string) (*ast.GlobalScope, error) {
	prog, err := run.compile(absPath, resolver.InternalAll)
	if err != nil {
		return nil, err
	}
	return prog.Global, nil
}

func (run *Run) compile(absPath string, target resolver.Stage) (*ast.Program, error) {
	source, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("pipeline: reading %s: %w", absPath, err)
	}

	log := logrus.NewEntry(run.Ctx.Logger).WithField("module", absPath)
	ctx := NewContext(run.Ctx, run.Diag, run.Loader, string(source), absPath, log)

	pl := New(&LexProcessor{}, &ParseProcessor{}, &ResolveProcessor{TargetStage: target})
	ctx = pl.Run(ctx)

	reached := resolver.Unresolved
	if ctx.Resolver != nil {
		reached = ctx.Resolver.Stage()
	}
	run.Ctx.RegisterModule(&config.Module{AbsPath: absPath, Program: ctx.AstRoot, Stage: int(reached)})
	return ctx.AstRoot, nil
}
