package modules

import (
	"fmt"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/config"
)

// Compiler is injected by the orchestration layer (internal/pipeline) so
// that Loader never imports internal/resolver directly: the resolver
// needs a Loader to implement its own EXTERNAL_TYPES stage, and the
// Loader needs the resolver to compile a not-yet-seen module, which would
// otherwise be an import cycle. A plain function value breaks it, the way
// the teacher's analyzer/evaluator processors share a *modules.Loader
// through pipeline.PipelineContext rather than importing each other.
type Compiler func(ctx *config.Context, absPath string) (*ast.GlobalScope, error)

// Loader is the ImportHandler (§4.3): it resolves import sources to
// concrete paths, memoizes compiled modules by absolute path in the
// shared Context, and recursively triggers compilation of a not-yet-seen
// path via Compiler.
type Loader struct {
	Ctx      *config.Context
	Compile  Compiler
	inflight map[string]bool
}

func NewLoader(ctx *config.Context, compile Compiler) *Loader {
	return &Loader{Ctx: ctx, Compile: compile, inflight: map[string]bool{}}
}

// Load resolves spec relative to importingDir and returns the target
// module's GlobalScope, compiling it on demand if not already registered.
// A Module is compiled at most once, keyed by absolute path (§4.3).
func (l *Loader) Load(importingDir string, spec PathSpec) (*ast.GlobalScope, error) {
	absPath, ok := Resolve(spec, importingDir, l.Ctx.ImportDirs, l.Ctx.GlobalImportDir)
	if !ok {
		return nil, fmt.Errorf("unresolved import: no source found for %v relative to %s", spec, importingDir)
	}

	if mod, ok := l.Ctx.Lookup(absPath); ok {
		if g, ok := mod.Program.(*ast.GlobalScope); ok {
			return g, nil
		}
		if prog, ok := mod.Program.(*ast.Program); ok {
			return prog.Global, nil
		}
	}

	if l.inflight[absPath] {
		return nil, fmt.Errorf("unresolved import: cyclic import of %s", absPath)
	}
	l.inflight[absPath] = true
	defer delete(l.inflight, absPath)

	global, err := l.Compile(l.Ctx, absPath)
	if err != nil {
		return nil, err
	}
	return global, nil
}

// ResolveTarget implements §4.3's per-import target resolution for the
// `from { a, b, c } from X` shape: it looks up name among target's
// top-level symbols and checks the visibility requirement, returning the
// matching symbol or false.
func ResolveTarget(target *ast.GlobalScope, name string) (ast.Symbol, bool) {
	for _, sym := range target.Scope.Lookup(name) {
		if visibilityAllowsImport(sym) {
			return sym, true
		}
	}
	return nil, false
}

func visibilityAllowsImport(sym ast.Symbol) bool {
	mods := symbolModifiers(sym)
	vis := ast.VisibilityOf(mods)
	return vis == ast.VisPublic || vis == ast.VisProtected || vis == ast.VisDefault
}

func symbolModifiers(sym ast.Symbol) []*ast.Modifier {
	switch s := sym.(type) {
	case *ast.Variable:
		return s.Modifiers
	case *ast.Function:
		return s.Modifiers
	case *ast.Class:
		return s.Modifiers
	case *ast.Struct:
		return s.Modifiers
	case *ast.Template:
		return s.Modifiers
	case *ast.Enum:
		return s.Modifiers
	case *ast.Alias:
		return s.Modifiers
	case *ast.Namespace:
		return s.Modifiers
	default:
		return nil
	}
}
