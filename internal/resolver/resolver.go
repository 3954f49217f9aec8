package resolver

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/config"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/modules"
	"github.com/accelec/accele/internal/symbols"
	"github.com/accelec/accele/internal/types"
)

// Resolver drives one Ast (one Program/GlobalScope pair) through §4.4.5's
// state machine. A Resolver is cheap to construct and is not reused
// across programs — the CurrentModuleDir and symbol stack are per-module
// state, the way the teacher constructs a fresh *analyzer.Analyzer per
// compiled module and shares only the Loader and SymbolTable underneath.
type Resolver struct {
	Ctx      *config.Context
	Diag     *diagnostics.Diagnoser
	Registry *types.Registry
	Loader   *modules.Loader
	Table    symbols.Table

	program       *ast.Program
	stage         Stage
	moduleDir     string
	resolvingSyms []ast.Symbol // §4.4.6's symbol stack
}

// New builds a Resolver for program, rooted at moduleDir (the directory
// containing program's source file, used by the ImportHandler for
// relative import resolution).
func New(ctx *config.Context, diag *diagnostics.Diagnoser, registry *types.Registry, loader *modules.Loader, program *ast.Program, moduleDir string) *Resolver {
	r := &Resolver{
		Ctx:       ctx,
		Diag:      diag,
		Registry:  registry,
		Loader:    loader,
		program:   program,
		stage:     Unresolved,
		moduleDir: moduleDir,
	}
	r.Table.ProbeBuiltin = r.probeBuiltin
	return r
}

func (r *Resolver) Stage() Stage { return r.stage }

// probeBuiltin implements §4.4.1 step 5: the invariant type table lookup,
// consulted only when the module hasn't shadowed the name and NoBuiltins
// is unset.
func (r *Resolver) probeBuiltin(name string) ast.Symbol {
	if r.Ctx != nil && r.Ctx.NoBuiltins {
		return nil
	}
	_, ok := r.Registry.Lookup(name)
	if !ok {
		return nil
	}
	return nil // invariant types have no ast.Symbol; callers bind via r.Registry directly
}

// RunToStage advances the resolver one stage at a time until target is
// reached or exceeded. Each call to advance() performs exactly one stage
// per §4.4.5; RunToStage is the convenience loop most callers want.
func (r *Resolver) RunToStage(target Stage) {
	for r.stage < target {
		r.advance()
	}
}

// Run drives the resolver all the way to RESOLVED. The pipeline's
// ResolveProcessor calls RunToStage with its own target stage instead.
// Imports stop short at INTERNAL_ALL per §4.3's recursion
// rule; that distinction is enforced by the Loader's Compiler callback,
// not by this method.
func (r *Resolver) Run() {
	r.RunToStage(Resolved)
}

// advance performs exactly one stage transition, per §4.4.5's invariant
// that a single resolve() call advances exactly one stage.
func (r *Resolver) advance() {
	switch r.stage {
	case Unresolved:
		r.runInternalTypes()
		r.stage = InternalTypes
	case InternalTypes:
		r.runInternalNonRecursive()
		r.stage = InternalNonRecursive
	case InternalNonRecursive:
		r.runInternalAll()
		r.stage = InternalAll
	case InternalAll:
		r.runExternalTypes()
		r.stage = ExternalTypes
	case ExternalTypes:
		r.runExternalNonRecursive()
		r.stage = ExternalNonRecursive
	case ExternalNonRecursive:
		r.stage = Resolved
	case Resolved:
		// Idempotent resolution (Testable Property 9): no-op.
	}
}

func (r *Resolver) pushSymbol(sym ast.Symbol) (popped bool) {
	for _, s := range r.resolvingSyms {
		if s == sym {
			return false
		}
	}
	r.resolvingSyms = append(r.resolvingSyms, sym)
	return true
}

func (r *Resolver) popSymbol() {
	r.resolvingSyms = r.resolvingSyms[:len(r.resolvingSyms)-1]
}

// onStack reports whether sym is already being resolved, the trigger for
// §4.4.6's recursive-resolution signal.
func (r *Resolver) onStack(sym ast.Symbol) bool {
	for _, s := range r.resolvingSyms {
		if s == sym {
			return true
		}
	}
	return false
}
