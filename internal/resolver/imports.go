package resolver

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/modules"
	"github.com/accelec/accele/internal/token"
)

// runExternalTypes implements §4.4 stage 4 (EXTERNAL_TYPES): the
// ImportHandler resolves and compiles every import reachable from this
// module's GlobalScope (recursively, through the Loader), then
// declaration-position TypeRefs are re-walked with cross-module lookup
// enabled so a same-module TypeRef that named an imported symbol (left
// unbound by stage 1) can now bind.
func (r *Resolver) runExternalTypes() {
	for _, imp := range r.program.Global.Imports {
		r.loadImport(imp)
	}
	r.bindDeclarationTypes(r.program.Statements, r.program.Global.Scope, true)
}

func (r *Resolver) loadImport(imp *ast.Import) {
	if r.Loader == nil {
		return
	}
	var spec modules.PathSpec
	if imp.SourceTok.Kind == token.STRING {
		spec = modules.PathSpec{Literal: imp.Source}
	} else {
		spec = modules.ParseDottedPath(imp.Source)
	}
	global, err := r.Loader.Load(r.moduleDir, spec)
	if err != nil {
		r.report(diagnostics.UNRESOLVED_IMPORT, imp.SourceTok, imp.Source)
		return
	}
	imp.Referent = global
	for _, t := range imp.Targets {
		if _, ok := modules.ResolveTarget(global, t.Tok.Text); !ok {
			r.report(diagnostics.UNRESOLVED_SYMBOL, t.Tok, global.ModuleName, t.Tok.Text)
		}
	}
}
