package resolver

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/types"
)

// runInternalTypes implements §4.4 stage 1: it first stubs a Nominal for
// every type declaration reachable from the current module (so mutually
// referencing parent types can find each other regardless of declaration
// order), then binds every declaration-position TypeRef — parent types,
// parameter/return types, alias targets — consulting only same-module
// scopes.
func (r *Resolver) runInternalTypes() {
	r.declareNominals(r.program.Statements)
	r.bindDeclarationTypes(r.program.Statements, r.program.Global.Scope, false)
	r.checkDuplicateSymbols(r.program.Global.Scope)
	r.checkDuplicateSymbolsIn(r.program.Statements)
}

func (r *Resolver) declareNominals(stmts []ast.Statement) {
	for _, st := range stmts {
		switch d := st.(type) {
		case *ast.Class:
			r.stubNominal(d, types.NominalClass)
			r.declareNominals(d.Members)
		case *ast.Struct:
			r.stubNominal(d, types.NominalStruct)
			r.declareNominals(d.Members)
		case *ast.Template:
			r.stubNominal(d, types.NominalTemplate)
			r.declareNominals(d.Members)
		case *ast.Enum:
			r.stubNominal(d, types.NominalEnum)
			r.declareNominals(d.Members)
		case *ast.Namespace:
			r.declareNominals(d.Members)
		}
	}
}

func (r *Resolver) stubNominal(decl ast.TypeDecl, kind types.NominalKind) {
	if decl.ResolvedSelf() != nil {
		return
	}
	decl.SetResolvedSelf(&types.Nominal{Name: decl.SymbolName(), Kind: kind, Decl: decl})
}

// bindDeclarationTypes walks stmts (which live in scope) binding every
// declaration TypeRef. allowExternal is false for stage 1 and true once
// the ImportHandler has run (stage 4).
func (r *Resolver) bindDeclarationTypes(stmts []ast.Statement, scope *ast.Scope, allowExternal bool) {
	for _, st := range stmts {
		switch d := st.(type) {
		case *ast.Variable:
			if d.TypeAnnotation != nil {
				r.resolveTypeRef(d.TypeAnnotation, scope, allowExternal)
			}
		case *ast.Function:
			for _, g := range d.Generics {
				if g.Bound != nil {
					r.resolveTypeRef(g.Bound, scope, allowExternal)
				}
			}
			declScope := d.Scope
			if declScope == nil {
				declScope = scope
			}
			for _, p := range d.Params {
				if p.TypeAnnotation != nil {
					r.resolveTypeRef(p.TypeAnnotation, declScope, allowExternal)
				}
			}
			if d.ReturnType != nil {
				r.resolveTypeRef(d.ReturnType, declScope, allowExternal)
			}
		case *ast.Constructor:
			declScope := d.Scope
			if declScope == nil {
				declScope = scope
			}
			for _, p := range d.Params {
				if p.TypeAnnotation != nil {
					r.resolveTypeRef(p.TypeAnnotation, declScope, allowExternal)
				}
			}
		case *ast.Alias:
			r.resolveTypeRef(d.Target, scope, allowExternal)
		case *ast.Class:
			r.bindTypeDecl(d, scope, allowExternal)
			r.bindDeclarationTypes(d.Members, d.Scope, allowExternal)
		case *ast.Struct:
			r.bindTypeDecl(d, scope, allowExternal)
			r.bindDeclarationTypes(d.Members, d.Scope, allowExternal)
		case *ast.Template:
			r.bindTypeDecl(d, scope, allowExternal)
			r.bindDeclarationTypes(d.Members, d.Scope, allowExternal)
		case *ast.Enum:
			r.bindTypeDecl(d, scope, allowExternal)
			for _, c := range d.Cases {
				for _, a := range c.Associated {
					r.resolveTypeRef(a, d.Scope, allowExternal)
				}
			}
			r.bindDeclarationTypes(d.Members, d.Scope, allowExternal)
		case *ast.Namespace:
			r.bindDeclarationTypes(d.Members, d.Scope, allowExternal)
		case *ast.Import:
			r.checkDuplicateImportTargets(d)
		}
	}
}

func (r *Resolver) bindTypeDecl(decl ast.TypeDecl, scope *ast.Scope, allowExternal bool) {
	for _, g := range decl.TypeGenerics() {
		if g.Bound != nil {
			r.resolveTypeRef(g.Bound, scope, allowExternal)
		}
	}
	declaredParents := decl.TypeParents()
	parents := make([]types.Type, 0, len(declaredParents))
	for _, p := range declaredParents {
		r.resolveTypeRef(p, scope, allowExternal)
		if p.GetActualType() != nil {
			parents = append(parents, p.GetActualType())
		}
	}
	if self := decl.ResolvedSelf(); self != nil && len(parents) == len(declaredParents) {
		self.Parents = parents
	}
}

func (r *Resolver) checkDuplicateImportTargets(imp *ast.Import) {
	seen := map[string]bool{}
	for _, t := range imp.Targets {
		name := t.Tok.Text
		if seen[name] {
			r.report(diagnostics.DUPLICATE_IMPORT, t.Tok, imp.SymbolName())
			continue
		}
		seen[name] = true
	}
}

// checkDuplicateSymbolsIn recurses into every nested declaration scope
// (type bodies, namespaces) so checkDuplicateSymbols also covers members,
// not just the module's top level.
func (r *Resolver) checkDuplicateSymbolsIn(stmts []ast.Statement) {
	for _, st := range stmts {
		switch d := st.(type) {
		case *ast.Class:
			r.checkDuplicateSymbols(d.Scope)
			r.checkDuplicateSymbolsIn(d.Members)
		case *ast.Struct:
			r.checkDuplicateSymbols(d.Scope)
			r.checkDuplicateSymbolsIn(d.Members)
		case *ast.Template:
			r.checkDuplicateSymbols(d.Scope)
			r.checkDuplicateSymbolsIn(d.Members)
		case *ast.Enum:
			r.checkDuplicateSymbols(d.Scope)
			r.checkDuplicateSymbolsIn(d.Members)
		case *ast.Namespace:
			r.checkDuplicateSymbols(d.Scope)
			r.checkDuplicateSymbolsIn(d.Members)
		}
	}
}

// checkDuplicateSymbols reports DUPLICATE_SYMBOL (§7: "fatal to a single
// declaration but not the compilation") for any name bound to more than
// one declaration directly in scope, unless every symbol under that name
// is an *ast.Function — functions alone are allowed to share a name since
// §4.4.4's overload resolution disambiguates them by call-site argument
// types. The duplicate stays reachable through Scope.Lookup (removing it
// would break overload-candidate enumeration for the legitimate case);
// only the diagnostic marks it as rejected.
func (r *Resolver) checkDuplicateSymbols(scope *ast.Scope) {
	if scope == nil {
		return
	}
	checked := map[string]bool{}
	for _, sym := range scope.Symbols() {
		name := sym.SymbolName()
		if checked[name] {
			continue
		}
		checked[name] = true
		group := scope.Lookup(name)
		if len(group) < 2 {
			continue
		}
		allFunctions := true
		for _, g := range group {
			if _, ok := g.(*ast.Function); !ok {
				allFunctions = false
				break
			}
		}
		if allFunctions {
			continue
		}
		for _, g := range group[1:] {
			r.report(diagnostics.DUPLICATE_SYMBOL, g.GetToken(), name)
		}
	}
}
