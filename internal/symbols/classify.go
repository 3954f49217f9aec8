package symbols

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/types"
)

// kindOf maps a declared Symbol to the TargetKind a SearchCriteria filters
// on. Variables, parameters, functions, constructors, and enum cases are
// all VARIABLE-category per §4.4.1 (they resolve to a value at the
// reference site); types and aliases are TYPE; namespaces and whole-module
// import aliases are NAMESPACE (both are purely dotted-access bases with no
// value type of their own).
func kindOf(sym ast.Symbol) (TargetKind, bool) {
	switch sym.(type) {
	case *ast.Variable, *ast.Parameter, *ast.Function, *ast.Constructor, *ast.EnumCase:
		return TargetVariable, true
	case *ast.Class, *ast.Struct, *ast.Template, *ast.Enum, *ast.Alias, *ast.GenericType:
		return TargetType, true
	case *ast.Namespace, *ast.Import:
		return TargetNamespace, true
	default:
		return 0, false
	}
}

// parentScopesOf returns the scopes of scope's owner's resolved parent
// types, for the §4.4.1 step-2 TYPE_HIERARCHY recursion. Nominal.Decl is
// an opaque handle set by the resolver to the declaring ast.TypeDecl; this
// package type-asserts it back since it already depends on both ast and
// types (types cannot import ast, which itself imports types).
func parentScopesOf(scope *ast.Scope) []*ast.Scope {
	td, ok := scope.Owner.(ast.TypeDecl)
	if !ok {
		return nil
	}
	self := td.ResolvedSelf()
	if self == nil {
		return nil
	}
	var out []*ast.Scope
	for _, p := range self.Parents {
		nom, ok := p.(*types.Nominal)
		if !ok {
			continue
		}
		parentDecl, ok := nom.Decl.(ast.TypeDecl)
		if !ok {
			continue
		}
		out = append(out, parentDecl.OwnedScope())
	}
	return out
}
