package symbols

import "github.com/accelec/accele/internal/ast"

// Table exposes resolve_symbol (§4.4.1) over a Scope tree. Its only state
// is the optional ProbeBuiltin hook; the resolver sets that hook on its
// own Table value and calls Lookup through it.
type Table struct {
	// ProbeBuiltin is consulted by step 5 when Recursive && targets
	// includes TYPE: it should return the invariant type's declaring
	// symbol, or nil if name is not a built-in. Left nil, step 5 is a
	// no-op (the caller may instead resolve the name through the
	// registry directly once no scope candidate is found).
	ProbeBuiltin func(name string) ast.Symbol
}

// Lookup performs resolve_symbol: starting at scope, collect every
// visible candidate matching name under crit, in the order the algorithm
// specifies (own scope, then type-hierarchy parents, then lexical parent,
// then imports, then the builtin probe).
func (t Table) Lookup(scope *ast.Scope, name string, crit Criteria) []Candidate {
	var out []Candidate
	seen := map[ast.Symbol]bool{}
	add := func(in *ast.Scope, syms []ast.Symbol, origin ast.Origin) {
		for _, s := range syms {
			k, ok := kindOf(s)
			if !ok || !crit.wants(k) {
				continue
			}
			if seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, Candidate{Sym: s, Scope: in, Origin: origin})
		}
	}

	originFor := func(s *ast.Scope) ast.Origin {
		if s.Owner == nil {
			return ast.OriginLocal
		}
		switch s.Owner.(type) {
		case *ast.Function, *ast.Lambda, *ast.FunctionBlock, *ast.For:
			return ast.OriginLocal
		default:
			return ast.OriginStatic
		}
	}

	// step 1: own scope
	add(scope, scope.Lookup(name), originFor(scope))

	// step 2: type-hierarchy parents, one level, non-recursive
	for _, parentScope := range parentScopesOf(scope) {
		if parentScope == nil {
			continue
		}
		add(parentScope, parentScope.Lookup(name), ast.OriginTypeHierarchy)
	}

	// step 3: lexical parent, recursively
	if crit.Recursive && scope.Parent != nil {
		out = append(out, t.Lookup(scope.Parent, name, crit)...)
	}

	// step 4: imports, from a GlobalScope, non-recursive/non-external downstream
	if crit.AllowExternal && scope.IsGlobal() {
		if g, ok := scope.Owner.(*ast.GlobalScope); ok {
			sub := Criteria{Recursive: false, AllowExternal: false, Targets: crit.Targets, RequireExact: crit.RequireExact}
			for _, imp := range g.Imports {
				if imp.Referent == nil {
					continue
				}
				out = append(out, t.Lookup(imp.Referent.Scope, name, sub)...)
			}
		}
	}

	// step 5: built-in type table probe
	if crit.Recursive && crit.wants(TargetType) && t.ProbeBuiltin != nil {
		if b := t.ProbeBuiltin(name); b != nil && !seen[b] {
			out = append(out, Candidate{Sym: b, Scope: nil, Origin: ast.OriginStatic})
		}
	}

	return out
}

// GlobalOf walks scope's parent chain to the module's GlobalScope, used to
// short-circuit a `global` identifier reference (§4.4.1 step 6).
func GlobalOf(scope *ast.Scope) *ast.Scope {
	for scope.Parent != nil {
		scope = scope.Parent
	}
	return scope
}
