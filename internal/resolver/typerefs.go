package resolver

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/symbols"
	"github.com/accelec/accele/internal/token"
	"github.com/accelec/accele/internal/types"
)

// resolveTypeRef binds t.ActualType if unbound (resolution is idempotent
// per §4.4's node-level rule). allowExternal gates whether the search may
// cross into imported GlobalScopes (false until stage ExternalTypes).
func (r *Resolver) resolveTypeRef(t ast.TypeRef, scope *ast.Scope, allowExternal bool) {
	if t == nil || t.GetActualType() != nil {
		return
	}
	switch tr := t.(type) {
	case *ast.SimpleTypeRef:
		r.resolveSimpleTypeRef(tr, scope, allowExternal)
	case *ast.ArrayTypeRef:
		r.resolveTypeRef(tr.Element, scope, allowExternal)
		if tr.Element.GetActualType() != nil {
			tr.SetActualType(&types.Array{Element: tr.Element.GetActualType()})
		}
	case *ast.MapTypeRef:
		r.resolveTypeRef(tr.Key, scope, allowExternal)
		r.resolveTypeRef(tr.Value, scope, allowExternal)
		if tr.Key.GetActualType() != nil && tr.Value.GetActualType() != nil {
			tr.SetActualType(&types.Map{Key: tr.Key.GetActualType(), Value: tr.Value.GetActualType()})
		}
	case *ast.TupleTypeRef:
		elems := make([]types.Type, len(tr.Elements))
		complete := true
		for i, e := range tr.Elements {
			r.resolveTypeRef(e, scope, allowExternal)
			elems[i] = e.GetActualType()
			if elems[i] == nil {
				complete = false
			}
		}
		if complete {
			tr.SetActualType(&types.Tuple{Elements: elems})
		}
	case *ast.FunctionTypeRef:
		params := make([]types.Type, len(tr.Params))
		complete := true
		for i, p := range tr.Params {
			r.resolveTypeRef(p, scope, allowExternal)
			params[i] = p.GetActualType()
			if params[i] == nil {
				complete = false
			}
		}
		r.resolveTypeRef(tr.Return, scope, allowExternal)
		if complete && tr.Return.GetActualType() != nil {
			tr.SetActualType(&types.Function{Params: params, Variadic: tr.Variadic, Return: tr.Return.GetActualType()})
		}
	case *ast.SuffixTypeRef:
		r.resolveTypeRef(tr.Base, scope, allowExternal)
		base := tr.Base.GetActualType()
		if base == nil {
			return
		}
		switch tr.Kind {
		case ast.SuffixOptional:
			tr.SetActualType(&types.Optional{Wrapped: base})
		case ast.SuffixUnwrapped:
			tr.SetActualType(&types.UnwrappedOptional{Wrapped: base})
		case ast.SuffixPointer:
			tr.SetActualType(&types.Pointer{Pointee: base})
		case ast.SuffixVariadic:
			tr.SetActualType(&types.Array{Element: base})
		}
	case *ast.SuperTypeRef:
		owner := enclosingTypeDecl(scope)
		if owner == nil {
			r.report(diagnostics.UNDEFINED_SYMBOL, tr.GetToken(), "super")
			return
		}
		self := owner.ResolvedSelf()
		if self == nil || len(self.Parents) == 0 {
			r.report(diagnostics.UNDEFINED_SYMBOL, tr.GetToken(), "super")
			return
		}
		tr.SetActualType(self.Parents[0])
	}
}

func enclosingTypeDecl(scope *ast.Scope) ast.TypeDecl {
	for s := scope; s != nil; s = s.Parent {
		if td, ok := s.Owner.(ast.TypeDecl); ok {
			return td
		}
	}
	return nil
}

func (r *Resolver) resolveSimpleTypeRef(tr *ast.SimpleTypeRef, scope *ast.Scope, allowExternal bool) {
	if len(tr.Segments) == 0 {
		return
	}
	startScope := scope
	if tr.GlobalOnly {
		startScope = symbols.GlobalOf(scope)
	}

	first := tr.Segments[0]
	var firstType types.Type
	var nextScope *ast.Scope

	builtinsOn := r.Ctx == nil || !r.Ctx.NoBuiltins
	if r.program != nil {
		for _, st := range r.program.Statements {
			if m, ok := st.(*ast.MetaDecl); ok && m.Tok.Kind == token.TAG_NOBUILTINS {
				builtinsOn = false
			}
		}
	}
	if b, ok := r.Registry.Lookup(first); ok && builtinsOn && len(tr.Segments) == 1 {
		firstType = b
	} else {
		crit := symbols.Criteria{
			Recursive:     !tr.GlobalOnly,
			AllowExternal: allowExternal,
			Targets:       map[symbols.TargetKind]bool{symbols.TargetType: true, symbols.TargetNamespace: true},
		}
		cands := r.Table.Lookup(startScope, first, crit)
		cand, problems, ok := symbols.FirstSelectable(cands, scope, symbols.AccessPlain, genericsAt(tr, 0), false)
		if !ok {
			if allowExternal {
				r.report(diagnostics.UNDEFINED_SYMBOL, tr.GetToken(), first)
			}
			return
		}
		r.emitProblems(problems, tr.GetToken())
		firstType, nextScope = r.typeOfSymbol(cand.Sym)
	}

	cur := firstType
	for i := 1; i < len(tr.Segments); i++ {
		if nextScope == nil {
			r.report(diagnostics.UNDEFINED_SYMBOL, tr.GetToken(), tr.Segments[i])
			return
		}
		crit := symbols.Criteria{Targets: map[symbols.TargetKind]bool{symbols.TargetType: true, symbols.TargetNamespace: true}}
		cands := r.Table.Lookup(nextScope, tr.Segments[i], crit)
		cand, problems, ok := symbols.FirstSelectable(cands, scope, symbols.AccessStatic, genericsAt(tr, i), false)
		if !ok {
			r.report(diagnostics.UNDEFINED_SYMBOL, tr.GetToken(), tr.Segments[i])
			return
		}
		r.emitProblems(problems, tr.GetToken())
		cur, nextScope = r.typeOfSymbol(cand.Sym)
	}

	if cur != nil {
		tr.SetActualType(cur)
	}
}

func genericsAt(tr *ast.SimpleTypeRef, segment int) []ast.TypeRef {
	if segment < len(tr.Generics) {
		return tr.Generics[segment]
	}
	return nil
}

// typeOfSymbol returns a type symbol's resolved Type plus, if it also
// owns a nested scope (so dotted-segment descent can continue), that
// scope. Aliases are assumed already resolved by the INTERNAL_TYPES pass
// over top-level Alias declarations (§4.4 stage 1).
func (r *Resolver) typeOfSymbol(sym ast.Symbol) (types.Type, *ast.Scope) {
	switch s := sym.(type) {
	case *ast.Alias:
		return s.Target.GetActualType(), nil
	case ast.TypeDecl:
		return s.ResolvedSelf(), s.OwnedScope()
	case *ast.Namespace:
		return nil, s.OwnedScope()
	default:
		return nil, nil
	}
}

func (r *Resolver) report(code diagnostics.Code, tok token.Token, args ...any) {
	r.Diag.Report(diagnostics.New(code, tok, args...))
}

// emitProblems reports each of symbols.Validate's findings anchored at tok
// (the reference-site token — the `C` in `A.C.x`, not `A` or `x`), since
// symbols.Problem itself carries no location: the symbols package has no
// token dependency and validates purely against the Scope tree.
func (r *Resolver) emitProblems(problems []symbols.Problem, tok token.Token) {
	for _, p := range problems {
		r.Diag.Report(diagnostics.Diagnostic{
			Code: p.Code, Severity: p.Severity, Message: p.Message,
			Meta: tok.Meta, HighlightLength: len(tok.Text),
		})
	}
}
