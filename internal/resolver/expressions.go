package resolver

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/symbols"
	"github.com/accelec/accele/internal/token"
	"github.com/accelec/accele/internal/types"
)

// synth wraps an already-resolved Type in a fresh, unreachable-by-name
// TypeRef, per core.go's note that an Expression's value_type is always a
// TypeRef: one either already attached to the expression (a cast target)
// or synthesized here to carry an inferred Type.
func synth(t types.Type) ast.TypeRef {
	tr := &ast.SimpleTypeRef{}
	tr.SetActualType(t)
	return tr
}

// resolveExpr binds e's value_type if unbound. Idempotent per §4.4.
func (r *Resolver) resolveExpr(e ast.Expression, scope *ast.Scope, allowExternal bool) {
	if e == nil || e.GetValueType() != nil {
		return
	}
	switch ex := e.(type) {
	case *ast.Literal:
		r.resolveLiteral(ex, scope, allowExternal)
	case *ast.IdentifierExpr:
		r.resolveIdentifier(ex, scope, allowExternal)
	case *ast.Binary:
		r.resolveBinary(ex, scope, allowExternal)
	case *ast.UnaryPrefix:
		r.resolveExpr(ex.Operand, scope, allowExternal)
		if t := r.unaryPrefixType(ex); t != nil {
			ex.SetValueType(synth(t))
		}
	case *ast.UnaryPostfix:
		r.resolveExpr(ex.Operand, scope, allowExternal)
		if t := r.unaryPostfixType(ex); t != nil {
			ex.SetValueType(synth(t))
		}
	case *ast.Ternary:
		r.resolveExpr(ex.Cond, scope, allowExternal)
		r.resolveExpr(ex.Then, scope, allowExternal)
		r.resolveExpr(ex.Else, scope, allowExternal)
		if ex.Then.GetValueType() != nil && ex.Else.GetValueType() != nil {
			ex.SetValueType(synth(types.GetMinCommonType(ex.Then.GetValueType().GetActualType(), ex.Else.GetValueType().GetActualType())))
		}
	case *ast.FunctionCall:
		r.resolveCall(ex, scope, allowExternal)
	case *ast.Subscript:
		r.resolveSubscript(ex, scope, allowExternal)
	case *ast.MemberAccess:
		r.resolveMemberAccess(ex, scope, allowExternal)
	case *ast.Casting:
		r.resolveCasting(ex, scope, allowExternal)
	case *ast.Lambda:
		r.resolveLambda(ex, scope, allowExternal)
	case *ast.ArrayLiteral:
		r.resolveArrayLiteral(ex, scope, allowExternal)
	case *ast.MapLiteral:
		r.resolveMapLiteral(ex, scope, allowExternal)
	case *ast.TupleLiteral:
		elems := make([]types.Type, len(ex.Elements))
		complete := true
		for i, el := range ex.Elements {
			r.resolveExpr(el, scope, allowExternal)
			if el.GetValueType() == nil {
				complete = false
				continue
			}
			elems[i] = el.GetValueType().GetActualType()
		}
		if complete {
			ex.SetValueType(synth(&types.Tuple{Elements: elems}))
		}
	}
}

func (r *Resolver) resolveLiteral(ex *ast.Literal, scope *ast.Scope, allowExternal bool) {
	switch ex.Kind {
	case ast.LitInteger, ast.LitHex, ast.LitOctal, ast.LitBinary:
		ex.SetValueType(synth(types.Int()))
	case ast.LitFloat:
		ex.SetValueType(synth(types.Float()))
	case ast.LitBool:
		ex.SetValueType(synth(types.Bool()))
	case ast.LitNull:
		ex.SetValueType(synth(&types.Optional{Wrapped: types.Any()}))
	case ast.LitString:
		ex.SetValueType(synth(types.Str()))
	case ast.LitInterpString:
		for _, interp := range ex.Interp {
			r.resolveExpr(interp, scope, allowExternal)
		}
		ex.SetValueType(synth(types.Str()))
	}
}

func (r *Resolver) resolveIdentifier(ex *ast.IdentifierExpr, scope *ast.Scope, allowExternal bool) {
	if ex.Tok.Text == "global" {
		ex.SetValueType(synth(types.Any()))
		return
	}
	// Targets include types/namespaces, not just variables: a bare
	// identifier may denote a type used only as the base of a static
	// member access (`Foo.bar`), which carries no value type of its own.
	crit := symbols.Criteria{
		Recursive:     true,
		AllowExternal: allowExternal,
		Targets: map[symbols.TargetKind]bool{
			symbols.TargetVariable:  true,
			symbols.TargetType:      true,
			symbols.TargetNamespace: true,
		},
	}
	cands := r.Table.Lookup(scope, ex.Tok.Text, crit)
	cand, problems, ok := symbols.FirstSelectable(cands, scope, symbols.AccessPlain, ex.Generics, false)
	if !ok {
		if allowExternal {
			r.report(diagnostics.UNDEFINED_SYMBOL, ex.Tok, ex.Tok.Text)
		}
		return
	}
	r.emitProblems(problems, ex.Tok)
	ex.Referent = cand.Sym
	ex.Origin = cand.Origin
	if t := r.typeOfValueSymbol(cand.Sym); t != nil {
		ex.SetValueType(t)
	} else if _, isTypeOrNS := cand.Sym.(ast.TypeDecl); isTypeOrNS {
		ex.SetValueType(synth(types.Void()))
	} else if _, isNS := cand.Sym.(*ast.Namespace); isNS {
		ex.SetValueType(synth(types.Void()))
	} else if _, isImport := cand.Sym.(*ast.Import); isImport {
		// A whole-module import alias carries no value of its own; it only
		// ever appears as the static base of a qualified access into the
		// imported module (`A.C`, §4.3/S4).
		ex.SetValueType(synth(types.Void()))
	}
}

func (r *Resolver) typeOfValueSymbol(sym ast.Symbol) ast.TypeRef {
	switch s := sym.(type) {
	case *ast.Variable:
		if t := s.ResolvedType(); t != nil {
			return synth(t)
		}
	case *ast.Parameter:
		if s.TypeAnnotation != nil {
			return s.TypeAnnotation
		}
	case *ast.Function:
		params := make([]types.Type, len(s.Params))
		variadic := false
		for i, p := range s.Params {
			if p.TypeAnnotation != nil {
				params[i] = p.TypeAnnotation.GetActualType()
			}
			variadic = variadic || p.IsVariadic
		}
		return synth(&types.Function{Params: params, Variadic: variadic, Return: s.ResolvedReturnType()})
	case *ast.EnumCase:
		if s.Owner != nil && s.Owner.ResolvedSelf() != nil {
			return synth(s.Owner.ResolvedSelf())
		}
	}
	return nil
}

func (r *Resolver) resolveBinary(ex *ast.Binary, scope *ast.Scope, allowExternal bool) {
	r.resolveExpr(ex.Left, scope, allowExternal)
	r.resolveExpr(ex.Right, scope, allowExternal)
	if ex.Left.GetValueType() == nil || ex.Right.GetValueType() == nil {
		return
	}
	lt := ex.Left.GetValueType().GetActualType()
	rt := ex.Right.GetValueType().GetActualType()
	switch ex.Op {
	case ast.OpOr, ast.OpAnd, ast.OpEq, ast.OpIdentical, ast.OpNotEq, ast.OpNotIdentical,
		ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe:
		ex.SetValueType(synth(types.Bool()))
	case ast.OpAssign:
		ex.SetValueType(synth(lt))
	case ast.OpNilCoalesce:
		switch opt := lt.(type) {
		case *types.Optional:
			ex.SetValueType(synth(types.GetMinCommonType(opt.Wrapped, rt)))
		default:
			if lt == types.Any() {
				// Open Question (§9): `Any` on the left is accepted
				// conservatively, treated as always-non-nil.
				ex.SetValueType(synth(lt))
				return
			}
			// Open Question (§9): `??` on a non-optional left-hand side is a
			// type error in this implementation.
			r.report(diagnostics.NIL_COALESCE_NON_OPTIONAL, ex.Tok)
			ex.SetValueType(synth(rt))
		}
	case ast.OpRange, ast.OpRangeInclusive:
		ex.SetValueType(synth(&types.Array{Element: types.GetMinCommonType(lt, rt)}))
	default:
		ex.SetValueType(synth(types.GetMinCommonType(lt, rt)))
	}
}

func (r *Resolver) unaryPrefixType(ex *ast.UnaryPrefix) types.Type {
	operandType := typeOrNil(ex.Operand)
	if operandType == nil {
		return nil
	}
	switch ex.Tok.Kind {
	case token.NOT:
		return types.Bool()
	case token.AMP:
		return &types.Pointer{Pointee: operandType}
	case token.STAR:
		if p, ok := operandType.(*types.Pointer); ok {
			return p.Pointee
		}
		return operandType
	default:
		return operandType
	}
}

func (r *Resolver) unaryPostfixType(ex *ast.UnaryPostfix) types.Type {
	operandType := typeOrNil(ex.Operand)
	if operandType == nil {
		return nil
	}
	if ex.Tok.Kind == token.NOT {
		if opt, ok := operandType.(*types.Optional); ok {
			return opt.Wrapped
		}
	}
	return operandType
}

func typeOrNil(e ast.Expression) types.Type {
	if e == nil || e.GetValueType() == nil {
		return nil
	}
	return e.GetValueType().GetActualType()
}

func (r *Resolver) resolveSubscript(ex *ast.Subscript, scope *ast.Scope, allowExternal bool) {
	r.resolveExpr(ex.Base, scope, allowExternal)
	r.resolveExpr(ex.Index, scope, allowExternal)
	base := typeOrNil(ex.Base)
	if base == nil {
		return
	}
	switch b := base.(type) {
	case *types.Array:
		ex.SetValueType(synth(b.Element))
	case *types.Map:
		ex.SetValueType(synth(&types.Optional{Wrapped: b.Value}))
	default:
		ex.SetValueType(synth(types.Any()))
	}
}

// resolveMemberAccess binds ex.Name against the scope owned by ex.Base's
// type (or, when Base names a type/namespace directly, against that
// type's own scope) rather than against the lexical scope — §4.4.1's
// member-access variant of resolve_symbol starts the walk at the
// accessed entity, not at the reference site.
func (r *Resolver) resolveMemberAccess(ex *ast.MemberAccess, scope *ast.Scope, allowExternal bool) {
	r.resolveExpr(ex.Base, scope, allowExternal)

	access := symbols.AccessInstance
	var targetScope *ast.Scope
	var wrapOptional bool

	if staticScope, ok := staticReferentScope(ex.Base); ok {
		access = symbols.AccessStatic
		targetScope = staticScope
	} else {
		base := typeOrNil(ex.Base)
		if base == nil {
			return
		}
		if opt, ok := base.(*types.Optional); ok {
			base = opt.Wrapped
			wrapOptional = true
		}
		nom, ok := base.(*types.Nominal)
		if !ok {
			return
		}
		if decl, ok := nom.Decl.(ast.TypeDecl); ok {
			targetScope = decl.OwnedScope()
		}
	}
	if targetScope == nil {
		if allowExternal {
			r.report(diagnostics.UNDEFINED_SYMBOL, ex.Name, ex.Name.Text)
		}
		return
	}

	crit := symbols.Criteria{
		AllowExternal: allowExternal,
		Targets: map[symbols.TargetKind]bool{
			symbols.TargetVariable:  true,
			symbols.TargetType:      true,
			symbols.TargetNamespace: true,
		},
	}
	cands := r.Table.Lookup(targetScope, ex.Name.Text, crit)
	cand, problems, ok := symbols.FirstSelectable(cands, scope, access, ex.Generics, false)
	if !ok {
		if allowExternal {
			r.report(diagnostics.UNDEFINED_SYMBOL, ex.Name, ex.Name.Text)
		}
		return
	}
	r.emitProblems(problems, ex.Name)
	ex.Referent = cand.Sym
	t := r.typeOfValueSymbol(cand.Sym)
	if t == nil {
		return
	}
	if wrapOptional || ex.Optional {
		if at := t.GetActualType(); at != nil {
			t = synth(&types.Optional{Wrapped: at})
		}
	}
	ex.SetValueType(t)
}

// staticReferentScope reports whether base names a type or namespace
// directly (so the access is `Type.member`, not `instance.member`) and,
// if so, the scope to search.
func staticReferentScope(base ast.Expression) (*ast.Scope, bool) {
	id, ok := base.(*ast.IdentifierExpr)
	if !ok || id.Referent == nil {
		return nil, false
	}
	switch s := id.Referent.(type) {
	case ast.TypeDecl:
		return s.OwnedScope(), true
	case *ast.Namespace:
		return s.OwnedScope(), true
	case *ast.Import:
		// A whole-module import (§4.3) exposes its target module's
		// top-level scope as a static base for qualified access (S4:
		// `import A; A.C.x`). Referent is nil until EXTERNAL_TYPES loads
		// it; reporting "not found" rather than "empty scope" here lets
		// the caller's allowExternal gating keep this silent until then.
		if s.Referent == nil {
			return nil, false
		}
		return s.Referent.Scope, true
	case *ast.Alias:
		if nom, ok := s.Target.GetActualType().(*types.Nominal); ok {
			if decl, ok := nom.Decl.(ast.TypeDecl); ok {
				return decl.OwnedScope(), true
			}
		}
	}
	return nil, false
}

func (r *Resolver) resolveCasting(ex *ast.Casting, scope *ast.Scope, allowExternal bool) {
	r.resolveExpr(ex.Operand, scope, allowExternal)
	r.resolveTypeRef(ex.Target, scope, allowExternal)
	target := ex.Target.GetActualType()
	if target == nil {
		return
	}
	switch ex.Kind {
	case ast.CastIs:
		ex.SetValueType(synth(types.Bool()))
	case ast.CastAsOptional:
		ex.SetValueType(synth(&types.Optional{Wrapped: target}))
	case ast.CastAsUnwrapped:
		ex.SetValueType(synth(&types.UnwrappedOptional{Wrapped: target}))
	default:
		ex.SetValueType(ex.Target)
	}
}

func (r *Resolver) resolveLambda(ex *ast.Lambda, scope *ast.Scope, allowExternal bool) {
	bodyScope := ex.Scope
	if bodyScope == nil {
		bodyScope = scope
	}
	for _, p := range ex.Params {
		if p.TypeAnnotation != nil {
			r.resolveTypeRef(p.TypeAnnotation, bodyScope, allowExternal)
		}
	}
	var ret types.Type
	if ex.Body != nil {
		r.resolveExpr(ex.Body, bodyScope, allowExternal)
		ret = typeOrNil(ex.Body)
	} else if ex.Block != nil {
		r.resolveFunctionBlock(ex.Block, bodyScope, allowExternal)
		ret = r.inferBlockReturnType(ex.Block)
	}
	params := make([]types.Type, len(ex.Params))
	variadic := false
	for i, p := range ex.Params {
		if p.TypeAnnotation != nil {
			params[i] = p.TypeAnnotation.GetActualType()
		}
		variadic = variadic || p.IsVariadic
	}
	if ret == nil {
		ret = types.Void()
	}
	ex.SetValueType(synth(&types.Function{Params: params, Variadic: variadic, Return: ret}))
}

func (r *Resolver) resolveArrayLiteral(ex *ast.ArrayLiteral, scope *ast.Scope, allowExternal bool) {
	var elem types.Type
	for i, el := range ex.Elements {
		r.resolveExpr(el, scope, allowExternal)
		if el.GetValueType() == nil {
			return
		}
		if i == 0 {
			elem = el.GetValueType().GetActualType()
		} else {
			elem = types.GetMinCommonType(elem, el.GetValueType().GetActualType())
		}
	}
	if elem == nil {
		elem = types.Any()
	}
	ex.SetValueType(synth(&types.Array{Element: elem}))
}

func (r *Resolver) resolveMapLiteral(ex *ast.MapLiteral, scope *ast.Scope, allowExternal bool) {
	var keyT, valT types.Type
	for i, entry := range ex.Entries {
		r.resolveExpr(entry.Key, scope, allowExternal)
		r.resolveExpr(entry.Value, scope, allowExternal)
		if entry.Key.GetValueType() == nil || entry.Value.GetValueType() == nil {
			return
		}
		k := entry.Key.GetValueType().GetActualType()
		v := entry.Value.GetValueType().GetActualType()
		if i == 0 {
			keyT, valT = k, v
		} else {
			keyT = types.GetMinCommonType(keyT, k)
			valT = types.GetMinCommonType(valT, v)
		}
	}
	if keyT == nil {
		keyT, valT = types.Any(), types.Any()
	}
	ex.SetValueType(synth(&types.Map{Key: keyT, Value: valT}))
}
