package resolver

import (
	"sort"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/symbols"
	"github.com/accelec/accele/internal/types"
)

// callCandidate is one derived call signature (§4.4.4 step 1): a symbol
// together with the parameter/return types it contributes as a callee.
type callCandidate struct {
	sym         ast.Symbol
	params      []types.Type
	minRequired int
	variadic    bool
	ret         types.Type
	scope       *ast.Scope // scope the validation check should evaluate access against
	access      symbols.AccessKind
	generics    []ast.TypeRef
}

// resolveCall implements §4.4.4: derive one call candidate per possible
// referent, score each against the actual argument types, and bind the
// first that both scores non-negative and passes full candidate
// validation.
func (r *Resolver) resolveCall(ex *ast.FunctionCall, scope *ast.Scope, allowExternal bool) {
	for _, a := range ex.Args {
		r.resolveExpr(a, scope, allowExternal)
	}
	argTypes := make([]types.Type, len(ex.Args))
	argsReady := true
	for i, a := range ex.Args {
		if a.GetValueType() == nil {
			argsReady = false
			continue
		}
		argTypes[i] = a.GetValueType().GetActualType()
	}

	candidates, templateRef := r.callCandidatesFor(ex.Callee, scope, allowExternal)
	if len(candidates) == 0 {
		if allowExternal {
			if templateRef != nil {
				r.report(diagnostics.INVALID_TEMPLATE_CONSTRUCTOR, templateRef.GetToken())
			} else {
				r.report(diagnostics.INVALID_FUNCTION_CALLER, ex.Tok, calleeName(ex.Callee))
			}
		}
		return
	}
	if !argsReady {
		return
	}

	type scored struct {
		cand  callCandidate
		score int
	}
	var scoredList []scored
	for _, c := range candidates {
		scoredList = append(scoredList, scored{c, scoreArgs(argTypes, c)})
	}
	sort.SliceStable(scoredList, func(i, j int) bool {
		si, sj := scoredList[i], scoredList[j]
		if si.cand.variadic != sj.cand.variadic {
			return !si.cand.variadic // non-variadic candidates sort first
		}
		return si.score < sj.score
	})

	var firstProblems []symbols.Problem
	haveFirst := false
	for _, s := range scoredList {
		if s.score < 0 {
			continue
		}
		problems := symbols.Validate(symbols.Candidate{Sym: s.cand.sym, Scope: s.cand.scope}, scope, s.cand.access, s.cand.generics, false)
		if !haveFirst {
			firstProblems = problems
			haveFirst = true
		}
		if len(problems) == 0 {
			r.emitProblems(problems, ex.Tok)
			ex.Referent = s.cand.sym
			ex.SetValueType(synth(s.cand.ret))
			return
		}
	}

	if haveFirst {
		r.emitProblems(firstProblems, ex.Tok)
		return
	}
	r.reportCallFailure(ex, argTypes, candidates)
}

// reportCallFailure diagnoses why every candidate was rejected. With a
// single candidate the rejection reason is unambiguous (§7's distinct
// too-many/too-few/argument-type-mismatch codes); with several
// candidates there's no single signature to blame, so it falls back to
// the too-few-arguments summary against the loosest candidate.
func (r *Resolver) reportCallFailure(ex *ast.FunctionCall, argTypes []types.Type, candidates []callCandidate) {
	if len(candidates) != 1 {
		r.report(diagnostics.TOO_FEW_ARGUMENTS, ex.Tok, minRequiredAcrossAll(candidates), len(ex.Args))
		return
	}
	c := candidates[0]
	if len(argTypes) < c.minRequired {
		r.report(diagnostics.TOO_FEW_ARGUMENTS, ex.Tok, c.minRequired, len(argTypes))
		return
	}
	if !c.variadic && len(argTypes) > len(c.params) {
		r.report(diagnostics.TOO_MANY_ARGUMENTS, ex.Tok, len(c.params), len(argTypes))
		return
	}
	maxFixed := len(c.params)
	if c.variadic {
		maxFixed--
	}
	for i, at := range argTypes {
		var pt types.Type
		switch {
		case i < maxFixed:
			pt = c.params[i]
		case c.variadic:
			pt = c.params[maxFixed]
		default:
			continue
		}
		if pt == nil || at == nil {
			continue
		}
		if types.Distance(at, pt) < 0 {
			r.report(diagnostics.ARGUMENT_TYPE_MISMATCH, ex.Tok, i+1, at.String(), pt.String())
			return
		}
	}
	r.report(diagnostics.TOO_FEW_ARGUMENTS, ex.Tok, c.minRequired, len(argTypes))
}

func minRequiredAcrossAll(cands []callCandidate) int {
	min := -1
	for _, c := range cands {
		if min == -1 || c.minRequired < min {
			min = c.minRequired
		}
	}
	if min == -1 {
		return 0
	}
	return min
}

// scoreArgs implements §4.4.4 step 2.
func scoreArgs(argTypes []types.Type, c callCandidate) int {
	maxFixed := len(c.params)
	if c.variadic {
		maxFixed--
	}
	if len(argTypes) < c.minRequired {
		return -1
	}
	if !c.variadic && len(argTypes) > len(c.params) {
		return -1
	}
	total := 0
	for i, at := range argTypes {
		var pt types.Type
		switch {
		case i < maxFixed:
			pt = c.params[i]
		case c.variadic:
			pt = c.params[maxFixed]
		default:
			return -1
		}
		if pt == nil || at == nil {
			continue
		}
		d := types.Distance(at, pt)
		if d < 0 {
			return -1
		}
		total += d
	}
	return total
}

func calleeName(callee ast.Expression) string {
	switch c := callee.(type) {
	case *ast.IdentifierExpr:
		return c.Tok.Text
	case *ast.MemberAccess:
		return c.Name.Text
	default:
		return "<expression>"
	}
}

// callCandidatesFor derives every call candidate contributed by callee,
// per §4.4.4 step 1's per-referent-kind rules. The second return value,
// when non-nil, names a Template referent that was rejected as a caller
// (§4.4.4 step 1's exception) — resolveCall reports this instead of the
// generic no-candidates diagnostic, but only once callee resolution has
// had every chance to succeed (allowExternal), to avoid reporting it once
// per body-walk stage.
func (r *Resolver) callCandidatesFor(callee ast.Expression, scope *ast.Scope, allowExternal bool) ([]callCandidate, *ast.Template) {
	switch c := callee.(type) {
	case *ast.IdentifierExpr:
		if c.Tok.Text == "global" {
			return nil, nil
		}
		crit := symbols.Criteria{
			Recursive:     true,
			AllowExternal: allowExternal,
			Targets:       map[symbols.TargetKind]bool{symbols.TargetVariable: true, symbols.TargetType: true},
		}
		cands := r.Table.Lookup(scope, c.Tok.Text, crit)
		var out []callCandidate
		var tmpl *ast.Template
		for _, cand := range cands {
			cs, t := r.expandCandidate(cand, scope, symbols.AccessPlain, c.Generics, allowExternal)
			out = append(out, cs...)
			if t != nil {
				tmpl = t
			}
		}
		return out, tmpl
	case *ast.MemberAccess:
		r.resolveExpr(c.Base, scope, allowExternal)
		access := symbols.AccessInstance
		var targetScope *ast.Scope
		if staticScope, ok := staticReferentScope(c.Base); ok {
			access = symbols.AccessStatic
			targetScope = staticScope
		} else if base := typeOrNil(c.Base); base != nil {
			if opt, ok := base.(*types.Optional); ok {
				base = opt.Wrapped
			}
			if nom, ok := base.(*types.Nominal); ok {
				if decl, ok := nom.Decl.(ast.TypeDecl); ok {
					targetScope = decl.OwnedScope()
				}
			}
		}
		if targetScope == nil {
			return nil, nil
		}
		crit := symbols.Criteria{
			AllowExternal: allowExternal,
			Targets:       map[symbols.TargetKind]bool{symbols.TargetVariable: true, symbols.TargetType: true},
		}
		cands := r.Table.Lookup(targetScope, c.Name.Text, crit)
		var out []callCandidate
		var tmpl *ast.Template
		for _, cand := range cands {
			cs, t := r.expandCandidate(cand, scope, access, c.Generics, allowExternal)
			out = append(out, cs...)
			if t != nil {
				tmpl = t
			}
		}
		return out, tmpl
	default:
		r.resolveExpr(callee, scope, allowExternal)
		t := typeOrNil(callee)
		if fn, ok := t.(*types.Function); ok {
			return []callCandidate{functionTypeCandidate(nil, fn, scope, symbols.AccessPlain, nil)}, nil
		}
		return nil, nil
	}
}

// expandCandidate turns one resolve_symbol Candidate into zero or more
// call candidates, following §4.4.4 step 1's per-kind rules (a Type
// referent expands to one candidate per declared constructor,
// transparently through Alias). The second return value carries a
// rejected Template referent back to the caller rather than reporting
// directly, so the diagnostic can be gated on allowExternal.
func (r *Resolver) expandCandidate(cand symbols.Candidate, refScope *ast.Scope, access symbols.AccessKind, generics []ast.TypeRef, allowExternal bool) ([]callCandidate, *ast.Template) {
	sym := cand.Sym
	if alias, ok := sym.(*ast.Alias); ok {
		if nom, ok := alias.Target.GetActualType().(*types.Nominal); ok {
			if decl, ok := nom.Decl.(ast.TypeDecl); ok {
				return r.constructorCandidates(decl, refScope, access, generics)
			}
		}
		return nil, nil
	}
	switch s := sym.(type) {
	case *ast.Variable:
		if fn, ok := s.ResolvedType().(*types.Function); ok {
			return []callCandidate{functionTypeCandidate(sym, fn, cand.Scope, access, generics)}, nil
		}
	case *ast.Parameter:
		if s.TypeAnnotation != nil {
			if fn, ok := s.TypeAnnotation.GetActualType().(*types.Function); ok {
				return []callCandidate{functionTypeCandidate(sym, fn, cand.Scope, access, generics)}, nil
			}
		}
	case *ast.Function:
		// A forward-referenced (or mutually recursive) callee with an
		// inferred return type may not have been body-walked yet by the
		// top-level statement loop — force it now so its return type is
		// available for scoring. §4.4.6's cycle guard (onStack/push/pop in
		// resolveFunctionDecl) is what makes this safe to call re-entrantly:
		// a callee already being resolved higher up this same call chain
		// short-circuits to a synthetic generic instead of recursing forever.
		if s.ReturnType == nil && s.InferredReturnType == nil {
			r.resolveFunctionDecl(s, allowExternal)
		}
		return []callCandidate{functionCandidate(s, cand.Scope, access, generics)}, nil
	case *ast.EnumCase:
		return nil, nil // rejected as callers (§4.4.4 step 1)
	case *ast.Template:
		// Templates describe shape, not an instantiable type: the original
		// implementation throws here rather than enumerating constructors.
		return nil, s
	case ast.TypeDecl:
		return r.constructorCandidates(s, refScope, access, generics)
	}
	return nil, nil
}

func functionCandidate(fn *ast.Function, scope *ast.Scope, access symbols.AccessKind, generics []ast.TypeRef) callCandidate {
	params := make([]types.Type, len(fn.Params))
	minRequired := 0
	variadic := false
	for i, p := range fn.Params {
		if p.TypeAnnotation != nil {
			params[i] = p.TypeAnnotation.GetActualType()
		}
		if p.IsVariadic {
			variadic = true
		} else if p.DefaultValue == nil {
			minRequired = i + 1
		}
	}
	return callCandidate{
		sym: fn, params: params, minRequired: minRequired, variadic: variadic,
		ret: fn.ResolvedReturnType(), scope: scope, access: access, generics: generics,
	}
}

func functionTypeCandidate(sym ast.Symbol, fn *types.Function, scope *ast.Scope, access symbols.AccessKind, generics []ast.TypeRef) callCandidate {
	return callCandidate{
		sym: sym, params: fn.Params, minRequired: len(fn.Params), variadic: fn.Variadic,
		ret: fn.Return, scope: scope, access: access, generics: generics,
	}
}

// constructorCandidates returns one candidate per Constructor member
// declared directly on decl (Enum and Namespace referents contribute
// none: enum instances are built from their cases, not a constructor).
// A Template referent — reached here through an Alias indirection, the
// direct case is caught earlier in expandCandidate — is rejected outright
// and returned as the second value rather than reported directly.
func (r *Resolver) constructorCandidates(decl ast.TypeDecl, refScope *ast.Scope, access symbols.AccessKind, generics []ast.TypeRef) ([]callCandidate, *ast.Template) {
	var members []ast.Statement
	switch d := decl.(type) {
	case *ast.Class:
		members = d.Members
	case *ast.Struct:
		members = d.Members
	case *ast.Template:
		return nil, d
	default:
		return nil, nil
	}
	var out []callCandidate
	for _, m := range members {
		ctor, ok := m.(*ast.Constructor)
		if !ok {
			continue
		}
		params := make([]types.Type, len(ctor.Params))
		minRequired := 0
		variadic := false
		for i, p := range ctor.Params {
			if p.TypeAnnotation != nil {
				params[i] = p.TypeAnnotation.GetActualType()
			}
			if p.IsVariadic {
				variadic = true
			} else if p.DefaultValue == nil {
				minRequired = i + 1
			}
		}
		out = append(out, callCandidate{
			sym: ctor, params: params, minRequired: minRequired, variadic: variadic,
			ret: decl.ResolvedSelf(), scope: decl.OwnedScope(), access: access, generics: generics,
		})
	}
	return out, nil
}
