package resolver

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/types"
)

// runInternalNonRecursive implements §4.4 stage 2: it walks every
// declaration's non-recursive surface — variable initializers, default
// argument expressions, generic bounds already bound in stage 1 — in
// same-module scopes only. Full statement-body resolution (including
// return-type inference, which can recurse into other declarations) is
// deferred to stage 3 (INTERNAL_ALL) so that a cycle caught mid-body at
// this stage can't mask a later legitimate non-recursive error.
func (r *Resolver) runInternalNonRecursive() {
	r.walkInitializers(r.program.Statements, r.program.Global.Scope, false)
}

func (r *Resolver) walkInitializers(stmts []ast.Statement, scope *ast.Scope, allowExternal bool) {
	for _, st := range stmts {
		switch d := st.(type) {
		case *ast.Variable:
			r.resolveVariableInit(d, scope, allowExternal)
		case *ast.Function:
			r.resolveParamDefaults(d.Params, d.Scope, allowExternal)
		case *ast.Constructor:
			r.resolveParamDefaults(d.Params, d.Scope, allowExternal)
		case *ast.Class:
			r.walkInitializers(d.Members, d.Scope, allowExternal)
		case *ast.Struct:
			r.walkInitializers(d.Members, d.Scope, allowExternal)
		case *ast.Template:
			r.walkInitializers(d.Members, d.Scope, allowExternal)
		case *ast.Enum:
			r.walkInitializers(d.Members, d.Scope, allowExternal)
		case *ast.Namespace:
			r.walkInitializers(d.Members, d.Scope, allowExternal)
		}
	}
}

func (r *Resolver) resolveParamDefaults(params []*ast.Parameter, scope *ast.Scope, allowExternal bool) {
	for _, p := range params {
		if p.DefaultValue != nil {
			r.resolveExpr(p.DefaultValue, scope, allowExternal)
		}
	}
}

func (r *Resolver) resolveVariableInit(d *ast.Variable, scope *ast.Scope, allowExternal bool) {
	if d.Value != nil {
		r.resolveExpr(d.Value, scope, allowExternal)
	}
	if d.TypeAnnotation == nil && d.InferredType == nil {
		if d.Value != nil && d.Value.GetValueType() != nil {
			d.InferredType = d.Value.GetValueType().GetActualType()
		} else {
			d.InferredType = types.Any()
		}
	}
	if d.Blocks != nil {
		r.resolveVariableBlock(d, scope, allowExternal)
	}
}

func (r *Resolver) resolveVariableBlock(d *ast.Variable, scope *ast.Scope, allowExternal bool) {
	b := d.Blocks
	if b.Get != nil {
		r.resolveFunctionBlock(b.Get, scope, allowExternal)
	}
	if b.Set != nil && b.Set.Body != nil {
		r.resolveFunctionBlock(b.Set.Body, scope, allowExternal)
	}
	if b.Init != nil {
		r.resolveFunctionBlock(b.Init, scope, allowExternal)
	}
}

// runInternalAll implements §4.4 stage 3: full statement-body resolution
// (including return-type inference) over same-module scopes, recursively.
func (r *Resolver) runInternalAll() {
	r.walkBodies(r.program.Statements, false)
}

// runExternalNonRecursive re-runs the same body walk once imports are
// bound (stage 5), allowing cross-module references inside bodies that
// stage 3 had to leave unresolved.
func (r *Resolver) runExternalNonRecursive() {
	r.walkBodies(r.program.Statements, true)
}

func (r *Resolver) walkBodies(stmts []ast.Statement, allowExternal bool) {
	for _, st := range stmts {
		switch d := st.(type) {
		case *ast.Function:
			r.resolveFunctionDecl(d, allowExternal)
		case *ast.Constructor:
			if d.Body != nil {
				r.resolveFunctionBlock(d.Body, d.Scope, allowExternal)
			}
		case *ast.Variable:
			if d.Blocks != nil {
				r.resolveVariableBlock(d, d.Scope, allowExternal)
			}
		case *ast.Class:
			r.walkBodies(d.Members, allowExternal)
		case *ast.Struct:
			r.walkBodies(d.Members, allowExternal)
		case *ast.Template:
			r.walkBodies(d.Members, allowExternal)
		case *ast.Enum:
			r.walkBodies(d.Members, allowExternal)
		case *ast.Namespace:
			r.walkBodies(d.Members, allowExternal)
		}
	}
}

func (r *Resolver) resolveFunctionDecl(fn *ast.Function, allowExternal bool) {
	if fn.Body == nil {
		return
	}
	if fn.ReturnType != nil {
		r.resolveFunctionBlock(fn.Body, fn.Scope, allowExternal)
		return
	}
	// Inferred return type: guard against §4.4.6 recursive inference
	// chains by pushing fn onto the resolving-symbols stack for the
	// duration of its own body walk.
	if r.onStack(fn) {
		fn.InferredReturnType = r.syntheticGeneric(fn)
		return
	}
	r.pushSymbol(fn)
	r.resolveFunctionBlock(fn.Body, fn.Scope, allowExternal)
	fn.InferredReturnType = r.inferBlockReturnType(fn.Body)
	r.popSymbol()
}

// syntheticGeneric implements §4.4.6's recovery: a fresh generic
// parameter substituted in place of a type that would otherwise require
// re-entering a symbol already being resolved.
func (r *Resolver) syntheticGeneric(sym ast.Symbol) types.Type {
	return &types.GenericParam{Name: "%cycle$" + sym.SymbolName()}
}

// resolveFunctionBlock resolves every statement in b, recursing into
// nested blocks. Idempotent: already-resolved expressions are untouched
// by resolveExpr's own value_type guard.
func (r *Resolver) resolveFunctionBlock(b *ast.FunctionBlock, scope *ast.Scope, allowExternal bool) {
	if b == nil {
		return
	}
	bodyScope := b.Scope
	if bodyScope == nil {
		bodyScope = scope
	}
	r.resolveStatements(b.Statements, bodyScope, allowExternal)
}

func (r *Resolver) resolveStatements(stmts []ast.Statement, scope *ast.Scope, allowExternal bool) {
	for _, st := range stmts {
		r.resolveStatement(st, scope, allowExternal)
	}
}

func (r *Resolver) resolveStatement(st ast.Statement, scope *ast.Scope, allowExternal bool) {
	switch s := st.(type) {
	case *ast.Variable:
		r.resolveVariableInit(s, scope, allowExternal)
	case *ast.ExpressionStatement:
		r.resolveExpr(s.Expr, scope, allowExternal)
	case *ast.If:
		r.resolveExpr(s.Cond, scope, allowExternal)
		r.resolveFunctionBlock(s.Then, scope, allowExternal)
		if s.Else != nil {
			r.resolveStatement(s.Else, scope, allowExternal)
		}
	case *ast.While:
		r.resolveExpr(s.Cond, scope, allowExternal)
		r.resolveFunctionBlock(s.Body, scope, allowExternal)
	case *ast.Repeat:
		r.resolveFunctionBlock(s.Body, scope, allowExternal)
		r.resolveExpr(s.Cond, scope, allowExternal)
	case *ast.For:
		r.resolveExpr(s.Iterable, scope, allowExternal)
		r.bindForVariable(s)
		r.resolveFunctionBlock(s.Body, s.Scope, allowExternal)
	case *ast.Switch:
		r.resolveExpr(s.Subject, scope, allowExternal)
		for _, c := range s.Cases {
			for _, p := range c.Patterns {
				r.resolveExpr(p, scope, allowExternal)
			}
			r.resolveStatements(c.Body, scope, allowExternal)
		}
	case *ast.Try:
		r.resolveFunctionBlock(s.Body, scope, allowExternal)
		for _, c := range s.Catches {
			if c.ErrorType != nil {
				r.resolveTypeRef(c.ErrorType, scope, allowExternal)
			}
			catchScope := c.Scope
			if catchScope == nil {
				catchScope = scope
			}
			r.resolveFunctionBlock(c.Body, catchScope, allowExternal)
		}
		if s.Finally != nil {
			r.resolveFunctionBlock(s.Finally, scope, allowExternal)
		}
	case *ast.Return:
		if s.Value != nil {
			r.resolveExpr(s.Value, scope, allowExternal)
		}
	case *ast.Throw:
		r.resolveExpr(s.Value, scope, allowExternal)
	case *ast.SingleToken:
		// break/continue/fall: no contained expression.
	case *ast.FunctionBlock:
		r.resolveFunctionBlock(s, scope, allowExternal)
	}
}

// bindForVariable assigns the loop variable's inferred type from the
// iterable's element type, once the iterable has resolved.
func (r *Resolver) bindForVariable(s *ast.For) {
	if s.Scope == nil {
		return
	}
	iterType := typeOrNil(s.Iterable)
	if iterType == nil {
		return
	}
	var elem types.Type
	switch it := iterType.(type) {
	case *types.Array:
		elem = it.Element
	case *types.Map:
		elem = &types.Tuple{Elements: []types.Type{it.Key, it.Value}}
	default:
		elem = types.Any()
	}
	for _, sym := range s.Scope.Symbols() {
		if v, ok := sym.(*ast.Variable); ok && v.Tok.Text == s.VarName.Text && v.InferredType == nil && v.TypeAnnotation == nil {
			v.InferredType = elem
		}
	}
}

// inferBlockReturnType implements the non-declared-return-type half of
// §4.4.6: walk every top-level Return in b (not descending into nested
// FunctionBlocks, which belong to nested lambdas/functions with their
// own inference) and fold their value types through GetMinCommonType.
// A block with no Return infers Void.
func (r *Resolver) inferBlockReturnType(b *ast.FunctionBlock) types.Type {
	if b == nil {
		return types.Void()
	}
	var acc types.Type
	var walk func([]ast.Statement)
	walk = func(stmts []ast.Statement) {
		for _, st := range stmts {
			switch s := st.(type) {
			case *ast.Return:
				var t types.Type = types.Void()
				if s.Value != nil && s.Value.GetValueType() != nil {
					t = s.Value.GetValueType().GetActualType()
				}
				if acc == nil {
					acc = t
				} else {
					acc = types.GetMinCommonType(acc, t)
				}
			case *ast.If:
				walk(s.Then.Statements)
				if s.Else != nil {
					walk([]ast.Statement{s.Else})
				}
			case *ast.While:
				walk(s.Body.Statements)
			case *ast.Repeat:
				walk(s.Body.Statements)
			case *ast.For:
				walk(s.Body.Statements)
			case *ast.Switch:
				for _, c := range s.Cases {
					walk(c.Body)
				}
			case *ast.Try:
				walk(s.Body.Statements)
				for _, c := range s.Catches {
					walk(c.Body.Statements)
				}
				if s.Finally != nil {
					walk(s.Finally.Statements)
				}
			}
		}
	}
	walk(b.Statements)
	if acc == nil {
		return types.Void()
	}
	return acc
}
