package symbols_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/symbols"
	"github.com/accelec/accele/internal/token"
)

func declareVar(scope *ast.Scope, name string, mods ...*ast.Modifier) *ast.Variable {
	v := &ast.Variable{Tok: token.Token{Kind: token.ID, Text: name}, Modifiers: mods}
	scope.Declare(v)
	return v
}

func varCriteria() symbols.Criteria {
	return symbols.Criteria{Recursive: true, Targets: map[symbols.TargetKind]bool{symbols.TargetVariable: true}}
}

func TestLookupOwnScope(t *testing.T) {
	global := &ast.GlobalScope{ModuleName: "m"}
	global.Scope = ast.NewScope(nil, global)
	declareVar(global.Scope, "x")

	table := symbols.Table{}
	cands := table.Lookup(global.Scope, "x", varCriteria())
	require.Len(t, cands, 1)
	assert.Equal(t, "x", cands[0].Sym.SymbolName())
}

func TestLookupRecursesToLexicalParent(t *testing.T) {
	global := &ast.GlobalScope{ModuleName: "m"}
	global.Scope = ast.NewScope(nil, global)
	declareVar(global.Scope, "outer")

	inner := ast.NewScope(global.Scope, nil)

	table := symbols.Table{}
	cands := table.Lookup(inner, "outer", varCriteria())
	require.Len(t, cands, 1)
	assert.Equal(t, ast.OriginStatic, cands[0].Origin)
}

func TestLookupNonRecursiveStopsAtOwnScope(t *testing.T) {
	global := &ast.GlobalScope{ModuleName: "m"}
	global.Scope = ast.NewScope(nil, global)
	declareVar(global.Scope, "outer")
	inner := ast.NewScope(global.Scope, nil)

	crit := varCriteria()
	crit.Recursive = false
	table := symbols.Table{}
	cands := table.Lookup(inner, "outer", crit)
	assert.Empty(t, cands)
}

func TestValidateVisibilityPrivateOutsideScopeFails(t *testing.T) {
	owner := &ast.GlobalScope{ModuleName: "m"}
	owner.Scope = ast.NewScope(nil, owner)
	priv := declareVar(owner.Scope, "secret", &ast.Modifier{Token: token.Token{Kind: token.PRIVATE}})

	otherGlobal := &ast.GlobalScope{ModuleName: "other"}
	otherGlobal.Scope = ast.NewScope(nil, otherGlobal)

	cand := symbols.Candidate{Sym: priv, Scope: owner.Scope}
	problem := symbols.ValidateVisibility(cand, otherGlobal.Scope)
	require.NotNil(t, problem)
	assert.Equal(t, "secret", priv.SymbolName())
}

func TestValidateVisibilityPublicAlwaysOk(t *testing.T) {
	owner := &ast.GlobalScope{ModuleName: "m"}
	owner.Scope = ast.NewScope(nil, owner)
	pub := declareVar(owner.Scope, "open", &ast.Modifier{Token: token.Token{Kind: token.PUBLIC}})

	otherGlobal := &ast.GlobalScope{ModuleName: "other"}
	otherGlobal.Scope = ast.NewScope(nil, otherGlobal)

	cand := symbols.Candidate{Sym: pub, Scope: owner.Scope}
	assert.Nil(t, symbols.ValidateVisibility(cand, otherGlobal.Scope))
}

func TestValidateGenericsArityMismatch(t *testing.T) {
	declared := []*ast.GenericType{{Tok: token.Token{Text: "T"}}}
	problems := symbols.ValidateGenerics(declared, nil, true)
	require.Len(t, problems, 1)
}

func TestFirstSelectableSkipsInvalidCandidate(t *testing.T) {
	owner := &ast.GlobalScope{ModuleName: "m"}
	owner.Scope = ast.NewScope(nil, owner)
	priv := declareVar(owner.Scope, "x", &ast.Modifier{Token: token.Token{Kind: token.PRIVATE}})

	otherGlobal := &ast.GlobalScope{ModuleName: "other"}
	otherGlobal.Scope = ast.NewScope(nil, otherGlobal)
	pub := declareVar(otherGlobal.Scope, "x", &ast.Modifier{Token: token.Token{Kind: token.PUBLIC}})

	cands := []symbols.Candidate{
		{Sym: priv, Scope: owner.Scope},
		{Sym: pub, Scope: otherGlobal.Scope},
	}
	selected, problems, ok := symbols.FirstSelectable(cands, otherGlobal.Scope, symbols.AccessPlain, nil, false)
	require.True(t, ok)
	assert.Nil(t, problems)
	assert.Same(t, pub, selected.Sym)
}
