package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/token"
)

func namedVar(name string) *ast.Variable {
	return &ast.Variable{Tok: token.Token{Kind: token.ID, Text: name}}
}

func TestScopeDeclareAndLookup(t *testing.T) {
	s := ast.NewScope(nil, nil)
	v := namedVar("x")
	s.Declare(v)

	found := s.Lookup("x")
	require.Len(t, found, 1)
	assert.Same(t, v, found[0])
	assert.Empty(t, s.Lookup("y"))
}

func TestScopeLookupDoesNotRecurseToParent(t *testing.T) {
	parent := ast.NewScope(nil, nil)
	parent.Declare(namedVar("outer"))
	child := ast.NewScope(parent, nil)

	assert.Empty(t, child.Lookup("outer"))
}

func TestScopeSymbolsPreservesDeclarationOrder(t *testing.T) {
	s := ast.NewScope(nil, nil)
	a, b, c := namedVar("a"), namedVar("b"), namedVar("c")
	s.Declare(a)
	s.Declare(b)
	s.Declare(c)

	assert.Equal(t, []ast.Symbol{a, b, c}, s.Symbols())
}

func TestScopeIsGlobal(t *testing.T) {
	global := &ast.GlobalScope{ModuleName: "m"}
	global.Scope = ast.NewScope(nil, global)
	assert.True(t, global.Scope.IsGlobal())

	inner := ast.NewScope(global.Scope, nil)
	assert.False(t, inner.IsGlobal())
}

func TestVisibilityOfDefaultsWhenNoModifier(t *testing.T) {
	assert.Equal(t, ast.VisDefault, ast.VisibilityOf(nil))
}

func TestVisibilityOfReadsModifierKind(t *testing.T) {
	mods := []*ast.Modifier{{Token: token.Token{Kind: token.PROTECTED}}}
	assert.Equal(t, ast.VisProtected, ast.VisibilityOf(mods))
}

func TestIsStatic(t *testing.T) {
	assert.False(t, ast.IsStatic(nil))
	mods := []*ast.Modifier{{Token: token.Token{Kind: token.STATIC}}}
	assert.True(t, ast.IsStatic(mods))
}

func TestProgramGetTokenFromFirstStatement(t *testing.T) {
	v := namedVar("x")
	p := &ast.Program{Statements: []ast.Statement{v}}
	assert.Equal(t, v.GetToken(), p.GetToken())
}

func TestProgramGetTokenEmptyIsZero(t *testing.T) {
	p := &ast.Program{}
	assert.True(t, p.GetToken().IsZero())
}
