package parser_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/lexer"
	"github.com/accelec/accele/internal/parser"
	"github.com/accelec/accele/internal/token"
)

func parse(t *testing.T, source string) (*ast.Program, *diagnostics.Diagnoser) {
	t.Helper()
	diag := diagnostics.NewDiagnoser(uuid.New(), nil)
	l := lexer.New("test.accele", source, diag, nil)
	p := parser.New(l, diag, nil, "test", "test.accele")
	return p.ParseProgram(), diag
}

func TestParseVariableWithTypeAndInitializer(t *testing.T) {
	prog, diag := parse(t, "var x: Int = 1\n")
	require.Empty(t, diag.Records())
	require.Len(t, prog.Statements, 1)

	v := prog.Statements[0].(*ast.Variable)
	assert.Equal(t, "x", v.Tok.Text)
	assert.False(t, v.IsConst)
	require.NotNil(t, v.TypeAnnotation)
	lit := v.Value.(*ast.Literal)
	assert.Equal(t, ast.LitInteger, lit.Kind)
}

func TestParseConstDeclaration(t *testing.T) {
	prog, diag := parse(t, "const pi: Float = 3.14\n")
	require.Empty(t, diag.Records())
	v := prog.Statements[0].(*ast.Variable)
	assert.True(t, v.IsConst)
}

func TestParseBinaryExpressionPrecedence(t *testing.T) {
	prog, diag := parse(t, "var x = 1 + 2 * 3\n")
	require.Empty(t, diag.Records())
	v := prog.Statements[0].(*ast.Variable)

	top := v.Value.(*ast.Binary)
	assert.Equal(t, token.PLUS, top.Tok.Kind)
	_, leftIsLiteral := top.Left.(*ast.Literal)
	assert.True(t, leftIsLiteral)

	right := top.Right.(*ast.Binary)
	assert.Equal(t, token.STAR, right.Tok.Kind)
}

func TestParseFunctionDeclarationWithReturnType(t *testing.T) {
	prog, diag := parse(t, "fun add(a: Int, b: Int) -> Int {\n    return a + b\n}\n")
	require.Empty(t, diag.Records())
	fn := prog.Statements[0].(*ast.Function)
	assert.Equal(t, "add", fn.Tok.Text)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Tok.Text)
	require.NotNil(t, fn.ReturnType)
	require.Len(t, fn.Body.Statements, 1)
	_, isReturn := fn.Body.Statements[0].(*ast.Return)
	assert.True(t, isReturn)
}

func TestParseFunctionCall(t *testing.T) {
	prog, diag := parse(t, "var x = add(1, 2)\n")
	require.Empty(t, diag.Records())
	v := prog.Statements[0].(*ast.Variable)
	call := v.Value.(*ast.FunctionCall)
	callee := call.Callee.(*ast.IdentifierExpr)
	assert.Equal(t, "add", callee.Tok.Text)
	assert.Len(t, call.Args, 2)
}

func TestParseIfElse(t *testing.T) {
	prog, diag := parse(t, "fun f() {\n    if x {\n        y\n    } else {\n        z\n    }\n}\n")
	require.Empty(t, diag.Records())
	fn := prog.Statements[0].(*ast.Function)
	ifStmt := fn.Body.Statements[0].(*ast.If)
	require.NotNil(t, ifStmt.Cond)
	require.NotNil(t, ifStmt.Else)
}

func TestParseWhileLoop(t *testing.T) {
	prog, diag := parse(t, "fun f() {\n    while x {\n        y\n    }\n}\n")
	require.Empty(t, diag.Records())
	fn := prog.Statements[0].(*ast.Function)
	_, ok := fn.Body.Statements[0].(*ast.While)
	assert.True(t, ok)
}

func TestParseImportSourceShape(t *testing.T) {
	prog, diag := parse(t, "import .util as u\n")
	require.Empty(t, diag.Records())
	require.Len(t, prog.Global.Imports, 1)
	imp := prog.Global.Imports[0]
	assert.Equal(t, ".util", imp.Source)
	require.NotNil(t, imp.Alias)
	assert.Equal(t, "u", imp.Alias.Text)
	assert.Empty(t, imp.Targets)
}

func TestParseImportFromShape(t *testing.T) {
	prog, diag := parse(t, "import {a, b} from .util\n")
	require.Empty(t, diag.Records())
	imp := prog.Global.Imports[0]
	assert.Equal(t, ".util", imp.Source)
	require.Len(t, imp.Targets, 2)
	assert.Equal(t, "a", imp.Targets[0].Tok.Text)
	assert.Equal(t, "b", imp.Targets[1].Tok.Text)
}

func TestParseClassDeclaration(t *testing.T) {
	prog, diag := parse(t, "class Point {\n    var x: Int = 0\n    var y: Int = 0\n}\n")
	require.Empty(t, diag.Records())
	cls := prog.Statements[0].(*ast.Class)
	assert.Equal(t, "Point", cls.Tok.Text)
	assert.Len(t, cls.Members, 2)
}

func TestParseUnterminatedBlockReportsDiagnostic(t *testing.T) {
	_, diag := parse(t, "fun f() {\n    var x = 1\n")
	assert.NotEmpty(t, diag.Records())
}

func TestParseSrcLockAtTopIsClean(t *testing.T) {
	_, diag := parse(t, "@srclock\nvar x: Int = 1\n")
	for _, d := range diag.Records() {
		assert.NotEqual(t, diagnostics.NONFRONTED_SOURCE_LOCK, d.Code)
	}
}

func TestParseSrcLockNotAtTopReportsWarning(t *testing.T) {
	_, diag := parse(t, "var x: Int = 1\n@srclock\n")
	found := false
	for _, d := range diag.Records() {
		if d.Code == diagnostics.NONFRONTED_SOURCE_LOCK {
			found = true
		}
	}
	assert.True(t, found, "expected a nonfronted-source-lock diagnostic, got %v", diag.Records())
}
