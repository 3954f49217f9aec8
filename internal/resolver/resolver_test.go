package resolver_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/config"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/lexer"
	"github.com/accelec/accele/internal/modules"
	"github.com/accelec/accele/internal/parser"
	"github.com/accelec/accele/internal/resolver"
	"github.com/accelec/accele/internal/types"
)

func parseProgram(t *testing.T, source string) (*ast.Program, *diagnostics.Diagnoser) {
	t.Helper()
	diag := diagnostics.NewDiagnoser(uuid.New(), nil)
	l := lexer.New("test.accele", source, diag, nil)
	p := parser.New(l, diag, nil, "test", "test.accele")
	return p.ParseProgram(), diag
}

func TestRunToStageAdvancesOneStepAtATime(t *testing.T) {
	prog, diag := parseProgram(t, "var x: Int = 1\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")

	assert.Equal(t, resolver.Unresolved, r.Stage())
	r.RunToStage(resolver.InternalTypes)
	assert.Equal(t, resolver.InternalTypes, r.Stage())
	r.RunToStage(resolver.InternalNonRecursive)
	assert.Equal(t, resolver.InternalNonRecursive, r.Stage())
}

func TestRunReachesResolved(t *testing.T) {
	prog, diag := parseProgram(t, "var x: Int = 1\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")
	r.Run()
	assert.Equal(t, resolver.Resolved, r.Stage())
}

func TestRunIsIdempotentAtResolved(t *testing.T) {
	prog, diag := parseProgram(t, "var x: Int = 1\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")
	r.Run()
	r.Run()
	assert.Equal(t, resolver.Resolved, r.Stage())
}

func TestVariableWithoutAnnotationInfersFromValue(t *testing.T) {
	prog, diag := parseProgram(t, "var x = 1\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")
	r.Run()

	require.Len(t, prog.Statements, 1)
	v := prog.Statements[0].(*ast.Variable)
	require.NotNil(t, v.InferredType)
	assert.Equal(t, "Int", v.InferredType.(*types.Builtin).Name)
}

func TestNilCoalesceOnOptionalResolves(t *testing.T) {
	prog, diag := parseProgram(t, "var x: Int? = 1\nvar y = x ?? 2\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")
	r.Run()

	assert.False(t, diag.HasErrors(), "expected no errors, got %v", diag.Records())
	y := prog.Statements[1].(*ast.Variable)
	assert.Equal(t, "Int", y.InferredType.(*types.Builtin).Name)
}

func TestNilCoalesceOnNonOptionalReportsDiagnostic(t *testing.T) {
	prog, diag := parseProgram(t, "var x: Int = 1\nvar y = x ?? 2\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")
	r.Run()

	found := false
	for _, d := range diag.Records() {
		if d.Code == diagnostics.NIL_COALESCE_NON_OPTIONAL {
			found = true
		}
	}
	assert.True(t, found, "expected a nil-coalesce-non-optional diagnostic, got %v", diag.Records())
}

func TestDuplicateSymbolIsReported(t *testing.T) {
	prog, diag := parseProgram(t, "var x: Int = 1\nvar x: Int = 2\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")
	r.Run()

	found := false
	for _, d := range diag.Records() {
		if d.Code == diagnostics.DUPLICATE_SYMBOL {
			found = true
		}
	}
	assert.True(t, found, "expected a duplicate-symbol diagnostic, got %v", diag.Records())
}

func TestOverloadedFunctionsAreNotDuplicates(t *testing.T) {
	prog, diag := parseProgram(t, "fun f(a: Int) {\n}\nfun f(a: Int, b: Int) {\n}\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")
	r.Run()

	for _, d := range diag.Records() {
		assert.NotEqual(t, diagnostics.DUPLICATE_SYMBOL, d.Code, "overloaded functions must not be flagged as duplicates")
	}
}

func TestTemplateCannotBeConstructedDirectly(t *testing.T) {
	prog, diag := parseProgram(t, "template Shape {\n}\nfun f() {\n    var s = Shape()\n}\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")
	r.Run()

	found := false
	for _, d := range diag.Records() {
		if d.Code == diagnostics.INVALID_TEMPLATE_CONSTRUCTOR {
			found = true
		}
	}
	assert.True(t, found, "expected an invalid-template-constructor diagnostic, got %v", diag.Records())
}

func TestTooManyArgumentsIsReported(t *testing.T) {
	prog, diag := parseProgram(t, "fun f(a: Int) {\n}\nfun g() {\n    f(1, 2)\n}\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")
	r.Run()

	found := false
	for _, d := range diag.Records() {
		if d.Code == diagnostics.TOO_MANY_ARGUMENTS {
			found = true
		}
	}
	assert.True(t, found, "expected a too-many-arguments diagnostic, got %v", diag.Records())
}

func TestOverloadResolutionPicksClosestMatch(t *testing.T) {
	prog, diag := parseProgram(t, "fun f(x: Int) {\n}\nfun f(x: Double) {\n}\nfun g() {\n    f(1)\n}\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")
	r.Run()

	assert.False(t, diag.HasErrors(), "expected no errors, got %v", diag.Records())
	require.Len(t, prog.Statements, 3)
	g := prog.Statements[2].(*ast.Function)
	require.Len(t, g.Body.Statements, 1)
	call := g.Body.Statements[0].(*ast.ExpressionStatement).Expr.(*ast.FunctionCall)
	require.NotNil(t, call.Referent)
	chosen := call.Referent.(*ast.Function)
	require.Len(t, chosen.Params, 1)
	require.NotNil(t, chosen.Params[0].TypeAnnotation)
	assert.Equal(t, "Int", chosen.Params[0].TypeAnnotation.GetActualType().(*types.Builtin).Name,
		"f(1) should resolve to the Int overload, not Double")
}

func TestMutualRecursionInfersSyntheticGenericWithoutDiagnostic(t *testing.T) {
	prog, diag := parseProgram(t, "fun a() {\n    return b()\n}\nfun b() {\n    return a()\n}\n")
	r := resolver.New(config.New(logrus.PanicLevel), diag, types.Default(), nil, prog, "")
	r.Run()

	assert.False(t, diag.HasErrors(), "mutual recursion should not produce a diagnostic, got %v", diag.Records())
	require.Len(t, prog.Statements, 2)
	a := prog.Statements[0].(*ast.Function)
	b := prog.Statements[1].(*ast.Function)
	require.NotNil(t, a.InferredReturnType, "a's return type should have been inferred to a synthetic generic")
	require.NotNil(t, b.InferredReturnType, "b's return type should have been inferred to a synthetic generic")
	_, aIsGeneric := a.InferredReturnType.(*types.GenericParam)
	_, bIsGeneric := b.InferredReturnType.(*types.GenericParam)
	assert.True(t, aIsGeneric, "a's inferred return type should be the synthetic generic placeholder, got %T", a.InferredReturnType)
	assert.True(t, bIsGeneric, "b's inferred return type should be the synthetic generic placeholder, got %T", b.InferredReturnType)
}

func TestUnresolvedImportIsReported(t *testing.T) {
	prog, diag := parseProgram(t, "import something from .nope\nvar x: Int = 1\n")
	ctx := config.New(logrus.PanicLevel)
	loader := modules.NewLoader(ctx, func(c *config.Context, absPath string) (*ast.GlobalScope, error) {
		t.Fatal("Compile should never be called for an import that fails to resolve a path")
		return nil, nil
	})
	r := resolver.New(ctx, diag, types.Default(), loader, prog, "/does/not/exist")
	r.Run()

	found := false
	for _, d := range diag.Records() {
		if d.Code == diagnostics.UNRESOLVED_IMPORT {
			found = true
		}
	}
	assert.True(t, found, "expected an unresolved-import diagnostic, got %v", diag.Records())
}
