package modules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/config"
	"github.com/accelec/accele/internal/modules"
	"github.com/accelec/accele/internal/token"
)

func newTestContext() *config.Context {
	ctx := config.New(logrus.PanicLevel)
	return ctx
}

func TestLoaderCompilesOnFirstLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "util.accele"), []byte(""), 0o644))

	ctx := newTestContext()
	calls := 0
	loader := modules.NewLoader(ctx, func(c *config.Context, absPath string) (*ast.GlobalScope, error) {
		calls++
		g := &ast.GlobalScope{ModuleName: "util", ModulePath: absPath}
		g.Scope = ast.NewScope(nil, g)
		c.RegisterModule(&config.Module{AbsPath: absPath, Program: g})
		return g, nil
	})

	g1, err := loader.Load(dir, modules.ParseDottedPath(".util"))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	g2, err := loader.Load(dir, modules.ParseDottedPath(".util"))
	require.NoError(t, err)
	assert.Same(t, g1, g2)
	assert.Equal(t, 1, calls, "a memoized module must not be recompiled")
}

func TestLoaderUnresolvedImport(t *testing.T) {
	dir := t.TempDir()
	ctx := newTestContext()
	loader := modules.NewLoader(ctx, func(c *config.Context, absPath string) (*ast.GlobalScope, error) {
		t.Fatal("Compile should never be called when resolution fails")
		return nil, nil
	})

	_, err := loader.Load(dir, modules.ParseDottedPath(".missing"))
	assert.Error(t, err)
}

func TestResolveTargetVisibility(t *testing.T) {
	target := &ast.GlobalScope{ModuleName: "lib"}
	target.Scope = ast.NewScope(nil, target)

	pub := &ast.Function{
		Tok:       token.Token{Kind: token.ID, Text: "pubFn"},
		Modifiers: []*ast.Modifier{{Token: token.Token{Kind: token.PUBLIC}}},
	}
	target.Scope.Declare(pub)

	sym, ok := modules.ResolveTarget(target, "pubFn")
	require.True(t, ok)
	assert.Equal(t, pub, sym)
}
