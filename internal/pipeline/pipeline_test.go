package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelec/accele/internal/config"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/pipeline"
)

func writeModule(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func newRun(t *testing.T) (*pipeline.Run, *diagnostics.Diagnoser) {
	t.Helper()
	ctx := config.New(logrus.PanicLevel)
	diag := diagnostics.NewDiagnoser(ctx.RunID, nil)
	return pipeline.NewRun(ctx, diag), diag
}

func TestCompileEntryResolvesSimpleModule(t *testing.T) {
	dir := t.TempDir()
	path := writeModule(t, dir, "main.accele", "var x: Int = 1\n")

	run, diag := newRun(t)
	prog, err := run.CompileEntry(path)
	require.NoError(t, err)
	require.NotNil(t, prog)
	assert.False(t, diag.HasErrors())
}

// A top-level var's initializer is only ever walked once, at stage 2
// (INTERNAL_NON_RECURSIVE), with allowExternal=false — and resolveIdentifier
// only reports UNDEFINED_SYMBOL when allowExternal is true. So an undefined
// reference has to live inside a function body to ever be re-walked with
// allowExternal=true (stage 5) and actually produce a diagnostic.
func TestCompileEntryReportsUndefinedSymbol(t *testing.T) {
	dir := t.TempDir()
	path := writeModule(t, dir, "main.accele", "fun f() {\n    var x: Int = y\n}\n")

	run, diag := newRun(t)
	_, err := run.CompileEntry(path)
	require.NoError(t, err)

	require.True(t, diag.HasErrors())
	found := false
	for _, d := range diag.Records() {
		if d.Code == diagnostics.UNDEFINED_SYMBOL {
			found = true
		}
	}
	assert.True(t, found, "expected an undefined-symbol diagnostic, got %v", diag.Records())
}

func TestCompileEntryFollowsImport(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "util.accele", "public var shared: Int = 1\n")
	entry := writeModule(t, dir, "main.accele", "import shared from .util\nfun useShared() {\n    var x: Int = shared\n}\n")

	run, diag := newRun(t)
	_, err := run.CompileEntry(entry)
	require.NoError(t, err)
	assert.False(t, diag.HasErrors(), "expected no errors, got %v", diag.Records())

	utilAbs, _ := filepath.Abs(filepath.Join(dir, "util.accele"))
	_, ok := run.Ctx.Lookup(utilAbs)
	assert.True(t, ok, "the imported module should be registered in the module table")
}

func TestCompileEntryMissingFile(t *testing.T) {
	run, _ := newRun(t)
	_, err := run.CompileEntry(filepath.Join(t.TempDir(), "nope.accele"))
	assert.Error(t, err)
}
