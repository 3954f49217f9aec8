package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/accelec/accele/internal/config"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/pipeline"
)

// extractArchive materializes a txtar archive's files under dir, returning
// the absolute path of entryName (the module CompileEntry should be handed).
func extractArchive(t *testing.T, dir, archive, entryName string) string {
	t.Helper()
	ar := txtar.Parse([]byte(archive))
	var entryPath string
	for _, f := range ar.Files {
		path := filepath.Join(dir, f.Name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, f.Data, 0o644))
		if f.Name == entryName {
			entryPath = path
		}
	}
	require.NotEmpty(t, entryPath, "archive has no file named %q", entryName)
	return entryPath
}

// This fixture mirrors a small import graph: main.accele imports a public
// symbol from lib/geometry.accele, exercising the ImportHandler's relative
// path resolution (§4.3) and the Resolver's EXTERNAL_* stages across module
// boundaries in one self-contained text archive, the idiomatic way Go
// compiler-style projects keep multi-file fixtures in one file.
const importGraphArchive = `
-- main.accele --
import area from .lib.geometry

fun reportArea() {
    var a: Int = area
}
-- lib/geometry.accele --
public var area: Int = 42
`

func TestCompileEntryAcrossMultiModuleArchive(t *testing.T) {
	dir := t.TempDir()
	entry := extractArchive(t, dir, importGraphArchive, "main.accele")

	ctx := config.New(logrus.PanicLevel)
	diag := diagnostics.NewDiagnoser(ctx.RunID, nil)
	run := pipeline.NewRun(ctx, diag)

	_, err := run.CompileEntry(entry)
	require.NoError(t, err)
	assert.False(t, diag.HasErrors(), "expected no errors, got %v", diag.Records())

	libAbs, _ := filepath.Abs(filepath.Join(dir, "lib", "geometry.accele"))
	_, ok := run.Ctx.Lookup(libAbs)
	assert.True(t, ok, "the imported lib/geometry module should be registered")
}

// A variant where the imported symbol doesn't exist: the ImportHandler
// should still follow the import (the module itself loads fine) but report
// an unresolved-symbol diagnostic for the missing target.
const missingTargetArchive = `
-- main.accele --
import perimeter from .lib.geometry
-- lib/geometry.accele --
public var area: Int = 42
`

func TestCompileEntryReportsUndefinedImportTarget(t *testing.T) {
	dir := t.TempDir()
	entry := extractArchive(t, dir, missingTargetArchive, "main.accele")

	ctx := config.New(logrus.PanicLevel)
	diag := diagnostics.NewDiagnoser(ctx.RunID, nil)
	run := pipeline.NewRun(ctx, diag)

	_, err := run.CompileEntry(entry)
	require.NoError(t, err)

	found := false
	for _, d := range diag.Records() {
		if d.Code == diagnostics.UNRESOLVED_SYMBOL {
			found = true
		}
	}
	assert.True(t, found, "expected an unresolved-symbol diagnostic for the missing import target, got %v", diag.Records())
}

// A whole-module import bound to a bare name (`import A`, no `from`/`as`)
// exposes the imported module's top level only through qualified access
// (`A.C`), and visibility is still checked at the referenced member itself.
const visibilityArchive = `
-- b.accele --
import A

fun useC() {
    var v: Int = A.C.x
}
-- A.accele --
private class C {
    public var x: Int = 1
}
`

func TestCompileEntryReportsSymbolNotVisibleThroughImportAlias(t *testing.T) {
	dir := t.TempDir()
	entry := extractArchive(t, dir, visibilityArchive, "b.accele")

	ctx := config.New(logrus.PanicLevel)
	diag := diagnostics.NewDiagnoser(ctx.RunID, nil)
	run := pipeline.NewRun(ctx, diag)

	_, err := run.CompileEntry(entry)
	require.NoError(t, err)

	found := false
	for _, d := range diag.Records() {
		if d.Code == diagnostics.SYMBOL_NOT_VISIBLE {
			found = true
		}
	}
	assert.True(t, found, "expected a symbol-not-visible diagnostic for the private C reference, got %v", diag.Records())
}
