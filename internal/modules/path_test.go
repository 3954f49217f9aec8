package modules_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelec/accele/internal/modules"
)

func TestParseDottedPathCurrentDir(t *testing.T) {
	spec := modules.ParseDottedPath(".a.b")
	assert.True(t, spec.Relative)
	assert.Equal(t, 0, spec.Climbs)
	assert.Equal(t, []string{"a", "b"}, spec.Segments)
}

func TestParseDottedPathClimb(t *testing.T) {
	spec := modules.ParseDottedPath("...a.b.c")
	assert.True(t, spec.Relative)
	assert.Equal(t, 2, spec.Climbs)
	assert.Equal(t, []string{"a", "b", "c"}, spec.Segments)
}

func TestParseDottedPathAbsoluteChain(t *testing.T) {
	spec := modules.ParseDottedPath("a.b")
	assert.False(t, spec.Relative)
	assert.Equal(t, 0, spec.Climbs)
	assert.Equal(t, []string{"a", "b"}, spec.Segments)
}

func TestResolveRelativeFindsSiblingFile(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "util.accele")
	require.NoError(t, os.WriteFile(target, []byte(""), 0o644))

	spec := modules.ParseDottedPath(".util")
	abs, ok := modules.Resolve(spec, dir, nil, "")
	require.True(t, ok)
	wantAbs, _ := filepath.Abs(target)
	assert.Equal(t, wantAbs, abs)
}

func TestResolveSearchesImportDirs(t *testing.T) {
	importing := t.TempDir()
	libDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(libDir, "json.acldef"), []byte(""), 0o644))

	spec := modules.ParseDottedPath("json")
	abs, ok := modules.Resolve(spec, importing, []string{libDir}, "")
	require.True(t, ok)
	want, _ := filepath.Abs(filepath.Join(libDir, "json.acldef"))
	assert.Equal(t, want, abs)
}

func TestResolveMissingModuleFails(t *testing.T) {
	dir := t.TempDir()
	spec := modules.ParseDottedPath("nope")
	_, ok := modules.Resolve(spec, dir, nil, "")
	assert.False(t, ok)
}

func TestResolveLiteralPath(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "config.accele")
	require.NoError(t, os.WriteFile(target, []byte(""), 0o644))

	spec := modules.PathSpec{Literal: target}
	abs, ok := modules.Resolve(spec, dir, nil, "")
	require.True(t, ok)
	want, _ := filepath.Abs(target)
	assert.Equal(t, want, abs)
}
