package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/accelec/accele/internal/config"
)

func TestLoadFileConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "accelec.yaml")
	body := "import_dirs:\n  - ./lib\nglobal_import_dir: /usr/share/accele\nno_builtins: true\nenable_warnings:\n  - nonfronted-source-lock\ndisable_warnings:\n  - static-access-via-instance\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	fc, err := config.LoadFileConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"./lib"}, fc.ImportDirs)
	assert.Equal(t, "/usr/share/accele", fc.GlobalImportDir)
	assert.True(t, fc.NoBuiltins)
	assert.Equal(t, []string{"nonfronted-source-lock"}, fc.EnableWarnings)
	assert.Equal(t, []string{"static-access-via-instance"}, fc.DisableWarnings)
}

func TestLoadFileConfigMissingFile(t *testing.T) {
	_, err := config.LoadFileConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestWarningStateEnabledDefaultsAndOverrides(t *testing.T) {
	ws := config.NewWarningState()
	assert.True(t, ws.Enabled("static-access-via-instance", true))

	ws.Disable("static-access-via-instance")
	assert.False(t, ws.Enabled("static-access-via-instance", true))

	ws.Enable("static-access-via-instance")
	assert.True(t, ws.Enabled("static-access-via-instance", false))
}

func TestWarningStateOverridesReflectsRawMap(t *testing.T) {
	ws := config.NewWarningState()
	ws.Disable("nonfronted-source-lock")
	overrides := ws.Overrides()
	assert.Equal(t, map[string]bool{"nonfronted-source-lock": false}, overrides)
}

func TestContextRegisterAndLookup(t *testing.T) {
	ctx := config.New(logrus.PanicLevel)
	mod := &config.Module{AbsPath: "/a/b.accele", Stage: 1}
	ctx.RegisterModule(mod)

	got, ok := ctx.Lookup("/a/b.accele")
	require.True(t, ok)
	assert.Same(t, mod, got)

	_, ok = ctx.Lookup("/missing.accele")
	assert.False(t, ok)
}

func TestContextPanicsFromOtherGoroutine(t *testing.T) {
	ctx := config.New(logrus.PanicLevel)
	done := make(chan any, 1)
	go func() {
		defer func() { done <- recover() }()
		ctx.RegisterModule(&config.Module{AbsPath: "/x.accele"})
	}()
	r := <-done
	assert.NotNil(t, r, "accessing a Context from a foreign goroutine should panic")
}
