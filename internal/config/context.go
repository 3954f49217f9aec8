package config

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/petermattis/goid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// FileConfig is the shape of an optional `accelec.yaml` project file: a
// durable alternative to repeating `-I` / `--enable-warning` flags on
// every invocation.
type FileConfig struct {
	ImportDirs      []string `yaml:"import_dirs,omitempty"`
	GlobalImportDir string   `yaml:"global_import_dir,omitempty"`
	NoBuiltins      bool     `yaml:"no_builtins,omitempty"`
	EnableWarnings  []string `yaml:"enable_warnings,omitempty"`
	DisableWarnings []string `yaml:"disable_warnings,omitempty"`
}

// LoadFileConfig reads and parses a YAML project file at path.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return &fc, nil
}

// Module is one compiled-or-compiling source file, keyed by its absolute
// path in CompilerContext.Modules. The Program field is typed as `any`:
// the pipeline stores an *ast.Program in it, and the modules loader
// type-asserts it back (accepting a bare *ast.GlobalScope as well).
type Module struct {
	AbsPath string
	Program any
	Stage   int // mirrors resolver.Stage; kept as int to avoid an import cycle
}

// WarningState tracks which diagnostic ids are enabled/disabled relative
// to their registered default (§6's enable/disable-by-id flags).
type WarningState struct {
	overrides map[string]bool
}

func NewWarningState() *WarningState { return &WarningState{overrides: map[string]bool{}} }

func (w *WarningState) Enable(id string)  { w.overrides[id] = true }
func (w *WarningState) Disable(id string) { w.overrides[id] = false }

// Enabled reports whether id should fire, given defaultEnabled (the
// registry's default for that code) and any explicit override.
func (w *WarningState) Enabled(id string, defaultEnabled bool) bool {
	if v, ok := w.overrides[id]; ok {
		return v
	}
	return defaultEnabled
}

// Overrides returns the raw enable/disable-by-id map, in the shape
// diagnostics.NewDiagnoser expects (a disable-only absence-means-default
// map, unlike Enabled's two-argument form).
func (w *WarningState) Overrides() map[string]bool {
	return w.overrides
}

// Context is the compiler's single piece of shared, cross-module state
// (spec §5's CompilerContext): import search paths, the no-builtins flag,
// the warning bitmap, and the module table. Per §5's single-threaded
// cooperative model, exactly one goroutine may ever touch a Context; on
// each entry point Context.checkGoroutine panics if that invariant is
// violated, the way the teacher asserts
// single-writer access around its interpreter environment.
type Context struct {
	ImportDirs      []string
	GlobalImportDir string
	NoBuiltins      bool
	Warnings        *WarningState
	Modules         map[string]*Module
	RunID           uuid.UUID
	Logger          *logrus.Logger

	ownerGoroutine int64
}

// New builds a Context with a fresh RunID and a logrus logger at the
// given level, matching the teacher's logrus-based tracing setup.
func New(level logrus.Level) *Context {
	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return &Context{
		Warnings:       NewWarningState(),
		Modules:        map[string]*Module{},
		RunID:          uuid.New(),
		Logger:         logger,
		ownerGoroutine: goid.Get(),
	}
}

// checkGoroutine enforces "exactly one active Resolver/Parser per module
// at any time" (§5) by asserting every call into the Context happens from
// the goroutine that created it.
func (c *Context) checkGoroutine() {
	if g := goid.Get(); g != c.ownerGoroutine {
		panic(fmt.Sprintf("accele: Context accessed from goroutine %d, owned by %d", g, c.ownerGoroutine))
	}
}

// RegisterModule records mod in the module table, growing Modules by one
// (the observable effect S3 describes for a followed import).
func (c *Context) RegisterModule(mod *Module) {
	c.checkGoroutine()
	c.Modules[mod.AbsPath] = mod
}

// Lookup returns the already-registered module at absPath, if any.
func (c *Context) Lookup(absPath string) (*Module, bool) {
	c.checkGoroutine()
	m, ok := c.Modules[absPath]
	return m, ok
}
