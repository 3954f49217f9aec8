package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/accelec/accele/internal/config"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/pipeline"
)

var buildCmd = &cobra.Command{
	Use:   "build [modules...]",
	Short: "Lex, parse, and resolve one or more accele modules",
	Args:  cobra.MinimumNArgs(1),
	Run:   runBuild,
}

func init() {
	buildCmd.Flags().StringArrayP("import-dir", "I", nil, "add a directory to the import search path (repeatable)")
	buildCmd.Flags().Bool("no-builtins", false, "do not resolve built-in type names (Int, String, ...)")
	buildCmd.Flags().StringArray("enable-warning", nil, "enable a disabled-by-default warning id (repeatable)")
	buildCmd.Flags().StringArray("disable-warning", nil, "disable an enabled-by-default warning id (repeatable)")
	buildCmd.Flags().String("config", "", "path to an accelec.yaml project file")
	buildCmd.Flags().String("color", "auto", "colorize diagnostics: auto, always, or never")
	buildCmd.Flags().CountP("verbose", "v", "increase logging verbosity (-v, -vv)")
}

func runBuild(cmd *cobra.Command, args []string) {
	colorMode, err := parseColorMode(GetString(cmd, "color"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	colorize := colorMode.resolve()

	cfgCtx := config.New(verbosityLevel(GetCount(cmd, "verbose")))

	if path := GetString(cmd, "config"); path != "" {
		fc, err := config.LoadFileConfig(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		applyFileConfig(cfgCtx, fc)
	}

	cfgCtx.ImportDirs = append(cfgCtx.ImportDirs, GetStringArray(cmd, "import-dir")...)
	if GetFlag(cmd, "no-builtins") {
		cfgCtx.NoBuiltins = true
	}
	for _, id := range GetStringArray(cmd, "enable-warning") {
		cfgCtx.Warnings.Enable(id)
	}
	for _, id := range GetStringArray(cmd, "disable-warning") {
		cfgCtx.Warnings.Disable(id)
	}

	diag := diagnostics.NewDiagnoser(cfgCtx.RunID, cfgCtx.Warnings.Overrides())
	run := pipeline.NewRun(cfgCtx, diag)

	hasErrors := false
	for _, modulePath := range args {
		absPath, err := filepath.Abs(modulePath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if _, err := run.CompileEntry(absPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			hasErrors = true
			continue
		}
	}

	for _, d := range diag.Records() {
		fmt.Println(formatDiagnostic(d, colorize))
	}
	if hasErrors || diag.HasErrors() {
		os.Exit(1)
	}
}

// applyFileConfig merges an accelec.yaml project file's settings into ctx;
// flags parsed afterward still take precedence since runBuild applies them
// on top of whatever this sets.
func applyFileConfig(ctx *config.Context, fc *config.FileConfig) {
	ctx.ImportDirs = append(ctx.ImportDirs, fc.ImportDirs...)
	if fc.GlobalImportDir != "" {
		ctx.GlobalImportDir = fc.GlobalImportDir
	}
	if fc.NoBuiltins {
		ctx.NoBuiltins = true
	}
	for _, id := range fc.EnableWarnings {
		ctx.Warnings.Enable(id)
	}
	for _, id := range fc.DisableWarnings {
		ctx.Warnings.Disable(id)
	}
}

// verbosityLevel maps -v/-vv's stacked count to a logrus level, matching
// the teacher's logrus-based tracing setup (config.New takes the level
// directly rather than a separate SetLevel call).
func verbosityLevel(count int) logrus.Level {
	switch {
	case count >= 2:
		return logrus.TraceLevel
	case count == 1:
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}
