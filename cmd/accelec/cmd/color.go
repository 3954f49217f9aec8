package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/accelec/accele/internal/diagnostics"
)

// colorMode is the resolved --color setting: whether diagnostic lines get
// ANSI severity coloring.
type colorMode int

const (
	colorAuto colorMode = iota
	colorAlways
	colorNever
)

func parseColorMode(raw string) (colorMode, error) {
	switch raw {
	case "auto", "":
		return colorAuto, nil
	case "always":
		return colorAlways, nil
	case "never":
		return colorNever, nil
	default:
		return colorAuto, fmt.Errorf("invalid --color value %q (want auto, always, or never)", raw)
	}
}

// resolve decides, for this run, whether stdout should be colorized: always
// and never are explicit, auto defers to whether stdout is a terminal.
func (m colorMode) resolve() bool {
	switch m {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
)

// severityColor returns the ANSI escape for a diagnostic's severity, or ""
// if sev isn't one color codes this driver knows about.
func severityColor(sev diagnostics.Severity) string {
	switch sev {
	case diagnostics.ERROR:
		return ansiRed
	case diagnostics.WARNING:
		return ansiYellow
	default:
		return ""
	}
}

// formatDiagnostic renders one line per §6's external-interface contract:
// <path>:<line>:<col>: <severity> <string-id>: <message>, never formatting
// a source snippet itself (that stays an external collaborator's job).
func formatDiagnostic(d diagnostics.Diagnostic, colorize bool) string {
	line := d.String()
	if !colorize {
		return line
	}
	if color := severityColor(d.Severity); color != "" {
		return color + line + ansiReset
	}
	return line
}
