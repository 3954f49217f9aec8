// Package modules implements the ImportHandler's source resolution
// algorithm (§4.3): turning an `import` declaration's path syntax into a
// concrete file on disk, and memoizing compiled modules by absolute path.
package modules

import (
	"os"
	"path/filepath"
	"strings"
)

// PathSpec is a parsed import path: either a literal filesystem path (a
// STRING_LITERAL import source) or a dotted, relative-qualified segment
// chain (an identifier-based import source, §6).
type PathSpec struct {
	Literal  string   // set when the source was a string literal
	Climbs   int      // number of leading `.`/`..`/`...` markers past the first
	Relative bool      // true if the chain began with at least one dot marker
	Segments []string // identifier segments, in descent order
}

// ParseDottedPath turns the lexed spelling of an identifier-based import
// source (e.g. "..a.b.c", "a.b") into a PathSpec. A leading "." is current
// dir (climbs=0, relative=true); each additional leading dot climbs one
// directory level.
func ParseDottedPath(spelling string) PathSpec {
	i := 0
	for i < len(spelling) && spelling[i] == '.' {
		i++
	}
	climbs := i
	relative := i > 0
	if relative {
		climbs-- // the first dot means "current dir", not a climb
	}
	rest := strings.TrimPrefix(spelling[i:], ".")
	var segments []string
	if rest != "" {
		segments = strings.Split(rest, ".")
	}
	return PathSpec{Climbs: climbs, Relative: relative, Segments: segments}
}

// baseDir applies a PathSpec's climb count to start, the importing
// module's directory.
func baseDir(start string, climbs int) string {
	dir := start
	for i := 0; i < climbs; i++ {
		dir = filepath.Dir(dir)
	}
	return dir
}

// candidateBases computes the ordered base directories §4.3 step 2
// specifies: the importing module's directory first; then, only for a
// non-relative chain, each configured import directory and finally the
// global import directory.
func candidateBases(spec PathSpec, importingDir string, importDirs []string, globalImportDir string) []string {
	bases := []string{baseDir(importingDir, spec.Climbs)}
	if spec.Relative {
		return bases
	}
	bases = append(bases, importDirs...)
	if globalImportDir != "" {
		bases = append(bases, globalImportDir)
	}
	return bases
}

// Resolve implements §4.3's source resolution algorithm. importingDir is
// the directory containing the module that declares the import.
func Resolve(spec PathSpec, importingDir string, importDirs []string, globalImportDir string) (string, bool) {
	if spec.Literal != "" {
		info, err := os.Stat(spec.Literal)
		if err != nil || info.IsDir() {
			return "", false
		}
		abs, err := filepath.Abs(spec.Literal)
		if err != nil {
			return "", false
		}
		return abs, true
	}

	tail := filepath.Join(spec.Segments...)
	for _, base := range candidateBases(spec, importingDir, importDirs, globalImportDir) {
		for _, ext := range []string{".accele", ".acldef"} {
			candidate := filepath.Join(base, tail+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				abs, err := filepath.Abs(candidate)
				if err != nil {
					continue
				}
				return abs, true
			}
		}
	}
	return "", false
}
