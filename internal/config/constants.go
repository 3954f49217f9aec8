package config

// Version is the current accelec version. Set at build time via -ldflags,
// or left at this default for development builds.
var Version = "0.1.0"

// SourceExt is the full-module source extension (§6).
const SourceExt = ".accele"

// HeaderExt is the declaration-only (header) source extension (§6). A
// header module is lexed, parsed, and resolved but never selected as a
// compilation output.
const HeaderExt = ".acldef"

// SourceExtensions lists every extension the ImportHandler recognizes.
var SourceExtensions = []string{SourceExt, HeaderExt}

// HasSourceExt reports whether path ends in a recognized source extension.
func HasSourceExt(path string) bool {
	for _, ext := range SourceExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// IsHeaderOnly reports whether path is a declaration-only module.
func IsHeaderOnly(path string) bool {
	return len(path) >= len(HeaderExt) && path[len(path)-len(HeaderExt):] == HeaderExt
}

// BuiltinTypeNames are always resolvable unless @nobuiltins is set (§6).
var BuiltinTypeNames = []string{
	"Any", "Number",
	"Int", "Int8", "Int16", "Int32", "Int64",
	"UInt", "UInt8", "UInt16", "UInt32", "UInt64",
	"Float", "Double", "Float80",
	"Bool", "String", "Void",
	"Array", "Map", "Tuple", "Function", "Optional", "UnwrappedOptional", "Pointer",
}

// IsTestMode is a process-wide test-mode switch. Nothing in this
// repository sets or reads it, so it stays false.
var IsTestMode = false
