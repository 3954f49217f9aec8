package diagnostics

// Code identifies a diagnostic kind. Each has a stable numeric id
// (ACL0000..ACLnnnn) and a stable kebab-case string id used as the key for
// CompilerContext's warning enable/disable flags.
type Code int

const (
	// Lexical (0000-0099)
	INVALID_BYTE Code = 1 + iota
	INVALID_UNICODE_ESCAPE
	INVALID_INTERPOLATION
	INVALID_OCTAL_LITERAL
	INVALID_HEX_LITERAL
	INVALID_BINARY_LITERAL
	INVALID_FLOAT_LITERAL
	UNTERMINATED_COMMENT
	UNTERMINATED_STRING
	INVALID_LEXICAL_SYMBOL
	INVALID_TAG

	// Syntactic (0100-0199)
	INVALID_TOKEN
	INVALID_MODIFIER
	DUPLICATE_VARIABLE_BLOCK
	DUPLICATE_DEFAULT_CASE
	NON_FINAL_VARIADIC_PARAMETER
	INVALID_RETURN_LOCATION
	INVALID_THROW_LOCATION
	DUPLICATE_IMPORT

	// Semantic (0200-0299)
	SYMBOL_NOT_VISIBLE
	STATIC_ACCESS_VIA_INSTANCE
	INSTANCE_ACCESS_VIA_STATIC
	GENERICS_ARITY_MISMATCH
	GENERICS_BOUND_MISMATCH
	DUPLICATE_SYMBOL
	TOO_MANY_ARGUMENTS
	TOO_FEW_ARGUMENTS
	ARGUMENT_TYPE_MISMATCH
	INVALID_FUNCTION_CALLER
	UNDEFINED_SYMBOL
	UNRESOLVED_SYMBOL
	UNRESOLVED_IMPORT
	INVALID_TEMPLATE_CONSTRUCTOR
	NIL_COALESCE_NON_OPTIONAL

	// Style/advisory (0300-0399)
	NONFRONTED_SOURCE_LOCK
)

// codeInfo is the immutable per-code metadata row.
type codeInfo struct {
	Numeric  string
	StringID string
	Default  Severity
	Template string
}

// registry is the process-wide, immutable diagnostic-code table (Design
// Notes §9): built once and never mutated afterward. The Resolver, Parser,
// and Lexer read it only through Code's methods (Numeric, StringID,
// DefaultSeverity).
var registry = map[Code]codeInfo{
	INVALID_BYTE:            {"ACL0001", "invalid-byte", ERROR, "invalid input byte %q"},
	INVALID_UNICODE_ESCAPE:  {"ACL0002", "invalid-unicode-escape", ERROR, "invalid unicode escape sequence"},
	INVALID_INTERPOLATION:   {"ACL0003", "invalid-interpolation", ERROR, "invalid string interpolation: %s"},
	INVALID_OCTAL_LITERAL:   {"ACL0004", "invalid-octal-literal", ERROR, "invalid octal literal: expected octal digit after '0o'"},
	INVALID_HEX_LITERAL:     {"ACL0005", "invalid-hex-literal", ERROR, "invalid hex literal: expected hex digit after '0x'"},
	INVALID_BINARY_LITERAL:  {"ACL0006", "invalid-binary-literal", ERROR, "invalid binary literal: expected '0' or '1' after '0b'"},
	INVALID_FLOAT_LITERAL:   {"ACL0007", "invalid-float-literal", ERROR, "invalid float literal: expected digit in %s"},
	UNTERMINATED_COMMENT:    {"ACL0008", "unterminated-comment", ERROR, "unterminated block comment"},
	UNTERMINATED_STRING:     {"ACL0009", "unterminated-string", ERROR, "unterminated string literal"},
	INVALID_LEXICAL_SYMBOL:  {"ACL0010", "invalid-lexical-symbol", ERROR, "invalid symbol starting at %q"},
	INVALID_TAG:             {"ACL0011", "invalid-tag", ERROR, "unrecognized meta tag '@%s'"},
	INVALID_TOKEN:           {"ACL0100", "invalid-token", ERROR, "expected %s but found %s"},
	INVALID_MODIFIER:        {"ACL0101", "invalid-modifier", ERROR, "modifier '%s' is not allowed here"},
	DUPLICATE_VARIABLE_BLOCK: {"ACL0102", "duplicate-variable-block", ERROR, "duplicate '%s' block"},
	DUPLICATE_DEFAULT_CASE:  {"ACL0103", "duplicate-default-case", ERROR, "duplicate 'default' case in switch"},
	NON_FINAL_VARIADIC_PARAMETER: {"ACL0104", "non-final-variadic-parameter", ERROR, "a variadic parameter must be the last parameter"},
	INVALID_RETURN_LOCATION: {"ACL0105", "invalid-return-location", ERROR, "'return' is not valid here"},
	INVALID_THROW_LOCATION:  {"ACL0106", "invalid-throw-location", ERROR, "'throw' is not valid here"},
	DUPLICATE_IMPORT:        {"ACL0107", "duplicate-import", ERROR, "duplicate import of module %q"},
	SYMBOL_NOT_VISIBLE:      {"ACL0200", "symbol-not-visible", ERROR, "'%s' is not visible from this scope"},
	STATIC_ACCESS_VIA_INSTANCE: {"ACL0201", "static-access-via-instance", WARNING, "'%s' is static; access it through the type, not an instance"},
	INSTANCE_ACCESS_VIA_STATIC: {"ACL0202", "instance-access-via-static", ERROR, "'%s' is an instance member and cannot be accessed statically"},
	GENERICS_ARITY_MISMATCH: {"ACL0203", "generics-arity-mismatch", ERROR, "expected %d generic argument(s), found %d"},
	GENERICS_BOUND_MISMATCH: {"ACL0204", "generics-bound-mismatch", ERROR, "type %s does not satisfy bound %s"},
	DUPLICATE_SYMBOL:        {"ACL0205", "duplicate-symbol", ERROR, "'%s' is already declared in this scope"},
	TOO_MANY_ARGUMENTS:      {"ACL0206", "too-many-arguments", ERROR, "too many arguments: expected at most %d, found %d"},
	TOO_FEW_ARGUMENTS:       {"ACL0207", "too-few-arguments", ERROR, "too few arguments: expected at least %d, found %d"},
	ARGUMENT_TYPE_MISMATCH:  {"ACL0208", "argument-type-mismatch", ERROR, "argument %d: cannot convert %s to %s"},
	INVALID_FUNCTION_CALLER: {"ACL0209", "invalid-function-caller", ERROR, "'%s' is not callable"},
	UNDEFINED_SYMBOL:        {"ACL0210", "undefined-symbol", ERROR, "undefined symbol '%s'"},
	UNRESOLVED_SYMBOL:       {"ACL0211", "unresolved-symbol", ERROR, "module %q has no exported symbol '%s'"},
	UNRESOLVED_IMPORT:       {"ACL0212", "unresolved-import", ERROR, "cannot resolve import %q"},
	INVALID_TEMPLATE_CONSTRUCTOR: {"ACL0213", "invalid-template-constructor", ERROR, "a template type cannot be constructed directly"},
	NIL_COALESCE_NON_OPTIONAL: {"ACL0214", "nil-coalesce-non-optional", ERROR, "left-hand side of '??' is not optional"},
	NONFRONTED_SOURCE_LOCK:  {"ACL0300", "nonfronted-source-lock", WARNING, "@srclock should appear at the top of the module"},
}

// Numeric returns the stable ACLnnnn id for c.
func (c Code) Numeric() string { return registry[c].Numeric }

// StringID returns the stable kebab-case id for c, used as the
// enable/disable key.
func (c Code) StringID() string { return registry[c].StringID }

// DefaultSeverity returns the severity a diagnostic of this code carries
// unless overridden (only warnings can be disabled; errors cannot).
func (c Code) DefaultSeverity() Severity { return registry[c].Default }

func (c Code) template() string { return registry[c].Template }
