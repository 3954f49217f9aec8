package token

// Kind classifies a lexeme. The zero value is never produced by the lexer;
// it only appears on a synthetic zero-value Token (e.g. in diagnostics
// built before a real token is available).
type Kind int

const (
	INVALID Kind = iota
	EOF
	NL // statement terminator emitted at newlines

	// Literals
	ID
	INTEGER_LITERAL
	HEX_LITERAL
	OCTAL_LITERAL
	BINARY_LITERAL
	FLOAT_LITERAL
	STRING
	INTERP_STRING
	CHAR_LITERAL
	TRUE
	FALSE
	NULL

	// Keywords
	IMPORT
	FROM
	AS
	AS_OPTIONAL
	AS_UNWRAPPED
	FUN
	VAR
	CONST
	ALIAS
	CLASS
	STRUCT
	TEMPLATE
	ENUM
	NAMESPACE
	IF
	ELIF
	ELSE
	WHILE
	REPEAT
	FOR
	IN
	SWITCH
	CASE
	DEFAULT
	TRY
	TRY_OPTIONAL
	TRY_UNWRAPPED
	CATCH
	FINALLY
	RETURN
	THROW
	BREAK
	CONTINUE
	FALL
	GET
	SET
	INIT
	PUBLIC
	PRIVATE
	PROTECTED
	INTERNAL
	UNSAFE
	THROWING
	NOEXCEPT
	ASYNC
	EXTERN
	STATIC
	OVERRIDE
	RELEASE
	AWAIT
	IS
	OR
	AND
	NOT
	GLOBAL
	SUPER
	THIS

	// Meta tags (@-prefixed)
	TAG_NORETURN
	TAG_STACKALLOC
	TAG_SRCLOCK
	TAG_LAXTHROW
	TAG_EXTERNALINIT
	TAG_DEPRECATED
	TAG_ENABLEWARNING
	TAG_DISABLEWARNING
	TAG_NOBUILTINS
	TAG_INVALID

	// Symbols / operators
	LPAREN
	RPAREN
	LBRACE
	RBRACE
	LBRACKET
	RBRACKET
	COMMA
	COLON
	SEMICOLON
	DOT
	QUESTION_DOT
	DOT_DOT
	DOT_DOT_DOT
	QUESTION
	QUESTION_QUESTION
	BANG
	TILDE
	AT
	DOLLAR
	AMP
	AMP_AMP
	PIPE
	PIPE_PIPE
	CARET
	PLUS
	PLUS_PLUS
	MINUS
	MINUS_MINUS
	STAR
	STAR_STAR
	SLASH
	PERCENT
	ASSIGN
	ARROW
	EQ
	EQ_EQ_EQ
	NOT_EQ
	NOT_EQ_EQ
	LT
	GT
	LE
	GE
	SPACESHIP // <=>
	LSHIFT
	RSHIFT

	PLUS_ASSIGN
	MINUS_ASSIGN
	STAR_ASSIGN
	SLASH_ASSIGN
	PERCENT_ASSIGN
	AMP_ASSIGN
	PIPE_ASSIGN
	CARET_ASSIGN
	TILDE_ASSIGN
	POWER_ASSIGN
	LSHIFT_ASSIGN
	RSHIFT_ASSIGN
)

var kindNames = map[Kind]string{
	INVALID: "INVALID", EOF: "EOF", NL: "NL",
	ID: "ID", INTEGER_LITERAL: "INTEGER_LITERAL", HEX_LITERAL: "HEX_LITERAL",
	OCTAL_LITERAL: "OCTAL_LITERAL", BINARY_LITERAL: "BINARY_LITERAL", FLOAT_LITERAL: "FLOAT_LITERAL",
	STRING: "STRING", INTERP_STRING: "INTERP_STRING", CHAR_LITERAL: "CHAR_LITERAL",
	TRUE: "true", FALSE: "false", NULL: "null",
	IMPORT: "import", FROM: "from", AS: "as", AS_OPTIONAL: "as?", AS_UNWRAPPED: "as!",
	FUN: "fun", VAR: "var", CONST: "const", ALIAS: "alias", CLASS: "class", STRUCT: "struct",
	TEMPLATE: "template", ENUM: "enum", NAMESPACE: "namespace",
	IF: "if", ELIF: "elif", ELSE: "else", WHILE: "while", REPEAT: "repeat", FOR: "for", IN: "in",
	SWITCH: "switch", CASE: "case", DEFAULT: "default",
	TRY: "try", TRY_OPTIONAL: "try?", TRY_UNWRAPPED: "try!", CATCH: "catch", FINALLY: "finally",
	RETURN: "return", THROW: "throw", BREAK: "break", CONTINUE: "continue", FALL: "fall",
	GET: "get", SET: "set", INIT: "init",
	PUBLIC: "public", PRIVATE: "private", PROTECTED: "protected", INTERNAL: "internal",
	UNSAFE: "unsafe", THROWING: "throwing", NOEXCEPT: "noexcept", ASYNC: "async", EXTERN: "extern",
	STATIC: "static", OVERRIDE: "override", RELEASE: "release", AWAIT: "await",
	IS: "is", OR: "or", AND: "and", NOT: "not", GLOBAL: "global", SUPER: "super", THIS: "this",
	TAG_NORETURN: "@noreturn", TAG_STACKALLOC: "@stackalloc", TAG_SRCLOCK: "@srclock",
	TAG_LAXTHROW: "@laxthrow", TAG_EXTERNALINIT: "@externalinit", TAG_DEPRECATED: "@deprecated",
	TAG_ENABLEWARNING: "@enablewarning", TAG_DISABLEWARNING: "@disablewarning",
	TAG_NOBUILTINS: "@nobuiltins", TAG_INVALID: "@<invalid>",
	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}", LBRACKET: "[", RBRACKET: "]",
	COMMA: ",", COLON: ":", SEMICOLON: ";", DOT: ".", QUESTION_DOT: "?.",
	DOT_DOT: "..", DOT_DOT_DOT: "...", QUESTION: "?", QUESTION_QUESTION: "??",
	BANG: "!", TILDE: "~", AT: "@", DOLLAR: "$", AMP: "&", AMP_AMP: "&&",
	PIPE: "|", PIPE_PIPE: "||", CARET: "^",
	PLUS: "+", PLUS_PLUS: "++", MINUS: "-", MINUS_MINUS: "--",
	STAR: "*", STAR_STAR: "**", SLASH: "/", PERCENT: "%",
	ASSIGN: "=", ARROW: "->", EQ: "==", EQ_EQ_EQ: "===", NOT_EQ: "!=", NOT_EQ_EQ: "!==",
	LT: "<", GT: ">", LE: "<=", GE: ">=", SPACESHIP: "<=>", LSHIFT: "<<", RSHIFT: ">>",
	PLUS_ASSIGN: "+=", MINUS_ASSIGN: "-=", STAR_ASSIGN: "*=", SLASH_ASSIGN: "/=",
	PERCENT_ASSIGN: "%=", AMP_ASSIGN: "&=", PIPE_ASSIGN: "|=", CARET_ASSIGN: "^=",
	TILDE_ASSIGN: "~=", POWER_ASSIGN: "**=", LSHIFT_ASSIGN: "<<=", RSHIFT_ASSIGN: ">>=",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsAssignmentOp reports whether k is one of the assignment-operator family,
// per the grammar's assignment precedence level.
func (k Kind) IsAssignmentOp() bool {
	switch k {
	case ASSIGN, PIPE_ASSIGN, PLUS_ASSIGN, CARET_ASSIGN, MINUS_ASSIGN, SLASH_ASSIGN,
		TILDE_ASSIGN, PERCENT_ASSIGN, STAR_ASSIGN, AMP_ASSIGN, RSHIFT_ASSIGN, LSHIFT_ASSIGN, POWER_ASSIGN:
		return true
	}
	return false
}
