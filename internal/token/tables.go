package token

// Keywords is the fixed keyword table the lexer classifies identifier-shaped
// lexemes against. Anything not present here lexes as ID.
var Keywords = map[string]Kind{
	"import": IMPORT, "from": FROM, "as": AS,
	"fun": FUN, "var": VAR, "const": CONST, "alias": ALIAS,
	"class": CLASS, "struct": STRUCT, "template": TEMPLATE, "enum": ENUM, "namespace": NAMESPACE,
	"if": IF, "elif": ELIF, "else": ELSE, "while": WHILE, "repeat": REPEAT, "for": FOR, "in": IN,
	"switch": SWITCH, "case": CASE, "default": DEFAULT,
	"try": TRY, "catch": CATCH, "finally": FINALLY,
	"return": RETURN, "throw": THROW, "break": BREAK, "continue": CONTINUE, "fall": FALL,
	"get": GET, "set": SET, "init": INIT,
	"public": PUBLIC, "private": PRIVATE, "protected": PROTECTED, "internal": INTERNAL,
	"unsafe": UNSAFE, "throwing": THROWING, "noexcept": NOEXCEPT, "async": ASYNC, "extern": EXTERN,
	"static": STATIC, "override": OVERRIDE, "release": RELEASE, "await": AWAIT,
	"is": IS, "or": OR, "and": AND, "not": NOT, "global": GLOBAL, "super": SUPER, "this": THIS,
	"true": TRUE, "false": FALSE, "null": NULL,
}

// ComposedKeywords maps a base keyword plus an immediately-following
// trailing character to the composed keyword kind, per the lexer's greedy
// "try?"/"try!"/"as?"/"as!" rule.
var ComposedKeywords = map[Kind]map[rune]Kind{
	TRY: {'?': TRY_OPTIONAL, '!': TRY_UNWRAPPED},
	AS:  {'?': AS_OPTIONAL, '!': AS_UNWRAPPED},
}

// MetaTags is the fixed table of recognized @-prefixed meta tokens.
var MetaTags = map[string]Kind{
	"noreturn": TAG_NORETURN, "stackalloc": TAG_STACKALLOC, "srclock": TAG_SRCLOCK,
	"laxthrow": TAG_LAXTHROW, "externalinit": TAG_EXTERNALINIT, "deprecated": TAG_DEPRECATED,
	"enablewarning": TAG_ENABLEWARNING, "disablewarning": TAG_DISABLEWARNING, "nobuiltins": TAG_NOBUILTINS,
}

// MaxSymbolLen is the longest lexeme in Symbols, in bytes.
const MaxSymbolLen = 3

// Symbols is the fixed symbol table. The lexer performs greedy
// longest-match over it: try a MaxSymbolLen-byte prefix of the remaining
// input, then MaxSymbolLen-1, down to 1, returning the first hit. This is
// the table-driven equivalent of "try the longest candidate, backtrack one
// character at a time on failure" from §4.1.
var Symbols = map[string]Kind{
	"<=>": SPACESHIP,
	"**=": POWER_ASSIGN, "<<=": LSHIFT_ASSIGN, ">>=": RSHIFT_ASSIGN, "...": DOT_DOT_DOT,
	"===": EQ_EQ_EQ, "!==": NOT_EQ_EQ,
	"**": STAR_STAR, "==": EQ, "!=": NOT_EQ, "<=": LE, ">=": GE,
	"<<": LSHIFT, ">>": RSHIFT, "&&": AMP_AMP, "||": PIPE_PIPE,
	"++": PLUS_PLUS, "--": MINUS_MINUS, "??": QUESTION_QUESTION, "?.": QUESTION_DOT,
	"..": DOT_DOT, "->": ARROW,
	"+=": PLUS_ASSIGN, "-=": MINUS_ASSIGN, "*=": STAR_ASSIGN, "/=": SLASH_ASSIGN,
	"%=": PERCENT_ASSIGN, "&=": AMP_ASSIGN, "|=": PIPE_ASSIGN, "^=": CARET_ASSIGN, "~=": TILDE_ASSIGN,
	"(": LPAREN, ")": RPAREN, "{": LBRACE, "}": RBRACE, "[": LBRACKET, "]": RBRACKET,
	",": COMMA, ":": COLON, ";": SEMICOLON, ".": DOT, "?": QUESTION,
	"!": BANG, "~": TILDE, "@": AT, "$": DOLLAR, "&": AMP, "|": PIPE, "^": CARET,
	"+": PLUS, "-": MINUS, "*": STAR, "/": SLASH, "%": PERCENT, "=": ASSIGN,
	"<": LT, ">": GT,
}
