// Package lexer tokenizes one module's source text into a lazy stream of
// tokens, including string-interpolation substreams, per spec §4.1.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"

	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/token"
)

// RecoverySentinels is the default set of characters the lexer resyncs to
// after an unrecoverable byte, per §4.1 "Failure model".
var RecoverySentinels = map[rune]bool{'\r': true, '\n': true, ';': true, '}': true}

// Lexer produces tokens from a character buffer for one module.
type Lexer struct {
	moduleRef string
	input     string
	pos       int // byte offset of ch
	readPos   int // byte offset after ch
	ch        rune
	line      int
	column    int
	diag      *diagnostics.Diagnoser
	log       *logrus.Entry
	lastSpans []token.InterpSpan
}

// New creates a Lexer over input, attributing every token's SourceMeta to
// moduleRef. diag receives lexical diagnostics; log may be nil (a nil
// logger disables all lexer tracing at zero cost).
func New(moduleRef, input string, diag *diagnostics.Diagnoser, log *logrus.Entry) *Lexer {
	l := &Lexer{moduleRef: moduleRef, input: input, line: 1, column: 0, diag: diag, log: log}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\r' {
		// \r\n counts as a single newline: column already reset by the \n
		// arm below when it follows; a lone \r advances here.
		if l.readPos >= len(l.input) || l.input[l.readPos] != '\n' {
			l.line++
			l.column = 0
		}
	} else if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPos >= len(l.input) {
		l.ch = 0
		l.pos = l.readPos
		l.readPos++
		return
	}
	r, w := utf8.DecodeRuneInString(l.input[l.readPos:])
	l.ch = r
	l.pos = l.readPos
	l.readPos += w
	l.column++
}

func (l *Lexer) peekAt(offset int) rune {
	idx := l.pos
	for i := 0; i < offset; i++ {
		if idx >= len(l.input) {
			return 0
		}
		_, w := utf8.DecodeRuneInString(l.input[idx:])
		idx += w
	}
	if idx >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[idx:])
	return r
}

func (l *Lexer) peek() rune { return l.peekAt(1) }

func (l *Lexer) meta() token.SourceMeta {
	return token.SourceMeta{ModuleRef: l.moduleRef, Line: l.line, Column: l.column}
}

// HasNext reports whether the lexer has not yet reached end of input.
func (l *Lexer) HasNext() bool {
	return l.ch != 0
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '$' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' {
		l.readChar()
	}
}

func (l *Lexer) report(d diagnostics.Diagnostic) {
	if l.diag != nil {
		l.diag.Report(d)
	}
}

func (l *Lexer) trace(format string, args ...any) {
	if l.log != nil {
		l.log.Tracef(format, args...)
	}
}

// recover advances to the next recovery sentinel and returns a synthetic
// NL token so the parser can resume (§4.1 "Failure model").
func (l *Lexer) recover() token.Token {
	m := l.meta()
	for l.ch != 0 && !RecoverySentinels[l.ch] {
		l.readChar()
	}
	return token.Token{Kind: token.NL, Text: "", Meta: m}
}

// NextToken advances the lexer and yields one Token. It never silently
// stalls (Testable Property 1): every call returns a Token, possibly after
// emitting exactly one diagnostic and resyncing.
func (l *Lexer) NextToken() token.Token {
	l.skipWhitespace()

	// Line comments
	if l.ch == '/' && l.peek() == '/' {
		for l.ch != '\n' && l.ch != 0 {
			l.readChar()
		}
		return l.NextToken()
	}
	// Block comments
	if l.ch == '/' && l.peek() == '*' {
		start := l.meta()
		l.readChar()
		l.readChar()
		for {
			if l.ch == 0 {
				l.report(diagnostics.NewAt(diagnostics.UNTERMINATED_COMMENT, start, 2))
				return l.recover()
			}
			if l.ch == '*' && l.peek() == '/' {
				l.readChar()
				l.readChar()
				break
			}
			l.readChar()
		}
		return l.NextToken()
	}

	if l.ch == 0 {
		return token.Token{Kind: token.EOF, Text: "", Meta: l.meta()}
	}

	if l.ch == '\n' || l.ch == '\r' {
		m := l.meta()
		if l.ch == '\r' && l.peek() == '\n' {
			l.readChar()
		}
		l.readChar()
		return token.Token{Kind: token.NL, Text: "\n", Meta: m}
	}

	if isIdentStart(l.ch) {
		return l.scanIdentifier()
	}
	if unicode.IsDigit(l.ch) {
		return l.scanNumber()
	}
	if l.ch == '"' || l.ch == '\'' {
		return l.scanString()
	}
	if l.ch == '@' {
		return l.scanMetaTag()
	}

	return l.scanSymbol()
}

func (l *Lexer) scanIdentifier() token.Token {
	m := l.meta()
	start := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	text := l.input[start:l.pos]

	if kind, ok := token.Keywords[text]; ok {
		if composed, ok := token.ComposedKeywords[kind]; ok {
			if ck, ok := composed[l.ch]; ok {
				full := text + string(l.ch)
				l.readChar()
				return token.Token{Kind: ck, Text: full, Meta: m}
			}
		}
		return token.Token{Kind: kind, Text: text, Meta: m}
	}
	return token.Token{Kind: token.ID, Text: text, Meta: m}
}

func (l *Lexer) scanMetaTag() token.Token {
	m := l.meta()
	l.readChar() // consume '@'
	start := l.pos
	for isIdentPart(l.ch) {
		l.readChar()
	}
	name := l.input[start:l.pos]
	text := "@" + name
	if kind, ok := token.MetaTags[name]; ok {
		return token.Token{Kind: kind, Text: text, Meta: m}
	}
	l.report(diagnostics.New(diagnostics.INVALID_TAG, token.Token{Meta: m, Text: text}, name))
	return token.Token{Kind: token.TAG_INVALID, Text: text, Meta: m}
}

func (l *Lexer) scanSymbol() token.Token {
	m := l.meta()
	for length := token.MaxSymbolLen; length >= 1; length-- {
		cand := l.peekRunes(length)
		if kind, ok := token.Symbols[cand]; ok {
			for range []rune(cand) {
				l.readChar()
			}
			return token.Token{Kind: kind, Text: cand, Meta: m}
		}
	}
	bad := l.ch
	l.readChar()
	l.report(diagnostics.New(diagnostics.INVALID_LEXICAL_SYMBOL, token.Token{Meta: m, Text: string(bad)}, string(bad)))
	return l.recover()
}

// peekRunes returns up to n runes starting at the current character
// (without consuming), or fewer if input ends first.
func (l *Lexer) peekRunes(n int) string {
	var b strings.Builder
	if l.ch == 0 {
		return ""
	}
	b.WriteRune(l.ch)
	for i := 1; i < n; i++ {
		r := l.peekAt(i)
		if r == 0 {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

