package lexer

import (
	"unicode"

	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/token"
)

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctalDigit(r rune) bool { return r >= '0' && r <= '7' }
func isBinaryDigit(r rune) bool { return r == '0' || r == '1' }

// scanNumber implements §4.1's numeric-literal grammar: integer, hex (0x),
// octal (0o), binary (0b), and float (optional fraction, optional signed
// exponent). A lone digit run with no marker and no fractional/exponent is
// an integer literal.
func (l *Lexer) scanNumber() token.Token {
	m := l.meta()
	start := l.pos

	if l.ch == '0' && (l.peek() == 'x' || l.peek() == 'X') {
		l.readChar()
		l.readChar()
		digitsStart := l.pos
		for isHexDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		text := l.input[start:l.pos]
		if l.pos == digitsStart {
			l.report(diagnostics.New(diagnostics.INVALID_HEX_LITERAL, token.Token{Meta: m, Text: text}))
		}
		return token.Token{Kind: token.HEX_LITERAL, Text: text, Meta: m}
	}
	if l.ch == '0' && (l.peek() == 'o' || l.peek() == 'O') {
		l.readChar()
		l.readChar()
		digitsStart := l.pos
		for isOctalDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		text := l.input[start:l.pos]
		if l.pos == digitsStart {
			l.report(diagnostics.New(diagnostics.INVALID_OCTAL_LITERAL, token.Token{Meta: m, Text: text}))
		}
		return token.Token{Kind: token.OCTAL_LITERAL, Text: text, Meta: m}
	}
	if l.ch == '0' && (l.peek() == 'b' || l.peek() == 'B') {
		l.readChar()
		l.readChar()
		digitsStart := l.pos
		for isBinaryDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		text := l.input[start:l.pos]
		if l.pos == digitsStart {
			l.report(diagnostics.New(diagnostics.INVALID_BINARY_LITERAL, token.Token{Meta: m, Text: text}))
		}
		return token.Token{Kind: token.BINARY_LITERAL, Text: text, Meta: m}
	}

	for unicode.IsDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}

	isFloat := false
	if l.ch == '.' && unicode.IsDigit(l.peek()) {
		isFloat = true
		l.readChar() // '.'
		fracStart := l.pos
		for unicode.IsDigit(l.ch) || l.ch == '_' {
			l.readChar()
		}
		if l.pos == fracStart {
			text := l.input[start:l.pos]
			l.report(diagnostics.New(diagnostics.INVALID_FLOAT_LITERAL, token.Token{Meta: m, Text: text}, "fractional part"))
		}
	}

	if l.ch == 'e' || l.ch == 'E' {
		isFloat = true
		l.readChar() // consume e/E
		if l.ch == '+' || l.ch == '-' {
			l.readChar()
		}
		expStart := l.pos
		for unicode.IsDigit(l.ch) {
			l.readChar()
		}
		if l.pos == expStart {
			text := l.input[start:l.pos]
			l.report(diagnostics.New(diagnostics.INVALID_FLOAT_LITERAL, token.Token{Meta: m, Text: text}, "exponent"))
		}
	}

	text := l.input[start:l.pos]
	if isFloat {
		return token.Token{Kind: token.FLOAT_LITERAL, Text: text, Meta: m}
	}
	return token.Token{Kind: token.INTEGER_LITERAL, Text: text, Meta: m}
}
