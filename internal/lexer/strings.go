package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/token"
)

// TakeStringSpans returns and clears the interpolation spans captured by
// the most recently scanned STRING/INTERP_STRING token. The parser calls
// this immediately after receiving such a token to build a
// token.StringToken without widening the Lexer.NextToken contract.
func (l *Lexer) TakeStringSpans() []token.InterpSpan {
	s := l.lastSpans
	l.lastSpans = nil
	return s
}

// scanString reads a '\''- or '"'-delimited string literal, resolving
// escape sequences and capturing `\{ expr }` interpolations (§4.1).
func (l *Lexer) scanString() token.Token {
	m := l.meta()
	delim := l.ch
	l.readChar() // consume opening delimiter

	var decoded []byte
	var spans []token.InterpSpan
	buf := make([]byte, 4)

	for {
		if l.ch == 0 {
			l.report(diagnostics.NewAt(diagnostics.UNTERMINATED_STRING, m, 1))
			break
		}
		if l.ch == delim {
			l.readChar()
			break
		}
		if l.ch == '\\' {
			l.readChar() // consume backslash
			switch l.ch {
			case 'a':
				decoded = append(decoded, '\a')
				l.readChar()
			case 'b':
				decoded = append(decoded, '\b')
				l.readChar()
			case 'f':
				decoded = append(decoded, '\f')
				l.readChar()
			case 'n':
				decoded = append(decoded, '\n')
				l.readChar()
			case 'r':
				decoded = append(decoded, '\r')
				l.readChar()
			case 't':
				decoded = append(decoded, '\t')
				l.readChar()
			case 'v':
				decoded = append(decoded, '\v')
				l.readChar()
			case '\'', '"', '\\':
				decoded = append(decoded, byte(l.ch))
				l.readChar()
			case '0', '1', '2', '3', '4', '5', '6', '7':
				start := l.pos
				count := 0
				for count < 3 && isOctalDigit(l.ch) {
					l.readChar()
					count++
				}
				text := l.input[start:l.pos]
				v, err := strconv.ParseUint(text, 8, 32)
				if err != nil {
					l.report(diagnostics.NewAt(diagnostics.INVALID_OCTAL_LITERAL, m, len(text)))
				} else {
					n := utf8.EncodeRune(buf, rune(v))
					decoded = append(decoded, buf[:n]...)
				}
			case 'u':
				l.readChar()
				decoded = l.scanUnicodeEscape(decoded, buf, 4)
			case 'U':
				l.readChar()
				decoded = l.scanUnicodeEscape(decoded, buf, 8)
			case '{':
				l.readChar() // consume '{'
				offset := len(decoded)
				srcStart := l.pos
				depth := 1
				for {
					if l.ch == 0 {
						l.report(diagnostics.NewAt(diagnostics.INVALID_INTERPOLATION, m, 2, "unterminated interpolation"))
						break
					}
					if l.ch == '{' {
						depth++
					} else if l.ch == '}' {
						depth--
						if depth == 0 {
							break
						}
					}
					l.readChar()
				}
				srcText := l.input[srcStart:l.pos]
				if l.ch == '}' {
					l.readChar() // consume closing brace
				}
				spans = append(spans, token.InterpSpan{ByteOffset: offset, Source: srcText})
			case 0:
				// End of input right after the backslash: the loop head
				// reports UNTERMINATED_STRING on the next iteration.
			default:
				n := utf8.EncodeRune(buf, l.ch)
				decoded = append(decoded, buf[:n]...)
				l.readChar()
			}
			continue
		}

		n := utf8.EncodeRune(buf, l.ch)
		decoded = append(decoded, buf[:n]...)
		l.readChar()
	}

	text := string(decoded)
	kind := token.STRING
	if len(spans) > 0 {
		kind = token.INTERP_STRING
	}
	l.lastSpans = spans
	return token.Token{Kind: kind, Text: text, Meta: m}
}

func (l *Lexer) scanUnicodeEscape(decoded, buf []byte, digits int) []byte {
	start := l.pos
	count := 0
	for count < digits && isHexDigit(l.ch) {
		l.readChar()
		count++
	}
	text := l.input[start:l.pos]
	if count != digits {
		l.report(diagnostics.NewAt(diagnostics.INVALID_UNICODE_ESCAPE, l.meta(), len(text)))
		return decoded
	}
	v, err := strconv.ParseUint(text, 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		l.report(diagnostics.NewAt(diagnostics.INVALID_UNICODE_ESCAPE, l.meta(), len(text)))
		return decoded
	}
	n := utf8.EncodeRune(buf, rune(v))
	return append(decoded, buf[:n]...)
}
