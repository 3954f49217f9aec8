// Package parser turns a Lexer's token stream into the tagged-variant AST
// defined by internal/ast, building the lexical scope tree as it goes
// (spec §4.2). Parsing style is predictive recursive descent with
// speculative marks: a look-ahead buffer is filled on demand from the
// Lexer, and mark()/resetToMark()/popMark() let the parser try a
// production and cleanly back out if it doesn't pan out (lambdas,
// post-identifier generics).
package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/lexer"
	"github.com/accelec/accele/internal/token"
)

// MaxRecursionDepth guards against pathological input driving the
// recursive-descent parser into a stack overflow (e.g. deeply nested
// parenthesized expressions). Exceeding it behaves like any other panic:
// one diagnostic, resync to the nearest statement boundary.
const MaxRecursionDepth = 256

// noopLogger discards every call when the parser is constructed with a
// nil *logrus.Entry, so tracing is zero-cost by default.
var noopLogger = logrus.New()

func init() {
	noopLogger.SetOutput(nil)
	noopLogger.SetLevel(logrus.PanicLevel)
}

// failure is raised by panic/recover to unwind a speculative parse or to
// trigger panic-and-resynchronize outside speculation. It carries no
// payload: the diagnostic (if any) has already been reported by the
// point the failure is raised.
type failure struct{}

// mark is one saved position on the speculation stack.
type mark struct {
	diagCount int // len(Diag.Records()) at mark time, for Testable Property 6
}

// consumedTok pairs a consumed token with the interpolation spans captured
// for it, so resetToMark can restore both in lockstep.
type consumedTok struct {
	tok   token.Token
	spans []token.InterpSpan
}

// Parser consumes a module's token stream into an *ast.Program. The
// teacher's own Parser definition never names its fields directly in any
// file we could find; this shape is reconstructed from call-site usage
// across the retrieval pack (p.curToken/p.peekToken/p.depth/p.ctx/
// p.stream) generalized to the spec's mark/reset speculation model,
// which the teacher's precedence-climbing parser doesn't have.
type Parser struct {
	lex  *lexer.Lexer
	diag *diagnostics.Diagnoser
	log  *logrus.Entry

	buf           []token.Token // look-ahead buffer; buf[0] is the current token
	bufSpans      [][]token.InterpSpan // parallel to buf; captured at lex time since the lexer's interpolation-span slot is overwritten by the very next NextToken call
	marks         []mark
	consumedSince [][]consumedTok // per active mark, tokens (with spans) advanced past since it was taken
	depth         int

	global       *ast.GlobalScope
	scopeStack   []*ast.Scope // innermost enclosing scope for statement/expression productions
	funcDepth    int          // >0 inside a Function/Constructor/Lambda body, for return/throw location checks
	topLevelSeen int          // count of top-level statements parsed so far, for srclock placement (§6)
}

// New creates a Parser over lex, attributing diagnostics to diag and
// scope symbols to a fresh GlobalScope named moduleName (rooted at
// modulePath). log may be nil.
func New(lex *lexer.Lexer, diag *diagnostics.Diagnoser, log *logrus.Entry, moduleName, modulePath string) *Parser {
	if log == nil {
		log = logrus.NewEntry(noopLogger)
	}
	global := &ast.GlobalScope{ModuleName: moduleName, ModulePath: modulePath}
	global.Scope = ast.NewScope(nil, global)
	p := &Parser{lex: lex, diag: diag, log: log, global: global}
	p.scopeStack = []*ast.Scope{global.Scope}
	p.fill(1)
	return p
}

// Global returns the GlobalScope the parse populates.
func (p *Parser) Global() *ast.GlobalScope { return p.global }

// scope returns the innermost enclosing scope for a statement/expression
// production currently being parsed.
func (p *Parser) scope() *ast.Scope { return p.scopeStack[len(p.scopeStack)-1] }

// pushScope makes s the innermost enclosing scope until the matching
// popScope.
func (p *Parser) pushScope(s *ast.Scope) { p.scopeStack = append(p.scopeStack, s) }

func (p *Parser) popScope() { p.scopeStack = p.scopeStack[:len(p.scopeStack)-1] }

// fill ensures the buffer holds at least n tokens, capturing each string
// token's interpolation spans the instant it's lexed (the lexer clears its
// span slot on the very next NextToken call, which look-ahead triggers
// well before the parser actually consumes the token).
func (p *Parser) fill(n int) {
	for len(p.buf) < n {
		t := p.lex.NextToken()
		p.buf = append(p.buf, t)
		if t.Kind == token.STRING || t.Kind == token.INTERP_STRING {
			p.bufSpans = append(p.bufSpans, p.lex.TakeStringSpans())
		} else {
			p.bufSpans = append(p.bufSpans, nil)
		}
	}
}

// lh peeks the k-th upcoming token (lh(0) is the current token).
func (p *Parser) lh(k int) token.Token {
	p.fill(k + 1)
	return p.buf[k]
}

// cur is shorthand for lh(0).
func (p *Parser) cur() token.Token { return p.lh(0) }

// advance consumes the current token and returns it.
func (p *Parser) advance() token.Token {
	t := p.lh(0)
	p.buf = p.buf[1:]
	p.bufSpans = p.bufSpans[1:]
	return t
}

// takeWithSpans is take(), plus the interpolation spans captured for the
// token at the moment it was lexed (non-nil only for STRING/INTERP_STRING).
func (p *Parser) takeWithSpans() (token.Token, []token.InterpSpan) {
	p.fill(1)
	spans := p.bufSpans[0]
	return p.take(), spans
}

// check reports whether the current token has the given kind.
func (p *Parser) check(kind token.Kind) bool { return p.cur().Kind == kind }

// speculating reports whether the parser is currently inside a mark.
func (p *Parser) speculating() bool { return len(p.marks) > 0 }

// mark saves the current diagnostic count (Testable Property 6: after a
// reset, observable state must equal pre-mark state) and opens a new
// consumed-token frame so resetToMark can re-queue whatever gets
// advanced past while speculating.
func (p *Parser) mark() {
	p.marks = append(p.marks, mark{diagCount: len(p.diagRecords())})
	p.consumedSince = append(p.consumedSince, nil)
}

// diagRecords returns the diagnostics reported so far, or nil if this
// parser has no Diagnoser (tests constructing a bare Parser).
func (p *Parser) diagRecords() []diagnostics.Diagnostic {
	if p.diag == nil {
		return nil
	}
	return p.diag.Records()
}

// resetToMark rewinds to the most recent mark, re-queuing every token
// consumed since, and truncates diagnostics back to the pre-mark count
// (speculative diagnostics are suppressed entirely, never just hidden).
func (p *Parser) resetToMark() {
	n := len(p.marks)
	if n == 0 {
		return
	}
	m := p.marks[n-1]
	consumed := p.consumedSince[n-1]
	// Re-attach consumed tokens (and their spans) in front of the
	// remaining buffer.
	restoredBuf := make([]token.Token, len(consumed), len(consumed)+len(p.buf))
	restoredSpans := make([][]token.InterpSpan, len(consumed), len(consumed)+len(p.bufSpans))
	for i, c := range consumed {
		restoredBuf[i] = c.tok
		restoredSpans[i] = c.spans
	}
	p.buf = append(restoredBuf, p.buf...)
	p.bufSpans = append(restoredSpans, p.bufSpans...)
	p.marks = p.marks[:n-1]
	p.consumedSince = p.consumedSince[:n-1]
	if p.diag != nil {
		p.diag.Truncate(m.diagCount)
	}
}

// popMark commits the speculative parse: drops the mark (and its
// consumed-token queue) without rewinding anything.
func (p *Parser) popMark() {
	n := len(p.marks)
	if n == 0 {
		return
	}
	p.marks = p.marks[:n-1]
	p.consumedSince = p.consumedSince[:n-1]
}

// match consumes the current token if it has kind, else reports
// INVALID_TOKEN (unless speculating, where it instead raises a
// recoverable failure) and panics to trigger resynchronization.
func (p *Parser) match(kind token.Kind) token.Token {
	if p.check(kind) {
		return p.take()
	}
	if p.speculating() {
		panic(failure{})
	}
	p.report(diagnostics.INVALID_TOKEN, p.cur(), kind.String(), p.cur().Kind.String())
	panic(failure{})
}

// take consumes the current token, recording it against the innermost
// active mark's consumed-queue (if any) so resetToMark can restore it.
func (p *Parser) take() token.Token {
	spans := p.bufSpans[0]
	t := p.advance()
	if n := len(p.marks); n > 0 {
		p.consumedSince[n-1] = append(p.consumedSince[n-1], consumedTok{tok: t, spans: spans})
	}
	return t
}

// accept consumes and returns true if the current token has kind.
func (p *Parser) accept(kind token.Kind) bool {
	if p.check(kind) {
		p.take()
		return true
	}
	return false
}

// skipNL consumes any run of NL tokens (newline-equivalent statement
// separators are frequently optional around braces/commas).
func (p *Parser) skipNL() {
	for p.check(token.NL) {
		p.take()
	}
}

// skipSeparators consumes a run of NL and/or SEMICOLON tokens.
func (p *Parser) skipSeparators() {
	for p.check(token.NL) || p.check(token.SEMICOLON) {
		p.take()
	}
}

// report records a diagnostic, suppressed while speculating.
func (p *Parser) report(code diagnostics.Code, tok token.Token, args ...any) {
	if p.speculating() || p.diag == nil {
		return
	}
	p.diag.Report(diagnostics.New(code, tok, args...))
}

// resyncStatement implements the statement-end panic terminator set: NL,
// SEMICOLON, EOF, and RBRACE always terminate a resync scan.
func (p *Parser) resyncStatement() {
	for !p.check(token.NL) && !p.check(token.SEMICOLON) && !p.check(token.EOF) && !p.check(token.RBRACE) {
		p.take()
	}
	p.skipSeparators()
}

// recoverStatement runs fn, catching a failure{} panic by resynchronizing
// to the next statement boundary. Used at every top-level/statement
// production so one bad declaration/statement doesn't cascade.
func (p *Parser) recoverStatement(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(failure); !ok {
				panic(r)
			}
			p.resyncStatement()
		}
	}()
	fn()
}

// enterRecursion increments the depth guard, panicking (outside
// speculation, after a diagnostic) past MaxRecursionDepth.
func (p *Parser) enterRecursion() {
	p.depth++
	if p.depth > MaxRecursionDepth {
		p.depth--
		if !p.speculating() {
			p.report(diagnostics.INVALID_TOKEN, p.cur(), "<bounded recursion>", "excessive nesting")
		}
		panic(failure{})
	}
}

func (p *Parser) exitRecursion() { p.depth-- }
