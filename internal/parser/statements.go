package parser

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/token"
)

// parseFunctionBlock parses a `{ ... }` body that introduces a function
// body's location context (return/throw become valid inside it) — used
// for Function, Constructor, Lambda, and get/set/init accessor bodies.
func (p *Parser) parseFunctionBlock(parentScope *ast.Scope) *ast.FunctionBlock {
	return p.parseBlock(parentScope, true)
}

// parseBlock parses a brace-delimited statement list nested under
// parentScope. isFuncBody marks whether return/throw are valid directly
// inside it (a bare control-flow body like an if/while/for arm inherits
// that from whatever function body encloses it, so it passes false).
func (p *Parser) parseBlock(parentScope *ast.Scope, isFuncBody bool) *ast.FunctionBlock {
	tok := p.match(token.LBRACE)
	fb := &ast.FunctionBlock{Tok: tok}
	fb.Scope = ast.NewScope(parentScope, fb)
	p.pushScope(fb.Scope)
	if isFuncBody {
		p.funcDepth++
	}
	defer func() {
		if isFuncBody {
			p.funcDepth--
		}
		p.popScope()
	}()

	p.skipSeparators()
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		p.recoverStatement(func() {
			if st := p.parseStatement(); st != nil {
				fb.Statements = append(fb.Statements, st)
			}
		})
		p.skipSeparators()
	}
	p.match(token.RBRACE)
	return fb
}

func (p *Parser) atStatementEnd() bool {
	switch p.cur().Kind {
	case token.NL, token.SEMICOLON, token.EOF, token.RBRACE:
		return true
	}
	return false
}

// parseStatement dispatches on the leading keyword of a statement inside a
// block body.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur().Kind {
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.REPEAT:
		return p.parseRepeat()
	case token.FOR:
		return p.parseFor()
	case token.SWITCH:
		return p.parseSwitch()
	case token.TRY:
		return p.parseTry()
	case token.RETURN:
		return p.parseReturn()
	case token.THROW:
		return p.parseThrow()
	case token.BREAK, token.CONTINUE, token.FALL:
		return &ast.SingleToken{Tok: p.take()}
	case token.VAR, token.CONST:
		return p.parseVariable(nil, p.scope())
	case token.FUN:
		return p.parseFunction(nil, p.scope())
	default:
		expr := p.parseExpression()
		return &ast.ExpressionStatement{Expr: expr}
	}
}

func (p *Parser) parseIf() *ast.If {
	tok := p.take()
	cond := p.parseExpression()
	then := p.parseBlock(p.scope(), false)
	node := &ast.If{Tok: tok, Cond: cond, Then: then}
	p.skipNL()
	switch {
	case p.check(token.ELIF):
		node.Else = p.parseElif()
	case p.check(token.ELSE):
		elseTok := p.take()
		node.Else = &ast.If{Tok: elseTok, Then: p.parseBlock(p.scope(), false)}
	}
	return node
}

// parseElif parses one `elif cond { ... }` arm, recursing for further
// elif/else arms and wiring them onto the returned If's Else chain.
func (p *Parser) parseElif() *ast.If {
	tok := p.take()
	cond := p.parseExpression()
	then := p.parseBlock(p.scope(), false)
	node := &ast.If{Tok: tok, Cond: cond, Then: then}
	p.skipNL()
	switch {
	case p.check(token.ELIF):
		node.Else = p.parseElif()
	case p.check(token.ELSE):
		elseTok := p.take()
		node.Else = &ast.If{Tok: elseTok, Then: p.parseBlock(p.scope(), false)}
	}
	return node
}

func (p *Parser) parseWhile() *ast.While {
	tok := p.take()
	cond := p.parseExpression()
	body := p.parseBlock(p.scope(), false)
	return &ast.While{Tok: tok, Cond: cond, Body: body}
}

// parseRepeat parses `repeat { ... } while cond`, a post-test loop.
func (p *Parser) parseRepeat() *ast.Repeat {
	tok := p.take()
	body := p.parseBlock(p.scope(), false)
	p.skipNL()
	p.match(token.WHILE)
	cond := p.parseExpression()
	return &ast.Repeat{Tok: tok, Body: body, Cond: cond}
}

func (p *Parser) parseFor() *ast.For {
	tok := p.take()
	name := p.match(token.ID)
	p.match(token.IN)
	iterable := p.parseExpression()
	f := &ast.For{Tok: tok, VarName: name, Iterable: iterable}
	f.Scope = ast.NewScope(p.scope(), f)
	f.Scope.Declare(&ast.Variable{Tok: name})
	f.Body = p.parseBlock(f.Scope, false)
	return f
}

func (p *Parser) parseSwitch() *ast.Switch {
	tok := p.take()
	subject := p.parseExpression()
	p.match(token.LBRACE)
	p.skipSeparators()
	sw := &ast.Switch{Tok: tok, Subject: subject}
	sawDefault := false
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		p.recoverStatement(func() {
			sc := p.parseSwitchCase()
			if sc.Patterns == nil {
				if sawDefault {
					p.report(diagnostics.DUPLICATE_DEFAULT_CASE, sc.Tok)
				}
				sawDefault = true
			}
			sw.Cases = append(sw.Cases, sc)
		})
		p.skipSeparators()
	}
	p.match(token.RBRACE)
	return sw
}

func (p *Parser) parseSwitchCase() ast.SwitchCase {
	if p.check(token.DEFAULT) {
		tok := p.take()
		p.match(token.COLON)
		return ast.SwitchCase{Tok: tok, Body: p.parseCaseBody()}
	}
	tok := p.match(token.CASE)
	patterns := []ast.Expression{p.parseExpression()}
	for p.accept(token.COMMA) {
		p.skipNL()
		patterns = append(patterns, p.parseExpression())
	}
	p.match(token.COLON)
	return ast.SwitchCase{Tok: tok, Patterns: patterns, Body: p.parseCaseBody()}
}

// parseCaseBody parses the statements of one switch arm up to the next
// case/default/closing brace — arms share the switch's enclosing scope,
// not a scope of their own (ast.SwitchCase carries no Scope field).
func (p *Parser) parseCaseBody() []ast.Statement {
	p.skipSeparators()
	var stmts []ast.Statement
	for !p.check(token.CASE) && !p.check(token.DEFAULT) && !p.check(token.RBRACE) && !p.check(token.EOF) {
		p.recoverStatement(func() {
			if st := p.parseStatement(); st != nil {
				stmts = append(stmts, st)
			}
		})
		p.skipSeparators()
	}
	return stmts
}

func (p *Parser) parseTry() *ast.Try {
	tok := p.take()
	body := p.parseBlock(p.scope(), false)
	t := &ast.Try{Tok: tok, Body: body}
	p.skipNL()
	for p.check(token.CATCH) {
		t.Catches = append(t.Catches, p.parseCatch())
		p.skipNL()
	}
	if p.check(token.FINALLY) {
		p.take()
		t.Finally = p.parseBlock(p.scope(), false)
	}
	return t
}

func (p *Parser) parseCatch() ast.CatchClause {
	tok := p.take() // catch
	name := p.match(token.ID)
	cc := ast.CatchClause{Tok: tok, VarName: name}
	if p.accept(token.COLON) {
		cc.ErrorType = p.parseTypeRef()
	}
	scope := ast.NewScope(p.scope(), nil)
	scope.Declare(&ast.Variable{Tok: name})
	cc.Scope = scope
	cc.Body = p.parseBlock(scope, false)
	return cc
}

func (p *Parser) parseReturn() *ast.Return {
	tok := p.take()
	if p.funcDepth == 0 {
		p.report(diagnostics.INVALID_RETURN_LOCATION, tok)
	}
	r := &ast.Return{Tok: tok}
	if !p.atStatementEnd() {
		r.Value = p.parseExpression()
	}
	return r
}

func (p *Parser) parseThrow() *ast.Throw {
	tok := p.take()
	if p.funcDepth == 0 {
		p.report(diagnostics.INVALID_THROW_LOCATION, tok)
	}
	return &ast.Throw{Tok: tok, Value: p.parseExpression()}
}
