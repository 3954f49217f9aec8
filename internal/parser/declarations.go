package parser

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/token"
)

// parseGenericParams parses an optional `<T: Bound, U>` declaration-site
// generic parameter list.
func (p *Parser) parseGenericParams() []*ast.GenericType {
	if !p.check(token.LT) {
		return nil
	}
	p.take()
	var out []*ast.GenericType
	p.skipNL()
	for !p.check(token.GT) {
		tok := p.match(token.ID)
		g := &ast.GenericType{Tok: tok}
		if p.accept(token.COLON) {
			g.Bound = p.parseTypeRef()
		}
		out = append(out, g)
		p.skipNL()
		if !p.accept(token.COMMA) {
			break
		}
		p.skipNL()
	}
	p.closeAngle()
	return out
}

// parseParams parses a `(p1: T1, p2: T2 = default, ...)` parameter list,
// flagging every variadic parameter that isn't last.
func (p *Parser) parseParams() []*ast.Parameter {
	p.match(token.LPAREN)
	var params []*ast.Parameter
	p.skipNL()
	for !p.check(token.RPAREN) {
		params = append(params, p.parseOneParam())
		p.skipNL()
		if !p.accept(token.COMMA) {
			break
		}
		p.skipNL()
	}
	p.match(token.RPAREN)
	for i, prm := range params {
		if prm.IsVariadic && i != len(params)-1 {
			p.report(diagnostics.NON_FINAL_VARIADIC_PARAMETER, prm.Tok)
		}
	}
	return params
}

func (p *Parser) parseOneParam() *ast.Parameter {
	tok := p.match(token.ID)
	param := &ast.Parameter{Tok: tok}
	if p.accept(token.COLON) {
		t := p.parseTypeRef()
		if s, ok := t.(*ast.SuffixTypeRef); ok && s.Kind == ast.SuffixVariadic {
			param.IsVariadic = true
		}
		param.TypeAnnotation = t
	}
	if p.accept(token.ASSIGN) {
		param.DefaultValue = p.parseExpression()
	}
	return param
}

// parseFunction parses a `fun name<generics>(params) -> RetType { body }`
// declaration. A missing body is allowed (header-only `.acldef` forms).
func (p *Parser) parseFunction(mods []*ast.Modifier, parentScope *ast.Scope) *ast.Function {
	p.take() // 'fun'
	name := p.match(token.ID)
	fn := &ast.Function{Tok: name, Modifiers: mods}
	fn.Generics = p.parseGenericParams()
	fn.Scope = ast.NewScope(parentScope, fn)
	fn.Params = p.parseParams()
	for _, prm := range fn.Params {
		fn.Scope.Declare(prm)
	}
	if p.accept(token.ARROW) {
		fn.ReturnType = p.parseTypeRef()
	}
	if p.check(token.LBRACE) {
		fn.Body = p.parseFunctionBlock(fn.Scope)
	}
	parentScope.Declare(fn)
	return fn
}

// parseConstructor parses an `init(params) { body }` declaration inside a
// Class/Struct/Template body.
func (p *Parser) parseConstructor(mods []*ast.Modifier, owner ast.TypeDecl, parentScope *ast.Scope) *ast.Constructor {
	tok := p.take() // 'init'
	ctor := &ast.Constructor{Tok: tok, Modifiers: mods, Owner: owner}
	ctor.Scope = ast.NewScope(parentScope, ctor)
	ctor.Params = p.parseParams()
	for _, prm := range ctor.Params {
		ctor.Scope.Declare(prm)
	}
	if p.check(token.LBRACE) {
		ctor.Body = p.parseFunctionBlock(ctor.Scope)
	}
	parentScope.Declare(ctor)
	return ctor
}

// parseVariable parses a `var`/`const name: Type = value { get {...} ... }`
// declaration.
func (p *Parser) parseVariable(mods []*ast.Modifier, parentScope *ast.Scope) *ast.Variable {
	kw := p.take() // 'var' or 'const'
	name := p.match(token.ID)
	v := &ast.Variable{Tok: name, Modifiers: mods, IsConst: kw.Kind == token.CONST}
	if p.accept(token.COLON) {
		v.TypeAnnotation = p.parseTypeRef()
	}
	if p.accept(token.ASSIGN) {
		v.Value = p.parseExpression()
	}
	if p.check(token.LBRACE) {
		v.Blocks = p.parseVariableBlock(parentScope)
	}
	parentScope.Declare(v)
	return v
}

// parseVariableBlock parses the optional `{ get {...} set(x) {...} init {...} }`
// triple, each at most once (duplicates are DUPLICATE_VARIABLE_BLOCK).
func (p *Parser) parseVariableBlock(scope *ast.Scope) *ast.VariableBlock {
	tok := p.take() // {
	vb := &ast.VariableBlock{Tok: tok}
	p.skipSeparators()
	for !p.check(token.RBRACE) {
		switch p.cur().Kind {
		case token.GET:
			getTok := p.take()
			body := p.parseFunctionBlock(scope)
			if vb.Get != nil {
				p.report(diagnostics.DUPLICATE_VARIABLE_BLOCK, getTok, "get")
			} else {
				vb.Get = body
			}
		case token.SET:
			setTok := p.take()
			var paramName token.Token
			if p.accept(token.LPAREN) {
				paramName = p.match(token.ID)
				p.match(token.RPAREN)
			}
			body := p.parseFunctionBlock(scope)
			if vb.Set != nil {
				p.report(diagnostics.DUPLICATE_VARIABLE_BLOCK, setTok, "set")
			} else {
				vb.Set = &ast.SetBlock{Tok: setTok, ParamName: paramName, Body: body}
			}
		case token.INIT:
			initTok := p.take()
			body := p.parseFunctionBlock(scope)
			if vb.Init != nil {
				p.report(diagnostics.DUPLICATE_VARIABLE_BLOCK, initTok, "init")
			} else {
				vb.Init = body
			}
		default:
			p.report(diagnostics.INVALID_TOKEN, p.cur(), "get/set/init", p.cur().Kind.String())
			panic(failure{})
		}
		p.skipSeparators()
	}
	p.match(token.RBRACE)
	return vb
}

// parseAlias parses `alias Name<Generics> = TypeRef`, declaring it into
// declScope (the global scope at top level, or an enclosing type/namespace
// scope for a nested alias).
func (p *Parser) parseAlias(mods []*ast.Modifier, declScope *ast.Scope) *ast.Alias {
	p.take() // 'alias'
	name := p.match(token.ID)
	a := &ast.Alias{Tok: name, Modifiers: mods}
	a.Generics = p.parseGenericParams()
	p.match(token.ASSIGN)
	a.Target = p.parseTypeRef()
	declScope.Declare(a)
	return a
}

// parseNamespace parses `namespace Name { members }`.
func (p *Parser) parseNamespace(mods []*ast.Modifier, declScope *ast.Scope) *ast.Namespace {
	p.take() // 'namespace'
	name := p.match(token.ID)
	ns := &ast.Namespace{Tok: name, Modifiers: mods}
	ns.Scope = ast.NewScope(declScope, ns)
	ns.Members = p.parseMemberBlock(ns.Scope, nil)
	declScope.Declare(ns)
	return ns
}

// typeDeclHeader collects the name/generics/parent-list shared by
// Class/Struct/Template/Enum before the caller builds its own scope-owner
// struct (typeDeclBase's fields are promoted and exported, so each
// concrete type's fields are assigned directly from this).
type typeDeclHeader struct {
	Tok      token.Token
	Generics []*ast.GenericType
	Parents  []ast.TypeRef
}

func (p *Parser) parseTypeDeclHeader() typeDeclHeader {
	p.take() // class/struct/template/enum keyword
	h := typeDeclHeader{Tok: p.match(token.ID)}
	h.Generics = p.parseGenericParams()
	if p.accept(token.COLON) {
		for {
			h.Parents = append(h.Parents, p.parseTypeRef())
			if !p.accept(token.COMMA) {
				break
			}
			p.skipNL()
		}
	}
	return h
}

func (p *Parser) parseClass(mods []*ast.Modifier, declScope *ast.Scope) *ast.Class {
	d := &ast.Class{}
	h := p.parseTypeDeclHeader()
	d.Tok, d.Generics, d.Parents, d.Modifiers = h.Tok, h.Generics, h.Parents, mods
	d.Scope = ast.NewScope(declScope, d)
	d.Members = p.parseMemberBlock(d.Scope, d)
	declScope.Declare(d)
	return d
}

func (p *Parser) parseStruct(mods []*ast.Modifier, declScope *ast.Scope) *ast.Struct {
	d := &ast.Struct{}
	h := p.parseTypeDeclHeader()
	d.Tok, d.Generics, d.Parents, d.Modifiers = h.Tok, h.Generics, h.Parents, mods
	d.Scope = ast.NewScope(declScope, d)
	d.Members = p.parseMemberBlock(d.Scope, d)
	declScope.Declare(d)
	return d
}

func (p *Parser) parseTemplate(mods []*ast.Modifier, declScope *ast.Scope) *ast.Template {
	d := &ast.Template{}
	h := p.parseTypeDeclHeader()
	d.Tok, d.Generics, d.Parents, d.Modifiers = h.Tok, h.Generics, h.Parents, mods
	d.Scope = ast.NewScope(declScope, d)
	d.Members = p.parseMemberBlock(d.Scope, d)
	declScope.Declare(d)
	return d
}

func (p *Parser) parseEnum(mods []*ast.Modifier, declScope *ast.Scope) *ast.Enum {
	d := &ast.Enum{}
	h := p.parseTypeDeclHeader()
	d.Tok, d.Generics, d.Parents, d.Modifiers = h.Tok, h.Generics, h.Parents, mods
	d.Scope = ast.NewScope(declScope, d)

	p.match(token.LBRACE)
	p.skipSeparators()
	for p.check(token.ID) && p.isEnumCaseStart() {
		d.Cases = append(d.Cases, p.parseEnumCase(d))
		p.skipSeparators()
		if !p.accept(token.COMMA) {
			continue
		}
		p.skipNL()
	}
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		p.recoverStatement(func() {
			if st := p.parseMember(d.Scope, d); st != nil {
				d.Members = append(d.Members, st)
			}
		})
		p.skipSeparators()
	}
	p.match(token.RBRACE)

	declScope.Declare(d)
	return d
}

// isEnumCaseStart distinguishes a bare `Case1, Case2` enum-case line from a
// following member declaration — enum cases are a plain identifier
// followed only by `(`, `,`, a separator, or the closing brace.
func (p *Parser) isEnumCaseStart() bool {
	switch p.lh(1).Kind {
	case token.COMMA, token.NL, token.SEMICOLON, token.LPAREN, token.RBRACE:
		return true
	default:
		return false
	}
}

func (p *Parser) parseEnumCase(owner *ast.Enum) *ast.EnumCase {
	tok := p.match(token.ID)
	ec := &ast.EnumCase{Tok: tok, Owner: owner}
	if p.accept(token.LPAREN) {
		p.skipNL()
		for !p.check(token.RPAREN) {
			ec.Associated = append(ec.Associated, p.parseTypeRef())
			p.skipNL()
			if !p.accept(token.COMMA) {
				break
			}
			p.skipNL()
		}
		p.match(token.RPAREN)
	}
	owner.Scope.Declare(ec)
	return ec
}

// parseMemberBlock parses a brace-delimited declaration list: a
// Class/Struct/Template/Enum body (owner non-nil, constructors allowed)
// or a Namespace body (owner nil, no `init`).
func (p *Parser) parseMemberBlock(scope *ast.Scope, owner ast.TypeDecl) []ast.Statement {
	p.match(token.LBRACE)
	p.skipSeparators()
	var members []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		p.recoverStatement(func() {
			if st := p.parseMember(scope, owner); st != nil {
				members = append(members, st)
			}
		})
		p.skipSeparators()
	}
	p.match(token.RBRACE)
	return members
}

func (p *Parser) parseMember(scope *ast.Scope, owner ast.TypeDecl) ast.Statement {
	mods := p.parseModifiers()
	switch p.cur().Kind {
	case token.FUN:
		allowed := memberFunctionModifiers
		if owner == nil {
			allowed = globalFunctionModifiers
		}
		p.validateModifiers(mods, allowed)
		return p.parseFunction(mods, scope)
	case token.VAR, token.CONST:
		allowed := variableModifiers
		if owner == nil {
			allowed = globalVariableModifiers
		}
		p.validateModifiers(mods, allowed)
		return p.parseVariable(mods, scope)
	case token.INIT:
		if owner == nil {
			p.report(diagnostics.INVALID_TOKEN, p.cur(), "member declaration", p.cur().Kind.String())
			panic(failure{})
		}
		p.validateModifiers(mods, constructorModifiers)
		return p.parseConstructor(mods, owner, scope)
	case token.ALIAS:
		p.validateModifiers(mods, aliasModifiers)
		return p.parseAlias(mods, scope)
	case token.CLASS:
		p.validateModifiers(mods, typeDeclModifiers)
		return p.parseClass(mods, scope)
	case token.STRUCT:
		p.validateModifiers(mods, typeDeclModifiers)
		return p.parseStruct(mods, scope)
	case token.TEMPLATE:
		p.validateModifiers(mods, typeDeclModifiers)
		return p.parseTemplate(mods, scope)
	case token.ENUM:
		p.validateModifiers(mods, typeDeclModifiers)
		return p.parseEnum(mods, scope)
	case token.NAMESPACE:
		p.validateModifiers(mods, namespaceModifiers)
		return p.parseNamespace(mods, scope)
	default:
		tok := p.cur()
		p.report(diagnostics.INVALID_TOKEN, tok, "member declaration", tok.Kind.String())
		panic(failure{})
	}
}
