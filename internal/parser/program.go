package parser

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/token"
)

// ParseProgram consumes the entire token stream into an *ast.Program
// rooted at p.Global(). It never returns an error: every failure is
// reported as a diagnostic and resynchronized past (spec §4.2's failure
// semantics); the driver decides whether to proceed based on
// Diagnoser.HasErrors.
func (p *Parser) ParseProgram() *ast.Program {
	p.log.Trace("parse: start")
	p.skipSeparators()
	var stmts []ast.Statement
	for !p.check(token.EOF) {
		p.recoverStatement(func() {
			if st := p.parseTopLevel(); st != nil {
				stmts = append(stmts, st)
				p.topLevelSeen++
			}
		})
		p.skipSeparators()
	}
	p.log.Trace("parse: done")
	return &ast.Program{File: p.global.ModulePath, Global: p.global, Statements: stmts}
}

// parseTopLevel dispatches on the first non-modifier, non-NL token, per
// §4.2's list of recognized top-level forms.
func (p *Parser) parseTopLevel() ast.Statement {
	if p.check(token.TAG_SRCLOCK) {
		return p.parseSrcLock()
	}
	if p.check(token.TAG_NOBUILTINS) {
		tok := p.take()
		return &ast.MetaDecl{Tok: tok, Mod: &ast.Modifier{Token: tok}}
	}
	if p.check(token.TAG_ENABLEWARNING) || p.check(token.TAG_DISABLEWARNING) {
		tok := p.take()
		args := p.parseWarningMetaArgs()
		return &ast.MetaDecl{Tok: tok, Mod: &ast.Modifier{Token: tok, Args: args}}
	}

	mods := p.parseModifiers()
	switch p.cur().Kind {
	case token.IMPORT:
		p.validateModifiers(mods, nil)
		return p.parseImport()
	case token.FUN:
		p.validateModifiers(mods, globalFunctionModifiers)
		return p.parseFunction(mods, p.global.Scope)
	case token.VAR, token.CONST:
		p.validateModifiers(mods, globalVariableModifiers)
		return p.parseVariable(mods, p.global.Scope)
	case token.ALIAS:
		p.validateModifiers(mods, aliasModifiers)
		return p.parseAlias(mods, p.global.Scope)
	case token.CLASS:
		p.validateModifiers(mods, typeDeclModifiers)
		return p.parseClass(mods, p.global.Scope)
	case token.STRUCT:
		p.validateModifiers(mods, typeDeclModifiers)
		return p.parseStruct(mods, p.global.Scope)
	case token.TEMPLATE:
		p.validateModifiers(mods, typeDeclModifiers)
		return p.parseTemplate(mods, p.global.Scope)
	case token.ENUM:
		p.validateModifiers(mods, typeDeclModifiers)
		return p.parseEnum(mods, p.global.Scope)
	case token.NAMESPACE:
		p.validateModifiers(mods, namespaceModifiers)
		return p.parseNamespace(mods, p.global.Scope)
	default:
		tok := p.cur()
		p.report(diagnostics.INVALID_TOKEN, tok, "declaration", tok.Kind.String())
		panic(failure{})
	}
}

// parseSrcLock handles a standalone `@srclock` tag. Per §6 it must appear
// at the top of the module; anywhere else it's still accepted as a
// MetaDecl but draws NONFRONTED_SOURCE_LOCK.
func (p *Parser) parseSrcLock() ast.Statement {
	tok := p.take()
	if p.topLevelSeen > 0 {
		p.report(diagnostics.NONFRONTED_SOURCE_LOCK, tok)
	}
	return &ast.MetaDecl{Tok: tok, Mod: &ast.Modifier{Token: tok}}
}
