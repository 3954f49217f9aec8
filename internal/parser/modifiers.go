package parser

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/token"
)

// metaTagKinds is every @-prefixed modifier kind the lexer can produce,
// used to recognize a modifier-position token regardless of allowlist
// (an unrecognized tag was already flagged INVALID_TAG by the lexer).
var metaTagKinds = map[token.Kind]bool{
	token.TAG_NORETURN: true, token.TAG_STACKALLOC: true, token.TAG_SRCLOCK: true,
	token.TAG_LAXTHROW: true, token.TAG_EXTERNALINIT: true, token.TAG_DEPRECATED: true,
	token.TAG_ENABLEWARNING: true, token.TAG_DISABLEWARNING: true, token.TAG_NOBUILTINS: true,
}

// keywordModifierKinds is every modifier keyword, visibility keywords
// included (meta tags are in metaTagKinds above).
var keywordModifierKinds = map[token.Kind]bool{
	token.PUBLIC: true, token.PRIVATE: true, token.PROTECTED: true, token.INTERNAL: true,
	token.UNSAFE: true, token.THROWING: true, token.NOEXCEPT: true, token.ASYNC: true,
	token.EXTERN: true, token.STATIC: true, token.OVERRIDE: true,
}

// Per-site modifier allowlists (spec §4.2's "fixed allowlist" per
// declaration site). Visibility keywords (public/private/protected) are
// deliberately excluded from the global function and global variable
// sites, matching the
// spec's own example ("a global function accepts internal, unsafe,
// throwing, noexcept, async, extern, @noreturn, @deprecated,
// @enablewarning, @disablewarning but not public/private/protected").
var (
	globalFunctionModifiers = modSet(token.INTERNAL, token.UNSAFE, token.THROWING, token.NOEXCEPT,
		token.ASYNC, token.EXTERN, token.TAG_NORETURN, token.TAG_DEPRECATED,
		token.TAG_ENABLEWARNING, token.TAG_DISABLEWARNING)

	memberFunctionModifiers = modSet(token.PUBLIC, token.PRIVATE, token.PROTECTED, token.INTERNAL,
		token.STATIC, token.OVERRIDE, token.UNSAFE, token.THROWING, token.NOEXCEPT, token.ASYNC,
		token.TAG_NORETURN, token.TAG_DEPRECATED, token.TAG_ENABLEWARNING, token.TAG_DISABLEWARNING)

	constructorModifiers = modSet(token.PUBLIC, token.PRIVATE, token.PROTECTED, token.INTERNAL,
		token.UNSAFE, token.THROWING, token.TAG_EXTERNALINIT, token.TAG_DEPRECATED,
		token.TAG_ENABLEWARNING, token.TAG_DISABLEWARNING)

	variableModifiers = modSet(token.PUBLIC, token.PRIVATE, token.PROTECTED, token.INTERNAL,
		token.STATIC, token.UNSAFE, token.TAG_STACKALLOC, token.TAG_DEPRECATED,
		token.TAG_ENABLEWARNING, token.TAG_DISABLEWARNING)

	globalVariableModifiers = modSet(token.INTERNAL, token.UNSAFE, token.TAG_STACKALLOC,
		token.TAG_DEPRECATED, token.TAG_ENABLEWARNING, token.TAG_DISABLEWARNING)

	typeDeclModifiers = modSet(token.PUBLIC, token.PRIVATE, token.PROTECTED, token.INTERNAL,
		token.TAG_DEPRECATED, token.TAG_ENABLEWARNING, token.TAG_DISABLEWARNING)

	namespaceModifiers = modSet(token.PUBLIC, token.INTERNAL,
		token.TAG_DEPRECATED, token.TAG_ENABLEWARNING, token.TAG_DISABLEWARNING)

	aliasModifiers = modSet(token.PUBLIC, token.PRIVATE, token.PROTECTED, token.INTERNAL,
		token.TAG_DEPRECATED, token.TAG_ENABLEWARNING, token.TAG_DISABLEWARNING)
)

func modSet(kinds ...token.Kind) map[token.Kind]bool {
	m := make(map[token.Kind]bool, len(kinds))
	for _, k := range kinds {
		m[k] = true
	}
	return m
}

// isModifierStart reports whether tok could begin a modifier at any site
// (visibility keyword, other keyword modifier, or meta tag).
func isModifierStart(k token.Kind) bool {
	return keywordModifierKinds[k] || metaTagKinds[k]
}

// parseModifiers consumes every modifier-looking token up to the
// declaration keyword. Site-specific validation (which modifiers are
// actually allowed here) happens afterward via validateModifiers, once
// the declaration kind that follows is known — the grammar parses
// modifiers before it knows which production they belong to.
func (p *Parser) parseModifiers() []*ast.Modifier {
	var mods []*ast.Modifier
	for isModifierStart(p.cur().Kind) {
		tok := p.take()
		m := &ast.Modifier{Token: tok}
		if tok.Kind == token.TAG_ENABLEWARNING || tok.Kind == token.TAG_DISABLEWARNING {
			m.Args = p.parseWarningMetaArgs()
		}
		mods = append(mods, m)
		p.skipNL()
	}
	return mods
}

// validateModifiers reports INVALID_MODIFIER for every mod not present
// in allowed (the modifier itself is kept in the AST regardless — a bad
// modifier doesn't invalidate the declaration it's attached to).
func (p *Parser) validateModifiers(mods []*ast.Modifier, allowed map[token.Kind]bool) {
	for _, m := range mods {
		if !allowed[m.Token.Kind] {
			p.report(diagnostics.INVALID_MODIFIER, m.Token, m.Token.Text)
		}
	}
}

// parseWarningMetaArgs parses the `("id", "id", ...)` argument list of an
// @enablewarning/@disablewarning modifier.
func (p *Parser) parseWarningMetaArgs() []token.Token {
	if !p.check(token.LPAREN) {
		return nil
	}
	p.take()
	var args []token.Token
	for !p.check(token.RPAREN) {
		args = append(args, p.match(token.STRING))
		if !p.accept(token.COMMA) {
			break
		}
		p.skipNL()
	}
	p.match(token.RPAREN)
	return args
}
