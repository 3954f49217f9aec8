package parser

import (
	"strings"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/token"
)

// parseImport handles both shapes from §4.2: `import <source> [as <id>]`
// and `import [{]<target>[, <target>]…[}] from <source>`.
func (p *Parser) parseImport() ast.Statement {
	tok := p.take() // 'import'
	imp := &ast.Import{Tok: tok}

	if p.check(token.LBRACE) || p.startsIdentifierChain() && p.lhIsFromShape() {
		imp.Targets = p.parseImportTargets()
		p.match(token.FROM)
		p.parseImportSource(imp)
	} else {
		p.parseImportSource(imp)
		if p.check(token.AS) {
			p.take()
			alias := p.match(token.ID)
			imp.Alias = &alias
		}
	}

	p.global.Imports = append(p.global.Imports, imp)
	p.global.Scope.Declare(imp)
	return imp
}

// lhIsFromShape looks ahead past a bare identifier-chain target list for
// a `from` keyword, distinguishing `import {a, b} from X` /
// `import a, b from X` from the plain `import a.b.c [as x]` shape. Both
// shapes start with an identifier, so this is a bounded lookahead rather
// than full speculation (braces make the brace-delimited form
// unambiguous already).
func (p *Parser) lhIsFromShape() bool {
	k := 0
	for {
		t := p.lh(k)
		if t.Kind != token.ID {
			return false
		}
		k++
		if p.lh(k).Kind == token.COMMA {
			k++
			continue
		}
		return p.lh(k).Kind == token.FROM
	}
}

func (p *Parser) startsIdentifierChain() bool { return p.check(token.ID) }

// parseImportTargets parses the `{a, b as c}` or bare `a, b as c` target
// list of the `from` shape.
func (p *Parser) parseImportTargets() []ast.ImportTarget {
	braced := p.accept(token.LBRACE)
	var targets []ast.ImportTarget
	for {
		name := p.match(token.ID)
		t := ast.ImportTarget{Tok: name}
		if p.check(token.AS) {
			p.take()
			alias := p.match(token.ID)
			t.Alias = &alias
		}
		targets = append(targets, t)
		if !p.accept(token.COMMA) {
			break
		}
		p.skipNL()
	}
	if braced {
		p.match(token.RBRACE)
	}
	return targets
}

// parseImportSource parses a STRING literal source or a dotted,
// relative-qualified identifier-chain source, filling imp.Source/SourceTok.
func (p *Parser) parseImportSource(imp *ast.Import) {
	if p.check(token.STRING) {
		tok := p.take()
		imp.Source = tok.Text
		imp.SourceTok = tok
		return
	}

	var b strings.Builder
	first := true
	startTok := p.cur()
	// Leading dot markers: `.` (current dir), `..`/`...` (parent climbs),
	// written into Source as one '.' per dot character of each token.
	for p.check(token.DOT) || p.check(token.DOT_DOT) || p.check(token.DOT_DOT_DOT) {
		tok := p.take()
		for range tok.Text {
			b.WriteByte('.')
		}
	}
	for {
		id := p.match(token.ID)
		if !first {
			b.WriteByte('.')
		}
		b.WriteString(id.Text)
		first = false
		if !p.check(token.DOT) {
			break
		}
		p.take()
	}
	imp.Source = b.String()
	imp.SourceTok = startTok
}
