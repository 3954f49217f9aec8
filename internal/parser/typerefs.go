package parser

import (
	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/lexer"
	"github.com/accelec/accele/internal/token"
)

// parseTypeRef parses parseTypeBase then zero or more suffixes, per §4.2.
func (p *Parser) parseTypeRef() ast.TypeRef {
	p.enterRecursion()
	defer p.exitRecursion()

	t := p.parseTypeBase()
	for {
		switch {
		case p.check(token.QUESTION):
			tok := p.take()
			t = &ast.SuffixTypeRef{Tok: tok, Base: t, Kind: ast.SuffixOptional}
		case p.check(token.BANG):
			tok := p.take()
			t = &ast.SuffixTypeRef{Tok: tok, Base: t, Kind: ast.SuffixUnwrapped}
		case p.check(token.STAR):
			tok := p.take()
			t = &ast.SuffixTypeRef{Tok: tok, Base: t, Kind: ast.SuffixPointer}
		case p.check(token.DOT_DOT_DOT):
			tok := p.take()
			t = &ast.SuffixTypeRef{Tok: tok, Base: t, Kind: ast.SuffixVariadic}
		case p.check(token.ARROW):
			tok := p.take()
			ret := p.parseTypeRef()
			params, variadic := flattenParamList(t)
			t = &ast.FunctionTypeRef{Tok: tok, Params: params, Variadic: variadic, Return: ret}
		case p.check(token.LBRACKET):
			tok := p.take()
			if p.check(token.RBRACKET) {
				p.take()
				t = &ast.ArrayTypeRef{Tok: tok, Element: t}
				continue
			}
			key := p.parseTypeRef()
			p.match(token.RBRACKET)
			t = &ast.MapTypeRef{Tok: tok, Key: key, Value: t}
		// Composite suffix symbols the lexer emitted one token for but that
		// need splitting in this context (`??`, `**`) are relexed and only
		// the first piece consumed; the remainder stays in the buffer for
		// the next production to pick up.
		case p.check(token.QUESTION_QUESTION):
			p.relexConsumeFirst()
			tok := p.take()
			t = &ast.SuffixTypeRef{Tok: tok, Base: t, Kind: ast.SuffixOptional}
		case p.check(token.STAR_STAR):
			p.relexConsumeFirst()
			tok := p.take()
			t = &ast.SuffixTypeRef{Tok: tok, Base: t, Kind: ast.SuffixPointer}
		default:
			return t
		}
	}
}

// relexConsumeFirst replaces the current composite token with its relexed
// pieces in the look-ahead buffer (§4.1.1), leaving the parser positioned
// at the first piece so the caller's subsequent take() consumes just it.
func (p *Parser) relexConsumeFirst() {
	cur := p.lh(0)
	pieces := lexer.Relex(cur)
	if len(pieces) <= 1 {
		return
	}
	rest := p.buf[1:]
	p.buf = append(append([]token.Token{}, pieces...), rest...)
	p.bufSpans = append(make([][]token.InterpSpan, len(pieces)), p.bufSpans[1:]...)
}

// flattenParamList turns a parenthesized TupleTypeRef base into a
// FunctionTypeRef's parameter list; a single non-tuple base is one
// parameter. The last element being a SuffixVariadic TypeRef marks the
// function type as variadic.
func flattenParamList(base ast.TypeRef) (params []ast.TypeRef, variadic bool) {
	if tup, ok := base.(*ast.TupleTypeRef); ok {
		params = tup.Elements
	} else {
		params = []ast.TypeRef{base}
	}
	if n := len(params); n > 0 {
		if s, ok := params[n-1].(*ast.SuffixTypeRef); ok && s.Kind == ast.SuffixVariadic {
			variadic = true
		}
	}
	return params, variadic
}

// parseTypeBase parses one of: a tuple `(T1, T2, …)`, a map `[K: V]`, or
// an identifier chain (optionally `global.`-prefixed) with per-segment
// generics.
func (p *Parser) parseTypeBase() ast.TypeRef {
	switch {
	case p.check(token.LPAREN):
		return p.parseTupleTypeBase()
	case p.check(token.LBRACKET):
		return p.parseMapTypeBase()
	case p.check(token.SUPER):
		tok := p.take()
		return &ast.SuperTypeRef{Tok: tok}
	default:
		return p.parseSimpleTypeRef()
	}
}

func (p *Parser) parseTupleTypeBase() ast.TypeRef {
	tok := p.take() // (
	var elems []ast.TypeRef
	p.skipNL()
	for !p.check(token.RPAREN) {
		elems = append(elems, p.parseTypeRef())
		p.skipNL()
		if !p.accept(token.COMMA) {
			break
		}
		p.skipNL()
	}
	p.match(token.RPAREN)
	if len(elems) == 1 {
		return elems[0]
	}
	return &ast.TupleTypeRef{Tok: tok, Elements: elems}
}

func (p *Parser) parseMapTypeBase() ast.TypeRef {
	tok := p.take() // [
	key := p.parseTypeRef()
	p.match(token.COLON)
	val := p.parseTypeRef()
	p.match(token.RBRACKET)
	return &ast.MapTypeRef{Tok: tok, Key: key, Value: val}
}

func (p *Parser) parseSimpleTypeRef() ast.TypeRef {
	global := false
	if p.check(token.GLOBAL) && p.lh(1).Kind == token.DOT {
		p.take()
		p.take()
		global = true
	}
	tok := p.cur()
	var segments []string
	var generics [][]ast.TypeRef
	for {
		id := p.match(token.ID)
		segments = append(segments, id.Text)
		generics = append(generics, p.parseOptionalGenericArgs())
		if !p.check(token.DOT) {
			break
		}
		p.take()
	}
	return &ast.SimpleTypeRef{Tok: tok, Segments: segments, Generics: generics, GlobalOnly: global}
}

// parseOptionalGenericArgs parses a `<T, U>` generic-argument list if
// present. In TypeRef position (unlike expression position) this is not
// speculative: `<` always introduces generics here since a TypeRef
// segment can't be followed by a relational operator.
func (p *Parser) parseOptionalGenericArgs() []ast.TypeRef {
	if !p.check(token.LT) {
		return nil
	}
	p.take()
	var args []ast.TypeRef
	p.skipNL()
	for !p.check(token.GT) {
		args = append(args, p.parseTypeRef())
		p.skipNL()
		if !p.accept(token.COMMA) {
			break
		}
		p.skipNL()
	}
	p.closeAngle()
	return args
}

// closeAngle consumes a closing `>`, relexing it out of `>>`/`>=`/`>>=`
// when the lexer greedily produced one of those instead (§4.1.1).
func (p *Parser) closeAngle() {
	switch p.cur().Kind {
	case token.GT:
		p.take()
	case token.RSHIFT, token.GE, token.RSHIFT_ASSIGN:
		p.relexConsumeFirst()
		p.take()
	default:
		p.match(token.GT)
	}
}
