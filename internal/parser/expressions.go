package parser

import (
	"github.com/sirupsen/logrus"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/lexer"
	"github.com/accelec/accele/internal/token"
)

// newSubParser builds a throwaway Parser over a string-interpolation
// span's source text, sharing the host parse's diagnostics sink so a
// malformed interpolation expression is reported against the real run.
func newSubParser(source, moduleRef string, diag *diagnostics.Diagnoser, log *logrus.Entry) *Parser {
	sub := lexer.New(moduleRef, source, diag, log)
	return New(sub, diag, log, "", moduleRef)
}

// parseExpression is the entry point of the expression grammar: assignment
// is the loosest-binding production (§4.2's precedence table).
func (p *Parser) parseExpression() ast.Expression {
	p.enterRecursion()
	defer p.exitRecursion()
	return p.parseAssignment()
}

// parseAssignment tries a lambda speculatively first (a lambda's parameter
// list looks exactly like a parenthesized expression until the `=>`), then
// falls through to ternary; an assignment operator to the right of that
// makes the whole thing right-associative.
func (p *Parser) parseAssignment() ast.Expression {
	if lam, ok := p.tryLambda(); ok {
		return lam
	}
	left := p.parseTernary()
	if p.cur().Kind.IsAssignmentOp() {
		tok := p.take()
		right := p.parseAssignment()
		op := ast.OpCompoundAssign
		if tok.Kind == token.ASSIGN {
			op = ast.OpAssign
		}
		return &ast.Binary{Tok: tok, Op: op, Left: left, Right: right}
	}
	return left
}

// tryLambda attempts `(params) => body` or `ident => body` under a
// speculative mark, resetting cleanly if either the parameter list or the
// `=>` doesn't materialize — the same ambiguity a parenthesized expression
// or a bare identifier comparison would otherwise create.
func (p *Parser) tryLambda() (lam *ast.Lambda, ok bool) {
	if !p.check(token.LPAREN) && !p.check(token.ID) {
		return nil, false
	}
	p.mark()
	defer func() {
		if r := recover(); r != nil {
			if _, isFailure := r.(failure); !isFailure {
				panic(r)
			}
			p.resetToMark()
			lam, ok = nil, false
		}
	}()
	lam = p.parseLambdaSpeculative()
	p.popMark()
	return lam, true
}

func (p *Parser) parseLambdaSpeculative() *ast.Lambda {
	tok := p.cur()
	lam := &ast.Lambda{Tok: tok}
	lam.Scope = ast.NewScope(p.scope(), lam)
	if p.check(token.LPAREN) {
		lam.Params = p.parseLambdaParams()
	} else {
		id := p.match(token.ID)
		lam.Params = []*ast.Parameter{{Tok: id}}
	}
	for _, prm := range lam.Params {
		lam.Scope.Declare(prm)
	}
	p.matchFatArrow()
	p.pushScope(lam.Scope)
	defer p.popScope()
	if p.check(token.LBRACE) {
		lam.Block = p.parseFunctionBlock(lam.Scope)
	} else {
		lam.Body = p.parseExpression()
	}
	return lam
}

// parseLambdaParams is parseParams with an optional type annotation (a
// lambda parameter's type is very often inferred from context).
func (p *Parser) parseLambdaParams() []*ast.Parameter {
	p.match(token.LPAREN)
	var params []*ast.Parameter
	p.skipNL()
	for !p.check(token.RPAREN) {
		id := p.match(token.ID)
		param := &ast.Parameter{Tok: id}
		if p.accept(token.COLON) {
			param.TypeAnnotation = p.parseTypeRef()
		}
		params = append(params, param)
		p.skipNL()
		if !p.accept(token.COMMA) {
			break
		}
		p.skipNL()
	}
	p.match(token.RPAREN)
	return params
}

// matchFatArrow consumes a lambda's `=>`, which the lexer produces as
// adjacent ASSIGN and GT tokens (no composite kind of its own, unlike
// `??`/`**`/the shift operators).
func (p *Parser) matchFatArrow() {
	p.match(token.ASSIGN)
	p.match(token.GT)
}

func (p *Parser) parseTernary() ast.Expression {
	cond := p.parseLogicalOr()
	if !p.check(token.QUESTION) {
		return cond
	}
	tok := p.take()
	then := p.parseAssignment()
	p.match(token.COLON)
	elseExpr := p.parseAssignment()
	return &ast.Ternary{Tok: tok, Cond: cond, Then: then, Else: elseExpr}
}

func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	for p.check(token.PIPE_PIPE) || p.check(token.OR) {
		tok := p.take()
		right := p.parseLogicalAnd()
		left = &ast.Binary{Tok: tok, Op: ast.OpOr, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseBitOr()
	for p.check(token.AMP_AMP) || p.check(token.AND) {
		tok := p.take()
		right := p.parseBitOr()
		left = &ast.Binary{Tok: tok, Op: ast.OpAnd, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBitOr() ast.Expression {
	left := p.parseBitXor()
	for p.check(token.PIPE) {
		tok := p.take()
		right := p.parseBitXor()
		left = &ast.Binary{Tok: tok, Op: ast.OpBitOr, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBitXor() ast.Expression {
	left := p.parseBitAnd()
	for p.check(token.CARET) {
		tok := p.take()
		right := p.parseBitAnd()
		left = &ast.Binary{Tok: tok, Op: ast.OpBitXor, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBitAnd() ast.Expression {
	left := p.parseEquality()
	for p.check(token.AMP) {
		tok := p.take()
		right := p.parseEquality()
		left = &ast.Binary{Tok: tok, Op: ast.OpBitAnd, Left: left, Right: right}
	}
	return left
}

var equalityOps = map[token.Kind]ast.BinaryOp{
	token.EQ: ast.OpEq, token.EQ_EQ_EQ: ast.OpIdentical,
	token.NOT_EQ: ast.OpNotEq, token.NOT_EQ_EQ: ast.OpNotIdentical,
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseRelational()
	for {
		op, isEq := equalityOps[p.cur().Kind]
		if !isEq {
			return left
		}
		tok := p.take()
		right := p.parseRelational()
		left = &ast.Binary{Tok: tok, Op: op, Left: left, Right: right}
	}
}

var relationalOps = map[token.Kind]ast.BinaryOp{
	token.LT: ast.OpLt, token.GT: ast.OpGt, token.LE: ast.OpLe,
	token.GE: ast.OpGe, token.SPACESHIP: ast.OpSpaceship,
}

func (p *Parser) parseRelational() ast.Expression {
	left := p.parseNilCoalesce()
	for {
		op, isRel := relationalOps[p.cur().Kind]
		if !isRel {
			return left
		}
		tok := p.take()
		right := p.parseNilCoalesce()
		left = &ast.Binary{Tok: tok, Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseNilCoalesce() ast.Expression {
	left := p.parseCasting()
	for p.check(token.QUESTION_QUESTION) {
		tok := p.take()
		right := p.parseCasting()
		left = &ast.Binary{Tok: tok, Op: ast.OpNilCoalesce, Left: left, Right: right}
	}
	return left
}

var castKinds = map[token.Kind]ast.CastKind{
	token.AS: ast.CastAs, token.AS_OPTIONAL: ast.CastAsOptional,
	token.AS_UNWRAPPED: ast.CastAsUnwrapped, token.IS: ast.CastIs,
}

func (p *Parser) parseCasting() ast.Expression {
	left := p.parseRange()
	for {
		kind, isCast := castKinds[p.cur().Kind]
		if !isCast {
			return left
		}
		tok := p.take()
		target := p.parseTypeRef()
		left = &ast.Casting{Tok: tok, Kind: kind, Operand: left, Target: target}
	}
}

func (p *Parser) parseRange() ast.Expression {
	left := p.parseBitshift()
	if p.check(token.DOT_DOT) || p.check(token.DOT_DOT_DOT) {
		tok := p.take()
		right := p.parseBitshift()
		op := ast.OpRange
		if tok.Kind == token.DOT_DOT_DOT {
			op = ast.OpRangeInclusive
		}
		left = &ast.Binary{Tok: tok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseBitshift() ast.Expression {
	left := p.parseAdditive()
	for p.check(token.LSHIFT) || p.check(token.RSHIFT) {
		tok := p.take()
		right := p.parseAdditive()
		op := ast.OpShl
		if tok.Kind == token.RSHIFT {
			op = ast.OpShr
		}
		left = &ast.Binary{Tok: tok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.check(token.PLUS) || p.check(token.MINUS) {
		tok := p.take()
		right := p.parseMultiplicative()
		op := ast.OpAdd
		if tok.Kind == token.MINUS {
			op = ast.OpSub
		}
		left = &ast.Binary{Tok: tok, Op: op, Left: left, Right: right}
	}
	return left
}

var multiplicativeOps = map[token.Kind]ast.BinaryOp{
	token.STAR: ast.OpMul, token.SLASH: ast.OpDiv, token.PERCENT: ast.OpMod,
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parseExponential()
	for {
		op, isMul := multiplicativeOps[p.cur().Kind]
		if !isMul {
			return left
		}
		tok := p.take()
		right := p.parseExponential()
		left = &ast.Binary{Tok: tok, Op: op, Left: left, Right: right}
	}
}

// parseExponential is right-associative, per §4.2.
func (p *Parser) parseExponential() ast.Expression {
	left := p.parsePrefix()
	if p.check(token.STAR_STAR) {
		tok := p.take()
		right := p.parseExponential()
		return &ast.Binary{Tok: tok, Op: ast.OpPow, Left: left, Right: right}
	}
	return left
}

var prefixOpKinds = map[token.Kind]bool{
	token.PLUS: true, token.MINUS: true, token.PLUS_PLUS: true, token.MINUS_MINUS: true,
	token.TILDE: true, token.BANG: true, token.STAR: true, token.AMP: true,
	token.RELEASE: true, token.TRY_OPTIONAL: true, token.TRY_UNWRAPPED: true,
	token.AWAIT: true, token.NOT: true,
}

func (p *Parser) parsePrefix() ast.Expression {
	if prefixOpKinds[p.cur().Kind] {
		tok := p.take()
		operand := p.parsePrefix()
		return &ast.UnaryPrefix{Tok: tok, Operand: operand}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parseAccessCall()
	for p.check(token.PLUS_PLUS) || p.check(token.MINUS_MINUS) || p.check(token.BANG) {
		tok := p.take()
		expr = &ast.UnaryPostfix{Tok: tok, Operand: expr}
	}
	return expr
}

func (p *Parser) parseAccessCall() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(token.DOT):
			tok := p.take()
			name := p.match(token.ID)
			generics := p.tryPostIdentGenerics()
			expr = &ast.MemberAccess{Tok: tok, Base: expr, Name: name, Generics: generics}
		case p.check(token.QUESTION_DOT):
			tok := p.take()
			name := p.match(token.ID)
			generics := p.tryPostIdentGenerics()
			expr = &ast.MemberAccess{Tok: tok, Base: expr, Name: name, Optional: true, Generics: generics}
		case p.check(token.LPAREN):
			tok := p.cur()
			args := p.parseArgs()
			expr = &ast.FunctionCall{Tok: tok, Callee: expr, Args: args}
		case p.check(token.LBRACKET):
			tok := p.take()
			idx := p.parseExpression()
			p.match(token.RBRACKET)
			expr = &ast.Subscript{Tok: tok, Base: expr, Index: idx}
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgs() []ast.Expression {
	p.match(token.LPAREN)
	var args []ast.Expression
	p.skipNL()
	for !p.check(token.RPAREN) {
		args = append(args, p.parseExpression())
		p.skipNL()
		if !p.accept(token.COMMA) {
			break
		}
		p.skipNL()
	}
	p.match(token.RPAREN)
	return args
}

var literalKinds = map[token.Kind]ast.LiteralKind{
	token.INTEGER_LITERAL: ast.LitInteger, token.HEX_LITERAL: ast.LitHex,
	token.OCTAL_LITERAL: ast.LitOctal, token.BINARY_LITERAL: ast.LitBinary,
	token.FLOAT_LITERAL: ast.LitFloat, token.STRING: ast.LitString,
	token.CHAR_LITERAL: ast.LitString, token.TRUE: ast.LitBool,
	token.FALSE: ast.LitBool, token.NULL: ast.LitNull,
}

func (p *Parser) parsePrimary() ast.Expression {
	if p.check(token.INTERP_STRING) {
		return p.parseInterpStringLiteral()
	}
	if kind, isLit := literalKinds[p.cur().Kind]; isLit {
		tok, _ := p.takeWithSpans()
		return &ast.Literal{Tok: tok, Kind: kind}
	}
	switch {
	case p.check(token.ID), p.check(token.THIS):
		return p.parseIdentifierPrimary()
	case p.check(token.LPAREN):
		return p.parseParenOrTuple()
	case p.check(token.LBRACKET):
		return p.parseArrayOrMapLiteral()
	default:
		tok := p.cur()
		p.report(diagnostics.INVALID_TOKEN, tok, "expression", tok.Kind.String())
		panic(failure{})
	}
}

func (p *Parser) parseInterpStringLiteral() ast.Expression {
	tok, spans := p.takeWithSpans()
	lit := &ast.Literal{Tok: tok, Kind: ast.LitInterpString, Spans: spans}
	for _, span := range spans {
		lit.Interp = append(lit.Interp, p.parseInterpSpan(span, tok))
	}
	return lit
}

// parseInterpSpan parses one `\{ expr }` span's source text as a
// standalone expression, nested under a sub-parser sharing this parser's
// diagnostics and enclosing scope.
func (p *Parser) parseInterpSpan(span token.InterpSpan, host token.Token) ast.Expression {
	sub := newSubParser(span.Source, host.Meta.ModuleRef, p.diag, p.log)
	sub.scopeStack = []*ast.Scope{p.scope()}
	expr := sub.parseExpression()
	return expr
}

func (p *Parser) parseIdentifierPrimary() ast.Expression {
	tok := p.take()
	generics := p.tryPostIdentGenerics()
	return &ast.IdentifierExpr{Tok: tok, Generics: generics}
}

// tryPostIdentGenerics speculatively parses a `<T, U>` generic-argument
// list following an identifier or member name, committing only when it's
// immediately followed by something that could start a call or another
// access (so a real `<` comparison — e.g. `count < 3` — rewinds cleanly).
func (p *Parser) tryPostIdentGenerics() (args []ast.TypeRef) {
	if !p.check(token.LT) {
		return nil
	}
	p.mark()
	defer func() {
		if r := recover(); r != nil {
			if _, isFailure := r.(failure); !isFailure {
				panic(r)
			}
			p.resetToMark()
			args = nil
		}
	}()
	parsed := p.parseOptionalGenericArgs()
	if !p.check(token.LPAREN) && !p.check(token.DOT) {
		panic(failure{})
	}
	p.popMark()
	return parsed
}

func (p *Parser) parseParenOrTuple() ast.Expression {
	tok := p.take() // (
	p.skipNL()
	if p.check(token.RPAREN) {
		p.take()
		return &ast.TupleLiteral{Tok: tok}
	}
	first := p.parseExpression()
	p.skipNL()
	if !p.check(token.COMMA) {
		p.match(token.RPAREN)
		return first
	}
	elems := []ast.Expression{first}
	for p.accept(token.COMMA) {
		p.skipNL()
		if p.check(token.RPAREN) {
			break
		}
		elems = append(elems, p.parseExpression())
		p.skipNL()
	}
	p.match(token.RPAREN)
	return &ast.TupleLiteral{Tok: tok, Elements: elems}
}

// parseArrayOrMapLiteral disambiguates `[e1, e2]` from `[k1: v1, k2: v2]`
// and the empty forms `[]` (array) and `[:]` (map) by looking one
// expression ahead for a colon.
func (p *Parser) parseArrayOrMapLiteral() ast.Expression {
	tok := p.take() // [
	p.skipNL()
	if p.check(token.RBRACKET) {
		p.take()
		return &ast.ArrayLiteral{Tok: tok}
	}
	if p.check(token.COLON) {
		p.take()
		p.match(token.RBRACKET)
		return &ast.MapLiteral{Tok: tok}
	}
	first := p.parseExpression()
	p.skipNL()
	if p.accept(token.COLON) {
		val := p.parseExpression()
		entries := []ast.MapEntry{{Key: first, Value: val}}
		p.skipNL()
		for p.accept(token.COMMA) {
			p.skipNL()
			if p.check(token.RBRACKET) {
				break
			}
			k := p.parseExpression()
			p.match(token.COLON)
			v := p.parseExpression()
			entries = append(entries, ast.MapEntry{Key: k, Value: v})
			p.skipNL()
		}
		p.match(token.RBRACKET)
		return &ast.MapLiteral{Tok: tok, Entries: entries}
	}
	elems := []ast.Expression{first}
	for p.accept(token.COMMA) {
		p.skipNL()
		if p.check(token.RBRACKET) {
			break
		}
		elems = append(elems, p.parseExpression())
		p.skipNL()
	}
	p.match(token.RBRACKET)
	return &ast.ArrayLiteral{Tok: tok, Elements: elems}
}
