package ast

import "github.com/accelec/accele/internal/token"

// LiteralKind distinguishes the primitive literal forms.
type LiteralKind int

const (
	LitInteger LiteralKind = iota
	LitHex
	LitOctal
	LitBinary
	LitFloat
	LitString
	LitInterpString
	LitBool
	LitNull
)

// Literal is a primitive constant: integer, float, string (with optional
// interpolation spans), bool, or null.
type Literal struct {
	exprBase
	Tok    token.Token
	Kind   LiteralKind
	Spans  []token.InterpSpan   // non-empty only for LitInterpString
	Interp []Expression          // parsed interpolation expressions, aligned with Spans
}

func (l *Literal) Accept(v Visitor)      { v.VisitLiteral(l) }
func (l *Literal) GetToken() token.Token { return l.Tok }

// IdentifierExpr is a bare name reference, resolved by the Resolver to a
// Symbol (spec §4.4.1's resolve_symbol).
type IdentifierExpr struct {
	exprBase
	Tok      token.Token
	Generics []TypeRef // optional explicit generics, e.g. `identity<Int>`
	Referent Symbol     // bound by the resolver
	Origin   Origin     // provenance of Referent relative to this reference
}

func (i *IdentifierExpr) Accept(v Visitor)      { v.VisitIdentifierExpr(i) }
func (i *IdentifierExpr) GetToken() token.Token { return i.Tok }

// Origin is the provenance of a resolved symbol relative to the reference
// site (§4.4.1): LOCAL, STATIC, or TYPE_HIERARCHY.
type Origin int

const (
	OriginUnresolved Origin = iota
	OriginLocal
	OriginStatic
	OriginTypeHierarchy
)

// BinaryOp is the operator of a Binary expression.
type BinaryOp int

const (
	OpOr BinaryOp = iota
	OpAnd
	OpBitOr
	OpBitXor
	OpBitAnd
	OpEq
	OpIdentical // ===
	OpNotEq
	OpNotIdentical // !==
	OpLt
	OpGt
	OpLe
	OpGe
	OpSpaceship
	OpNilCoalesce
	OpRange
	OpRangeInclusive
	OpShl
	OpShr
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpAssign
	OpCompoundAssign // combined with Tok.Kind to know which op
)

// Binary is a two-operand expression at any of the binary precedence
// levels (logical through exponential, plus assignment).
type Binary struct {
	exprBase
	Tok   token.Token
	Op    BinaryOp
	Left  Expression
	Right Expression
}

func (b *Binary) Accept(v Visitor)      { v.VisitBinary(b) }
func (b *Binary) GetToken() token.Token { return b.Tok }

// UnaryPrefix is a prefix operator expression (+, -, ++, --, ~, !, *, &,
// release, try?, try!, await, not).
type UnaryPrefix struct {
	exprBase
	Tok     token.Token
	Operand Expression
}

func (u *UnaryPrefix) Accept(v Visitor)      { v.VisitUnaryPrefix(u) }
func (u *UnaryPrefix) GetToken() token.Token { return u.Tok }

// UnaryPostfix is a postfix operator expression (++, --, !).
type UnaryPostfix struct {
	exprBase
	Tok     token.Token
	Operand Expression
}

func (u *UnaryPostfix) Accept(v Visitor)      { v.VisitUnaryPostfix(u) }
func (u *UnaryPostfix) GetToken() token.Token { return u.Tok }

// Ternary is `cond ? then : else`.
type Ternary struct {
	exprBase
	Tok    token.Token
	Cond   Expression
	Then   Expression
	Else   Expression
}

func (t *Ternary) Accept(v Visitor)      { v.VisitTernary(t) }
func (t *Ternary) GetToken() token.Token { return t.Tok }

// FunctionCall is `callee(args...)`.
type FunctionCall struct {
	exprBase
	Tok    token.Token
	Callee Expression
	Args   []Expression
}

func (f *FunctionCall) Accept(v Visitor)      { v.VisitFunctionCall(f) }
func (f *FunctionCall) GetToken() token.Token { return f.Tok }

// Subscript is `base[index]`.
type Subscript struct {
	exprBase
	Tok   token.Token
	Base  Expression
	Index Expression
}

func (s *Subscript) Accept(v Visitor)      { v.VisitSubscript(s) }
func (s *Subscript) GetToken() token.Token { return s.Tok }

// MemberAccess is `base.name` or `base?.name`, resolved against base's
// value type's owning scope rather than the lexical scope (§4.4.1 treats
// a member-access name lookup as starting from the accessed type, not
// from the reference site).
type MemberAccess struct {
	exprBase
	Tok      token.Token
	Base     Expression
	Name     token.Token
	Optional bool // `?.`
	Generics []TypeRef
	Referent Symbol
}

func (m *MemberAccess) Accept(v Visitor)      { v.VisitMemberAccess(m) }
func (m *MemberAccess) GetToken() token.Token { return m.Tok }

// CastKind distinguishes the four cast/test operator spellings.
type CastKind int

const (
	CastAs CastKind = iota
	CastAsOptional
	CastAsUnwrapped
	CastIs
)

// Casting is `expr as T`, `expr as? T`, `expr as! T`, or `expr is T`.
type Casting struct {
	exprBase
	Tok     token.Token
	Kind    CastKind
	Operand Expression
	Target  TypeRef
}

func (c *Casting) Accept(v Visitor)      { v.VisitCasting(c) }
func (c *Casting) GetToken() token.Token { return c.Tok }

// Lambda is `(params) => body`, parsed speculatively ahead of ternary
// (§4.2).
type Lambda struct {
	exprBase
	Tok    token.Token
	Params []*Parameter
	Body   Expression   // expression-bodied form
	Block  *FunctionBlock // block-bodied form; mutually exclusive with Body
	Scope  *Scope
}

func (l *Lambda) Accept(v Visitor)      { v.VisitLambda(l) }
func (l *Lambda) GetToken() token.Token { return l.Tok }
func (l *Lambda) OwnedScope() *Scope     { return l.Scope }

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	exprBase
	Tok      token.Token
	Elements []Expression
}

func (a *ArrayLiteral) Accept(v Visitor)      { v.VisitArrayLiteral(a) }
func (a *ArrayLiteral) GetToken() token.Token { return a.Tok }

// MapEntry is one `key: value` pair of a MapLiteral.
type MapEntry struct {
	Key   Expression
	Value Expression
}

// MapLiteral is `[k1: v1, k2: v2, ...]`.
type MapLiteral struct {
	exprBase
	Tok     token.Token
	Entries []MapEntry
}

func (m *MapLiteral) Accept(v Visitor)      { v.VisitMapLiteral(m) }
func (m *MapLiteral) GetToken() token.Token { return m.Tok }

// TupleLiteral is `(e1, e2, ...)` with at least two elements (a single
// parenthesized expression is not a tuple).
type TupleLiteral struct {
	exprBase
	Tok      token.Token
	Elements []Expression
}

func (t *TupleLiteral) Accept(v Visitor)      { v.VisitTupleLiteral(t) }
func (t *TupleLiteral) GetToken() token.Token { return t.Tok }
