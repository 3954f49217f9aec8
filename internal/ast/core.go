// Package ast defines the tagged-variant AST produced by the parser and
// filled in by the resolver, plus the lexical Scope tree every scope-owning
// node participates in (spec §3).
//
// Per Design Notes §9, this package replaces deep virtual inheritance with
// small capability interfaces (ScopeOwner, Symbol, Node) and
// tagged-variant structs instead of a dynamic_cast hierarchy: callers
// switch on concrete *T, never on a base-class tag field.
package ast

import (
	"github.com/accelec/accele/internal/token"
	"github.com/accelec/accele/internal/types"
)

// Node is the base capability every AST node has.
type Node interface {
	GetToken() token.Token
	Accept(v Visitor)
}

// Statement is a Node usable at statement position.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node usable at expression position. ValueType is filled
// by the resolver; per spec §3 it is a TypeRef (not a bare resolved Type)
// so that "every Expression has value_type bound" and "every TypeRef has
// actual_type bound" are the same invariant — the resolver either points
// ValueType at a syntactic TypeRef already attached to the expression
// (e.g. a cast's target) or synthesizes one wrapping the inferred Type.
type Expression interface {
	Node
	expressionNode()
	GetValueType() TypeRef
	SetValueType(TypeRef)
}

// exprBase is embedded by every Expression variant.
type exprBase struct {
	ValueType TypeRef
}

func (e *exprBase) expressionNode()       {}
func (e *exprBase) GetValueType() TypeRef { return e.ValueType }
func (e *exprBase) SetValueType(t TypeRef) { e.ValueType = t }

// Symbol is a nameable declaration (spec §3's "Symbols" category): it
// owns an identifier token and a source meta.
type Symbol interface {
	Node
	SymbolName() string
}

// ScopeOwner is implemented by every symbol that also introduces a nested
// namespace: types, namespaces, functions, constructors, blocks, aliases,
// lambdas (spec §3's Scope invariant).
type ScopeOwner interface {
	Node
	OwnedScope() *Scope
}

// Visibility is the declared access level of a Symbol.
type Visibility int

const (
	VisDefault Visibility = iota // no visibility modifier; access checks treat it like VisPublic
	VisPublic
	VisPrivate
	VisProtected
	VisInternal
)

// Modifier is a parsed modifier token, optionally carrying warning-meta
// string arguments and/or a target node (spec §4.2).
type Modifier struct {
	Token  token.Token
	Args   []token.Token // STRING_LITERAL tokens, for @enablewarning/@disablewarning
	Target Node          // optional; unused by most modifiers
}

func hasModifier(mods []*Modifier, kinds ...token.Kind) bool {
	for _, m := range mods {
		for _, k := range kinds {
			if m.Token.Kind == k {
				return true
			}
		}
	}
	return false
}

// VisibilityOf derives a Visibility from a modifier list, defaulting to
// VisDefault when no visibility modifier is present.
func VisibilityOf(mods []*Modifier) Visibility {
	for _, m := range mods {
		switch m.Token.Kind {
		case token.PUBLIC:
			return VisPublic
		case token.PRIVATE:
			return VisPrivate
		case token.PROTECTED:
			return VisProtected
		case token.INTERNAL:
			return VisInternal
		}
	}
	return VisDefault
}

// IsStatic reports whether mods includes the `static` modifier.
func IsStatic(mods []*Modifier) bool { return hasModifier(mods, token.STATIC) }

// Program is the root node of every AST the parser produces — one per
// module (spec's Module.ast). Import declarations live on Global.Imports,
// not here: the ImportHandler and resolve_symbol's step 4 both reach
// imports through a Scope's owning GlobalScope, so Program keeping its
// own copy would just be a second place for the two to drift apart.
type Program struct {
	File       string
	Global     *GlobalScope
	Statements []Statement
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) GetToken() token.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].GetToken()
	}
	return token.Token{}
}

// Scope is a container of symbols with an optional parent link (spec §3).
// Invariant: every non-global scope's parent chain terminates at the
// owning module's GlobalScope.
type Scope struct {
	Parent  *Scope
	Owner   Node // the ScopeOwner this scope belongs to; nil only for a bare block
	order   []Symbol
	byName  map[string][]Symbol
}

func NewScope(parent *Scope, owner Node) *Scope {
	return &Scope{Parent: parent, Owner: owner, byName: map[string][]Symbol{}}
}

// Declare adds sym to the scope in declaration order. Duplicate-name
// checking against overload compatibility is the resolver's job (§3
// invariants); Declare itself never rejects.
func (s *Scope) Declare(sym Symbol) {
	s.order = append(s.order, sym)
	s.byName[sym.SymbolName()] = append(s.byName[sym.SymbolName()], sym)
}

// Symbols returns every symbol declared directly in s, in declaration
// order.
func (s *Scope) Symbols() []Symbol { return s.order }

// Lookup returns every symbol declared directly in s under name, in
// declaration order (does not recurse to Parent).
func (s *Scope) Lookup(name string) []Symbol { return s.byName[name] }

// IsGlobal reports whether s is a module's root scope.
func (s *Scope) IsGlobal() bool {
	_, ok := s.Owner.(*GlobalScope)
	return ok
}

// GlobalScope is the root scope of a module: it owns every top-level
// symbol and the module's imports (spec's GlobalScope symbol variant).
type GlobalScope struct {
	ModuleName string
	ModulePath string
	Scope      *Scope
	Imports    []*Import
}

func (g *GlobalScope) Accept(v Visitor)         {}
func (g *GlobalScope) GetToken() token.Token    { return token.Token{} }
func (g *GlobalScope) SymbolName() string       { return g.ModuleName }
func (g *GlobalScope) OwnedScope() *Scope        { return g.Scope }

// TypeRef is a syntactic reference to a type (spec §3's TypeRef category),
// distinct from the resolved types.Type it eventually binds to.
type TypeRef interface {
	Node
	typeRefNode()
	GetActualType() types.Type
	SetActualType(types.Type)
	GetActualGenerics() []TypeRef
}

type typeRefBase struct {
	ActualType     types.Type
	ActualGenerics []TypeRef
}

func (t *typeRefBase) typeRefNode()                {}
func (t *typeRefBase) GetActualType() types.Type    { return t.ActualType }
func (t *typeRefBase) SetActualType(ty types.Type)  { t.ActualType = ty }
func (t *typeRefBase) GetActualGenerics() []TypeRef { return t.ActualGenerics }
