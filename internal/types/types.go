// Package types implements the resolved-type side of the front end: the
// Type variants a TypeRef's actual_type eventually binds to, the built-in
// (invariant) type registry, the numeric lattice, and the cast/common-type
// compatibility rules of spec §4.4.3.
//
// This package never imports internal/ast: nominal types keep only an
// opaque Decl handle back to the declaring AST symbol so that ast (which
// this package is referenced from) never needs to import types'
// importers in turn. The resolver, which imports both, performs the type
// assertions back to concrete declaration nodes.
package types

import "fmt"

// Type is the resolved-type tagged variant (a TypeId, in spec vocabulary).
type Type interface {
	fmt.Stringer
	typeNode()
}

// Builtin is an invariant type: Any, Number, Int, ..., Void (§6).
type Builtin struct {
	Name    string
	Parents []Type // declared parent(s); Any has none
}

func (b *Builtin) typeNode()      {}
func (b *Builtin) String() string { return b.Name }

// Nominal is a user-declared type: Class, Struct, Enum, Template, or a
// resolved Alias target. Decl is an opaque handle to the declaring AST
// symbol (ast.Class, ast.Struct, ...); only the resolver type-asserts it.
type Nominal struct {
	Name     string
	Kind     NominalKind
	Parents  []Type // resolved parent type(s) in declaration order
	Generics []Type // this occurrence's generic arguments (possibly none)
	Decl     any
}

type NominalKind int

const (
	NominalClass NominalKind = iota
	NominalStruct
	NominalTemplate
	NominalEnum
)

func (n *Nominal) typeNode() {}
func (n *Nominal) String() string {
	if len(n.Generics) == 0 {
		return n.Name
	}
	s := n.Name + "<"
	for i, g := range n.Generics {
		if i > 0 {
			s += ", "
		}
		s += g.String()
	}
	return s + ">"
}

// GenericParam is an unbound generic type parameter occurrence (e.g. `T`
// inside `fun identity<T>(x: T) -> T`), or a synthetic parameter
// substituted by the resolver's recursive-resolution protection (§4.4.6).
type GenericParam struct {
	Name  string
	Bound Type // declared bound, if any (nil = unbounded / implicitly Any)
}

func (g *GenericParam) typeNode()      {}
func (g *GenericParam) String() string { return g.Name }

// Array is `T[]`.
type Array struct{ Element Type }

func (a *Array) typeNode()      {}
func (a *Array) String() string { return a.Element.String() + "[]" }

// Map is `[K: V]`.
type Map struct{ Key, Value Type }

func (m *Map) typeNode()      {}
func (m *Map) String() string { return "[" + m.Key.String() + ": " + m.Value.String() + "]" }

// Tuple is `(T1, T2, ...)`.
type Tuple struct{ Elements []Type }

func (t *Tuple) typeNode() {}
func (t *Tuple) String() string {
	s := "("
	for i, e := range t.Elements {
		if i > 0 {
			s += ", "
		}
		s += e.String()
	}
	return s + ")"
}

// Function is `(P1, P2, ...) -> R`.
type Function struct {
	Params   []Type
	Variadic bool // true if the last Param is variadic (consumes 0+ args)
	Return   Type
}

func (f *Function) typeNode() {}
func (f *Function) String() string {
	s := "("
	for i, p := range f.Params {
		if i > 0 {
			s += ", "
		}
		s += p.String()
	}
	return s + ") -> " + f.Return.String()
}

// Optional is `T?`.
type Optional struct{ Wrapped Type }

func (o *Optional) typeNode()      {}
func (o *Optional) String() string { return o.Wrapped.String() + "?" }

// UnwrappedOptional is `T!`, the force-unwrapped spelling used on the
// right-hand side of declarations that assert non-nilness.
type UnwrappedOptional struct{ Wrapped Type }

func (u *UnwrappedOptional) typeNode()      {}
func (u *UnwrappedOptional) String() string { return u.Wrapped.String() + "!" }

// Pointer is `T*`.
type Pointer struct{ Pointee Type }

func (p *Pointer) typeNode()      {}
func (p *Pointer) String() string { return p.Pointee.String() + "*" }
