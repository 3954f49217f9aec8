package ast

import "github.com/accelec/accele/internal/token"

// SimpleTypeRef is an identifier chain with per-segment generics
// (`Foo<T, U>.Bar<V>`), optionally prefixed by `global.`.
type SimpleTypeRef struct {
	typeRefBase
	Tok         token.Token // the first identifier segment's token
	Segments    []string    // dotted segments, e.g. ["Foo", "Bar"]
	Generics    [][]TypeRef // per-segment generic argument lists
	GlobalOnly  bool        // true if prefixed with `global.`
}

func (t *SimpleTypeRef) Accept(v Visitor)      {}
func (t *SimpleTypeRef) GetToken() token.Token { return t.Tok }

// ArrayTypeRef is `T[]`.
type ArrayTypeRef struct {
	typeRefBase
	Tok     token.Token
	Element TypeRef
}

func (t *ArrayTypeRef) Accept(v Visitor)      {}
func (t *ArrayTypeRef) GetToken() token.Token { return t.Tok }

// MapTypeRef is `[K: V]`, or the suffix form `T[K]` applied to a base.
type MapTypeRef struct {
	typeRefBase
	Tok   token.Token
	Key   TypeRef
	Value TypeRef
}

func (t *MapTypeRef) Accept(v Visitor)      {}
func (t *MapTypeRef) GetToken() token.Token { return t.Tok }

// TupleTypeRef is `(T1, T2, ...)`.
type TupleTypeRef struct {
	typeRefBase
	Tok      token.Token
	Elements []TypeRef
}

func (t *TupleTypeRef) Accept(v Visitor)      {}
func (t *TupleTypeRef) GetToken() token.Token { return t.Tok }

// FunctionTypeRef is `(P1, P2, ...) -> R`, produced either by parsing a
// tuple base followed by `->`, or synthesized by the resolver to describe
// a call candidate's signature (§4.4.4).
type FunctionTypeRef struct {
	typeRefBase
	Tok      token.Token
	Params   []TypeRef
	Variadic bool
	Return   TypeRef
}

func (t *FunctionTypeRef) Accept(v Visitor)      {}
func (t *FunctionTypeRef) GetToken() token.Token { return t.Tok }

// SuffixKind distinguishes the four one-symbol TypeRef suffixes.
type SuffixKind int

const (
	SuffixOptional SuffixKind = iota // ?
	SuffixUnwrapped                  // !
	SuffixPointer                    // *
	SuffixVariadic                   // ...
)

// SuffixTypeRef wraps a base TypeRef with one of `?`, `!`, `*`, `...`.
type SuffixTypeRef struct {
	typeRefBase
	Tok   token.Token
	Base  TypeRef
	Kind  SuffixKind
}

func (t *SuffixTypeRef) Accept(v Visitor)      {}
func (t *SuffixTypeRef) GetToken() token.Token { return t.Tok }

// SuperTypeRef is the `super` pseudo-type-reference used in a constructor
// or method body to refer to the immediate parent type.
type SuperTypeRef struct {
	typeRefBase
	Tok token.Token
}

func (t *SuperTypeRef) Accept(v Visitor)      {}
func (t *SuperTypeRef) GetToken() token.Token { return t.Tok }
