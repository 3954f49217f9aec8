package ast

import (
	"github.com/accelec/accele/internal/token"
	"github.com/accelec/accele/internal/types"
)

// Variable is a `var`/`const` declaration, at any scope. At class/enum
// scope it may carry a get/set/init VariableBlock instead of (or beside)
// a plain initializer.
type Variable struct {
	Tok            token.Token // the declared identifier
	TypeAnnotation TypeRef     // nil if the type is to be inferred from Value
	Value          Expression  // initializer; nil if absent
	Modifiers      []*Modifier
	IsConst        bool
	Blocks         *VariableBlock // optional get/set/init triple; nil if absent
	InferredType   types.Type     // bound by the resolver when TypeAnnotation is nil
}

func (v *Variable) Accept(vis Visitor)      { vis.VisitVariable(v) }
func (v *Variable) GetToken() token.Token   { return v.Tok }
func (v *Variable) SymbolName() string      { return v.Tok.Text }
func (v *Variable) statementNode()          {}

// ResolvedType returns the variable's bound type: the annotation's
// actual_type if one was declared, else the resolver's inferred type.
func (v *Variable) ResolvedType() types.Type {
	if v.TypeAnnotation != nil {
		return v.TypeAnnotation.GetActualType()
	}
	return v.InferredType
}

// Parameter is one function/constructor/lambda parameter. At most one
// parameter in a list may be variadic, and it must be last (§3 invariant).
type Parameter struct {
	Tok            token.Token
	TypeAnnotation TypeRef
	DefaultValue   Expression
	IsVariadic     bool
}

func (p *Parameter) Accept(v Visitor)    {}
func (p *Parameter) GetToken() token.Token { return p.Tok }
func (p *Parameter) SymbolName() string  { return p.Tok.Text }

// GenericType is a declared generic type parameter (`<T: Bound>`). Per §3,
// a generic parameter itself has no further generics.
type GenericType struct {
	Tok   token.Token
	Bound TypeRef // nil if unbounded
}

func (g *GenericType) Accept(v Visitor)      {}
func (g *GenericType) GetToken() token.Token { return g.Tok }
func (g *GenericType) SymbolName() string    { return g.Tok.Text }

// Function is a `fun` declaration.
type Function struct {
	Tok                token.Token
	Generics           []*GenericType
	Params             []*Parameter
	ReturnType         TypeRef // nil if inferred
	Body               *FunctionBlock
	Modifiers          []*Modifier
	Scope              *Scope
	InferredReturnType types.Type // bound when ReturnType == nil
}

func (f *Function) Accept(v Visitor)      { v.VisitFunction(f) }
func (f *Function) GetToken() token.Token { return f.Tok }
func (f *Function) SymbolName() string    { return f.Tok.Text }
func (f *Function) statementNode()        {}
func (f *Function) OwnedScope() *Scope     { return f.Scope }

// ResolvedReturnType mirrors Variable.ResolvedType for return types.
func (f *Function) ResolvedReturnType() types.Type {
	if f.ReturnType != nil {
		return f.ReturnType.GetActualType()
	}
	return f.InferredReturnType
}

// Constructor is an `init` declaration inside a Class/Struct/Template
// body.
type Constructor struct {
	Tok       token.Token
	Params    []*Parameter
	Body      *FunctionBlock
	Modifiers []*Modifier
	Scope     *Scope
	Owner     TypeDecl
}

func (c *Constructor) Accept(v Visitor)      { v.VisitConstructor(c) }
func (c *Constructor) GetToken() token.Token { return c.Tok }
func (c *Constructor) SymbolName() string    { return "init" }
func (c *Constructor) statementNode()        {}
func (c *Constructor) OwnedScope() *Scope     { return c.Scope }

// TypeDecl is implemented by every nominal type declaration (Class,
// Struct, Template, Enum): the common shape the resolver's generics/
// parent-chain logic and the symbol table's type-hierarchy lookup need.
type TypeDecl interface {
	Symbol
	ScopeOwner
	TypeGenerics() []*GenericType
	TypeParents() []TypeRef
	ResolvedSelf() *types.Nominal
	SetResolvedSelf(*types.Nominal)
}

type typeDeclBase struct {
	Tok          token.Token
	Generics     []*GenericType
	Parents      []TypeRef
	Modifiers    []*Modifier
	Scope        *Scope
	ResolvedType *types.Nominal
}

func (t *typeDeclBase) GetToken() token.Token           { return t.Tok }
func (t *typeDeclBase) SymbolName() string              { return t.Tok.Text }
func (t *typeDeclBase) statementNode()                  {}
func (t *typeDeclBase) OwnedScope() *Scope               { return t.Scope }
func (t *typeDeclBase) TypeGenerics() []*GenericType     { return t.Generics }
func (t *typeDeclBase) TypeParents() []TypeRef           { return t.Parents }
func (t *typeDeclBase) ResolvedSelf() *types.Nominal     { return t.ResolvedType }
func (t *typeDeclBase) SetResolvedSelf(n *types.Nominal) { t.ResolvedType = n }

// Class is a `class` declaration.
type Class struct {
	typeDeclBase
	Members []Statement
}

func (c *Class) Accept(v Visitor) { v.VisitClass(c) }

// Struct is a `struct` declaration.
type Struct struct {
	typeDeclBase
	Members []Statement
}

func (s *Struct) Accept(v Visitor) { v.VisitStruct(s) }

// Template is a `template` declaration (a generics-only parametrized
// type that, per §4.4.4, is rejected as a direct call target —
// INVALID_TEMPLATE_CONSTRUCTOR).
type Template struct {
	typeDeclBase
	Members []Statement
}

func (t *Template) Accept(v Visitor) { v.VisitTemplate(t) }

// EnumCase is one case of an Enum.
type EnumCase struct {
	Tok        token.Token
	Associated []TypeRef // associated-value types, if any
	Owner      *Enum
}

func (e *EnumCase) Accept(v Visitor)      {}
func (e *EnumCase) GetToken() token.Token { return e.Tok }
func (e *EnumCase) SymbolName() string    { return e.Tok.Text }

// Enum is an `enum` declaration.
type Enum struct {
	typeDeclBase
	Cases   []*EnumCase
	Members []Statement // methods/constructors besides cases
}

func (e *Enum) Accept(v Visitor) { v.VisitEnum(e) }

// Alias is a `alias Name<Generics> = TypeRef` declaration. Per §4.4.3,
// resolving a SimpleTypeRef through an Alias unfolds straight to the
// target's resolved Type — Alias contributes no Type variant of its own.
type Alias struct {
	Tok      token.Token
	Generics []*GenericType
	Target   TypeRef
	Modifiers []*Modifier
}

func (a *Alias) Accept(v Visitor)      { v.VisitAlias(a) }
func (a *Alias) GetToken() token.Token { return a.Tok }
func (a *Alias) SymbolName() string    { return a.Tok.Text }
func (a *Alias) statementNode()        {}

// Namespace is a `namespace` declaration: a named grouping scope.
type Namespace struct {
	Tok       token.Token
	Members   []Statement
	Modifiers []*Modifier
	Scope     *Scope
}

func (n *Namespace) Accept(v Visitor)      { v.VisitNamespace(n) }
func (n *Namespace) GetToken() token.Token { return n.Tok }
func (n *Namespace) SymbolName() string    { return n.Tok.Text }
func (n *Namespace) statementNode()        {}
func (n *Namespace) OwnedScope() *Scope     { return n.Scope }

// ImportTarget is one named symbol of a `from { a, b, c } from X` import.
type ImportTarget struct {
	Tok   token.Token
	Alias *token.Token // nil if not aliased
}

// Import is an `import` declaration (§4.2, §4.3).
type Import struct {
	Tok       token.Token
	Source    string          // resolved-or-literal source spelling
	SourceTok token.Token
	Alias     *token.Token   // for the `import X as Y` shape
	Targets   []ImportTarget // for the `from {a,b} from X` shape; empty for whole-module import
	Referent  *GlobalScope   // bound by the ImportHandler
}

func (i *Import) Accept(v Visitor)      { v.VisitImport(i) }
func (i *Import) GetToken() token.Token { return i.Tok }
func (i *Import) SymbolName() string {
	if i.Alias != nil {
		return i.Alias.Text
	}
	return i.SourceTok.Text
}
func (i *Import) statementNode() {}
