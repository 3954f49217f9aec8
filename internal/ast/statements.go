package ast

import "github.com/accelec/accele/internal/token"

// FunctionBlock is a `{ ... }` body attached to a Function, Constructor, or
// Lambda. It is also a ScopeOwner: parameters and locals declared in the
// body share one scope nested under the owning declaration's scope.
type FunctionBlock struct {
	Tok        token.Token
	Statements []Statement
	Scope      *Scope
}

func (f *FunctionBlock) Accept(v Visitor)      { v.VisitFunctionBlock(f) }
func (f *FunctionBlock) GetToken() token.Token { return f.Tok }
func (f *FunctionBlock) statementNode()        {}
func (f *FunctionBlock) OwnedScope() *Scope     { return f.Scope }

// SetBlock is the body of a `set(newValue) { ... }` variable accessor.
type SetBlock struct {
	Tok       token.Token
	ParamName token.Token
	Body      *FunctionBlock
}

// VariableBlock is the optional `{ get { ... } set(v) { ... } init { ... } }`
// triple attached to a Variable declaration. Any subset may be present; a
// nil field means that accessor was not declared.
type VariableBlock struct {
	Tok  token.Token
	Get  *FunctionBlock
	Set  *SetBlock
	Init *FunctionBlock
}

// If is `if cond { ... } elif cond { ... } else { ... }`, represented as a
// chain: Else is itself an *If for an `elif`, or a plain block wrapped as
// an *If with a nil Cond for a trailing `else`.
type If struct {
	Tok  token.Token
	Cond Expression // nil only for the trailing else arm
	Then *FunctionBlock
	Else *If
}

func (i *If) Accept(v Visitor)      { v.VisitIf(i) }
func (i *If) GetToken() token.Token { return i.Tok }
func (i *If) statementNode()        {}

// While is `while cond { ... }`.
type While struct {
	Tok  token.Token
	Cond Expression
	Body *FunctionBlock
}

func (w *While) Accept(v Visitor)      { v.VisitWhile(w) }
func (w *While) GetToken() token.Token { return w.Tok }
func (w *While) statementNode()        {}

// Repeat is `repeat { ... } while cond` (post-test loop).
type Repeat struct {
	Tok  token.Token
	Body *FunctionBlock
	Cond Expression
}

func (r *Repeat) Accept(v Visitor)      { v.VisitRepeat(r) }
func (r *Repeat) GetToken() token.Token { return r.Tok }
func (r *Repeat) statementNode()        {}

// For is `for name in iterable { ... }`.
type For struct {
	Tok      token.Token
	VarName  token.Token
	Iterable Expression
	Body     *FunctionBlock
	Scope    *Scope // scope introducing VarName for Body
}

func (f *For) Accept(v Visitor)      { v.VisitFor(f) }
func (f *For) GetToken() token.Token { return f.Tok }
func (f *For) statementNode()        {}
func (f *For) OwnedScope() *Scope     { return f.Scope }

// SwitchCase is one `case pattern1, pattern2:` arm followed by its
// statements, or the `default:` arm when Patterns is empty.
type SwitchCase struct {
	Tok      token.Token
	Patterns []Expression
	Body     []Statement
}

// Switch is `switch subject { case ...: ... default: ... }`.
type Switch struct {
	Tok     token.Token
	Subject Expression
	Cases   []SwitchCase
}

func (s *Switch) Accept(v Visitor)      { v.VisitSwitch(s) }
func (s *Switch) GetToken() token.Token { return s.Tok }
func (s *Switch) statementNode()        {}

// CatchClause is one `catch name: Type { ... }` arm of a Try.
type CatchClause struct {
	Tok       token.Token
	VarName   token.Token
	ErrorType TypeRef // nil catches any thrown value
	Body      *FunctionBlock
	Scope     *Scope
}

// Try is `try { ... } catch e: T { ... } finally { ... }`.
type Try struct {
	Tok     token.Token
	Body    *FunctionBlock
	Catches []CatchClause
	Finally *FunctionBlock
}

func (t *Try) Accept(v Visitor)      { v.VisitTry(t) }
func (t *Try) GetToken() token.Token { return t.Tok }
func (t *Try) statementNode()        {}

// Return is `return expr` (Value nil for a bare `return`).
type Return struct {
	Tok   token.Token
	Value Expression
}

func (r *Return) Accept(v Visitor)      { v.VisitReturn(r) }
func (r *Return) GetToken() token.Token { return r.Tok }
func (r *Return) statementNode()        {}

// Throw is `throw expr`.
type Throw struct {
	Tok   token.Token
	Value Expression
}

func (t *Throw) Accept(v Visitor)      { v.VisitThrow(t) }
func (t *Throw) GetToken() token.Token { return t.Tok }
func (t *Throw) statementNode()        {}

// SingleToken wraps a bare control-flow keyword statement (`break`,
// `continue`, `fall`) that carries no further payload.
type SingleToken struct {
	Tok token.Token
}

func (s *SingleToken) Accept(v Visitor)      { v.VisitSingleToken(s) }
func (s *SingleToken) GetToken() token.Token { return s.Tok }
func (s *SingleToken) statementNode()        {}

// ExpressionStatement wraps a bare expression used in statement position
// (an assignment or call whose value is discarded).
type ExpressionStatement struct {
	Expr Expression
}

func (e *ExpressionStatement) Accept(v Visitor)      { e.Expr.Accept(v) }
func (e *ExpressionStatement) GetToken() token.Token { return e.Expr.GetToken() }
func (e *ExpressionStatement) statementNode()        {}
