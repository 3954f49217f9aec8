package ast

// Visitor implements one pass over the AST. Passes that only care about a
// handful of node kinds should embed BaseVisitor and override what they
// need, rather than implementing every method (the pattern the teacher
// corpus's traverse/visitor-keys code uses for partial visitors).
type Visitor interface {
	VisitProgram(*Program)

	VisitLiteral(*Literal)
	VisitIdentifierExpr(*IdentifierExpr)
	VisitBinary(*Binary)
	VisitUnaryPrefix(*UnaryPrefix)
	VisitUnaryPostfix(*UnaryPostfix)
	VisitTernary(*Ternary)
	VisitFunctionCall(*FunctionCall)
	VisitSubscript(*Subscript)
	VisitMemberAccess(*MemberAccess)
	VisitCasting(*Casting)
	VisitLambda(*Lambda)
	VisitArrayLiteral(*ArrayLiteral)
	VisitMapLiteral(*MapLiteral)
	VisitTupleLiteral(*TupleLiteral)

	VisitVariable(*Variable)
	VisitFunction(*Function)
	VisitConstructor(*Constructor)
	VisitClass(*Class)
	VisitStruct(*Struct)
	VisitTemplate(*Template)
	VisitEnum(*Enum)
	VisitAlias(*Alias)
	VisitNamespace(*Namespace)
	VisitImport(*Import)

	VisitIf(*If)
	VisitWhile(*While)
	VisitRepeat(*Repeat)
	VisitFor(*For)
	VisitSwitch(*Switch)
	VisitTry(*Try)
	VisitReturn(*Return)
	VisitThrow(*Throw)
	VisitSingleToken(*SingleToken)
	VisitFunctionBlock(*FunctionBlock)
}

// BaseVisitor is an embeddable no-op Visitor.
type BaseVisitor struct{}

func (BaseVisitor) VisitProgram(*Program)                 {}
func (BaseVisitor) VisitLiteral(*Literal)                 {}
func (BaseVisitor) VisitIdentifierExpr(*IdentifierExpr)   {}
func (BaseVisitor) VisitBinary(*Binary)                   {}
func (BaseVisitor) VisitUnaryPrefix(*UnaryPrefix)         {}
func (BaseVisitor) VisitUnaryPostfix(*UnaryPostfix)       {}
func (BaseVisitor) VisitTernary(*Ternary)                 {}
func (BaseVisitor) VisitFunctionCall(*FunctionCall)       {}
func (BaseVisitor) VisitSubscript(*Subscript)             {}
func (BaseVisitor) VisitMemberAccess(*MemberAccess)       {}
func (BaseVisitor) VisitCasting(*Casting)                 {}
func (BaseVisitor) VisitLambda(*Lambda)                   {}
func (BaseVisitor) VisitArrayLiteral(*ArrayLiteral)       {}
func (BaseVisitor) VisitMapLiteral(*MapLiteral)           {}
func (BaseVisitor) VisitTupleLiteral(*TupleLiteral)       {}
func (BaseVisitor) VisitVariable(*Variable)               {}
func (BaseVisitor) VisitFunction(*Function)               {}
func (BaseVisitor) VisitConstructor(*Constructor)         {}
func (BaseVisitor) VisitClass(*Class)                     {}
func (BaseVisitor) VisitStruct(*Struct)                   {}
func (BaseVisitor) VisitTemplate(*Template)               {}
func (BaseVisitor) VisitEnum(*Enum)                       {}
func (BaseVisitor) VisitAlias(*Alias)                     {}
func (BaseVisitor) VisitNamespace(*Namespace)             {}
func (BaseVisitor) VisitImport(*Import)                   {}
func (BaseVisitor) VisitIf(*If)                           {}
func (BaseVisitor) VisitWhile(*While)                     {}
func (BaseVisitor) VisitRepeat(*Repeat)                   {}
func (BaseVisitor) VisitFor(*For)                         {}
func (BaseVisitor) VisitSwitch(*Switch)                   {}
func (BaseVisitor) VisitTry(*Try)                         {}
func (BaseVisitor) VisitReturn(*Return)                   {}
func (BaseVisitor) VisitThrow(*Throw)                     {}
func (BaseVisitor) VisitSingleToken(*SingleToken)         {}
func (BaseVisitor) VisitFunctionBlock(*FunctionBlock)     {}
