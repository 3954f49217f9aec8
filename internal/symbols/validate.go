package symbols

import (
	"fmt"

	"github.com/accelec/accele/internal/ast"
	"github.com/accelec/accele/internal/diagnostics"
	"github.com/accelec/accele/internal/types"
)

// AccessKind is how the reference site named the candidate: through an
// instance expression (`a.b`), through its declaring type (`Type.b`), or
// plainly (a bare identifier, member access notwithstanding).
type AccessKind int

const (
	AccessPlain AccessKind = iota
	AccessInstance
	AccessStatic
)

// Problem is one validation failure recorded against a Candidate (§4.4.2).
// A Candidate with zero Problems is immediately selectable; resolve_symbol
// callers that must pick exactly one candidate (overload resolution,
// identifier binding) use the first zero-Problem candidate, falling back
// to the first candidate's Problems as diagnostics.
type Problem struct {
	Code     diagnostics.Code
	Severity diagnostics.Severity
	Message  string
}

func modifiersOf(sym ast.Symbol) []*ast.Modifier {
	switch s := sym.(type) {
	case *ast.Variable:
		return s.Modifiers
	case *ast.Function:
		return s.Modifiers
	case *ast.Constructor:
		return s.Modifiers
	case *ast.Class:
		return s.Modifiers
	case *ast.Struct:
		return s.Modifiers
	case *ast.Template:
		return s.Modifiers
	case *ast.Enum:
		return s.Modifiers
	case *ast.Alias:
		return s.Modifiers
	case *ast.Namespace:
		return s.Modifiers
	default:
		return nil
	}
}

func enclosingTypeDecl(scope *ast.Scope) ast.TypeDecl {
	for s := scope; s != nil; s = s.Parent {
		if td, ok := s.Owner.(ast.TypeDecl); ok {
			return td
		}
	}
	return nil
}

func typeDeclEqualOrInherits(self ast.TypeDecl, owner ast.TypeDecl) bool {
	if self == nil || owner == nil {
		return false
	}
	if self == owner {
		return true
	}
	selfType := self.ResolvedSelf()
	ownerType := owner.ResolvedSelf()
	if selfType == nil || ownerType == nil {
		return false
	}
	for _, p := range selfType.Parents {
		nom, ok := p.(*types.Nominal)
		if !ok {
			continue
		}
		if parentDecl, ok := nom.Decl.(ast.TypeDecl); ok {
			if typeDeclEqualOrInherits(parentDecl, owner) {
				return true
			}
		}
	}
	return false
}

// ValidateVisibility implements §4.4.2's visibility check.
func ValidateVisibility(cand Candidate, referenceScope *ast.Scope) *Problem {
	vis := ast.VisibilityOf(modifiersOf(cand.Sym))
	switch vis {
	case ast.VisPublic, ast.VisDefault:
		return nil
	case ast.VisInternal:
		if GlobalOf(referenceScope) == GlobalOf(cand.Scope) {
			return nil
		}
	case ast.VisPrivate:
		if referenceScope == cand.Scope {
			return nil
		}
		for s := referenceScope; s != nil; s = s.Parent {
			if s == cand.Scope {
				return nil
			}
		}
	case ast.VisProtected:
		owner := enclosingTypeDecl(cand.Scope)
		self := enclosingTypeDecl(referenceScope)
		if typeDeclEqualOrInherits(self, owner) {
			return nil
		}
	}
	return &Problem{
		Code:     diagnostics.SYMBOL_NOT_VISIBLE,
		Severity: diagnostics.ERROR,
		Message:  fmt.Sprintf("'%s' is not visible from this scope", cand.Sym.SymbolName()),
	}
}

// ValidateStaticness implements §4.4.2's staticness check.
func ValidateStaticness(cand Candidate, access AccessKind) *Problem {
	isStatic := ast.IsStatic(modifiersOf(cand.Sym))
	if isStatic && cand.Origin == ast.OriginStatic && access == AccessInstance {
		return &Problem{
			Code:     diagnostics.STATIC_ACCESS_VIA_INSTANCE,
			Severity: diagnostics.WARNING,
			Message:  fmt.Sprintf("'%s' is static; access it through the type, not an instance", cand.Sym.SymbolName()),
		}
	}
	if cand.Origin == ast.OriginTypeHierarchy && access == AccessStatic {
		return &Problem{
			Code:     diagnostics.INSTANCE_ACCESS_VIA_STATIC,
			Severity: diagnostics.ERROR,
			Message:  fmt.Sprintf("'%s' is an instance member and cannot be accessed statically", cand.Sym.SymbolName()),
		}
	}
	return nil
}

// ValidateGenerics implements §4.4.2's generics arity/bound check. declared
// is the candidate's own GenericType list (empty for non-generic symbols);
// supplied is the explicit generic argument list from the reference site
// (possibly empty, meaning inferred/unspecified).
func ValidateGenerics(declared []*ast.GenericType, supplied []ast.TypeRef, requireExact bool) []Problem {
	var problems []Problem
	if requireExact && len(supplied) != len(declared) {
		problems = append(problems, Problem{
			Code:     diagnostics.GENERICS_ARITY_MISMATCH,
			Severity: diagnostics.ERROR,
			Message:  fmt.Sprintf("expected %d generic argument(s), found %d", len(declared), len(supplied)),
		})
		return problems
	}
	if !requireExact && len(supplied) > len(declared) {
		problems = append(problems, Problem{
			Code:     diagnostics.GENERICS_ARITY_MISMATCH,
			Severity: diagnostics.ERROR,
			Message:  fmt.Sprintf("expected at most %d generic argument(s), found %d", len(declared), len(supplied)),
		})
		return problems
	}
	for i, sup := range supplied {
		bound := declared[i].Bound
		if bound == nil {
			continue
		}
		if !types.CanCastTo(sup.GetActualType(), bound.GetActualType()) {
			problems = append(problems, Problem{
				Code:     diagnostics.GENERICS_BOUND_MISMATCH,
				Severity: diagnostics.ERROR,
				Message:  fmt.Sprintf("type %s does not satisfy bound %s", sup.GetActualType(), bound.GetActualType()),
			})
		}
	}
	return problems
}

// Validate runs every §4.4.2 check against cand and returns the combined
// problem list (empty means cand is immediately selectable).
func Validate(cand Candidate, referenceScope *ast.Scope, access AccessKind, supplied []ast.TypeRef, requireExact bool) []Problem {
	var problems []Problem
	if p := ValidateVisibility(cand, referenceScope); p != nil {
		problems = append(problems, *p)
	}
	if p := ValidateStaticness(cand, access); p != nil {
		problems = append(problems, *p)
	}
	problems = append(problems, ValidateGenerics(genericsOf(cand.Sym), supplied, requireExact)...)
	return problems
}

func genericsOf(sym ast.Symbol) []*ast.GenericType {
	switch s := sym.(type) {
	case *ast.Function:
		return s.Generics
	case *ast.Class:
		return s.Generics
	case *ast.Struct:
		return s.Generics
	case *ast.Template:
		return s.Generics
	case *ast.Enum:
		return s.Generics
	case *ast.Alias:
		return s.Generics
	default:
		return nil
	}
}

// FirstSelectable returns the first zero-Problem candidate, or — if none
// is problem-free — the first candidate along with its recorded problems,
// matching §4.4.2's "returns the first candidate with zero problems ...
// else returns the first candidate and emits the recorded problems".
func FirstSelectable(cands []Candidate, referenceScope *ast.Scope, access AccessKind, supplied []ast.TypeRef, requireExact bool) (Candidate, []Problem, bool) {
	if len(cands) == 0 {
		return Candidate{}, nil, false
	}
	var firstProblems []Problem
	for i, c := range cands {
		problems := Validate(c, referenceScope, access, supplied, requireExact)
		if i == 0 {
			firstProblems = problems
		}
		if len(problems) == 0 {
			return c, nil, true
		}
	}
	return cands[0], firstProblems, true
}
