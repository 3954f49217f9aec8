// Package symbols implements spec §4.4.1/§4.4.2's symbol lookup and
// candidate validation over the ast package's Scope tree: resolve_symbol
// and the visibility/staticness/generics checks the Resolver applies to
// each candidate it turns up.
package symbols

import "github.com/accelec/accele/internal/ast"

// TargetKind is one member of a SearchCriteria's targets set.
type TargetKind int

const (
	TargetVariable TargetKind = iota
	TargetType
	TargetNamespace
)

// Criteria parameterizes resolve_symbol (§4.4.1).
type Criteria struct {
	Recursive       bool
	AllowExternal   bool
	Targets         map[TargetKind]bool
	RequireExact    bool
	Modifiable      bool
}

func (c Criteria) wants(k TargetKind) bool { return c.Targets[k] }

// Candidate is one symbol turned up by Lookup, annotated with the scope it
// was found in and its provenance relative to the search's starting scope.
type Candidate struct {
	Sym    ast.Symbol
	Scope  *ast.Scope
	Origin ast.Origin
}
