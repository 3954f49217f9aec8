// Package resolver implements the multi-stage semantic analysis pass of
// §4.4: symbol binding, type resolution, overload resolution, and the
// recursive-resolution guard, driven as a monotone state machine per AST
// (§4.4.5).
package resolver

// Stage is one level of §4.4.5's state machine. Stage values are ordered;
// a Resolver never regresses an Ast's stage.
type Stage int

const (
	Unresolved Stage = iota
	InternalTypes
	InternalNonRecursive
	InternalAll
	ExternalTypes
	ExternalNonRecursive
	Resolved
)

func (s Stage) String() string {
	switch s {
	case Unresolved:
		return "UNRESOLVED"
	case InternalTypes:
		return "INTERNAL_TYPES"
	case InternalNonRecursive:
		return "INTERNAL_NON_RECURSIVE"
	case InternalAll:
		return "INTERNAL_ALL"
	case ExternalTypes:
		return "EXTERNAL_TYPES"
	case ExternalNonRecursive:
		return "EXTERNAL_NON_RECURSIVE"
	case Resolved:
		return "RESOLVED"
	default:
		return "?"
	}
}
