package types

import "sync"

// Registry is the immutable, process-wide invariant-type table (Design
// Notes §9): the built-in type surface of §6, always resolvable unless the
// compilation was started with @nobuiltins / --no-builtins.
type Registry struct {
	byName map[string]*Builtin
	order  []string
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the shared, immutable built-in type registry, built
// exactly once.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = newRegistry()
	})
	return defaultRegistry
}

// Names the built-in type surface, §6.
var builtinNames = []string{
	"Any", "Number",
	"Int", "Int8", "Int16", "Int32", "Int64",
	"UInt", "UInt8", "UInt16", "UInt32", "UInt64",
	"Float", "Double", "Float80",
	"Bool", "String", "Void",
}

func newRegistry() *Registry {
	r := &Registry{byName: make(map[string]*Builtin, len(builtinNames))}
	any_ := &Builtin{Name: "Any"}
	r.add(any_)

	number := &Builtin{Name: "Number", Parents: []Type{any_}}
	r.add(number)

	for _, n := range []string{"Int", "Int8", "Int16", "Int32", "Int64",
		"UInt", "UInt8", "UInt16", "UInt32", "UInt64", "Float", "Double", "Float80"} {
		r.add(&Builtin{Name: n, Parents: []Type{number}})
	}

	r.add(&Builtin{Name: "Bool", Parents: []Type{any_}})
	r.add(&Builtin{Name: "String", Parents: []Type{any_}})
	r.add(&Builtin{Name: "Void", Parents: []Type{any_}})

	return r
}

func (r *Registry) add(b *Builtin) {
	r.byName[b.Name] = b
	r.order = append(r.order, b.Name)
}

// Lookup finds a built-in by name.
func (r *Registry) Lookup(name string) (*Builtin, bool) {
	b, ok := r.byName[name]
	return b, ok
}

// Any, Number, etc. are convenience accessors onto the default registry,
// used pervasively by the parser (primary-expression literal typing) and
// resolver (fallback/common-type computation).
func Any() *Builtin    { b, _ := Default().Lookup("Any"); return b }
func Number() *Builtin { b, _ := Default().Lookup("Number"); return b }
func Bool() *Builtin   { b, _ := Default().Lookup("Bool"); return b }
func Str() *Builtin    { b, _ := Default().Lookup("String"); return b }
func Void() *Builtin   { b, _ := Default().Lookup("Void"); return b }
func Int() *Builtin    { b, _ := Default().Lookup("Int"); return b }
func Float() *Builtin  { b, _ := Default().Lookup("Float"); return b }

// numericRank orders the built-in numeric lattice from narrowest to
// widest; CanCastTo consults it so "target is no narrower" holds.
var numericRank = map[string]int{
	"Int8": 0, "UInt8": 0,
	"Int16": 1, "UInt16": 1,
	"Int32": 2, "UInt32": 2, "Float": 2,
	"Int": 3, "UInt": 3, "Int64": 3, "UInt64": 3, "Double": 3,
	"Float80": 4,
}

func isNumericName(name string) bool {
	_, ok := numericRank[name]
	return ok
}
