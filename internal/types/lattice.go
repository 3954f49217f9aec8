package types

// Equal reports whether a and b denote the same resolved type. Builtins
// compare by name (the registry hands out singletons, but tests may build
// ad hoc registries, so don't rely on pointer identity). Nominal types
// compare by declaration identity plus generic arguments — two
// occurrences of `List<Int>` are equal, `List<Int>` and `List<String>`
// are not. Structural types recurse.
func Equal(a, b Type) bool {
	if a == nil || b == nil {
		return a == b
	}
	switch at := a.(type) {
	case *Builtin:
		bt, ok := b.(*Builtin)
		return ok && at.Name == bt.Name
	case *Nominal:
		bt, ok := b.(*Nominal)
		if !ok || at.Decl != bt.Decl || len(at.Generics) != len(bt.Generics) {
			return false
		}
		for i := range at.Generics {
			if !Equal(at.Generics[i], bt.Generics[i]) {
				return false
			}
		}
		return true
	case *GenericParam:
		bt, ok := b.(*GenericParam)
		return ok && at.Name == bt.Name
	case *Array:
		bt, ok := b.(*Array)
		return ok && Equal(at.Element, bt.Element)
	case *Map:
		bt, ok := b.(*Map)
		return ok && Equal(at.Key, bt.Key) && Equal(at.Value, bt.Value)
	case *Tuple:
		bt, ok := b.(*Tuple)
		if !ok || len(at.Elements) != len(bt.Elements) {
			return false
		}
		for i := range at.Elements {
			if !Equal(at.Elements[i], bt.Elements[i]) {
				return false
			}
		}
		return true
	case *Function:
		bt, ok := b.(*Function)
		if !ok || len(at.Params) != len(bt.Params) || at.Variadic != bt.Variadic {
			return false
		}
		for i := range at.Params {
			if !Equal(at.Params[i], bt.Params[i]) {
				return false
			}
		}
		return Equal(at.Return, bt.Return)
	case *Optional:
		bt, ok := b.(*Optional)
		return ok && Equal(at.Wrapped, bt.Wrapped)
	case *UnwrappedOptional:
		bt, ok := b.(*UnwrappedOptional)
		return ok && Equal(at.Wrapped, bt.Wrapped)
	case *Pointer:
		bt, ok := b.(*Pointer)
		return ok && Equal(at.Pointee, bt.Pointee)
	}
	return false
}

func name(t Type) string {
	switch tt := t.(type) {
	case *Builtin:
		return tt.Name
	case *Nominal:
		return tt.Name
	}
	return ""
}

func parentsOf(t Type) []Type {
	switch tt := t.(type) {
	case *Builtin:
		return tt.Parents
	case *Nominal:
		return tt.Parents
	}
	return nil
}

// isSubtype reports whether src is src-or-below target in the declared
// hierarchy (transitive closure of parent types).
func isSubtype(src, target Type) bool {
	if Equal(src, target) {
		return true
	}
	for _, p := range parentsOf(src) {
		if isSubtype(p, target) {
			return true
		}
	}
	return false
}

// CanCastTo implements §4.4.3's can_cast_to(src, target).
func CanCastTo(src, target Type) bool {
	if Equal(src, target) {
		return true
	}
	if isSubtype(src, target) {
		return true
	}
	if srcB, ok := src.(*Builtin); ok {
		if tgtB, ok := target.(*Builtin); ok {
			if isNumericName(srcB.Name) && isNumericName(tgtB.Name) {
				return numericRank[tgtB.Name] >= numericRank[srcB.Name]
			}
		}
	}
	if tgtOpt, ok := target.(*Optional); ok {
		return CanCastTo(src, tgtOpt.Wrapped)
	}
	if tgtB, ok := target.(*Builtin); ok && tgtB.Name == "Any" {
		return true
	}
	return false
}

// ancestorChain returns t, then each parent in BFS order, then Any.
func ancestorChain(t Type) []Type {
	var chain []Type
	seen := map[Type]bool{}
	queue := []Type{t}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		chain = append(chain, cur)
		queue = append(queue, parentsOf(cur)...)
	}
	return chain
}

func ancestorSet(t Type) map[string]bool {
	set := map[string]bool{}
	for _, a := range ancestorChain(t) {
		if n := name(a); n != "" {
			set[n] = true
		} else {
			set[a.String()] = true
		}
	}
	return set
}

// Distance is the per-argument match score of §4.4.4's overload scoring:
// 0 for an exact type, increasing by one per ancestor hop needed to
// reach target along src's parent chain, or -1 when src cannot be cast
// to target at all. Casts reachable only through numeric widening or an
// Optional/Any fallback (not represented in the parent chain) count as
// one hop.
func Distance(src, target Type) int {
	if Equal(src, target) {
		return 0
	}
	if !CanCastTo(src, target) {
		return -1
	}
	for i, anc := range ancestorChain(src) {
		if Equal(anc, target) {
			return i
		}
	}
	return 1
}

// GetMinCommonType traces both parent chains breadth-first and returns
// the nearest common ancestor; Any is the universal fallback (§4.4.3).
func GetMinCommonType(a, b Type) Type {
	if Equal(a, b) {
		return a
	}
	bSet := ancestorSet(b)
	for _, anc := range ancestorChain(a) {
		key := name(anc)
		if key == "" {
			key = anc.String()
		}
		if bSet[key] {
			return anc
		}
	}
	return Any()
}
