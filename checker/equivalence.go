package checker

import "github.com/willvillegas/triangle-go/ast"

// resolveSimple replaces a SimpleTypeDenoter with the TypeDenoter it names,
// if that name resolves to a Type declaration (spec §4.5.3). Any other
// TypeDenoter, or a SimpleTypeDenoter whose name didn't resolve to a type,
// is returned unchanged.
func resolveSimple(t ast.TypeDenoter) ast.TypeDenoter {
	s, ok := t.(*ast.SimpleTypeDenoter)
	if !ok {
		return t
	}
	if s.Resolved != nil {
		return s.Resolved
	}
	return t
}

// equivalent decides type equivalence per spec §4.5.3. Any and Error act as
// wildcards on either side so that polymorphic built-ins and already-faulted
// sub-trees never trigger a cascade of further type errors.
func equivalent(a, b ast.TypeDenoter) bool {
	a = resolveSimple(a)
	b = resolveSimple(b)

	if isWildcard(a) || isWildcard(b) {
		return true
	}

	switch x := a.(type) {
	case *ast.IntTypeDenoter:
		_, ok := b.(*ast.IntTypeDenoter)
		return ok
	case *ast.CharTypeDenoter:
		_, ok := b.(*ast.CharTypeDenoter)
		return ok
	case *ast.BoolTypeDenoter:
		_, ok := b.(*ast.BoolTypeDenoter)
		return ok
	case *ast.ArrayTypeDenoter:
		y, ok := b.(*ast.ArrayTypeDenoter)
		if !ok {
			return false
		}
		return x.Size.Spelling == y.Size.Spelling && equivalent(x.Member, y.Member)
	case *ast.RecordTypeDenoter:
		y, ok := b.(*ast.RecordTypeDenoter)
		if !ok {
			return false
		}
		return fieldsEquivalent(x.Fields, y.Fields)
	default:
		return false
	}
}

func isWildcard(t ast.TypeDenoter) bool {
	switch t.(type) {
	case *ast.AnyTypeDenoter, *ast.ErrorTypeDenoter:
		return true
	default:
		return false
	}
}

// fieldsEquivalent walks two field-type lists in lockstep: same name, same
// type, same order, same length (spec §4.5.3).
func fieldsEquivalent(a, b ast.FieldTypeDenoter) bool {
	for {
		an, at, arest, aok := nextField(a)
		bn, bt, brest, bok := nextField(b)
		if !aok || !bok {
			return aok == bok
		}
		if an != bn || !equivalent(at, bt) {
			return false
		}
		a, b = arest, brest
	}
}

func nextField(f ast.FieldTypeDenoter) (name string, typ ast.TypeDenoter, rest ast.FieldTypeDenoter, ok bool) {
	switch n := f.(type) {
	case *ast.SingleFieldTypeDenoter:
		return n.Name.Spelling, n.Type, nil, true
	case *ast.MultipleFieldTypeDenoter:
		return n.Name.Spelling, n.Type, n.Rest, true
	default:
		return "", nil, nil, false
	}
}
