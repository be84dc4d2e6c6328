package equality

import (
	"log/slog"
	"reflect"

	"github.com/pablor21/typeinduct/internal/registry"
	"github.com/pablor21/typeinduct/internal/unsafefield"
	"github.com/pablor21/typeinduct/introspect"
)

// predicateFunc is one type's synthesized structural-equality comparator
// (spec §4.E "the per-type predicate is stored lazily"). Building one never
// needs another type's predicate synchronously — only its reflect.Type —
// the same call-time-recursion discipline copy.walkerFunc uses, which is
// what lets mutually recursive types synthesize without deadlocking.
type predicateFunc func(a, b reflect.Value, visited *VisitedSet) bool

var predicates = registry.New[reflect.Type, predicateFunc]()

// Equal reports whether a and b are structurally equal, allocating a fresh
// visited-pair set for the call (spec §4.E public contract).
func Equal(a, b reflect.Value) bool {
	visited := newVisitedSet()
	defer releaseVisitedSet(visited)
	return equalValue(a, b, visited)
}

// equalValue is the internal form threading an existing visited-pair set.
func equalValue(a, b reflect.Value, visited *VisitedSet) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	// Equality is nominal on the compared type: two values whose runtime
	// types differ are unequal outright, with no attempt to dispatch to a
	// common supertype's comparator (spec §4.E "Dispatch on subtype is not
	// performed here").
	if a.Type() != b.Type() {
		return false
	}

	// A struct value reached through a non-addressable path (a map value, or
	// the argument passed directly to Equal) needs rehoming into an
	// addressable copy before an unexported field can be reached via
	// unsafefield, which requires UnsafeAddr() — the same issue
	// copy.CopyValue works around with its own addressable() helper.
	if a.Kind() == reflect.Struct {
		a = addressable(a)
		b = addressable(b)
	}

	p := predicateFor(a.Type())
	return p(a, b, visited)
}

func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	holder := reflect.New(v.Type()).Elem()
	holder.Set(unsafefield.Readable(v))
	return holder
}

func predicateFor(t reflect.Type) predicateFunc {
	if p, ok := predicates.Get(t); ok {
		return p
	}
	p, _ := registry.GetOrCompute(predicates, t, t.String(), func() (predicateFunc, error) {
		slog.Debug("equality predicate synthesized", "type", t.String())
		return build(t), nil
	})
	return p
}

func build(t reflect.Type) predicateFunc {
	switch t.Kind() {
	case reflect.Bool:
		return func(a, b reflect.Value, _ *VisitedSet) bool { return a.Bool() == b.Bool() }
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b reflect.Value, _ *VisitedSet) bool { return a.Int() == b.Int() }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b reflect.Value, _ *VisitedSet) bool { return a.Uint() == b.Uint() }
	case reflect.Float32, reflect.Float64:
		return func(a, b reflect.Value, _ *VisitedSet) bool { return a.Float() == b.Float() }
	case reflect.Complex64, reflect.Complex128:
		return func(a, b reflect.Value, _ *VisitedSet) bool { return a.Complex() == b.Complex() }
	case reflect.String:
		return func(a, b reflect.Value, _ *VisitedSet) bool { return a.String() == b.String() }
	case reflect.Pointer:
		return pointerPredicate(t)
	case reflect.Interface:
		return interfacePredicate(t)
	case reflect.Array:
		return arrayPredicate(t)
	case reflect.Slice:
		return slicePredicate(t)
	case reflect.Map:
		return mapPredicate(t)
	case reflect.Struct:
		return structPredicate(t)
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return func(a, b reflect.Value, _ *VisitedSet) bool { return a.Pointer() == b.Pointer() }
	default:
		return func(a, b reflect.Value, _ *VisitedSet) bool {
			if a.CanInterface() && b.CanInterface() {
				return reflect.DeepEqual(a.Interface(), b.Interface())
			}
			return false
		}
	}
}

// pointerPredicate realizes spec §4.E's "reference T" rule: reference
// equality first, nil handling, cycle short-circuit via the visited set,
// then a fields comparison reached by recursing into the pointee.
func pointerPredicate(t reflect.Type) predicateFunc {
	return func(a, b reflect.Value, visited *VisitedSet) bool {
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Pointer() == b.Pointer() {
			return true
		}
		if visited.Seen(a, b, t) {
			return true
		}
		return equalValue(a.Elem(), b.Elem(), visited)
	}
}

func interfacePredicate(reflect.Type) predicateFunc {
	return func(a, b reflect.Value, visited *VisitedSet) bool {
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return equalValue(a.Elem(), b.Elem(), visited)
	}
}

func arrayPredicate(t reflect.Type) predicateFunc {
	return func(a, b reflect.Value, visited *VisitedSet) bool {
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i), visited) {
				return false
			}
		}
		return true
	}
}

func slicePredicate(t reflect.Type) predicateFunc {
	return func(a, b reflect.Value, visited *VisitedSet) bool {
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Pointer() == b.Pointer() && a.Len() == b.Len() {
			return true
		}
		if a.Len() != b.Len() {
			return false
		}
		if visited.Seen(a, b, t) {
			return true
		}
		for i := 0; i < a.Len(); i++ {
			if !equalValue(a.Index(i), b.Index(i), visited) {
				return false
			}
		}
		return true
	}
}

func mapPredicate(t reflect.Type) predicateFunc {
	return func(a, b reflect.Value, visited *VisitedSet) bool {
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		if a.Pointer() == b.Pointer() {
			return true
		}
		if a.Len() != b.Len() {
			return false
		}
		if visited.Seen(a, b, t) {
			return true
		}
		iter := a.MapRange()
		for iter.Next() {
			bv := b.MapIndex(iter.Key())
			if !bv.IsValid() {
				return false
			}
			if !equalValue(iter.Value(), bv, visited) {
				return false
			}
		}
		return true
	}
}

// structPredicate compares every declared field across the whole ancestor
// chain (spec §4.E "Aggregates"), short-circuiting on the first mismatch.
func structPredicate(t reflect.Type) predicateFunc {
	fields := introspect.FieldsOf(t)
	var kept []introspect.Field
	for _, f := range fields {
		if f.Ignored() {
			continue
		}
		kept = append(kept, f)
	}
	return func(a, b reflect.Value, visited *VisitedSet) bool {
		for _, f := range kept {
			fa := unsafefield.Readable(a.FieldByIndex(f.Index))
			fb := unsafefield.Readable(b.FieldByIndex(f.Index))
			if !equalValue(fa, fb, visited) {
				return false
			}
		}
		return true
	}
}
