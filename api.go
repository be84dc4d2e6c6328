// Package typeinduct derives, for any Go type T, a mutability classifier,
// an acyclicity test, a sharing- and cycle-preserving deep copier, and a
// cycle-safe structural equality predicate — each computed once per type
// and memoized for the lifetime of the process. See mutability, cycles,
// copy, and equality for the four derivations' own packages; this package
// is the generic, type-safe surface over them.
package typeinduct

import (
	"reflect"

	"github.com/pablor21/typeinduct/copy"
	"github.com/pablor21/typeinduct/cycles"
	"github.com/pablor21/typeinduct/equality"
	"github.com/pablor21/typeinduct/internal/registry"
	"github.com/pablor21/typeinduct/introspect"
	"github.com/pablor21/typeinduct/mutability"
)

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Mutability classifies T: Immutable, Maybe, or Mutable.
func Mutability[T any]() mutability.Class {
	return mutability.Of(typeOf[T]())
}

// IsMutable reports whether v's concrete runtime type is currently mutable
// through any reachable path — the instance-level counterpart to
// Mutability, resolving a Maybe classification against v's actual fields.
func IsMutable[T any](v T) bool {
	return mutability.IsMutableValue(reflect.ValueOf(v))
}

// Cycles reports whether T's field graph can revisit itself.
func Cycles[T any]() cycles.Result {
	return cycles.Of(typeOf[T]())
}

// Copy returns a deep copy of v, sharing- and cycle-preserving: two
// references to the same object in v reach a single shared copy in the
// result, and a cycle in v becomes the same cycle, closed on the copy.
func Copy[T any](v T) (T, error) {
	out, err := copy.Copy(reflect.ValueOf(v))
	var zero T
	if err != nil {
		return zero, err
	}
	if !out.IsValid() {
		return zero, nil
	}
	return out.Interface().(T), nil
}

// StructuralEquals reports whether a and b are structurally equal:
// reflexive, symmetric, and terminating on cyclic graphs.
func StructuralEquals[T any](a, b T) bool {
	return equality.Equal(reflect.ValueOf(a), reflect.ValueOf(b))
}

// DefaultEquals compares a and b, preferring T's own Equal method over the
// structural walk when T implements one.
func DefaultEquals[T any](a, b T) bool {
	return equality.DefaultEquals(reflect.ValueOf(a), reflect.ValueOf(b))
}

// DefaultHash computes a structural hash for v consistent with
// DefaultEquals/StructuralEquals.
func DefaultHash[T any](v T) (uint64, error) {
	return equality.DefaultHash(reflect.ValueOf(v))
}

// OverrideCopier replaces T's synthesized deep-copy walker with fn,
// effective for the rest of the process (last-write-wins).
func OverrideCopier[T any](fn func(v T, refs *copy.RefMap) (T, error)) {
	t := typeOf[T]()
	copy.OverrideCopier(t, func(v reflect.Value, refs *copy.RefMap) (reflect.Value, error) {
		out, err := fn(v.Interface().(T), refs)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(out), nil
	})
}

// OverrideCreate registers a constructor for T that deep-copy synthesis can
// bind read-only fields through, for a T whose own package does not expose
// one the introspector can discover automatically.
func OverrideCreate[T any](params []introspect.Param, build func(args []reflect.Value) T) {
	introspect.RegisterConstructor(typeOf[T](), introspect.Constructor{
		Params: params,
		New: func(args []reflect.Value) reflect.Value {
			return reflect.ValueOf(build(args))
		},
	})
}

// WarmUpStats reports what a WarmUp call cost.
type WarmUpStats struct {
	HeapBytesBefore uint64
	HeapBytesAfter  uint64
	RSSBytes        uint64
}

// WarmUp forces the mutability, cycle, copy, and equality derivations for
// each of types to run and cache now rather than on first use, and reports
// the heap usage before and after, plus the process's peak resident set
// size. The copy and equality derivations are driven by the type's zero
// value, so a type classified Immutable gets no copy walker (Copy returns
// such values unchanged), and for a pointer type only the pointer level is
// reached, since its zero value is nil. Intended for a caller that
// wants derivation cost paid once at startup instead of scattered across a
// request path's first hits.
func WarmUp(types ...reflect.Type) WarmUpStats {
	before := registry.HeapUsage()
	for _, t := range types {
		mutability.Of(t)
		cycles.Of(t)
		zero := reflect.Zero(t)
		if zero.IsValid() {
			_, _ = copy.Copy(zero)
			equality.Equal(zero, zero)
		}
	}
	return WarmUpStats{
		HeapBytesBefore: before,
		HeapBytesAfter:  registry.HeapUsage(),
		RSSBytes:        registry.ResidentSetSize(),
	}
}
