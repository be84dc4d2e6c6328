package equality

import (
	"reflect"

	"github.com/mitchellh/hashstructure/v2"

	"github.com/pablor21/typeinduct/internal/unsafefield"
)

// selfEquatable is the curated interface a reference type can implement to
// take over its own DefaultEquals comparison. Preferring it over field
// comparison lets a type with an intentional notion of equality narrower
// than "every field matches" (e.g. an identifier-keyed record) opt out of
// the structural default.
type selfEquatable interface {
	Equal(other any) bool
}

var selfEquatableType = reflect.TypeOf((*selfEquatable)(nil)).Elem()

// DefaultEquals compares a and b, preferring a's own Equal method when
// either a or *a implements one, and falling back to the structural walk
// otherwise (spec §6 "DefaultEquals(T, a, b) -> bool ... if T is a
// reference type implementing an equatable interface on itself, the open
// instance method is preferred").
func DefaultEquals(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type().Implements(selfEquatableType) {
		return a.Interface().(selfEquatable).Equal(b.Interface())
	}
	if reflect.PointerTo(a.Type()).Implements(selfEquatableType) {
		return addressable(a).Addr().Interface().(selfEquatable).Equal(b.Interface())
	}
	return Equal(a, b)
}

// DefaultHash computes a structural hash for v consistent with the
// field-set walk StructuralEquals performs (spec §6 "DefaultHash(T, v) ->
// int"), delegating to hashstructure so mutually recursive types hash
// without a hand-rolled combinator. Go's idiomatic hash-code width is
// uint64 (hash/maphash, hashstructure's own return type), so this realizes
// spec's "int" as a uint64 rather than truncating into a signed 32/64-bit
// value that would otherwise ambiguously wrap.
func DefaultHash(v reflect.Value) (uint64, error) {
	if v.IsValid() && !v.CanInterface() {
		v = unsafefield.Readable(v)
	}
	return hashstructure.Hash(v.Interface(), hashstructure.FormatV2, nil)
}
