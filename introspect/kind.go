package introspect

import (
	"reflect"
	"strings"
)

// Kind classifies a reflect.Type the way the spec's data model classifies a
// declared type: parameter, plain, generic definition, generic application,
// pointer, or managed reference. Go's reflect package never reifies an
// unresolved generic type parameter (there is no runtime Type for `T` inside
// `func F[T any]()` until it is instantiated) and never reifies a generic
// definition either (only applications survive to runtime) — so
// ClassifyKind never returns KindParameter or KindGenericDefinition; it only
// ever produces KindPlain, KindGenericApplication, KindPointer, or
// KindReference.
type Kind int

const (
	KindPlain Kind = iota
	KindGenericDefinition
	KindGenericApplication
	KindPointer
	KindReference
	KindParameter
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindGenericDefinition:
		return "generic_definition"
	case KindGenericApplication:
		return "generic_application"
	case KindPointer:
		return "pointer"
	case KindReference:
		return "reference"
	case KindParameter:
		return "parameter"
	default:
		return "unknown"
	}
}

// ClassifyKind derives the Kind of t from reflect.Type.Kind() and name shape.
// Maps, channels, and slices are classified KindReference: they share
// pointer identity semantics with true pointers for the purposes of the
// cycle detector and deep copier (§4.A, §4.C, §4.D all treat "array/pointer/
// reference types" as one bucket that recurses into an element type).
func ClassifyKind(t reflect.Type) Kind {
	if t == nil {
		return KindPlain
	}
	switch t.Kind() {
	case reflect.Pointer:
		return KindPointer
	case reflect.Map, reflect.Chan, reflect.Slice:
		return KindReference
	}
	// Go's reflect names an instantiated generic type "List[int]"; there is
	// no runtime representation of the unbound "List[T]" definition to
	// compare against, so KindGenericApplication is detected structurally.
	if strings.Contains(t.Name(), "[") && strings.Contains(t.Name(), "]") {
		return KindGenericApplication
	}
	return KindPlain
}

// IsArray reports whether t is a fixed-size Go array (spec's "array" kind
// covers both fixed arrays and slices in the source platform; Go splits
// these into reflect.Array, a value type copied by assignment, and
// reflect.Slice, a reference type — see ClassifyKind and mutability's
// blacklist for how the split is handled).
func IsArray(t reflect.Type) bool {
	return t != nil && t.Kind() == reflect.Array
}

// ElementType returns the element type for pointers, arrays, slices, maps,
// and channels, or nil if t has none.
func ElementType(t reflect.Type) reflect.Type {
	if t == nil {
		return nil
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Array, reflect.Slice, reflect.Chan:
		return t.Elem()
	case reflect.Map:
		return t.Elem()
	default:
		return nil
	}
}

// IsPrimitive reports whether t is of a Go basic kind (bool, numeric kinds,
// string), including named types defined over one. This is a structural
// test only; mutability's whitelist (mutability/whitelist.go)
// additionally whitelists named types like time.Time that are not
// reflect.Bool/Int/.../String kinds.
func IsPrimitive(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}

// IsValueType reports whether t has Go value semantics (copied by
// assignment, no shared identity) as opposed to reference semantics.
func IsValueType(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Slice, reflect.Interface, reflect.Func, reflect.UnsafePointer:
		return false
	default:
		return true
	}
}

// IsSealed reports whether t can be subclassed. Go has no inheritance, so
// every concrete (non-interface) type is "sealed" in the spec's sense: no
// other type can add fields on top of it and still be assignable where t is
// expected. Interfaces are never sealed — any number of concrete types can
// satisfy one, which is exactly the polymorphism the cycle detector and
// mutability's non-final case are guarding against.
func IsSealed(t reflect.Type) bool {
	if t == nil {
		return true
	}
	return t.Kind() != reflect.Interface
}
