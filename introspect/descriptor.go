// Package introspect is the type introspector (spec §4.A): a uniform,
// side-effect-free view over a Go reflect.Type's fields, ancestors,
// constructors, interface set, member attributes, and kind classification.
// It is the leaf component every other derivation (mutability, cycles,
// copy, equality) builds on, mirroring the teacher's own `types` package
// role as the base layer the `scanner` package's resolvers walked — except
// here the metadata source is Go's runtime `reflect` package instead of
// `go/types` source analysis, since every operation this induction engine
// derives (Copy, StructuralEquals, IsMutable) runs against live values, not
// source code.
package introspect

import (
	"reflect"

	"github.com/pablor21/typeinduct/internal/registry"
)

// Descriptor is the Go realization of the spec's "type descriptor" (§3):
// immutable metadata about one reflect.Type, computed once and cached for
// the lifetime of the process.
type Descriptor struct {
	Type        reflect.Type
	KindOf      Kind
	Fields      []Field
	Interfaces  []reflect.Type
	Sealed      bool
	IsPrimitive bool
	IsValueType bool
	IsArray     bool
	Element     reflect.Type
}

var descriptors = registry.New[reflect.Type, *Descriptor]()

// Of returns the (cached) Descriptor for t, computing it on first request.
// Concurrent requests for the same t collapse onto one computation via the
// underlying registry's singleflight-backed GetOrCompute — matching spec §3
// Invariant 2's "at most one derivation effort is in flight" for the
// introspector's own metadata, not just for B–E's derivations.
func Of(t reflect.Type) *Descriptor {
	d, err := registry.GetOrCompute(descriptors, t, t.String(), func() (*Descriptor, error) {
		return build(t), nil
	})
	if err != nil {
		// build never returns an error; a non-nil err here would mean the
		// registry itself is broken.
		panic(err)
	}
	return d
}

func build(t reflect.Type) *Descriptor {
	return &Descriptor{
		Type:        t,
		KindOf:      ClassifyKind(t),
		Fields:      FieldsOf(dereferenceForFields(t)),
		Interfaces:  InterfacesOf(t),
		Sealed:      IsSealed(t),
		IsPrimitive: IsPrimitive(t),
		IsValueType: IsValueType(t),
		IsArray:     IsArray(t),
		Element:     ElementType(t),
	}
}

func dereferenceForFields(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
