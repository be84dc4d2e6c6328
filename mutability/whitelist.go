package mutability

import (
	"reflect"
	"time"

	"github.com/pablor21/typeinduct/introspect"
)

// whitelisted reports whether t is immutable by construction, independent of
// its fields: Go basic kinds (introspect.IsPrimitive already covers named
// types over a basic kind, e.g. a defined `type Status int` enum-alike,
// since reflect.Kind follows the underlying type), time.Time, and anything
// opted in via introspect.RegisterPure. Implementing a curated
// observation-only interface does not whitelist a type; those interfaces
// only feed the method-purity check in derive.
//
// The source platform's decimal and reflection-metadata whitelist entries
// have no Go standard-library equivalent in this pack (no decimal type, and
// reflect.Type/reflect.Value are deliberately not whitelisted here — a
// reflect.Value can be used to write through an addressable target, so
// treating it as immutable would be unsound); see DESIGN.md.
func whitelisted(t reflect.Type) bool {
	if introspect.IsPrimitive(t) {
		return true
	}
	if introspect.IsPureType(t) {
		return true
	}
	if t == reflect.TypeOf(time.Time{}) {
		return true
	}
	return false
}

// blacklistedKinds are reference-semantics kinds treated as unconditionally
// Mutable without inspecting fields or elements — the Go stand-in for the
// source platform's "array types; function/closure types" blacklist entry.
// Go splits "array" into reflect.Array (a value type, copied by assignment,
// NOT blacklisted here — a REDESIGN from the source platform, see
// DESIGN.md) and reflect.Slice (a reference type sharing a backing array,
// blacklisted). Map and Chan are added to the blacklist for the same
// reason slices are: their contents are mutable through any held reference
// regardless of key/value/element immutability, and reflect exposes no
// field list to walk for them anyway.
var blacklistedKinds = map[reflect.Kind]bool{
	reflect.Slice:         true,
	reflect.Map:           true,
	reflect.Chan:          true,
	reflect.Func:          true,
	reflect.UnsafePointer: true,
}

func blacklisted(t reflect.Type) bool {
	return blacklistedKinds[t.Kind()]
}
