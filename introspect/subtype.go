package introspect

import "reflect"

// Subtypes reports whether s is assignable to t (spec §4.A subtypes(S, T)):
// either s is t itself, s satisfies t when t is an interface, or s is
// directly assignable to t under Go's own assignability rules (covers
// defined-type-over-same-underlying-type cases).
func Subtypes(s, t reflect.Type) bool {
	if s == nil || t == nil {
		return false
	}
	if s == t {
		return true
	}
	if t.Kind() == reflect.Interface {
		return s.Implements(t) || (s.Kind() != reflect.Pointer && reflect.PointerTo(s).Implements(t))
	}
	return s.AssignableTo(t)
}

// IsStrictSubtype reports whether s is assignable to t but is not t itself.
// cycles.dfs uses this for its ancestor-supertype check: an ancestor type
// equal to t is handled by a separate, direct comparison, so the only
// remaining question for a same-but-not-identical ancestor is whether it
// strictly satisfies t's interface.
func IsStrictSubtype(s, t reflect.Type) bool {
	return s != t && Subtypes(s, t)
}
