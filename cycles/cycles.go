// Package cycles derives, for a reflect.Type, whether its field graph can
// ever produce a cyclic object graph at runtime. The result is structural —
// "the declared types permit a cycle" — not a claim about any particular
// instance. The copy and equality packages do not consult it: they keep
// their per-call reference map / visited-pair set on every graph.
package cycles

import (
	"log/slog"
	"reflect"

	"github.com/pablor21/typeinduct/internal/registry"
	"github.com/pablor21/typeinduct/introspect"
)

// Result is the two-valued cycle classification.
type Result int

const (
	NoCycles Result = iota
	HasCycles
)

func (r Result) String() string {
	if r == HasCycles {
		return "has_cycles"
	}
	return "no_cycles"
}

var results = registry.New[reflect.Type, Result]()

// Of returns the cached cycle classification for t, computing it on first
// request. The DFS this triggers never re-enters Of/results for the same or
// any other key, so — unlike mutability — this is safe to memoize behind
// singleflight without risking a self-deadlock on recursive type graphs.
func Of(t reflect.Type) Result {
	r, err := registry.GetOrCompute(results, t, t.String(), func() (Result, error) {
		result := NoCycles
		if dfs(t, nil) {
			result = HasCycles
		}
		slog.Debug("cycle classification derived", "type", t.String(), "result", result.String())
		return result, nil
	})
	if err != nil {
		panic(err)
	}
	return r
}

// dfs walks t's declared field/element graph, tracking the ancestor path on
// the current branch. A cycle exists if the current type equals an
// ancestor, or is a supertype of one (t is an interface type that an
// ancestor satisfies — a field of type t could, at runtime, be filled with
// that ancestor, closing a cycle the static graph alone doesn't show
// directly).
func dfs(t reflect.Type, ancestors []reflect.Type) bool {
	if t == nil {
		return false
	}
	for _, a := range ancestors {
		// a == t is checked directly rather than through Subtypes (which
		// would also report true for it) so the interesting case —
		// ancestor a strictly satisfying t's interface, not just being t —
		// is the only one IsStrictSubtype has to answer.
		if a == t || introspect.IsStrictSubtype(a, t) {
			return true
		}
	}

	if introspect.IsPrimitive(t) {
		return false
	}

	path := append(ancestors, t)

	switch t.Kind() {
	case reflect.Map:
		return dfs(t.Key(), path) || dfs(t.Elem(), path)
	case reflect.Pointer, reflect.Array, reflect.Slice, reflect.Chan:
		return dfs(introspect.ElementType(t), path)
	case reflect.Struct:
		for _, f := range introspect.FieldsOf(t) {
			if f.Ignored() {
				continue
			}
			if dfs(f.Type, path) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
