// Package mutability derives, for any reflect.Type, a conservative
// tri-valued classification of how mutable its values can be, plus — when
// the classification is inconclusive — a per-instance predicate that
// resolves the question for one concrete value.
//
// The algorithm is unchanged from the source platform's: a closed whitelist
// and blacklist decide the easy cases outright; everything else falls
// through to a transitive walk over declared fields, monotone in the field
// graph (Mutable ≻ Maybe ≻ Immutable). What changes for Go is only the
// vocabulary the whitelist/blacklist/transitive rules are expressed in —
// see whitelist.go for the substitutions this pack's type system forces
// (no enums, no decimals, arrays are value types).
package mutability

import (
	"log/slog"
	"reflect"
	"sync"

	"github.com/pablor21/typeinduct/introspect"
)

// Class is the static mutability classification of a type.
type Class int

const (
	Immutable Class = iota
	Maybe
	Mutable
)

func (c Class) String() string {
	switch c {
	case Immutable:
		return "immutable"
	case Maybe:
		return "maybe"
	case Mutable:
		return "mutable"
	default:
		return "unknown"
	}
}

// combine folds two classifications monotonically: Mutable dominates Maybe
// dominates Immutable.
func combine(a, b Class) Class {
	if a == Mutable || b == Mutable {
		return Mutable
	}
	if a == Maybe || b == Maybe {
		return Maybe
	}
	return Immutable
}

// residualField is one field carried into a Maybe type's instance-level
// check because its own static classification could not rule out
// mutability.
type residualField struct {
	field introspect.Field
}

type entry struct {
	class    Class
	residual []residualField
}

var (
	mu       sync.Mutex
	cache    = map[reflect.Type]*entry{}
	inFlight = map[reflect.Type]bool{}
)

// Of returns the static mutability classification of t.
func Of(t reflect.Type) Class {
	return classify(t).class
}

// classify returns the (possibly still-being-derived) entry for t. A type
// re-entered while its own derivation is on the call stack — the only way a
// self- or mutually-referential type graph can reach classify(t) again
// before the first call returns — is answered with a placeholder Maybe
// entry rather than deadlocking or looping forever: Maybe is exactly the
// "can't rule out mutability yet" answer the transitive algorithm already
// uses for every other kind of uncertainty, so folding it into the parent's
// combine() is sound, if conservative, for the recursive occurrence.
//
// This mirrors spec invariant 2 ("at most one derivation effort is in
// flight") without needing singleflight: unlike the copy and equality
// walkers (whose derivation never needs another type's *result*, only its
// *type*, so they can defer the recursive lookup to call time), mutability
// derivation genuinely needs the field type's classification synchronously
// to decide its own, so the guard has to live inside derivation itself.
func classify(t reflect.Type) *entry {
	if t == nil {
		return &entry{class: Immutable}
	}

	mu.Lock()
	if e, ok := cache[t]; ok {
		mu.Unlock()
		return e
	}
	if inFlight[t] {
		mu.Unlock()
		return &entry{class: Maybe}
	}
	inFlight[t] = true
	mu.Unlock()

	e := derive(t)

	mu.Lock()
	delete(inFlight, t)
	won := false
	if existing, ok := cache[t]; ok {
		// Someone else raced us and won; keep their result (spec §5: races
		// are tolerated, only one instance wins).
		e = existing
	} else {
		cache[t] = e
		won = true
	}
	mu.Unlock()

	if won {
		slog.Debug("mutability derived", "type", t.String(), "class", e.class.String())
	}

	return e
}

func derive(t reflect.Type) *entry {
	// Nullable-of-U (spec §4.B "special case"): a pointer's mutability is
	// exactly its pointee's, never forced to Mutable merely for being a
	// pointer.
	if t.Kind() == reflect.Pointer {
		return classify(t.Elem())
	}
	// A Go fixed array is a value type (REDESIGN, see whitelist.go):
	// treated the same way as nullable-of-U — its mutability is exactly
	// its element type's.
	if t.Kind() == reflect.Array {
		return classify(t.Elem())
	}

	if whitelisted(t) {
		return &entry{class: Immutable}
	}
	if blacklisted(t) {
		return &entry{class: Mutable}
	}

	if t.Kind() != reflect.Struct {
		// Interfaces, and any other kind that reaches here, are handled by
		// the transitive rule's own base case: non-final unless proven
		// otherwise. There are no declared instance fields to walk (struct
		// is the only Go kind FieldsOf inspects), so the result is Maybe
		// with an empty residual — a value of this static type never
		// actually reaches its own residual check, since IsMutableValue
		// always resolves an interface's dynamic value to its concrete
		// type before consulting classify.
		sealed := introspect.IsSealed(t)
		if sealed {
			return &entry{class: Immutable}
		}
		return &entry{class: Maybe}
	}

	result := Maybe
	if introspect.IsSealed(t) {
		result = Immutable
	}

	typeImpure := !introspect.MethodsAllPure(t)
	var residual []residualField

	for _, f := range introspect.FieldsOf(t) {
		if f.Ignored() {
			continue
		}
		if !f.ReadOnly() && (f.Exported() || typeImpure) {
			return &entry{class: Mutable}
		}
		fieldClass := classify(f.Type).class
		result = combine(result, fieldClass)
		if fieldClass == Maybe {
			residual = append(residual, residualField{field: f})
		}
	}

	if result == Maybe {
		return &entry{class: Maybe, residual: residual}
	}
	return &entry{class: result}
}

// IsMutable evaluates the instance-level predicate for v, per spec §4.B's
// instance-level check. visited prevents infinite recursion through
// mutually recursive object graphs; pass a fresh, non-nil map from the
// exported IsMutableValue entry point.
func IsMutable(v reflect.Value, visited map[uintptr]bool) bool {
	if !v.IsValid() {
		return false
	}

	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return false
		}
		return IsMutable(v.Elem(), visited)
	case reflect.Pointer:
		if v.IsNil() {
			return false
		}
		ptr := v.Pointer()
		if visited[ptr] {
			// Already on the path being evaluated; this occurrence cannot
			// itself introduce new evidence of mutability.
			return false
		}
		visited[ptr] = true
		return IsMutable(v.Elem(), visited)
	}

	e := classify(v.Type())
	switch e.class {
	case Immutable:
		return false
	case Mutable:
		return true
	default:
		slog.Warn("resolving maybe-mutable type against a runtime instance",
			"type", v.Type().String(), "residual_fields", len(e.residual))
		for _, rf := range e.residual {
			fv := v.FieldByIndex(rf.field.Index)
			if IsMutable(fv, visited) {
				return true
			}
		}
		return false
	}
}

// IsMutableValue is the exported entry point: it evaluates IsMutable(v)
// with a fresh visited set, matching the public `IsMutable(T, v)` surface
// in spec §6.
func IsMutableValue(v reflect.Value) bool {
	return IsMutable(v, map[uintptr]bool{})
}
