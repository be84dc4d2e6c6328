// Package copy derives, per reflect.Type, a deep-copy walker that preserves
// sharing and cycles: two paths reaching the same object in the source
// reach a single shared copy in the result, and a cycle in the source
// becomes the same cycle, closed on the copy, in the result.
//
// Building a walker for T never itself derives a walker for another type —
// it only records what T's own shape is (self-copier / array / func /
// well-known / constructor-driven struct). The actual recursion into field
// or element types happens through CopyValue at call time, once T's own
// walker is already installed. That ordering is what lets mutually
// recursive types (spec §3 invariant 2, §4.D) derive without deadlocking:
// there is nothing here that needs another type's *result* synchronously,
// only its *type*.
package copy

import (
	"errors"
	"log/slog"
	"reflect"

	"github.com/pablor21/typeinduct/internal/registry"
	"github.com/pablor21/typeinduct/internal/unsafefield"
	"github.com/pablor21/typeinduct/mutability"
)

// ErrNoBindableConstructor is returned when a struct's read-only fields
// cannot be absorbed by any of its registered constructors (spec §4.D "Best
// fit constructor selection", §7 "No bindable constructor").
var ErrNoBindableConstructor = errors.New("copy: no constructor can bind every read-only field")

// Strict, when set, makes CopyValue panic on a synthesis failure instead of
// returning an error — set via typeinduct.Options.Strict for a caller that
// would rather fail fast at startup than propagate ErrNoBindableConstructor
// through every call site.
var Strict bool

// SelfCopier is the "self-copy capability" a type can opt into (spec §4.D
// step 2): Copy receives the in-flight reference map so it can thread
// sharing/cycle preservation through to any nested Copy calls it makes
// itself, and returns the copy as `any` since Go has no way to express "T"
// generically inside a non-generic interface method set.
type SelfCopier interface {
	Copy(refs *RefMap) any
}

var selfCopierType = reflect.TypeOf((*SelfCopier)(nil)).Elem()

type walkerFunc func(v reflect.Value, refs *RefMap) (reflect.Value, error)

var walkers = registry.New[reflect.Type, walkerFunc]()

// Copy returns a deep copy of v, allocating a fresh reference map for the
// call.
func Copy(v reflect.Value) (reflect.Value, error) {
	refs := newRefMap()
	defer releaseRefMap(refs)
	return CopyValue(v, refs)
}

// CopyValue is the recursive form threading an existing reference map
// (spec §6 `Copy(T, v, refs)`).
func CopyValue(v reflect.Value, refs *RefMap) (reflect.Value, error) {
	if !v.IsValid() {
		return v, nil
	}

	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v, nil
		}
		inner, err := CopyValue(unsafefield.Readable(v.Elem()), refs)
		if err != nil {
			return reflect.Value{}, err
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(inner)
		return out, nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return v, nil
		}
	}

	t := v.Type()

	// Immutable values are returned unchanged: identity-preserving, no new
	// allocation (spec §8 property 1).
	if mutability.Of(t) == mutability.Immutable {
		return v, nil
	}

	if existing, ok := refs.Get(v); ok {
		return existing, nil
	}

	// Struct and array values reached through a non-addressable path (a map
	// value, or the top-level argument itself) need to be rehomed into an
	// addressable copy before their fields/elements can be read or written
	// through the unsafe-unexported-field trick (internal/unsafefield),
	// which requires UnsafeAddr().
	if v.Kind() == reflect.Struct || v.Kind() == reflect.Array {
		v = addressable(v)
	}

	w, err := walkerFor(t)
	if err != nil {
		if Strict {
			panic(err)
		}
		return reflect.Value{}, err
	}
	return w(v, refs)
}

// OverrideCopier replaces T's synthesized copier with fn, effective for the
// rest of the process (spec §6, §5 "last-write-wins"). Since synthesis
// failures are never cached (see walkerFor), a type that previously failed
// to bind a constructor can be retried simply by calling Copy again after
// installing an override.
func OverrideCopier(t reflect.Type, fn func(v reflect.Value, refs *RefMap) (reflect.Value, error)) {
	walkers.Set(t, walkerFunc(fn))
}

// walkerFor returns T's cached walker, synthesizing it on first use.
// Synthesis failures (spec §7) are never cached — walkers.LazySet only runs
// on success — so a later OverrideCopier or a retry after fixing the
// underlying constructor set can still succeed.
func walkerFor(t reflect.Type) (walkerFunc, error) {
	if w, ok := walkers.Get(t); ok {
		return w, nil
	}
	w, err := build(t)
	if err != nil {
		return nil, err
	}
	walkers.LazySet(t, w)
	w, _ = walkers.Get(t)
	slog.Debug("copy walker synthesized", "type", t.String())
	return w, nil
}

// addressable rehomes a struct or array value that was reached through a
// path reflect never makes addressable (a map value, or the argument passed
// directly to Copy) into a fresh, addressable holder of the same type.
// Struct/array kinds carry no pointer identity (see identity in refmap.go), so
// this substitution happens before any refs bookkeeping and cannot affect
// sharing/cycle resolution — only pointer/map/slice/chan values need to
// preserve their original reflect.Value for identity purposes, and none of
// those kinds reach this function.
func addressable(v reflect.Value) reflect.Value {
	if v.CanAddr() {
		return v
	}
	holder := reflect.New(v.Type()).Elem()
	holder.Set(unsafefield.Readable(v))
	return holder
}

func build(t reflect.Type) (walkerFunc, error) {
	if t.Implements(selfCopierType) || reflect.PointerTo(t).Implements(selfCopierType) {
		return selfCopyWalker, nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		return pointerWalker(t), nil
	case reflect.Array:
		return arrayWalker(t), nil
	case reflect.Func:
		return funcWalker(t), nil
	case reflect.Slice:
		return sliceWalker(t), nil
	case reflect.Map:
		return mapWalker(t), nil
	case reflect.Struct:
		return structWalker(t)
	default:
		return func(v reflect.Value, _ *RefMap) (reflect.Value, error) { return v, nil }, nil
	}
}

func selfCopyWalker(v reflect.Value, refs *RefMap) (reflect.Value, error) {
	var sc SelfCopier
	if v.Kind() == reflect.Pointer || v.Type().Implements(selfCopierType) {
		sc = v.Interface().(SelfCopier)
	} else {
		ptr := reflect.New(v.Type())
		ptr.Elem().Set(v)
		sc = ptr.Interface().(SelfCopier)
	}
	result := sc.Copy(refs)
	rv := reflect.ValueOf(result)
	if rv.Type() != v.Type() && rv.Kind() == reflect.Pointer && rv.Type().Elem() == v.Type() {
		rv = rv.Elem()
	}
	return rv, nil
}

func pointerWalker(t reflect.Type) walkerFunc {
	elemType := t.Elem()
	return func(v reflect.Value, refs *RefMap) (reflect.Value, error) {
		y := reflect.New(elemType)
		refs.Set(v, y)
		elemCopy, err := CopyValue(unsafefield.Readable(v.Elem()), refs)
		if err != nil {
			return reflect.Value{}, err
		}
		y.Elem().Set(elemCopy)
		return y, nil
	}
}

func funcWalker(t reflect.Type) walkerFunc {
	// A closure's captured variables cannot be introspected in Go, so the
	// "copied capture" reachable through reflect is the same closure value
	// wrapped in a fresh func of the same type (Open Question resolution,
	// see DESIGN.md) — this preserves call behavior without claiming to
	// deep-copy captures that are invisible to reflect.
	return func(v reflect.Value, _ *RefMap) (reflect.Value, error) {
		original := v
		return reflect.MakeFunc(t, func(args []reflect.Value) []reflect.Value {
			return original.Call(args)
		}), nil
	}
}
