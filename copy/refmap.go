package copy

import (
	"reflect"
	"sync"
)

// RefMap is the identity-keyed mapping from an original reference to its
// in-progress or finished copy, live for the duration of one top-level Copy
// call (spec §3 "Reference map"). It is deliberately not safe for
// concurrent use — spec §5 scopes it to a single call on a single
// goroutine.
type RefMap struct {
	seen map[uintptr]reflect.Value
}

var refMapPool = sync.Pool{
	New: func() any { return &RefMap{seen: make(map[uintptr]reflect.Value)} },
}

func newRefMap() *RefMap {
	return refMapPool.Get().(*RefMap)
}

func releaseRefMap(r *RefMap) {
	for k := range r.seen {
		delete(r.seen, k)
	}
	refMapPool.Put(r)
}

// identity returns the pointer identity of v, if v's kind carries one.
func identity(v reflect.Value) (uintptr, bool) {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.UnsafePointer:
		if v.IsNil() {
			return 0, false
		}
		return v.Pointer(), true
	default:
		return 0, false
	}
}

// Get returns the copy already recorded for v's identity, if any.
func (r *RefMap) Get(v reflect.Value) (reflect.Value, bool) {
	id, ok := identity(v)
	if !ok {
		return reflect.Value{}, false
	}
	got, ok := r.seen[id]
	return got, ok
}

// Set records copyOf as the copy for v's identity — must be called before
// recursing into v's children so that a child→parent back-reference
// resolves to the same in-progress copy (spec §4.D step 6).
func (r *RefMap) Set(v, copyOf reflect.Value) {
	id, ok := identity(v)
	if !ok {
		return
	}
	r.seen[id] = copyOf
}
