// Package equality derives, per reflect.Type, a structural-equality
// predicate that terminates on cyclic object graphs by recording visited
// pairs, closed under swap, for the duration of one top-level
// StructuralEquals call (spec §4.E).
package equality

import (
	"reflect"
	"sync"
)

// visitKey identifies one ordered pair of reference values compared during
// a single StructuralEquals call, grounded on
// other_examples/brunoga-deep__equal.go's visitKey{ptrA, ptrB, type}.
type visitKey struct {
	a, b uintptr
	t    reflect.Type
}

// VisitedSet is the visited-pair set threaded through one top-level
// StructuralEquals call (spec §4.E "Add (a,b) to visited... Symmetrically,
// add (b,a)").
type VisitedSet struct {
	seen map[visitKey]bool
}

var visitedPool = sync.Pool{
	New: func() any { return &VisitedSet{seen: make(map[visitKey]bool)} },
}

func newVisitedSet() *VisitedSet {
	return visitedPool.Get().(*VisitedSet)
}

func releaseVisitedSet(s *VisitedSet) {
	for k := range s.seen {
		delete(s.seen, k)
	}
	visitedPool.Put(s)
}

// Seen reports whether (a,b) was already recorded, and records it (and its
// swap (b,a)) if not — the single check-and-add operation the recursive
// walk needs at every reference-typed node.
func (s *VisitedSet) Seen(a, b reflect.Value, t reflect.Type) bool {
	k1 := visitKey{a.Pointer(), b.Pointer(), t}
	if s.seen[k1] {
		return true
	}
	s.seen[k1] = true
	s.seen[visitKey{b.Pointer(), a.Pointer(), t}] = true
	return false
}
