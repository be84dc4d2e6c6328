package equality

import (
	"reflect"
	"testing"
)

func mustEqual(t *testing.T, a, b any) bool {
	t.Helper()
	return Equal(reflect.ValueOf(a), reflect.ValueOf(b))
}

func TestPrimitivesCompareByValue(t *testing.T) {
	if !mustEqual(t, 1, 1) {
		t.Error("1 should equal 1")
	}
	if mustEqual(t, 1, 2) {
		t.Error("1 should not equal 2")
	}
	if !mustEqual(t, "a", "a") {
		t.Error(`"a" should equal "a"`)
	}
}

type eqPoint struct {
	X, Y int
}

func TestStructsCompareFieldByField(t *testing.T) {
	if !mustEqual(t, eqPoint{1, 2}, eqPoint{1, 2}) {
		t.Error("identical structs should be equal")
	}
	if mustEqual(t, eqPoint{1, 2}, eqPoint{1, 3}) {
		t.Error("structs differing in one field should not be equal")
	}
}

func TestArraysCompareElementwise(t *testing.T) {
	a := [3]int{1, 2, 3}
	b := [3]int{1, 2, 3}
	c := [3]int{1, 2, 4}
	if !mustEqual(t, a, b) {
		t.Error("identical arrays should be equal")
	}
	if mustEqual(t, a, c) {
		t.Error("arrays differing in one element should not be equal")
	}
}

type eqSelfNode struct {
	Value int
	Self  *eqSelfNode
}

func TestSelfReferentialCyclesOfIdenticalShapeAreEqual(t *testing.T) {
	a := &eqSelfNode{Value: 1}
	a.Self = a
	b := &eqSelfNode{Value: 1}
	b.Self = b

	if !mustEqual(t, a, b) {
		t.Error("two self-referential cycles of identical shape should be equal")
	}
}

func TestSelfReferentialCyclesDifferingInALeafAreUnequal(t *testing.T) {
	a := &eqSelfNode{Value: 1}
	a.Self = a
	b := &eqSelfNode{Value: 2}
	b.Self = b

	if mustEqual(t, a, b) {
		t.Error("cycles differing in a leaf value should not be equal")
	}
}

type eqMutualA struct {
	Name string
	B    *eqMutualB
}

type eqMutualB struct {
	Name string
	A    *eqMutualA
}

func TestMutuallyRecursiveGraphsOfIdenticalShapeAreEqual(t *testing.T) {
	a1 := &eqMutualA{Name: "a"}
	b1 := &eqMutualB{Name: "b"}
	a1.B = b1
	b1.A = a1

	a2 := &eqMutualA{Name: "a"}
	b2 := &eqMutualB{Name: "b"}
	a2.B = b2
	b2.A = a2

	if !mustEqual(t, a1, a2) {
		t.Error("two mutually recursive graphs of identical shape should be equal")
	}

	b2.Name = "different"
	if mustEqual(t, a1, a2) {
		t.Error("graphs differing in a leaf should not be equal")
	}
}

func TestNilPointersAreEqualOnlyToEachOther(t *testing.T) {
	var a, b *eqPoint
	if !mustEqual(t, a, b) {
		t.Error("two nil pointers should be equal")
	}
	c := &eqPoint{1, 2}
	if mustEqual(t, a, c) {
		t.Error("nil pointer should not equal a non-nil pointer")
	}
}

func TestReflexivity(t *testing.T) {
	p := &eqSelfNode{Value: 5}
	p.Self = p
	if !mustEqual(t, p, p) {
		t.Error("a value should equal itself")
	}
}

func TestSymmetry(t *testing.T) {
	a := eqPoint{1, 2}
	b := eqPoint{1, 2}
	if mustEqual(t, a, b) != mustEqual(t, b, a) {
		t.Error("equality should be symmetric")
	}
}

func TestDefaultHashIsConsistentWithEqualValues(t *testing.T) {
	a := eqPoint{1, 2}
	b := eqPoint{1, 2}
	ha, err := DefaultHash(reflect.ValueOf(a))
	if err != nil {
		t.Fatalf("DefaultHash(a): %v", err)
	}
	hb, err := DefaultHash(reflect.ValueOf(b))
	if err != nil {
		t.Fatalf("DefaultHash(b): %v", err)
	}
	if ha != hb {
		t.Errorf("equal values hashed differently: %d vs %d", ha, hb)
	}
}

type selfEqualPoint struct {
	X, Y  int
	extra string
}

func (p selfEqualPoint) Equal(other any) bool {
	o, ok := other.(selfEqualPoint)
	return ok && p.X == o.X && p.Y == o.Y
}

func TestDefaultEqualsPrefersSelfEqualMethod(t *testing.T) {
	a := selfEqualPoint{X: 1, Y: 2, extra: "a"}
	b := selfEqualPoint{X: 1, Y: 2, extra: "b"}
	if !DefaultEquals(reflect.ValueOf(a), reflect.ValueOf(b)) {
		t.Error("DefaultEquals should defer to the type's own Equal method, ignoring the unexported field it does not compare")
	}
}
