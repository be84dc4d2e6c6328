package typeinduct

import (
	"errors"
	"reflect"
	"testing"

	"github.com/pablor21/typeinduct/cycles"
	"github.com/pablor21/typeinduct/introspect"
	"github.com/pablor21/typeinduct/mutability"
)

type apiSelfNode struct {
	Value int
	Next  *apiSelfNode
}

func TestMutabilityAndCyclesOnSelfReferentialType(t *testing.T) {
	if got := Mutability[apiSelfNode](); got != mutability.Mutable {
		t.Errorf("got %s, want Mutable", got)
	}
	if got := Cycles[apiSelfNode](); got != cycles.HasCycles {
		t.Errorf("got %s, want HasCycles", got)
	}
	n := &apiSelfNode{Value: 1}
	n.Next = n
	if !IsMutable(n) {
		t.Error("IsMutable should be true for an exported-field struct")
	}
}

func TestCopyPreservesSelfReferentialCycle(t *testing.T) {
	n := &apiSelfNode{Value: 3}
	n.Next = n

	c, err := Copy(n)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if c == n {
		t.Fatal("expected a distinct pointer")
	}
	if c.Next != c {
		t.Fatal("cycle was not closed on the copy")
	}
}

type apiPoint struct {
	X, Y int
}

func TestStructuralEqualsOnStructs(t *testing.T) {
	if !StructuralEquals(apiPoint{1, 2}, apiPoint{1, 2}) {
		t.Error("identical points should be equal")
	}
	if StructuralEquals(apiPoint{1, 2}, apiPoint{1, 3}) {
		t.Error("differing points should not be equal")
	}
}

type apiUnbindable struct {
	X int `induct:"readonly"`
	Y int
}

func TestCopyReturnsErrNoBindableConstructor(t *testing.T) {
	_, err := Copy(apiUnbindable{X: 1, Y: 2})
	if !errors.Is(err, ErrNoBindableConstructor) {
		t.Fatalf("got %v, want ErrNoBindableConstructor", err)
	}
}

type apiBound struct {
	ID   string `induct:"readonly"`
	Note string
}

func TestOverrideCreateBindsConstructorForCopy(t *testing.T) {
	OverrideCreate[apiBound](
		[]introspect.Param{{Name: "ID", Type: reflect.TypeOf("")}},
		func(args []reflect.Value) apiBound { return apiBound{ID: args[0].String()} },
	)

	src := apiBound{ID: "abc", Note: "hello"}
	out, err := Copy(src)
	if err != nil {
		t.Fatalf("Copy: %v", err)
	}
	if out != src {
		t.Fatalf("got %+v, want %+v", out, src)
	}
}

func TestDefaultHashAndEqualsAreConsistent(t *testing.T) {
	a := apiPoint{1, 2}
	b := apiPoint{1, 2}
	if !DefaultEquals(a, b) {
		t.Error("equal points should compare equal")
	}
	ha, err := DefaultHash(a)
	if err != nil {
		t.Fatalf("DefaultHash: %v", err)
	}
	hb, err := DefaultHash(b)
	if err != nil {
		t.Fatalf("DefaultHash: %v", err)
	}
	if ha != hb {
		t.Errorf("equal values hashed differently: %d vs %d", ha, hb)
	}
}
