package cycles

import (
	"reflect"
	"testing"
)

func TestPrimitivesHaveNoCycles(t *testing.T) {
	if got := Of(reflect.TypeOf(0)); got != NoCycles {
		t.Errorf("Of(int) = %v, want NoCycles", got)
	}
}

type flatLeaf struct {
	X int
	Y string
}

func TestAcyclicStructHasNoCycles(t *testing.T) {
	if got := Of(reflect.TypeOf(flatLeaf{})); got != NoCycles {
		t.Errorf("Of(flatLeaf) = %v, want NoCycles", got)
	}
}

type selfNode struct {
	Next *selfNode
}

func TestSelfReferentialStructHasCycles(t *testing.T) {
	if got := Of(reflect.TypeOf(selfNode{})); got != HasCycles {
		t.Errorf("Of(selfNode) = %v, want HasCycles", got)
	}
}

type mutualCycleA struct {
	B *mutualCycleB
}

type mutualCycleB struct {
	A *mutualCycleA
}

func TestMutuallyRecursiveStructsHaveCycles(t *testing.T) {
	if got := Of(reflect.TypeOf(mutualCycleA{})); got != HasCycles {
		t.Errorf("Of(mutualCycleA) = %v, want HasCycles", got)
	}
}

type treeNode struct {
	Children []treeNode
}

func TestSliceOfSelfHasCycles(t *testing.T) {
	if got := Of(reflect.TypeOf(treeNode{})); got != HasCycles {
		t.Errorf("Of(treeNode) = %v, want HasCycles", got)
	}
}

type wideAcyclic struct {
	A flatLeaf
	B *flatLeaf
	C []flatLeaf
	D map[string]flatLeaf
}

func TestWideAcyclicStructHasNoCycles(t *testing.T) {
	if got := Of(reflect.TypeOf(wideAcyclic{})); got != NoCycles {
		t.Errorf("Of(wideAcyclic) = %v, want NoCycles", got)
	}
}

type withInterfaceField struct {
	Payload any
}

func TestInterfaceFieldHasCyclesWhenTypeSatisfiesIt(t *testing.T) {
	// withInterfaceField satisfies `any` itself, so a Payload field of
	// interface type any is a supertype of the ancestor withInterfaceField
	// — a runtime instance could set Payload to itself.
	if got := Of(reflect.TypeOf(withInterfaceField{})); got != HasCycles {
		t.Errorf("Of(withInterfaceField) = %v, want HasCycles", got)
	}
}
