package cmd

import (
	"reflect"

	"github.com/pablor21/typeinduct"
	"github.com/pablor21/typeinduct/introspect"
)

// Node is a self-referential linked-list node (spec §8 scenario S4).
type Node struct {
	Value int
	Next  *Node
}

// PairA and PairB are mutually recursive (spec §8 scenario S5).
type PairA struct {
	Name string
	B    *PairB
}

type PairB struct {
	Name string
	A    *PairA
}

// Money is a fully read-only value type: every field is init-only, so it
// classifies Immutable outright and Copy returns it unchanged.
type Money struct {
	Cents    int64  `induct:"readonly"`
	Currency string `induct:"readonly"`
}

// Wallet mixes a read-only identity field with a mutable one, so it
// classifies Mutable and Copy must thread ID through a bound constructor
// while assigning Balance directly (spec §4.D "best-fit constructor
// selection").
type Wallet struct {
	ID      string `induct:"readonly"`
	Balance Money
}

func newWallet(id string) Wallet {
	return Wallet{ID: id}
}

func init() {
	typeinduct.OverrideCreate[Wallet](
		[]introspect.Param{{Name: "ID", Type: reflect.TypeOf("")}},
		func(args []reflect.Value) Wallet {
			return newWallet(args[0].String())
		},
	)
}
