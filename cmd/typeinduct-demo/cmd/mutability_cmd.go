package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablor21/typeinduct"
)

var mutabilityCmd = &cobra.Command{
	Use:   "mutability",
	Short: "Classify the demo types as Immutable, Maybe, or Mutable",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Node:    %s\n", typeinduct.Mutability[Node]())
		fmt.Printf("PairA:   %s\n", typeinduct.Mutability[PairA]())
		fmt.Printf("Money:   %s\n", typeinduct.Mutability[Money]())
		fmt.Printf("Wallet:  %s\n", typeinduct.Mutability[Wallet]())

		n := &Node{Value: 1}
		fmt.Printf("IsMutable(&Node{Value: 1}) = %v\n", typeinduct.IsMutable(n))
	},
}
