package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablor21/typeinduct"
)

var equalsCmd = &cobra.Command{
	Use:   "equals",
	Short: "Compare two mutually recursive graphs of identical shape, before and after changing one leaf",
	Run: func(cmd *cobra.Command, args []string) {
		a1 := &PairA{Name: "a"}
		b1 := &PairB{Name: "b"}
		a1.B = b1
		b1.A = a1

		a2 := &PairA{Name: "a"}
		b2 := &PairB{Name: "b"}
		a2.B = b2
		b2.A = a2

		fmt.Printf("identical-shape graphs equal: %v\n", typeinduct.StructuralEquals(a1, a2))

		b2.Name = "different"
		fmt.Printf("after changing one leaf, equal: %v\n", typeinduct.StructuralEquals(a1, a2))

		hash, err := typeinduct.DefaultHash(Money{Cents: 500, Currency: "USD"})
		if err != nil {
			fmt.Println("hash failed:", err)
			return
		}
		fmt.Printf("DefaultHash(Money{500, USD}) = %d\n", hash)
	},
}
