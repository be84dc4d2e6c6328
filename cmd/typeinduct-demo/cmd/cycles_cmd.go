package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablor21/typeinduct"
)

var cyclesCmd = &cobra.Command{
	Use:   "cycles",
	Short: "Report whether the demo types' field graphs can revisit themselves",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Node:  %s\n", typeinduct.Cycles[Node]())
		fmt.Printf("PairA: %s\n", typeinduct.Cycles[PairA]())
		fmt.Printf("Money: %s\n", typeinduct.Cycles[Money]())
	},
}
