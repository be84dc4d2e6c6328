package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablor21/typeinduct"
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Deep-copy a self-referential Node and show the cycle is preserved on the copy",
	Run: func(cmd *cobra.Command, args []string) {
		n := &Node{Value: 7}
		n.Next = n

		c, err := typeinduct.Copy(n)
		if err != nil {
			fmt.Println("copy failed:", err)
			return
		}

		fmt.Printf("original: %p, copy: %p (distinct: %v)\n", n, c, n != c)
		fmt.Printf("copy.Next == copy: %v (cycle closed on the copy)\n", c.Next == c)

		m := Money{Cents: 500, Currency: "USD"}
		mc, err := typeinduct.Copy(m)
		if err != nil {
			fmt.Println("copy failed:", err)
			return
		}
		fmt.Printf("Money is Immutable, so Copy returns the same value: %v\n", mc == m)

		w := newWallet("acct-1")
		w.Balance = m
		wc, err := typeinduct.Copy(w)
		if err != nil {
			fmt.Println("copy failed:", err)
			return
		}
		fmt.Printf("Wallet copy threaded through its constructor: ID %q -> %q, Balance %v -> %v\n",
			w.ID, wc.ID, w.Balance, wc.Balance)
	},
}
