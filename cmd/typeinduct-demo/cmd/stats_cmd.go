package cmd

import (
	"fmt"
	"reflect"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Warm up the derivation caches for the demo types and report the memory cost",
	Run: func(cmd *cobra.Command, args []string) {
		s := engine.WarmUp(
			reflect.TypeOf(Node{}),
			reflect.TypeOf(PairA{}),
			reflect.TypeOf(PairB{}),
			reflect.TypeOf(Money{}),
			reflect.TypeOf(Wallet{}),
		)
		fmt.Printf("heap before: %d bytes, after: %d bytes (delta %d)\n",
			s.HeapBytesBefore, s.HeapBytesAfter, int64(s.HeapBytesAfter)-int64(s.HeapBytesBefore))
		fmt.Printf("resident set size: %d bytes\n", s.RSSBytes)
	},
}
