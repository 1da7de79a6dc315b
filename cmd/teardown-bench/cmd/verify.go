/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"

	"github.com/ssargent/teardowntree/pkg/rangetree"
	"github.com/ssargent/teardowntree/pkg/treecore"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run a small self-check that the bulk-delete invariants hold",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd)
		runID := ksuid.New()

		n := cfg.TreeSize
		if n > 10_000 {
			n = 10_000 // keep the self-check fast regardless of the configured tree size
		}
		items := make([]rangetree.Entry[int, int], n)
		for i := 0; i < n; i++ {
			items[i] = rangetree.Entry[int, int]{Key: i, Val: i}
		}
		tree := rangetree.New(items)

		lo, hi := n/4, n/4+n/10+1
		var sink treecore.SliceSink[rangetree.Entry[int, int]]
		removed := tree.DeleteRange(lo, hi, &sink)

		if removed != len(sink.Items) {
			return fmt.Errorf("run %s: removed count %d disagrees with sink length %d", runID, removed, len(sink.Items))
		}
		for i, e := range sink.Items {
			if e.Key != lo+i {
				return fmt.Errorf("run %s: sink out of order at position %d: got %d, want %d", runID, i, e.Key, lo+i)
			}
		}
		if tree.Size() != n-removed {
			return fmt.Errorf("run %s: tree size %d disagrees with expected %d", runID, tree.Size(), n-removed)
		}
		for k := lo; k < hi; k++ {
			if tree.Contains(k) {
				return fmt.Errorf("run %s: key %d should have been deleted", runID, k)
			}
		}

		log.Printf("run %s: verify OK (n=%d, removed=%d)", runID, n, removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
