/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/ssargent/teardowntree/internal/benchconfig"
	"github.com/ssargent/teardowntree/internal/benchmetrics"
	"github.com/ssargent/teardowntree/pkg/intervaltree"
	"github.com/ssargent/teardowntree/pkg/rangetree"
	"github.com/ssargent/teardowntree/pkg/treecore"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a sequence of build/tear-down/refill cycles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd)
		runID := ksuid.New()
		log.Printf("teardown-bench run %s starting: tree_size=%d cycles=%d workload=%s",
			runID, cfg.TreeSize, cfg.Cycles, cfg.Workload.Kind)

		var metrics *benchmetrics.Metrics
		if cfg.Metrics.Enabled {
			metrics = benchmetrics.NewMetrics()
		}

		switch cfg.Workload.Kind {
		case "overlap":
			runOverlapCycles(cfg, metrics, runID)
		default:
			runRangeCycles(cfg, metrics, runID)
		}

		if metrics != nil {
			if err := metrics.WriteText(os.Stdout); err != nil {
				log.Printf("run %s: failed to write metrics: %v", runID, err)
			}
		}

		log.Printf("teardown-bench run %s complete", runID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRangeCycles(cfg *benchconfig.Config, metrics *benchmetrics.Metrics, runID ksuid.KSUID) {
	items := make([]rangetree.Entry[int, int], cfg.TreeSize)
	for i := 0; i < cfg.TreeSize; i++ {
		items[i] = rangetree.Entry[int, int]{Key: i, Val: i}
	}
	master := rangetree.New(items)
	working := master.Clone()
	rng := rand.New(rand.NewSource(cfg.Workload.RandomSeed))

	for cycle := 0; cycle < cfg.Cycles; cycle++ {
		start := time.Now()
		deleted := 0
		for b := 0; b < cfg.Workload.BulkCount; b++ {
			lo := rng.Intn(cfg.TreeSize)
			hi := lo + cfg.Workload.BulkSize
			deleted += working.DeleteRange(lo, hi, &treecore.DiscardSink[rangetree.Entry[int, int]]{})
		}
		if metrics != nil {
			metrics.RecordDeletions(deleted)
			metrics.UpdateTreeSize(working.Size())
		}

		if err := working.Refill(master); err != nil {
			log.Printf("run %s cycle %d: refill failed: %v", runID, cycle, err)
			if metrics != nil {
				metrics.RecordCycle(false, time.Since(start))
				metrics.RecordRefill(false)
			}
			continue
		}
		if metrics != nil {
			metrics.RecordRefill(true)
			metrics.RecordCycle(true, time.Since(start))
		}
		log.Printf("run %s cycle %d: deleted=%d duration=%s", runID, cycle, deleted, time.Since(start))
	}
}

func runOverlapCycles(cfg *benchconfig.Config, metrics *benchmetrics.Metrics, runID ksuid.KSUID) {
	items := make([]intervaltree.Entry[int, int], cfg.TreeSize)
	for i := 0; i < cfg.TreeSize; i++ {
		items[i] = intervaltree.Entry[int, int]{Key: intervaltree.Interval[int]{A: i * 10, B: i*10 + 5}, Val: i}
	}
	master := intervaltree.New(items)
	working := master.Clone()
	rng := rand.New(rand.NewSource(cfg.Workload.RandomSeed))
	span := cfg.TreeSize * 10

	for cycle := 0; cycle < cfg.Cycles; cycle++ {
		start := time.Now()
		deleted := 0
		for b := 0; b < cfg.Workload.BulkCount; b++ {
			a := rng.Intn(span)
			query := intervaltree.Interval[int]{A: a, B: a + cfg.Workload.BulkSize}
			deleted += working.DeleteOverlap(query, &treecore.DiscardSink[intervaltree.Entry[int, int]]{})
		}
		if metrics != nil {
			metrics.RecordDeletions(deleted)
			metrics.UpdateTreeSize(working.Size())
		}

		if err := working.Refill(master); err != nil {
			log.Printf("run %s cycle %d: refill failed: %v", runID, cycle, err)
			if metrics != nil {
				metrics.RecordCycle(false, time.Since(start))
				metrics.RecordRefill(false)
			}
			continue
		}
		if metrics != nil {
			metrics.RecordRefill(true)
			metrics.RecordCycle(true, time.Since(start))
		}
		log.Printf("run %s cycle %d: deleted=%d duration=%s", runID, cycle, deleted, time.Since(start))
	}
}
