package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/emirpasic/gods/trees/avltree"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-avl/Trees"
)

// ErrShadowMismatch is returned when the tree and the reference tree disagree.
var ErrShadowMismatch = errors.New("tree disagrees with the reference tree")

// progressEvery is how many operations pass between debug progress logs.
const progressEvery = 10000

// stressResult counts what a stress run did.
type stressResult struct {
	Inserts, Duplicates int
	Removes, Absent     int
	Checks              int
	Size                uint
	Height, MaxHeight   uint
	Elapsed             time.Duration
}

// runStress applies cfg.Ops random inserts and removes with keys in [0, cfg.KeyRange) to
// an AVLTree and to a gods avltree, checking the AVLTree every cfg.CheckEvery operations
// (never when 0) and comparing both trees at the end.
func runStress(cfg StressConfig, seed int64, logger *slog.Logger) (stressResult, error) {
	var res stressResult

	rng := rand.New(rand.NewSource(seed))
	tree := Trees.MakeAVLTree[int]()
	shadow := avltree.NewWithIntComparator()
	start := time.Now()

	for i := 1; i <= cfg.Ops; i++ {
		key := rng.Intn(cfg.KeyRange)

		if rng.Intn(2) == 0 {
			res.Inserts++

			_, had := shadow.Get(key)
			shadow.Put(key, struct{}{})

			if tree.Insert(key) == had {
				return res, fmt.Errorf("%w: insert %d at op %d", ErrShadowMismatch, key, i)
			}

			if had {
				res.Duplicates++
			}
		} else {
			res.Removes++

			_, had := shadow.Get(key)
			shadow.Remove(key)

			if tree.Remove(key) != had {
				return res, fmt.Errorf("%w: remove %d at op %d", ErrShadowMismatch, key, i)
			}

			if !had {
				res.Absent++
			}
		}

		if cfg.CheckEvery > 0 && i%cfg.CheckEvery == 0 {
			res.Checks++

			err := tree.Check()
			if err != nil {
				return res, fmt.Errorf("op %d: %w", i, err)
			}
		}

		res.MaxHeight = max(res.MaxHeight, tree.Height())

		if i%progressEvery == 0 {
			logger.Debug("stress progress", "ops", i, "size", tree.Size(), "height", tree.Height())
		}
	}

	res.Elapsed = time.Since(start)
	res.Size = tree.Size()
	res.Height = tree.Height()

	if int(tree.Size()) != shadow.Size() {
		return res, fmt.Errorf("%w: size %d, want %d", ErrShadowMismatch, tree.Size(), shadow.Size())
	}

	want := shadow.Keys()
	idx := 0
	mismatch := false

	tree.InOrder(func(k int) bool {
		if want[idx].(int) != k {
			mismatch = true

			return false
		}

		idx++

		return true
	})

	if mismatch {
		return res, fmt.Errorf("%w: in-order keys differ at index %d", ErrShadowMismatch, idx)
	}

	return res, nil
}

func renderStress(w io.Writer, cfg StressConfig, res stressResult) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Metric", "Value"})
	tbl.AppendRows([]table.Row{
		{"operations", humanize.Comma(int64(cfg.Ops))},
		{"key range", humanize.Comma(int64(cfg.KeyRange))},
		{"inserts", humanize.Comma(int64(res.Inserts))},
		{"duplicate inserts", humanize.Comma(int64(res.Duplicates))},
		{"removes", humanize.Comma(int64(res.Removes))},
		{"absent removes", humanize.Comma(int64(res.Absent))},
		{"invariant checks", humanize.Comma(int64(res.Checks))},
		{"final size", humanize.Comma(int64(res.Size))},
		{"final height", res.Height},
		{"max height", res.MaxHeight},
		{"elapsed", res.Elapsed.Round(time.Microsecond).String()},
	})
	tbl.Render()
}

func newStressCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Random inserts and removes checked against a reference tree",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.Stress
			a.logger.Info("stress run", "ops", cfg.Ops, "key_range", cfg.KeyRange, "seed", a.cfg.Seed)

			res, err := runStress(cfg, a.cfg.Seed, a.logger)
			if err != nil {
				color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "FAIL %v\n", err)

				return fmt.Errorf("stress: %w", err)
			}

			renderStress(cmd.OutOrStdout(), cfg, res)
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "PASS\n")

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("ops", DefaultStressOps, "number of random operations")
	flags.Int("key-range", DefaultStressRange, "keys are drawn from [0, key-range)")
	flags.Int("check-every", DefaultCheckEvery, "check the invariants every n operations, 0 to only compare at the end")
	mustBind(a.v, "stress.ops", flags, "ops")
	mustBind(a.v, "stress.key_range", flags, "key-range")
	mustBind(a.v, "stress.check_every", flags, "check-every")

	return cmd
}
