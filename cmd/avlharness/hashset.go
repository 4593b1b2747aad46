package main

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	Go_Utils "github.com/g-m-twostay/go-avl"
	"github.com/g-m-twostay/go-avl/Sets/HashSet"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890"

// randomString of n characters from charset.
func randomString(rng *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)

	for range n {
		sb.WriteByte(charset[rng.Intn(len(charset))])
	}

	return sb.String()
}

// populate a HashSet with cfg.Strings random strings. Returns the set and the first string put.
func populate(cfg HashSetConfig, seed int64) (*HashSet.HashSet[string], string) {
	rng := rand.New(rand.NewSource(seed))
	set := HashSet.New[string](cfg.Buckets, Go_Utils.Hasher(seed))

	var first string

	for i := range cfg.Strings {
		s := randomString(rng, cfg.StringLen)
		if i == 0 {
			first = s
		}

		set.Put(s)
	}

	return set, first
}

// bucketOf returns the index of the bucket holding s, -1 if s isn't in set.
func bucketOf(set *HashSet.HashSet[string], s string) int {
	for i := range set.Bins() {
		if set.Bucket(i).Has(s) {
			return i
		}
	}

	return -1
}

// renderBins writes one row per bucket with its element count and tree height.
func renderBins(w io.Writer, set *HashSet.HashSet[string]) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Bin", "Values", "Height", ""})

	used := 0

	for i, n := range set.Bins() {
		status := ""
		if n == 0 {
			status = "[UNUSED]"
		} else {
			used++
		}

		tbl.AppendRow(table.Row{i, humanize.Comma(int64(n)), set.Bucket(i).Height(), status})
	}

	tbl.AppendFooter(table.Row{"total", humanize.Comma(int64(set.Size())), "", fmt.Sprintf("%d used", used)})
	tbl.Render()
}

func newHashSetCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashset",
		Short: "Populate a hash set of random strings and print its buckets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg.HashSet
			out := cmd.OutOrStdout()

			a.logger.Info("populating hash set", "strings", cfg.Strings, "buckets", cfg.Buckets, "seed", a.cfg.Seed)

			set, first := populate(cfg, a.cfg.Seed)

			err := set.Check()
			if err != nil {
				color.New(color.FgRed).Fprintf(out, "FAIL %v\n", err)

				return fmt.Errorf("hashset: %w", err)
			}

			if a.cfg.Verbose && first != "" {
				i := bucketOf(set, first)
				a.logger.Debug("bucket of the first string", "string", first, "bucket", i)

				if set.Bucket(i).Size() <= 32 {
					set.Bucket(i).Print(out)
				}
			}

			renderBins(out, set)
			color.New(color.FgGreen).Fprintf(out, "PASS\n")

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Uint("buckets", DefaultBuckets, "number of buckets")
	flags.Int("strings", DefaultStrings, "number of random strings to put")
	flags.Int("string-len", DefaultStringLen, "length of every string")
	mustBind(a.v, "hashset.buckets", flags, "buckets")
	mustBind(a.v, "hashset.strings", flags, "strings")
	mustBind(a.v, "hashset.string_len", flags, "string-len")

	return cmd
}
