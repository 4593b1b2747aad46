package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/g-m-twostay/go-avl/Trees"
)

// ErrScenarioMismatch is returned when a scenario doesn't end in the expected shape.
var ErrScenarioMismatch = errors.New("scenario mismatch")

// nodeWant is the expected state of one node after a scenario.
type nodeWant struct {
	key    int
	bf     int8
	parent int // key of the parent, unused when isRoot.
	isRoot bool
}

type scenario struct {
	name    string
	about   string
	inserts []int
	removes []int
	want    []nodeWant
}

var scenarios = []scenario{
	{
		name:    "A",
		about:   "successor is the right child, then a single right rotation",
		inserts: []int{9, 7, 12, 5},
		removes: []int{9},
		want: []nodeWant{
			{key: 7, isRoot: true},
			{key: 5, parent: 7},
			{key: 12, parent: 7},
		},
	},
	{
		name:    "B",
		about:   "leaf removal, a right rotation then a right-left double rotation at the root",
		inserts: []int{50, 30, 60, 20, 35, 55, 70, 15, 52, 58, 77, 57},
		removes: []int{35},
		want: []nodeWant{
			{key: 55, isRoot: true},
			{key: 50, bf: -1, parent: 55},
			{key: 60, parent: 55},
			{key: 58, bf: -1, parent: 60},
			{key: 70, bf: 1, parent: 60},
		},
	},
	{
		name:    "C",
		about:   "single left rotation on insert",
		inserts: []int{50, 60, 70},
		want: []nodeWant{
			{key: 60, isRoot: true},
			{key: 50, parent: 60},
			{key: 70, parent: 60},
		},
	},
	{
		name:    "D",
		about:   "successor replacement followed by a rebalancing rotation",
		inserts: []int{9, 5, 12, -5, 7, 10, -10},
		removes: []int{9},
		want: []nodeWant{
			{key: 5, isRoot: true},
			{key: -5, bf: -1, parent: 5},
			{key: 10, parent: 5},
		},
	},
}

// run builds the scenario, draws the tree to w and compares it with the expectation.
func (s scenario) run(w io.Writer) (*Trees.AVLTree[int], error) {
	tree := Trees.MakeAVLTree[int]()
	for _, k := range s.inserts {
		tree.Insert(k)
	}
	for _, k := range s.removes {
		tree.Remove(k)
	}

	tree.Print(w)

	err := tree.Check()
	if err != nil {
		return tree, fmt.Errorf("scenario %s: %w", s.name, err)
	}

	for _, nw := range s.want {
		n := tree.Search(nw.key)

		switch {
		case n == nil:
			return tree, fmt.Errorf("%w: scenario %s: key %d missing", ErrScenarioMismatch, s.name, nw.key)
		case n.Bf() != nw.bf:
			return tree, fmt.Errorf("%w: scenario %s: key %d has bf %d, want %d", ErrScenarioMismatch, s.name, nw.key, n.Bf(), nw.bf)
		case nw.isRoot && tree.Root() != n:
			return tree, fmt.Errorf("%w: scenario %s: root is %d, want %d", ErrScenarioMismatch, s.name, tree.Root().Key(), nw.key)
		case !nw.isRoot && (n.Parent() == nil || n.Parent().Key() != nw.parent):
			return tree, fmt.Errorf("%w: scenario %s: key %d has the wrong parent, want %d", ErrScenarioMismatch, s.name, nw.key, nw.parent)
		}
	}

	return tree, nil
}

func findScenarios(names []string) ([]scenario, error) {
	if len(names) == 0 || (len(names) == 1 && strings.EqualFold(names[0], "all")) {
		return scenarios, nil
	}

	picked := make([]scenario, 0, len(names))

	for _, name := range names {
		found := false

		for _, s := range scenarios {
			if strings.EqualFold(s.name, name) {
				picked = append(picked, s)
				found = true

				break
			}
		}

		if !found {
			return nil, fmt.Errorf("unknown scenario %q", name)
		}
	}

	return picked, nil
}

func newScenarioCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:       "scenario [A|B|C|D|all]...",
		Short:     "Build the reference scenarios and verify their shapes",
		ValidArgs: []string{"A", "B", "C", "D", "all"},
		RunE: func(cmd *cobra.Command, args []string) error {
			picked, err := findScenarios(args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := 0

			for _, s := range picked {
				color.New(color.Bold).Fprintf(out, "Scenario %s: %s\n", s.name, s.about)
				fmt.Fprintf(out, "insert %v, remove %v\n", s.inserts, s.removes)

				_, runErr := s.run(out)
				if runErr != nil {
					failed++

					color.New(color.FgRed).Fprintf(out, "FAIL %v\n\n", runErr)
					a.logger.Error("scenario failed", "scenario", s.name, "error", runErr)

					continue
				}

				color.New(color.FgGreen).Fprintf(out, "PASS\n\n")
				a.logger.Debug("scenario passed", "scenario", s.name)
			}

			if failed > 0 {
				return fmt.Errorf("%w: %d of %d scenarios failed", ErrScenarioMismatch, failed, len(picked))
			}

			return nil
		},
	}
}
