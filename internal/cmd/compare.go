package cmd

import (
	"fmt"
	"log"

	"github.com/dendrascience/baum/tree"
	"github.com/dendrascience/baum/util"
	"github.com/spf13/cobra"
)

// NewCompareCmd creates and returns the compare subcommand for the baum CLI.
// It reports the cost of every construction strategy for a directory.
func NewCompareCmd() *cobra.Command {
	var (
		opts       = util.DefaultOptions()
		exactLimit int
	)

	cmd := &cobra.Command{
		Use:   "compare DIR",
		Short: "Compare the cost of the construction strategies",
		Long: `Compute the total access cost of DIR for every way of building the tree:

  flat    all entries stay in DIR
  ratio   the ratio heuristic on every level
  hybrid  the ratio heuristic above --threshold entries, exact search below
  exact   exact search on the whole directory (only up to --exact-limit entries)`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			runCompare(args[0], opts, exactLimit)
		},
	}

	bindOptions(cmd.Flags(), &opts)
	cmd.Flags().IntVar(&exactLimit, "exact-limit", 16, "Largest directory to solve exactly")

	return cmd
}

type strategyCost struct {
	name string
	cost float64
	size int
}

func runCompare(dir string, opts util.Options, exactLimit int) {
	_, items, err := loadSequence(dir, opts)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", dir, err)
	}

	costs, err := compareStrategies(tree.Weights(items), opts.Tree(), exactLimit)
	if err != nil {
		log.Fatalf("Failed to compare strategies: %v", err)
	}

	fmt.Printf("%d entries, access %s, branching %d\n", len(items), opts.Access, opts.Branching)
	for _, c := range costs {
		if c.size > 0 {
			fmt.Printf("  %-7s %12g  (%d signatures)\n", c.name, c.cost, c.size)
		} else {
			fmt.Printf("  %-7s %12g\n", c.name, c.cost)
		}
	}
}

// compareStrategies evaluates weights with every strategy. The exact search
// is skipped for sequences longer than exactLimit.
func compareStrategies(weights []float64, o tree.Options, exactLimit int) ([]strategyCost, error) {
	flat, err := tree.AccessCosts(len(weights), o.Policy)
	if err != nil {
		return nil, err
	}
	flatCost := 0.0
	if len(weights) > 1 {
		for i, w := range weights {
			flatCost += flat[i] * w
		}
	}
	out := []strategyCost{{name: "flat", cost: flatCost}}

	ratioOpts := o
	ratioOpts.Threshold = 0
	for _, s := range []struct {
		name string
		opts tree.Options
	}{{"ratio", ratioOpts}, {"hybrid", o}} {
		plan, err := tree.Build(weights, s.opts)
		if err != nil {
			return nil, err
		}
		cost, err := tree.Evaluate(weights, plan.Table, o.Policy)
		if err != nil {
			return nil, err
		}
		out = append(out, strategyCost{name: s.name, cost: cost, size: plan.Table.Len()})
	}

	if len(weights) <= exactLimit {
		table := tree.NewTable()
		res, err := tree.Solve(weights, o.Policy, o.MaxBranching, table)
		if err != nil {
			return nil, err
		}
		out = append(out, strategyCost{name: "exact", cost: res.Cost, size: table.Len()})
	}
	return out, nil
}
