package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dendrascience/baum/tree"
)

// costeval prints the optimal tree cost for 1..N elements of equal weight
// next to the cost of the ratio heuristic, together with the sizes of the
// top-level parts of the optimal tree. Equal weights share signatures, so
// the exact search stays tractable far beyond the default threshold.

var (
	maxN      = flag.Int("N", 60, "Largest number of elements.")
	branching = flag.Int("b", 4, "Maximum branching factor.")
	exactMax  = flag.Int("x", 60, "Largest number of elements to solve exactly.")
	policy    = tree.Wrappable
)

func main() {
	flag.Var(&policy, "a", "Access cost model: wrappable, linear or constant.")
	flag.Parse()
	if *maxN < 1 || *branching < 2 {
		flag.CommandLine.Usage()
		os.Exit(2)
	}

	exact := tree.NewTable()
	fmt.Printf("%5s %12s %12s  %s\n", "n", "exact", "ratio", "parts")
	for n := 1; n <= *maxN; n++ {
		weights := make([]float64, n)
		for i := range weights {
			weights[i] = 1
		}

		plan, err := tree.Build(weights, tree.Options{Policy: policy, MaxBranching: *branching})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if n > *exactMax {
			fmt.Printf("%5d %12s %12g\n", n, "-", plan.Cost())
			continue
		}
		res, err := tree.Solve(weights, policy, *branching, exact)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cuts, _ := exact.Lookup(weights)
		fmt.Printf("%5d %12g %12g  %v\n", n, res.Cost, plan.Cost(), partSizes(cuts, n))
	}
}

func partSizes(cuts []int, n int) []int {
	sizes := make([]int, 0, len(cuts)+1)
	prev := 0
	for _, c := range cuts {
		sizes = append(sizes, c-prev)
		prev = c
	}
	return append(sizes, n-prev)
}
