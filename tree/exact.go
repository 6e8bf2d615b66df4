package tree

import (
	"fmt"
	"math"
	"slices"
)

// Result is the outcome of optimizing one weighted sequence.
type Result struct {
	Cost   float64 // access cost of the whole subtree, excluding reaching its root
	Weight float64 // total weight of the sequence
}

// Solve finds the grouping of weights with minimal total cost by trying every
// composition into 2..maxBranching contiguous parts, recursively.
//
// The cost of a composition is the sum of its parts' own costs plus, for
// every part, its access cost times its weight. Parts of a single element
// cost nothing on their own. On an exact tie the composition with more cuts
// wins, so the branching factor is not left under-used.
//
// Split positions and costs for every visited signature are recorded in
// table, which doubles as the memoization cache. The running time is
// exponential in len(weights); only call Solve for short sequences.
func Solve(weights []float64, p Policy, maxBranching int, table *Table) (Result, error) {
	if err := checkWeights(weights); err != nil {
		return Result{}, err
	}
	s, err := newExactSolver(weights, p, maxBranching, table)
	if err != nil {
		return Result{}, err
	}
	res := s.solve(0, len(weights))
	tracer().Infof("exact search over %d elements: cost %g", len(weights), res.Cost)
	return res, nil
}

type exactSolver struct {
	weights      []float64
	maxBranching int
	table        *Table
	access       [][]float64 // access[m] holds the costs for m parts
	sigs         map[[2]int]Signature
}

func newExactSolver(weights []float64, p Policy, maxBranching int, table *Table) (*exactSolver, error) {
	if maxBranching < 2 {
		return nil, fmt.Errorf("%w: need at least 2, got %d", ErrInvalidBranchingFactor, maxBranching)
	}
	access := make([][]float64, maxBranching+1)
	for m := 2; m <= maxBranching; m++ {
		costs, err := AccessCosts(m, p)
		if err != nil {
			return nil, err
		}
		access[m] = costs
	}
	return &exactSolver{
		weights:      weights,
		maxBranching: maxBranching,
		table:        table,
		access:       access,
		sigs:         make(map[[2]int]Signature),
	}, nil
}

// signature memoizes the signature of weights[lo:hi]; every subsequence
// visited is a range of the root sequence.
func (s *exactSolver) signature(lo, hi int) Signature {
	key := [2]int{lo, hi}
	if sig, ok := s.sigs[key]; ok {
		return sig
	}
	sig := SignatureOf(s.weights[lo:hi])
	s.sigs[key] = sig
	return sig
}

func (s *exactSolver) solve(lo, hi int) Result {
	seg := s.weights[lo:hi]
	n := len(seg)
	total := sum(seg)
	sig := s.signature(lo, hi)

	if cost, ok := s.table.cachedCost(sig); ok {
		s.table.Stats.CacheHits++
		return Result{Cost: cost, Weight: total}
	}
	if n <= 1 {
		s.table.setSplit(sig, nil)
		s.table.setCost(sig, 0)
		return Result{Cost: 0, Weight: total}
	}

	best := []int{}
	bestCost := math.Inf(1)
	childCosts := make([]float64, 0, s.maxBranching)
	childWeights := make([]float64, 0, s.maxBranching)

	maxCuts := min(s.maxBranching-1, n-1)
	for k := 1; k <= maxCuts; k++ {
		access := s.access[k+1]
		for cuts := range Splits(n, k) {
			s.table.Stats.Compositions++
			childCosts = childCosts[:0]
			childWeights = childWeights[:0]
			start := 0
			for i := 0; i <= k; i++ {
				end := n
				if i < k {
					end = cuts[i]
				}
				if end-start == 1 {
					childCosts = append(childCosts, 0)
					childWeights = append(childWeights, seg[start])
				} else {
					r := s.solve(lo+start, lo+end)
					childCosts = append(childCosts, r.Cost)
					childWeights = append(childWeights, r.Weight)
				}
				start = end
			}

			cost := sum(childCosts) + accessCost(access, childWeights)
			if cost < bestCost || (cost == bestCost && k > len(best)) {
				best = slices.Clone(cuts)
				bestCost = cost
			}
		}
	}

	s.table.setSplit(sig, best)
	s.table.setCost(sig, bestCost)
	s.table.Stats.ExactNodes++
	tracer().Debugf("exact: %d elements cut at %v, cost %g", n, best, bestCost)
	return Result{Cost: bestCost, Weight: total}
}
