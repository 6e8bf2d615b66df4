package tree

import (
	"fmt"
	"slices"
)

// Options configures how a tree is built.
type Options struct {
	Policy       Policy // cost of choosing a position among siblings
	MaxBranching int    // maximum number of parts per grouping node, at least 2
	// Threshold hands sequences strictly shorter than this to the exact
	// search. Zero builds the whole tree with the ratio heuristic.
	Threshold int
}

// DefaultOptions mirrors the settings the tool ships with.
func DefaultOptions() Options {
	return Options{
		Policy:       Wrappable,
		MaxBranching: 4,
		Threshold:    40,
	}
}

// Validate reports whether the options can be used to build a tree.
func (o Options) Validate() error {
	if o.MaxBranching < 2 {
		return fmt.Errorf("%w: need at least 2, got %d", ErrInvalidBranchingFactor, o.MaxBranching)
	}
	if o.Threshold < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreshold, o.Threshold)
	}
	if _, err := AccessCosts(o.MaxBranching, o.Policy); err != nil {
		return err
	}
	return nil
}

// Plan is the result of a Build: the split-position table for the whole
// sequence and the cost of its root.
type Plan struct {
	Options Options
	Table   *Table
	Root    Result
	Length  int
}

// Build computes split positions for weights and every subsequence the
// resulting tree contains.
//
// Sequences shorter than the threshold are solved exactly. Longer sequences
// are cut with RatioSplit and each part is built again; sequences of at most
// MaxBranching elements are kept flat. The returned Plan owns a fresh Table.
// Every weight must be positive and finite.
func Build(weights []float64, opts Options) (*Plan, error) {
	if len(weights) == 0 {
		return nil, ErrEmptySequence
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := checkWeights(weights); err != nil {
		return nil, err
	}
	b, err := newBuilder(opts, NewTable())
	if err != nil {
		return nil, err
	}
	root := b.build(weights)
	tracer().Infof("built tree for %d elements: %d signatures, cost %g",
		len(weights), b.table.Len(), root.Cost)
	return &Plan{
		Options: opts,
		Table:   b.table,
		Root:    root,
		Length:  len(weights),
	}, nil
}

// Cost returns the total access cost of the planned tree.
func (p *Plan) Cost() float64 {
	return p.Root.Cost
}

type builder struct {
	opts   Options
	table  *Table
	access [][]float64 // access[m] holds the costs for m parts
	ratios []float64
}

func newBuilder(opts Options, table *Table) (*builder, error) {
	access := make([][]float64, opts.MaxBranching+1)
	for m := 2; m <= opts.MaxBranching; m++ {
		costs, err := AccessCosts(m, opts.Policy)
		if err != nil {
			return nil, err
		}
		access[m] = costs
	}
	return &builder{
		opts:   opts,
		table:  table,
		access: access,
		ratios: Ratios(slices.Values(access[opts.MaxBranching])),
	}, nil
}

func (b *builder) build(seg []float64) Result {
	n := len(seg)
	total := sum(seg)
	sig := SignatureOf(seg)

	if b.table.hasSplit(sig) {
		b.table.Stats.CacheHits++
		cost, _ := b.table.cachedCost(sig)
		return Result{Cost: cost, Weight: total}
	}

	if n < b.opts.Threshold {
		s := &exactSolver{
			weights:      seg,
			maxBranching: b.opts.MaxBranching,
			table:        b.table,
			access:       b.access,
			sigs:         make(map[[2]int]Signature),
		}
		return s.solve(0, n)
	}

	if n <= b.opts.MaxBranching {
		// Parts of a single element get no container of their own; their
		// access cost is accounted for one level up.
		cost := 0.0
		if n > 1 {
			cost = accessCost(b.access[n], seg)
		}
		b.table.setSplit(sig, nil)
		b.table.setCost(sig, cost)
		b.table.Stats.LeafNodes++
		return Result{Cost: cost, Weight: total}
	}

	cuts := RatioSplit(seg, b.ratios)
	if len(cuts) == 0 {
		// The tail outweighs everything before it by so much that no cut
		// fits; separate the last element so the recursion terminates.
		cuts = []int{n - 1}
	}
	b.table.setSplit(sig, cuts)
	b.table.Stats.RatioNodes++
	tracer().Debugf("ratio: %d elements cut at %v", n, cuts)

	bounds := cutBounds(cuts, n)
	childCosts := make([]float64, 0, len(bounds)-1)
	childWeights := make([]float64, 0, len(bounds)-1)
	for i := 1; i < len(bounds); i++ {
		part := seg[bounds[i-1]:bounds[i]]
		r := b.build(part)
		childCosts = append(childCosts, r.Cost)
		childWeights = append(childWeights, r.Weight)
	}
	cost := sum(childCosts) + accessCost(b.access[len(childWeights)], childWeights)
	b.table.setCost(sig, cost)
	return Result{Cost: cost, Weight: total}
}
