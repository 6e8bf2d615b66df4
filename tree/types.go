package tree

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
)

type (
	// Item is one element of a weighted sequence. Only the weight takes part
	// in optimization; the name is carried along for the materializer.
	Item struct {
		Name   string  `json:"name"`
		Weight float64 `json:"weight"`
	}

	// Signature identifies a weighted sequence by its ordered weights.
	// Sequences with equal signatures share one Table entry.
	Signature string

	// Table maps the signature of every sequence visited while building a tree
	// to the cut positions chosen for it and the best known cost.
	// A Table is bound to the policy and branching factor it was built with.
	Table struct {
		Stats  Stats
		splits map[Signature][]int
		costs  map[Signature]float64
	}

	// Stats counts the work done while filling a Table.
	Stats struct {
		Compositions int // compositions evaluated by the exact search
		CacheHits    int // signatures answered from the table
		ExactNodes   int // signatures solved exactly
		RatioNodes   int // signatures cut by the ratio heuristic
		LeafNodes    int // signatures short enough to keep flat
	}
)

// DefaultWeight is the weight of an item without an explicit override.
const DefaultWeight = 1.0

// Weights returns the weights of items in order.
func Weights(items []Item) []float64 {
	w := make([]float64, len(items))
	for i, it := range items {
		w[i] = it.Weight
	}
	return w
}

// SignatureOf encodes the bit patterns of weights into a comparable key.
func SignatureOf(weights []float64) Signature {
	buf := make([]byte, 8*len(weights))
	for i, w := range weights {
		binary.LittleEndian.PutUint64(buf[8*i:], math.Float64bits(w))
	}
	return Signature(buf)
}

// Len returns the number of weights encoded in the signature.
func (s Signature) Len() int {
	return len(s) / 8
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		splits: make(map[Signature][]int),
		costs:  make(map[Signature]float64),
	}
}

// Lookup returns the cut positions recorded for a sequence with the given
// weights. An empty, non-nil result means "do not split further".
func (t *Table) Lookup(weights []float64) ([]int, bool) {
	s, ok := t.splits[SignatureOf(weights)]
	if !ok {
		return nil, false
	}
	return slices.Clone(s), true
}

// Cost returns the best known cost recorded for a sequence with the given
// weights.
func (t *Table) Cost(weights []float64) (float64, bool) {
	c, ok := t.costs[SignatureOf(weights)]
	return c, ok
}

// Len returns the number of signatures with recorded split positions.
func (t *Table) Len() int {
	return len(t.splits)
}

func (t *Table) hasSplit(sig Signature) bool {
	_, ok := t.splits[sig]
	return ok
}

func (t *Table) setSplit(sig Signature, cuts []int) {
	if cuts == nil {
		cuts = []int{}
	}
	t.splits[sig] = slices.Clone(cuts)
}

func (t *Table) cachedCost(sig Signature) (float64, bool) {
	c, ok := t.costs[sig]
	return c, ok
}

func (t *Table) setCost(sig Signature, cost float64) {
	t.costs[sig] = cost
}

// cutBounds returns the boundaries of the parts described by cuts for a
// sequence of length n, with 0 and n added.
func cutBounds(cuts []int, n int) []int {
	bounds := make([]int, 0, len(cuts)+2)
	bounds = append(bounds, 0)
	bounds = append(bounds, cuts...)
	return append(bounds, n)
}

// checkWeights rejects weights the cost model is not defined for.
func checkWeights(weights []float64) error {
	for i, w := range weights {
		if !(w > 0) || math.IsInf(w, 1) {
			return fmt.Errorf("%w: element %d is %g", ErrInvalidWeight, i, w)
		}
	}
	return nil
}

func sum(weights []float64) float64 {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	return total
}
