package tree

import "fmt"

// Evaluate recomputes the total access cost of the tree that table describes
// for weights, independent of any costs recorded while building it.
//
// An empty split on a sequence of more than one element means all elements
// are selected directly on that level.
func Evaluate(weights []float64, table *Table, p Policy) (float64, error) {
	e := evaluator{table: table, policy: p, memo: make(map[Signature]float64)}
	return e.cost(weights)
}

type evaluator struct {
	table  *Table
	policy Policy
	memo   map[Signature]float64
}

func (e *evaluator) cost(seg []float64) (float64, error) {
	n := len(seg)
	if n <= 1 {
		return 0, nil
	}
	sig := SignatureOf(seg)
	if c, ok := e.memo[sig]; ok {
		return c, nil
	}
	cuts, ok := e.table.splits[sig]
	if !ok {
		return 0, fmt.Errorf("%w: sequence of %d elements", ErrMissingSplit, n)
	}

	var total float64
	if len(cuts) == 0 {
		costs, err := AccessCosts(n, e.policy)
		if err != nil {
			return 0, err
		}
		total = accessCost(costs, seg)
	} else {
		bounds := cutBounds(cuts, n)
		childCosts := make([]float64, 0, len(bounds)-1)
		childWeights := make([]float64, 0, len(bounds)-1)
		for i := 1; i < len(bounds); i++ {
			part := seg[bounds[i-1]:bounds[i]]
			c, err := e.cost(part)
			if err != nil {
				return 0, err
			}
			childCosts = append(childCosts, c)
			childWeights = append(childWeights, sum(part))
		}
		costs, err := AccessCosts(len(childWeights), e.policy)
		if err != nil {
			return 0, err
		}
		total = sum(childCosts) + accessCost(costs, childWeights)
	}
	e.memo[sig] = total
	return total, nil
}
