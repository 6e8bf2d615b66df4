package tree

import (
	"fmt"
	"iter"
	"strings"
)

// Policy selects how expensive it is to pick a position among siblings.
type Policy int

const (
	// Wrappable costs grow with the distance from the first position, but the
	// last position is adjacent to the first one again.
	Wrappable Policy = iota
	// Linear costs grow by one for every position away from the first.
	Linear
	// Constant costs are the same for every position.
	Constant
)

// Policies lists every defined Policy.
var Policies = []Policy{Wrappable, Linear, Constant}

func (p Policy) String() string {
	switch p {
	case Wrappable:
		return "wrappable"
	case Linear:
		return "linear"
	case Constant:
		return "constant"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy resolves the configuration name of a policy, ignoring case.
func ParsePolicy(s string) (Policy, error) {
	for _, p := range Policies {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// Set implements pflag.Value.
func (p *Policy) Set(s string) error {
	parsed, err := ParsePolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Type implements pflag.Value.
func (p *Policy) Type() string {
	return "policy"
}

// MarshalText encodes the policy by name.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText accepts the names ParsePolicy accepts.
func (p *Policy) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

// AccessCosts returns the cost of selecting each of n sibling positions.
//
// It does not consider descending into a subtree, only choosing one element
// on the same level. For Wrappable and Linear, n == 1 is degenerate; callers
// treat single elements as a base case instead of asking for their cost.
func AccessCosts(n int, p Policy) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBranchingFactor, n)
	}
	costs := make([]float64, n)
	switch p {
	case Wrappable:
		costs[0] = 1
		for i := 1; i < n; i++ {
			costs[i] = float64(min(i, n-i) + 1)
		}
	case Linear:
		for i := range costs {
			costs[i] = float64(i + 1)
		}
	case Constant:
		for i := range costs {
			costs[i] = 1
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownPolicy, p)
	}
	return costs, nil
}

// Ratios transforms access costs into the fraction of the total weight each
// position should receive. The result sums to one and satisfies
// ratios[i]/ratios[j] == costs[j]/costs[i]: cheap positions get more weight.
//
// costs is consumed exactly once, so single-pass producers are fine.
func Ratios(costs iter.Seq[float64]) []float64 {
	var ratios []float64
	sum := 0.0
	for c := range costs {
		r := 1 / c
		ratios = append(ratios, r)
		sum += r
	}
	for i := range ratios {
		ratios[i] /= sum
	}
	return ratios
}

// accessCost sums the cost of reaching every part of a node with the given
// child weights.
func accessCost(costs, weights []float64) float64 {
	total := 0.0
	for i, w := range weights {
		total += costs[i] * w
	}
	return total
}
