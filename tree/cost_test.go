package tree

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessCosts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "baum.tree")
	defer teardown()

	tests := []struct {
		name   string
		n      int
		policy Policy
		want   []float64
	}{
		{name: "wrappable four", n: 4, policy: Wrappable, want: []float64{1, 2, 3, 2}},
		{name: "wrappable five", n: 5, policy: Wrappable, want: []float64{1, 2, 3, 3, 2}},
		{name: "wrappable two", n: 2, policy: Wrappable, want: []float64{1, 2}},
		{name: "linear four", n: 4, policy: Linear, want: []float64{1, 2, 3, 4}},
		{name: "constant three", n: 3, policy: Constant, want: []float64{1, 1, 1}},
		{name: "single position", n: 1, policy: Constant, want: []float64{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AccessCosts(tt.n, tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccessCostsLength(t *testing.T) {
	for _, p := range Policies {
		for n := 1; n <= 128; n++ {
			costs, err := AccessCosts(n, p)
			require.NoError(t, err)
			assert.Len(t, costs, n, "policy %v", p)
		}
	}
}

func TestAccessCostsRejectsInvalidArguments(t *testing.T) {
	_, err := AccessCosts(0, Linear)
	assert.True(t, errors.Is(err, ErrInvalidBranchingFactor))

	_, err = AccessCosts(4, Policy(42))
	assert.True(t, errors.Is(err, ErrUnknownPolicy))
}

func TestParsePolicy(t *testing.T) {
	for _, p := range Policies {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	got, err := ParsePolicy("WRAPPABLE")
	require.NoError(t, err)
	assert.Equal(t, Wrappable, got)

	_, err = ParsePolicy("wrapable")
	assert.ErrorIs(t, err, ErrUnknownPolicy)

	var p Policy
	require.NoError(t, p.Set("constant"))
	assert.Equal(t, Constant, p)
	assert.Error(t, p.Set("circular"))
	assert.Equal(t, Constant, p, "failed Set must not change the value")
	assert.Equal(t, "policy", p.Type())
}

func TestRatiosSumToOne(t *testing.T) {
	for _, p := range Policies {
		for n := 2; n <= 128; n++ {
			costs, err := AccessCosts(n, p)
			require.NoError(t, err)
			ratios := Ratios(slices.Values(costs))
			require.Len(t, ratios, n)
			assert.InDelta(t, 1.0, sum(ratios), 1e-6, "policy %v, n=%d", p, n)
		}
	}
}

func TestRatiosAreInverselyProportionalToCosts(t *testing.T) {
	for _, p := range Policies {
		for _, n := range []int{2, 3, 4, 7, 16} {
			costs, err := AccessCosts(n, p)
			require.NoError(t, err)
			ratios := Ratios(slices.Values(costs))
			for i := range ratios {
				for j := range ratios {
					assert.InDelta(t, costs[j]/costs[i], ratios[i]/ratios[j], 1e-9)
				}
			}
		}
	}
}

func TestRatiosConsumeInputOnce(t *testing.T) {
	calls := 0
	costs := func(yield func(float64) bool) {
		calls++
		for _, c := range []float64{1, 2, 3, 2} {
			if !yield(c) {
				return
			}
		}
	}
	ratios := Ratios(costs)
	assert.Equal(t, 1, calls)
	assert.Len(t, ratios, 4)
	assert.Greater(t, ratios[0], ratios[1])
	assert.InDelta(t, ratios[1], ratios[3], 1e-12)
}
