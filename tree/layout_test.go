package tree

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func itemsOf(weights []float64) []Item {
	items := make([]Item, len(weights))
	for i, w := range weights {
		items[i] = Item{Name: fmt.Sprintf("entry-%03d", i), Weight: w}
	}
	return items
}

func leaves(root *Node) []Item {
	var out []Item
	root.Walk(func(n *Node, _ int) bool {
		if n.IsLeaf() {
			out = append(out, n.First())
		}
		return true
	})
	return out
}

func TestExpandPreservesOrderAndBranching(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for _, threshold := range []int{0, 10} {
		items := itemsOf(randomWeights(r, 500))
		plan, err := Build(Weights(items), Options{Policy: Wrappable, MaxBranching: 4, Threshold: threshold})
		require.NoError(t, err)

		root, err := Expand(items, plan.Table)
		require.NoError(t, err)
		assert.Equal(t, items, leaves(root))

		root.Walk(func(n *Node, _ int) bool {
			assert.LessOrEqual(t, len(n.Children), 4)
			if !n.IsLeaf() {
				assert.GreaterOrEqual(t, len(n.Children), 2)
				assert.Equal(t, n.Items[0], n.Children[0].First())
				assert.Equal(t, n.Items[len(n.Items)-1], n.Children[len(n.Children)-1].Last())
			}
			return true
		})
		assert.InDelta(t, sum(Weights(items)), root.Weight, 1e-9)
	}
}

func TestExpandSevenElements(t *testing.T) {
	items := itemsOf(repeat(1, 7))
	plan, err := Build(Weights(items), DefaultOptions())
	require.NoError(t, err)
	root, err := Expand(items, plan.Table)
	require.NoError(t, err)

	require.Len(t, root.Children, 4)
	assert.Len(t, root.Children[0].Items, 4)
	assert.Len(t, root.Children[0].Children, 4, "group of four is flat")
	for _, c := range root.Children[1:] {
		assert.True(t, c.IsLeaf())
	}
}

func TestExpandUsesWeightsNotNames(t *testing.T) {
	plan, err := Build(repeat(1, 7), DefaultOptions())
	require.NoError(t, err)

	items := []Item{{"a", 1}, {"b", 1}, {"c", 1}, {"d", 1}, {"e", 1}, {"f", 1}, {"g", 1}}
	root, err := Expand(items, plan.Table)
	require.NoError(t, err)
	assert.Equal(t, "a", root.Children[0].First().Name)
	assert.Equal(t, "d", root.Children[0].Last().Name)
}

func TestExpandErrors(t *testing.T) {
	_, err := Expand(nil, NewTable())
	assert.ErrorIs(t, err, ErrEmptySequence)

	_, err = Expand(itemsOf(repeat(1, 3)), NewTable())
	assert.ErrorIs(t, err, ErrMissingSplit)

	root, err := Expand(itemsOf([]float64{2}), NewTable())
	require.NoError(t, err)
	assert.True(t, root.IsLeaf())
}
