package tree

import "fmt"

// Node is one entry of an expanded grouping. A leaf wraps exactly one item;
// a container holds the contiguous span of items below it in Items and its
// direct descendants in Children.
type Node struct {
	Items    []Item
	Children []*Node
	Weight   float64
}

// IsLeaf reports whether the node stands for a single item.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// First returns the first item below the node.
func (n *Node) First() Item {
	return n.Items[0]
}

// Last returns the last item below the node.
func (n *Node) Last() Item {
	return n.Items[len(n.Items)-1]
}

// Walk calls fn for n and every node below it, parents before children.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if !fn(n, depth) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn, depth+1)
	}
}

// Expand applies table to items: the signature of the items is looked up,
// the items are cut at the recorded positions, and every part of more than
// one item is expanded again. The returned root holds all items.
func Expand(items []Item, table *Table) (*Node, error) {
	if len(items) == 0 {
		return nil, ErrEmptySequence
	}
	return expand(items, table)
}

func expand(items []Item, table *Table) (*Node, error) {
	weights := Weights(items)
	node := &Node{Items: items, Weight: sum(weights)}
	if len(items) == 1 {
		return node, nil
	}

	cuts, ok := table.Lookup(weights)
	if !ok {
		return nil, fmt.Errorf("%w: %q..%q", ErrMissingSplit, items[0].Name, items[len(items)-1].Name)
	}
	if len(cuts) == 0 {
		for i := range items {
			node.Children = append(node.Children, &Node{Items: items[i : i+1], Weight: items[i].Weight})
		}
		return node, nil
	}

	bounds := cutBounds(cuts, len(items))
	for i := 1; i < len(bounds); i++ {
		child, err := expand(items[bounds[i-1]:bounds[i]], table)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}
	return node, nil
}
