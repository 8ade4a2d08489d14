package ast

import (
	"errors"
)

// SkipChildren can be returned by a WalkFunc to avoid descending into the
// children of the node being visited.
var SkipChildren = errors.New("skip children")

// WalkFunc is called for every node visited by Walk, depth is zero for the
// node Walk was called with.
type WalkFunc func(n *Node, depth int) error

type walkItem struct {
	n     *Node
	depth int
}

// Walk visits the tree rooted at n in pre-order, children from left to right.
// It uses an explicit stack, so the depth of the tree is only bounded by
// memory. Walk stops at the first error returned by fn other than
// SkipChildren.
func Walk(n *Node, fn WalkFunc) error {
	if n == nil {
		return nil
	}

	stack := []walkItem{{n: n}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if err := fn(item.n, item.depth); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}

		children := item.n.children
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, walkItem{n: children[i], depth: item.depth + 1})
		}
	}

	return nil
}

// Leaves returns the terminal nodes of the tree in source order.
func Leaves(n *Node) []*Node {
	leaves := []*Node{}
	_ = Walk(n, func(n *Node, _ int) error {
		if n.IsTerminal() {
			leaves = append(leaves, n)
		}
		return nil
	})
	return leaves
}
