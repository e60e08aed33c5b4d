package rbtree

import (
	"testing"
)

// checkInvariants verifies the red-black tree invariants plus size
// accounting and BST order. It fails the test on the first violation.
func checkInvariants[T any](t *testing.T, tree *Tree[T]) {
	t.Helper()
	if tree.nilNode.color != black {
		t.Fatalf("sentinel is red, must always be black")
	}
	if tree.root.color != black {
		t.Fatalf("root is red, must be black")
	}
	count := 0
	var blackHeight func(n *node[T]) int
	blackHeight = func(n *node[T]) int {
		if n == tree.nilNode {
			return 1
		}
		count++
		if n.color == red && (n.left.color == red || n.right.color == red) {
			t.Fatalf("red node %v has a red child", n.value)
		}
		lh := blackHeight(n.left)
		rh := blackHeight(n.right)
		if lh != rh {
			t.Fatalf("black-height mismatch below %v: left %d, right %d", n.value, lh, rh)
		}
		if n.color == black {
			lh++
		}
		return lh
	}
	blackHeight(tree.root)
	if count != tree.size {
		t.Fatalf("tree claims size %d, but %d nodes are reachable", tree.size, count)
	}
	if tree.arena.live != tree.size+1 { // +1 for the sentinel
		t.Fatalf("arena accounts for %d live nodes, expected %d", tree.arena.live, tree.size+1)
	}
	values := tree.Values()
	for i := 1; i < len(values); i++ {
		if tree.order(values[i-1], values[i]) >= 0 {
			t.Fatalf("in-order walk is not strictly ascending at position %d: %v, %v",
				i, values[i-1], values[i])
		}
	}
}

func mustInsert[T any](t *testing.T, tree *Tree[T], value T) {
	t.Helper()
	ok, err := tree.Insert(value)
	if err != nil {
		t.Fatalf("insert of %v failed: %v", value, err)
	}
	if !ok {
		t.Fatalf("insert of %v reported duplicate, value should be new", value)
	}
}
