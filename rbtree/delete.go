package rbtree

import (
	"github.com/npillmayer/ordset"
)

// Remove deletes a value from the tree, returning ordset.ErrNotFound if
// the value is not a member. Removal never allocates, so it cannot fail
// for memory reasons.
func (t *Tree[T]) Remove(value T) error {
	z := t.find(value)
	if z == t.nilNode {
		tracer().Debugf("value to remove is not in tree")
		return ordset.ErrNotFound
	}
	t.removeNode(z)
	return nil
}

// removeNode unlinks z from the tree and hands it back to the arena.
//
// A node with two children is not unlinked itself: its value is
// overwritten with the in-order successor's value, and the successor — a
// node with at most one non-sentinel child — is spliced out instead.
func (t *Tree[T]) removeNode(z *node[T]) {
	if z.left != t.nilNode && z.right != t.nilNode {
		s := t.minimum(z.right)
		z.value = s.value
		z = s
	}
	// z has at most one non-sentinel child x
	x := z.left
	if x == t.nilNode {
		x = z.right
	}
	t.transplant(z, x)
	if z.color == black {
		// x's subtree is short one black node
		t.deleteFixup(x)
	}
	t.arena.freeNode(z)
	t.size--
}

// transplant replaces the subtree rooted at u with the subtree rooted at
// v in u's parent. v's parent link is set unconditionally — also when v
// is the sentinel, whose parent link deleteFixup navigates by.
func (t *Tree[T]) transplant(u, v *node[T]) {
	if u.parent == t.nilNode {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	v.parent = u.parent
}

// deleteFixup compensates for a spliced-out black node by pushing the
// "double black" carried by x up or sideways until it dissolves, per the
// CLRS case analysis over x's sibling w.
func (t *Tree[T]) deleteFixup(x *node[T]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				// case 1: red sibling, rotate to get a black one
				w.color = black
				x.parent.color = red
				t.rotateLeft(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				// case 2: both nephews black, recolor and climb
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					// case 3: far nephew black, rotate the sibling
					w.left.color = black
					w.color = red
					t.rotateRight(w)
					w = x.parent.right
				}
				// case 4: far nephew red, one rotation finishes
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.rotateLeft(x.parent)
				x = t.root
			}
		} else { // mirror image
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rotateRight(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.rotateLeft(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rotateRight(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}
