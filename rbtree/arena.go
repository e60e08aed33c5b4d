package rbtree

import (
	"github.com/npillmayer/ordset"
)

// arena owns the nodes of one tree. Nodes are independently heap-owned and
// never pooled; the arena merely runs every creation and destruction past
// the allocator collaborator, so that a refusing allocator (see
// ordset.Budget) is honored before the tree is touched.
type arena[T any] struct {
	alloc ordset.Allocator
	live  int // nodes handed out and not yet freed, sentinel included
}

// newNode allocates a node. The node arrives with left/right unset; the
// caller links it. A nil error guarantees the node is non-nil.
func (a *arena[T]) newNode(value T, c color, parent *node[T]) (*node[T], error) {
	if err := a.alloc.Alloc(); err != nil {
		return nil, err
	}
	a.live++
	return &node[T]{value: value, color: c, parent: parent}, nil
}

// freeNode returns a node to the runtime. Links are severed so a stale
// reference can not resurrect parts of the tree.
func (a *arena[T]) freeNode(n *node[T]) {
	n.parent = nil
	n.left = nil
	n.right = nil
	a.live--
	a.alloc.Free()
}
