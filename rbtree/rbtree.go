package rbtree

import (
	"bytes"
	"fmt"

	"github.com/npillmayer/ordset"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordset.rbtree'.
func tracer() tracing.Trace {
	return tracing.Select("ordset.rbtree")
}

// --- Nodes and trees --------------------------------------------------------

type color bool

const (
	red   color = true
	black color = false
)

// node is a tree node. Links are navigation-only: a live node is owned by
// its parent-side link (the root by the tree), never by its parent pointer.
type node[T any] struct {
	value  T
	color  color
	parent *node[T]
	left   *node[T]
	right  *node[T]
}

// Tree is a red-black tree holding a duplicate-free ordered set of values.
// The zero value is not usable; create trees with New.
type Tree[T any] struct {
	order   ordset.Order[T]
	arena   arena[T]
	root    *node[T]
	nilNode *node[T] // shared sentinel, always black, never carries a value
	size    int
}

var _ ordset.Set[int] = (*Tree[int])(nil)

// Option configures a tree during New.
type Option[T any] func(*Tree[T])

// WithAllocator lets the tree draw its nodes from alloc instead of the
// default heap allocator.
func WithAllocator[T any](alloc ordset.Allocator) Option[T] {
	return func(t *Tree[T]) {
		t.arena.alloc = alloc
	}
}

// New creates an empty tree for elements ordered by order. The only
// allocation is the sentinel node; if it fails, the error is surfaced and
// no tree is returned.
func New[T any](order ordset.Order[T], opts ...Option[T]) (*Tree[T], error) {
	if order == nil {
		return nil, fmt.Errorf("rbtree: cannot create tree without an order capability")
	}
	t := &Tree[T]{order: order}
	t.arena.alloc = ordset.Heap()
	for _, opt := range opts {
		opt(t)
	}
	var none T
	sentinel, err := t.arena.newNode(none, black, nil)
	if err != nil {
		return nil, err
	}
	sentinel.parent = sentinel
	sentinel.left = sentinel
	sentinel.right = sentinel
	t.nilNode = sentinel
	t.root = sentinel
	tracer().Debugf("created empty red-black tree")
	return t, nil
}

// --- Search -----------------------------------------------------------------

// find descends from the root, returning the node holding value, or the
// sentinel if value is not in the tree.
func (t *Tree[T]) find(value T) *node[T] {
	x := t.root
	for x != t.nilNode {
		switch cmp := t.order(value, x.value); {
		case cmp < 0:
			x = x.left
		case cmp > 0:
			x = x.right
		default:
			return x
		}
	}
	return t.nilNode
}

// Contains checks membership.
func (t *Tree[T]) Contains(value T) bool {
	return t.find(value) != t.nilNode
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	return t.size
}

// IsEmpty checks if the tree holds no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.size == 0
}

// --- Rotations --------------------------------------------------------------

// rotateLeft pivots the subtree under x to the left: x's right child y
// takes x's position, x becomes y's left child, and y's former left
// subtree becomes x's right subtree. The in-order sequence of values is
// unchanged. x.right must not be the sentinel.
func (t *Tree[T]) rotateLeft(x *node[T]) {
	y := x.right
	x.right = y.left
	if y.left != t.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilNode {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

// rotateRight is the mirror image of rotateLeft. x.left must not be the
// sentinel.
func (t *Tree[T]) rotateRight(x *node[T]) {
	y := x.left
	x.left = y.right
	if y.right != t.nilNode {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == t.nilNode {
		t.root = y
	} else if x == x.parent.right {
		x.parent.right = y
	} else {
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// --- Teardown ---------------------------------------------------------------

// Clear removes all elements, walking the tree with an explicit stack
// rather than recursion. The sentinel is kept and reused; the emptied
// tree stays usable.
func (t *Tree[T]) Clear() {
	if t.size > 0 {
		tracer().Debugf("clearing tree of %d elements", t.size)
	}
	var stack []*node[T]
	if t.root != t.nilNode {
		stack = append(stack, t.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		// push children before releasing n: freeNode severs n's links
		if n.left != t.nilNode {
			stack = append(stack, n.left)
		}
		if n.right != t.nilNode {
			stack = append(stack, n.right)
		}
		t.arena.freeNode(n)
	}
	t.root = t.nilNode
	t.nilNode.parent = t.nilNode
	t.size = 0
}

// --- Diagnostics ------------------------------------------------------------

// Height returns the number of edges on the longest downward path from
// the root, -1 for an empty tree. The red-black invariants bound it by
// 2·log2(n+1).
func (t *Tree[T]) Height() int {
	return t.height(t.root)
}

func (t *Tree[T]) height(n *node[T]) int {
	if n == t.nilNode {
		return -1
	}
	h := t.height(n.left)
	if r := t.height(n.right); r > h {
		h = r
	}
	return h + 1
}

// String returns the tree's elements as a string of the form "{1 2 3}".
func (t *Tree[T]) String() string {
	var buf bytes.Buffer
	buf.WriteByte('{')
	t.Each(func(value T) bool {
		if buf.Len() > len("{") {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%v", value)
		return true
	})
	buf.WriteByte('}')
	return buf.String()
}
