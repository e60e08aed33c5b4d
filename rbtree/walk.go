package rbtree

// minimum returns the leftmost node of the subtree under x, or the
// sentinel if x is the sentinel.
func (t *Tree[T]) minimum(x *node[T]) *node[T] {
	for x.left != t.nilNode {
		x = x.left
	}
	return x
}

// maximum returns the rightmost node of the subtree under x.
func (t *Tree[T]) maximum(x *node[T]) *node[T] {
	for x.right != t.nilNode {
		x = x.right
	}
	return x
}

// successor returns the in-order successor of x, or the sentinel if x is
// the largest node. It walks the parent chain, using O(1) space.
func (t *Tree[T]) successor(x *node[T]) *node[T] {
	if x.right != t.nilNode {
		return t.minimum(x.right)
	}
	y := x.parent
	for y != t.nilNode && x == y.right {
		x = y
		y = y.parent
	}
	return y
}

// Each walks the elements in ascending order, calling visit for every
// element until visit returns false. The walk uses the parent chain, not
// recursion, so it needs no stack proportional to the tree height.
// Mutating the tree from within visit is not supported.
func (t *Tree[T]) Each(visit func(value T) bool) {
	for x := t.minimum(t.root); x != t.nilNode; x = t.successor(x) {
		if !visit(x.value) {
			return
		}
	}
}

// Values returns all elements in ascending order.
func (t *Tree[T]) Values() []T {
	values := make([]T, 0, t.size)
	t.Each(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

// Min returns the smallest element, with ok=false for an empty tree.
func (t *Tree[T]) Min() (T, bool) {
	if t.size == 0 {
		var none T
		return none, false
	}
	return t.minimum(t.root).value, true
}

// Max returns the largest element, with ok=false for an empty tree.
func (t *Tree[T]) Max() (T, bool) {
	if t.size == 0 {
		var none T
		return none, false
	}
	return t.maximum(t.root).value, true
}
