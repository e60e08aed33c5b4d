package rbtree

// Insert adds a value to the tree. It returns true if the value was newly
// inserted and false if an equal value already was a member; inserting a
// member again is a no-op, not an error, and the stored value is kept
// (first writer wins). A failed node allocation is surfaced unchanged and
// leaves the tree exactly as it was: the descent and all comparisons run
// before any allocation.
func (t *Tree[T]) Insert(value T) (bool, error) {
	return t.insert(value, false)
}

// Upsert is Insert with replace-on-equal semantics: an equal member is
// overwritten with value. Relevant only for element types carrying payload
// fields which do not take part in the ordering.
func (t *Tree[T]) Upsert(value T) (bool, error) {
	return t.insert(value, true)
}

func (t *Tree[T]) insert(value T, replace bool) (bool, error) {
	y := t.nilNode
	x := t.root
	goesLeft := false
	for x != t.nilNode {
		y = x
		switch cmp := t.order(value, x.value); {
		case cmp < 0:
			x = x.left
			goesLeft = true
		case cmp > 0:
			x = x.right
			goesLeft = false
		default: // already present
			if replace {
				x.value = value
			}
			return false, nil
		}
	}
	z, err := t.arena.newNode(value, red, y)
	if err != nil {
		return false, err // tree untouched
	}
	z.left = t.nilNode
	z.right = t.nilNode
	if y == t.nilNode {
		t.root = z
	} else if goesLeft {
		y.left = z
	} else {
		y.right = z
	}
	t.size++
	t.insertFixup(z)
	return true, nil
}

// insertFixup restores the red-black invariants after z, a freshly linked
// red node, possibly created a red-red edge. The loop climbs at most to
// the root, recoloring and rotating per the CLRS case analysis.
func (t *Tree[T]) insertFixup(z *node[T]) {
	for z.parent.color == red { // implies z is not the root
		g := z.parent.parent
		if z.parent == g.left {
			uncle := g.right
			if uncle.color == red {
				// case 1: flip colors, continue at the grandparent
				z.parent.color = black
				uncle.color = black
				g.color = red
				z = g
			} else {
				if z == z.parent.right {
					// case 2: inner child, rotate to make z an outer child
					z = z.parent
					t.rotateLeft(z)
				}
				// case 3: outer child, one rotation finishes
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateRight(z.parent.parent)
			}
		} else { // mirror image
			uncle := g.left
			if uncle.color == red {
				z.parent.color = black
				uncle.color = black
				g.color = red
				z = g
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rotateRight(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rotateLeft(z.parent.parent)
			}
		}
	}
	t.root.color = black // fixup may have colored the root red
}
