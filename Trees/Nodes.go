package Trees

// A node in the AVLTree.
// The zero value (with Val set) is ready for insertion. The caller allocates
// and owns the node; while it is linked, next and balance belong to the tree
// and must not be touched. After the node comes back out of Remove they are
// stale, and zeroing them makes the node insertable again.
type Node[T any] struct {
	next    [2]*Node[T] //indexed by Left and Right.
	balance int8        //height(right subtree)-height(left subtree), in [-1,1] between operations.
	Val     T
}

// Child on the given side, nil if absent. Read-only view for callers walking
// the structure themselves.
func (n *Node[T]) Child(dir int) *Node[T] {
	return n.next[dir]
}

// Balance of the node as stored, for diagnostics.
func (n *Node[T]) Balance() int {
	return int(n.balance)
}

// rotate the subtree in slot towards dir, promoting the child on the
// opposite side. slot is passed by reference in order to modify its content.
// The two balances are recomputed from each other's post-rotation values,
// not by measuring subtrees.
// Time: O(1); Space: O(1)
func rotate[T any](slot **Node[T], dir int) {
	a := *slot
	b := a.next[1-dir]
	a.next[1-dir] = b.next[dir]
	b.next[dir] = a
	*slot = b
	if dir == Right {
		a.balance += max(-b.balance, 0) + 1
		b.balance += max(a.balance, 0) + 1
	} else {
		a.balance -= max(b.balance, 0) + 1
		b.balance -= max(-a.balance, 0) + 1
	}
}

// needDouble reports whether restoring the subtree requires a double
// rotation: the heavy child leans opposite to its parent. bal is never 0.
func needDouble(bal, childBal int8) bool {
	if bal > 0 {
		return childBal < 0
	}
	return childBal > 0
}

// rebalance the subtree in slot after a height change one level below has
// left its balance at +-2. A single rotation away from the heavy side suffices
// unless the heavy child leans the other way, in which case that child is
// rotated towards the heavy side first. Afterwards the balance is back in
// [-1,1]. No-op while the balance is still in range.
func rebalance[T any](slot **Node[T]) {
	if bal := (*slot).balance; bal < -1 || bal > 1 {
		heavy := Left
		if bal > 0 {
			heavy = Right
		}
		if needDouble(bal, (*slot).next[heavy].balance) {
			rotate(&(*slot).next[heavy], heavy)
		}
		rotate(slot, 1-heavy)
	}
}

// dirOf maps a comparator result to the child index to descend into.
func dirOf(cmp int) int {
	if cmp < 0 {
		return Left
	}
	return Right
}
