package Trees

import (
	"golang.org/x/exp/constraints"
	"math/bits"
)

// AVLTree is an intrusive, strictly height-balanced search tree. It holds
// caller-allocated nodes by reference only: Insert borrows a node, Remove
// hands it back, and the tree itself never allocates or copies one. Ordering
// comes entirely from the comparator given at construction, so the same Node
// type can participate in differently ordered trees.
// The worst case height is 1.44*log2(n+2), so all descents are O(log n).
// Writes are implemented recursively; a subtree reports whether its height
// changed so that ancestors stop readjusting as soon as the height provably
// settled.
type AVLTree[T any] struct {
	root *Node[T]
	cmp  Cmp[T]
	size uint
}

// New returns an empty AVLTree ordered by cmp.
func New[T any](cmp Cmp[T]) *AVLTree[T] {
	return &AVLTree[T]{cmp: cmp}
}

// NewOrdered returns an empty AVLTree ordered by the natural order of Val.
func NewOrdered[T constraints.Ordered]() *AVLTree[T] {
	return New[T](func(a, b *Node[T]) int {
		if a.Val < b.Val {
			return -1
		} else if a.Val > b.Val {
			return 1
		}
		return 0
	})
}

// Size [Tree.Size].
// Time: O(1)
func (u *AVLTree[T]) Size() uint {
	return u.size
}

// insert n into the subtree in slot recursively. slot is passed by reference.
// grew reports whether the subtree's height increased, added whether n was
// linked. Propagation of grew stops as soon as an ancestor's balance settles
// at 0 or a rotation collapses the height change.
func (u *AVLTree[T]) insert(slot **Node[T], n *Node[T], join Join[T]) (grew, added bool) {
	cur := *slot
	if cur == nil {
		*slot = n
		return true, true
	}
	c := u.cmp(n, cur)
	if c == 0 {
		if join != nil {
			if rep := join(cur, n); rep != nil && rep != cur {
				//the replacement takes over the AVL fields, payloads stay put
				rep.next, rep.balance = cur.next, cur.balance
				*slot = rep
			}
		}
		return false, false
	}
	if grew, added = u.insert(&cur.next[dirOf(c)], n, join); !grew {
		return false, added
	}
	if c < 0 {
		cur.balance--
	} else {
		cur.balance++
	}
	if cur.balance == 0 {
		return false, added
	}
	if cur.balance < -1 || cur.balance > 1 {
		rebalance(slot)
		//a post-insertion rotation always restores the old height
		return false, added
	}
	return true, added
}

// Insert [Tree.Insert]. Recursive.
// n must not currently be linked into any tree and its AVL fields must be
// zero. If an equal node is already present, n is not linked and remains
// entirely the caller's.
// Time: O(log n)
func (u *AVLTree[T]) Insert(n *Node[T]) bool {
	return u.InsertOrJoin(n, nil)
}

// InsertOrJoin is Insert with a duplicate hook: when an equal node is already
// in the tree, join decides which of the two nodes keeps the slot (see Join).
// Returns true only if n was linked as a new node; the join path reports
// false even when join swapped n into the tree.
// Time: O(log n)
func (u *AVLTree[T]) InsertOrJoin(n *Node[T], join Join[T]) bool {
	_, added := u.insert(&u.root, n, join)
	if added {
		u.size++
	}
	return added
}

// unlinkMin unlinks the leftmost node of the subtree in slot and returns it,
// rebalancing the path behind it. shrank reports whether the subtree's
// height decreased.
func unlinkMin[T any](slot **Node[T]) (shrank bool, min *Node[T]) {
	cur := *slot
	if cur.next[Left] == nil {
		*slot = cur.next[Right]
		return true, cur
	}
	if shrank, min = unlinkMin(&cur.next[Left]); !shrank {
		return false, min
	}
	cur.balance++
	rebalance(slot)
	return (*slot).balance == 0, min
}

// unlink removes the node in slot from the tree. With at most one child the
// slot is simply replaced by it; with two children the in-order successor is
// spliced into the slot, inheriting its links and balance while keeping its
// own payload. shrank reports whether the subtree's height decreased.
func unlink[T any](slot **Node[T]) (shrank bool) {
	cur := *slot
	if cur.next[Left] == nil {
		*slot = cur.next[Right]
		return true
	}
	if cur.next[Right] == nil {
		*slot = cur.next[Left]
		return true
	}
	shrank, succ := unlinkMin(&cur.next[Right])
	succ.next, succ.balance = cur.next, cur.balance
	*slot = succ
	if !shrank {
		return false
	}
	succ.balance--
	rebalance(slot)
	return (*slot).balance == 0
}

// remove the node equal to q from the subtree in slot recursively. found is
// the matching node whether or not it was unlinked, gone whether it actually
// left the tree, shrank whether the subtree's height decreased. Mirrors
// insert's short-circuit with the polarity reversed: propagation stops the
// moment a nonzero balance survives readjustment.
func (u *AVLTree[T]) remove(slot **Node[T], q *Node[T], del Unlink[T]) (shrank bool, found *Node[T], gone bool) {
	cur := *slot
	if cur == nil {
		return false, nil, false
	}
	c := u.cmp(q, cur)
	if c == 0 {
		if del != nil && !del(cur) {
			return false, cur, false
		}
		return unlink(slot), cur, true
	}
	if shrank, found, gone = u.remove(&cur.next[dirOf(c)], q, del); !shrank {
		return false, found, gone
	}
	if c < 0 {
		cur.balance++
	} else {
		cur.balance--
	}
	rebalance(slot)
	return (*slot).balance == 0, found, gone
}

// Remove [Tree.Remove]. Recursive.
// The returned node is fully unlinked and its AVL fields are stale; ownership
// is back with the caller.
// Time: O(log n)
func (u *AVLTree[T]) Remove(q *Node[T]) *Node[T] {
	return u.RemoveIf(q, nil)
}

// RemoveIf is Remove with a veto hook: del runs on the found node before
// unlinking and returning false keeps it in the tree. The found node is
// returned either way, so check the hook's decision before freeing it.
// Time: O(log n)
func (u *AVLTree[T]) RemoveIf(q *Node[T], del Unlink[T]) *Node[T] {
	_, found, gone := u.remove(&u.root, q, del)
	if gone {
		u.size--
	}
	return found
}

// Get [Tree.Get].
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Get(q *Node[T]) *Node[T] {
	for cur := u.root; cur != nil; {
		c := u.cmp(q, cur)
		if c == 0 {
			return cur
		}
		cur = cur.next[dirOf(c)]
	}
	return nil
}

// Has [Tree.Has].
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Has(q *Node[T]) bool {
	return u.Get(q) != nil
}

// Minimum [Tree.Minimum].
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Minimum() *Node[T] {
	cur := u.root
	if cur == nil {
		return nil
	}
	for cur.next[Left] != nil {
		cur = cur.next[Left]
	}
	return cur
}

// Maximum [Tree.Maximum].
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Maximum() *Node[T] {
	cur := u.root
	if cur == nil {
		return nil
	}
	for cur.next[Right] != nil {
		cur = cur.next[Right]
	}
	return cur
}

// Predecessor returns the greatest node comparing less than q, or nil.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Predecessor(q *Node[T]) (p *Node[T]) {
	for cur := u.root; cur != nil; {
		if u.cmp(q, cur) <= 0 {
			cur = cur.next[Left]
		} else {
			p = cur
			cur = cur.next[Right]
		}
	}
	return
}

// Successor returns the smallest node comparing greater than q, or nil.
// Time: O(log n); Space: O(1)
func (u *AVLTree[T]) Successor(q *Node[T]) (p *Node[T]) {
	for cur := u.root; cur != nil; {
		if u.cmp(q, cur) < 0 {
			p = cur
			cur = cur.next[Left]
		} else {
			cur = cur.next[Right]
		}
	}
	return
}

func each[T any](n *Node[T], order Order, visit Visit[T]) error {
	if n == nil {
		return nil
	}
	if order == PreOrder {
		if err := visit(n); err != nil {
			return err
		}
	}
	if err := each(n.next[Left], order, visit); err != nil {
		return err
	}
	if order == InOrder {
		if err := visit(n); err != nil {
			return err
		}
	}
	if err := each(n.next[Right], order, visit); err != nil {
		return err
	}
	if order == PostOrder {
		return visit(n)
	}
	return nil
}

// Each [Tree.Each]. Recursive.
// The visitor's error aborts the walk at every level and is returned as is;
// nil means the whole tree was visited. Visitors may destroy the visited node
// only under PostOrder.
// Time: O(n)
func (u *AVLTree[T]) Each(order Order, visit Visit[T]) error {
	return each(u.root, order, visit)
}

// Ascend [Tree.Ascend].
// The stack behind the closure holds one node per level, so its footprint is
// O(log n).
func (u *AVLTree[T]) Ascend() func() (*Node[T], bool) {
	st := make([]*Node[T], 0, 3*bits.Len(u.size)/2+1)
	for cur := u.root; cur != nil; cur = cur.next[Left] {
		st = append(st, cur)
	}
	return func() (*Node[T], bool) {
		if len(st) == 0 {
			return nil, false
		}
		n := st[len(st)-1]
		st = st[:len(st)-1]
		for cur := n.next[Right]; cur != nil; cur = cur.next[Left] {
			st = append(st, cur)
		}
		return n, true
	}
}

// audit returns the real height of the subtree and whether every stored
// balance equals the actual height difference and stays within [-1,1].
func audit[T any](n *Node[T]) (int, bool) {
	if n == nil {
		return 0, true
	}
	lh, lok := audit(n.next[Left])
	rh, rok := audit(n.next[Right])
	if !lok || !rok || int(n.balance) != rh-lh || n.balance < -1 || n.balance > 1 {
		return 0, false
	}
	return max(lh, rh) + 1, true
}

// Corrupt [Tree.Corrupt]. Recursive.
// Checks the balance bytes against the real subtree heights, then the
// ordering property over the full ascending sequence.
// Time: O(n)
func (u *AVLTree[T]) Corrupt() bool {
	if _, ok := audit(u.root); !ok {
		return true
	}
	var prev *Node[T]
	for next := u.Ascend(); ; {
		n, ok := next()
		if !ok {
			return false
		}
		if prev != nil && u.cmp(prev, n) >= 0 {
			return true
		}
		prev = n
	}
}
