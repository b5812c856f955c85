package Trees

// Left and Right index Node.next. Children on the Left side compare less
// than their parent, children on the Right side compare greater.
const (
	Left  = 0
	Right = 1
)

// Cmp establishes a total order between two nodes. It returns a negative
// number if a<b, a positive number if a>b, and zero if they're equal.
// The tree never interprets the magnitude, only the sign.
type Cmp[T any] func(a, b *Node[T]) int

// Join is called during an insertion when offered compares equal to existing,
// which is already in the tree. It returns the node that should occupy
// existing's position afterwards: returning existing (or nil) leaves the tree
// unchanged, returning offered swaps it into the tree in existing's place
// (the tree relinks children and balance itself, payloads aren't touched).
// Whichever of the two nodes ends up outside the tree is the caller's to keep
// or discard; this is the building block for multiset chaining.
type Join[T any] func(existing, offered *Node[T]) *Node[T]

// Unlink is called on a removal target after it has been found but before it
// is unlinked. Returning false keeps the node in the tree; the removal still
// reports the node it found. This allows multiset decrement-and-stop
// semantics.
type Unlink[T any] func(found *Node[T]) bool

// Visit is called once per node during Each. A non-nil error stops the
// traversal immediately and becomes Each's return value.
type Visit[T any] func(n *Node[T]) error

// Order selects the visitation order of Each.
type Order byte

const (
	//PreOrder visits a node before either of its subtrees.
	PreOrder Order = iota
	//InOrder visits a node between its subtrees, i.e. in ascending order.
	InOrder
	//PostOrder visits a node after both subtrees. Because nothing reads a
	//node after its visit, this is the order to use when destroying every
	//node while tearing the tree down.
	PostOrder
)

// Tree is an intrusive search tree over caller-owned nodes. The tree links
// and unlinks nodes but never allocates, copies, or frees them; a node handed
// to Insert is borrowed until it comes back out of Remove. Receivers
// returning *Node report "not found"/"empty" as nil.
// An individual tree isn't thread safe: either confine it to one goroutine or
// serialize every call with an external mutex.
type Tree[T any] interface {
	//Insert links n into the tree. Returning true if n was linked, false
	//if an equal node was already present, in which case n remains
	//entirely the caller's.
	Insert(n *Node[T]) bool
	//Remove unlinks and returns the node comparing equal to q, or nil.
	//q only needs the fields the comparator reads.
	Remove(q *Node[T]) *Node[T]
	//Get returns the node comparing equal to q without modifying the tree.
	Get(q *Node[T]) *Node[T]
	//Has is Get!=nil, for the purposes of membership checks.
	Has(q *Node[T]) bool
	//Minimum element of the tree.
	Minimum() *Node[T]
	//Maximum element of the tree.
	Maximum() *Node[T]
	//Each visits every node in the given order until the visitor returns a
	//non-nil error, which becomes Each's result.
	Each(order Order, visit Visit[T]) error
	//Ascend returns a closure acting like an iterator over the nodes in
	//ascending order: n, ok=f(). The tree must not be modified during the
	//iteration, otherwise the sequence is undefined.
	Ascend() func() (*Node[T], bool)
	//Size of the tree.
	Size() uint
	//Corrupt returns whether the tree's internal structure is damaged,
	//i.e. a stored balance disagrees with the real subtree heights or the
	//ordering property is violated somewhere. A healthy tree always
	//returns false; anything else indicates a caller contract violation.
	Corrupt() bool
}
