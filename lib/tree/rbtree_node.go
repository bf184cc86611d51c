package tree

import (
	"github.com/benz9527/xrbtree/lib/infra"
)

type rbNodeKind uint8

const (
	leafKind rbNodeKind = iota
	internalKind
)

// A slot in the tree. Internal nodes always hold two non-nil
// children, a missing child is a leaf sentinel.
// There is no parent pointer, fixups run on the way back up.
type rbNode[E any] struct {
	left  *rbNode[E]
	right *rbNode[E]
	val   E
	color RBColor
	kind  rbNodeKind
}

var _ RBNode[int] = (*rbNode[int])(nil)

func newLeaf[E any]() *rbNode[E] {
	return &rbNode[E]{
		color: Black,
		kind:  leafKind,
	}
}

func newInternal[E any](val E) *rbNode[E] {
	return &rbNode[E]{
		left:  newLeaf[E](),
		right: newLeaf[E](),
		val:   val,
		color: Red,
		kind:  internalKind,
	}
}

func (node *rbNode[E]) Val() E {
	return node.val
}

func (node *rbNode[E]) Color() RBColor {
	return node.color
}

func (node *rbNode[E]) IsLeaf() bool {
	return node.isLeaf()
}

func (node *rbNode[E]) Left() RBNode[E] {
	return node.child(Left)
}

func (node *rbNode[E]) Right() RBNode[E] {
	return node.child(Right)
}

func (node *rbNode[E]) isLeaf() bool {
	return node.kind == leafKind
}

func (node *rbNode[E]) isRed() bool {
	return node.kind == internalKind && node.color == Red
}

func (node *rbNode[E]) child(dir RBDirection) *rbNode[E] {
	if node.isLeaf() {
		panic( /* debug assertion */ "[rbtree] access the child of a leaf")
	}
	switch dir {
	case Left:
		return node.left
	case Right:
		return node.right
	default:
	}
	panic( /* debug assertion */ "[rbtree] unknown child direction")
}

func (node *rbNode[E]) setChild(dir RBDirection, child *rbNode[E]) {
	if node.isLeaf() {
		panic( /* debug assertion */ "[rbtree] set the child of a leaf")
	}
	switch dir {
	case Left:
		node.left = child
	case Right:
		node.right = child
	default:
		panic( /* debug assertion */ "[rbtree] unknown child direction")
	}
}

// outerRotate lifts the child on side dir into the node's position.
// Returns the new subtree root.
//
//	       |                              |
//	       N                              C
//	      / \    outerRotate(N, Left)    / \
//	     C   R   ===================>   A   N
//	    / \                                / \
//	   A   B                              B   R
func (tree *rbTree[E]) outerRotate(node *rbNode[E], dir RBDirection) *rbNode[E] {
	c := node.child(dir)
	node.setChild(dir, c.child(dir.opposite()))
	c.setChild(dir.opposite(), node)
	tree.stats.recordRotation(outerRotation)
	return c
}

// innerRotate lifts the grandchild node.child(dir).child(¬dir).
// Returns the new subtree root.
//
//	       |                              |
//	       N                              G
//	      / \    innerRotate(N, Left)    / \
//	     C   R   ===================>   C   N
//	    / \                            / \ / \
//	   A   G                          A  X Y  R
//	      / \
//	     X   Y
func (tree *rbTree[E]) innerRotate(node *rbNode[E], dir RBDirection) *rbNode[E] {
	c := node.child(dir)
	g := c.child(dir.opposite())
	c.setChild(dir.opposite(), g.child(dir))
	node.setChild(dir, g.child(dir.opposite()))
	g.setChild(dir, c)
	g.setChild(dir.opposite(), node)
	tree.stats.recordRotation(innerRotation)
	return g
}

type insertState uint8

const (
	// Nothing left to repair above.
	insertFixed insertState = iota
	// The returned subtree root is red.
	insertRedRoot
	// The returned subtree root is red and has a red child.
	insertRedRed
)

func (tree *rbTree[E]) insert(node *rbNode[E], val E) (
	root *rbNode[E],
	old E,
	replaced bool,
	state insertState,
) {
	if node.isLeaf() {
		return newInternal[E](val), old, false, insertRedRoot
	}

	res := tree.cmp(val, node.val)
	if res == 0 {
		old, node.val = node.val, val
		return node, old, true, insertFixed
	}
	dir := Left
	if res > 0 {
		dir = Right
	}

	var child *rbNode[E]
	child, old, replaced, state = tree.insert(node.child(dir), val)
	node.setChild(dir, child)
	root, state = tree.insertRebalance(node, dir, state)
	return root, old, replaced, state
}

// insertRebalance repairs the node whose child on side dir reported state.
//
// im1: red-red with a red uncle, recolor and push the red upward.
//
//	       |                       |
//	      B:G                     R:G
//	     /   \       ====>       /   \
//	   R:P   R:U               B:P   B:U
//	   /                       /
//	 R:X                     R:X
//
// im2: red-red with a black uncle on the outer side, single rotation.
//
//	       |                       |
//	      B:G                     B:P
//	     /   \       ====>       /   \
//	   R:P   B:U               R:X   R:G
//	   /                               \
//	 R:X                               B:U
//
// im3: red-red with a black uncle on the inner side, double rotation.
//
//	       |                       |
//	      B:G                     B:X
//	     /   \       ====>       /   \
//	   R:P   B:U               R:P   R:G
//	     \                             \
//	     R:X                           B:U
func (tree *rbTree[E]) insertRebalance(node *rbNode[E], dir RBDirection, state insertState) (*rbNode[E], insertState) {
	switch state {
	case insertFixed:
		return node, insertFixed
	case insertRedRoot:
		if node.isRed() {
			return node, insertRedRed
		}
		return node, insertFixed
	case insertRedRed:
	default:
		panic( /* debug assertion */ "[rbtree] unknown insert state")
	}

	if node.isRed() {
		panic( /* debug assertion */ "[rbtree] red violation above a red node")
	}

	if uncle := node.child(dir.opposite()); uncle.isRed() {
		// im1
		node.color = Red
		node.left.color, node.right.color = Black, Black
		return node, insertRedRoot
	}

	var root *rbNode[E]
	if node.child(dir).child(dir).isRed() {
		// im2
		root = tree.outerRotate(node, dir)
	} else {
		// im3
		root = tree.innerRotate(node, dir)
	}
	root.color = Black
	node.color = Red
	return root, insertFixed
}

type removeState uint8

const (
	removeNotFound removeState = iota
	removeDone
	// The returned subtree root is double black and one black short.
	removeDoubled
)

func (tree *rbTree[E]) remove(node *rbNode[E], probe infra.Probe[E]) (
	root *rbNode[E],
	val E,
	state removeState,
) {
	if node.isLeaf() {
		return node, val, removeNotFound
	}

	res := probe(node.val)
	if res == 0 {
		return tree.removeNode(node)
	}
	dir := Left
	if res > 0 {
		dir = Right
	}

	var child *rbNode[E]
	child, val, state = tree.remove(node.child(dir), probe)
	node.setChild(dir, child)
	if state != removeDoubled {
		return node, val, state
	}
	root, state = tree.removeRebalance(node, dir)
	return root, val, state
}

// removeNode removes the matched node. A node with two internal
// children swaps in the value of its successor (or predecessor)
// and removes that one instead.
func (tree *rbTree[E]) removeNode(node *rbNode[E]) (
	root *rbNode[E],
	val E,
	state removeState,
) {
	if node.left.isLeaf() || node.right.isLeaf() {
		return tree.unlink(node)
	}

	dir := Right
	if tree.isRmBorrowPred {
		dir = Left
	}
	var (
		child    *rbNode[E]
		borrowed E
	)
	child, borrowed, state = tree.pop(node.child(dir), dir.opposite())
	node.setChild(dir, child)
	val, node.val = node.val, borrowed
	if state != removeDoubled {
		return node, val, state
	}
	root, state = tree.removeRebalance(node, dir)
	return root, val, state
}

// pop removes the extreme node of the subtree in direction dir.
func (tree *rbTree[E]) pop(node *rbNode[E], dir RBDirection) (
	root *rbNode[E],
	val E,
	state removeState,
) {
	if node.isLeaf() {
		return node, val, removeNotFound
	}
	if node.child(dir).isLeaf() {
		return tree.unlink(node)
	}

	var child *rbNode[E]
	child, val, state = tree.pop(node.child(dir), dir)
	node.setChild(dir, child)
	if state != removeDoubled {
		return node, val, state
	}
	root, state = tree.removeRebalance(node, dir)
	return root, val, state
}

// unlink replaces a node owning at most one internal child by that child.
func (tree *rbTree[E]) unlink(node *rbNode[E]) (
	root *rbNode[E],
	val E,
	state removeState,
) {
	root = node.left
	if root.isLeaf() {
		root = node.right
	}
	val = node.val

	var zero E
	node.val = zero
	node.left, node.right = nil, nil

	switch {
	case node.isRed():
		return root, val, removeDone
	case root.isRed():
		root.color = Black
		return root, val, removeDone
	default:
	}
	root.color = DoubleBlack
	return root, val, removeDoubled
}

// removeRebalance repairs the parent whose child on side dir is double black.
// X is the double black node, S the sibling, N the near nephew and F the far one.
//
// rm1: red sibling, rotate it up and repair one level down.
//
//	       |                          |
//	      B:P                        B:S
//	     /   \         ====>        /   \
//	   D:X   R:S                  R:P    F
//	         /  \                /   \
//	        N    F             D:X    N
//
// rm2: black sibling with a red near nephew, double rotation.
//
//	       |                          |
//	      ?:P                        ?:N
//	     /   \         ====>        /   \
//	   D:X   B:S                  B:P   B:S
//	         /  \                 /       \
//	       R:N   F              B:X        F
//
// rm3: black sibling with a red far nephew only, single rotation.
//
//	       |                          |
//	      ?:P                        ?:S
//	     /   \         ====>        /   \
//	   D:X   B:S                  B:P   B:F
//	         /  \                 /  \
//	       B:N  R:F             B:X  B:N
//
// rm4: black sibling with two black nephews, recolor.
// A red parent absorbs the deficiency, a black one inherits it.
//
//	       |                          |
//	      ?:P                        B:P or D:P
//	     /   \         ====>        /   \
//	   D:X   B:S                  B:X   R:S
//	         /  \                       /  \
//	       B:N  B:F                   B:N  B:F
func (tree *rbTree[E]) removeRebalance(parent *rbNode[E], dir RBDirection) (*rbNode[E], removeState) {
	x := parent.child(dir)
	if x.color != DoubleBlack {
		panic( /* debug assertion */ "[rbtree] rebalance without a double black child")
	}
	sibling := parent.child(dir.opposite())
	if sibling.isLeaf() {
		panic( /* debug assertion */ "[rbtree] black violation, double black node without sibling")
	}

	if sibling.isRed() {
		// rm1
		root := tree.outerRotate(parent, dir.opposite())
		root.color = Black
		parent.color = Red
		child, state := tree.removeRebalance(parent, dir)
		if state != removeDone {
			panic( /* debug assertion */ "[rbtree] red parent did not absorb double black")
		}
		root.setChild(dir, child)
		return root, removeDone
	}

	near, far := sibling.child(dir), sibling.child(dir.opposite())
	switch {
	case near.isRed():
		// rm2
		root := tree.innerRotate(parent, dir.opposite())
		root.color = parent.color
		parent.color = Black
		x.color = Black
		return root, removeDone
	case far.isRed():
		// rm3
		root := tree.outerRotate(parent, dir.opposite())
		root.color = parent.color
		parent.color = Black
		far.color = Black
		x.color = Black
		return root, removeDone
	default:
	}

	// rm4
	sibling.color = Red
	x.color = Black
	if parent.isRed() {
		parent.color = Black
		return parent, removeDone
	}
	parent.color = DoubleBlack
	return parent, removeDoubled
}

func (tree *rbTree[E]) search(probe infra.Probe[E]) *rbNode[E] {
	for aux := tree.root; !aux.isLeaf(); {
		res := probe(aux.val)
		if res == 0 {
			return aux
		} else if res < 0 {
			aux = aux.left
		} else {
			aux = aux.right
		}
	}
	return nil
}

func (tree *rbTree[E]) extreme(dir RBDirection) *rbNode[E] {
	aux := tree.root
	if aux.isLeaf() {
		return nil
	}
	for next := aux.child(dir); !next.isLeaf(); next = aux.child(dir) {
		aux = next
	}
	return aux
}
