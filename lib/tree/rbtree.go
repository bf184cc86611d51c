package tree

import (
	"fmt"

	"github.com/benz9527/xrbtree/lib/infra"
)

// References:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties
// p1. Every node is either red or black.
// p2. All leaf sentinels are black.
// p3. A red node does not have a red child. (red-violation)
// p4. Every path from a given node to any of its descendant
//   leaves goes through the same number of black nodes. (black-violation)
// p5. The root is black.
// The longest path is at most twice the shortest one, so the
// height stays within 2*log2(n+1).

type rbTree[E any] struct {
	root           *rbNode[E]
	cmp            infra.Comparator[E]
	stats          *rbTreeStats
	statsName      string
	count          int64
	isDesc         bool
	isRmBorrowPred bool
	isStatsEnabled bool
}

var _ RBTree[int] = (*rbTree[int])(nil)

func (tree *rbTree[E]) Len() int64 {
	return tree.count
}

func (tree *rbTree[E]) IsEmpty() bool {
	return tree.count == 0
}

func (tree *rbTree[E]) Root() RBNode[E] {
	return tree.root
}

func (tree *rbTree[E]) Comparator() infra.Comparator[E] {
	return tree.cmp
}

func (tree *rbTree[E]) Height() int {
	return height(tree.root)
}

func height[E any](node *rbNode[E]) int {
	if node.isLeaf() {
		return 0
	}
	return 1 + max(height(node.left), height(node.right))
}

func (tree *rbTree[E]) BlackHeight() int {
	h := 0
	for aux := tree.root; !aux.isLeaf(); aux = aux.left {
		if aux.color == Black {
			h++
		}
	}
	return h
}

func (tree *rbTree[E]) Insert(elem E) bool {
	_, replaced := tree.Replace(elem)
	return !replaced
}

func (tree *rbTree[E]) Replace(elem E) (E, bool) {
	root, old, replaced, state := tree.insert(tree.root, elem)
	if state == insertRedRed {
		panic( /* debug assertion */ "[rbtree] red violation escaped the root")
	}
	root.color = Black
	tree.root = root
	if !replaced {
		tree.count++
	}
	tree.stats.recordInsert(replaced)
	return old, replaced
}

func (tree *rbTree[E]) Contains(elem E) bool {
	return tree.search(tree.cmp.ProbeOf(elem)) != nil
}

func (tree *rbTree[E]) Get(elem E) (E, bool) {
	return tree.Search(tree.cmp.ProbeOf(elem))
}

func (tree *rbTree[E]) Search(probe infra.Probe[E]) (E, bool) {
	if node := tree.search(probe); node != nil {
		return node.val, true
	}
	var zero E
	return zero, false
}

func (tree *rbTree[E]) GetMut(elem E) *E {
	return tree.SearchMut(tree.cmp.ProbeOf(elem))
}

func (tree *rbTree[E]) SearchMut(probe infra.Probe[E]) *E {
	if node := tree.search(probe); node != nil {
		return &node.val
	}
	return nil
}

func (tree *rbTree[E]) Remove(elem E) bool {
	_, ok := tree.TakeBy(tree.cmp.ProbeOf(elem))
	return ok
}

func (tree *rbTree[E]) Take(elem E) (E, bool) {
	return tree.TakeBy(tree.cmp.ProbeOf(elem))
}

func (tree *rbTree[E]) RemoveBy(probe infra.Probe[E]) bool {
	_, ok := tree.TakeBy(probe)
	return ok
}

func (tree *rbTree[E]) TakeBy(probe infra.Probe[E]) (E, bool) {
	root, val, state := tree.remove(tree.root, probe)
	return tree.settle("remove", root, val, state)
}

func (tree *rbTree[E]) Pop() (E, bool) {
	root, val, state := tree.pop(tree.root, Left)
	return tree.settle("pop", root, val, state)
}

func (tree *rbTree[E]) PopBack() (E, bool) {
	root, val, state := tree.pop(tree.root, Right)
	return tree.settle("pop_back", root, val, state)
}

// settle installs the root returned by a remove walk.
func (tree *rbTree[E]) settle(op string, root *rbNode[E], val E, state removeState) (E, bool) {
	switch state {
	case removeNotFound:
		return val, false
	case removeDoubled:
		tree.stats.recordRootAbsorb()
	case removeDone:
	default:
		panic( /* debug assertion */ "[rbtree] unknown remove state at the root")
	}
	root.color = Black
	tree.root = root
	tree.count--
	tree.stats.recordRemove(op)
	return val, true
}

func (tree *rbTree[E]) Peek() (E, bool) {
	return tree.peek(Left)
}

func (tree *rbTree[E]) PeekBack() (E, bool) {
	return tree.peek(Right)
}

func (tree *rbTree[E]) peek(dir RBDirection) (E, bool) {
	if node := tree.extreme(dir); node != nil {
		return node.val, true
	}
	var zero E
	return zero, false
}

func (tree *rbTree[E]) Ordered() []E {
	res := make([]E, 0, tree.count)
	tree.Foreach(func(idx int64, color RBColor, elem E) bool {
		res = append(res, elem)
		return true
	})
	return res
}

func (tree *rbTree[E]) Iter() *Iterator[E] {
	return newIterator[E](tree.root, tree.count)
}

// Inorder traversal to implement the DFS.
func (tree *rbTree[E]) Foreach(action func(idx int64, color RBColor, elem E) bool) {
	size := tree.count
	aux := tree.root
	if size <= 0 || aux.isLeaf() {
		return
	}

	stack := make([]*rbNode[E], 0, size>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size = int64(len(stack)); size > 0; size = int64(len(stack)) {
		if aux = stack[size-1]; !action(idx, aux.color, aux.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = aux.right; !aux.isLeaf(); aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

func (tree *rbTree[E]) Drain() *Drain[E] {
	detached := &rbTree[E]{
		root:           tree.root,
		cmp:            tree.cmp,
		count:          tree.count,
		isRmBorrowPred: tree.isRmBorrowPred,
	}
	tree.stats.recordClear(tree.count)
	tree.root = newLeaf[E]()
	tree.count = 0
	return &Drain[E]{tree: detached}
}

// Retain keeps only the elements fn returns true for.
func (tree *rbTree[E]) Retain(fn func(elem E) bool) {
	dropped := make([]E, 0, 8)
	tree.Foreach(func(idx int64, color RBColor, elem E) bool {
		if !fn(elem) {
			dropped = append(dropped, elem)
		}
		return true
	})
	for _, elem := range dropped {
		if _, ok := tree.TakeBy(tree.cmp.ProbeOf(elem)); !ok {
			panic( /* debug assertion */ "[rbtree] retain lost an element")
		}
	}
}

func (tree *rbTree[E]) Clear() {
	tree.stats.recordClear(tree.count)
	tree.root = newLeaf[E]()
	tree.count = 0
}

// Release unlinks every node so the tree holds no references,
// then leaves an empty tree behind.
func (tree *rbTree[E]) Release() {
	aux := tree.root
	tree.Clear()
	if aux.isLeaf() {
		return
	}

	stack := make([]*rbNode[E], 0, 16)
	defer func() {
		clear(stack)
	}()

	for ; !aux.isLeaf(); aux = aux.left {
		stack = append(stack, aux)
	}

	var zero E
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		stack = stack[:size-1]
		r := aux.right
		aux.left, aux.right, aux.val = nil, nil, zero
		for aux = r; !aux.isLeaf(); aux = aux.left {
			stack = append(stack, aux)
		}
	}
}

func (tree *rbTree[E]) String() string {
	return fmt.Sprint(tree.Ordered())
}

type RBTreeOpt[E any] func(*rbTree[E])

func WithRBTreeDesc[E any]() RBTreeOpt[E] {
	return func(tree *rbTree[E]) {
		tree.isDesc = true
	}
}

// WithRBTreeRemoveBorrowPred removes a node with two children by
// borrowing its predecessor. The successor is borrowed by default.
func WithRBTreeRemoveBorrowPred[E any]() RBTreeOpt[E] {
	return func(tree *rbTree[E]) {
		tree.isRmBorrowPred = true
	}
}

// WithRBTreeStats records the tree operations with the global
// otel meter provider under the given name.
func WithRBTreeStats[E any](name string) RBTreeOpt[E] {
	return func(tree *rbTree[E]) {
		tree.isStatsEnabled = true
		tree.statsName = name
	}
}

func NewRBTree[E any](cmp infra.Comparator[E], opts ...RBTreeOpt[E]) RBTree[E] {
	if cmp == nil {
		panic("[rbtree] nil comparator")
	}
	tree := &rbTree[E]{
		root:           newLeaf[E](),
		count:          0,
		isDesc:         false,
		isRmBorrowPred: false,
	}

	for _, o := range opts {
		o(tree)
	}

	tree.cmp = cmp
	if tree.isDesc {
		tree.cmp = cmp.Reverse()
	}
	if tree.isStatsEnabled {
		tree.stats = newRBTreeStats(tree.statsName)
	}
	return tree
}

func NewOrderedRBTree[K infra.OrderedKey](opts ...RBTreeOpt[K]) RBTree[K] {
	return NewRBTree[K](infra.NaturalOrder[K](), opts...)
}

// NewRBTreeFrom builds a tree from elems, later duplicates replacing earlier ones.
func NewRBTreeFrom[E any](cmp infra.Comparator[E], elems []E, opts ...RBTreeOpt[E]) RBTree[E] {
	tree := NewRBTree[E](cmp, opts...)
	for _, elem := range elems {
		tree.Insert(elem)
	}
	return tree
}
