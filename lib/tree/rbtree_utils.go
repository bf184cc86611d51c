package tree

import (
	"errors"
	"math"

	"go.uber.org/multierr"
)

// rbtree rule validation utilities.

// References:
// https://github1s.com/minghu6/rust-minghu6/blob/master/coll_st/src/bst/rb.rs

var (
	ErrRBTreeRedViolation         = errors.New("rbtree red violation")
	ErrRBTreeBlackViolation       = errors.New("rbtree black violation")
	ErrRBTreeRedRoot              = errors.New("rbtree red root")
	ErrRBTreeOrderViolation       = errors.New("rbtree order violation")
	ErrRBTreeLenViolation         = errors.New("rbtree len violation")
	ErrRBTreeHeightViolation      = errors.New("rbtree height violation")
	ErrRBTreeDoubleBlackViolation = errors.New("rbtree double black left behind")
)

func isRed[E any](node RBNode[E]) bool {
	return !node.IsLeaf() && node.Color() == Red
}

// Validate runs every rule check and combines the violations.
func Validate[E any](tree RBTree[E]) error {
	return multierr.Combine(
		RedViolationValidate[E](tree),
		BlackViolationValidate[E](tree),
		OrderViolationValidate[E](tree),
		LenViolationValidate[E](tree),
		HeightViolationValidate[E](tree),
		DoubleBlackViolationValidate[E](tree),
	)
}

// Inorder traversal to validate the red rules.
func RedViolationValidate[E any](tree RBTree[E]) error {
	aux := tree.Root()
	if aux.IsLeaf() {
		if aux.Color() == Red {
			return ErrRBTreeRedViolation
		}
		return nil
	}
	if aux.Color() != Black {
		return ErrRBTreeRedRoot
	}

	stack := make([]RBNode[E], 0, tree.Len()>>1)
	defer func() {
		clear(stack)
	}()

	for ; !aux.IsLeaf(); aux = aux.Left() {
		stack = append(stack, aux)
	}

	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		l, r := aux.Left(), aux.Right()
		if (l.IsLeaf() && l.Color() == Red) || (r.IsLeaf() && r.Color() == Red) {
			return ErrRBTreeRedViolation
		}
		if isRed[E](aux) && (isRed[E](l) || isRed[E](r)) {
			return ErrRBTreeRedViolation
		}

		stack = stack[:size-1]
		for aux = r; !aux.IsLeaf(); aux = aux.Left() {
			stack = append(stack, aux)
		}
	}
	return nil
}

type blackDepthNode[E any] struct {
	node  RBNode[E]
	depth int
}

/*
<X> is a RED node.
[X] is a BLACK node (or leaf).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            [16]

2-3-4 tree like:

	       <8> --- [13] --- <15>
		  /  \             /    \
		 /    \           /      \
	  <1>-[6][11]      [14] <16>-[17]

Each leaf to root black depth are equal.
BFS traversal carries the black depth down to the leaves.
*/
func BlackViolationValidate[E any](tree RBTree[E]) error {
	root := tree.Root()
	if root.IsLeaf() {
		return nil
	}

	queue := make([]blackDepthNode[E], 0, tree.Len()>>1+1)
	defer func() {
		clear(queue)
	}()
	queue = append(queue, blackDepthNode[E]{node: root})

	expected := -1
	for len(queue) > 0 {
		aux := queue[0]
		queue = queue[1:]
		if aux.node.IsLeaf() {
			if expected < 0 {
				expected = aux.depth
			} else if aux.depth != expected {
				return ErrRBTreeBlackViolation
			}
			continue
		}
		depth := aux.depth
		if aux.node.Color() == Black {
			depth++
		}
		queue = append(queue,
			blackDepthNode[E]{node: aux.node.Left(), depth: depth},
			blackDepthNode[E]{node: aux.node.Right(), depth: depth},
		)
	}
	return nil
}

// OrderViolationValidate checks the inorder sequence is strictly
// ascending under the tree comparator.
func OrderViolationValidate[E any](tree RBTree[E]) error {
	var (
		prev    E
		hasPrev bool
		err     error
	)
	cmp := tree.Comparator()
	tree.Foreach(func(idx int64, color RBColor, elem E) bool {
		if hasPrev && cmp(prev, elem) >= 0 {
			err = ErrRBTreeOrderViolation
			return false
		}
		prev, hasPrev = elem, true
		return true
	})
	return err
}

func LenViolationValidate[E any](tree RBTree[E]) error {
	if countInternal[E](tree.Root()) != tree.Len() {
		return ErrRBTreeLenViolation
	}
	return nil
}

func countInternal[E any](node RBNode[E]) int64 {
	if node.IsLeaf() {
		return 0
	}
	return 1 + countInternal[E](node.Left()) + countInternal[E](node.Right())
}

// HeightViolationValidate checks height <= 2*log2(n+1).
func HeightViolationValidate[E any](tree RBTree[E]) error {
	limit := 2 * math.Log2(float64(tree.Len()+1))
	if float64(tree.Height()) > limit {
		return ErrRBTreeHeightViolation
	}
	return nil
}

func DoubleBlackViolationValidate[E any](tree RBTree[E]) error {
	stack := []RBNode[E]{tree.Root()}
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		stack = stack[:size-1]
		if aux.Color() == DoubleBlack {
			return ErrRBTreeDoubleBlackViolation
		}
		if !aux.IsLeaf() {
			stack = append(stack, aux.Left(), aux.Right())
		}
	}
	return nil
}
