package tree

import (
	"github.com/benz9527/xrbtree/lib/infra"
)

type setOp uint8

const (
	unionOp setOp = iota
	intersectionOp
	differenceOp
	symmetricDifferenceOp
)

// SetIterator lazily merges the ordered sequences of two trees.
// Both trees must stay unchanged while it is consumed.
type SetIterator[E any] struct {
	left, right *Iterator[E]
	l, r        E
	hasL, hasR  bool
	cmp         infra.Comparator[E]
	op          setOp
}

func newSetIterator[E any](a, b RBTree[E], op setOp) *SetIterator[E] {
	it := &SetIterator[E]{
		left:  a.Iter(),
		right: b.Iter(),
		cmp:   a.Comparator(),
		op:    op,
	}
	it.l, it.hasL = it.left.Next()
	it.r, it.hasR = it.right.Next()
	return it
}

func (it *SetIterator[E]) advanceL() E {
	res := it.l
	it.l, it.hasL = it.left.Next()
	return res
}

func (it *SetIterator[E]) advanceR() E {
	res := it.r
	it.r, it.hasR = it.right.Next()
	return res
}

func (it *SetIterator[E]) Next() (E, bool) {
	for {
		switch {
		case it.hasL && it.hasR:
			res := it.cmp(it.l, it.r)
			switch {
			case res < 0:
				if it.op != intersectionOp {
					return it.advanceL(), true
				}
				it.advanceL()
			case res > 0:
				if it.op == unionOp || it.op == symmetricDifferenceOp {
					return it.advanceR(), true
				}
				it.advanceR()
			default:
				it.advanceR()
				if it.op == unionOp || it.op == intersectionOp {
					return it.advanceL(), true
				}
				it.advanceL()
			}
		case it.hasL:
			if it.op == intersectionOp {
				var zero E
				return zero, false
			}
			return it.advanceL(), true
		case it.hasR:
			if it.op == unionOp || it.op == symmetricDifferenceOp {
				return it.advanceR(), true
			}
			var zero E
			return zero, false
		default:
			var zero E
			return zero, false
		}
	}
}

func (it *SetIterator[E]) Collect() []E {
	res := make([]E, 0, 8)
	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		res = append(res, elem)
	}
	return res
}

// Union yields the elements in a or b, a's element on ties.
func Union[E any](a, b RBTree[E]) *SetIterator[E] {
	return newSetIterator[E](a, b, unionOp)
}

// Intersection yields a's elements also present in b.
func Intersection[E any](a, b RBTree[E]) *SetIterator[E] {
	return newSetIterator[E](a, b, intersectionOp)
}

// Difference yields a's elements absent from b.
func Difference[E any](a, b RBTree[E]) *SetIterator[E] {
	return newSetIterator[E](a, b, differenceOp)
}

func SymmetricDifference[E any](a, b RBTree[E]) *SetIterator[E] {
	return newSetIterator[E](a, b, symmetricDifferenceOp)
}

func IsDisjoint[E any](a, b RBTree[E]) bool {
	_, ok := Intersection[E](a, b).Next()
	return !ok
}

// IsSubset reports whether every element of a is in b.
func IsSubset[E any](a, b RBTree[E]) bool {
	if a.Len() > b.Len() {
		return false
	}
	_, ok := Difference[E](a, b).Next()
	return !ok
}

func IsSuperset[E any](a, b RBTree[E]) bool {
	return IsSubset[E](b, a)
}
