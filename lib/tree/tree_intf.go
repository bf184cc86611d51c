package tree

import (
	"fmt"

	"github.com/benz9527/xrbtree/lib/infra"
)

type RBColor uint8

const (
	Black RBColor = iota
	Red
	// DoubleBlack only lives inside a single remove call.
	DoubleBlack
)

func (c RBColor) String() string {
	switch c {
	case Black:
		return "Black"
	case Red:
		return "Red"
	case DoubleBlack:
		return "DoubleBlack"
	default:
	}
	return fmt.Sprintf("RBColor(%d)", uint8(c))
}

func (c RBColor) short() string {
	switch c {
	case Black:
		return "B"
	case Red:
		return "R"
	case DoubleBlack:
		return "D"
	default:
	}
	return "?"
}

type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

func (dir RBDirection) String() string {
	switch dir {
	case Left:
		return "Left"
	case Root:
		return "Root"
	case Right:
		return "Right"
	default:
	}
	return fmt.Sprintf("RBDirection(%d)", int8(dir))
}

func (dir RBDirection) opposite() RBDirection {
	switch dir {
	case Left:
		return Right
	case Right:
		return Left
	default:
	}
	// impossible run to here
	panic( /* debug assertion */ "[rbtree] root direction has no opposite")
}

// RBNode is the read-only view of a tree slot. A slot is either
// an internal node carrying an element or a black leaf sentinel.
// Left and Right panic on a leaf.
type RBNode[E any] interface {
	Val() E
	Color() RBColor
	IsLeaf() bool
	Left() RBNode[E]
	Right() RBNode[E]
}

type RBTree[E any] interface {
	fmt.Stringer

	Len() int64
	IsEmpty() bool
	Root() RBNode[E]
	Comparator() infra.Comparator[E]
	// Height counts internal nodes on the longest root to leaf path.
	Height() int
	// BlackHeight counts black internal nodes on the leftmost path.
	BlackHeight() int

	// Insert returns true if the element was not present.
	// An equal element is replaced.
	Insert(elem E) bool
	// Replace returns the displaced element if an equal one was present.
	Replace(elem E) (E, bool)

	Contains(elem E) bool
	Get(elem E) (E, bool)
	Search(probe infra.Probe[E]) (E, bool)
	// GetMut and SearchMut return a pointer valid until the next
	// mutation. The caller must not change the element's order.
	GetMut(elem E) *E
	SearchMut(probe infra.Probe[E]) *E

	Remove(elem E) bool
	Take(elem E) (E, bool)
	RemoveBy(probe infra.Probe[E]) bool
	TakeBy(probe infra.Probe[E]) (E, bool)

	Pop() (E, bool)
	PopBack() (E, bool)
	Peek() (E, bool)
	PeekBack() (E, bool)

	Ordered() []E
	Iter() *Iterator[E]
	Foreach(action func(idx int64, color RBColor, elem E) bool)
	Drain() *Drain[E]
	Retain(fn func(elem E) bool)
	Clear()
	Release()
}
