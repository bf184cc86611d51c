package queue

import (
	"github.com/benz9527/xrbtree/lib/tree"
)

// PriorityQueue orders its elements by the comparator it was built with.
// Elements comparing equal are the same entry, the later one replaces.
type PriorityQueue[E any] interface {
	Len() int64
	IsEmpty() bool
	Insert(elem E) bool
	Replace(elem E) (E, bool)
	Contains(elem E) bool
	Get(elem E) (E, bool)
	Take(elem E) (E, bool)
	Remove(elem E) bool
	// Pop removes the element ordered first.
	Pop() (E, bool)
	PopBack() (E, bool)
	Peek() (E, bool)
	PeekBack() (E, bool)
	Ordered() []E
	Drain() *tree.Drain[E]
	Retain(fn func(elem E) bool)
	Clear()
}
