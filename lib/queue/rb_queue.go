package queue

import (
	"sync"

	"github.com/benz9527/xrbtree/lib/infra"
	"github.com/benz9527/xrbtree/lib/tree"
)

type RBQueue[E any] struct {
	tree     tree.RBTree[E]
	lock     *sync.Mutex
	treeOpts []tree.RBTreeOpt[E]
}

var _ PriorityQueue[int] = (*RBQueue[int])(nil)

func (pq *RBQueue[E]) Len() int64 {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.Len()
}

func (pq *RBQueue[E]) IsEmpty() bool {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.IsEmpty()
}

func (pq *RBQueue[E]) Insert(elem E) bool {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.Insert(elem)
}

func (pq *RBQueue[E]) Replace(elem E) (E, bool) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.Replace(elem)
}

func (pq *RBQueue[E]) Contains(elem E) bool {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.Contains(elem)
}

func (pq *RBQueue[E]) Get(elem E) (E, bool) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.Get(elem)
}

func (pq *RBQueue[E]) Take(elem E) (E, bool) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.Take(elem)
}

func (pq *RBQueue[E]) Remove(elem E) bool {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.Remove(elem)
}

func (pq *RBQueue[E]) Pop() (E, bool) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.Pop()
}

func (pq *RBQueue[E]) PopBack() (E, bool) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.PopBack()
}

func (pq *RBQueue[E]) Peek() (E, bool) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.Peek()
}

func (pq *RBQueue[E]) PeekBack() (E, bool) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.PeekBack()
}

func (pq *RBQueue[E]) Ordered() []E {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.Ordered()
}

// Drain detaches every element, the queue is empty afterward.
// The returned drain is not guarded by the queue lock.
func (pq *RBQueue[E]) Drain() *tree.Drain[E] {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	return pq.tree.Drain()
}

func (pq *RBQueue[E]) Retain(fn func(elem E) bool) {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	pq.tree.Retain(fn)
}

func (pq *RBQueue[E]) Clear() {
	if pq.lock != nil {
		pq.lock.Lock()
		defer pq.lock.Unlock()
	}
	pq.tree.Clear()
}

type RBQueueOption[E any] func(*RBQueue[E])

func WithRBQueueEnableThreadSafe[E any]() RBQueueOption[E] {
	return func(pq *RBQueue[E]) {
		pq.lock = &sync.Mutex{}
	}
}

func WithRBQueueDesc[E any]() RBQueueOption[E] {
	return func(pq *RBQueue[E]) {
		pq.treeOpts = append(pq.treeOpts, tree.WithRBTreeDesc[E]())
	}
}

func WithRBQueueStats[E any](name string) RBQueueOption[E] {
	return func(pq *RBQueue[E]) {
		pq.treeOpts = append(pq.treeOpts, tree.WithRBTreeStats[E](name))
	}
}

func NewRBQueue[E any](cmp infra.Comparator[E], opts ...RBQueueOption[E]) PriorityQueue[E] {
	pq := &RBQueue[E]{
		treeOpts: make([]tree.RBTreeOpt[E], 0, 2),
	}
	for _, o := range opts {
		if o != nil {
			o(pq)
		}
	}
	pq.tree = tree.NewRBTree[E](cmp, pq.treeOpts...)
	pq.treeOpts = nil
	return pq
}

func NewOrderedRBQueue[E infra.OrderedKey](opts ...RBQueueOption[E]) PriorityQueue[E] {
	return NewRBQueue[E](infra.NaturalOrder[E](), opts...)
}
