package tree

// Iterator walks a tree in order. It is finite and not restartable.
// Mutating the tree during the walk invalidates it.
type Iterator[E any] struct {
	stack []*rbNode[E]
}

func newIterator[E any](root *rbNode[E], size int64) *Iterator[E] {
	it := &Iterator[E]{
		stack: make([]*rbNode[E], 0, size>>1+1),
	}
	it.pushLeft(root)
	return it
}

func (it *Iterator[E]) pushLeft(aux *rbNode[E]) {
	for ; aux != nil && !aux.isLeaf(); aux = aux.left {
		it.stack = append(it.stack, aux)
	}
}

func (it *Iterator[E]) HasNext() bool {
	return len(it.stack) > 0
}

func (it *Iterator[E]) Next() (E, bool) {
	size := len(it.stack)
	if size <= 0 {
		var zero E
		return zero, false
	}
	aux := it.stack[size-1]
	it.stack[size-1] = nil
	it.stack = it.stack[:size-1]
	it.pushLeft(aux.right)
	return aux.val, true
}

// Drain owns the elements detached from a tree and yields
// them in ascending order, removing each one.
type Drain[E any] struct {
	tree *rbTree[E]
}

func (d *Drain[E]) Len() int64 {
	return d.tree.count
}

func (d *Drain[E]) Next() (E, bool) {
	return d.tree.Pop()
}

// Collect drains the rest into a slice.
func (d *Drain[E]) Collect() []E {
	res := make([]E, 0, d.tree.count)
	for elem, ok := d.Next(); ok; elem, ok = d.Next() {
		res = append(res, elem)
	}
	return res
}
