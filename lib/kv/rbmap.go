package kv

import (
	"fmt"
	"strings"

	"github.com/benz9527/xrbtree/lib/infra"
	"github.com/benz9527/xrbtree/lib/tree"
)

type rbMap[K any, V any] struct {
	tree        tree.RBTree[Pair[K, V]]
	keyCmp      infra.Comparator[K]
	statsName   string
	isDesc      bool
	enableStats bool
}

var _ OrderedMap[int, int] = (*rbMap[int, int])(nil)

func (m *rbMap[K, V]) probe(key K) infra.Probe[Pair[K, V]] {
	return func(p Pair[K, V]) int64 {
		return m.keyCmp(key, p.Key)
	}
}

func (m *rbMap[K, V]) Len() int64 {
	return m.tree.Len()
}

func (m *rbMap[K, V]) IsEmpty() bool {
	return m.tree.IsEmpty()
}

func (m *rbMap[K, V]) Insert(key K, val V) (Pair[K, V], bool) {
	return m.tree.Replace(Pair[K, V]{Key: key, Val: val})
}

func (m *rbMap[K, V]) Get(key K) (V, bool) {
	p, ok := m.tree.Search(m.probe(key))
	return p.Val, ok
}

func (m *rbMap[K, V]) GetPair(key K) (Pair[K, V], bool) {
	return m.tree.Search(m.probe(key))
}

func (m *rbMap[K, V]) GetMut(key K) *V {
	if p := m.tree.SearchMut(m.probe(key)); p != nil {
		return &p.Val
	}
	return nil
}

func (m *rbMap[K, V]) ContainsKey(key K) bool {
	_, ok := m.tree.Search(m.probe(key))
	return ok
}

func (m *rbMap[K, V]) Remove(key K) (V, bool) {
	p, ok := m.tree.TakeBy(m.probe(key))
	return p.Val, ok
}

func (m *rbMap[K, V]) RemoveEntry(key K) (Pair[K, V], bool) {
	return m.tree.TakeBy(m.probe(key))
}

func (m *rbMap[K, V]) Pop() (V, bool) {
	p, ok := m.tree.Pop()
	return p.Val, ok
}

func (m *rbMap[K, V]) PopBack() (V, bool) {
	p, ok := m.tree.PopBack()
	return p.Val, ok
}

func (m *rbMap[K, V]) PopPair() (Pair[K, V], bool) {
	return m.tree.Pop()
}

func (m *rbMap[K, V]) PopPairBack() (Pair[K, V], bool) {
	return m.tree.PopBack()
}

func (m *rbMap[K, V]) Peek() (V, bool) {
	p, ok := m.tree.Peek()
	return p.Val, ok
}

func (m *rbMap[K, V]) PeekBack() (V, bool) {
	p, ok := m.tree.PeekBack()
	return p.Val, ok
}

func (m *rbMap[K, V]) PeekPair() (Pair[K, V], bool) {
	return m.tree.Peek()
}

func (m *rbMap[K, V]) PeekPairBack() (Pair[K, V], bool) {
	return m.tree.PeekBack()
}

func (m *rbMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.tree.Len())
	m.Foreach(func(idx int64, key K, val V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func (m *rbMap[K, V]) Values() []V {
	vals := make([]V, 0, m.tree.Len())
	m.Foreach(func(idx int64, key K, val V) bool {
		vals = append(vals, val)
		return true
	})
	return vals
}

func (m *rbMap[K, V]) Pairs() []Pair[K, V] {
	return m.tree.Ordered()
}

func (m *rbMap[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	m.tree.Foreach(func(idx int64, color tree.RBColor, p Pair[K, V]) bool {
		return action(idx, p.Key, p.Val)
	})
}

func (m *rbMap[K, V]) Retain(fn func(key K, val V) bool) {
	m.tree.Retain(func(p Pair[K, V]) bool {
		return fn(p.Key, p.Val)
	})
}

func (m *rbMap[K, V]) Drain() *tree.Drain[Pair[K, V]] {
	return m.tree.Drain()
}

func (m *rbMap[K, V]) KeySet() tree.RBTree[K] {
	keys := tree.NewRBTree[K](m.keyCmp)
	m.Foreach(func(idx int64, key K, val V) bool {
		keys.Insert(key)
		return true
	})
	return keys
}

func (m *rbMap[K, V]) Entry(key K) *Entry[K, V] {
	return &Entry[K, V]{
		m:   m,
		key: key,
	}
}

func (m *rbMap[K, V]) Clear() {
	m.tree.Clear()
}

func (m *rbMap[K, V]) String() string {
	builder := strings.Builder{}
	builder.WriteByte('{')
	m.Foreach(func(idx int64, key K, val V) bool {
		if idx > 0 {
			builder.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&builder, "%v: %v", key, val)
		return true
	})
	builder.WriteByte('}')
	return builder.String()
}

// Entry is a view into a single key of the map, present or not.
type Entry[K any, V any] struct {
	m   *rbMap[K, V]
	key K
}

func (e *Entry[K, V]) Key() K {
	return e.key
}

// Insert sets the value and returns the previous one if any.
func (e *Entry[K, V]) Insert(val V) (V, bool) {
	old, replaced := e.m.Insert(e.key, val)
	return old.Val, replaced
}

// AndModify runs fn on the value if the key is present.
func (e *Entry[K, V]) AndModify(fn func(val *V)) *Entry[K, V] {
	if ptr := e.m.GetMut(e.key); ptr != nil {
		fn(ptr)
	}
	return e
}

func (e *Entry[K, V]) OrInsert(val V) *V {
	return e.OrInsertWith(func() V {
		return val
	})
}

// OrInsertWith only calls fn if the key is absent.
func (e *Entry[K, V]) OrInsertWith(fn func() V) *V {
	if ptr := e.m.GetMut(e.key); ptr != nil {
		return ptr
	}
	e.m.Insert(e.key, fn())
	return e.m.GetMut(e.key)
}

func (e *Entry[K, V]) OrDefault() *V {
	var zero V
	return e.OrInsert(zero)
}

type RBMapOpt[K any, V any] func(*rbMap[K, V])

func WithRBMapDesc[K any, V any]() RBMapOpt[K, V] {
	return func(m *rbMap[K, V]) {
		m.isDesc = true
	}
}

func WithRBMapStats[K any, V any](name string) RBMapOpt[K, V] {
	return func(m *rbMap[K, V]) {
		m.enableStats = true
		m.statsName = name
	}
}

func NewRBMap[K any, V any](keyCmp infra.Comparator[K], opts ...RBMapOpt[K, V]) OrderedMap[K, V] {
	if keyCmp == nil {
		panic("[rbmap] nil key comparator")
	}
	m := &rbMap[K, V]{}
	for _, o := range opts {
		o(m)
	}

	m.keyCmp = keyCmp
	if m.isDesc {
		m.keyCmp = keyCmp.Reverse()
	}
	treeOpts := make([]tree.RBTreeOpt[Pair[K, V]], 0, 1)
	if m.enableStats {
		treeOpts = append(treeOpts, tree.WithRBTreeStats[Pair[K, V]](m.statsName))
	}
	m.tree = tree.NewRBTree[Pair[K, V]](func(i, j Pair[K, V]) int64 {
		return m.keyCmp(i.Key, j.Key)
	}, treeOpts...)
	return m
}

func NewOrderedRBMap[K infra.OrderedKey, V any](opts ...RBMapOpt[K, V]) OrderedMap[K, V] {
	return NewRBMap[K, V](infra.NaturalOrder[K](), opts...)
}
