package kv

import (
	"github.com/benz9527/xrbtree/lib/tree"
)

// Pair is the map element. Pairs compare on the key only.
type Pair[K any, V any] struct {
	Key K
	Val V
}

type OrderedMap[K any, V any] interface {
	Len() int64
	IsEmpty() bool
	// Insert returns the replaced pair if the key was present.
	Insert(key K, val V) (Pair[K, V], bool)
	Get(key K) (V, bool)
	GetPair(key K) (Pair[K, V], bool)
	// GetMut returns a pointer valid until the next mutation.
	GetMut(key K) *V
	ContainsKey(key K) bool
	Remove(key K) (V, bool)
	RemoveEntry(key K) (Pair[K, V], bool)
	Pop() (V, bool)
	PopBack() (V, bool)
	PopPair() (Pair[K, V], bool)
	PopPairBack() (Pair[K, V], bool)
	Peek() (V, bool)
	PeekBack() (V, bool)
	PeekPair() (Pair[K, V], bool)
	PeekPairBack() (Pair[K, V], bool)
	Keys() []K
	Values() []V
	Pairs() []Pair[K, V]
	Foreach(action func(idx int64, key K, val V) bool)
	Retain(fn func(key K, val V) bool)
	Drain() *tree.Drain[Pair[K, V]]
	// KeySet copies the keys into a tree ordered like the map.
	KeySet() tree.RBTree[K]
	Entry(key K) *Entry[K, V]
	Clear()
}
