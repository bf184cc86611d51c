package tree

import (
	randv2 "math/rand/v2"
	"sort"
	"testing"

	"github.com/benz9527/xrbtree/lib/id"
	"github.com/benz9527/xrbtree/lib/infra"
	"github.com/stretchr/testify/require"
)

func newIntTree(opts ...RBTreeOpt[int]) *rbTree[int] {
	return NewOrderedRBTree[int](opts...).(*rbTree[int])
}

func TestRBNode_LeafChildPanics(t *testing.T) {
	leaf := newLeaf[int]()
	require.True(t, leaf.IsLeaf())
	require.Equal(t, Black, leaf.Color())
	require.Panics(t, func() {
		leaf.Left()
	})
	require.Panics(t, func() {
		leaf.Right()
	})
	require.Panics(t, func() {
		leaf.setChild(Left, newLeaf[int]())
	})
	require.Panics(t, func() {
		Root.opposite()
	})
}

func TestNewRBTree_NilComparator(t *testing.T) {
	require.Panics(t, func() {
		NewRBTree[int](nil)
	})
}

func TestRBTree_Empty(t *testing.T) {
	tree := NewOrderedRBTree[int]()
	require.True(t, tree.IsEmpty())
	require.Equal(t, int64(0), tree.Len())
	require.True(t, tree.Root().IsLeaf())

	_, ok := tree.Pop()
	require.False(t, ok)
	_, ok = tree.PopBack()
	require.False(t, ok)
	_, ok = tree.Peek()
	require.False(t, ok)
	_, ok = tree.PeekBack()
	require.False(t, ok)
	_, ok = tree.Get(1)
	require.False(t, ok)
	require.Nil(t, tree.GetMut(1))
	require.False(t, tree.Remove(1))
	require.Equal(t, 0, tree.Height())
	require.Equal(t, 0, tree.BlackHeight())
	require.Equal(t, "___", Dump[int](tree))
	require.Equal(t, "[]", tree.String())
	require.NoError(t, Validate[int](tree))
}

func TestRBTree_InsertLayouts(t *testing.T) {
	testcases := []struct {
		name     string
		inserts  []int
		expected string
	}{
		{
			name:     "single root",
			inserts:  []int{1},
			expected: "B:1\n1->___ 1->___",
		},
		{
			name:    "red children",
			inserts: []int{8, 5, 18},
			expected: "B:8\n" +
				"8->R:5 8->R:18\n" +
				"5->___ 5->___ 18->___ 18->___",
		},
		{
			name:    "recolor then inner rotation",
			inserts: []int{8, 5, 18, 15, 17},
			expected: "B:8\n" +
				"8->B:5 8->B:17\n" +
				"5->___ 5->___ 17->R:15 17->R:18\n" +
				"15->___ 15->___ 18->___ 18->___",
		},
		{
			name:    "red uncle recolor",
			inserts: []int{2, 3, 1, 0},
			expected: "B:2\n" +
				"2->B:1 2->B:3\n" +
				"1->R:0 1->___ 3->___ 3->___\n" +
				"0->___ 0->___",
		},
		{
			name:    "ascending sequence",
			inserts: []int{1, 2, 3, 4, 5, 6, 7},
			expected: "B:2\n" +
				"2->B:1 2->R:4\n" +
				"1->___ 1->___ 4->B:3 4->B:6\n" +
				"3->___ 3->___ 6->R:5 6->R:7\n" +
				"5->___ 5->___ 7->___ 7->___",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tree := NewRBTreeFrom[int](infra.NaturalOrder[int](), tc.inserts)
			require.Equal(tt, tc.expected, Dump[int](tree))
			require.Equal(tt, int64(len(tc.inserts)), tree.Len())
			require.NoError(tt, Validate[int](tree))
		})
	}
}

// The uncle is painted black by hand to reach the rotation
// cases from a three node tree.
func TestRBTree_InsertBlackUncleRotation(t *testing.T) {
	testcases := []struct {
		name     string
		elem     int
		expected string
	}{
		{
			name: "outer single rotation",
			elem: 0,
			expected: "B:10\n" +
				"10->R:0 10->R:20\n" +
				"0->___ 0->___ 20->___ 20->B:30\n" +
				"30->___ 30->___",
		},
		{
			name: "inner double rotation",
			elem: 15,
			expected: "B:15\n" +
				"15->R:10 15->R:20\n" +
				"10->___ 10->___ 20->___ 20->B:30\n" +
				"30->___ 30->___",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tree := newIntTree()
			tree.Insert(20)
			tree.Insert(30)
			tree.Insert(10)
			tree.root.right.color = Black
			require.True(tt, tree.Insert(tc.elem))
			require.Equal(tt, tc.expected, Dump[int](tree))
			require.NoError(tt, RedViolationValidate[int](tree))
		})
	}
}

func TestRBTree_RemoveLayouts(t *testing.T) {
	testcases := []struct {
		name     string
		opts     []RBTreeOpt[int]
		inserts  []int
		removes  []int
		expected string
	}{
		{
			name:    "red leaf",
			inserts: []int{30, 20, 40, 10},
			removes: []int{10},
			expected: "B:30\n" +
				"30->B:20 30->B:40\n" +
				"20->___ 20->___ 40->___ 40->___",
		},
		{
			name:    "root borrows successor",
			inserts: []int{20, 10, 30},
			removes: []int{20},
			expected: "B:30\n" +
				"30->R:10 30->___\n" +
				"10->___ 10->___",
		},
		{
			name:    "root borrows predecessor",
			opts:    []RBTreeOpt[int]{WithRBTreeRemoveBorrowPred[int]()},
			inserts: []int{20, 10, 30},
			removes: []int{20},
			expected: "B:10\n" +
				"10->___ 10->R:30\n" +
				"30->___ 30->___",
		},
		{
			name:     "root with one red child",
			inserts:  []int{20, 10, 30},
			removes:  []int{20, 30},
			expected: "B:10\n10->___ 10->___",
		},
		{
			name:    "successor with red child",
			inserts: []int{20, 10, 30, 15, 40},
			removes: []int{20},
			expected: "B:30\n" +
				"30->B:10 30->B:40\n" +
				"10->___ 10->R:15 40->___ 40->___\n" +
				"15->___ 15->___",
		},
		{
			name:    "red parent absorbs",
			inserts: []int{1, 2, 3, 4, 5, 6, 7},
			removes: []int{5, 7, 3},
			expected: "B:2\n" +
				"2->B:1 2->B:4\n" +
				"1->___ 1->___ 4->___ 4->R:6\n" +
				"6->___ 6->___",
		},
		{
			name:    "red sibling",
			inserts: []int{2, 1, 4, 3, 5, 6},
			removes: []int{1},
			expected: "B:4\n" +
				"4->B:2 4->B:5\n" +
				"2->___ 2->R:3 5->___ 5->R:6\n" +
				"3->___ 3->___ 6->___ 6->___",
		},
		{
			name:    "red near nephew under red parent",
			inserts: []int{8, 5, 9, 2, 7, 6},
			removes: []int{2},
			expected: "B:8\n" +
				"8->R:6 8->B:9\n" +
				"6->B:5 6->B:7 9->___ 9->___\n" +
				"5->___ 5->___ 7->___ 7->___",
		},
		{
			name:    "red near nephew",
			inserts: []int{30, 20, 40, 35, 50},
			removes: []int{20},
			expected: "B:35\n" +
				"35->B:30 35->B:40\n" +
				"30->___ 30->___ 40->___ 40->R:50\n" +
				"50->___ 50->___",
		},
		{
			name:    "red far nephew",
			inserts: []int{30, 20, 40, 50},
			removes: []int{20},
			expected: "B:40\n" +
				"40->B:30 40->B:50\n" +
				"30->___ 30->___ 50->___ 50->___",
		},
		{
			name:    "black sibling recolor",
			inserts: []int{65, 50, 80, 10, 60, 62, 70, 90, 92},
			removes: []int{92, 90},
			expected: "B:65\n" +
				"65->R:50 65->B:80\n" +
				"50->B:10 50->B:60 80->R:70 80->___\n" +
				"10->___ 10->___ 60->___ 60->R:62 70->___ 70->___\n" +
				"62->___ 62->___",
		},
		{
			name:    "red sibling then near nephew",
			inserts: []int{65, 50, 80, 10, 60, 62, 70, 90, 92},
			removes: []int{92, 90, 80, 70},
			expected: "B:50\n" +
				"50->B:10 50->R:62\n" +
				"10->___ 10->___ 62->B:60 62->B:65\n" +
				"60->___ 60->___ 65->___ 65->___",
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tree := NewRBTreeFrom[int](infra.NaturalOrder[int](), tc.inserts, tc.opts...)
			for _, elem := range tc.removes {
				val, ok := tree.Take(elem)
				require.True(tt, ok)
				require.Equal(tt, elem, val)
				require.NoError(tt, Validate[int](tree))
			}
			require.Equal(tt, tc.expected, Dump[int](tree))
			require.Equal(tt, int64(len(tc.inserts)-len(tc.removes)), tree.Len())
		})
	}
}

func TestRBTree_PopOrder(t *testing.T) {
	tree := NewRBTreeFrom[int](infra.NaturalOrder[int](), []int{5, 2, 7, 6})
	front, ok := tree.Peek()
	require.True(t, ok)
	require.Equal(t, 2, front)
	back, ok := tree.PeekBack()
	require.True(t, ok)
	require.Equal(t, 7, back)

	for _, expected := range []int{2, 5, 6, 7} {
		val, ok := tree.Pop()
		require.True(t, ok)
		require.Equal(t, expected, val)
		require.NoError(t, Validate[int](tree))
	}
	_, ok = tree.Pop()
	require.False(t, ok)
	require.True(t, tree.IsEmpty())

	tree = NewRBTreeFrom[int](infra.NaturalOrder[int](), []int{5, 2, 7, 6})
	for _, expected := range []int{7, 6, 5, 2} {
		val, ok := tree.PopBack()
		require.True(t, ok)
		require.Equal(t, expected, val)
		require.NoError(t, Validate[int](tree))
	}
	_, ok = tree.PopBack()
	require.False(t, ok)
}

type entry struct {
	key     int
	payload string
}

func entryCmp(i, j entry) int64 {
	return int64(i.key - j.key)
}

func TestRBTree_Replace(t *testing.T) {
	tree := NewRBTree[entry](entryCmp)
	for i := 0; i < 64; i++ {
		require.True(t, tree.Insert(entry{key: i, payload: "a"}))
	}
	for i := 0; i < 64; i += 3 {
		old, replaced := tree.Replace(entry{key: i, payload: "b"})
		require.True(t, replaced)
		require.Equal(t, entry{key: i, payload: "a"}, old)
		require.NoError(t, Validate[entry](tree))
	}
	require.Equal(t, int64(64), tree.Len())

	require.False(t, tree.Insert(entry{key: 1, payload: "c"}))
	require.Equal(t, int64(64), tree.Len())

	tree.Foreach(func(idx int64, color RBColor, elem entry) bool {
		require.Equal(t, int(idx), elem.key)
		switch {
		case idx == 1:
			require.Equal(t, "c", elem.payload)
		case idx%3 == 0:
			require.Equal(t, "b", elem.payload)
		default:
			require.Equal(t, "a", elem.payload)
		}
		return true
	})

	_, replaced := tree.Replace(entry{key: 100, payload: "d"})
	require.False(t, replaced)
	require.Equal(t, int64(65), tree.Len())
}

func TestRBTree_SearchAndMut(t *testing.T) {
	tree := NewRBTree[entry](entryCmp)
	for i := 0; i < 10; i++ {
		tree.Insert(entry{key: i * 10})
	}

	val, ok := tree.Search(func(elem entry) int64 {
		return int64(40 - elem.key)
	})
	require.True(t, ok)
	require.Equal(t, 40, val.key)

	_, ok = tree.Search(func(elem entry) int64 {
		return int64(45 - elem.key)
	})
	require.False(t, ok)
	require.True(t, tree.Contains(entry{key: 90}))
	require.False(t, tree.Contains(entry{key: 91}))

	ptr := tree.GetMut(entry{key: 30})
	require.NotNil(t, ptr)
	ptr.payload = "changed"
	val, ok = tree.Get(entry{key: 30})
	require.True(t, ok)
	require.Equal(t, "changed", val.payload)

	ptr = tree.SearchMut(func(elem entry) int64 {
		return int64(70 - elem.key)
	})
	require.NotNil(t, ptr)
	require.Equal(t, 70, ptr.key)

	require.True(t, tree.RemoveBy(func(elem entry) int64 {
		return int64(70 - elem.key)
	}))
	require.False(t, tree.RemoveBy(func(elem entry) int64 {
		return int64(70 - elem.key)
	}))
	val, ok = tree.TakeBy(func(elem entry) int64 {
		return int64(30 - elem.key)
	})
	require.True(t, ok)
	require.Equal(t, "changed", val.payload)
	require.Equal(t, int64(8), tree.Len())
	require.NoError(t, Validate[entry](tree))
}

func TestRBTree_Desc(t *testing.T) {
	tree := NewOrderedRBTree[int](WithRBTreeDesc[int]())
	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}
	tree.Foreach(func(idx int64, color RBColor, elem int) bool {
		require.Equal(t, 99-int(idx), elem)
		return true
	})
	val, ok := tree.Pop()
	require.True(t, ok)
	require.Equal(t, 99, val)
	require.NoError(t, Validate[int](tree))
}

func TestRBTree_IterAndForeach(t *testing.T) {
	elems := []int{9, 3, 7, 1, 5, 11, 13}
	tree := NewRBTreeFrom[int](infra.NaturalOrder[int](), elems)

	it := tree.Iter()
	res := make([]int, 0, len(elems))
	for elem, ok := it.Next(); ok; elem, ok = it.Next() {
		res = append(res, elem)
	}
	require.Equal(t, []int{1, 3, 5, 7, 9, 11, 13}, res)
	require.False(t, it.HasNext())
	_, ok := it.Next()
	require.False(t, ok)
	require.Equal(t, res, tree.Ordered())
	require.Equal(t, "[1 3 5 7 9 11 13]", tree.String())

	visited := 0
	tree.Foreach(func(idx int64, color RBColor, elem int) bool {
		visited++
		return elem < 5
	})
	require.Equal(t, 3, visited)
}

func TestRBTree_DrainRetainClear(t *testing.T) {
	tree := NewOrderedRBTree[int]()
	for i := 0; i < 100; i++ {
		tree.Insert(i)
	}

	tree.Retain(func(elem int) bool {
		return elem%2 == 0
	})
	require.Equal(t, int64(50), tree.Len())
	require.NoError(t, Validate[int](tree))
	tree.Foreach(func(idx int64, color RBColor, elem int) bool {
		require.Equal(t, int(idx)*2, elem)
		return true
	})

	drain := tree.Drain()
	require.True(t, tree.IsEmpty())
	require.Equal(t, int64(50), drain.Len())
	first, ok := drain.Next()
	require.True(t, ok)
	require.Equal(t, 0, first)
	rest := drain.Collect()
	require.Len(t, rest, 49)
	require.Equal(t, 98, rest[len(rest)-1])
	require.Equal(t, int64(0), drain.Len())

	// The tree stays usable after draining.
	tree.Insert(1)
	require.Equal(t, []int{1}, tree.Ordered())

	tree.Clear()
	require.True(t, tree.IsEmpty())
	require.True(t, tree.Root().IsLeaf())
}

func TestRBTree_Release(t *testing.T) {
	tree := newIntTree()
	for i := 0; i < 100_000; i++ {
		tree.Insert(i)
	}
	tree.Foreach(func(idx int64, color RBColor, elem int) bool {
		require.Equal(t, int(idx), elem)
		return true
	})
	tree.Release()
	require.Equal(t, int64(0), tree.Len())
	require.True(t, tree.Root().IsLeaf())
	require.NoError(t, Validate[int](tree))
}

func TestRBTree_Height(t *testing.T) {
	testcases := []struct {
		name  string
		total int
	}{
		{name: "1", total: 1},
		{name: "7", total: 7},
		{name: "1023", total: 1023},
		{name: "100000", total: 100_000},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			tree := NewOrderedRBTree[int]()
			for i := 0; i < tc.total; i++ {
				tree.Insert(i)
			}
			require.NoError(tt, HeightViolationValidate[int](tree))
			require.GreaterOrEqual(tt, tree.Height(), tree.BlackHeight())
			require.LessOrEqual(tt, tree.Height(), 2*tree.BlackHeight())
		})
	}
}

func rbtreeSequentialNumberRunCore(t *testing.T, borrowPred bool) {
	total := 1000
	insertTotal := int(float64(total) * 0.8)
	removeTotal := int(float64(total) * 0.2)

	opts := make([]RBTreeOpt[int], 0, 1)
	if borrowPred {
		opts = append(opts, WithRBTreeRemoveBorrowPred[int]())
	}
	tree := NewOrderedRBTree[int](opts...)

	for i := 0; i < insertTotal+removeTotal; i++ {
		require.True(t, tree.Insert(i))
		require.NoError(t, Validate[int](tree))
	}
	for i := insertTotal; i < removeTotal+insertTotal; i++ {
		val, ok := tree.Take(i)
		require.True(t, ok)
		require.Equal(t, i, val)
		require.NoError(t, Validate[int](tree))
	}
	tree.Foreach(func(idx int64, color RBColor, elem int) bool {
		require.Equal(t, int(idx), elem)
		return true
	})
	for i := 0; i < insertTotal; i += 2 {
		require.True(t, tree.Remove(i))
		require.NoError(t, Validate[int](tree))
	}
	require.Equal(t, int64(insertTotal/2), tree.Len())
}

func TestRBTree_SequentialNumber(t *testing.T) {
	testcases := []struct {
		name       string
		borrowPred bool
	}{
		{
			name: "rm by succ",
		},
		{
			name:       "rm by pred",
			borrowPred: true,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			rbtreeSequentialNumberRunCore(tt, tc.borrowPred)
		})
	}
}

func rbtreeRandomMonoNumberRunCore(t *testing.T, total uint64, borrowPred bool, violationCheck bool) {
	insertTotal := uint64(float64(total) * 0.8)
	removeTotal := uint64(float64(total) * 0.2)

	idGen, err := id.MonotonicNonZeroID()
	require.NoError(t, err)
	insertElements := make([]uint64, 0, insertTotal)
	removeElements := make([]uint64, 0, removeTotal)

	ignore := uint32(0)
	for {
		num := idGen.Number()
		if ignore > 0 {
			ignore--
			continue
		}
		ignore = randv2.Uint32() % 100
		if ignore&0x1 == 0 && uint64(len(insertElements)) < insertTotal {
			insertElements = append(insertElements, num)
		} else if ignore&0x1 == 1 && uint64(len(removeElements)) < removeTotal {
			removeElements = append(removeElements, num)
		}
		if uint64(len(insertElements)) == insertTotal && uint64(len(removeElements)) == removeTotal {
			break
		}
	}

	randv2.Shuffle(len(insertElements), func(i, j int) {
		insertElements[i], insertElements[j] = insertElements[j], insertElements[i]
	})
	randv2.Shuffle(len(removeElements), func(i, j int) {
		removeElements[i], removeElements[j] = removeElements[j], removeElements[i]
	})

	opts := make([]RBTreeOpt[uint64], 0, 1)
	if borrowPred {
		opts = append(opts, WithRBTreeRemoveBorrowPred[uint64]())
	}
	tree := NewOrderedRBTree[uint64](opts...)

	for _, elem := range insertElements {
		require.True(t, tree.Insert(elem))
		if violationCheck {
			require.NoError(t, Validate[uint64](tree))
		}
	}
	sort.Slice(insertElements, func(i, j int) bool {
		return insertElements[i] < insertElements[j]
	})
	tree.Foreach(func(idx int64, color RBColor, elem uint64) bool {
		require.Equal(t, insertElements[idx], elem)
		return true
	})

	for _, elem := range removeElements {
		require.True(t, tree.Insert(elem))
	}
	require.NoError(t, Validate[uint64](tree))

	for _, elem := range removeElements {
		val, ok := tree.Take(elem)
		require.True(t, ok)
		require.Equalf(t, elem, val, "value exp: %d, real: %d\n", elem, val)
		if violationCheck {
			require.NoError(t, Validate[uint64](tree))
		}
	}
	tree.Foreach(func(idx int64, color RBColor, elem uint64) bool {
		require.Equal(t, insertElements[idx], elem)
		return true
	})
	require.NoError(t, Validate[uint64](tree))
}

func TestRBTree_RandomMonotonicNumber(t *testing.T) {
	testcases := []struct {
		name           string
		borrowPred     bool
		total          uint64
		violationCheck bool
	}{
		{
			name:  "rm by succ 200000",
			total: 200_000,
		},
		{
			name:       "rm by pred 200000",
			borrowPred: true,
			total:      200_000,
		},
		{
			name:           "violation check rm by succ 2000",
			total:          2000,
			violationCheck: true,
		},
		{
			name:           "violation check rm by pred 2000",
			borrowPred:     true,
			total:          2000,
			violationCheck: true,
		},
	}
	t.Parallel()
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			rbtreeRandomMonoNumberRunCore(tt, tc.total, tc.borrowPred, tc.violationCheck)
		})
	}
}

// Random operations checked against a Go map.
func TestRBTree_RandomOpsAgainstMap(t *testing.T) {
	rng := randv2.New(randv2.NewChaCha8([32]byte{'x', 'r', 'b', 't', 'r', 'e', 'e'}))
	tree := NewOrderedRBTree[int]()
	ref := make(map[int]struct{}, 1024)

	for i := 0; i < 20_000; i++ {
		key := rng.IntN(512)
		switch op := rng.IntN(10); {
		case op < 5:
			_, exists := ref[key]
			require.Equal(t, !exists, tree.Insert(key))
			ref[key] = struct{}{}
		case op < 8:
			_, exists := ref[key]
			require.Equal(t, exists, tree.Remove(key))
			delete(ref, key)
		case op == 8:
			val, ok := tree.Pop()
			require.Equal(t, len(ref) > 0, ok)
			if ok {
				_, exists := ref[val]
				require.True(t, exists)
				delete(ref, val)
			}
		default:
			val, ok := tree.PopBack()
			require.Equal(t, len(ref) > 0, ok)
			if ok {
				_, exists := ref[val]
				require.True(t, exists)
				delete(ref, val)
			}
		}
		require.Equal(t, int64(len(ref)), tree.Len())
		if i%97 == 0 {
			require.NoError(t, Validate[int](tree))
		}
	}

	keys := make([]int, 0, len(ref))
	for k := range ref {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	require.Equal(t, keys, tree.Ordered())
	require.NoError(t, Validate[int](tree))
}

func TestRBTree_InsertTakeRoundTrip(t *testing.T) {
	testcases := []struct {
		name string
		opts []RBTreeOpt[entry]
	}{
		{name: "successor"},
		{name: "predecessor", opts: []RBTreeOpt[entry]{WithRBTreeRemoveBorrowPred[entry]()}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			rng := randv2.New(randv2.NewChaCha8([32]byte{'r', 'o', 'u', 'n', 'd'}))
			tree := NewRBTree[entry](entryCmp, tc.opts...)
			for _, k := range rng.Perm(512) {
				require.True(t, tree.Insert(entry{key: k * 2, payload: "even"}))
			}

			for i := 0; i < 256; i++ {
				fresh := entry{key: rng.IntN(512)*2 + 1, payload: "odd"}
				before := tree.Ordered()
				require.True(t, tree.Insert(fresh))
				require.Equal(t, int64(len(before)+1), tree.Len())

				taken, ok := tree.Take(entry{key: fresh.key})
				require.True(t, ok)
				require.Equal(t, fresh, taken)
				require.Equal(t, before, tree.Ordered())
				require.NoError(t, Validate[entry](tree))
			}
		})
	}
}

func BenchmarkRBTree_Random(b *testing.B) {
	b.StopTimer()
	tree := NewOrderedRBTree[int]()

	rngArr := make([]int, 0, b.N)
	for i := 0; i < b.N; i++ {
		rngArr = append(rngArr, randv2.Int())
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(rngArr[i])
	}
}

func BenchmarkRBTree_Serial(b *testing.B) {
	b.StopTimer()
	tree := NewOrderedRBTree[int]()

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(i)
	}
}

func BenchmarkRBTree_InsertPop(b *testing.B) {
	b.StopTimer()
	tree := NewOrderedRBTree[int]()
	for i := 0; i < 1024; i++ {
		tree.Insert(randv2.Int())
	}

	b.StartTimer()
	for i := 0; i < b.N; i++ {
		tree.Insert(randv2.Int())
		tree.Pop()
	}
}
