package tree

import (
	"fmt"
	"strings"
)

// Dump renders the tree level by level, one line per level.
// An internal node is "<parent>->C:<val>" and a leaf "<parent>->___",
// the root has no parent prefix.
//
//	B:30
//	30->B:20 30->B:40
//	20->___ 20->___ 40->___ 40->___
func Dump[E any](tree RBTree[E]) string {
	levels := make([]*strings.Builder, 0, tree.Height()+1)
	dumpTo[E](tree.Root(), "", 0, &levels)

	res := make([]string, 0, len(levels))
	for _, lvl := range levels {
		res = append(res, lvl.String())
	}
	return strings.Join(res, "\n")
}

func dumpTo[E any](node RBNode[E], from string, depth int, levels *[]*strings.Builder) {
	if len(*levels) <= depth {
		*levels = append(*levels, &strings.Builder{})
	}
	lvl := (*levels)[depth]
	if lvl.Len() > 0 {
		lvl.WriteByte(' ')
	}
	lvl.WriteString(from)

	if node.IsLeaf() {
		lvl.WriteString("___")
		return
	}
	_, _ = fmt.Fprintf(lvl, "%s:%v", node.Color().short(), node.Val())
	prefix := fmt.Sprintf("%v->", node.Val())
	dumpTo[E](node.Left(), prefix, depth+1, levels)
	dumpTo[E](node.Right(), prefix, depth+1, levels)
}
