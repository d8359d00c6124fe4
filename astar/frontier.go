package astar

import "github.com/tidwall/btree"

// openItem is the frontier key of a live node.
// Ordering is (f, seq): lowest f first, then first inserted first.
type openItem struct {
	f   float64
	seq uint64
	idx uint32 // index into runner.nodes
}

func openItemLess(a, b openItem) bool {
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

// frontier is an ordered set of openItem with decrease-key by delete and
// re-insert. It is owned by exactly one runner, so the tree runs without locks.
type frontier struct {
	tree *btree.BTreeG[openItem]
	seq  uint64
}

func newFrontier() *frontier {
	return &frontier{
		tree: btree.NewBTreeGOptions(openItemLess, btree.Options{NoLocks: true}),
	}
}

// push inserts node idx with priority f and returns its insertion number.
func (fr *frontier) push(idx uint32, f float64) uint64 {
	fr.seq++
	fr.tree.Set(openItem{f: f, seq: fr.seq, idx: idx})
	return fr.seq
}

// remove drops the entry previously pushed with (f, seq).
func (fr *frontier) remove(f float64, seq uint64) {
	fr.tree.Delete(openItem{f: f, seq: seq})
}

// pop removes and returns the minimum entry.
func (fr *frontier) pop() (openItem, bool) {
	return fr.tree.PopMin()
}

func (fr *frontier) len() int { return fr.tree.Len() }
