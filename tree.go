package huffmantree

import (
	"container/heap"

	"github.com/chronos-tachyon/assert"
)

// BuildTree constructs a Huffman tree from a frequency table by repeatedly
// merging the two lowest-frequency nodes.  It returns nil if freqs is empty.
//
// If freqs holds exactly one character, the root is that character's leaf,
// and the character's code will be the empty string.
//
// Ties between equal frequencies are broken by insertion order: leaves are
// inserted in ascending rune order, and every merged node is inserted after
// all nodes that exist at the time of its creation.  The popped nodes become
// the left and right children of the merged node, in that order.
//
func BuildTree(freqs FrequencyTable) *Node {
	if len(freqs) == 0 {
		return nil
	}

	// Step 1: build a minheap of leaves.

	runes := freqs.Runes()
	h := nodeHeap{list: make([]nodeAndSeq, 0, len(runes))}
	for _, ch := range runes {
		freq := freqs[ch]
		assert.Assertf(freq != 0, "frequency table has zero count for %q", ch)
		h.list = append(h.list, nodeAndSeq{NewLeaf(ch, freq), h.nextSeq})
		h.nextSeq++
	}
	h.Init()

	// Step 2: pop two, merge, push one, until a single root remains.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)
		heap.Push(&h, nodeAndSeq{NewInternal(a.node, b.node), h.nextSeq})
		h.nextSeq++
	}

	root := heap.Pop(&h).(nodeAndSeq)
	return root.node
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list    []nodeAndSeq
	nextSeq uint32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Less(b.node) {
		return true
	}
	if b.node.Less(a.node) {
		return false
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
