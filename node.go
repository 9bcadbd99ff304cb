package huffmantree

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// Node is one vertex of a Huffman tree.  A leaf holds a character and its
// occurrence count; an internal node holds the sum of its children's counts.
//
// Nodes are immutable once constructed.  Each child is owned by exactly one
// parent.
type Node struct {
	character rune
	hasChar   bool
	frequency uint32
	left      *Node
	right     *Node
}

// NewLeaf constructs a leaf node.  The frequency must be at least 1.
func NewLeaf(ch rune, frequency uint32) *Node {
	assert.Assertf(frequency != 0, "leaf %q has frequency 0", ch)
	return &Node{character: ch, hasChar: true, frequency: frequency}
}

// NewInternal constructs an internal node whose frequency is the (saturating)
// sum of the frequencies of its two children.
func NewInternal(left *Node, right *Node) *Node {
	assert.Assertf(left != nil, "internal node has nil left child")
	assert.Assertf(right != nil, "internal node has nil right child")
	return &Node{
		frequency: addFrequency(left.frequency, right.frequency),
		left:      left,
		right:     right,
	}
}

// NewNode constructs a Node from raw parts with no validation.  It exists for
// callers that need to hand-build unusual trees, e.g. an internal node with a
// single child.  Prefer NewLeaf and NewInternal.
func NewNode(ch rune, hasChar bool, frequency uint32, left *Node, right *Node) *Node {
	return &Node{
		character: ch,
		hasChar:   hasChar,
		frequency: frequency,
		left:      left,
		right:     right,
	}
}

// Character returns the character held by a leaf.  ok is false for internal
// nodes.
func (n *Node) Character() (ch rune, ok bool) {
	return n.character, n.hasChar
}

// Frequency returns the occurrence count of a leaf, or the combined count of
// an internal node.
func (n *Node) Frequency() uint32 {
	return n.frequency
}

// Left returns the left ("0") child, or nil.
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right ("1") child, or nil.
func (n *Node) Right() *Node {
	return n.right
}

// IsLeaf returns true iff this node holds a character.
func (n *Node) IsLeaf() bool {
	return n.hasChar
}

// Less orders nodes by frequency only.  Two nodes with equal frequencies are
// equivalent under this ordering, whatever their contents.
func (n *Node) Less(other *Node) bool {
	return n.frequency < other.frequency
}

// Clone returns a deep copy of the subtree rooted at this node.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	dupe := *n
	dupe.left = n.left.Clone()
	dupe.right = n.right.Clone()
	return &dupe
}

// String returns a one-line description of this node and the characters of
// its immediate children.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	return fmt.Sprintf("(val: %s, f: %d, l: %s, r: %s)",
		n.charString(), n.frequency, n.left.charString(), n.right.charString())
}

func (n *Node) charString() string {
	if n == nil || !n.hasChar {
		return "nil"
	}
	return strconv.QuoteRune(n.character)
}

var _ fmt.Stringer = (*Node)(nil)
