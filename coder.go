package huffmantree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// ErrNotBuilt is returned by Coder.Encode and Coder.Decode when the Coder has
// not been built.
var ErrNotBuilt = errors.New("code table is not available")

// Coder holds a Huffman tree and the code table derived from it.
//
// The zero value is an empty Coder; Encode and Decode on an empty Coder
// return ErrNotBuilt.  Once built, a Coder is not mutated by Encode or Decode
// and may be shared between goroutines for those calls.  Build must not run
// concurrently with any other method.
//
type Coder struct {
	tree  *Node
	table CodeTable
}

// NewCoder returns an empty Coder.
func NewCoder() *Coder {
	return &Coder{}
}

// Build trains this Coder on text, replacing both the tree and the code table.
//
// Building from the empty text leaves the Coder empty.  Building from a text
// that holds a single distinct character assigns that character the empty
// code; such a Coder encodes any text to "" and cannot round-trip.
//
func (c *Coder) Build(text string) {
	freqs := BuildFrequencyTable(text)
	tree := BuildTree(freqs)
	table := NewCodeTable(tree)

	*c = Coder{
		tree:  tree,
		table: table,
	}

	if tree == nil {
		log.Debugf("build: empty corpus, coder is not usable")
		return
	}
	log.Debugf("build: %d runes, %d distinct", freqs.Total(), len(freqs))
	if len(freqs) == 1 {
		log.Debugf("build: single distinct rune %q, code is empty", freqs.Runes()[0])
	}
}

// Encode translates text into a string of '0' and '1' runes.  Runes that were
// not present when this Coder was built are skipped.
func (c Coder) Encode(text string) (string, error) {
	if c.table == nil {
		return "", ErrNotBuilt
	}
	return EncodeText(text, c.table), nil
}

// Decode translates a string of '0' and '1' runes back into text.  Other runes
// are ignored, and trailing bits that do not complete a code are dropped.
func (c Coder) Decode(bits string) (string, error) {
	if c.tree == nil {
		return "", ErrNotBuilt
	}
	return DecodeText(bits, c.tree), nil
}

// Tree returns the root of the Huffman tree, or nil if not built.
func (c Coder) Tree() *Node {
	return c.tree
}

// SetTree replaces the Huffman tree used by Decode.
//
// The code table is left untouched, so it is the caller's responsibility to
// keep the two consistent, e.g. with SetCodeTable(NewCodeTable(tree)).
//
func (c *Coder) SetTree(tree *Node) {
	c.tree = tree
}

// CodeTable returns the code table, or nil if not built.  The returned map
// is shared with this Coder and must not be modified.
func (c Coder) CodeTable() CodeTable {
	return c.table
}

// SetCodeTable replaces the code table used by Encode.
//
// The tree is left untouched, so it is the caller's responsibility to keep
// the two consistent.
//
func (c *Coder) SetCodeTable(table CodeTable) {
	c.table = table
}

// IsBuilt returns true iff both the tree and the code table are present.
func (c Coder) IsBuilt() bool {
	return c.tree != nil && c.table != nil
}

// Clone returns a deep copy of this Coder.
func (c Coder) Clone() *Coder {
	return &Coder{
		tree:  c.tree.Clone(),
		table: c.table.Clone(),
	}
}

// Dump writes a programmer-readable debugging dump of the Coder's current
// state to the given writer.
func (c Coder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Coder{\n")
	fmt.Fprintf(&buf, "\tTree() = %v\n", c.tree)
	if c.table == nil {
		buf.WriteString("\tCodeTable() = nil\n")
	} else {
		writeCodes(&buf, c.table)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of this Coder.
func (c Coder) String() string {
	if c.table == nil {
		return "(Huffman coder, not built)"
	}
	minSize, maxSize := codeSizes(c.table)
	return fmt.Sprintf("(Huffman coder with %d symbols, with coded lengths of %d .. %d bits)",
		len(c.table), minSize, maxSize)
}

var _ fmt.Stringer = Coder{}

func codeSizes(table CodeTable) (minSize int, maxSize int) {
	first := true
	for _, code := range table {
		size := len(code)
		if first {
			first = false
			minSize, maxSize = size, size
		} else if minSize > size {
			minSize = size
		} else if maxSize < size {
			maxSize = size
		}
	}
	return
}
