package huffmantree

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// CodeTable maps each character to its Huffman code, written as a string of
// '0' and '1' runes.
type CodeTable map[rune]string

// BuildCodeTable walks the tree rooted at node depth-first and records
// prefix+path as the code of every leaf it reaches, into table.  Left edges
// append "0" and right edges append "1".  Missing children are skipped.
//
// A tree whose root is itself a leaf assigns that leaf the code prefix, which
// is the empty string when called as BuildCodeTable(root, "", table).
//
func BuildCodeTable(node *Node, prefix string, table CodeTable) {
	if node == nil {
		return
	}
	if ch, ok := node.Character(); ok {
		table[ch] = prefix
		return
	}
	if node.left != nil {
		BuildCodeTable(node.left, prefix+"0", table)
	}
	if node.right != nil {
		BuildCodeTable(node.right, prefix+"1", table)
	}
}

// NewCodeTable is a convenience function that returns the code table for the
// tree rooted at root, or nil if root is nil.
func NewCodeTable(root *Node) CodeTable {
	if root == nil {
		return nil
	}
	table := make(CodeTable)
	BuildCodeTable(root, "", table)
	return table
}

// Runes returns the keys of this table in ascending order.
func (table CodeTable) Runes() []rune {
	return sortedRunes(table)
}

// Clone returns a copy of this table.
func (table CodeTable) Clone() CodeTable {
	if table == nil {
		return nil
	}
	dupe := make(CodeTable, len(table))
	for ch, code := range table {
		dupe[ch] = code
	}
	return dupe
}

// Dump writes a programmer-readable listing of this table to the given
// writer, shortest codes first.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	writeCodes(&buf, table)
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func writeCodes(buf *bytes.Buffer, table CodeTable) {
	keys := make(byCode, 0, len(table))
	for ch, code := range table {
		keys = append(keys, runeAndCode{ch, code})
	}
	keys.Sort()
	for _, item := range keys {
		fmt.Fprintf(buf, "\tEncode(%s) = %s\n", strconv.QuoteRune(item.ch), strconv.Quote(item.code))
	}
}

// type runeAndCode + type byCode {{{

type runeAndCode struct {
	ch   rune
	code string
}

type byCode []runeAndCode

func (list byCode) Sort() {
	sort.Sort(list)
}

func (list byCode) Len() int {
	return len(list)
}

func (list byCode) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byCode) Less(i, j int) bool {
	a, b := list[i], list[j]
	if len(a.code) != len(b.code) {
		return len(a.code) < len(b.code)
	}
	if a.code != b.code {
		return a.code < b.code
	}
	return a.ch < b.ch
}

var _ sort.Interface = byCode(nil)

// }}}
