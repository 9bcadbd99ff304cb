package huffmantree

import (
	"strings"
)

// DecodeText walks the tree rooted at root one rune of bits at a time.  A '0'
// descends left and a '1' descends right; any other rune is ignored.  If the
// child in the requested direction is missing, the walk stays put.
//
// After each rune of input, if the walk is at a leaf, that leaf's character is
// emitted and the walk returns to root.  Bits left over at the end of the
// input that do not reach a leaf are dropped.
//
// Note that if root is itself a leaf, every rune of input emits root's
// character.
//
func DecodeText(bits string, root *Node) string {
	if root == nil {
		return ""
	}

	var sb strings.Builder
	current := root
	for _, bit := range bits {
		switch bit {
		case '0':
			if current.left != nil {
				current = current.left
			}
		case '1':
			if current.right != nil {
				current = current.right
			}
		}

		if ch, ok := current.Character(); ok {
			sb.WriteRune(ch)
			current = root
		}
	}
	return sb.String()
}
