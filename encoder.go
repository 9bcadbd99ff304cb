package huffmantree

import (
	"strings"
)

// EncodeText concatenates the codes of each rune of text, in order.  Runes
// with no entry in table contribute no bits.
func EncodeText(text string, table CodeTable) string {
	// A code is about log2(len(table)) bits long on average.
	var sb strings.Builder
	sb.Grow(len(text) * int(log2uint32(uint32(len(table)))))

	for _, ch := range text {
		if code, found := table[ch]; found {
			sb.WriteString(code)
		}
	}
	return sb.String()
}
