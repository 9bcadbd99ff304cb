package huffmantree

import (
	"sort"
)

// FrequencyTable maps each distinct character of a text to the number of
// times it occurs.
type FrequencyTable map[rune]uint32

// BuildFrequencyTable counts the occurrences of each rune in text.  The empty
// text yields an empty table.
func BuildFrequencyTable(text string) FrequencyTable {
	freqs := make(FrequencyTable)
	for _, ch := range text {
		freqs[ch] = addFrequency(freqs[ch], 1)
	}
	return freqs
}

// Runes returns the keys of this table in ascending order.
func (freqs FrequencyTable) Runes() []rune {
	return sortedRunes(freqs)
}

// Total returns the sum of all counts in this table, saturating at
// math.MaxUint32.
func (freqs FrequencyTable) Total() uint32 {
	var total uint32
	for _, freq := range freqs {
		total = addFrequency(total, freq)
	}
	return total
}

func sortedRunes[M ~map[rune]V, V any](m M) []rune {
	keys := make(byRune, 0, len(m))
	for ch := range m {
		keys = append(keys, ch)
	}
	keys.Sort()
	return keys
}

// type byRune {{{

type byRune []rune

func (list byRune) Sort() {
	sort.Sort(list)
}

func (list byRune) Len() int {
	return len(list)
}

func (list byRune) Swap(i, j int) {
	list[i], list[j] = list[j], list[i]
}

func (list byRune) Less(i, j int) bool {
	return list[i] < list[j]
}

var _ sort.Interface = byRune(nil)

// }}}
