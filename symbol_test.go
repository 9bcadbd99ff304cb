package huffmantree

import (
	"reflect"
	"testing"
)

func TestBuildFrequencyTable(t *testing.T) {
	type testRow struct {
		text   string
		expect FrequencyTable
	}

	testData := [...]testRow{
		{"", FrequencyTable{}},
		{"aaaa", FrequencyTable{'a': 4}},
		{"hello world", FrequencyTable{'h': 1, 'e': 1, 'l': 3, 'o': 2, ' ': 1, 'w': 1, 'r': 1, 'd': 1}},
		{"héé€", FrequencyTable{'h': 1, 'é': 2, '€': 1}},
	}
	for _, row := range testData {
		t.Run(row.text, func(t *testing.T) {
			actual := BuildFrequencyTable(row.text)
			if !reflect.DeepEqual(row.expect, actual) {
				t.Errorf("wrong table:\n\texpect: %v\n\tactual: %v", row.expect, actual)
			}
		})
	}
}

func TestFrequencyTable_RunesAndTotal(t *testing.T) {
	freqs := BuildFrequencyTable("hello world")

	expectRunes := []rune{' ', 'd', 'e', 'h', 'l', 'o', 'r', 'w'}
	actualRunes := freqs.Runes()
	if !reflect.DeepEqual(expectRunes, actualRunes) {
		t.Errorf("wrong runes:\n\texpect: %q\n\tactual: %q", expectRunes, actualRunes)
	}

	if total := freqs.Total(); total != 11 {
		t.Errorf("expected total 11, got %d", total)
	}
}
