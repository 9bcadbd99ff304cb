package huffmantree

import (
	"testing"
)

func makeTestTree() *Node {
	return BuildTree(BuildFrequencyTable("heellllooo"))
}

func TestDecodeText(t *testing.T) {
	root := makeTestTree()

	type testRow struct {
		name   string
		bits   string
		expect string
	}

	testData := [...]testRow{
		{"empty", "", ""},
		{"hello", "1101110010", "hello"},
		{"olleh", "1000111110", "olleh"},
		{"ignores other runes", "1x1 0\n", "h"},
		{"drops trailing bits", "0011", "ll"},
		{"only garbage", "abc", ""},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := DecodeText(row.bits, root)
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestDecodeText_MissingChild(t *testing.T) {
	inner := NewInternal(NewLeaf('a', 1), NewLeaf('b', 2))
	root := NewNode(0, false, 1, inner, nil)

	type testRow struct {
		bits   string
		expect string
	}

	testData := [...]testRow{
		{"0100", "ba"},
		{"10100", "ba"},
		{"111", ""},
	}
	for _, row := range testData {
		t.Run(row.bits, func(t *testing.T) {
			actual := DecodeText(row.bits, root)
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", row.expect, actual)
			}
		})
	}
}

func TestDecodeText_SingleLeaf(t *testing.T) {
	root := NewLeaf('z', 3)

	if actual := DecodeText("", root); actual != "" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "", actual)
	}
	if actual := DecodeText("01x", root); actual != "zzz" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "zzz", actual)
	}
}

func TestDecodeText_NilTree(t *testing.T) {
	if actual := DecodeText("0101", nil); actual != "" {
		t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", "", actual)
	}
}

func TestDecodeText_RoundTrip(t *testing.T) {
	for _, text := range codeTableCorpora {
		t.Run(text, func(t *testing.T) {
			root := BuildTree(BuildFrequencyTable(text))
			bits := EncodeText(text, NewCodeTable(root))
			if actual := DecodeText(bits, root); actual != text {
				t.Errorf("wrong output:\n\texpect: %q\n\tactual: %q", text, actual)
			}
		})
	}
}
