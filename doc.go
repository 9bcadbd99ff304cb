// Package huffmantree implements classic tree-based Huffman coding over
// text.  A Coder is trained on a corpus, after which it translates text into
// strings of '0' and '1' characters and back again.
//
// The individual steps are also exported as standalone functions:
//
//     BuildFrequencyTable  text → FrequencyTable
//     BuildTree            FrequencyTable → *Node
//     BuildCodeTable       *Node → CodeTable
//     EncodeText           text, CodeTable → bit string
//     DecodeText           bit string, *Node → text
//
// Codes are not packed into bytes; each bit is a single '0' or '1' rune.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffmantree
