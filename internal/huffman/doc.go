// Package huffman implements a lossless byte-stream codec based on canonical
// Huffman codes.
//
// Encoding counts symbol frequencies, builds a Huffman tree over them with a
// deterministic tie-break, derives canonical codes from the leaf depths, and
// packs the input's codes MSB-first into a self-describing stream. Decoding
// rebuilds the identical code table from the stream's code-length metadata and
// walks the regenerated tree bit by bit.
//
// References:
//
//	<https://www.rfc-editor.org/rfc/rfc1951.html>, Section 3.2.2
//	<https://en.wikipedia.org/wiki/Canonical_Huffman_code>
package huffman
