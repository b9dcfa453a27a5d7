package huffman

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// Packed stream layout, in order:
//
//	0       2    magic "HC"
//	2       1    format version
//	3       2    uint16 BE: number of coded symbols n
//	5       2n   (symbol, code length) byte pairs, symbol ascending
//	5+2n    8    uint64 BE: meaningful bit count
//	13+2n   ...  packed code bits, MSB first within each byte
//
// Tree topology is never persisted; both sides regenerate identical canonical
// codes from the (symbol, length) pairs.
const (
	formatVersion  = 1
	headerFixedLen = 2 + 1 + 2
	bitCountLen    = 8
)

var streamMagic = [2]byte{'H', 'C'}

// Encode compresses data into a self-describing packed stream. It returns
// ErrEmptyInput for empty input. Output is deterministic: encoding the same
// input twice yields byte-identical streams.
func Encode(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	root, err := BuildTree(CountFrequencies(data))
	if err != nil {
		return nil, err
	}
	table := canonicalCodes(GenerateCodes(root).Lengths())
	return encodeWith(data, table)
}

// encodeWith packs data against an already-built canonical code table. A
// symbol absent from the table cannot occur when the table derives from the
// same input, but is still checked and surfaces as ErrUnknownSymbol.
func encodeWith(data []byte, table CodeTable) ([]byte, error) {
	var w bitWriter
	for _, b := range data {
		code, ok := table[b]
		if !ok {
			return nil, fmt.Errorf("%w: %#02x", ErrUnknownSymbol, b)
		}
		w.writeCode(code)
	}

	symbols := make([]byte, 0, len(table))
	for s := range table {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)

	out := make([]byte, 0, headerFixedLen+2*len(symbols)+bitCountLen+len(w.bytes()))
	out = append(out, streamMagic[:]...)
	out = append(out, formatVersion)
	out = binary.BigEndian.AppendUint16(out, uint16(len(symbols)))
	for _, s := range symbols {
		out = append(out, s, byte(table[s].Len))
	}
	out = binary.BigEndian.AppendUint64(out, w.bitCount())
	out = append(out, w.bytes()...)
	return out, nil
}
