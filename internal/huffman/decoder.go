package huffman

import (
	"encoding/binary"
	"fmt"
)

// Header is the parsed metadata of a packed stream: the code-length table, the
// meaningful bit count, and the packed data bytes that follow them.
type Header struct {
	Lengths  CodeLengths
	BitCount uint64
	Data     []byte

	raw []byte
}

// TableBytes returns the raw code-length block of the header. Two streams with
// equal table bytes decode against the same code table, which makes this the
// natural cache key for rebuilt decoders.
func (h *Header) TableBytes() []byte { return h.raw }

// ParseHeader splits a packed stream into its header and payload. Any
// structural mismatch surfaces as ErrCorruptStream.
func ParseHeader(packed []byte) (*Header, error) {
	if len(packed) < headerFixedLen+bitCountLen {
		return nil, fmt.Errorf("%w: short header (%d bytes)", ErrCorruptStream, len(packed))
	}
	if packed[0] != streamMagic[0] || packed[1] != streamMagic[1] {
		return nil, fmt.Errorf("%w: bad magic", ErrCorruptStream)
	}
	if packed[2] != formatVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrCorruptStream, packed[2])
	}

	n := int(binary.BigEndian.Uint16(packed[3:5]))
	if n == 0 {
		return nil, fmt.Errorf("%w: empty code table", ErrCorruptStream)
	}
	if n > 256 {
		return nil, fmt.Errorf("%w: %d symbols in code table", ErrCorruptStream, n)
	}
	tableEnd := headerFixedLen + 2*n
	if len(packed) < tableEnd+bitCountLen {
		return nil, fmt.Errorf("%w: truncated code table", ErrCorruptStream)
	}

	lengths := make(CodeLengths, n)
	for i := 0; i < n; i++ {
		s, l := packed[headerFixedLen+2*i], packed[headerFixedLen+2*i+1]
		if _, dup := lengths[s]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %#02x in code table", ErrCorruptStream, s)
		}
		lengths[s] = l
	}

	return &Header{
		Lengths:  lengths,
		BitCount: binary.BigEndian.Uint64(packed[tableEnd : tableEnd+bitCountLen]),
		Data:     packed[tableEnd+bitCountLen:],
		raw:      packed[headerFixedLen:tableEnd],
	}, nil
}

// Decoder decodes packed bit streams produced against one canonical code
// table. It is read-only after construction and safe for concurrent use.
type Decoder struct {
	root *Node
}

// NewDecoder validates the code lengths and rebuilds the canonical decode
// tree. Length sets that over- or under-fill the code space are rejected; the
// one exception is the degenerate single-symbol table, which legitimately uses
// half of a one-bit space.
func NewDecoder(lengths CodeLengths) (*Decoder, error) {
	if len(lengths) == 0 {
		return nil, fmt.Errorf("%w: empty code table", ErrCorruptStream)
	}

	var maxLen uint8
	for s, l := range lengths {
		if l == 0 || l > maxCodeLen {
			return nil, fmt.Errorf("%w: code length %d for symbol %#02x out of range", ErrCorruptStream, l, s)
		}
		if l > maxLen {
			maxLen = l
		}
	}

	// Kraft completeness check, as in RFC 1951: assigning consecutive
	// canonical values must fill the code space exactly, otherwise the
	// lengths do not describe a strict binary tree.
	counts := make([]uint64, maxLen+1)
	for _, l := range lengths {
		counts[l]++
	}
	var code uint64
	for bits := uint8(1); bits <= maxLen; bits++ {
		code = (code + counts[bits-1]) << 1
	}
	code += counts[maxLen]
	if code == 1 && maxLen == 1 {
		// single-symbol degenerate code
	} else if code != 1<<maxLen {
		return nil, fmt.Errorf("%w: code lengths do not form a complete prefix code", ErrCorruptStream)
	}

	root := &Node{}
	for s, c := range canonicalCodes(lengths) {
		insert(root, s, c)
	}
	return &Decoder{root: root}, nil
}

// insert places a leaf at the tree position addressed by the code's bits, MSB
// first, creating internal nodes along the path. Collisions cannot occur once
// the lengths pass the completeness check.
func insert(root *Node, symbol byte, c Code) {
	n := root
	for i := int(c.Len) - 1; i >= 0; i-- {
		if c.Bits>>uint(i)&1 == 0 {
			if n.left == nil {
				n.left = &Node{}
			}
			n = n.left
		} else {
			if n.right == nil {
				n.right = &Node{}
			}
			n = n.right
		}
	}
	n.symbol = symbol
	n.leaf = true
}

// Decode walks the tree bit by bit: left on 0, right on 1, emitting the leaf's
// symbol and resetting to the root, until the meaningful bits are exhausted.
// The walk must end exactly at the root; running out of bits mid-path, or a
// bit count that exceeds the packed data, reports a corrupt stream.
func (d *Decoder) Decode(data []byte, bitCount uint64) ([]byte, error) {
	if bitCount > uint64(len(data))*8 {
		return nil, fmt.Errorf("%w: bit count %d exceeds %d packed bits", ErrCorruptStream, bitCount, uint64(len(data))*8)
	}

	r := newBitReader(data, bitCount)
	out := make([]byte, 0, bitCount/4+1)
	for r.remaining() > 0 {
		n := d.root
		for !n.leaf {
			bit, err := r.readBit()
			if err != nil {
				return nil, fmt.Errorf("%w: bits exhausted mid-code", ErrCorruptStream)
			}
			if bit {
				n = n.right
			} else {
				n = n.left
			}
			if n == nil {
				return nil, fmt.Errorf("%w: dead end in code tree", ErrCorruptStream)
			}
		}
		out = append(out, n.symbol)
	}
	return out, nil
}

// Decode reconstructs the original bytes from a packed stream produced by
// Encode. Malformed or truncated input surfaces as ErrCorruptStream.
func Decode(packed []byte) ([]byte, error) {
	hdr, err := ParseHeader(packed)
	if err != nil {
		return nil, err
	}
	d, err := NewDecoder(hdr.Lengths)
	if err != nil {
		return nil, err
	}
	return d.Decode(hdr.Data, hdr.BitCount)
}
