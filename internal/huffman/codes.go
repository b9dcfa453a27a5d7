package huffman

import (
	"fmt"
	"sort"
)

// maxCodeLen bounds code lengths to what Code.Bits can hold. Reaching even 63
// bits would require a Fibonacci-like frequency distribution over an input far
// beyond any practical size.
const maxCodeLen = 63

// Code is a sequence of Len bits held right-aligned in Bits. The most
// significant of the Len bits is the first bit on the wire.
type Code struct {
	Bits uint64
	Len  uint8
}

// String renders the code as a binary digit string, e.g. "0110".
func (c Code) String() string {
	return fmt.Sprintf("%0*b", int(c.Len), c.Bits)
}

// CodeTable maps each symbol to its code. Codes are prefix-free whenever the
// table holds two or more symbols.
type CodeTable map[byte]Code

// CodeLengths maps each symbol to its code length in bits. This is the
// persisted reconstruction metadata: canonical codes regenerate from it.
type CodeLengths map[byte]uint8

// GenerateCodes walks the tree depth first, assigning 0 to left edges and 1 to
// right edges and accumulating the path to each leaf. A root that is itself a
// leaf (single distinct symbol) gets the one-bit code "0" so that no code is
// ever empty.
func GenerateCodes(root *Node) CodeTable {
	table := make(CodeTable)
	if root == nil {
		return table
	}
	if root.leaf {
		table[root.symbol] = Code{Bits: 0, Len: 1}
		return table
	}

	var walk func(n *Node, bits uint64, depth uint8)
	walk = func(n *Node, bits uint64, depth uint8) {
		if n.leaf {
			table[n.symbol] = Code{Bits: bits, Len: depth}
			return
		}
		walk(n.left, bits<<1, depth+1)
		walk(n.right, bits<<1|1, depth+1)
	}
	walk(root, 0, 0)
	return table
}

// Lengths extracts the bit length of each code.
func (t CodeTable) Lengths() CodeLengths {
	lengths := make(CodeLengths, len(t))
	for s, c := range t {
		lengths[s] = c.Len
	}
	return lengths
}

// canonicalCodes regenerates the canonical code for every symbol from its code
// length: symbols sort by (length ascending, symbol ascending) and receive
// consecutive code values, the running value shifting left whenever the length
// steps up (RFC 1951 section 3.2.2). Both encoder and decoder derive their
// codes through this function, so only the lengths need to travel.
func canonicalCodes(lengths CodeLengths) CodeTable {
	type symbolLength struct {
		symbol byte
		length uint8
	}
	order := make([]symbolLength, 0, len(lengths))
	for s, l := range lengths {
		order = append(order, symbolLength{s, l})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].length != order[j].length {
			return order[i].length < order[j].length
		}
		return order[i].symbol < order[j].symbol
	})

	table := make(CodeTable, len(order))
	var code uint64
	var lastLen uint8
	for _, sl := range order {
		if sl.length > lastLen {
			code <<= sl.length - lastLen
			lastLen = sl.length
		}
		table[sl.symbol] = Code{Bits: code, Len: sl.length}
		code++
	}
	return table
}
