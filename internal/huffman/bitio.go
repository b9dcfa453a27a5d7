package huffman

import "io"

// bitWriter packs bits most significant first into a growing byte slice. Any
// trailing bits of the final byte beyond the written count are zero padding;
// the decoder excludes them via the persisted bit count, so their values never
// carry data.
type bitWriter struct {
	buf []byte
	n   uint64
}

func (w *bitWriter) writeBit(bit bool) {
	if w.n%8 == 0 {
		w.buf = append(w.buf, 0)
	}
	if bit {
		w.buf[len(w.buf)-1] |= 1 << (7 - w.n%8)
	}
	w.n++
}

func (w *bitWriter) writeCode(c Code) {
	for i := int(c.Len) - 1; i >= 0; i-- {
		w.writeBit(c.Bits>>uint(i)&1 == 1)
	}
}

func (w *bitWriter) bytes() []byte { return w.buf }

func (w *bitWriter) bitCount() uint64 { return w.n }

// bitReader yields bits most significant first, bounded by the meaningful bit
// count rather than the byte length. Reading past the count returns io.EOF.
type bitReader struct {
	data []byte
	bits uint64
	pos  uint64
}

func newBitReader(data []byte, bits uint64) *bitReader {
	return &bitReader{data: data, bits: bits}
}

func (r *bitReader) readBit() (bool, error) {
	if r.pos >= r.bits {
		return false, io.EOF
	}
	bit := r.data[r.pos/8]>>(7-r.pos%8)&1 == 1
	r.pos++
	return bit, nil
}

func (r *bitReader) remaining() uint64 { return r.bits - r.pos }
