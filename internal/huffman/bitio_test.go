package huffman

import (
	"bytes"
	"io"
	"testing"
)

func TestBitWriterPacking(t *testing.T) {
	var w bitWriter
	// "0100 1110 101" → 0x4e, then 101 padded to 0xa0.
	for _, bit := range "01001110101" {
		w.writeBit(bit == '1')
	}
	if w.bitCount() != 11 {
		t.Errorf("expected 11 bits written, got %d", w.bitCount())
	}
	if !bytes.Equal(w.bytes(), []byte{0x4e, 0xa0}) {
		t.Errorf("expected bytes 4e a0, got %x", w.bytes())
	}
}

func TestBitWriterCodes(t *testing.T) {
	var w bitWriter
	w.writeCode(Code{Bits: 0, Len: 1})     // 0
	w.writeCode(Code{Bits: 0b100, Len: 3}) // 100
	w.writeCode(Code{Bits: 0b111, Len: 3}) // 111
	if w.bitCount() != 7 {
		t.Errorf("expected 7 bits, got %d", w.bitCount())
	}
	// 0100 111 + pad → 0x4e
	if !bytes.Equal(w.bytes(), []byte{0x4e}) {
		t.Errorf("expected byte 4e, got %x", w.bytes())
	}
}

func TestBitReaderRoundTrip(t *testing.T) {
	var w bitWriter
	pattern := "110100111010001"
	for _, bit := range pattern {
		w.writeBit(bit == '1')
	}

	r := newBitReader(w.bytes(), w.bitCount())
	for i, want := range pattern {
		got, err := r.readBit()
		if err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
		if got != (want == '1') {
			t.Errorf("bit %d: expected %c", i, want)
		}
	}
	if r.remaining() != 0 {
		t.Errorf("expected no bits remaining, got %d", r.remaining())
	}
	if _, err := r.readBit(); err != io.EOF {
		t.Errorf("expected io.EOF past the meaningful bits, got %v", err)
	}
}

func TestBitReaderStopsAtBitCount(t *testing.T) {
	// The byte has 8 bits but only 3 are meaningful.
	r := newBitReader([]byte{0xff}, 3)
	for i := 0; i < 3; i++ {
		if _, err := r.readBit(); err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
	}
	if _, err := r.readBit(); err != io.EOF {
		t.Errorf("expected io.EOF after 3 bits, got %v", err)
	}
}
