// Package compression is the service layer over the Huffman codec: byte-level
// Compress/Decompress operations with statistics, plus a cache of rebuilt
// decoders for streams that share a code table.
package compression

import (
	"fmt"

	"github.com/bitpack/huffman-compression-service/internal/huffman"
)

// Algorithm identifies the codec in API responses and statistics.
const Algorithm = "huffman"

// Stats contains compression statistics for one operation.
type Stats struct {
	OriginalSize     int
	ProcessedSize    int
	CompressionRatio float64
	Algorithm        string
}

// SpaceSaved returns the size reduction as a percentage of the original size.
// Negative when the output grew.
func (s *Stats) SpaceSaved() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.OriginalSize-s.ProcessedSize) / float64(s.OriginalSize) * 100
}

// Compress compresses data and reports size statistics.
func Compress(data []byte) ([]byte, *Stats, error) {
	compressed, err := huffman.Encode(data)
	if err != nil {
		return nil, nil, fmt.Errorf("compression failed: %w", err)
	}

	stats := &Stats{
		OriginalSize:  len(data),
		ProcessedSize: len(compressed),
		Algorithm:     Algorithm,
	}
	if len(data) > 0 {
		stats.CompressionRatio = float64(len(compressed)) / float64(len(data)) * 100
	}
	return compressed, stats, nil
}

// Decompress decompresses data and reports size statistics. Decoders are
// looked up in the shared cache by the stream's code table, so many streams
// encoded with one table rebuild the decode tree only once.
func Decompress(data []byte) ([]byte, *Stats, error) {
	hdr, err := huffman.ParseHeader(data)
	if err != nil {
		return nil, nil, fmt.Errorf("decompression failed: %w", err)
	}
	decoder, err := decoders.get(hdr)
	if err != nil {
		return nil, nil, fmt.Errorf("decompression failed: %w", err)
	}
	decompressed, err := decoder.Decode(hdr.Data, hdr.BitCount)
	if err != nil {
		return nil, nil, fmt.Errorf("decompression failed: %w", err)
	}

	stats := &Stats{
		OriginalSize:  len(data),
		ProcessedSize: len(decompressed),
		Algorithm:     Algorithm,
	}
	if len(decompressed) > 0 {
		stats.CompressionRatio = float64(len(data)) / float64(len(decompressed)) * 100
	}
	return decompressed, stats, nil
}
