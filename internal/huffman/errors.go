package huffman

import "errors"

// Error taxonomy for the codec. ErrEmptyInput and ErrCorruptStream are
// caller-recoverable conditions; ErrUnknownSymbol indicates a code table that
// does not cover its input and is unreachable through the Encode pipeline.
var (
	ErrEmptyInput    = errors.New("huffman: empty input")
	ErrUnknownSymbol = errors.New("huffman: symbol not in code table")
	ErrCorruptStream = errors.New("huffman: corrupt stream")
)
