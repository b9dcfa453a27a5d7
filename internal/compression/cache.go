package compression

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bitpack/huffman-compression-service/internal/huffman"
)

// decoderCacheSize bounds the number of cached decode trees. A tree costs a
// few KB at most, so the bound is generous.
const decoderCacheSize = 128

// decoderCache maps the xxhash of a stream's code-length block to a ready
// decoder. Decoders are immutable after construction and the LRU is internally
// locked, so the cache is safe for concurrent Decompress calls.
type decoderCache struct {
	entries *lru.Cache[uint64, *huffman.Decoder]
}

var decoders = newDecoderCache()

func newDecoderCache() *decoderCache {
	entries, err := lru.New[uint64, *huffman.Decoder](decoderCacheSize)
	if err != nil {
		// lru.New fails only for a non-positive size.
		panic(err)
	}
	return &decoderCache{entries: entries}
}

// get returns a decoder for the header's code table, building and caching one
// on a miss. Streams over identical code tables hash to the same key.
func (c *decoderCache) get(hdr *huffman.Header) (*huffman.Decoder, error) {
	key := xxhash.Sum64(hdr.TableBytes())
	if decoder, ok := c.entries.Get(key); ok {
		return decoder, nil
	}
	decoder, err := huffman.NewDecoder(hdr.Lengths)
	if err != nil {
		return nil, err
	}
	c.entries.Add(key, decoder)
	return decoder, nil
}

func (c *decoderCache) len() int { return c.entries.Len() }
