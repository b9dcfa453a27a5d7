package huffman

import (
	"container/heap"
	"slices"
)

// Node is one node of a strict binary Huffman tree. A leaf holds a symbol and
// its frequency; an internal node holds exactly two children and their
// combined frequency. Accessors are read-only: callers walking the tree for
// visualization or statistics must not mutate it.
type Node struct {
	freq        int
	id          int
	symbol      byte
	leaf        bool
	left, right *Node
}

// Symbol returns the leaf's symbol. Meaningless for internal nodes.
func (n *Node) Symbol() byte { return n.symbol }

// Frequency returns the node's frequency (for internal nodes, the sum of the
// leaf frequencies beneath it).
func (n *Node) Frequency() int { return n.freq }

// Leaf reports whether the node is a leaf.
func (n *Node) Leaf() bool { return n.leaf }

// Left returns the 0-bit child, or nil for a leaf.
func (n *Node) Left() *Node { return n.left }

// Right returns the 1-bit child, or nil for a leaf.
func (n *Node) Right() *Node { return n.right }

type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].id < h[j].id
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(item any) { *h = append(*h, item.(*Node)) }

func (h *nodeHeap) Pop() any {
	popped := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return popped
}

// BuildTree builds a Huffman tree for a non-empty frequency table by
// repeatedly combining the two lowest-frequency nodes. Ties on frequency break
// by insertion order: leaves are pushed in ascending symbol order and every
// node created later gets a larger id, so the tree shape is a pure function of
// the frequency table. An empty table yields ErrEmptyInput.
//
// The first node popped from the heap becomes the left child, the second the
// right child.
func BuildTree(freqs FrequencyTable) (*Node, error) {
	if len(freqs) == 0 {
		return nil, ErrEmptyInput
	}

	symbols := make([]byte, 0, len(freqs))
	for s := range freqs {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)

	hub := make(nodeHeap, 0, len(symbols))
	nextID := 0
	for _, s := range symbols {
		hub = append(hub, &Node{freq: freqs[s], id: nextID, symbol: s, leaf: true})
		nextID++
	}
	heap.Init(&hub)

	for hub.Len() > 1 {
		x := heap.Pop(&hub).(*Node)
		y := heap.Pop(&hub).(*Node)
		heap.Push(&hub, &Node{
			freq:  x.freq + y.freq,
			id:    nextID,
			left:  x,
			right: y,
		})
		nextID++
	}
	return heap.Pop(&hub).(*Node), nil
}
