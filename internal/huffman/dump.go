package huffman

import (
	"fmt"
	"io"
	"sort"
)

// DumpTree writes a text rendering of the tree to w, right subtree first so
// the picture reads top-down in bit order:
//
//	└── 11
//	    ├── 6
//	    │   ├── 'b': 2
//	    │   └── 'a': 1
//	    └── 'c': 5
//
// The tree is only read, never modified.
func DumpTree(w io.Writer, root *Node) {
	if root == nil {
		return
	}
	dumpNode(w, root, "", true)
}

func dumpNode(w io.Writer, n *Node, prefix string, last bool) {
	branch := "├── "
	if last {
		branch = "└── "
	}
	if n.leaf {
		fmt.Fprintf(w, "%s%s%s: %d\n", prefix, branch, symbolLabel(n.symbol), n.freq)
		return
	}
	fmt.Fprintf(w, "%s%s%d\n", prefix, branch, n.freq)

	extension := "│   "
	if last {
		extension = "    "
	}
	if n.right != nil {
		dumpNode(w, n.right, prefix+extension, n.left == nil)
	}
	if n.left != nil {
		dumpNode(w, n.left, prefix+extension, true)
	}
}

// symbolLabel renders a symbol for humans, escaping whitespace and
// non-printable bytes.
func symbolLabel(s byte) string {
	switch s {
	case ' ':
		return "'space'"
	case '\n':
		return `'\n'`
	case '\t':
		return `'\t'`
	case '\r':
		return `'\r'`
	}
	if s < 32 || s > 126 {
		return fmt.Sprintf("'\\x%02x'", s)
	}
	return fmt.Sprintf("'%c'", s)
}

// Dump writes the table's codes to w, one per line, sorted by (length, code).
func (t CodeTable) Dump(w io.Writer) {
	symbols := make([]byte, 0, len(t))
	for s := range t {
		symbols = append(symbols, s)
	}
	sort.Slice(symbols, func(i, j int) bool {
		a, b := t[symbols[i]], t[symbols[j]]
		if a.Len != b.Len {
			return a.Len < b.Len
		}
		if a.Bits != b.Bits {
			return a.Bits < b.Bits
		}
		return symbols[i] < symbols[j]
	})
	for _, s := range symbols {
		fmt.Fprintf(w, "%s: %s\n", symbolLabel(s), t[s])
	}
}
