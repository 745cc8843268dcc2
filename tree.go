package statichuff

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strings"
)

// Node is a node of a Huffman tree: either a *Leaf or an *Internal.
type Node interface {
	// Weight is the sum of the frequencies of every Leaf under this Node.
	// It only matters while the tree is being built.
	Weight() uint64

	isNode()
}

// Leaf is a Node that holds exactly one Symbol.
type Leaf struct {
	Symbol Symbol
	Freq   uint64
}

// Internal is a Node that exclusively owns two children.
type Internal struct {
	Left  Node
	Right Node
	Freq  uint64
}

func (leaf *Leaf) Weight() uint64 { return leaf.Freq }
func (node *Internal) Weight() uint64 { return node.Freq }

func (*Leaf) isNode()     {}
func (*Internal) isNode() {}

var (
	_ Node = (*Leaf)(nil)
	_ Node = (*Internal)(nil)
)

// Tree is a Huffman tree.  It is immutable once built.
type Tree struct {
	root Node
}

// Root returns the root Node.  The result is a *Leaf iff the alphabet has
// exactly one symbol.
func (t *Tree) Root() Node {
	return t.root
}

// Build constructs the Huffman tree for the given frequencies.  It returns
// nil if the table is empty, i.e. if there is nothing to encode.
//
// Leaves are seeded in ascending Symbol order and ties between equal weights
// are broken by seeding order (merged nodes come after every node that
// already exists), so the same table always yields the same tree.
//
func Build(table FrequencyTable) *Tree {
	if len(table) == 0 {
		return nil
	}

	// Step 1: build a minheap with one Leaf per symbol.

	symbols := table.Symbols()
	h := nodeHeap{list: make([]weightedNode, 0, len(symbols))}
	for _, sym := range symbols {
		h.list = append(h.list, weightedNode{
			node: &Leaf{Symbol: sym, Freq: table[sym]},
			seq:  h.nextSeq,
		})
		h.nextSeq++
	}
	h.Init()

	// Step 2: pop the two lightest nodes, merge them, and push the merged
	// node back until only the root is left.

	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)

		// Compute freqSum using saturating addition
		freqSum := a.node.Weight() + b.node.Weight()
		if freqSum < a.node.Weight() {
			freqSum = math.MaxUint64
		}

		heap.Push(&h, weightedNode{
			node: &Internal{Left: a.node, Right: b.node, Freq: freqSum},
			seq:  h.nextSeq,
		})
		h.nextSeq++
	}

	root := heap.Pop(&h).(weightedNode)
	return &Tree{root: root.node}
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Tree) Depth() int {
	var walk func(Node) int
	walk = func(n Node) int {
		switch x := n.(type) {
		case *Internal:
			l, r := walk(x.Left), walk(x.Right)
			if l > r {
				return l + 1
			}
			return r + 1
		default:
			return 0
		}
	}
	return walk(t.root)
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, one node per line, indented by depth.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	var walk func(n Node, depth int, label string)
	walk = func(n Node, depth int, label string) {
		indent := strings.Repeat("\t", depth+1)
		switch x := n.(type) {
		case *Leaf:
			fmt.Fprintf(&buf, "%s%sLeaf(%q) weight=%d\n", indent, label, rune(x.Symbol), x.Freq)
		case *Internal:
			fmt.Fprintf(&buf, "%s%sInternal weight=%d\n", indent, label, x.Freq)
			walk(x.Left, depth+1, "L: ")
			walk(x.Right, depth+1, "R: ")
		}
	}
	walk(t.root, 0, "")
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns the Dump output as a string.
func (t *Tree) String() string {
	var buf strings.Builder
	_, _ = t.Dump(&buf)
	return buf.String()
}

// type weightedNode + type nodeHeap {{{

type weightedNode struct {
	node Node
	seq  uint64
}

type nodeHeap struct {
	list    []weightedNode
	nextSeq uint64
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	return lighter(h.list[i], h.list[j])
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = weightedNode{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// lighter orders nodes smallest weight first, then oldest first.
func lighter(a, b weightedNode) bool {
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

// }}}
