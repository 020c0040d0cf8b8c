package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
)

// Node is a node of a Huffman tree.  A leaf holds a byte value; an internal
// node owns exactly two children.  Children are never shared between
// parents, and nodes hold no references to their parents.
//
// Freq is meaningful only on trees built by BuildTree.  Trees read back from
// a compressed stream have Freq == 0 throughout.
type Node struct {
	Left  *Node
	Right *Node
	Freq  uint64
	Value byte
}

// NewLeaf constructs a leaf node.
func NewLeaf(value byte, freq uint64) *Node {
	return &Node{Value: value, Freq: freq}
}

// NewInternal constructs an internal node which takes ownership of left and
// right.  Its frequency is the (saturating) sum of theirs.
func NewInternal(left, right *Node) *Node {
	freqSum := left.Freq + right.Freq
	if freqSum < left.Freq {
		freqSum = math.MaxUint64
	}
	return &Node{Left: left, Right: right, Freq: freqSum}
}

// IsLeaf returns true iff n is a leaf.
func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Depth returns the length of the longest path from n to a leaf.
func (n *Node) Depth() int {
	if n.IsLeaf() {
		return 0
	}
	l, r := n.Left.Depth(), n.Right.Depth()
	if l < r {
		l = r
	}
	return l + 1
}

// Dump writes a programmer-readable, indented debugging dump of the subtree
// rooted at n to the given writer.  Left children are labeled "0" and right
// children "1".
func (n *Node) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	n.dump(&buf, "", "root")
	return buf.WriteTo(w)
}

func (n *Node) dump(buf *bytes.Buffer, indent string, label string) {
	if n.IsLeaf() {
		fmt.Fprintf(buf, "%s%s: leaf 0x%02x freq=%d\n", indent, label, n.Value, n.Freq)
		return
	}
	fmt.Fprintf(buf, "%s%s: freq=%d\n", indent, label, n.Freq)
	n.Left.dump(buf, indent+"\t", "0")
	n.Right.dump(buf, indent+"\t", "1")
}

// BuildTree constructs a Huffman tree for the given byte frequencies and
// returns its root, or nil if every frequency is zero.
//
// The tree is built by repeatedly merging the two least frequent nodes.  Ties
// go to whichever node entered the queue first: leaves enter in byte order,
// merged nodes as they are created.  The result is one of possibly several
// optimal trees, not a canonical one.
//
// If only one byte value occurs, the root is a leaf.
//
func BuildTree(freq *Frequencies) *Node {
	h := nodeHeap{list: make([]nodeAndSeq, 0, len(freq))}
	var seq uint32
	for b, n := range freq {
		if n == 0 {
			continue
		}
		h.list = append(h.list, nodeAndSeq{NewLeaf(byte(b), n), seq})
		seq++
	}

	if h.Len() == 0 {
		return nil
	}

	h.Init()
	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeAndSeq)
		b := heap.Pop(&h).(nodeAndSeq)
		heap.Push(&h, nodeAndSeq{NewInternal(a.node, b.node), seq})
		seq++
	}

	root := heap.Pop(&h).(nodeAndSeq)
	return root.node
}

// type nodeAndSeq + type nodeHeap {{{

type nodeAndSeq struct {
	node *Node
	seq  uint32
}

type nodeHeap struct {
	list []nodeAndSeq
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
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(nodeAndSeq))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = nodeAndSeq{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
