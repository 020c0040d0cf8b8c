package huffpack

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each byte value to its Huffman code.  Byte values that do
// not occur in the tree map to the empty Bits.
type CodeTable struct {
	codes   [256]Bits
	minSize byte
	maxSize byte
}

// DeriveCodeTable walks the tree rooted at root and assigns each leaf the
// path leading to it, with 0 for every left branch and 1 for every right
// branch.
//
// A tree consisting of a single leaf would give that leaf an empty code, so
// the leaf gets the one-bit code "0" instead.
//
// If some code would be longer than MaxBits, ErrCodeTooLong is returned.
//
func DeriveCodeTable(root *Node) (*CodeTable, error) {
	t := new(CodeTable)
	if root == nil {
		return t, nil
	}
	if root.IsLeaf() {
		t.set(root.Value, Bits{}.Append(false))
		return t, nil
	}
	if err := t.walk(root, Bits{}); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *CodeTable) walk(n *Node, prefix Bits) error {
	if n.IsLeaf() {
		t.set(n.Value, prefix)
		return nil
	}
	if prefix.Len() >= MaxBits {
		return ErrCodeTooLong
	}
	if err := t.walk(n.Left, prefix.Append(false)); err != nil {
		return err
	}
	return t.walk(n.Right, prefix.Append(true))
}

func (t *CodeTable) set(b byte, code Bits) {
	t.codes[b] = code
	size := code.Len()
	if t.minSize == 0 || t.minSize > size {
		t.minSize = size
	}
	if t.maxSize < size {
		t.maxSize = size
	}
}

// Code returns the code for byte b.
func (t *CodeTable) Code(b byte) Bits {
	return t.codes[b]
}

// MinSize is the bit length of the shortest code in the table.
func (t *CodeTable) MinSize() byte {
	return t.minSize
}

// MaxSize is the bit length of the longest code in the table.
func (t *CodeTable) MaxSize() byte {
	return t.maxSize
}

// PayloadBits returns the number of bits needed to encode input with the
// given byte frequencies using this table.
func (t *CodeTable) PayloadBits(freq *Frequencies) uint64 {
	var sum uint64
	for b, n := range freq {
		sum += n * uint64(t.codes[b].Len())
	}
	return sum
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Byte values without a code are omitted.
func (t *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.maxSize)
	for b, code := range t.codes {
		if code.Len() != 0 {
			fmt.Fprintf(&buf, "\tCode(0x%02x) = %s\n", b, code)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
