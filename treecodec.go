package huffpack

// writeTree serializes the tree rooted at n in preorder.  A leaf is written
// as a 1 bit followed by its 8-bit value; an internal node is written as a 0
// bit followed by its left subtree and then its right subtree.
func writeTree(bw *BitWriter, n *Node) error {
	if n.IsLeaf() {
		if err := bw.WriteBit(true); err != nil {
			return err
		}
		return bw.Write(ByteBits(n.Value))
	}
	if err := bw.WriteBit(false); err != nil {
		return err
	}
	if err := writeTree(bw, n.Left); err != nil {
		return err
	}
	return writeTree(bw, n.Right)
}

// readTree is the inverse of writeTree.  It consumes exactly the bits that
// writeTree produced and nothing more.
func readTree(bitr *BitReader) (*Node, error) {
	return readSubtree(bitr, 0)
}

func readSubtree(bitr *BitReader, depth int) (*Node, error) {
	isLeaf, err := bitr.ReadRequiredBit()
	if err != nil {
		return nil, err
	}

	if isLeaf {
		value, err := bitr.ReadLiteral()
		if err != nil {
			return nil, err
		}
		return NewLeaf(value, 0), nil
	}

	// Children of this node sit at depth+1, and no code is longer than
	// MaxBits.
	if depth >= MaxBits {
		return nil, ErrCorruptStream
	}

	left, err := readSubtree(bitr, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readSubtree(bitr, depth+1)
	if err != nil {
		return nil, err
	}
	return &Node{Left: left, Right: right}, nil
}
