package huffpack

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Decode reads a compressed stream from r and writes the original bytes to
// w.  An empty stream decodes to empty output.
//
// The format carries no checksum.  A damaged stream either decodes to the
// wrong bytes or fails with ErrTruncatedStream or ErrCorruptStream.
//
func Decode(r io.Reader, w io.Writer) error {
	bitr, err := NewBitReader(r)
	if err == io.EOF {
		log.Debug("empty input, nothing to decode")
		return nil
	}
	if err != nil {
		return err
	}

	root, err := readTree(bitr)
	if err != nil {
		return err
	}
	log.Debugf("read tree of depth %d", root.Depth())

	out := bufio.NewWriter(w)
	count, err := walk(bitr, root, out)
	if err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return errors.Wrap(err, "huffpack: writing output")
	}

	log.Infof("decoded %d bytes", count)
	return nil
}

// walk consumes the payload, following one tree edge per bit and emitting a
// byte each time it reaches a leaf.
func walk(bitr *BitReader, root *Node, out *bufio.Writer) (uint64, error) {
	var count uint64
	n := root
	for {
		bit, err := bitr.ReadBit()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}

		// A lone leaf at the root has the code "0".
		if !root.IsLeaf() {
			if bit {
				n = n.Right
			} else {
				n = n.Left
			}
		}

		if n.IsLeaf() {
			if err := out.WriteByte(n.Value); err != nil {
				return count, errors.Wrap(err, "huffpack: writing output")
			}
			count++
			n = root
		}
	}

	if n != root {
		return count, ErrTruncatedStream
	}
	return count, nil
}

// DecodeBytes decompresses p and returns the original bytes.
func DecodeBytes(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Decode(bytes.NewReader(p), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
