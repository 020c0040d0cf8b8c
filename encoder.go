package huffpack

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// Encoder holds the result of the first encoding pass over a Source: its
// byte frequencies, the Huffman tree built from them, and the derived code
// table.  All three are immutable once NewEncoder returns.
type Encoder struct {
	src   Source
	freq  *Frequencies
	root  *Node
	table *CodeTable
}

// NewEncoder reads src once and prepares to encode it.
func NewEncoder(src Source) (*Encoder, error) {
	freq, err := countSource(src)
	if err != nil {
		return nil, err
	}
	log.Debugf("counted %d bytes, %d distinct", freq.Total(), freq.Distinct())

	root := BuildTree(freq)
	table, err := DeriveCodeTable(root)
	if err != nil {
		return nil, err
	}
	if root != nil {
		log.Debugf("derived codes of %d .. %d bits", table.MinSize(), table.MaxSize())
	}

	return &Encoder{src: src, freq: freq, root: root, table: table}, nil
}

// Frequencies returns the byte frequencies counted by the first pass.
func (e *Encoder) Frequencies() *Frequencies {
	return e.freq
}

// Tree returns the root of the Huffman tree, or nil for empty input.
func (e *Encoder) Tree() *Node {
	return e.root
}

// Table returns the code table.
func (e *Encoder) Table() *CodeTable {
	return e.table
}

// EncodeTo reads the Source a second time and writes the compressed stream
// to w.  Empty input produces no output at all.
func (e *Encoder) EncodeTo(w io.Writer) error {
	if e.root == nil {
		log.Debug("empty input, nothing to encode")
		return nil
	}

	bw := NewBitWriter(w)
	err := writeTree(bw, e.root)
	treeBits := bw.BitsWritten()
	if err == nil {
		err = e.writePayload(bw)
	}
	if closeErr := bw.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}

	total := bw.BitsWritten()
	log.Infof("encoded %d bytes as %d tree bits + %d payload bits", e.freq.Total(), treeBits, total-treeBits)
	return nil
}

func (e *Encoder) writePayload(bw *BitWriter) error {
	r, err := e.src.Open()
	if err != nil {
		return err
	}
	defer r.Close()

	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			code := e.table.Code(b)
			if code.Len() == 0 {
				return errors.Errorf("huffpack: input changed between passes: byte 0x%02x was not counted", b)
			}
			if err := bw.Write(code); err != nil {
				return err
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "huffpack: reading input")
		}
	}
}

// Encode compresses the bytes supplied by src and writes the compressed
// stream to w.  src is read twice.
func Encode(src Source, w io.Writer) error {
	e, err := NewEncoder(src)
	if err != nil {
		return err
	}
	return e.EncodeTo(w)
}

// EncodeBytes compresses p and returns the compressed stream.
func EncodeBytes(p []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(BytesSource(p), &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func countSource(src Source) (*Frequencies, error) {
	r, err := src.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return CountFrequencies(r)
}
