package huffpack

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// BitWriter packs Bits values, most significant bit first, into an
// underlying io.Writer.
//
// Close must be called exactly once.  It pads the final partial byte with
// zeroes and then writes a sentinel byte, which is the only end-of-stream
// marker in the format: 0x80 >> k when the preceding byte holds k (1..7)
// valid bits, or 0x80 when the stream ended on a byte boundary.
type BitWriter struct {
	w      *bitio.Writer
	count  uint64
	closed bool
}

// NewBitWriter returns a BitWriter that writes to w.  Closing the BitWriter
// does not close w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: bitio.NewWriter(w)}
}

// Write appends the significant bits of b to the stream.
func (bw *BitWriter) Write(b Bits) error {
	if bw.closed {
		return ErrWriterClosed
	}
	if b.Len() == 0 {
		return nil
	}
	if err := bw.w.WriteBits(uint64(b.Value()), b.Len()); err != nil {
		return errors.Wrap(err, "huffpack: writing output")
	}
	bw.count += uint64(b.Len())
	return nil
}

// WriteBit appends a single bit to the stream.
func (bw *BitWriter) WriteBit(bit bool) error {
	return bw.Write(Bits{}.Append(bit))
}

// BitsWritten returns the number of bits accepted so far, not counting
// padding or the sentinel.
func (bw *BitWriter) BitsWritten() uint64 {
	return bw.count
}

// Close pads the pending byte, writes the sentinel byte, and flushes.
func (bw *BitWriter) Close() error {
	if bw.closed {
		return ErrWriterClosed
	}
	bw.closed = true

	skipped, err := bw.w.Align()
	if err != nil {
		return errors.Wrap(err, "huffpack: writing output")
	}

	sentinel := byte(0x80)
	if skipped != 0 {
		sentinel = byte(1) << (skipped - 1)
	}
	if err := bw.w.WriteByte(sentinel); err != nil {
		return errors.Wrap(err, "huffpack: writing output")
	}
	if err := bw.w.Close(); err != nil {
		return errors.Wrap(err, "huffpack: writing output")
	}
	return nil
}

var _ io.Closer = (*BitWriter)(nil)
