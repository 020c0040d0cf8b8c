package huffpack

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// BitReader reads a stream produced by BitWriter one bit at a time.
//
// It keeps a three byte window over its input: the byte currently being
// read, the next byte, and the byte after that.  End-of-stream is reached
// when no byte exists after the next one, making the next byte the sentinel,
// and the read position has arrived at the bit the sentinel points to.
type BitReader struct {
	r        io.ByteReader
	mask     byte
	current  byte
	next     byte
	after    byte
	hasAfter bool
}

// NewBitReader constructs a BitReader and fills its window.  It returns
// io.EOF if r holds no bytes at all, and ErrTruncatedStream if r holds just
// one byte, since every non-empty stream has at least one byte of data plus
// the sentinel.
func NewBitReader(r io.Reader) (*BitReader, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	current, err := br.ReadByte()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, errors.Wrap(err, "huffpack: reading input")
	}

	next, err := br.ReadByte()
	if err == io.EOF {
		return nil, ErrTruncatedStream
	}
	if err != nil {
		return nil, errors.Wrap(err, "huffpack: reading input")
	}

	bitr := &BitReader{
		r:       br,
		mask:    0x80,
		current: current,
		next:    next,
	}
	if err := bitr.pull(); err != nil {
		return nil, err
	}
	return bitr, nil
}

// ReadBit returns the next bit, or io.EOF once every payload bit has been
// consumed.
func (bitr *BitReader) ReadBit() (bool, error) {
	if bitr.AtEOF() {
		return false, io.EOF
	}
	return bitr.readBit()
}

// ReadRequiredBit returns the next bit.  It is used where the format
// guarantees that more data follows, so reaching end-of-stream yields
// ErrTruncatedStream rather than io.EOF.
func (bitr *BitReader) ReadRequiredBit() (bool, error) {
	if bitr.AtEOF() {
		return false, ErrTruncatedStream
	}
	return bitr.readBit()
}

// ReadLiteral reads 8 required bits, most significant bit first.
func (bitr *BitReader) ReadLiteral() (byte, error) {
	var out byte
	for i := 0; i < 8; i++ {
		bit, err := bitr.ReadRequiredBit()
		if err != nil {
			return 0, err
		}
		out <<= 1
		if bit {
			out |= 1
		}
	}
	return out, nil
}

// AtEOF returns true iff the reader has arrived at the position marked by the
// sentinel byte.
func (bitr *BitReader) AtEOF() bool {
	return !bitr.hasAfter && bitr.mask == sentinelMask(bitr.next)
}

func (bitr *BitReader) readBit() (bool, error) {
	if bitr.mask == 0 {
		if !bitr.hasAfter {
			// The byte after current should have been a sentinel and
			// was not.
			return false, ErrTruncatedStream
		}
		bitr.current = bitr.next
		bitr.next = bitr.after
		if err := bitr.pull(); err != nil {
			return false, err
		}
		bitr.mask = 0x80
	}

	bit := (bitr.current & bitr.mask) != 0
	bitr.mask >>= 1
	return bit, nil
}

func (bitr *BitReader) pull() error {
	b, err := bitr.r.ReadByte()
	if err == io.EOF {
		bitr.after = 0
		bitr.hasAfter = false
		return nil
	}
	if err != nil {
		return errors.Wrap(err, "huffpack: reading input")
	}
	bitr.after = b
	bitr.hasAfter = true
	return nil
}

// sentinelMask returns the value the read mask holds once every valid bit of
// the byte preceding sentinel has been consumed.
func sentinelMask(sentinel byte) byte {
	if sentinel == 0x80 {
		return 0
	}
	return sentinel
}
