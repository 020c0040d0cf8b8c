package huffpack

import (
	"bytes"
	"io"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
)

// Source supplies a byte sequence that can be read more than once.  Encode
// reads its Source twice: once to count byte frequencies and once to emit
// codes.  Every call to Open must yield the same bytes.
type Source interface {
	Open() (io.ReadCloser, error)
}

// BytesSource is a Source backed by an in-memory buffer.
type BytesSource []byte

// Open returns a reader over the buffer.
func (src BytesSource) Open() (io.ReadCloser, error) {
	return ioutil.NopCloser(bytes.NewReader(src)), nil
}

// FileSource is a Source backed by a named file, which is reopened on every
// call to Open.
type FileSource string

// Open opens the file.
func (src FileSource) Open() (io.ReadCloser, error) {
	f, err := os.Open(string(src))
	if err != nil {
		return nil, errors.Wrap(err, "huffpack: opening input")
	}
	return f, nil
}

// BufferSource drains r into memory, so that input which can only be read
// once (such as standard input) can be encoded.
func BufferSource(r io.Reader) (BytesSource, error) {
	raw, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "huffpack: reading input")
	}
	return BytesSource(raw), nil
}

var (
	_ Source = BytesSource(nil)
	_ Source = FileSource("")
)
