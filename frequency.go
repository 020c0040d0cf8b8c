package huffpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// chunkSize is the size of the buffer CountFrequencies reads into.
const chunkSize = 64 << 10

// Frequencies holds the number of occurrences of each byte value.
type Frequencies [256]uint64

// CountFrequencies reads r to EOF and counts the occurrences of every byte.
func CountFrequencies(r io.Reader) (*Frequencies, error) {
	freq := new(Frequencies)
	buf := make([]byte, chunkSize)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			freq[b]++
		}
		if err == io.EOF {
			return freq, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "huffpack: reading input")
		}
	}
}

// Total returns the total number of bytes counted.
func (freq *Frequencies) Total() uint64 {
	var sum uint64
	for _, n := range freq {
		sum += n
	}
	return sum
}

// Distinct returns the number of byte values with a nonzero count.
func (freq *Frequencies) Distinct() int {
	var count int
	for _, n := range freq {
		if n != 0 {
			count++
		}
	}
	return count
}

// Dump writes a programmer-readable debugging dump of the nonzero counts to
// the given writer.
func (freq *Frequencies) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Frequencies{\n")
	for b, n := range freq {
		if n != 0 {
			fmt.Fprintf(&buf, "\t0x%02x = %d\n", b, n)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
