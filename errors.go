package huffpack

import (
	"github.com/pkg/errors"
)

var (
	// ErrTruncatedStream is returned when a compressed stream ends before a
	// complete tree or a complete payload symbol could be read.
	ErrTruncatedStream = errors.New("huffpack: truncated stream")

	// ErrCorruptStream is returned when a compressed stream describes a tree
	// that this package could never have produced.
	ErrCorruptStream = errors.New("huffpack: corrupt stream")

	// ErrCodeTooLong is returned when the input's frequency distribution
	// requires a code longer than MaxBits.
	ErrCodeTooLong = errors.New("huffpack: code exceeds maximum length")

	// ErrWriterClosed is returned by BitWriter methods called after Close.
	ErrWriterClosed = errors.New("huffpack: bit writer already closed")
)
