// Package gzipcodec adapts gzip compression.
package gzipcodec

import (
	"io"

	"github.com/klauspost/compress/gzip"

	"github.com/bytepress/bytepress/internal/codec"
)

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// Codec implements gzip compression.
type Codec struct{}

// New returns a new gzip codec.
func New() *Codec {
	return &Codec{}
}

// Name returns "gzip".
func (c *Codec) Name() string { return "gzip" }

// Reader wraps r to decompress gzip data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

// Writer wraps w to compress data with gzip. Levels 1-9; the library
// rejects anything else.
func (c *Codec) Writer(w io.Writer, p codec.Params) (io.WriteCloser, error) {
	level := p.Level
	if level == codec.DefaultLevel {
		level = gzip.DefaultCompression
	}
	return gzip.NewWriterLevel(w, level)
}
