// Package deflatecodec adapts raw DEFLATE compression.
package deflatecodec

import (
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/bytepress/bytepress/internal/codec"
)

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// Codec implements raw DEFLATE compression (no zlib or gzip wrapper).
type Codec struct{}

// New returns a new deflate codec.
func New() *Codec {
	return &Codec{}
}

// Name returns "deflate".
func (c *Codec) Name() string { return "deflate" }

// Reader wraps r to decompress raw DEFLATE data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}

// Writer wraps w to compress data with raw DEFLATE.
func (c *Codec) Writer(w io.Writer, p codec.Params) (io.WriteCloser, error) {
	level := p.Level
	if level == codec.DefaultLevel {
		level = flate.DefaultCompression
	}
	return flate.NewWriter(w, level)
}
