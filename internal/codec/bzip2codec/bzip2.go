// Package bzip2codec adapts bzip2 compression. The standard library
// can only decode bzip2, so both directions go through dsnet/compress.
package bzip2codec

import (
	"io"

	"github.com/dsnet/compress/bzip2"

	"github.com/bytepress/bytepress/internal/codec"
)

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// Codec implements bzip2 compression. The bzip2 format has no
// mid-stream flush point, so its writer deliberately does not
// implement codec.Flusher.
type Codec struct{}

// New returns a new bzip2 codec.
func New() *Codec {
	return &Codec{}
}

// Name returns "bzip2".
func (c *Codec) Name() string { return "bzip2" }

// Reader wraps r to decompress bzip2 data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return bzip2.NewReader(r, nil)
}

// Writer wraps w to compress data with bzip2. Levels 1-9; the library
// rejects anything else.
func (c *Codec) Writer(w io.Writer, p codec.Params) (io.WriteCloser, error) {
	level := p.Level
	if level == codec.DefaultLevel {
		level = bzip2.DefaultCompression
	}
	return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level})
}
