// Package xzcodec adapts xz (LZMA-family) compression.
package xzcodec

import (
	"fmt"
	"io"

	"github.com/ulikunitz/xz"

	"github.com/bytepress/bytepress/internal/codec"
)

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// Codec implements xz compression. The xz container has no mid-stream
// flush point, so its writer deliberately does not implement
// codec.Flusher.
type Codec struct{}

// New returns a new xz codec.
func New() *Codec {
	return &Codec{}
}

// Name returns "xz".
func (c *Codec) Name() string { return "xz" }

// Reader wraps r to decompress xz data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	reader, err := xz.NewReader(r)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(reader), nil
}

// Writer wraps w to compress data with xz. The library exposes no
// preset scale, so an explicit level is rejected rather than silently
// remapped onto dictionary sizes.
func (c *Codec) Writer(w io.Writer, p codec.Params) (io.WriteCloser, error) {
	if p.Level != codec.DefaultLevel {
		return nil, fmt.Errorf("xz: compression level not configurable (got %d)", p.Level)
	}
	return xz.NewWriter(w)
}
