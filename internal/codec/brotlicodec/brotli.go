// Package brotlicodec adapts brotli compression.
package brotlicodec

import (
	"fmt"
	"io"

	"github.com/andybalholm/brotli"

	"github.com/bytepress/bytepress/internal/codec"
)

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// defaultLevel is brotli's maximum quality, the reference default.
const defaultLevel = 11

// Codec implements brotli compression.
type Codec struct{}

// New returns a new brotli codec.
func New() *Codec {
	return &Codec{}
}

// Name returns "brotli".
func (c *Codec) Name() string { return "brotli" }

// Reader wraps r to decompress brotli data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}

// Writer wraps w to compress data with brotli. Quality 0-11.
func (c *Codec) Writer(w io.Writer, p codec.Params) (io.WriteCloser, error) {
	level := p.Level
	if level == codec.DefaultLevel {
		level = defaultLevel
	}
	if level < brotli.BestSpeed || level > brotli.BestCompression {
		return nil, fmt.Errorf("brotli: quality %d outside %d-%d", level, brotli.BestSpeed, brotli.BestCompression)
	}
	return brotli.NewWriterLevel(w, level), nil
}
