// Package zstdcodec adapts zstd compression.
package zstdcodec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/bytepress/bytepress/internal/codec"
)

// Compile-time check that Codec implements codec.Codec.
var _ codec.Codec = (*Codec)(nil)

// defaultLevel matches the zstd reference default.
const defaultLevel = 3

// Codec implements zstd compression. Encoder concurrency and
// dictionaries are passed straight through to the library.
type Codec struct{}

// New returns a new zstd codec.
func New() *Codec {
	return &Codec{}
}

// Name returns "zstd".
func (c *Codec) Name() string { return "zstd" }

// Reader wraps r to decompress zstd data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return c.ReaderDict(r, nil)
}

// ReaderDict wraps r to decompress zstd data using an optional
// dictionary.
func (c *Codec) ReaderDict(r io.Reader, dict []byte) (io.ReadCloser, error) {
	opts := []zstd.DOption{}
	if len(dict) > 0 {
		opts = append(opts, zstd.WithDecoderDicts(dict))
	}
	decoder, err := zstd.NewReader(r, opts...)
	if err != nil {
		return nil, err
	}
	return decoder.IOReadCloser(), nil
}

// Writer wraps w to compress data with zstd. Levels 1-22, reference
// scale.
func (c *Codec) Writer(w io.Writer, p codec.Params) (io.WriteCloser, error) {
	level := p.Level
	if level == codec.DefaultLevel {
		level = defaultLevel
	}
	if level < 1 || level > 22 {
		return nil, fmt.Errorf("zstd: level %d outside 1-22", level)
	}

	opts := []zstd.EOption{
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
	}
	if p.Threads > 0 {
		opts = append(opts, zstd.WithEncoderConcurrency(p.Threads))
	}
	if len(p.Dict) > 0 {
		opts = append(opts, zstd.WithEncoderDict(p.Dict))
	}
	return zstd.NewWriter(w, opts...)
}
