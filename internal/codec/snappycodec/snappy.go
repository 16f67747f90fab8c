// Package snappycodec adapts the snappy format: the framed stream
// encoding as a streaming codec and the raw block encoding as a block
// codec.
package snappycodec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/snappy"

	"github.com/bytepress/bytepress/internal/codec"
)

// Compile-time checks against the capability interfaces.
var (
	_ codec.Codec      = (*Codec)(nil)
	_ codec.BlockCodec = (*Raw)(nil)
)

// Codec implements snappy framed compression.
type Codec struct{}

// New returns a new snappy framed codec.
func New() *Codec {
	return &Codec{}
}

// Name returns "snappy".
func (c *Codec) Name() string { return "snappy" }

// Reader wraps r to decompress snappy framed data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(snappy.NewReader(r)), nil
}

// Writer wraps w to compress data into the snappy framed format.
// Snappy has no compression levels; an explicit level is rejected.
func (c *Codec) Writer(w io.Writer, p codec.Params) (io.WriteCloser, error) {
	if p.Level != codec.DefaultLevel {
		return nil, fmt.Errorf("snappy: compression level not configurable (got %d)", p.Level)
	}
	return snappy.NewBufferedWriter(w), nil
}

// Raw implements the snappy raw block encoding, which records the
// decompressed length in its header.
type Raw struct{}

// NewRaw returns a new snappy raw block codec.
func NewRaw() *Raw {
	return &Raw{}
}

// Name returns "snappy-raw".
func (r *Raw) Name() string { return "snappy-raw" }

// MaxCompressedLen returns the worst-case raw-encoded size of n bytes.
func (r *Raw) MaxCompressedLen(n int) int {
	return snappy.MaxEncodedLen(n)
}

// CompressBlock raw-encodes src into dst.
func (r *Raw) CompressBlock(src, dst []byte, p codec.Params) (int, error) {
	if p.Level != codec.DefaultLevel {
		return 0, fmt.Errorf("snappy: compression level not configurable (got %d)", p.Level)
	}
	encoded := snappy.Encode(dst, src)
	return len(encoded), nil
}

// DecompressBlock raw-decodes src into dst.
func (r *Raw) DecompressBlock(src, dst []byte) (int, error) {
	decoded, err := snappy.Decode(dst, src)
	if err != nil {
		return 0, fmt.Errorf("snappy: decode raw block: %w", err)
	}
	return len(decoded), nil
}

// DecompressedLen reads the decompressed size from the block header.
func (r *Raw) DecompressedLen(src []byte) (int, bool, error) {
	n, err := snappy.DecodedLen(src)
	if err != nil {
		return 0, false, fmt.Errorf("snappy: decoded length: %w", err)
	}
	return n, true, nil
}
