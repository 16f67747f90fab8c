// Package codec defines the capability interfaces external compression
// libraries are adapted behind. The core never compresses anything
// itself: each subpackage wraps one third-party codec and exposes it
// as a streaming Codec, a whole-buffer BlockCodec, or both.
package codec

import (
	"errors"
	"io"
)

// DefaultLevel marks an unset compression level; each codec substitutes
// its own default.
const DefaultLevel = -1

// ErrNoFlush is returned by compressing writers whose format has no
// mid-stream flush point (bzip2, xz). Finish remains mandatory to
// complete such streams.
var ErrNoFlush = errors.New("codec: format has no mid-stream flush point")

// Params carries the codec-specific knobs a caller may set. Codecs
// ignore fields they have no use for, except Level, which every codec
// validates.
type Params struct {
	// Level is the compression level, or DefaultLevel for the codec's
	// default. Out-of-range levels are an error, not clamped.
	Level int

	// Threads is the degree of codec-internal parallelism, fully
	// delegated to the codec library. Zero means the library default.
	Threads int

	// Dict is an optional compression dictionary, for codecs that
	// support one.
	Dict []byte
}

// Codec adapts one external compression library's streaming API.
type Codec interface {
	// Name returns the codec's lower-case identifier (e.g. "zstd").
	Name() string

	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)

	// Writer wraps w to compress data written to it. Close emits any
	// trailer and completes the stream without closing w.
	Writer(w io.Writer, p Params) (io.WriteCloser, error)
}

// DictReader is implemented by codecs whose decoder accepts a
// decompression dictionary.
type DictReader interface {
	// ReaderDict wraps r to decompress data using dict.
	ReaderDict(r io.Reader, dict []byte) (io.ReadCloser, error)
}

// Flusher is implemented by compressing writers that can force out
// buffered output mid-stream. Writers lacking it make session flushes
// fail with ErrNoFlush rather than silently no-op.
type Flusher interface {
	Flush() error
}

// BlockCodec adapts a whole-buffer (non-framed) compression API. Block
// operations need the entire input in memory; the router materializes
// streaming inputs before taking this path.
type BlockCodec interface {
	// Name returns the codec's lower-case identifier (e.g. "lz4-block").
	Name() string

	// MaxCompressedLen returns the worst-case compressed size for n
	// input bytes; the size of buffer to pass to CompressBlock.
	MaxCompressedLen(n int) int

	// CompressBlock compresses src into dst, returning the bytes
	// written. dst must be at least MaxCompressedLen(len(src)).
	CompressBlock(src, dst []byte, p Params) (int, error)

	// DecompressBlock decompresses src into dst, returning the bytes
	// written. An undersized dst is an error.
	DecompressBlock(src, dst []byte) (int, error)

	// DecompressedLen reports the exact decompressed size of src when
	// the format records it, with ok=false otherwise.
	DecompressedLen(src []byte) (n int, ok bool, err error)
}
