// Package bridge exposes a foreign-caller surface shaped for a flat
// ABI: integer codec selectors, ownership-tagged byte buffers, string
// out-parameters instead of returned errors, and opaque integer
// handles for streaming sessions. Handles are generation-checked, so a
// released or fabricated handle is a detected error rather than a read
// of recycled memory.
package bridge

import (
	"fmt"

	"github.com/bytepress/bytepress"
	"github.com/bytepress/bytepress/internal/handle"
)

// Codec selects a format for the one-shot entry points.
type Codec int32

// One-shot codec selectors.
const (
	CodecSnappy Codec = iota + 1
	CodecSnappyRaw
	CodecBzip2
	CodecLz4
	CodecLz4Block
	CodecZstd
	CodecGzip
	CodecBrotli
)

// StreamingCodec selects a format for streaming sessions. Block-only
// formats have no streaming selector.
type StreamingCodec int32

// Streaming codec selectors.
const (
	StreamingSnappy StreamingCodec = iota + 1
	StreamingBzip2
	StreamingLz4
	StreamingZstd
	StreamingGzip
	StreamingBrotli
)

// Handle is an opaque reference to a streaming session. The zero
// Handle is never issued and marks failure.
type Handle = handle.Handle

// Buffer is a byte region crossing the boundary. Owned reports whether
// the library allocated Data; only owned buffers are released by
// FreeBuffer. Borrowed buffers stay the caller's to manage.
type Buffer struct {
	Data  []byte
	Owned bool
}

// ownedBuffer wraps library-allocated bytes.
func ownedBuffer(b []byte) Buffer {
	return Buffer{Data: b, Owned: true}
}

// setErr records a failure in the out-parameter. A nil out-parameter
// drops the message; the zero-value return still signals failure.
func setErr(errMsg *string, err error) {
	if errMsg != nil {
		*errMsg = err.Error()
	}
}

func (c Codec) id() (bytepress.CodecID, error) {
	switch c {
	case CodecSnappy:
		return bytepress.Snappy, nil
	case CodecSnappyRaw:
		return bytepress.SnappyRaw, nil
	case CodecBzip2:
		return bytepress.Bzip2, nil
	case CodecLz4:
		return bytepress.Lz4, nil
	case CodecLz4Block:
		return bytepress.Lz4Block, nil
	case CodecZstd:
		return bytepress.Zstd, nil
	case CodecGzip:
		return bytepress.Gzip, nil
	case CodecBrotli:
		return bytepress.Brotli, nil
	default:
		return 0, fmt.Errorf("bridge: unknown codec selector %d", int32(c))
	}
}

func (c StreamingCodec) id() (bytepress.CodecID, error) {
	switch c {
	case StreamingSnappy:
		return bytepress.Snappy, nil
	case StreamingBzip2:
		return bytepress.Bzip2, nil
	case StreamingLz4:
		return bytepress.Lz4, nil
	case StreamingZstd:
		return bytepress.Zstd, nil
	case StreamingGzip:
		return bytepress.Gzip, nil
	case StreamingBrotli:
		return bytepress.Brotli, nil
	default:
		return 0, fmt.Errorf("bridge: unknown streaming codec selector %d", int32(c))
	}
}

// levelOpts maps the flat level parameter to options. Negative means
// the codec default.
func levelOpts(level int32) []bytepress.Option {
	if level < 0 {
		return nil
	}
	return []bytepress.Option{bytepress.WithLevel(int(level))}
}

// Compress compresses input as one shot. On failure the returned
// buffer is the zero value and errMsg carries the message.
func Compress(c Codec, input []byte, level int32, errMsg *string) Buffer {
	id, err := c.id()
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	out, err := bytepress.Compress(id, input, levelOpts(level)...)
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	return ownedBuffer(out.Bytes())
}

// Decompress decompresses input as one shot. outputLen sizes the
// result for block formats that do not record it; framed formats and
// size-recording blocks ignore a non-positive value.
func Decompress(c Codec, input []byte, outputLen int32, errMsg *string) Buffer {
	id, err := c.id()
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	var opts []bytepress.Option
	if outputLen > 0 {
		opts = append(opts, bytepress.WithOutputLen(int(outputLen)))
	}
	out, err := bytepress.Decompress(id, input, opts...)
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	return ownedBuffer(out.Bytes())
}

// CompressInto compresses input into the caller's fixed-capacity
// output, returning the bytes written or -1 on failure. The output is
// never truncated; an undersized output is a failure.
func CompressInto(c Codec, input, output []byte, level int32, errMsg *string) int64 {
	id, err := c.id()
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	n, err := bytepress.CompressInto(id, input, output, levelOpts(level)...)
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	return n
}

// DecompressInto decompresses input into the caller's fixed-capacity
// output, returning the bytes written or -1 on failure.
func DecompressInto(c Codec, input, output []byte, errMsg *string) int64 {
	id, err := c.id()
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	n, err := bytepress.DecompressInto(id, input, output)
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	return n
}

// MaxCompressedLen returns the worst-case compressed size of n bytes
// under a block format, or -1 for framed formats.
func MaxCompressedLen(c Codec, n int64, errMsg *string) int64 {
	id, err := c.id()
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	bound, err := bytepress.MaxCompressedLen(id, int(n))
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	return int64(bound)
}

// DecompressedLen returns the decompressed size recorded in src, or -1
// when the format records none.
func DecompressedLen(c Codec, src []byte, errMsg *string) int64 {
	id, err := c.id()
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	n, ok, err := bytepress.DecompressedLen(id, src)
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	if !ok {
		return -1
	}
	return int64(n)
}

// FreeBuffer releases an owned buffer. Releasing a borrowed or already
// freed buffer is a no-op.
func FreeBuffer(b *Buffer) {
	if b == nil || !b.Owned {
		return
	}
	b.Data = nil
	b.Owned = false
}

// FreeString clears an error message out-parameter.
func FreeString(s *string) {
	if s != nil {
		*s = ""
	}
}
