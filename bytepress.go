// Package bytepress provides de/compression across a family of codecs
// with a uniform API over heterogeneous byte containers. Inputs and
// outputs may be byte slices, owned buffers, open files, foreign
// views, or plain readers and writers; the library routes each
// combination through the cheapest valid path, preferring zero-copy
// views for contiguous memory and streaming for files.
package bytepress

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/bytepress/bytepress/internal/buffer"
	"github.com/bytepress/bytepress/internal/dispatch"
	"github.com/bytepress/bytepress/internal/stats"
)

// Foreign describes caller-owned bytes managed outside the library,
// typically backing a foreign runtime's object. Bytes materializes the
// current backing slice; SetBytes publishes a replacement when a write
// had to grow it. SetBytes may be nil for fixed-size objects, in which
// case growth fails with ErrBufferTooSmall.
type Foreign struct {
	Bytes    func() []byte
	SetBytes func([]byte)
}

// Client performs de/compression operations. The zero-value knobs are
// a no-op logger and no-op metrics; a Client is safe for concurrent
// use as long as distinct calls do not share mutable inputs or outputs.
type Client struct {
	logger *zap.Logger
	stats  stats.Collector
}

// New creates a client with the given options.
func New(opts ...ClientOption) *Client {
	c := &Client{
		logger: zap.NewNop(),
		stats:  stats.NewNoop(),
	}
	for _, opt := range opts {
		opt.apply(c)
	}
	return c
}

// Compress compresses input with the given codec into a fresh Buffer,
// rewound to the start and ready to read.
func (c *Client) Compress(id CodecID, input any, opts ...Option) (*Buffer, error) {
	out := NewBuffer()
	if _, err := c.CompressInto(id, input, out, opts...); err != nil {
		return nil, err
	}
	if _, err := out.Seek(0, io.SeekStart); err != nil {
		return nil, compressErr(err)
	}
	return out, nil
}

// Decompress decompresses input with the given codec into a fresh
// Buffer, rewound to the start and ready to read.
func (c *Client) Decompress(id CodecID, input any, opts ...Option) (*Buffer, error) {
	out := NewBuffer()
	if _, err := c.DecompressInto(id, input, out, opts...); err != nil {
		return nil, err
	}
	if _, err := out.Seek(0, io.SeekStart); err != nil {
		return nil, decompressErr(err)
	}
	return out, nil
}

// CompressInto compresses input into output, returning the number of
// bytes written. Fixed-capacity outputs that cannot hold the result
// fail with an error wrapping ErrBufferTooSmall; nothing is truncated.
func (c *Client) CompressInto(id CodecID, input, output any, opts ...Option) (int64, error) {
	in, out, req, err := c.route(input, output, opts)
	if err != nil {
		return 0, compressErr(err)
	}
	bytesIn := in.Len()

	var n int64
	if bc := id.block(); bc != nil {
		n, err = dispatch.BlockCompress(bc, in, out, req)
	} else if sc := id.stream(); sc != nil {
		n, err = dispatch.Compress(sc, in, out, req)
	} else {
		err = fmt.Errorf("%w: %s", ErrUnknownCodec, id)
	}
	if err != nil {
		c.stats.IncCounter(stats.MetricErrors, 1)
		c.logger.Error("compress failed",
			zap.String("codec", id.String()),
			zap.Error(err),
		)
		return n, compressErr(err)
	}

	c.stats.IncCounter(stats.MetricCompressOps, 1)
	c.stats.IncCounter(stats.MetricBytesOut, n)
	if bytesIn >= 0 {
		c.stats.IncCounter(stats.MetricBytesIn, int64(bytesIn))
		if n > 0 {
			c.stats.ObserveHistogram(stats.MetricCompressionRatio, float64(bytesIn)/float64(n))
		}
	}
	c.logger.Debug("compressed",
		zap.String("codec", id.String()),
		zap.Int("bytes_in", bytesIn),
		zap.Int64("bytes_out", n),
	)
	return n, nil
}

// DecompressInto decompresses input into output, returning the number
// of bytes written.
func (c *Client) DecompressInto(id CodecID, input, output any, opts ...Option) (int64, error) {
	in, out, req, err := c.route(input, output, opts)
	if err != nil {
		return 0, decompressErr(err)
	}
	bytesIn := in.Len()

	var n int64
	if bc := id.block(); bc != nil {
		n, err = dispatch.BlockDecompress(bc, in, out, req)
	} else if sc := id.stream(); sc != nil {
		n, err = dispatch.Decompress(sc, in, out, req)
	} else {
		err = fmt.Errorf("%w: %s", ErrUnknownCodec, id)
	}
	if err != nil {
		c.stats.IncCounter(stats.MetricErrors, 1)
		c.logger.Error("decompress failed",
			zap.String("codec", id.String()),
			zap.Error(err),
		)
		return n, decompressErr(err)
	}

	c.stats.IncCounter(stats.MetricDecompressOps, 1)
	c.stats.IncCounter(stats.MetricBytesOut, n)
	if bytesIn >= 0 {
		c.stats.IncCounter(stats.MetricBytesIn, int64(bytesIn))
	}
	c.logger.Debug("decompressed",
		zap.String("codec", id.String()),
		zap.Int("bytes_in", bytesIn),
		zap.Int64("bytes_out", n),
	)
	return n, nil
}

// MaxCompressedLen returns the worst-case compressed size for n input
// bytes under a block codec; the capacity a fixed output must have for
// the direct-write path. Framed codecs have no fixed bound.
func (c *Client) MaxCompressedLen(id CodecID, n int) (int, error) {
	bc := id.block()
	if bc == nil {
		return 0, fmt.Errorf("%w: %s is not a block format", ErrUnknownCodec, id)
	}
	return bc.MaxCompressedLen(n), nil
}

// DecompressedLen reports the exact decompressed size recorded in a
// compressed block, with ok=false when the format does not record one.
func (c *Client) DecompressedLen(id CodecID, src []byte) (n int, ok bool, err error) {
	bc := id.block()
	if bc == nil {
		return 0, false, fmt.Errorf("%w: %s is not a block format", ErrUnknownCodec, id)
	}
	return bc.DecompressedLen(src)
}

// route classifies the input and output values and assembles the
// router request.
func (c *Client) route(input, output any, opts []Option) (in, out buffer.Handle, req dispatch.Request, err error) {
	in, err = inputHandle(input)
	if err != nil {
		return nil, nil, dispatch.Request{}, err
	}
	out, err = outputHandle(output)
	if err != nil {
		return nil, nil, dispatch.Request{}, err
	}
	if buffer.Aliased(in, out) {
		return nil, nil, dispatch.Request{}, buffer.ErrBorrowConflict
	}
	o := newCallOptions(opts)
	return in, out, dispatch.Request{Params: o.params, OutputHint: o.outputHint}, nil
}

// inputHandle maps a caller value to a readable handle. Concrete kinds
// are matched before the io.Reader fallback so buffers and files take
// their cheaper paths.
func inputHandle(v any) (buffer.Handle, error) {
	switch t := v.(type) {
	case []byte:
		return buffer.NewFixed(t), nil
	case *Buffer:
		return t.mem, nil
	case *File:
		return t.handle, nil
	case *os.File:
		return buffer.NewFile(t), nil
	case Foreign:
		return buffer.NewForeign(t.Bytes, t.SetBytes), nil
	case buffer.Handle:
		return t, nil
	case io.Reader:
		return buffer.NewReaderStream(t), nil
	default:
		return nil, fmt.Errorf("unsupported input type %T", v)
	}
}

// outputHandle maps a caller value to a writable handle. A plain
// []byte output is fixed-capacity; pass *[]byte to let the operation
// grow the caller's slice in place.
func outputHandle(v any) (buffer.Handle, error) {
	switch t := v.(type) {
	case []byte:
		return buffer.NewFixed(t), nil
	case *[]byte:
		return buffer.NewSlice(t), nil
	case *Buffer:
		return t.mem, nil
	case *File:
		return t.handle, nil
	case *os.File:
		return buffer.NewFile(t), nil
	case Foreign:
		return buffer.NewForeign(t.Bytes, t.SetBytes), nil
	case buffer.Handle:
		return t, nil
	case io.Writer:
		return buffer.NewWriterStream(t), nil
	default:
		return nil, fmt.Errorf("unsupported output type %T", v)
	}
}

// defaultClient serves the package-level convenience functions.
var defaultClient = New()

// Compress compresses input using the default client.
func Compress(id CodecID, input any, opts ...Option) (*Buffer, error) {
	return defaultClient.Compress(id, input, opts...)
}

// Decompress decompresses input using the default client.
func Decompress(id CodecID, input any, opts ...Option) (*Buffer, error) {
	return defaultClient.Decompress(id, input, opts...)
}

// CompressInto compresses input into output using the default client.
func CompressInto(id CodecID, input, output any, opts ...Option) (int64, error) {
	return defaultClient.CompressInto(id, input, output, opts...)
}

// DecompressInto decompresses input into output using the default client.
func DecompressInto(id CodecID, input, output any, opts ...Option) (int64, error) {
	return defaultClient.DecompressInto(id, input, output, opts...)
}

// NewCompressor opens a streaming compression session using the
// default client.
func NewCompressor(id CodecID, opts ...Option) (*Compressor, error) {
	return defaultClient.NewCompressor(id, opts...)
}

// NewDecompressor opens a streaming decompression session using the
// default client.
func NewDecompressor(id CodecID, opts ...Option) (*Decompressor, error) {
	return defaultClient.NewDecompressor(id, opts...)
}

// MaxCompressedLen reports the worst-case block-compressed size using
// the default client.
func MaxCompressedLen(id CodecID, n int) (int, error) {
	return defaultClient.MaxCompressedLen(id, n)
}

// DecompressedLen reports a block's recorded decompressed size using
// the default client.
func DecompressedLen(id CodecID, src []byte) (int, bool, error) {
	return defaultClient.DecompressedLen(id, src)
}
