// Package dispatch routes codec operations across the buffer handle
// variants. Given an input handle, an output handle and a codec, it
// picks the cheapest valid execution path: a zero-copy view for
// contiguous inputs, a direct write for fixed-capacity outputs, a
// pre-sized auto-growing sink when the output size is unknown, and a
// streaming read for file-backed inputs. Block-only codecs need the
// whole input in memory, so file inputs are materialized first for
// them; that is a deliberate compromise, not the general rule.
package dispatch

import (
	"fmt"
	"io"

	"github.com/bytepress/bytepress/internal/buffer"
	"github.com/bytepress/bytepress/internal/codec"
)

// Sizing heuristics for pre-growing a size-unknown output when the
// caller gives no hint.
const (
	// compressShrinkFactor guesses compressed output at 1/10th of the
	// input length.
	compressShrinkFactor = 10

	// copyChunkSize is the scratch size for streaming copies.
	copyChunkSize = 32 * 1024
)

// Request carries the per-call knobs into the router.
type Request struct {
	// Params is passed through to the codec.
	Params codec.Params

	// OutputHint pre-sizes a growable output, overriding the
	// heuristic. Zero means no hint.
	OutputHint int
}

// Compress streams in through c's compressing writer into out,
// returning the bytes written to out. An empty input of known length
// produces an empty output without invoking the codec.
func Compress(c codec.Codec, in, out buffer.Handle, req Request) (int64, error) {
	if in.Len() == 0 {
		return 0, nil
	}
	presize(out, in.Len(), req.OutputHint, true)

	counted := &countingWriter{w: out}
	wc, err := c.Writer(counted, req.Params)
	if err != nil {
		return 0, err
	}
	if _, err := copyBuffer(wc, in); err != nil {
		return counted.n, err
	}
	if err := wc.Close(); err != nil {
		return counted.n, err
	}
	return counted.n, nil
}

// Decompress streams in through c's decompressing reader into out,
// returning the bytes written to out.
func Decompress(c codec.Codec, in, out buffer.Handle, req Request) (int64, error) {
	if in.Len() == 0 {
		return 0, nil
	}
	presize(out, in.Len(), req.OutputHint, false)

	var rc io.ReadCloser
	var err error
	if dr, ok := c.(codec.DictReader); ok && len(req.Params.Dict) > 0 {
		rc, err = dr.ReaderDict(in, req.Params.Dict)
	} else {
		rc, err = c.Reader(in)
	}
	if err != nil {
		return 0, err
	}

	n, err := copyBuffer(out, rc)
	if err != nil {
		rc.Close()
		return n, err
	}
	if err := rc.Close(); err != nil {
		return n, err
	}
	return n, nil
}

// BlockCompress materializes in, compresses it as a single block and
// writes the result to out. When out already exposes a mutable region
// large enough for the worst case, the block is written straight into
// it.
func BlockCompress(bc codec.BlockCodec, in, out buffer.Handle, req Request) (int64, error) {
	if in.Len() == 0 {
		return 0, nil
	}

	var written int64
	err := withContiguous(in, func(src []byte) error {
		bound := bc.MaxCompressedLen(len(src))

		// Direct path: compress into the caller's region without a
		// scratch allocation.
		if mv, ok := out.(buffer.MutViewer); ok && out.Len() >= bound {
			var n int
			err := mv.MutView(func(dst []byte) error {
				var err error
				n, err = bc.CompressBlock(src, dst, req.Params)
				return err
			})
			if err != nil {
				return err
			}
			if _, err := out.Seek(int64(n), io.SeekStart); err != nil {
				return err
			}
			written = int64(n)
			return nil
		}

		scratch := make([]byte, bound)
		n, err := bc.CompressBlock(src, scratch, req.Params)
		if err != nil {
			return err
		}
		wrote, err := out.Write(scratch[:n])
		written = int64(wrote)
		return err
	})
	return written, err
}

// BlockDecompress materializes in, decompresses it as a single block
// and writes the result to out. The output size comes from the block's
// own header when the format records one, else from the caller's hint.
func BlockDecompress(bc codec.BlockCodec, in, out buffer.Handle, req Request) (int64, error) {
	if in.Len() == 0 {
		return 0, nil
	}

	var written int64
	err := withContiguous(in, func(src []byte) error {
		size, ok, err := bc.DecompressedLen(src)
		if err != nil {
			return err
		}
		if !ok {
			if req.OutputHint <= 0 {
				return fmt.Errorf("%s: output length required, format does not record it", bc.Name())
			}
			size = req.OutputHint
		}

		if mv, ok := out.(buffer.MutViewer); ok && out.Len() >= size {
			var n int
			err := mv.MutView(func(dst []byte) error {
				var err error
				n, err = bc.DecompressBlock(src, dst)
				return err
			})
			if err != nil {
				return err
			}
			if _, err := out.Seek(int64(n), io.SeekStart); err != nil {
				return err
			}
			written = int64(n)
			return nil
		}

		scratch := make([]byte, size)
		n, err := bc.DecompressBlock(src, scratch)
		if err != nil {
			return err
		}
		wrote, err := out.Write(scratch[:n])
		written = int64(wrote)
		return err
	})
	return written, err
}

// withContiguous grants fn a view of the handle's full contents. For
// handles already backed by contiguous memory the view is zero-copy
// and scoped to fn, so it can never outlive its borrow; files and
// streams are materialized from the current cursor first.
func withContiguous(h buffer.Handle, fn func(b []byte) error) error {
	if v, ok := h.(buffer.Viewer); ok {
		return v.View(fn)
	}
	b, err := io.ReadAll(h)
	if err != nil {
		return err
	}
	return fn(b)
}

// presize reserves capacity on growable outputs. The heuristic guesses
// 1/10th of the input length for compression and the input length for
// decompression; a caller hint overrides it.
func presize(out buffer.Handle, inputLen, hint int, compressing bool) {
	mem, ok := out.(*buffer.Memory)
	if !ok {
		return
	}
	size := hint
	if size <= 0 {
		if inputLen < 0 {
			return
		}
		if compressing {
			size = inputLen / compressShrinkFactor
		} else {
			size = inputLen
		}
	}
	if size > 0 {
		mem.Grow(size)
	}
}

// countingWriter tracks bytes written through to the output handle.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// copyBuffer is io.Copy with a fixed scratch size, kept local so the
// router controls its own allocation behavior.
func copyBuffer(dst io.Writer, src io.Reader) (int64, error) {
	buf := make([]byte, copyChunkSize)
	return io.CopyBuffer(dst, src, buf)
}
