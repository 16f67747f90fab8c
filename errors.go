package bytepress

import (
	"errors"

	"github.com/bytepress/bytepress/internal/buffer"
	"github.com/bytepress/bytepress/internal/codec"
)

// Sentinel errors for well-defined caller mistakes. These are local
// and non-retryable; they indicate misuse, not a data problem, and are
// never wrapped into the two operation error kinds.
var (
	// ErrSessionConsumed indicates a streaming session method was
	// called after Finish.
	ErrSessionConsumed = errors.New("bytepress: session consumed by finish, create a new instance")

	// ErrFlushUnsupported indicates the codec's format has no
	// mid-stream flush point; Finish remains mandatory.
	ErrFlushUnsupported = codec.ErrNoFlush

	// ErrUnknownCodec indicates an unrecognized codec selector.
	ErrUnknownCodec = errors.New("bytepress: unknown codec")

	// ErrBufferTooSmall indicates a fixed-capacity output could not
	// hold the result. The output is never silently truncated.
	ErrBufferTooSmall = buffer.ErrBufferTooSmall

	// ErrBorrowConflict indicates conflicting concurrent access to the
	// same caller-owned bytes.
	ErrBorrowConflict = buffer.ErrBorrowConflict

	// ErrInvalidSeek indicates a seek outside a handle's bounds or on
	// a non-seekable object.
	ErrInvalidSeek = buffer.ErrInvalidSeek
)

// CompressionError is the single user-facing kind for failures while
// encoding: bad levels or parameters, undersized outputs, and
// codec-internal faults. Lower-level I/O failures are wrapped at the
// point of detection; the original message text is preserved.
type CompressionError struct {
	Err error
}

func (e *CompressionError) Error() string {
	return "bytepress: compress: " + e.Err.Error()
}

func (e *CompressionError) Unwrap() error { return e.Err }

// DecompressionError is the single user-facing kind for failures while
// decoding: corrupt or truncated input, undersized outputs, and
// unsupported formats.
type DecompressionError struct {
	Err error
}

func (e *DecompressionError) Error() string {
	return "bytepress: decompress: " + e.Err.Error()
}

func (e *DecompressionError) Unwrap() error { return e.Err }

// compressErr wraps err into a CompressionError unless it already is
// one.
func compressErr(err error) error {
	if err == nil {
		return nil
	}
	var ce *CompressionError
	if errors.As(err, &ce) {
		return err
	}
	return &CompressionError{Err: err}
}

// decompressErr wraps err into a DecompressionError unless it already
// is one.
func decompressErr(err error) error {
	if err == nil {
		return nil
	}
	var de *DecompressionError
	if errors.As(err, &de) {
		return err
	}
	return &DecompressionError{Err: err}
}
