package buffer

import (
	"errors"
	"io"
)

// errNotReadable and errNotWritable guard one-directional streams.
var (
	errNotReadable = errors.New("buffer: stream is not readable")
	errNotWritable = errors.New("buffer: stream is not writable")
)

// Compile-time check that Stream implements Handle.
var _ Handle = (*Stream)(nil)

// Stream adapts a plain io.Reader or io.Writer into a handle. Streams
// have unknown length and cannot seek, so the router falls back to
// materialization where contiguous bytes are required.
type Stream struct {
	r io.Reader
	w io.Writer
}

// NewReaderStream wraps a read-only stream.
func NewReaderStream(r io.Reader) *Stream {
	return &Stream{r: r}
}

// NewWriterStream wraps a write-only stream.
func NewWriterStream(w io.Writer) *Stream {
	return &Stream{w: w}
}

// Read delegates to the wrapped reader.
func (s *Stream) Read(p []byte) (int, error) {
	if s.r == nil {
		return 0, errNotReadable
	}
	return s.r.Read(p)
}

// Write delegates to the wrapped writer.
func (s *Stream) Write(p []byte) (int, error) {
	if s.w == nil {
		return 0, errNotWritable
	}
	return s.w.Write(p)
}

// Seek always fails: streams have no cursor to move.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	return 0, ErrInvalidSeek
}

// Len returns -1: stream length is unknown.
func (s *Stream) Len() int { return -1 }
