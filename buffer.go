package bytepress

import (
	"io"

	"github.com/bytepress/bytepress/internal/buffer"
)

// Buffer is an owned, growable, seekable byte sequence. It is the
// default result kind of Compress and Decompress and can be reused as
// the input or output of further operations without copying.
type Buffer struct {
	mem *buffer.Memory
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{mem: buffer.NewMemory()}
}

// NewBufferFrom returns a buffer owning b. The caller must not retain b.
func NewBufferFrom(b []byte) *Buffer {
	return &Buffer{mem: buffer.MemoryFrom(b)}
}

// Read copies bytes from the current cursor position.
func (b *Buffer) Read(p []byte) (int, error) { return b.mem.Read(p) }

// Write copies p at the current cursor position, growing as needed.
// Writing past the end after a forward seek zero-fills the gap.
func (b *Buffer) Write(p []byte) (int, error) { return b.mem.Write(p) }

// Seek moves the cursor. Seeking past the end is allowed.
func (b *Buffer) Seek(offset int64, whence int) (int64, error) {
	return b.mem.Seek(offset, whence)
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int { return b.mem.Len() }

// Tell returns the current cursor position.
func (b *Buffer) Tell() int64 { return b.mem.Position() }

// Seekable reports whether the buffer supports seeking. Always true;
// present for interface parity with streams.
func (b *Buffer) Seekable() bool { return true }

// SetLen resizes the buffer. Shrinking truncates; growing zero-fills.
func (b *Buffer) SetLen(n int) { b.mem.SetLen(n) }

// Truncate empties the buffer and rewinds the cursor.
func (b *Buffer) Truncate() { b.mem.Truncate() }

// Bytes returns the underlying bytes. The slice is owned by the buffer
// and only valid until the next mutation.
func (b *Buffer) Bytes() []byte { return b.mem.Bytes() }

// Contains reports whether needle occurs in the buffered bytes,
// regardless of cursor position.
func (b *Buffer) Contains(needle []byte) bool { return b.mem.Contains(needle) }

// Compile-time checks for the standard I/O interfaces.
var (
	_ io.Reader = (*Buffer)(nil)
	_ io.Writer = (*Buffer)(nil)
	_ io.Seeker = (*Buffer)(nil)
)
