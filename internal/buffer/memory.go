package buffer

import (
	"bytes"
	"io"
)

// Compile-time checks that Memory implements the handle interfaces.
var (
	_ Handle    = (*Memory)(nil)
	_ Viewer    = (*Memory)(nil)
	_ MutViewer = (*Memory)(nil)
)

// Memory is an exclusively-owned, growable byte sequence with a
// read/write cursor. It is the accumulation sink for streaming
// sessions and the default output kind for size-unknown operations.
type Memory struct {
	buf    []byte
	pos    int64
	borrow borrowState
}

// NewMemory returns an empty memory handle.
func NewMemory() *Memory {
	return &Memory{}
}

// MemoryFrom returns a memory handle owning b. The caller must not
// retain b.
func MemoryFrom(b []byte) *Memory {
	return &Memory{buf: b}
}

// Read copies bytes from the current cursor position.
func (m *Memory) Read(p []byte) (int, error) {
	if m.pos >= int64(len(m.buf)) {
		return 0, io.EOF
	}
	n := copy(p, m.buf[m.pos:])
	m.pos += int64(n)
	return n, nil
}

// Write copies p at the current cursor position, growing the backing
// storage as needed. Writing past the end after a forward seek
// zero-fills the gap.
func (m *Memory) Write(p []byte) (int, error) {
	end := m.pos + int64(len(p))
	if end > int64(len(m.buf)) {
		if end > int64(cap(m.buf)) {
			grown := make([]byte, end, growCap(cap(m.buf), end))
			copy(grown, m.buf)
			m.buf = grown
		} else {
			m.buf = m.buf[:end]
		}
	}
	copy(m.buf[m.pos:], p)
	m.pos = end
	return len(p), nil
}

// Seek moves the cursor. Seeking past the end is allowed; a later
// write zero-fills the gap.
func (m *Memory) Seek(offset int64, whence int) (int64, error) {
	next, err := resolveSeek(offset, whence, m.pos, int64(len(m.buf)))
	if err != nil {
		return 0, err
	}
	m.pos = next
	return next, nil
}

// Len returns the length of the buffered bytes.
func (m *Memory) Len() int { return len(m.buf) }

// Position returns the current cursor position.
func (m *Memory) Position() int64 { return m.pos }

// Bytes returns the underlying bytes. The slice is owned by the
// handle and only valid until the next mutation.
func (m *Memory) Bytes() []byte { return m.buf }

// Grow ensures capacity for at least n additional bytes. Used by the
// router to pre-size outputs from caller hints and heuristics.
func (m *Memory) Grow(n int) {
	need := len(m.buf) + n
	if need <= cap(m.buf) {
		return
	}
	grown := make([]byte, len(m.buf), need)
	copy(grown, m.buf)
	m.buf = grown
}

// SetLen resizes the buffer to size. Shrinking truncates; growing
// zero-fills.
func (m *Memory) SetLen(size int) {
	if size <= len(m.buf) {
		m.buf = m.buf[:size]
		if m.pos > int64(size) {
			m.pos = int64(size)
		}
		return
	}
	grown := make([]byte, size)
	copy(grown, m.buf)
	m.buf = grown
}

// Truncate empties the buffer and rewinds the cursor.
func (m *Memory) Truncate() {
	m.buf = m.buf[:0]
	m.pos = 0
}

// Drain returns the buffered bytes and resets the handle to empty.
// The returned slice is owned by the caller.
func (m *Memory) Drain() []byte {
	out := m.buf
	m.buf = nil
	m.pos = 0
	return out
}

// Contains reports whether needle occurs in the buffered bytes.
func (m *Memory) Contains(needle []byte) bool {
	return bytes.Contains(m.buf, needle)
}

// View grants read access to the buffered bytes for the duration of fn.
func (m *Memory) View(fn func(b []byte) error) error {
	if err := m.borrow.acquireShared(); err != nil {
		return err
	}
	defer m.borrow.releaseShared()
	return fn(m.buf)
}

// MutView grants exclusive write access to the buffered bytes for the
// duration of fn.
func (m *Memory) MutView(fn func(b []byte) error) error {
	if err := m.borrow.acquireMut(); err != nil {
		return err
	}
	defer m.borrow.releaseMut()
	return fn(m.buf)
}

// growCap doubles capacity until it covers need, starting from a small
// floor so tiny writes do not reallocate repeatedly.
func growCap(cur int, need int64) int {
	next := cur
	if next < 64 {
		next = 64
	}
	for int64(next) < need {
		next *= 2
	}
	return next
}
