package buffer

import "io"

// Compile-time checks for the borrowed handle variants.
var (
	_ Handle    = (*Fixed)(nil)
	_ Viewer    = (*Fixed)(nil)
	_ MutViewer = (*Fixed)(nil)
	_ Handle    = (*Slice)(nil)
	_ Viewer    = (*Slice)(nil)
	_ MutViewer = (*Slice)(nil)
	_ Handle    = (*Foreign)(nil)
	_ Viewer    = (*Foreign)(nil)
	_ MutViewer = (*Foreign)(nil)
)

// Fixed is a borrowed fixed-capacity byte region. Writes beyond the
// region's capacity fail with ErrBufferTooSmall; there is no growth.
// The handle must not outlive the borrow it wraps.
type Fixed struct {
	buf    []byte
	pos    int64
	borrow borrowState
}

// NewFixed wraps a caller-owned region. The region's length is its
// capacity.
func NewFixed(b []byte) *Fixed {
	return &Fixed{buf: b}
}

// Read copies bytes from the current cursor position.
func (f *Fixed) Read(p []byte) (int, error) {
	if f.pos >= int64(len(f.buf)) {
		return 0, io.EOF
	}
	n := copy(p, f.buf[f.pos:])
	f.pos += int64(n)
	return n, nil
}

// Write copies p into the region at the cursor. A write that does not
// fit writes nothing and fails with ErrBufferTooSmall: overflow is an
// explicit failure, never a silent truncation.
func (f *Fixed) Write(p []byte) (int, error) {
	remaining := int64(len(f.buf)) - f.pos
	if int64(len(p)) > remaining {
		return 0, ErrBufferTooSmall
	}
	n := copy(f.buf[f.pos:], p)
	f.pos += int64(n)
	return n, nil
}

// Seek moves the cursor within the region's bounds.
func (f *Fixed) Seek(offset int64, whence int) (int64, error) {
	next, err := resolveSeek(offset, whence, f.pos, int64(len(f.buf)))
	if err != nil {
		return 0, err
	}
	if next > int64(len(f.buf)) {
		return 0, ErrInvalidSeek
	}
	f.pos = next
	return next, nil
}

// Len returns the capacity of the borrowed region.
func (f *Fixed) Len() int { return len(f.buf) }

// Position returns the current cursor position. The router reports it
// as the byte count written into a fixed output.
func (f *Fixed) Position() int64 { return f.pos }

// View grants read access to the borrowed region.
func (f *Fixed) View(fn func(b []byte) error) error {
	if err := f.borrow.acquireShared(); err != nil {
		return err
	}
	defer f.borrow.releaseShared()
	return fn(f.buf)
}

// MutView grants exclusive write access to the borrowed region.
func (f *Fixed) MutView(fn func(b []byte) error) error {
	if err := f.borrow.acquireMut(); err != nil {
		return err
	}
	defer f.borrow.releaseMut()
	return fn(f.buf)
}

// Slice is a borrowed, resizable byte container: writes grow the
// caller's slice in place through the shared pointer, so the caller
// observes the final backing array when the call returns.
type Slice struct {
	ptr    *[]byte
	pos    int64
	borrow borrowState
}

// NewSlice wraps a caller-owned slice pointer.
func NewSlice(p *[]byte) *Slice {
	return &Slice{ptr: p}
}

// Read copies bytes from the current cursor position.
func (s *Slice) Read(p []byte) (int, error) {
	b := *s.ptr
	if s.pos >= int64(len(b)) {
		return 0, io.EOF
	}
	n := copy(p, b[s.pos:])
	s.pos += int64(n)
	return n, nil
}

// Write copies p at the cursor, growing the caller's slice as needed.
func (s *Slice) Write(p []byte) (int, error) {
	b := *s.ptr
	end := s.pos + int64(len(p))
	if end > int64(len(b)) {
		grown := append(b, make([]byte, end-int64(len(b)))...)
		b = grown
	}
	copy(b[s.pos:], p)
	*s.ptr = b
	s.pos = end
	return len(p), nil
}

// Seek moves the cursor. Like Memory, seeking past the end is allowed.
func (s *Slice) Seek(offset int64, whence int) (int64, error) {
	next, err := resolveSeek(offset, whence, s.pos, int64(len(*s.ptr)))
	if err != nil {
		return 0, err
	}
	s.pos = next
	return next, nil
}

// Len returns the current length of the caller's slice.
func (s *Slice) Len() int { return len(*s.ptr) }

// Position returns the current cursor position.
func (s *Slice) Position() int64 { return s.pos }

// View grants read access to the caller's slice.
func (s *Slice) View(fn func(b []byte) error) error {
	if err := s.borrow.acquireShared(); err != nil {
		return err
	}
	defer s.borrow.releaseShared()
	return fn(*s.ptr)
}

// MutView grants exclusive write access to the caller's slice.
func (s *Slice) MutView(fn func(b []byte) error) error {
	if err := s.borrow.acquireMut(); err != nil {
		return err
	}
	defer s.borrow.releaseMut()
	return fn(*s.ptr)
}

// Foreign is a borrowed view negotiated at call time through an
// injected converter pair: Bytes materializes the caller's current
// backing bytes, SetBytes publishes a replacement when a write had to
// reallocate. This keeps the core free of any particular foreign
// calling convention; the converters are invoked synchronously.
type Foreign struct {
	bytes    func() []byte
	setBytes func([]byte)
	pos      int64
	borrow   borrowState
}

// NewForeign wraps a converter pair. setBytes may be nil for read-only
// objects, in which case growth fails with ErrBufferTooSmall.
func NewForeign(bytes func() []byte, setBytes func([]byte)) *Foreign {
	return &Foreign{bytes: bytes, setBytes: setBytes}
}

// Read copies bytes from the current cursor position.
func (f *Foreign) Read(p []byte) (int, error) {
	b := f.bytes()
	if f.pos >= int64(len(b)) {
		return 0, io.EOF
	}
	n := copy(p, b[f.pos:])
	f.pos += int64(n)
	return n, nil
}

// Write copies p at the cursor. Growth is delegated to the caller's
// SetBytes converter; without one the region is effectively fixed.
func (f *Foreign) Write(p []byte) (int, error) {
	b := f.bytes()
	end := f.pos + int64(len(p))
	if end > int64(len(b)) {
		if f.setBytes == nil {
			return 0, ErrBufferTooSmall
		}
		grown := append(b, make([]byte, end-int64(len(b)))...)
		f.setBytes(grown)
		b = f.bytes()
	}
	copy(b[f.pos:], p)
	f.pos = end
	return len(p), nil
}

// Seek moves the cursor within the negotiated view.
func (f *Foreign) Seek(offset int64, whence int) (int64, error) {
	length := int64(len(f.bytes()))
	next, err := resolveSeek(offset, whence, f.pos, length)
	if err != nil {
		return 0, err
	}
	if next > length {
		return 0, ErrInvalidSeek
	}
	f.pos = next
	return next, nil
}

// Len returns the current length of the negotiated view.
func (f *Foreign) Len() int { return len(f.bytes()) }

// View grants read access to the negotiated view.
func (f *Foreign) View(fn func(b []byte) error) error {
	if err := f.borrow.acquireShared(); err != nil {
		return err
	}
	defer f.borrow.releaseShared()
	return fn(f.bytes())
}

// MutView grants exclusive write access to the negotiated view.
func (f *Foreign) MutView(fn func(b []byte) error) error {
	if err := f.borrow.acquireMut(); err != nil {
		return err
	}
	defer f.borrow.releaseMut()
	return fn(f.bytes())
}
