// Package buffer provides the polymorphic handle over heterogeneous
// byte-bearing objects: owned growable memory, OS files, and several
// kinds of caller-owned regions. Every variant exposes the same
// read/write/seek surface; borrowed variants additionally track
// exclusive access so that conflicting borrows are detected instead of
// silently tolerated.
package buffer

import (
	"errors"
	"io"
)

// Sentinel errors for well-defined handle failures.
var (
	// ErrBufferTooSmall indicates a write would exceed the capacity of a
	// fixed-size output region. The write is never silently truncated.
	ErrBufferTooSmall = errors.New("buffer: output buffer too small")

	// ErrBorrowConflict indicates a mutable view was requested while
	// another view of the same object was outstanding.
	ErrBorrowConflict = errors.New("buffer: conflicting borrow of caller-owned bytes")

	// ErrInvalidSeek indicates a seek outside the bounds of a borrowed
	// region, or with an unknown whence value.
	ErrInvalidSeek = errors.New("buffer: invalid seek")
)

// Handle is the common surface over every byte-bearing variant.
// A Handle requires at most one concurrent user; no internal locking
// is provided.
type Handle interface {
	io.Reader
	io.Writer
	io.Seeker

	// Len returns the total length of the underlying bytes, or -1 when
	// the length cannot be determined.
	Len() int
}

// Viewer is implemented by handles whose bytes are already contiguous
// in memory. The view is granted through a scoped closure so the slice
// can never outlive the borrow that produced it.
type Viewer interface {
	// View grants read access to the underlying bytes for the duration
	// of fn.
	View(fn func(b []byte) error) error
}

// MutViewer is implemented by handles that can grant exclusive mutable
// access to their bytes. Requesting a mutable view while any other
// view is outstanding fails with ErrBorrowConflict.
type MutViewer interface {
	// MutView grants exclusive write access to the underlying bytes for
	// the duration of fn.
	MutView(fn func(b []byte) error) error
}

// borrowState tracks outstanding views of a single handle. It is a
// contract checker, not a lock: handles are single-user by design.
type borrowState struct {
	shared int
	mut    bool
}

func (b *borrowState) acquireShared() error {
	if b.mut {
		return ErrBorrowConflict
	}
	b.shared++
	return nil
}

func (b *borrowState) releaseShared() { b.shared-- }

func (b *borrowState) acquireMut() error {
	if b.mut || b.shared > 0 {
		return ErrBorrowConflict
	}
	b.mut = true
	return nil
}

func (b *borrowState) releaseMut() { b.mut = false }

// resolveSeek converts an (offset, whence) pair against the current
// position and length into an absolute position. Negative results fail
// with ErrInvalidSeek.
func resolveSeek(offset int64, whence int, pos, length int64) (int64, error) {
	var next int64
	switch whence {
	case io.SeekStart:
		next = offset
	case io.SeekCurrent:
		next = pos + offset
	case io.SeekEnd:
		next = length + offset
	default:
		return 0, ErrInvalidSeek
	}
	if next < 0 {
		return 0, ErrInvalidSeek
	}
	return next, nil
}
