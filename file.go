package bytepress

import (
	"io"
	"os"

	"github.com/bytepress/bytepress/internal/buffer"
)

// FileMode controls how OpenFile opens the underlying file. The zero
// value opens for reading and writing, creating the file if missing.
type FileMode struct {
	// ReadOnly opens the file for reading only.
	ReadOnly bool

	// Truncate empties the file on open.
	Truncate bool

	// Append positions every write at the end of the file.
	Append bool
}

// File is a file-backed byte sequence usable as the input or output of
// any operation. Reads and writes go straight to the OS; large files
// never need to fit in memory for framed codecs.
type File struct {
	f      *os.File
	handle *buffer.File
}

// OpenFile opens or creates path according to mode. A nil mode is the
// zero FileMode.
func OpenFile(path string, mode *FileMode) (*File, error) {
	if mode == nil {
		mode = &FileMode{}
	}
	flag := os.O_RDWR | os.O_CREATE
	if mode.ReadOnly {
		flag = os.O_RDONLY
	}
	if mode.Truncate {
		flag |= os.O_TRUNC
	}
	if mode.Append {
		flag |= os.O_APPEND
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if err != nil {
		return nil, err
	}
	return &File{f: f, handle: buffer.NewFile(f)}, nil
}

// Read copies bytes from the file's current position.
func (f *File) Read(p []byte) (int, error) { return f.f.Read(p) }

// Write writes p at the file's current position.
func (f *File) Write(p []byte) (int, error) { return f.f.Write(p) }

// Seek moves the file's cursor.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.f.Seek(offset, whence)
}

// Tell returns the current cursor position.
func (f *File) Tell() (int64, error) {
	return f.f.Seek(0, io.SeekCurrent)
}

// Len returns the file's size in bytes, or -1 if it cannot be
// determined.
func (f *File) Len() int { return f.handle.Len() }

// Seekable reports whether the file supports seeking. Always true.
func (f *File) Seekable() bool { return true }

// SetLen resizes the file. Shrinking truncates; growing zero-fills.
func (f *File) SetLen(n int64) error { return f.f.Truncate(n) }

// Truncate empties the file and rewinds the cursor.
func (f *File) Truncate() error {
	if err := f.f.Truncate(0); err != nil {
		return err
	}
	_, err := f.f.Seek(0, io.SeekStart)
	return err
}

// Close closes the underlying file.
func (f *File) Close() error { return f.f.Close() }
