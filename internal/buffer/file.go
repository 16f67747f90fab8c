package buffer

import "os"

// Compile-time check that File implements Handle.
var _ Handle = (*File)(nil)

// File wraps an open OS file. Reads and writes delegate to the OS and
// advance the file's own cursor. A File is not a Viewer: its bytes are
// not contiguous in memory, so callers needing a view must materialize
// it first.
type File struct {
	f *os.File
}

// NewFile wraps an already-open file. The handle does not own the
// descriptor; closing remains the caller's responsibility.
func NewFile(f *os.File) *File {
	return &File{f: f}
}

// Read delegates to the OS and may block.
func (f *File) Read(p []byte) (int, error) { return f.f.Read(p) }

// Write delegates to the OS.
func (f *File) Write(p []byte) (int, error) { return f.f.Write(p) }

// Seek delegates to the OS.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.f.Seek(offset, whence)
}

// Len returns the file's size in bytes, or -1 if it cannot be
// determined. Pipes and devices stat with a meaningless size, so only
// regular files report one.
func (f *File) Len() int {
	info, err := f.f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		return -1
	}
	return int(info.Size())
}
