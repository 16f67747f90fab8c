package lz4codec

import (
	"bytes"
	"io"
	"math/rand"
	"testing"

	"github.com/pierrec/lz4/v4"

	"github.com/bytepress/bytepress/internal/codec"
)

func TestCodec_RoundTrip(t *testing.T) {
	c := New()
	original := bytes.Repeat([]byte("lz4 frame test data "), 500)

	var compressed bytes.Buffer
	writer, err := c.Writer(&compressed, codec.Params{Level: codec.DefaultLevel})
	if err != nil {
		t.Fatalf("Writer() error = %v", err)
	}
	if _, err := writer.Write(original); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if compressed.Len() >= len(original) {
		t.Errorf("expected compression, got %d bytes from %d bytes", compressed.Len(), len(original))
	}

	reader, err := c.Reader(&compressed)
	if err != nil {
		t.Fatalf("Reader() error = %v", err)
	}
	decompressed, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	reader.Close()

	if !bytes.Equal(decompressed, original) {
		t.Error("round-trip mismatch")
	}
}

func TestCodec_Levels(t *testing.T) {
	original := bytes.Repeat([]byte("level test "), 300)

	for _, level := range []int{0, 1, 5, 9} {
		c := New()
		var compressed bytes.Buffer
		writer, err := c.Writer(&compressed, codec.Params{Level: level})
		if err != nil {
			t.Fatalf("Writer(level=%d) error = %v", level, err)
		}
		writer.Write(original)
		if err := writer.Close(); err != nil {
			t.Fatalf("Close(level=%d) error = %v", level, err)
		}

		reader, err := c.Reader(&compressed)
		if err != nil {
			t.Fatalf("Reader(level=%d) error = %v", level, err)
		}
		decompressed, _ := io.ReadAll(reader)
		reader.Close()
		if !bytes.Equal(decompressed, original) {
			t.Errorf("round-trip mismatch at level %d", level)
		}
	}
}

func TestCodec_InvalidLevel(t *testing.T) {
	c := New()
	if _, err := c.Writer(&bytes.Buffer{}, codec.Params{Level: 17}); err == nil {
		t.Error("Writer(level=17) expected error, got nil")
	}
}

func TestBlock_RoundTrip(t *testing.T) {
	bc := NewBlock()
	original := bytes.Repeat([]byte("lz4 block test data "), 200)

	dst := make([]byte, bc.MaxCompressedLen(len(original)))
	n, err := bc.CompressBlock(original, dst, codec.Params{Level: codec.DefaultLevel})
	if err != nil {
		t.Fatalf("CompressBlock() error = %v", err)
	}
	if n >= len(original) {
		t.Errorf("expected compression, got %d bytes from %d bytes", n, len(original))
	}

	size, ok, err := bc.DecompressedLen(dst[:n])
	if err != nil {
		t.Fatalf("DecompressedLen() error = %v", err)
	}
	if !ok || size != len(original) {
		t.Errorf("DecompressedLen() = %d/%v, want %d/true", size, ok, len(original))
	}

	out := make([]byte, size)
	m, err := bc.DecompressBlock(dst[:n], out)
	if err != nil {
		t.Fatalf("DecompressBlock() error = %v", err)
	}
	if !bytes.Equal(out[:m], original) {
		t.Error("block round-trip mismatch")
	}
}

func TestBlock_IncompressibleStoredAsLiterals(t *testing.T) {
	bc := NewBlock()

	// Deterministic noise does not compress; the block is stored as a
	// literals-only sequence and decodes like any other block.
	rng := rand.New(rand.NewSource(42))
	original := make([]byte, 512)
	rng.Read(original)

	dst := make([]byte, bc.MaxCompressedLen(len(original)))
	n, err := bc.CompressBlock(original, dst, codec.Params{Level: codec.DefaultLevel})
	if err != nil {
		t.Fatalf("CompressBlock() error = %v", err)
	}

	out := make([]byte, len(original))
	m, err := bc.DecompressBlock(dst[:n], out)
	if err != nil {
		t.Fatalf("DecompressBlock() error = %v", err)
	}
	if !bytes.Equal(out[:m], original) {
		t.Error("stored block round-trip mismatch")
	}
}

func TestStoreLiterals(t *testing.T) {
	bc := NewBlock()

	// Lengths straddling the token cutoff and the extension-byte runs.
	for _, size := range []int{1, 14, 15, 16, 269, 270, 271, 600} {
		rng := rand.New(rand.NewSource(int64(size)))
		original := make([]byte, size)
		rng.Read(original)

		dst := make([]byte, bc.MaxCompressedLen(size))
		n := storeLiterals(original, dst)

		out := make([]byte, size)
		m, err := lz4.UncompressBlock(dst[:n], out)
		if err != nil {
			t.Fatalf("UncompressBlock(size=%d) error = %v", size, err)
		}
		if m != size || !bytes.Equal(out, original) {
			t.Errorf("stored sequence of %d bytes decoded to %d", size, m)
		}
	}
}

func TestBlock_CorruptBody(t *testing.T) {
	bc := NewBlock()

	// A header claiming 4 bytes over a garbage body must fail, even
	// though the body length happens to match the recorded size.
	src := []byte{4, 0, 0, 0, 0xff, 0xff, 0xff, 0xff}
	out := make([]byte, 4)
	if _, err := bc.DecompressBlock(src, out); err == nil {
		t.Error("DecompressBlock() expected error for corrupt body, got nil")
	}
}

func TestBlock_TruncatedHeader(t *testing.T) {
	bc := NewBlock()
	if _, _, err := bc.DecompressedLen([]byte{1, 2}); err == nil {
		t.Error("DecompressedLen() expected error for truncated header, got nil")
	}
}
