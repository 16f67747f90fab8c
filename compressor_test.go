package bytepress

import (
	"bytes"
	"errors"
	"testing"
)

func TestCompressor_ChunkedRoundTrip(t *testing.T) {
	data := testData()

	for _, id := range []CodecID{Snappy, Lz4, Zstd, Gzip, Brotli, Deflate, Bzip2, Xz} {
		t.Run(id.String(), func(t *testing.T) {
			cp, err := NewCompressor(id)
			if err != nil {
				t.Fatalf("NewCompressor() error = %v", err)
			}

			// Feed in awkward chunk sizes; boundaries must not matter.
			for i := 0; i < len(data); i += 7 {
				end := i + 7
				if end > len(data) {
					end = len(data)
				}
				if _, err := cp.Compress(data[i:end]); err != nil {
					t.Fatalf("Compress() error = %v", err)
				}
			}

			encoded, err := cp.Finish()
			if err != nil {
				t.Fatalf("Finish() error = %v", err)
			}

			decompressed, err := Decompress(id, encoded)
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			if !bytes.Equal(decompressed.Bytes(), data) {
				t.Error("chunked round-trip mismatch")
			}
		})
	}
}

func TestCompressor_FlushMidStream(t *testing.T) {
	data := testData()
	half := len(data) / 2

	cp, err := NewCompressor(Gzip)
	if err != nil {
		t.Fatalf("NewCompressor() error = %v", err)
	}

	if _, err := cp.Compress(data[:half]); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	first, err := cp.Flush()
	if err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if len(first) == 0 {
		t.Error("Flush() returned no bytes after buffered input")
	}

	if _, err := cp.Compress(data[half:]); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	rest, err := cp.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	// Flushed and finished segments concatenate into one valid stream.
	decompressed, err := Decompress(Gzip, append(first, rest...))
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(decompressed.Bytes(), data) {
		t.Error("flush-split round-trip mismatch")
	}
}

func TestCompressor_FlushUnsupported(t *testing.T) {
	data := testData()

	for _, id := range []CodecID{Bzip2, Xz} {
		t.Run(id.String(), func(t *testing.T) {
			cp, err := NewCompressor(id)
			if err != nil {
				t.Fatalf("NewCompressor() error = %v", err)
			}
			if _, err := cp.Compress(data); err != nil {
				t.Fatalf("Compress() error = %v", err)
			}

			if _, err := cp.Flush(); !errors.Is(err, ErrFlushUnsupported) {
				t.Errorf("Flush() error = %v, want ErrFlushUnsupported", err)
			}

			// The failed flush must not damage the stream.
			encoded, err := cp.Finish()
			if err != nil {
				t.Fatalf("Finish() error = %v", err)
			}
			decompressed, err := Decompress(id, encoded)
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			if !bytes.Equal(decompressed.Bytes(), data) {
				t.Error("round-trip mismatch after rejected flush")
			}
		})
	}
}

func TestCompressor_ConsumedAfterFinish(t *testing.T) {
	cp, err := NewCompressor(Gzip)
	if err != nil {
		t.Fatalf("NewCompressor() error = %v", err)
	}
	if _, err := cp.Compress([]byte("payload")); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	if _, err := cp.Finish(); err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	if _, err := cp.Compress([]byte("more")); !errors.Is(err, ErrSessionConsumed) {
		t.Errorf("Compress() after Finish error = %v, want ErrSessionConsumed", err)
	}
	if _, err := cp.Flush(); !errors.Is(err, ErrSessionConsumed) {
		t.Errorf("Flush() after Finish error = %v, want ErrSessionConsumed", err)
	}
	if _, err := cp.Finish(); !errors.Is(err, ErrSessionConsumed) {
		t.Errorf("second Finish() error = %v, want ErrSessionConsumed", err)
	}
}

func TestCompressor_BlockFormatRejected(t *testing.T) {
	for _, id := range []CodecID{SnappyRaw, Lz4Block} {
		if _, err := NewCompressor(id); err == nil {
			t.Errorf("NewCompressor(%s) expected error, got nil", id)
		}
	}
}

func TestCompressor_WithLevel(t *testing.T) {
	data := testData()

	cp, err := NewCompressor(Zstd, WithLevel(3))
	if err != nil {
		t.Fatalf("NewCompressor() error = %v", err)
	}
	if _, err := cp.Compress(data); err != nil {
		t.Fatalf("Compress() error = %v", err)
	}
	encoded, err := cp.Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}

	decompressed, err := Decompress(Zstd, encoded)
	if err != nil {
		t.Fatalf("Decompress() error = %v", err)
	}
	if !bytes.Equal(decompressed.Bytes(), data) {
		t.Error("round-trip mismatch at level 3")
	}
}
