package bridge

import (
	"bytes"
	"testing"
)

func TestCompressDecompress_RoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte("bridge test data "), 200)

	tests := []struct {
		name  string
		codec Codec
	}{
		{"snappy", CodecSnappy},
		{"snappy-raw", CodecSnappyRaw},
		{"bzip2", CodecBzip2},
		{"lz4", CodecLz4},
		{"lz4-block", CodecLz4Block},
		{"zstd", CodecZstd},
		{"gzip", CodecGzip},
		{"brotli", CodecBrotli},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errMsg string
			compressed := Compress(tt.codec, data, -1, &errMsg)
			if errMsg != "" {
				t.Fatalf("Compress() errMsg = %q", errMsg)
			}
			if !compressed.Owned || len(compressed.Data) == 0 {
				t.Fatalf("Compress() = %+v, want owned non-empty buffer", compressed)
			}

			decompressed := Decompress(tt.codec, compressed.Data, -1, &errMsg)
			if errMsg != "" {
				t.Fatalf("Decompress() errMsg = %q", errMsg)
			}
			if !bytes.Equal(decompressed.Data, data) {
				t.Error("round-trip mismatch")
			}

			FreeBuffer(&compressed)
			FreeBuffer(&decompressed)
			if compressed.Data != nil || compressed.Owned {
				t.Error("FreeBuffer() did not clear the buffer")
			}
		})
	}
}

func TestCompress_UnknownSelector(t *testing.T) {
	var errMsg string
	out := Compress(Codec(99), []byte("data"), -1, &errMsg)
	if errMsg == "" {
		t.Error("Compress(99) expected errMsg, got empty")
	}
	if out.Data != nil || out.Owned {
		t.Errorf("Compress(99) = %+v, want zero buffer", out)
	}

	FreeString(&errMsg)
	if errMsg != "" {
		t.Errorf("FreeString() left %q", errMsg)
	}
}

func TestCompressInto_TooSmall(t *testing.T) {
	var errMsg string
	out := make([]byte, 4)
	n := CompressInto(CodecGzip, bytes.Repeat([]byte("x"), 1000), out, -1, &errMsg)
	if n != -1 {
		t.Errorf("CompressInto() = %d, want -1", n)
	}
	if errMsg == "" {
		t.Error("CompressInto() expected errMsg for undersized output")
	}
}

func TestMaxCompressedLen(t *testing.T) {
	var errMsg string
	n := MaxCompressedLen(CodecSnappyRaw, 1000, &errMsg)
	if n < 1000 || errMsg != "" {
		t.Errorf("MaxCompressedLen() = %d (%q), want >= 1000", n, errMsg)
	}

	if n := MaxCompressedLen(CodecGzip, 1000, &errMsg); n != -1 || errMsg == "" {
		t.Errorf("MaxCompressedLen(gzip) = %d (%q), want -1 with message", n, errMsg)
	}
}

func TestStreaming_Lifecycle(t *testing.T) {
	data := bytes.Repeat([]byte("streaming bridge "), 200)

	var errMsg string
	h := CompressorInit(StreamingGzip, -1, &errMsg)
	if h == 0 {
		t.Fatalf("CompressorInit() failed: %q", errMsg)
	}

	if n := CompressorCompress(h, data, &errMsg); n < 0 {
		t.Fatalf("CompressorCompress() failed: %q", errMsg)
	}
	encoded := CompressorFinish(h, &errMsg)
	if errMsg != "" {
		t.Fatalf("CompressorFinish() errMsg = %q", errMsg)
	}
	if !FreeCompressor(h, &errMsg) {
		t.Fatalf("FreeCompressor() failed: %q", errMsg)
	}

	dh := DecompressorInit(StreamingGzip, &errMsg)
	if dh == 0 {
		t.Fatalf("DecompressorInit() failed: %q", errMsg)
	}
	if n := DecompressorDecompress(dh, encoded.Data, &errMsg); n < 0 {
		t.Fatalf("DecompressorDecompress() failed: %q", errMsg)
	}
	decoded := DecompressorFinish(dh, &errMsg)
	if errMsg != "" {
		t.Fatalf("DecompressorFinish() errMsg = %q", errMsg)
	}
	if !bytes.Equal(decoded.Data, data) {
		t.Error("streaming round-trip mismatch")
	}
	if !FreeDecompressor(dh, &errMsg) {
		t.Fatalf("FreeDecompressor() failed: %q", errMsg)
	}
}

func TestStreaming_UseAfterFree(t *testing.T) {
	var errMsg string
	h := CompressorInit(StreamingZstd, -1, &errMsg)
	if h == 0 {
		t.Fatalf("CompressorInit() failed: %q", errMsg)
	}
	if !FreeCompressor(h, &errMsg) {
		t.Fatalf("FreeCompressor() failed: %q", errMsg)
	}

	// Double free and use-after-free must both fail cleanly.
	if FreeCompressor(h, &errMsg) {
		t.Error("second FreeCompressor() succeeded, want failure")
	}
	errMsg = ""
	if n := CompressorCompress(h, []byte("x"), &errMsg); n != -1 || errMsg == "" {
		t.Errorf("CompressorCompress(freed) = %d (%q), want -1 with message", n, errMsg)
	}
}

func TestStreaming_UnknownSelector(t *testing.T) {
	var errMsg string
	if h := CompressorInit(StreamingCodec(42), -1, &errMsg); h != 0 || errMsg == "" {
		t.Errorf("CompressorInit(42) = %d (%q), want 0 with message", h, errMsg)
	}
}
