package bridge

import (
	"github.com/bytepress/bytepress"
	"github.com/bytepress/bytepress/internal/handle"
)

// Session state lives behind generation-checked tables so foreign
// callers hold plain integers, never Go pointers. A released handle's
// slot generation is bumped, so double-free and use-after-free resolve
// to errors.
var (
	compressors   = handle.NewTable[*bytepress.Compressor]()
	decompressors = handle.NewTable[*bytepress.Decompressor]()
)

// CompressorInit opens a streaming compression session and returns its
// handle, or the zero Handle on failure.
func CompressorInit(c StreamingCodec, level int32, errMsg *string) Handle {
	id, err := c.id()
	if err != nil {
		setErr(errMsg, err)
		return 0
	}
	cp, err := bytepress.NewCompressor(id, levelOpts(level)...)
	if err != nil {
		setErr(errMsg, err)
		return 0
	}
	return compressors.Put(cp)
}

// CompressorCompress feeds input into the session, returning the
// number of encoded bytes currently buffered or -1 on failure.
func CompressorCompress(h Handle, input []byte, errMsg *string) int64 {
	cp, err := compressors.Get(h)
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	n, err := cp.Compress(input)
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	return int64(n)
}

// CompressorFlush returns the encoded bytes produced so far. Formats
// without a mid-stream flush point fail.
func CompressorFlush(h Handle, errMsg *string) Buffer {
	cp, err := compressors.Get(h)
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	out, err := cp.Flush()
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	return ownedBuffer(out)
}

// CompressorFinish completes the stream and returns the remaining
// encoded bytes. The handle stays valid until FreeCompressor; calls
// after Finish fail on the consumed session, not on the handle.
func CompressorFinish(h Handle, errMsg *string) Buffer {
	cp, err := compressors.Get(h)
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	out, err := cp.Finish()
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	return ownedBuffer(out)
}

// FreeCompressor releases the session behind h. A second free of the
// same handle fails.
func FreeCompressor(h Handle, errMsg *string) bool {
	if _, err := compressors.Release(h); err != nil {
		setErr(errMsg, err)
		return false
	}
	return true
}

// DecompressorInit opens a streaming decompression session and returns
// its handle, or the zero Handle on failure.
func DecompressorInit(c StreamingCodec, errMsg *string) Handle {
	id, err := c.id()
	if err != nil {
		setErr(errMsg, err)
		return 0
	}
	dc, err := bytepress.NewDecompressor(id)
	if err != nil {
		setErr(errMsg, err)
		return 0
	}
	return decompressors.Put(dc)
}

// DecompressorDecompress buffers compressed input, returning the total
// input bytes buffered or -1 on failure.
func DecompressorDecompress(h Handle, input []byte, errMsg *string) int64 {
	dc, err := decompressors.Get(h)
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	n, err := dc.Decompress(input)
	if err != nil {
		setErr(errMsg, err)
		return -1
	}
	return int64(n)
}

// DecompressorFlush decodes the buffered input and returns the decoded
// bytes not yet handed out.
func DecompressorFlush(h Handle, errMsg *string) Buffer {
	dc, err := decompressors.Get(h)
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	out, err := dc.Flush()
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	return ownedBuffer(out)
}

// DecompressorFinish decodes any remaining input and returns the
// decoded bytes not yet handed out. The session is consumed; the
// handle stays valid until FreeDecompressor.
func DecompressorFinish(h Handle, errMsg *string) Buffer {
	dc, err := decompressors.Get(h)
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	out, err := dc.Finish()
	if err != nil {
		setErr(errMsg, err)
		return Buffer{}
	}
	return ownedBuffer(out)
}

// FreeDecompressor releases the session behind h. A second free of the
// same handle fails.
func FreeDecompressor(h Handle, errMsg *string) bool {
	if _, err := decompressors.Release(h); err != nil {
		setErr(errMsg, err)
		return false
	}
	return true
}
