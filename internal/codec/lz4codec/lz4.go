// Package lz4codec adapts LZ4: the frame format as a streaming codec
// and the block format as a block codec. Compressed blocks carry a
// 4-byte little-endian size prefix so the decompressed length is
// always recoverable, matching the common python-lz4 block layout.
package lz4codec

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"

	"github.com/bytepress/bytepress/internal/codec"
)

// Compile-time checks against the capability interfaces.
var (
	_ codec.Codec      = (*Codec)(nil)
	_ codec.BlockCodec = (*Block)(nil)
)

// defaultLevel mirrors the original tool's frame default.
const defaultLevel = 4

// blockHeaderLen is the size prefix prepended to compressed blocks.
const blockHeaderLen = 4

// Codec implements the LZ4 frame format.
type Codec struct{}

// New returns a new LZ4 frame codec.
func New() *Codec {
	return &Codec{}
}

// Name returns "lz4".
func (c *Codec) Name() string { return "lz4" }

// Reader wraps r to decompress LZ4 frame data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// Writer wraps w to compress data into the LZ4 frame format. Levels
// 0-9, where 0 is the fast (non-HC) compressor.
func (c *Codec) Writer(w io.Writer, p codec.Params) (io.WriteCloser, error) {
	level := p.Level
	if level == codec.DefaultLevel {
		level = defaultLevel
	}
	lvl, err := frameLevel(level)
	if err != nil {
		return nil, err
	}

	opts := []lz4.Option{lz4.CompressionLevelOption(lvl)}
	if p.Threads > 0 {
		opts = append(opts, lz4.ConcurrencyOption(p.Threads))
	}

	writer := lz4.NewWriter(w)
	if err := writer.Apply(opts...); err != nil {
		return nil, fmt.Errorf("lz4: apply options: %w", err)
	}
	return writer, nil
}

func frameLevel(level int) (lz4.CompressionLevel, error) {
	switch level {
	case 0:
		return lz4.Fast, nil
	case 1:
		return lz4.Level1, nil
	case 2:
		return lz4.Level2, nil
	case 3:
		return lz4.Level3, nil
	case 4:
		return lz4.Level4, nil
	case 5:
		return lz4.Level5, nil
	case 6:
		return lz4.Level6, nil
	case 7:
		return lz4.Level7, nil
	case 8:
		return lz4.Level8, nil
	case 9:
		return lz4.Level9, nil
	default:
		return 0, fmt.Errorf("lz4: level %d outside 0-9", level)
	}
}

// Block implements the LZ4 block format with a size prefix.
type Block struct{}

// NewBlock returns a new LZ4 block codec.
func NewBlock() *Block {
	return &Block{}
}

// Name returns "lz4-block".
func (b *Block) Name() string { return "lz4-block" }

// MaxCompressedLen returns the worst-case block size for n input
// bytes, including the size prefix.
func (b *Block) MaxCompressedLen(n int) int {
	return lz4.CompressBlockBound(n) + blockHeaderLen
}

// CompressBlock compresses src into dst with a size prefix. LZ4 block
// mode has no level knob here; the fast compressor is always used,
// and an explicit level is rejected.
func (b *Block) CompressBlock(src, dst []byte, p codec.Params) (int, error) {
	if p.Level != codec.DefaultLevel {
		return 0, fmt.Errorf("lz4: block mode level not configurable (got %d)", p.Level)
	}

	binary.LittleEndian.PutUint32(dst, uint32(len(src)))

	n, err := lz4.CompressBlock(src, dst[blockHeaderLen:], nil)
	if err != nil {
		return 0, fmt.Errorf("lz4: compress block: %w", err)
	}
	// CompressBlock returns 0 when it determines the data is
	// incompressible. Store such input as a single literals-only
	// sequence, the encoding liblz4 emits for the same case, so the
	// block still decodes through the normal path.
	if n == 0 {
		n = storeLiterals(src, dst[blockHeaderLen:])
	}
	return n + blockHeaderLen, nil
}

// storeLiterals writes src as one sequence with no match part: a token
// carrying the literal length, LSIC extension bytes past 14, then the
// literals. Always fits within MaxCompressedLen.
func storeLiterals(src, dst []byte) int {
	i := 0
	if len(src) < 15 {
		dst[i] = byte(len(src)) << 4
		i++
	} else {
		dst[i] = 0xF0
		i++
		for rem := len(src) - 15; ; rem -= 255 {
			if rem < 255 {
				dst[i] = byte(rem)
				i++
				break
			}
			dst[i] = 255
			i++
		}
	}
	return i + copy(dst[i:], src)
}

// DecompressBlock decompresses a size-prefixed block into dst.
func (b *Block) DecompressBlock(src, dst []byte) (int, error) {
	size, _, err := b.DecompressedLen(src)
	if err != nil {
		return 0, err
	}
	if size > len(dst) {
		return 0, fmt.Errorf("lz4: decompressed size %d exceeds output capacity %d", size, len(dst))
	}

	n, err := lz4.UncompressBlock(src[blockHeaderLen:], dst[:size])
	if err != nil {
		return 0, fmt.Errorf("lz4: decompress block: %w", err)
	}
	if n != size {
		return 0, fmt.Errorf("lz4: decompressed %d bytes, header says %d", n, size)
	}
	return n, nil
}

// DecompressedLen reads the size prefix.
func (b *Block) DecompressedLen(src []byte) (int, bool, error) {
	if len(src) < blockHeaderLen {
		return 0, false, fmt.Errorf("lz4: block shorter than %d-byte size prefix", blockHeaderLen)
	}
	return int(binary.LittleEndian.Uint32(src)), true, nil
}
