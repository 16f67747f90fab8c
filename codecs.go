package bytepress

import (
	"fmt"

	"github.com/bytepress/bytepress/internal/codec"
	"github.com/bytepress/bytepress/internal/codec/brotlicodec"
	"github.com/bytepress/bytepress/internal/codec/bzip2codec"
	"github.com/bytepress/bytepress/internal/codec/deflatecodec"
	"github.com/bytepress/bytepress/internal/codec/gzipcodec"
	"github.com/bytepress/bytepress/internal/codec/lz4codec"
	"github.com/bytepress/bytepress/internal/codec/snappycodec"
	"github.com/bytepress/bytepress/internal/codec/xzcodec"
	"github.com/bytepress/bytepress/internal/codec/zstdcodec"
)

// CodecID selects a supported compression format. The raw/block
// variants (SnappyRaw, Lz4Block) are whole-buffer formats with no
// streaming session support.
type CodecID uint8

// Supported codecs.
const (
	Snappy CodecID = iota + 1
	SnappyRaw
	Bzip2
	Lz4
	Lz4Block
	Zstd
	Gzip
	Brotli
	Deflate
	Xz
)

// String returns the codec's lower-case name.
func (id CodecID) String() string {
	switch id {
	case Snappy:
		return "snappy"
	case SnappyRaw:
		return "snappy-raw"
	case Bzip2:
		return "bzip2"
	case Lz4:
		return "lz4"
	case Lz4Block:
		return "lz4-block"
	case Zstd:
		return "zstd"
	case Gzip:
		return "gzip"
	case Brotli:
		return "brotli"
	case Deflate:
		return "deflate"
	case Xz:
		return "xz"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(id))
	}
}

// ParseCodecID parses a codec from its string name.
func ParseCodecID(name string) (CodecID, error) {
	switch name {
	case "snappy":
		return Snappy, nil
	case "snappy-raw":
		return SnappyRaw, nil
	case "bzip2":
		return Bzip2, nil
	case "lz4":
		return Lz4, nil
	case "lz4-block":
		return Lz4Block, nil
	case "zstd":
		return Zstd, nil
	case "gzip":
		return Gzip, nil
	case "brotli":
		return Brotli, nil
	case "deflate":
		return Deflate, nil
	case "xz":
		return Xz, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
}

// CodecIDs lists every supported codec, in selector order.
func CodecIDs() []CodecID {
	return []CodecID{Snappy, SnappyRaw, Bzip2, Lz4, Lz4Block, Zstd, Gzip, Brotli, Deflate, Xz}
}

// The codec adapters are stateless; one instance each serves all
// clients.
var (
	snappyCodec  = snappycodec.New()
	snappyRaw    = snappycodec.NewRaw()
	bzip2Codec   = bzip2codec.New()
	lz4Codec     = lz4codec.New()
	lz4Block     = lz4codec.NewBlock()
	zstdCodec    = zstdcodec.New()
	gzipCodec    = gzipcodec.New()
	brotliCodec  = brotlicodec.New()
	deflateCodec = deflatecodec.New()
	xzCodec      = xzcodec.New()
)

// stream returns the codec's streaming adapter, or nil for block-only
// formats.
func (id CodecID) stream() codec.Codec {
	switch id {
	case Snappy:
		return snappyCodec
	case Bzip2:
		return bzip2Codec
	case Lz4:
		return lz4Codec
	case Zstd:
		return zstdCodec
	case Gzip:
		return gzipCodec
	case Brotli:
		return brotliCodec
	case Deflate:
		return deflateCodec
	case Xz:
		return xzCodec
	default:
		return nil
	}
}

// block returns the codec's whole-buffer adapter, or nil for framed
// formats.
func (id CodecID) block() codec.BlockCodec {
	switch id {
	case SnappyRaw:
		return snappyRaw
	case Lz4Block:
		return lz4Block
	default:
		return nil
	}
}
