package bytepress

import (
	"bytes"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/bytepress/bytepress/internal/buffer"
	"github.com/bytepress/bytepress/internal/codec"
	"github.com/bytepress/bytepress/internal/stats"
)

// Decompressor is a streaming decompression session. Compressed input
// arrives in chunks through Decompress and is buffered; decoding runs
// when Flush or Finish is called, and each call returns only the
// decoded bytes not yet handed out. Finish consumes the session for
// further input, but Len and Contains stay readable afterwards. A
// Decompressor is not safe for concurrent use.
type Decompressor struct {
	id       CodecID
	codec    codec.Codec
	dict     []byte
	input    *buffer.Memory
	decoded  *buffer.Memory
	served   int
	logger   *zap.Logger
	stats    stats.Collector
	finished bool
}

// NewDecompressor opens a streaming decompression session. Block-only
// formats (SnappyRaw, Lz4Block) have no streaming form and are
// rejected.
func (c *Client) NewDecompressor(id CodecID, opts ...Option) (*Decompressor, error) {
	sc := id.stream()
	if sc == nil {
		return nil, decompressErr(fmt.Errorf("%s: format has no streaming form", id))
	}
	o := newCallOptions(opts)

	c.stats.IncCounter(stats.MetricSessionsOpened, 1)
	return &Decompressor{
		id:      id,
		codec:   sc,
		dict:    o.params.Dict,
		input:   buffer.NewMemory(),
		decoded: buffer.NewMemory(),
		logger:  c.logger,
		stats:   c.stats,
	}, nil
}

// Decompress buffers a chunk of compressed input and returns the total
// number of input bytes buffered so far. The chunk boundaries carry no
// meaning; feeding a stream whole or split byte by byte decodes
// identically.
func (d *Decompressor) Decompress(p []byte) (int, error) {
	if d.finished {
		return 0, ErrSessionConsumed
	}
	if _, err := d.input.Write(p); err != nil {
		return d.input.Len(), decompressErr(err)
	}
	return d.input.Len(), nil
}

// Flush decodes the buffered input and returns the decoded bytes not
// yet handed out. The session stays open for more input. Flushing a
// stream cut mid-frame fails; the codec cannot decode a partial frame.
func (d *Decompressor) Flush() ([]byte, error) {
	if d.finished {
		return nil, ErrSessionConsumed
	}
	if err := d.decode(); err != nil {
		return nil, decompressErr(err)
	}
	return d.take(), nil
}

// Finish decodes any remaining input and returns the decoded bytes not
// yet handed out. The session is consumed for further input; Len and
// Contains remain readable.
func (d *Decompressor) Finish() ([]byte, error) {
	if d.finished {
		return nil, ErrSessionConsumed
	}
	if err := d.decode(); err != nil {
		return nil, decompressErr(err)
	}
	d.finished = true
	d.stats.IncCounter(stats.MetricSessionsFinished, 1)
	d.logger.Debug("decompressor finished",
		zap.String("codec", d.id.String()),
		zap.Int("bytes_in", d.input.Len()),
		zap.Int("bytes_out", d.decoded.Len()),
	)
	return d.take(), nil
}

// Len returns the total number of decoded bytes produced so far. The
// count depends only on the bytes fed in, never on how they were
// chunked.
func (d *Decompressor) Len() int { return d.decoded.Len() }

// Contains reports whether needle occurs in the decoded bytes.
func (d *Decompressor) Contains(needle []byte) bool {
	return d.decoded.Contains(needle)
}

// decode re-runs the codec over the full buffered input into a fresh
// buffer, replacing the previous result only on success. Decoding from
// the start keeps the result independent of where earlier Flush calls
// happened to fall, and a failed decode leaves the last good state
// visible through Len and Contains.
func (d *Decompressor) decode() error {
	if d.input.Len() == 0 {
		return nil
	}

	fresh := buffer.NewMemory()
	src := bytes.NewReader(d.input.Bytes())
	var rc io.ReadCloser
	var err error
	if dr, ok := d.codec.(codec.DictReader); ok && len(d.dict) > 0 {
		rc, err = dr.ReaderDict(src, d.dict)
	} else {
		rc, err = d.codec.Reader(src)
	}
	if err != nil {
		return err
	}
	if _, err := io.Copy(fresh, rc); err != nil {
		rc.Close()
		return err
	}
	if err := rc.Close(); err != nil {
		return err
	}
	d.decoded = fresh
	return nil
}

// take returns a copy of the decoded bytes past the served watermark
// and advances it. A copy, because decoded is retained for Len and
// Contains and a later decode replaces it.
func (d *Decompressor) take() []byte {
	b := d.decoded.Bytes()[d.served:]
	d.served = d.decoded.Len()
	return append([]byte(nil), b...)
}
