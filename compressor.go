package bytepress

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/bytepress/bytepress/internal/buffer"
	"github.com/bytepress/bytepress/internal/codec"
	"github.com/bytepress/bytepress/internal/stats"
)

// Compressor is a streaming compression session. Input arrives in
// chunks through Compress; the encoded output accumulates internally
// and is retrieved by Flush and Finish. Finish consumes the session:
// every method afterwards fails with ErrSessionConsumed without side
// effects. A Compressor is not safe for concurrent use.
type Compressor struct {
	id       CodecID
	w        io.WriteCloser
	sink     *buffer.Memory
	logger   *zap.Logger
	stats    stats.Collector
	finished bool
}

// NewCompressor opens a streaming compression session. Block-only
// formats (SnappyRaw, Lz4Block) have no streaming form and are
// rejected.
func (c *Client) NewCompressor(id CodecID, opts ...Option) (*Compressor, error) {
	sc := id.stream()
	if sc == nil {
		return nil, compressErr(fmt.Errorf("%s: format has no streaming form", id))
	}
	o := newCallOptions(opts)

	sink := buffer.NewMemory()
	w, err := sc.Writer(sink, o.params)
	if err != nil {
		return nil, compressErr(err)
	}

	c.stats.IncCounter(stats.MetricSessionsOpened, 1)
	return &Compressor{
		id:     id,
		w:      w,
		sink:   sink,
		logger: c.logger,
		stats:  c.stats,
	}, nil
}

// Compress feeds a chunk of input into the session and returns the
// number of encoded bytes currently buffered and awaiting retrieval.
// Codecs buffer internally, so the count may lag the input until a
// Flush or Finish.
func (cp *Compressor) Compress(p []byte) (int, error) {
	if cp.finished {
		return 0, ErrSessionConsumed
	}
	if _, err := cp.w.Write(p); err != nil {
		return cp.sink.Len(), compressErr(err)
	}
	return cp.sink.Len(), nil
}

// Flush forces buffered input through the codec and returns the
// encoded bytes produced so far, draining the internal sink. The
// stream remains Active. Formats without a mid-stream flush point fail
// with ErrFlushUnsupported; Finish remains mandatory either way.
func (cp *Compressor) Flush() ([]byte, error) {
	if cp.finished {
		return nil, ErrSessionConsumed
	}
	f, ok := cp.w.(codec.Flusher)
	if !ok {
		return nil, ErrFlushUnsupported
	}
	if err := f.Flush(); err != nil {
		return nil, compressErr(err)
	}
	return cp.sink.Drain(), nil
}

// Finish completes the stream, emitting any trailer, and returns the
// remaining encoded bytes. The session is consumed.
func (cp *Compressor) Finish() ([]byte, error) {
	if cp.finished {
		return nil, ErrSessionConsumed
	}
	if err := cp.w.Close(); err != nil {
		return nil, compressErr(err)
	}
	cp.finished = true
	cp.stats.IncCounter(stats.MetricSessionsFinished, 1)
	cp.logger.Debug("compressor finished", zap.String("codec", cp.id.String()))
	return cp.sink.Drain(), nil
}

// Len returns the number of encoded bytes currently buffered and
// awaiting retrieval.
func (cp *Compressor) Len() int { return cp.sink.Len() }
