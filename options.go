package bytepress

import (
	"go.uber.org/zap"

	"github.com/bytepress/bytepress/internal/codec"
	"github.com/bytepress/bytepress/internal/stats"
)

// ClientOption configures a Client.
type ClientOption interface {
	apply(*Client)
}

type clientOptionFunc func(*Client)

func (f clientOptionFunc) apply(c *Client) { f(c) }

// WithLogger sets the logger for the client.
// If not set, a no-op logger is used.
func WithLogger(logger *zap.Logger) ClientOption {
	return clientOptionFunc(func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	})
}

// WithStats sets the metrics collector for the client.
// If not set, a no-op collector is used.
func WithStats(collector stats.Collector) ClientOption {
	return clientOptionFunc(func(c *Client) {
		if collector != nil {
			c.stats = collector
		}
	})
}

// Option configures a single operation or streaming session.
type Option interface {
	apply(*callOptions)
}

type optionFunc func(*callOptions)

func (f optionFunc) apply(o *callOptions) { f(o) }

// callOptions collects the per-call knobs before they are handed to
// the router.
type callOptions struct {
	params     codec.Params
	outputHint int
}

func newCallOptions(opts []Option) callOptions {
	o := callOptions{params: codec.Params{Level: codec.DefaultLevel}}
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o
}

// WithLevel sets the compression level. Each codec validates its own
// range; an out-of-range level fails the operation rather than being
// clamped. Without this option the codec's default level applies.
func WithLevel(level int) Option {
	return optionFunc(func(o *callOptions) {
		o.params.Level = level
	})
}

// WithThreads sets the degree of codec-internal parallelism, for
// codecs that support it. Zero means the codec library's default.
func WithThreads(n int) Option {
	return optionFunc(func(o *callOptions) {
		o.params.Threads = n
	})
}

// WithDict sets a compression dictionary, for codecs that support one.
func WithDict(dict []byte) Option {
	return optionFunc(func(o *callOptions) {
		o.params.Dict = dict
	})
}

// WithOutputLen hints the decompressed or compressed output size.
// Growable outputs are pre-sized to it, and block formats that do not
// record their decompressed size require it.
func WithOutputLen(n int) Option {
	return optionFunc(func(o *callOptions) {
		o.outputHint = n
	})
}
