// Package bytepressfx provides an fx module for a bytepress client.
package bytepressfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/bytepress/bytepress"
	"github.com/bytepress/bytepress/internal/stats"
	"github.com/bytepress/bytepress/internal/stats/logger"
)

// Module provides a *bytepress.Client wired to the application's
// logger, with metrics emitted through it.
// Requires a *zap.Logger to be provided.
var Module = fx.Module("bytepress",
	fx.Provide(
		newStatsCollector,
		newClient,
	),
)

func newStatsCollector(log *zap.Logger) stats.Collector {
	return logger.New(log.Named("bytepress.stats"))
}

// Params holds dependencies for creating the client.
type Params struct {
	fx.In

	Logger    *zap.Logger
	Collector stats.Collector
}

// Result holds the provided client.
type Result struct {
	fx.Out

	Client *bytepress.Client
}

func newClient(p Params) Result {
	client := bytepress.New(
		bytepress.WithLogger(p.Logger.Named("bytepress")),
		bytepress.WithStats(p.Collector),
	)
	return Result{Client: client}
}
