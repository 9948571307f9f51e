package viewer

import (
	"time"

	"github.com/Egor213/NodeLogs/internal/broker"
	"github.com/Egor213/NodeLogs/internal/metrics"
	"github.com/Egor213/NodeLogs/internal/stream"
)

type Option func(*Viewer)

// WithForwarder publishes every committed batch to the given producer.
func WithForwarder(p broker.Producer) Option {
	return func(v *Viewer) {
		v.forwarder = p
	}
}

func WithCounters(c *metrics.Counters) Option {
	return func(v *Viewer) {
		v.counters = c
	}
}

func WithStreamOptions(opts ...stream.Option) Option {
	return func(v *Viewer) {
		v.streamOpts = append(v.streamOpts, opts...)
	}
}

func WithForwardTimeout(d time.Duration) Option {
	return func(v *Viewer) {
		if d > 0 {
			v.forwardTimeout = d
		}
	}
}
