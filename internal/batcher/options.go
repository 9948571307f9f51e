package batcher

import "time"

type Option func(*Batcher)

func WithInterval(d time.Duration) Option {
	return func(b *Batcher) {
		if d > 0 {
			b.interval = d
		}
	}
}
