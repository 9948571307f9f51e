package batcher

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Egor213/NodeLogs/internal/domain"
	log "github.com/sirupsen/logrus"
)

const DefaultInterval = time.Second

// CommitFunc receives every flushed batch in queue order. It runs on the
// batcher goroutine and must not call Stop.
type CommitFunc func(batch []domain.LogEntry) error

// Batcher queues entries as they arrive and hands them to the commit function
// once per interval, so consumers see one update per tick instead of one per
// line.
type Batcher struct {
	interval time.Duration
	commit   CommitFunc

	mu      sync.Mutex
	pending []domain.LogEntry
	stopped bool

	flushing atomic.Bool

	done      chan struct{}
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

func New(commit CommitFunc, opts ...Option) *Batcher {
	b := &Batcher{
		interval: DefaultInterval,
		commit:   commit,
		done:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Start launches the flush timer. Calling it more than once has no effect.
func (b *Batcher) Start() {
	b.startOnce.Do(func() {
		b.wg.Add(1)
		go b.loop()
	})
}

func (b *Batcher) loop() {
	defer b.wg.Done()

	timer := time.NewTimer(b.interval)
	defer timer.Stop()

	for {
		select {
		case <-b.done:
			return
		case <-timer.C:
			b.Flush()
			timer.Reset(b.interval)
		}
	}
}

// Push queues an entry for the next flush. Entries pushed after Stop are
// dropped.
func (b *Batcher) Push(entry domain.LogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.stopped {
		return
	}
	b.pending = append(b.pending, entry)
}

func (b *Batcher) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.pending)
}

// Flush commits everything queued so far. It returns false when another flush
// is still running; queued entries then wait for the next tick.
func (b *Batcher) Flush() bool {
	if !b.flushing.CompareAndSwap(false, true) {
		log.Debug("Flush already in progress, skipping")
		return false
	}
	defer b.flushing.Store(false)

	b.mu.Lock()
	batch := b.pending
	b.pending = nil
	stopped := b.stopped
	b.mu.Unlock()

	if stopped || len(batch) == 0 {
		return true
	}

	if err := b.safeCommit(batch); err != nil {
		log.WithFields(log.Fields{
			"batch_size": len(batch),
			"error":      err,
		}).Error("Failed to flush log batch")
	}

	return true
}

func (b *Batcher) safeCommit(batch []domain.LogEntry) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("commit panicked: %v", r)
		}
	}()
	return b.commit(batch)
}

// Stop cancels the timer and discards unflushed entries. It waits for an
// in-flight flush to finish.
func (b *Batcher) Stop() {
	b.stopOnce.Do(func() {
		b.mu.Lock()
		b.stopped = true
		dropped := len(b.pending)
		b.pending = nil
		b.mu.Unlock()

		close(b.done)
		b.wg.Wait()

		if dropped > 0 {
			log.WithField("dropped", dropped).Debug("Batcher stopped with unflushed entries")
		}
	})
}
