package projection

import (
	"fmt"
	"sync"
	"time"

	"github.com/Egor213/NodeLogs/internal/domain"
	log "github.com/sirupsen/logrus"
)

const DefaultDebounce = 100 * time.Millisecond

// Source returns the committed raw entries and a version that changes with
// every commit.
type Source func() ([]domain.LogEntry, uint64)

type Option func(*Projector)

func WithDebounce(d time.Duration) Option {
	return func(p *Projector) {
		if d > 0 {
			p.debounce = d
		}
	}
}

// WithOnUpdate registers a callback invoked after every recomputation that
// changed the view. It runs without the projector lock held.
func WithOnUpdate(fn func(view []domain.LogEntry)) Option {
	return func(p *Projector) {
		p.onUpdate = fn
	}
}

// Projector keeps the filtered view of a Source up to date, recomputing at
// most once per debounce window.
type Projector struct {
	source   Source
	debounce time.Duration
	onUpdate func(view []domain.LogEntry)

	computeMu sync.Mutex

	mu              sync.Mutex
	criteria        Criteria
	criteriaVersion uint64
	view            []domain.LogEntry
	computed        bool
	lastSource      uint64
	lastCriteria    uint64
	timer           *time.Timer
	closed          bool
}

func NewProjector(source Source, criteria Criteria, opts ...Option) *Projector {
	p := &Projector{
		source:   source,
		debounce: DefaultDebounce,
		criteria: criteria,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

func (p *Projector) Criteria() Criteria {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.criteria
}

func (p *Projector) SetCriteria(c Criteria) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.criteria = c
	p.criteriaVersion++
	p.scheduleLocked()
}

// Invalidate signals that the source changed.
func (p *Projector) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.scheduleLocked()
}

func (p *Projector) scheduleLocked() {
	if p.closed {
		return
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.debounce, p.Refresh)
}

// Refresh recomputes the view now. A failing computation is logged and the
// previous view is kept.
func (p *Projector) Refresh() {
	p.computeMu.Lock()
	defer p.computeMu.Unlock()

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	criteria := p.criteria
	criteriaVersion := p.criteriaVersion
	p.mu.Unlock()

	view, sourceVersion, changed, err := p.compute(criteria, criteriaVersion)
	if err != nil {
		log.WithField("error", err).Error("Failed to compute filtered logs")
		return
	}
	if !changed {
		return
	}

	p.mu.Lock()
	p.view = view
	p.computed = true
	p.lastSource = sourceVersion
	p.lastCriteria = criteriaVersion
	onUpdate := p.onUpdate
	p.mu.Unlock()

	if onUpdate != nil {
		onUpdate(view)
	}
}

func (p *Projector) compute(c Criteria, criteriaVersion uint64) (view []domain.LogEntry, sourceVersion uint64, changed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("projection panicked: %v", r)
		}
	}()

	entries, sourceVersion := p.source()

	p.mu.Lock()
	upToDate := p.computed && p.lastSource == sourceVersion && p.lastCriteria == criteriaVersion
	p.mu.Unlock()
	if upToDate {
		return nil, sourceVersion, false, nil
	}

	return Project(entries, c), sourceVersion, true, nil
}

func (p *Projector) View() []domain.LogEntry {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.view
}

// Reset drops the current view immediately and cancels a pending
// recomputation. It waits for an in-flight recomputation, so a view computed
// from the previous source never survives the reset.
func (p *Projector) Reset() {
	p.computeMu.Lock()
	defer p.computeMu.Unlock()

	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.view = nil
	p.computed = false
	onUpdate := p.onUpdate
	p.mu.Unlock()

	if onUpdate != nil {
		onUpdate(nil)
	}
}

func (p *Projector) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}
