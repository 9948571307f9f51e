package viewer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Egor213/NodeLogs/internal/batcher"
	"github.com/Egor213/NodeLogs/internal/broker"
	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/metrics"
	"github.com/Egor213/NodeLogs/internal/projection"
	"github.com/Egor213/NodeLogs/internal/storage"
	"github.com/Egor213/NodeLogs/internal/stream"
	"github.com/Egor213/NodeLogs/internal/window"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultMaxLogs        = 1000
	defaultForwardTimeout = 5 * time.Second
)

var (
	ErrClosed      = errors.New("viewer is closed")
	ErrInvalidNode = errors.New("invalid node id")
)

type Config struct {
	FlushInterval  time.Duration
	FilterDebounce time.Duration
	Ceiling        storage.Ceiling
	MaxLogs        int
	Window         window.Config
}

func DefaultConfig() Config {
	return Config{
		FlushInterval:  batcher.DefaultInterval,
		FilterDebounce: projection.DefaultDebounce,
		Ceiling:        storage.DefaultCeiling,
		MaxLogs:        DefaultMaxLogs,
		Window:         window.DefaultConfig(),
	}
}

// View is what a renderer needs to draw one frame.
type View struct {
	NodeID         int               `json:"node_id"`
	State          string            `json:"state"`
	Loading        bool              `json:"loading"`
	ShowTimestamps bool              `json:"show_timestamps"`
	Ceiling        string            `json:"ceiling"`
	Levels         []domain.LogLevel `json:"levels"`
	Search         string            `json:"search"`
	MaxLogs        int               `json:"max_logs"`
	Stored         int               `json:"stored"`
	Pending        int               `json:"pending"`
	Filtered       int               `json:"filtered"`
	Frame          window.Frame      `json:"frame"`
	Entries        []domain.LogEntry `json:"entries"`
}

type Viewer struct {
	id   string
	conn stream.Connector
	cfg  Config

	forwarder      broker.Producer
	forwardTimeout time.Duration
	counters       *metrics.Counters
	streamOpts     []stream.Option

	projector *projection.Projector
	window    *window.Window

	// switchMu serializes node transitions and Close.
	switchMu sync.Mutex

	mu             sync.Mutex
	session        *session
	generation     uint64
	nodeID         int
	ceiling        storage.Ceiling
	showTimestamps bool
	closed         bool
}

func New(id string, conn stream.Connector, cfg Config, opts ...Option) *Viewer {
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = batcher.DefaultInterval
	}
	if cfg.FilterDebounce <= 0 {
		cfg.FilterDebounce = projection.DefaultDebounce
	}

	v := &Viewer{
		id:             id,
		conn:           conn,
		cfg:            cfg,
		forwardTimeout: defaultForwardTimeout,
		ceiling:        cfg.Ceiling,
		showTimestamps: true,
	}

	for _, opt := range opts {
		opt(v)
	}

	criteria := projection.DefaultCriteria(cfg.MaxLogs)
	criteria.Unlimited = cfg.Ceiling.IsUnlimited()

	v.window = window.New(cfg.Window)
	v.projector = projection.NewProjector(v.source, criteria,
		projection.WithDebounce(cfg.FilterDebounce),
		projection.WithOnUpdate(func(view []domain.LogEntry) {
			v.window.SetTotal(len(view))
		}),
	)

	return v
}

func (v *Viewer) ID() string {
	return v.id
}

// source feeds the projector from the current session only. The generation
// goes into the version so a new session never looks unchanged.
func (v *Viewer) source() ([]domain.LogEntry, uint64) {
	v.mu.Lock()
	s := v.session
	gen := v.generation
	v.mu.Unlock()

	if s == nil {
		return nil, gen << 32
	}
	entries, version := s.store.SnapshotVersion()
	return entries, s.gen<<32 | version
}

func (v *Viewer) current() *session {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.session
}

// SelectNode switches the viewer to nodeID. Zero selects nothing and leaves
// the viewer idle. The previous session is fully torn down first.
func (v *Viewer) SelectNode(nodeID int) error {
	if nodeID < 0 {
		return ErrInvalidNode
	}

	v.switchMu.Lock()
	defer v.switchMu.Unlock()

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return ErrClosed
	}
	old := v.session
	v.session = nil
	v.generation++
	gen := v.generation
	v.nodeID = nodeID
	ceiling := v.ceiling
	v.mu.Unlock()

	logger := log.WithFields(log.Fields{
		"viewer_id": v.id,
		"node_id":   nodeID,
	})

	if old != nil {
		old.close()
		logger.WithField("previous_node_id", old.nodeID).Debug("Previous log session closed")
	}
	v.window.SetSwitching(true)
	v.projector.Reset()
	v.window.Reset()

	if nodeID == domain.NoNode {
		v.window.SetSwitching(false)
		logger.Info("Viewer is idle")
		return nil
	}

	s := newSession(v, gen, nodeID, ceiling)
	s.start(context.Background())

	v.mu.Lock()
	v.session = s
	v.mu.Unlock()

	logger.Info("Log session started")
	return nil
}

func (v *Viewer) NodeID() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.nodeID
}

func (v *Viewer) State() stream.State {
	s := v.current()
	if s == nil {
		return stream.Idle
	}
	return s.state()
}

// Clear empties the committed entries of the current session. Pending entries
// are kept and land with the next flush.
func (v *Viewer) Clear() {
	s := v.current()
	if s == nil {
		return
	}
	s.store.Clear()
	v.projector.Refresh()
}

// SetCeiling applies to the next append; already stored entries are not
// truncated.
func (v *Viewer) SetCeiling(c storage.Ceiling) error {
	if !storage.IsAllowed(c) {
		return storage.ErrInvalidCeiling
	}

	v.mu.Lock()
	v.ceiling = c
	s := v.session
	v.mu.Unlock()

	if s != nil {
		s.store.SetCeiling(c)
	}

	v.updateCriteria(func(cr *projection.Criteria) {
		cr.Unlimited = c.IsUnlimited()
	})
	return nil
}

func (v *Viewer) Ceiling() storage.Ceiling {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.ceiling
}

func (v *Viewer) SetLevels(levels []domain.LogLevel) {
	set := projection.NewLevelSet(levels...)
	v.updateCriteria(func(cr *projection.Criteria) {
		cr.Levels = set
	})
}

func (v *Viewer) SetSearch(text string) {
	v.updateCriteria(func(cr *projection.Criteria) {
		cr.Search = text
	})
}

// SetMaxLogs caps the filtered view to the newest n entries. n <= 0 removes
// the cap.
func (v *Viewer) SetMaxLogs(n int) {
	v.updateCriteria(func(cr *projection.Criteria) {
		cr.MaxLogs = n
	})
}

func (v *Viewer) Criteria() projection.Criteria {
	return v.projector.Criteria()
}

func (v *Viewer) updateCriteria(fn func(*projection.Criteria)) {
	// mu keeps read-modify-write of the criteria atomic.
	v.mu.Lock()
	defer v.mu.Unlock()

	cr := v.projector.Criteria()
	fn(&cr)
	v.projector.SetCriteria(cr)
}

func (v *Viewer) SetShowTimestamps(on bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.showTimestamps = on
}

func (v *Viewer) Scroll(scrollTop int) {
	v.window.Scroll(scrollTop)
}

func (v *Viewer) Resize(containerHeight int) {
	v.window.Resize(containerHeight)
}

func (v *Viewer) ScrollToEnd() {
	v.window.ScrollToEnd()
}

func (v *Viewer) SetAutoScroll(on bool) {
	v.window.SetAutoScroll(on)
}

func (v *Viewer) AutoScroll() bool {
	return v.window.AutoScroll()
}

// Sync flushes pending entries and recomputes the filtered view at once.
func (v *Viewer) Sync() {
	if s := v.current(); s != nil {
		s.batcher.Flush()
	}
	v.projector.Refresh()
}

func (v *Viewer) Frame() View {
	v.mu.Lock()
	s := v.session
	nodeID := v.nodeID
	ceiling := v.ceiling
	showTimestamps := v.showTimestamps
	v.mu.Unlock()

	state := stream.Idle
	var stored, pending int
	if s != nil {
		state = s.state()
		stored = s.store.Len()
		pending = s.batcher.Pending()
	}

	filtered := v.projector.View()
	frame := v.window.Frame()
	criteria := v.projector.Criteria()

	return View{
		NodeID:         nodeID,
		State:          state.String(),
		Loading:        state.Loading(),
		ShowTimestamps: showTimestamps,
		Ceiling:        ceiling.String(),
		Levels:         criteria.Levels.Levels(),
		Search:         criteria.Search,
		MaxLogs:        criteria.MaxLogs,
		Stored:         stored,
		Pending:        pending,
		Filtered:       len(filtered),
		Frame:          frame,
		Entries:        window.Slice(filtered, frame),
	}
}

// Close releases the stream, the flush timer and the debounce timer. It is
// safe to call more than once.
func (v *Viewer) Close() {
	v.switchMu.Lock()
	defer v.switchMu.Unlock()

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	s := v.session
	v.session = nil
	v.mu.Unlock()

	if s != nil {
		s.close()
	}
	v.projector.Close()

	log.WithField("viewer_id", v.id).Info("Viewer closed")
}

func (v *Viewer) countEntry(level string) {
	if v.counters != nil {
		v.counters.EntriesReceived.Inc(level)
	}
}

func (v *Viewer) countFlush(status string) {
	if v.counters != nil {
		v.counters.Flushes.Inc(status)
	}
}

func (v *Viewer) countConnection(status string) {
	if v.counters != nil {
		v.counters.StreamConnections.Inc(status)
	}
}
