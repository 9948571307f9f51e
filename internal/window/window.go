// Package window computes which part of a long, fixed-row-height list
// intersects a scrollable viewport, and tracks follow-the-tail scrolling.
package window

import "sync"

type Config struct {
	ItemHeight      int
	Buffer          int
	ContainerHeight int
	BottomThreshold int
}

func DefaultConfig() Config {
	return Config{
		ItemHeight:      24,
		Buffer:          10,
		ContainerHeight: 600,
		BottomThreshold: 50,
	}
}

// Frame describes what to render: items [Start, End) placed at OffsetY inside
// a spacer of TotalHeight.
type Frame struct {
	Start       int  `json:"start"`
	End         int  `json:"end"`
	OffsetY     int  `json:"offset_y"`
	TotalHeight int  `json:"total_height"`
	ScrollTop   int  `json:"scroll_top"`
	Total       int  `json:"total"`
	AutoScroll  bool `json:"auto_scroll"`
}

func (f Frame) Len() int {
	return f.End - f.Start
}

// Slice applies the frame to items, clamping to their length.
func Slice[T any](items []T, f Frame) []T {
	start := min(max(f.Start, 0), len(items))
	end := min(max(f.End, start), len(items))
	return items[start:end]
}

type Window struct {
	mu sync.Mutex

	cfg        Config
	total      int
	scrollTop  int
	first      int
	autoScroll bool
	switching  bool
	// Scroll-to-bottom requested by an update, applied on the next Frame.
	pendingBottom bool
}

func New(cfg Config) *Window {
	if cfg.ItemHeight <= 0 {
		cfg.ItemHeight = 1
	}
	cfg.Buffer = max(cfg.Buffer, 0)
	cfg.ContainerHeight = max(cfg.ContainerHeight, 0)
	cfg.BottomThreshold = max(cfg.BottomThreshold, 0)

	return &Window{cfg: cfg, autoScroll: true}
}

func (w *Window) Config() Config {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.cfg
}

// VisibleCount is the number of rows rendered: the rows fitting the viewport
// plus the buffer above and below.
func (w *Window) VisibleCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.visibleCountLocked()
}

func (w *Window) visibleCountLocked() int {
	rows := (w.cfg.ContainerHeight + w.cfg.ItemHeight - 1) / w.cfg.ItemHeight
	return rows + 2*w.cfg.Buffer
}

func (w *Window) maxScrollTopLocked() int {
	return max(0, w.total*w.cfg.ItemHeight-w.cfg.ContainerHeight)
}

func (w *Window) recomputeFirstLocked() {
	w.first = max(0, w.scrollTop/w.cfg.ItemHeight-w.cfg.Buffer)
}

// SetTotal records a new length of the underlying list. With auto-scroll on
// and no node switch in progress, the next frame jumps to the bottom.
func (w *Window) SetTotal(n int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.total = max(n, 0)
	w.scrollTop = min(w.scrollTop, w.maxScrollTopLocked())
	w.recomputeFirstLocked()
	if w.autoScroll && !w.switching {
		w.pendingBottom = true
	}
}

// Scroll handles a user scroll. Leaving the bottom by more than the threshold
// turns auto-scroll off.
func (w *Window) Scroll(scrollTop int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.scrollTop = min(max(scrollTop, 0), w.maxScrollTopLocked())
	w.recomputeFirstLocked()
	w.pendingBottom = false

	distance := w.total*w.cfg.ItemHeight - w.scrollTop - w.cfg.ContainerHeight
	if w.autoScroll && distance > w.cfg.BottomThreshold {
		w.autoScroll = false
	}
}

// Resize changes the viewport height, keeping the scroll offset.
func (w *Window) Resize(containerHeight int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.cfg.ContainerHeight = max(containerHeight, 0)
	w.recomputeFirstLocked()
}

// ScrollToEnd jumps to the bottom and re-enables auto-scroll.
func (w *Window) ScrollToEnd() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.autoScroll = true
	w.pendingBottom = false
	w.scrollTop = w.maxScrollTopLocked()
	w.recomputeFirstLocked()
}

func (w *Window) SetAutoScroll(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.autoScroll = on
	w.pendingBottom = on && !w.switching
}

func (w *Window) AutoScroll() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.autoScroll
}

// SetSwitching suspends auto-scroll while a node switch is in progress.
func (w *Window) SetSwitching(on bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.switching = on
	if on {
		w.pendingBottom = false
	}
}

// Reset forgets the list and the scroll offset.
func (w *Window) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.total = 0
	w.scrollTop = 0
	w.first = 0
	w.pendingBottom = false
}

func (w *Window) Frame() Frame {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.pendingBottom {
		w.scrollTop = w.maxScrollTopLocked()
		w.recomputeFirstLocked()
		w.pendingBottom = false
	}

	start := min(w.first, w.total)
	end := min(start+w.visibleCountLocked(), w.total)

	return Frame{
		Start:       start,
		End:         end,
		OffsetY:     start * w.cfg.ItemHeight,
		TotalHeight: w.total * w.cfg.ItemHeight,
		ScrollTop:   w.scrollTop,
		Total:       w.total,
		AutoScroll:  w.autoScroll,
	}
}
