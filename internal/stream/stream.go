package stream

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"github.com/Egor213/NodeLogs/internal/domain"
	log "github.com/sirupsen/logrus"
)

// Connector opens the log event stream of a node.
type Connector interface {
	OpenLogStream(ctx context.Context, nodeID int) (io.ReadCloser, error)
}

type ConnectorFunc func(ctx context.Context, nodeID int) (io.ReadCloser, error)

func (f ConnectorFunc) OpenLogStream(ctx context.Context, nodeID int) (io.ReadCloser, error) {
	return f(ctx, nodeID)
}

// Handler receives stream callbacks on the stream goroutine, in order.
// OnClose is not called when the owner closes the stream.
type Handler interface {
	OnOpen()
	OnEntry(entry domain.LogEntry)
	OnClose(err error)
}

type Option func(*Stream)

func WithClock(now func() time.Time) Option {
	return func(s *Stream) {
		s.now = now
	}
}

// Stream is one live connection to a node's log endpoint. It never reconnects
// on its own.
type Stream struct {
	nodeID int
	state  atomic.Int32
	now    func() time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

func Connect(ctx context.Context, conn Connector, nodeID int, h Handler, opts ...Option) *Stream {
	ctx, cancel := context.WithCancel(ctx)

	s := &Stream{
		nodeID: nodeID,
		now:    time.Now,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.setState(Connecting)

	go s.run(ctx, conn, h)

	return s
}

func (s *Stream) run(ctx context.Context, conn Connector, h Handler) {
	defer close(s.done)

	logger := log.WithField("node_id", s.nodeID)

	body, err := conn.OpenLogStream(ctx, s.nodeID)
	if err != nil {
		if ctx.Err() != nil {
			s.setState(Closed)
			return
		}
		s.setState(Error)
		logger.WithField("error", err).Error("Failed to open log stream")
		h.OnClose(err)
		return
	}
	defer body.Close()

	// Unblocks the pending read when the owner closes the stream.
	stop := context.AfterFunc(ctx, func() { _ = body.Close() })
	defer stop()

	s.setState(Open)
	logger.Info("Log stream opened")
	h.OnOpen()

	dec := NewDecoder(body)
	var seq uint64
	for {
		ev, err := dec.Next()
		if err != nil {
			switch {
			case ctx.Err() != nil:
				s.setState(Closed)
			case errors.Is(err, io.EOF):
				s.setState(Closed)
				logger.Info("Log stream ended by server")
				h.OnClose(nil)
			default:
				s.setState(Error)
				logger.WithField("error", err).Error("Log stream failed")
				h.OnClose(err)
			}
			return
		}

		seq++
		entry := ParseEntry(ev.Data, s.now())
		entry.Seq = seq
		h.OnEntry(entry)
	}
}

func (s *Stream) setState(st State) {
	s.state.Store(int32(st))
}

func (s *Stream) State() State {
	return State(s.state.Load())
}

func (s *Stream) NodeID() int {
	return s.nodeID
}

// Done is closed once the stream goroutine has exited.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Close tears the connection down and waits for the stream goroutine, so no
// callback runs after it returns.
func (s *Stream) Close() {
	s.cancel()
	<-s.done
}
