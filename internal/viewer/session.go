package viewer

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/Egor213/NodeLogs/internal/batcher"
	"github.com/Egor213/NodeLogs/internal/broker"
	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/storage"
	"github.com/Egor213/NodeLogs/internal/stream"
	log "github.com/sirupsen/logrus"
)

// session owns everything bound to one node selection. Nothing it holds is
// shared with the session before or after it.
type session struct {
	gen    uint64
	nodeID int
	v      *Viewer

	store   *storage.Store
	batcher *batcher.Batcher
	stream  *stream.Stream
}

func newSession(v *Viewer, gen uint64, nodeID int, ceiling storage.Ceiling) *session {
	s := &session{
		gen:    gen,
		nodeID: nodeID,
		v:      v,
		store:  storage.NewStore(ceiling),
	}
	s.batcher = batcher.New(s.commit, batcher.WithInterval(v.cfg.FlushInterval))
	return s
}

func (s *session) start(ctx context.Context) {
	s.batcher.Start()
	s.stream = stream.Connect(ctx, s.v.conn, s.nodeID, s, s.v.streamOpts...)
}

// close joins the stream goroutine before stopping the batcher, so nothing is
// pushed after the pending queue is discarded.
func (s *session) close() {
	if s.stream != nil {
		s.stream.Close()
	}
	s.batcher.Stop()
}

func (s *session) state() stream.State {
	if s.stream == nil {
		return stream.Connecting
	}
	return s.stream.State()
}

func (s *session) commit(batch []domain.LogEntry) error {
	s.store.Append(batch)
	s.v.projector.Invalidate()
	s.v.countFlush("ok")

	if s.v.forwarder != nil {
		s.forward(batch)
	}
	return nil
}

func (s *session) forward(batch []domain.LogEntry) {
	value, err := json.Marshal(broker.LogBatch{
		ViewerID: s.v.id,
		NodeID:   s.nodeID,
		Entries:  batch,
	})
	if err != nil {
		log.WithField("error", err).Error("Failed to encode log batch")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.v.forwardTimeout)
	defer cancel()

	if err := s.v.forwarder.SendMessage(ctx, []byte(strconv.Itoa(s.nodeID)), value); err != nil {
		log.WithFields(log.Fields{
			"viewer_id": s.v.id,
			"node_id":   s.nodeID,
			"error":     err,
		}).Warn("Failed to forward log batch")
	}
}

func (s *session) OnOpen() {
	s.v.window.SetSwitching(false)
	s.v.countConnection("open")
}

func (s *session) OnEntry(entry domain.LogEntry) {
	s.batcher.Push(entry)
	s.v.countEntry(string(entry.Level))
}

func (s *session) OnClose(err error) {
	s.v.window.SetSwitching(false)
	if err != nil {
		s.v.countConnection("error")
		return
	}
	s.v.countConnection("closed")
}
