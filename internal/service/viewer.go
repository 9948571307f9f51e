package service

import (
	"errors"
	"sync"

	"github.com/Egor213/NodeLogs/internal/repo"
	"github.com/Egor213/NodeLogs/internal/storage"
	"github.com/Egor213/NodeLogs/internal/viewer"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ViewerService keeps the mounted viewers by id. Every viewer owns its own
// streams and timers.
type ViewerService struct {
	conn        repo.LogStream
	cfg         viewer.Config
	maxSessions int
	opts        []viewer.Option

	mu      sync.RWMutex
	viewers map[string]*viewer.Viewer
}

func NewViewerService(conn repo.LogStream, cfg viewer.Config, maxSessions int, opts ...viewer.Option) *ViewerService {
	return &ViewerService{
		conn:        conn,
		cfg:         cfg,
		maxSessions: maxSessions,
		opts:        opts,
		viewers:     make(map[string]*viewer.Viewer),
	}
}

func (s *ViewerService) Create() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxSessions > 0 && len(s.viewers) >= s.maxSessions {
		return "", ErrTooManyViewers
	}

	id := uuid.NewString()
	s.viewers[id] = viewer.New(id, s.conn, s.cfg, s.opts...)

	log.WithField("viewer_id", id).Info("Viewer created")
	return id, nil
}

func (s *ViewerService) get(id string) (*viewer.Viewer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.viewers[id]
	if !ok {
		return nil, ErrViewerNotFound
	}
	return v, nil
}

func (s *ViewerService) Delete(id string) error {
	s.mu.Lock()
	v, ok := s.viewers[id]
	delete(s.viewers, id)
	s.mu.Unlock()

	if !ok {
		return ErrViewerNotFound
	}
	v.Close()
	return nil
}

func (s *ViewerService) SelectNode(id string, nodeID int) error {
	v, err := s.get(id)
	if err != nil {
		return err
	}
	err = v.SelectNode(nodeID)
	if errors.Is(err, viewer.ErrClosed) {
		return ErrViewerNotFound
	}
	return err
}

func (s *ViewerService) SetFilter(id string, in FilterInput) error {
	v, err := s.get(id)
	if err != nil {
		return err
	}
	if in.Levels != nil {
		v.SetLevels(in.Levels)
	}
	v.SetSearch(in.Search)
	if in.MaxLogs != nil {
		v.SetMaxLogs(*in.MaxLogs)
	}
	return nil
}

func (s *ViewerService) SetCeiling(id string, c storage.Ceiling) error {
	v, err := s.get(id)
	if err != nil {
		return err
	}
	return v.SetCeiling(c)
}

func (s *ViewerService) SetDisplay(id string, in DisplayInput) error {
	v, err := s.get(id)
	if err != nil {
		return err
	}
	if in.ShowTimestamps != nil {
		v.SetShowTimestamps(*in.ShowTimestamps)
	}
	if in.AutoScroll != nil {
		v.SetAutoScroll(*in.AutoScroll)
	}
	return nil
}

func (s *ViewerService) Scroll(id string, scrollTop int) error {
	v, err := s.get(id)
	if err != nil {
		return err
	}
	v.Scroll(scrollTop)
	return nil
}

func (s *ViewerService) Resize(id string, height int) error {
	v, err := s.get(id)
	if err != nil {
		return err
	}
	v.Resize(height)
	return nil
}

func (s *ViewerService) ScrollToEnd(id string) error {
	v, err := s.get(id)
	if err != nil {
		return err
	}
	v.ScrollToEnd()
	return nil
}

func (s *ViewerService) Clear(id string) error {
	v, err := s.get(id)
	if err != nil {
		return err
	}
	v.Clear()
	return nil
}

func (s *ViewerService) Frame(id string) (viewer.View, error) {
	v, err := s.get(id)
	if err != nil {
		return viewer.View{}, err
	}
	return v.Frame(), nil
}

func (s *ViewerService) CloseAll() {
	s.mu.Lock()
	viewers := s.viewers
	s.viewers = make(map[string]*viewer.Viewer)
	s.mu.Unlock()

	for _, v := range viewers {
		v.Close()
	}
	log.WithField("count", len(viewers)).Info("All viewers closed")
}
