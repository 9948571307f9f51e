package service

import (
	"context"

	"github.com/Egor213/NodeLogs/internal/broker"
	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/metrics"
	"github.com/Egor213/NodeLogs/internal/repo"
	"github.com/Egor213/NodeLogs/internal/storage"
	"github.com/Egor213/NodeLogs/internal/viewer"
)

type Nodes interface {
	List(ctx context.Context) ([]domain.Node, error)
}

// FilterInput replaces the search text. Nil Levels or MaxLogs keep the
// current value; an empty Levels slice hides everything.
type FilterInput struct {
	Levels  []domain.LogLevel
	Search  string
	MaxLogs *int
}

type DisplayInput struct {
	ShowTimestamps *bool
	AutoScroll     *bool
}

type Viewers interface {
	Create() (string, error)
	Delete(id string) error
	SelectNode(id string, nodeID int) error
	SetFilter(id string, in FilterInput) error
	SetCeiling(id string, c storage.Ceiling) error
	SetDisplay(id string, in DisplayInput) error
	Scroll(id string, scrollTop int) error
	Resize(id string, height int) error
	ScrollToEnd(id string) error
	Clear(id string) error
	Frame(id string) (viewer.View, error)
	CloseAll()
}

type Services struct {
	Nodes   Nodes
	Viewers Viewers
}

type ServicesDependencies struct {
	Repos       *repo.Repositories
	Counters    *metrics.Counters
	Producer    broker.Producer
	Viewer      viewer.Config
	MaxSessions int
}

func NewServices(deps ServicesDependencies) *Services {
	opts := []viewer.Option{viewer.WithCounters(deps.Counters)}
	if deps.Producer != nil {
		opts = append(opts, viewer.WithForwarder(deps.Producer))
	}

	return &Services{
		Nodes:   NewNodeService(deps.Repos.Node),
		Viewers: NewViewerService(deps.Repos.LogStream, deps.Viewer, deps.MaxSessions, opts...),
	}
}
