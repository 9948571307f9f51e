package repo

import (
	"context"
	"io"

	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/repo/panelapi"
)

type Node interface {
	ListNodes(ctx context.Context) ([]domain.Node, error)
}

type LogStream interface {
	OpenLogStream(ctx context.Context, nodeID int) (io.ReadCloser, error)
}

type Repositories struct {
	Node
	LogStream
}

func NewRepositories(client *panelapi.Client) *Repositories {
	return &Repositories{
		Node:      client,
		LogStream: client,
	}
}
