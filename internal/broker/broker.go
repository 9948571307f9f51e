package broker

import (
	"context"

	"github.com/Egor213/NodeLogs/internal/domain"
)

type Producer interface {
	SendMessage(ctx context.Context, key, value []byte) error
}

// LogBatch is the message published for every batch committed to a viewer.
type LogBatch struct {
	ViewerID string            `json:"viewer_id"`
	NodeID   int               `json:"node_id"`
	Entries  []domain.LogEntry `json:"entries"`
}
