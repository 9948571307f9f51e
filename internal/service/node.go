package service

import (
	"context"
	"errors"

	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/repo"
	"github.com/Egor213/NodeLogs/internal/repo/repoerrs"
	errorsUtils "github.com/Egor213/NodeLogs/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type NodeService struct {
	nodeRepo repo.Node
}

func NewNodeService(nr repo.Node) *NodeService {
	return &NodeService{
		nodeRepo: nr,
	}
}

func (s *NodeService) List(ctx context.Context) ([]domain.Node, error) {
	nodes, err := s.nodeRepo.ListNodes(ctx)
	if err != nil {
		if errors.Is(err, repoerrs.ErrUnauthorized) {
			return nil, ErrPanelAccess
		}
		log.WithField("error", err).Error("Failed to list nodes")
		return nil, errorsUtils.WrapPathErr(ErrCannotListNodes)
	}
	return nodes, nil
}
