package app

import (
	"context"
	"strconv"

	"github.com/Egor213/NodeLogs/internal/config"
	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/repo/panelapi"
	"github.com/Egor213/NodeLogs/internal/service"
	"github.com/Egor213/NodeLogs/internal/tui"
	"github.com/Egor213/NodeLogs/internal/viewer"
	errorsUtils "github.com/Egor213/NodeLogs/pkg/errors"
	"github.com/Egor213/NodeLogs/pkg/logger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	log "github.com/sirupsen/logrus"
)

type TUIOptions struct {
	ConfigPath string
	NodeID     int
}

// RunTUI drives one viewer from the terminal. Logs go to the configured file
// so they never tear the screen.
func RunTUI(opts TUIOptions) error {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.New()
	}
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	logger.SetupLogger(cfg.Log.Level)
	logFile, err := logger.RedirectToFile(cfg.Log.File)
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer logFile.Close()

	viewerCfg, err := viewerConfig(cfg.Viewer)
	if err != nil {
		return err
	}
	viewerCfg.Window = tui.WindowConfig()

	client := panelapi.New(cfg.Panel.BaseURL, cfg.Panel.Token, panelapi.Timeout(cfg.Panel.Timeout))

	nodes, err := service.NewNodeService(client).List(context.Background())
	if err != nil {
		return err
	}

	v := viewer.New(uuid.NewString(), client, viewerCfg)
	defer v.Close()

	idx := -1
	if opts.NodeID != domain.NoNode {
		idx = nodeIndex(nodes, opts.NodeID)
		if idx < 0 {
			nodes = append(nodes, domain.Node{ID: opts.NodeID, Name: "node-" + strconv.Itoa(opts.NodeID)})
			idx = len(nodes) - 1
		}
		if err := v.SelectNode(opts.NodeID); err != nil {
			return err
		}
	}

	log.WithFields(log.Fields{
		"nodes":   len(nodes),
		"node_id": opts.NodeID,
	}).Info("Starting terminal viewer")

	_, err = tea.NewProgram(tui.New(v, nodes, idx), tea.WithAltScreen()).Run()
	return err
}

func nodeIndex(nodes []domain.Node, id int) int {
	for i, n := range nodes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
