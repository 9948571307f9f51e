package app

import (
	"github.com/Egor213/NodeLogs/internal/config"
	"github.com/Egor213/NodeLogs/internal/storage"
	"github.com/Egor213/NodeLogs/internal/viewer"
	"github.com/Egor213/NodeLogs/internal/window"
	errorsUtils "github.com/Egor213/NodeLogs/pkg/errors"
)

func viewerConfig(cfg config.Viewer) (viewer.Config, error) {
	ceiling, err := storage.ParseCeiling(cfg.StorageCeiling)
	if err != nil {
		return viewer.Config{}, errorsUtils.WrapPathErr(err)
	}

	return viewer.Config{
		FlushInterval:  cfg.FlushInterval,
		FilterDebounce: cfg.FilterDebounce,
		Ceiling:        ceiling,
		MaxLogs:        cfg.MaxLogsCount,
		Window: window.Config{
			ItemHeight:      cfg.ItemHeight,
			Buffer:          cfg.BufferSize,
			ContainerHeight: cfg.ContainerHeight,
			BottomThreshold: cfg.BottomThreshold,
		},
	}, nil
}
