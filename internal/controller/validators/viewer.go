package validators

import (
	"errors"

	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/storage"
)

var ErrInvalidLogLevel = errors.New("invalid log level")

// Levels parses level names. Nil stays nil so callers can tell an absent
// list from an empty one.
func Levels(raw []string) ([]domain.LogLevel, error) {
	if raw == nil {
		return nil, nil
	}
	levels := make([]domain.LogLevel, 0, len(raw))
	for _, r := range raw {
		l, ok := domain.ParseLevel(r)
		if !ok {
			return nil, ErrInvalidLogLevel
		}
		levels = append(levels, l)
	}
	return levels, nil
}

func Ceiling(raw string) (storage.Ceiling, error) {
	return storage.ParseCeiling(raw)
}
