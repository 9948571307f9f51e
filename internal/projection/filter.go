package projection

import (
	"strings"

	"github.com/Egor213/NodeLogs/internal/domain"
)

type LevelSet map[domain.LogLevel]struct{}

func NewLevelSet(levels ...domain.LogLevel) LevelSet {
	set := make(LevelSet, len(levels))
	for _, l := range levels {
		set[l] = struct{}{}
	}
	return set
}

func (s LevelSet) Has(l domain.LogLevel) bool {
	_, ok := s[l]
	return ok
}

// Levels returns the members in canonical order.
func (s LevelSet) Levels() []domain.LogLevel {
	out := make([]domain.LogLevel, 0, len(s))
	for _, l := range domain.AllLevels {
		if s.Has(l) {
			out = append(out, l)
		}
	}
	return out
}

// Criteria selects the visible entries. MaxLogs caps the result to the most
// recent matches unless Unlimited is set; a non-positive MaxLogs disables the
// cap as well.
type Criteria struct {
	Levels    LevelSet
	Search    string
	MaxLogs   int
	Unlimited bool
}

func DefaultCriteria(maxLogs int) Criteria {
	return Criteria{
		Levels:  NewLevelSet(domain.AllLevels...),
		MaxLogs: maxLogs,
	}
}

func (c Criteria) Match(e domain.LogEntry, needle string) bool {
	if !c.Levels.Has(e.Level) {
		return false
	}
	return needle == "" || strings.Contains(strings.ToLower(e.Message), needle)
}

// Project returns the entries passing the criteria, oldest first.
func Project(entries []domain.LogEntry, c Criteria) []domain.LogEntry {
	needle := strings.ToLower(c.Search)

	if c.Unlimited || c.MaxLogs <= 0 {
		out := make([]domain.LogEntry, 0, len(entries))
		for _, e := range entries {
			if c.Match(e, needle) {
				out = append(out, e)
			}
		}
		return out
	}

	// Walk backwards so only the tail that survives the cap is examined.
	out := make([]domain.LogEntry, 0, min(c.MaxLogs, len(entries)))
	for i := len(entries) - 1; i >= 0 && len(out) < c.MaxLogs; i-- {
		if c.Match(entries[i], needle) {
			out = append(out, entries[i])
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
