package projection_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/projection"
	"github.com/stretchr/testify/assert"
)

var words = []string{"Accepted", "from", "tcp", "Warning", "dial", "FAILED", "proxy", "dns", "vless", "ok"}

func randomEntries(r *rand.Rand, n int) []domain.LogEntry {
	out := make([]domain.LogEntry, 0, n)
	for i := 0; i < n; i++ {
		msg := words[r.Intn(len(words))] + " " + words[r.Intn(len(words))]
		out = append(out, domain.LogEntry{
			Seq:     uint64(i + 1),
			Message: msg,
			Level:   domain.AllLevels[r.Intn(len(domain.AllLevels))],
		})
	}
	return out
}

// reference is the straightforward definition of the filter.
func reference(entries []domain.LogEntry, c projection.Criteria) []domain.LogEntry {
	out := []domain.LogEntry{}
	for _, e := range entries {
		if c.Levels.Has(e.Level) && (c.Search == "" || strings.Contains(strings.ToLower(e.Message), strings.ToLower(c.Search))) {
			out = append(out, e)
		}
	}
	if !c.Unlimited && c.MaxLogs > 0 && len(out) > c.MaxLogs {
		out = out[len(out)-c.MaxLogs:]
	}
	return out
}

func TestProject_MatchesReference(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	levelSets := []projection.LevelSet{
		projection.NewLevelSet(domain.AllLevels...),
		projection.NewLevelSet(domain.LevelError),
		projection.NewLevelSet(domain.LevelWarning, domain.LevelError),
		projection.NewLevelSet(),
	}
	searches := []string{"", "from", "FAILED", "failed", "Dns Vless", "nothing-matches"}
	caps := []int{0, 1, 10, 500}

	for round := 0; round < 20; round++ {
		entries := randomEntries(r, r.Intn(300))
		for _, levels := range levelSets {
			for _, search := range searches {
				for _, maxLogs := range caps {
					for _, unlimited := range []bool{false, true} {
						c := projection.Criteria{Levels: levels, Search: search, MaxLogs: maxLogs, Unlimited: unlimited}
						assert.Equal(t, reference(entries, c), projection.Project(entries, c))
					}
				}
			}
		}
	}
}

func TestProject_TailCap(t *testing.T) {
	entries := []domain.LogEntry{
		{Seq: 1, Message: "a", Level: domain.LevelInfo},
		{Seq: 2, Message: "b", Level: domain.LevelError},
		{Seq: 3, Message: "c", Level: domain.LevelInfo},
		{Seq: 4, Message: "d", Level: domain.LevelInfo},
		{Seq: 5, Message: "e", Level: domain.LevelInfo},
	}

	c := projection.Criteria{Levels: projection.NewLevelSet(domain.LevelInfo), MaxLogs: 2}
	got := projection.Project(entries, c)

	assert.Equal(t, []uint64{4, 5}, []uint64{got[0].Seq, got[1].Seq})

	c.Unlimited = true
	assert.Len(t, projection.Project(entries, c), 4)
}

func TestProject_Empty(t *testing.T) {
	c := projection.DefaultCriteria(100)
	assert.Empty(t, projection.Project(nil, c))
}

func TestLevelSet_Levels(t *testing.T) {
	set := projection.NewLevelSet(domain.LevelError, domain.LevelDebug)
	assert.Equal(t, []domain.LogLevel{domain.LevelDebug, domain.LevelError}, set.Levels())
	assert.False(t, set.Has(domain.LevelInfo))
}
