package projection_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/projection"
	"github.com/Egor213/NodeLogs/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storeSource(s *storage.Store) projection.Source {
	return func() ([]domain.LogEntry, uint64) {
		return s.Snapshot(), s.Version()
	}
}

func TestProjector_DebouncesRecomputation(t *testing.T) {
	store := storage.NewStore(storage.Unlimited)
	var updates atomic.Int32

	p := projection.NewProjector(storeSource(store), projection.DefaultCriteria(0),
		projection.WithDebounce(50*time.Millisecond),
		projection.WithOnUpdate(func([]domain.LogEntry) { updates.Add(1) }),
	)
	defer p.Close()

	for i := 1; i <= 10; i++ {
		store.Append([]domain.LogEntry{{Seq: uint64(i), Level: domain.LevelInfo}})
		p.Invalidate()
	}
	assert.Empty(t, p.View())

	require.Eventually(t, func() bool { return len(p.View()) == 10 }, 3*time.Second, 5*time.Millisecond)
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), updates.Load())
}

func TestProjector_SetCriteria(t *testing.T) {
	store := storage.NewStore(storage.Unlimited)
	store.Append([]domain.LogEntry{
		{Seq: 1, Message: "dial failed", Level: domain.LevelError},
		{Seq: 2, Message: "accepted", Level: domain.LevelInfo},
	})

	p := projection.NewProjector(storeSource(store), projection.DefaultCriteria(0))
	defer p.Close()
	p.Refresh()
	require.Len(t, p.View(), 2)

	c := p.Criteria()
	c.Levels = projection.NewLevelSet(domain.LevelError)
	p.SetCriteria(c)
	p.Refresh()

	view := p.View()
	require.Len(t, view, 1)
	assert.Equal(t, uint64(1), view[0].Seq)
}

func TestProjector_SkipsUnchangedSource(t *testing.T) {
	store := storage.NewStore(storage.Unlimited)
	store.Append([]domain.LogEntry{{Seq: 1, Level: domain.LevelInfo}})
	var updates atomic.Int32

	p := projection.NewProjector(storeSource(store), projection.DefaultCriteria(0),
		projection.WithOnUpdate(func([]domain.LogEntry) { updates.Add(1) }),
	)
	defer p.Close()

	p.Refresh()
	p.Refresh()
	assert.Equal(t, int32(1), updates.Load())
}

func TestProjector_KeepsViewOnFailure(t *testing.T) {
	var (
		mu   sync.Mutex
		fail bool
	)
	entries := []domain.LogEntry{{Seq: 1, Level: domain.LevelInfo}}
	version := uint64(1)
	source := func() ([]domain.LogEntry, uint64) {
		mu.Lock()
		defer mu.Unlock()
		if fail {
			panic("source exploded")
		}
		return entries, version
	}

	p := projection.NewProjector(source, projection.DefaultCriteria(0))
	defer p.Close()
	p.Refresh()
	require.Len(t, p.View(), 1)

	mu.Lock()
	fail = true
	mu.Unlock()

	assert.NotPanics(t, p.Refresh)
	assert.Len(t, p.View(), 1)

	mu.Lock()
	fail = false
	entries = append(entries, domain.LogEntry{Seq: 2, Level: domain.LevelInfo})
	version = 2
	mu.Unlock()

	p.Refresh()
	assert.Len(t, p.View(), 2)
}

func TestProjector_Reset(t *testing.T) {
	store := storage.NewStore(storage.Unlimited)
	store.Append([]domain.LogEntry{{Seq: 1, Level: domain.LevelInfo}})
	var last atomic.Int32
	last.Store(-1)

	p := projection.NewProjector(storeSource(store), projection.DefaultCriteria(0),
		projection.WithDebounce(time.Hour),
		projection.WithOnUpdate(func(v []domain.LogEntry) { last.Store(int32(len(v))) }),
	)
	defer p.Close()

	p.Refresh()
	assert.Equal(t, int32(1), last.Load())

	p.Invalidate()
	p.Reset()

	assert.Empty(t, p.View())
	assert.Equal(t, int32(0), last.Load())

	// After a reset the same source is computed again.
	p.Refresh()
	assert.Len(t, p.View(), 1)
}
