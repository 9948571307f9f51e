package tui

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/stream"
	"github.com/Egor213/NodeLogs/internal/viewer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T) (*Model, *viewer.Viewer) {
	t.Helper()

	conn := stream.ConnectorFunc(func(context.Context, int) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader("")), nil
	})

	cfg := viewer.DefaultConfig()
	cfg.Window = WindowConfig()
	v := viewer.New("tui", conn, cfg)
	t.Cleanup(v.Close)

	nodes := []domain.Node{{ID: 10, Name: "alpha"}, {ID: 20, Name: "beta"}}
	m := New(v, nodes, -1)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m, v
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ToggleLevels(t *testing.T) {
	m, v := newTestModel(t)

	m.Update(runes("1"))
	levels := v.Criteria().Levels
	assert.False(t, levels.Has(domain.LevelDebug))
	assert.True(t, levels.Has(domain.LevelInfo))
	assert.True(t, levels.Has(domain.LevelNone))

	m.Update(runes("1"))
	assert.True(t, v.Criteria().Levels.Has(domain.LevelDebug))
}

func TestModel_Search(t *testing.T) {
	m, v := newTestModel(t)

	m.Update(runes("/"))
	assert.True(t, m.searching)

	// Keys typed into the search box must not act as shortcuts.
	m.Update(runes("q"))
	m.Update(runes("a"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.searching)
	assert.Equal(t, "qa", v.Criteria().Search)
	assert.True(t, v.AutoScroll())
}

func TestModel_DisplayToggles(t *testing.T) {
	m, v := newTestModel(t)

	require.True(t, m.view.ShowTimestamps)
	m.Update(runes("t"))
	assert.False(t, m.view.ShowTimestamps)

	m.Update(runes("a"))
	assert.False(t, v.AutoScroll())
	m.Update(runes("G"))
	assert.True(t, v.AutoScroll())
}

func TestModel_StepNode(t *testing.T) {
	m, v := newTestModel(t)

	m.Update(runes("n"))
	assert.Equal(t, 10, v.NodeID())

	m.Update(runes("n"))
	assert.Equal(t, 20, v.NodeID())

	m.Update(runes("n"))
	assert.Equal(t, 10, v.NodeID())

	m.Update(runes("p"))
	assert.Equal(t, 20, v.NodeID())
	assert.Contains(t, m.View(), "beta (#20)")
}

func TestModel_ViewWithoutNode(t *testing.T) {
	m, _ := newTestModel(t)

	out := m.View()
	assert.Contains(t, out, "Select a node with n/p")
	assert.Contains(t, out, "no node")
}
