// Package tui is a terminal front end for a single log viewer.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/Egor213/NodeLogs/internal/viewer"
	"github.com/Egor213/NodeLogs/internal/window"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// Each log line is one terminal row.
	rowHeight    = 1
	chromeRows   = 3
	tickInterval = 100 * time.Millisecond
)

var filterLevels = []domain.LogLevel{
	domain.LevelDebug,
	domain.LevelInfo,
	domain.LevelWarning,
	domain.LevelError,
}

// WindowConfig is the window geometry the terminal renderer expects.
func WindowConfig() window.Config {
	return window.Config{
		ItemHeight:      rowHeight,
		Buffer:          2,
		ContainerHeight: 20,
		BottomThreshold: 0,
	}
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	viewer  *viewer.Viewer
	nodes   []domain.Node
	nodeIdx int

	levels    map[domain.LogLevel]bool
	search    textinput.Model
	searching bool

	spinner spinner.Model
	help    help.Model

	width  int
	height int
	view   viewer.View
	err    error
}

// New builds the model around v. The node at nodeIdx is expected to be
// selected already; -1 means nothing is selected.
func New(v *viewer.Viewer, nodes []domain.Node, nodeIdx int) *Model {
	ti := textinput.New()
	ti.Placeholder = "search"
	ti.Prompt = "/"
	ti.CharLimit = 256

	s := spinner.New()
	s.Spinner = spinner.Dot

	levels := make(map[domain.LogLevel]bool, len(filterLevels))
	for _, l := range filterLevels {
		levels[l] = true
	}

	return &Model{
		viewer:  v,
		nodes:   nodes,
		nodeIdx: nodeIdx,
		levels:  levels,
		search:  ti,
		spinner: s,
		help:    help.New(),
		view:    v.Frame(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tick())
}

func (m *Model) rows() int {
	return max(m.height-chromeRows, 1)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewer.Resize(m.rows() * rowHeight)
		m.view = m.viewer.Frame()
		return m, nil

	case tickMsg:
		m.view = m.viewer.Frame()
		return m, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.searching {
			return m, m.updateSearch(msg)
		}
		cmd := m.handleKey(msg)
		m.view = m.viewer.Frame()
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.ApplySearch):
		m.viewer.SetSearch(m.search.Value())
		m.searching = false
		m.search.Blur()
		return nil
	case key.Matches(msg, keys.EscSearch):
		m.search.SetValue(m.view.Search)
		m.searching = false
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	top := m.view.Frame.ScrollTop
	page := m.rows() * rowHeight

	switch {
	case key.Matches(msg, keys.Quit):
		return tea.Quit
	case key.Matches(msg, keys.Up):
		m.viewer.Scroll(top - rowHeight)
	case key.Matches(msg, keys.Down):
		m.viewer.Scroll(top + rowHeight)
	case key.Matches(msg, keys.PageUp):
		m.viewer.Scroll(top - page)
	case key.Matches(msg, keys.PageDown):
		m.viewer.Scroll(top + page)
	case key.Matches(msg, keys.Home):
		m.viewer.Scroll(0)
	case key.Matches(msg, keys.End):
		m.viewer.ScrollToEnd()
	case key.Matches(msg, keys.AutoScroll):
		m.viewer.SetAutoScroll(!m.viewer.AutoScroll())
	case key.Matches(msg, keys.Timestamps):
		m.viewer.SetShowTimestamps(!m.view.ShowTimestamps)
	case key.Matches(msg, keys.Clear):
		m.viewer.Clear()
	case key.Matches(msg, keys.Debug):
		m.toggleLevel(domain.LevelDebug)
	case key.Matches(msg, keys.Info):
		m.toggleLevel(domain.LevelInfo)
	case key.Matches(msg, keys.Warning):
		m.toggleLevel(domain.LevelWarning)
	case key.Matches(msg, keys.Error):
		m.toggleLevel(domain.LevelError)
	case key.Matches(msg, keys.Search):
		m.searching = true
		m.search.SetValue(m.view.Search)
		return m.search.Focus()
	case key.Matches(msg, keys.NextNode):
		m.stepNode(1)
	case key.Matches(msg, keys.PrevNode):
		m.stepNode(-1)
	}
	return nil
}

func (m *Model) toggleLevel(l domain.LogLevel) {
	m.levels[l] = !m.levels[l]

	// Unclassifiable lines stay visible whatever the toggles say.
	selected := []domain.LogLevel{domain.LevelNone}
	for _, fl := range filterLevels {
		if m.levels[fl] {
			selected = append(selected, fl)
		}
	}
	m.viewer.SetLevels(selected)
}

func (m *Model) stepNode(delta int) {
	if len(m.nodes) == 0 {
		return
	}
	idx := m.nodeIdx + delta
	if m.nodeIdx < 0 && delta < 0 {
		idx = len(m.nodes) - 1
	}
	idx = (idx%len(m.nodes) + len(m.nodes)) % len(m.nodes)

	m.err = m.viewer.SelectNode(m.nodes[idx].ID)
	if m.err == nil {
		m.nodeIdx = idx
	}
}

func (m *Model) nodeLabel() string {
	if m.nodeIdx < 0 || m.nodeIdx >= len(m.nodes) {
		return "no node"
	}
	n := m.nodes[m.nodeIdx]
	return fmt.Sprintf("%s (#%d)", n.Name, n.ID)
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderLogs())
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	return b.String()
}

func (m *Model) renderHeader() string {
	v := m.view
	header := headerStyle.Render("NodeLogs") + "  " + m.nodeLabel() + "  " + mutedStyle.Render(v.State)
	if v.Loading {
		header += " " + m.spinner.View()
	}
	header += mutedStyle.Render(fmt.Sprintf("  stored %d  pending %d  shown %d  ceiling %s",
		v.Stored, v.Pending, v.Filtered, v.Ceiling))
	if m.err != nil {
		header += "  " + errorStyle.Render(m.err.Error())
	}
	return m.truncate(header)
}

func (m *Model) renderLogs() string {
	rows := m.rows()
	lines := make([]string, 0, rows)

	switch {
	case m.view.NodeID == domain.NoNode:
		lines = append(lines, mutedStyle.Render("Select a node with n/p"))
	case len(m.view.Entries) == 0 && !m.view.Loading:
		lines = append(lines, mutedStyle.Render("No logs"))
	default:
		skip := min(max(m.view.Frame.ScrollTop/rowHeight-m.view.Frame.Start, 0), len(m.view.Entries))
		for _, e := range m.view.Entries[skip:] {
			if len(lines) == rows {
				break
			}
			lines = append(lines, m.truncate(m.renderEntry(e)))
		}
	}

	var b strings.Builder
	for i := 0; i < rows; i++ {
		if i < len(lines) {
			b.WriteString(lines[i])
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderEntry(e domain.LogEntry) string {
	var b strings.Builder
	if m.view.ShowTimestamps && e.Timestamp != "" {
		b.WriteString(mutedStyle.Render(e.Timestamp))
		b.WriteString(" ")
	}
	style := levelStyle(e.Level)
	b.WriteString(style.Render(fmt.Sprintf("%-7s", strings.ToUpper(string(e.Level)))))
	b.WriteString(" ")
	b.WriteString(style.Render(strings.ReplaceAll(e.Message, "\n", " ")))
	return b.String()
}

func (m *Model) renderStatus() string {
	parts := make([]string, 0, len(filterLevels)+2)
	for i, l := range filterLevels {
		label := fmt.Sprintf("%d:%s", i+1, l)
		if m.levels[l] {
			parts = append(parts, activeStyle.Render(label))
		} else {
			parts = append(parts, mutedStyle.Render(label))
		}
	}

	follow := mutedStyle.Render("follow off")
	if m.view.Frame.AutoScroll {
		follow = activeStyle.Render("follow")
	}
	parts = append(parts, follow)

	if m.searching {
		parts = append(parts, m.search.View())
	} else if m.view.Search != "" {
		parts = append(parts, "/"+m.view.Search)
	}

	return m.truncate(strings.Join(parts, "  "))
}

func (m *Model) truncate(s string) string {
	if m.width <= 0 {
		return s
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(s)
}
