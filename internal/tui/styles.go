package tui

import (
	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	activeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))

	levelStyles = map[domain.LogLevel]lipgloss.Style{
		domain.LevelDebug:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		domain.LevelInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		domain.LevelWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		domain.LevelError:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		domain.LevelNone:    lipgloss.NewStyle(),
	}
)

func levelStyle(l domain.LogLevel) lipgloss.Style {
	if s, ok := levelStyles[l]; ok {
		return s
	}
	return lipgloss.NewStyle()
}
