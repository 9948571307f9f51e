package domain

import (
	"strings"
	"time"
)

type LogLevel string

const (
	LevelDebug   LogLevel = "debug"
	LevelInfo    LogLevel = "info"
	LevelWarning LogLevel = "warning"
	LevelError   LogLevel = "error"
	LevelNone    LogLevel = "none"
)

// AllLevels is the default level filter: everything is visible.
var AllLevels = []LogLevel{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelNone}

func ParseLevel(s string) (LogLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warning", "warn":
		return LevelWarning, true
	case "error":
		return LevelError, true
	case "none":
		return LevelNone, true
	}
	return "", false
}

// LogEntry is one streamed log line. Entries are never modified once created.
type LogEntry struct {
	Seq       uint64    `json:"seq"`
	Timestamp string    `json:"timestamp"`
	Time      time.Time `json:"time"`
	Message   string    `json:"message"`
	Level     LogLevel  `json:"level"`
}

// NoNode is the node selector value meaning "nothing selected".
const NoNode = 0

type Node struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
