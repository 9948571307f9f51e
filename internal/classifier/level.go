// Package classifier tags raw log messages with a severity level.
//
// The rules are textual heuristics applied in a fixed order, first match wins:
// bracketed tags, colon-suffixed tags, bare keywords, connection chatter and
// finally the info default. A message is never left unclassified.
package classifier

import (
	"strings"

	"github.com/Egor213/NodeLogs/internal/domain"
)

type rule struct {
	needles []string
	level   domain.LogLevel
}

var (
	bracketRules = []rule{
		{[]string{"[error]"}, domain.LevelError},
		{[]string{"[warning]", "[warn]"}, domain.LevelWarning},
		{[]string{"[info]"}, domain.LevelInfo},
		{[]string{"[debug]"}, domain.LevelDebug},
	}
	colonRules = []rule{
		{[]string{"warning:", "warn:"}, domain.LevelWarning},
		{[]string{"info:", "inf:"}, domain.LevelInfo},
		{[]string{"debug:", "dbg:"}, domain.LevelDebug},
	}
	keywordRules = []rule{
		{[]string{"warning"}, domain.LevelWarning},
		{[]string{"info", "information"}, domain.LevelInfo},
		{[]string{"debug"}, domain.LevelDebug},
	}
	connectionRules = []rule{
		{[]string{"from", "connected", "connection"}, domain.LevelInfo},
	}

	stages = [][]rule{bracketRules, colonRules, keywordRules, connectionRules}
)

func Classify(message string) domain.LogLevel {
	lower := strings.ToLower(message)
	for _, stage := range stages {
		for _, r := range stage {
			for _, n := range r.needles {
				if strings.Contains(lower, n) {
					return r.level
				}
			}
		}
	}
	return domain.LevelInfo
}
