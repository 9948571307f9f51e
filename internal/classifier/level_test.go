package classifier_test

import (
	"testing"

	"github.com/Egor213/NodeLogs/internal/classifier"
	"github.com/Egor213/NodeLogs/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name    string
		message string
		want    domain.LogLevel
	}{
		{"bracketed error", "[ERROR] failed", domain.LevelError},
		{"bracketed error lower", "2024/01/01 [error] dial tcp: timeout", domain.LevelError},
		{"bracketed warning", "[Warning] route not found", domain.LevelWarning},
		{"bracketed warn", "[WARN] slow handshake", domain.LevelWarning},
		{"bracketed info", "[Info] core started", domain.LevelInfo},
		{"bracketed debug", "[Debug] sniffed domain", domain.LevelDebug},
		{"bracket beats keyword", "[error] warning: nested", domain.LevelError},
		{"colon warning", "warning: config reloaded twice", domain.LevelWarning},
		{"colon warn", "WARN: retrying", domain.LevelWarning},
		{"colon info", "info: listening on 443", domain.LevelInfo},
		{"colon inf", "INF: ready", domain.LevelInfo},
		{"colon debug", "debug: buffer size 4096", domain.LevelDebug},
		{"colon dbg", "dbg: tick", domain.LevelDebug},
		{"colon beats keyword", "debug: warning detected", domain.LevelDebug},
		{"bare warning", "this is a warning about certs", domain.LevelWarning},
		{"bare information", "some information here", domain.LevelInfo},
		{"bare debug", "enable debug mode", domain.LevelDebug},
		{"connection from", "connection from 1.2.3.4", domain.LevelInfo},
		{"connected", "client connected", domain.LevelInfo},
		{"default", "random text", domain.LevelInfo},
		{"empty", "", domain.LevelInfo},
		{"colon error is not a tag", "error: boom", domain.LevelInfo},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifier.Classify(tc.message))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	msgs := []string{"[ERROR] failed", "debug: warning detected", "random text", "accepted from 10.0.0.1"}
	for _, m := range msgs {
		first := classifier.Classify(m)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, classifier.Classify(m))
		}
	}
}
