package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Egor213/NodeLogs/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: nodelogs
  version: 1.0.0
panel:
  base_url: http://panel.local
http:
  port: "8080"
prometheus:
  port: "9090"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "nodelogs", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 10*time.Second, cfg.Panel.Timeout)
	assert.Equal(t, time.Second, cfg.Viewer.FlushInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.Viewer.FilterDebounce)
	assert.Equal(t, "10000", cfg.Viewer.StorageCeiling)
	assert.Equal(t, 1000, cfg.Viewer.MaxLogsCount)
	assert.Equal(t, 24, cfg.Viewer.ItemHeight)
	assert.Equal(t, 10, cfg.Viewer.BufferSize)
	assert.Equal(t, 600, cfg.Viewer.ContainerHeight)
	assert.Equal(t, 50, cfg.Viewer.BottomThreshold)
	assert.Equal(t, 64, cfg.Viewer.MaxSessions)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, "node-logs", cfg.Kafka.Topic)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
app:
  name: nodelogs
  version: 1.0.0
panel:
  base_url: http://panel.local
  token: from-file
viewer:
  storage_ceiling: unlimited
http:
  port: "8080"
prometheus:
  port: "9090"
`)

	t.Setenv("PANEL_TOKEN", "from-env")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("VIEWER_FLUSH_INTERVAL", "250ms")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Panel.Token)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 250*time.Millisecond, cfg.Viewer.FlushInterval)
	assert.Equal(t, "unlimited", cfg.Viewer.StorageCeiling)
}

func TestLoad_MissingRequired(t *testing.T) {
	path := writeConfig(t, `
app:
  name: nodelogs
  version: 1.0.0
`)

	_, err := config.Load(path)
	assert.Error(t, err)
}
