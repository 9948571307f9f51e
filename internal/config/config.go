package config

import (
	"os"
	"time"

	errorsUtils "github.com/Egor213/NodeLogs/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		Panel      `yaml:"panel"`
		Viewer     `yaml:"viewer"`
		HTTP       `yaml:"http"`
		Prometheus `yaml:"prometheus"`
		Kafka      `yaml:"kafka"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		// File receives the log output of the terminal client.
		File string `yaml:"file" env:"LOG_FILE"`
	}

	Panel struct {
		BaseURL string        `yaml:"base_url" env:"PANEL_BASE_URL" env-required:"true"`
		Token   string        `yaml:"token" env:"PANEL_TOKEN"`
		Timeout time.Duration `yaml:"timeout" env:"PANEL_TIMEOUT" env-default:"10s"`
	}

	Viewer struct {
		FlushInterval   time.Duration `yaml:"flush_interval" env:"VIEWER_FLUSH_INTERVAL" env-default:"1s"`
		FilterDebounce  time.Duration `yaml:"filter_debounce" env:"VIEWER_FILTER_DEBOUNCE" env-default:"100ms"`
		StorageCeiling  string        `yaml:"storage_ceiling" env:"VIEWER_STORAGE_CEILING" env-default:"10000"`
		MaxLogsCount    int           `yaml:"max_logs_count" env:"VIEWER_MAX_LOGS_COUNT" env-default:"1000"`
		ItemHeight      int           `yaml:"item_height" env:"VIEWER_ITEM_HEIGHT" env-default:"24"`
		BufferSize      int           `yaml:"buffer_size" env:"VIEWER_BUFFER_SIZE" env-default:"10"`
		ContainerHeight int           `yaml:"container_height" env:"VIEWER_CONTAINER_HEIGHT" env-default:"600"`
		BottomThreshold int           `yaml:"bottom_threshold" env:"VIEWER_BOTTOM_THRESHOLD" env-default:"50"`
		MaxSessions     int           `yaml:"max_sessions" env:"VIEWER_MAX_SESSIONS" env-default:"64"`
	}

	HTTP struct {
		Port string `env-required:"true" yaml:"port" env:"HTTP_PORT"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	Kafka struct {
		Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED" env-default:"false"`
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"node-logs"`

		BatchTimeout time.Duration `yaml:"batch_timeout" env:"KAFKA_BATCH_TIMEOUT" env-default:"200ms"`
	}
)

const (
	ENV_PATH            = "infra/.env"
	DEFAULT_CONFIG_PATH = "infra/config.yaml"
)

func init() {
	// The env file is optional; real environments set variables directly.
	if err := godotenv.Load(ENV_PATH); err != nil && !os.IsNotExist(err) {
		log.Warnf("Error loading .env file: %v", err)
	}
}

func New() (*Config, error) {
	pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
	if !ok || pathToConfig == "" {
		log.WithField("env_var", "APP_CONFIG_PATH").
			Info("Config path is not set, using default")
		pathToConfig = DEFAULT_CONFIG_PATH
	}
	return Load(pathToConfig)
}

func Load(pathToConfig string) (*Config, error) {
	cfg := &Config{}

	if err := cleanenv.ReadConfig(pathToConfig, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}
