package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/Egor213/NodeLogs/internal/broker"
	kafkabroker "github.com/Egor213/NodeLogs/internal/broker/kafka"
	"github.com/Egor213/NodeLogs/internal/config"
	httpv1 "github.com/Egor213/NodeLogs/internal/controller/http/v1"
	"github.com/Egor213/NodeLogs/internal/metrics"
	"github.com/Egor213/NodeLogs/internal/repo"
	"github.com/Egor213/NodeLogs/internal/repo/panelapi"
	"github.com/Egor213/NodeLogs/internal/service"
	errorsUtils "github.com/Egor213/NodeLogs/pkg/errors"
	"github.com/Egor213/NodeLogs/pkg/httpserver"
	"github.com/Egor213/NodeLogs/pkg/logger"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func Run() {
	// Config
	cfg, err := config.New()
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Logger
	logger.SetupLogger(cfg.Log.Level)
	log.Info("Logger has been set up")

	viewerCfg, err := viewerConfig(cfg.Viewer)
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	// Metrics
	counters := metrics.New()

	// Repos
	log.WithField("base_url", cfg.Panel.BaseURL).Info("Using panel API")
	client := panelapi.New(cfg.Panel.BaseURL, cfg.Panel.Token, panelapi.Timeout(cfg.Panel.Timeout))
	repositories := repo.NewRepositories(client)

	// Broker
	var producer broker.Producer
	if cfg.Kafka.Enabled {
		log.WithField("topic", cfg.Kafka.Topic).Info("Forwarding log batches to Kafka")
		kafkaProducer := kafkabroker.NewProducer(kafkabroker.ProducerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.Topic,

			BatchTimeout: cfg.Kafka.BatchTimeout,
		})
		defer func() {
			if err := kafkaProducer.Close(); err != nil {
				log.Error(errorsUtils.WrapPathErr(err))
			}
		}()
		producer = kafkaProducer
	}

	// Services
	deps := service.ServicesDependencies{
		Repos:       repositories,
		Counters:    counters,
		Producer:    producer,
		Viewer:      viewerCfg,
		MaxSessions: cfg.Viewer.MaxSessions,
	}
	services := service.NewServices(deps)
	defer services.Viewers.CloseAll()

	// API server
	log.Infof("Starting API server...")
	log.Debugf("Server port: %s", cfg.HTTP.Port)
	apiHandler := echo.New()
	apiHandler.HideBanner = true
	apiHandler.Use(echoprometheus.NewMiddleware("nodelogs"))
	httpv1.ConfigureRouter(apiHandler, services, counters)
	apiServer := httpserver.New(apiHandler, httpserver.Port(cfg.HTTP.Port))

	// Prometheus server
	log.Infof("Starting metrics server...")
	log.Debugf("Server port: %s", cfg.Prometheus.Port)
	metricsHandler := echo.New()
	metricsHandler.HideBanner = true
	metrics.ConfigureRouter(metricsHandler)
	metricsServer := httpserver.New(metricsHandler, httpserver.Port(cfg.Prometheus.Port))

	// Waiting signal
	log.Info("Configuring graceful shutdown")
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("app - Run - signal: " + s.String())
	case err := <-apiServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	case err := <-metricsServer.Notify():
		log.Info(errorsUtils.WrapPathErr(err))
	}

	// Graceful shutdown
	log.Info("Shutting down...")
	if err := apiServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
	if err := metricsServer.Shutdown(); err != nil {
		log.Error(errorsUtils.WrapPathErr(err))
	}
}
