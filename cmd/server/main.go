package main

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/samartharora25/SafeRove-Final/config"
	"github.com/samartharora25/SafeRove-Final/module/core"
)

func main() {
	cfg := config.Load()
	logger := config.NewLogger(cfg)

	db, err := config.NewPostgres(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("postgres")
	}
	defer func() { _ = db.Close() }()

	amqpConn, err := config.NewRabbitMQ(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("rabbitmq")
	}
	defer func() { _ = amqpConn.Close() }()

	mqttClient, err := config.NewMQTT(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("mqtt")
	}
	defer mqttClient.Disconnect(250)

	coreModule, err := core.Build(db, amqpConn, mqttClient, logger, cfg.ArtifactDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("core module")
	}

	if err := coreModule.StartSubscribers(); err != nil {
		logger.Fatal().Err(err).Msg("start subscribers")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	health := config.NewHealthChecker(db, amqpConn, mqttClient)
	health.Register(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	coreModule.RegisterRoutes(r.Group("/api"))

	logger.Info().Str("port", cfg.HTTPPort).Msg("listening")
	if err := r.Run(":" + cfg.HTTPPort); err != nil {
		logger.Fatal().Err(err).Msg("server")
	}
}
