// Package main wires the HTTP server for the activities directory service.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"mergington-activities/config"
	"mergington-activities/internal/events"
	"mergington-activities/internal/repository"
	"mergington-activities/internal/transport/http/server"
	"mergington-activities/internal/transport/http/server/handlers-fiber"
	"mergington-activities/internal/usecase"
	"mergington-activities/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	repo, err := repository.New(ctx, cfg.Storage.Backend, log, cfg)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Kafka.Enabled() {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.WriteTimeout)
		log.Infow("roster events enabled", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Warnw("publisher close error", "error", err)
		}
	}()

	uc := usecase.New(log, repo, publisher, cfg.HTTP.RequestTimeout)
	h := handlers_fiber.NewHandler(log, uc)
	serv := server.New(log, cfg.HTTP, h)

	go func() {
		log.Infow("http server listening", "addr", cfg.ServerAddr(), "storage", cfg.Storage.Backend)
		if err := serv.Listen(cfg.ServerAddr()); err != nil {
			log.Errorw("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	stop()

	if err := serv.ShutdownWithTimeout(cfg.Server.ShutdownTimeout); err != nil {
		log.Warnw("server shutdown error", "timeout", cfg.Server.ShutdownTimeout, "error", err)
	}
}
