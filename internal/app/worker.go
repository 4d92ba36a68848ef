package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jample-admin/internal/config"
	"jample-admin/internal/messaging/kafka"
	"jample-admin/internal/messaging/kafka/producer"
	"jample-admin/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays outbox rows to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config) error {
	logger := zap.L().Named("app.worker")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, connectRetries)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, 3*time.Second)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()
	<-done

	return nil
}
