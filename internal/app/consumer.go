package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jample-admin/internal/audit"
	"jample-admin/internal/config"
	"jample-admin/internal/events"
	"jample-admin/internal/messaging/kafka/consumer"
	"jample-admin/internal/shared/connection"

	"go.uber.org/zap"
)

const auditConsumerGroup = "jample-admin-audit"

// RunConsumer persists status change and allocation events into the audit
// trail until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

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

	if err := gormDB.AutoMigrate(&audit.Entry{}); err != nil {
		return fmt.Errorf("migrate audit_entries: %w", err)
	}

	reader, err := connection.NewKafkaReader(
		cfg.KafkaBroker,
		auditConsumerGroup,
		[]string{events.EmployeeStatusTopic, events.CreditAllocationTopic},
		connectRetries,
	)
	if err != nil {
		return err
	}
	defer reader.Close()

	auditService := audit.NewService(audit.NewRepository(gormDB), logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		consumer.ConsumeAuditEvents(ctx, reader, auditService, logger)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()
	<-done

	return nil
}
