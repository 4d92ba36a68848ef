package producer

import (
	"context"
	"time"

	"jample-admin/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize     = 50
	purgeInterval = time.Hour
	sentRetention = 7 * 24 * time.Hour
)

// ProcessOutboxEvents relays pending outbox rows to Kafka until ctx ends.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}
	if logger == nil {
		logger = zap.L()
	}

	log := logger.Named("kafka.producer.worker")
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	purge := time.NewTicker(purgeInterval)
	defer purge.Stop()

	log.Info("outbox relay started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox relay stopped")
			return
		case <-ticker.C:
			if _, err := processPendingEvents(ctx, repo, writer, log); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
		case now := <-purge.C:
			purgeSentEvents(ctx, repo, now, log)
		}
	}
}

// processPendingEvents returns how many events were delivered.
func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) (int, error) {
	events, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return 0, err
	}
	if len(events) == 0 {
		return 0, nil
	}

	logger.Debug("processing pending outbox events", zap.Int("count", len(events)))

	sent := 0
	for _, event := range events {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("request_id", event.RequestID),
			zap.String("event_type", event.EventType),
			zap.String("topic", event.Topic),
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			logger.Error("publish outbox event failed", append(fields, zap.Int("retry_count", event.RetryCount), zap.Error(err))...)
			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("mark outbox failed failed", append(fields, zap.Error(markErr))...)
			}
			continue
		}

		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed", append(fields, zap.Error(err))...)
			continue
		}

		sent++
		logger.Info("outbox event sent", fields...)
	}

	return sent, nil
}

func purgeSentEvents(ctx context.Context, repo kafka.OutboxRepository, now time.Time, logger *zap.Logger) {
	cutoff := now.Add(-sentRetention)
	n, err := repo.PurgeSent(ctx, cutoff)
	if err != nil {
		logger.Error("purge sent outbox events failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("purged sent outbox events", zap.Int64("count", n), zap.Time("before", cutoff))
	}
}
