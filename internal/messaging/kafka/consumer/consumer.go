package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"jample-admin/internal/audit"
	auditerrors "jample-admin/internal/audit/errors"
	"jample-admin/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

var errUnknownTopic = errors.New("unknown topic")

// ConsumeAuditEvents writes status change and allocation events into the
// audit trail. Offsets are committed only after the entry is stored.
func ConsumeAuditEvents(
	ctx context.Context,
	reader MessageReader,
	auditService audit.Service,
	logger *zap.Logger,
) {
	if logger == nil {
		logger = zap.L()
	}
	log := logger.Named("kafka.consumer.audit")
	log.Info("audit consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("audit consumer stopped")
				return
			}
			log.Error("fetch audit message failed", zap.Error(err))
			continue
		}

		fields := []zap.Field{
			zap.String("topic", msg.Topic),
			zap.Int64("offset", msg.Offset),
		}

		entry, err := decodeEntry(msg)
		if err != nil {
			log.Error("decode audit event failed", append(fields, zap.Error(err))...)
			if commitErr := reader.CommitMessages(ctx, msg); commitErr != nil {
				log.Error("commit invalid audit message failed", append(fields, zap.Error(commitErr))...)
			}
			continue
		}

		if err := auditService.Record(ctx, entry); err != nil {
			if errors.Is(err, auditerrors.ErrDuplicateEntry) || errors.Is(err, auditerrors.ErrInvalidEvent) {
				log.Warn("audit event skipped", append(fields, zap.String("event_id", entry.EventID), zap.Error(err))...)
				if commitErr := reader.CommitMessages(ctx, msg); commitErr != nil {
					log.Error("commit skipped audit message failed", append(fields, zap.Error(commitErr))...)
				}
				continue
			}

			log.Error("record audit entry failed", append(fields, zap.String("event_id", entry.EventID), zap.Error(err))...)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit audit message failed", append(fields, zap.Error(err))...)
			continue
		}

		log.Info("audit entry recorded",
			zap.String("event_id", entry.EventID),
			zap.String("kind", entry.Kind),
			zap.Int64("company_id", entry.CompanyID),
		)
	}
}

func decodeEntry(msg kafkago.Message) (audit.Entry, error) {
	eventID := header(msg, "outbox_id")
	if eventID == "" {
		eventID = fmt.Sprintf("%s/%d/%d", msg.Topic, msg.Partition, msg.Offset)
	}

	switch msg.Topic {
	case events.EmployeeStatusTopic:
		var ev events.EmployeeStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			return audit.Entry{}, err
		}
		return audit.FromStatusChanged(eventID, ev, msg.Value), nil
	case events.CreditAllocationTopic:
		var ev events.CreditsAllocatedEvent
		if err := json.Unmarshal(msg.Value, &ev); err != nil {
			return audit.Entry{}, err
		}
		return audit.FromCreditsAllocated(eventID, ev, msg.Value), nil
	default:
		return audit.Entry{}, fmt.Errorf("%w: %s", errUnknownTopic, msg.Topic)
	}
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}
