package producer

import (
	"context"
	"errors"
	"testing"
	"time"

	"jample-admin/internal/events"
	"jample-admin/internal/messaging/kafka"
	kafkaMock "jample-admin/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type recordingWriter struct {
	msgs []kafkago.Message
	err  map[string]error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err := w.err[string(m.Key)]; err != nil {
			return err
		}
		w.msgs = append(w.msgs, m)
	}
	return nil
}

func header(msg kafkago.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("sends and marks each event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{
			{ID: "o-1", RequestID: "REQ-1", AggregateType: kafka.AggregateEmployee, AggregateID: "emp-1",
				EventType: events.EventEmployeeStatusChanged, Topic: events.EmployeeStatusTopic, Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkSent(ctx, "o-1").Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
		if assert.Len(t, writer.msgs, 1) {
			assert.Equal(t, events.EmployeeStatusTopic, writer.msgs[0].Topic)
			assert.Equal(t, "emp-1", string(writer.msgs[0].Key))
			assert.Equal(t, "REQ-1", header(writer.msgs[0], "request_id"))
			assert.Equal(t, events.EventEmployeeStatusChanged, header(writer.msgs[0], "event_type"))
		}
	})

	t.Run("publish failure is recorded and the batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &recordingWriter{err: map[string]error{"bad": errors.New("broker down")}}

		repo.EXPECT().ListPending(ctx, batchSize).Return([]kafka.OutboxEvent{
			{ID: "o-1", AggregateID: "bad", Topic: events.CreditAllocationTopic, Payload: []byte(`{}`)},
			{ID: "o-2", AggregateID: "good", Topic: events.CreditAllocationTopic, Payload: []byte(`{}`)},
		}, nil)
		repo.EXPECT().MarkFailed(ctx, "o-1", "broker down").Return(nil)
		repo.EXPECT().MarkSent(ctx, "o-2").Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop())

		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

		_, err := processPendingEvents(ctx, repo, &recordingWriter{}, zap.NewNop())

		assert.EqualError(t, err, "db down")
	})
}

func TestPurgeSentEvents(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	repo := kafkaMock.NewMockOutboxRepository(ctrl)
	repo.EXPECT().PurgeSent(ctx, now.Add(-sentRetention)).Return(int64(3), nil)
	repo.EXPECT().PurgeSent(ctx, now.Add(-sentRetention)).Return(int64(0), errors.New("db down"))

	purgeSentEvents(ctx, repo, now, zap.NewNop())
	purgeSentEvents(ctx, repo, now, zap.NewNop())
}
