package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	// OutboxStatusDead rows exhausted MaxAttempts and are left for an operator.
	OutboxStatusDead = "dead"
)

const (
	AggregateEmployee = "employee"
	AggregateCredit   = "credit_allocation"
)

const (
	MaxAttempts   = 10
	maxErrorChars = 500
)

type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock

type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ListPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
	PurgeSent(ctx context.Context, olderThan time.Time) (int64, error)
}

const insertOutboxSQL = `
INSERT INTO outbox_events (
	id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status
) VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)
`

// Due rows, oldest first. Dead rows are never picked up again.
const listPendingSQL = `
SELECT
	id::text,
	COALESCE(request_id, ''),
	aggregate_type,
	aggregate_id,
	event_type,
	topic,
	payload,
	status,
	retry_count,
	COALESCE(next_retry_at, created_at)
FROM outbox_events
WHERE status IN ($1, $2)
	AND retry_count < $3
	AND (next_retry_at IS NULL OR next_retry_at <= NOW())
ORDER BY created_at ASC
LIMIT $4
`

const markSentSQL = `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, updated_at = NOW()
WHERE id = $1
`

// Backoff doubles from 5s and is capped at 5 minutes.
const markFailedSQL = `
UPDATE outbox_events
SET
	status = CASE WHEN retry_count + 1 >= $4 THEN $5 ELSE $2 END,
	retry_count = retry_count + 1,
	error_message = LEFT($3, $6),
	next_retry_at = NOW() + LEAST(5 * POWER(2, retry_count), 300) * INTERVAL '1 second',
	updated_at = NOW()
WHERE id = $1
`

const purgeSentSQL = `
DELETE FROM outbox_events
WHERE status = $1 AND processed_at < $2
`

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	_, err := r.execer().ExecContext(ctx, insertOutboxSQL,
		event.ID, event.RequestID, event.AggregateType,
		event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
	)
	return err
}

func (r *outboxRepository) ListPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	rows, err := r.db.QueryContext(ctx, listPendingSQL, OutboxStatusPending, OutboxStatusFailed, MaxAttempts, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]OutboxEvent, 0, limit)
	for rows.Next() {
		var e OutboxEvent
		if err := rows.Scan(
			&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID, &e.EventType,
			&e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt,
		); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, markSentSQL, id, OutboxStatusSent)
	return err
}

func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	_, err := r.db.ExecContext(ctx, markFailedSQL,
		id, OutboxStatusFailed, reason, MaxAttempts, OutboxStatusDead, maxErrorChars)
	return err
}

// PurgeSent deletes delivered rows processed before olderThan.
func (r *outboxRepository) PurgeSent(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, purgeSentSQL, OutboxStatusSent, olderThan)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *outboxRepository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
} {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

func ValidateOutboxEvent(event OutboxEvent) error {
	if event.ID == "" {
		return errors.New("outbox id is required")
	}
	if event.Topic == "" {
		return errors.New("outbox topic is required")
	}
	if event.AggregateID == "" {
		return errors.New("outbox aggregate id is required")
	}
	if len(event.Payload) == 0 {
		return errors.New("outbox payload is required")
	}
	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
