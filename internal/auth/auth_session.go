package auth

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	autherrors "jample-admin/internal/auth/errors"

	"github.com/redis/go-redis/v9"
)

const SessionKeyPrefix = "session:"

func GetSessionKey(sid string) string {
	return SessionKeyPrefix + sid
}

// SessionRecord is what a session id resolves to. The backend token never
// leaves the server.
type SessionRecord struct {
	UserID       string    `json:"user_id"`
	CompanyID    int64     `json:"company_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	BackendToken string    `json:"backend_token"`
	IssuedAt     time.Time `json:"issued_at"`
}

type SessionStore interface {
	Save(ctx context.Context, sid string, rec SessionRecord, ttl time.Duration) error
	Get(ctx context.Context, sid string) (SessionRecord, error)
	Delete(ctx context.Context, sid string) error
	Token(ctx context.Context, sid string) (string, error)
}

type redisSessionStore struct {
	rdb *redis.Client
}

func NewSessionStore(rdb *redis.Client) SessionStore {
	return &redisSessionStore{rdb: rdb}
}

func (s *redisSessionStore) Save(ctx context.Context, sid string, rec SessionRecord, ttl time.Duration) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, GetSessionKey(sid), string(data), ttl).Err()
}

func (s *redisSessionStore) Get(ctx context.Context, sid string) (SessionRecord, error) {
	if sid == "" {
		return SessionRecord{}, autherrors.ErrSessionExpired
	}
	raw, err := s.rdb.Get(ctx, GetSessionKey(sid)).Result()
	if errors.Is(err, redis.Nil) {
		return SessionRecord{}, autherrors.ErrSessionExpired
	}
	if err != nil {
		return SessionRecord{}, err
	}

	var rec SessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return SessionRecord{}, autherrors.ErrSessionExpired
	}
	return rec, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sid string) error {
	return s.rdb.Del(ctx, GetSessionKey(sid)).Err()
}

// Token satisfies middleware.SessionStore.
func (s *redisSessionStore) Token(ctx context.Context, sid string) (string, error) {
	rec, err := s.Get(ctx, sid)
	if err != nil {
		return "", err
	}
	return rec.BackendToken, nil
}
