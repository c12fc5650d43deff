package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-internmatch-backend/internal/domain"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

type sessionRepo struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) domain.SessionRepository {
	return &sessionRepo{client: client}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKeyPrefix+session.Token, payload, ttl).Err()
}

func (r *sessionRepo) Get(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := r.client.Get(ctx, sessionKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	session.Token = token
	return &session, nil
}

func (r *sessionRepo) Delete(ctx context.Context, token string) error {
	// DEL on a missing key is a no-op, which keeps logout idempotent.
	return r.client.Del(ctx, sessionKeyPrefix+token).Err()
}
