package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	goredis "github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client *goredis.Client
}

func NewSessionRepository(client *goredis.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(tokenID string) string {
	return "session:" + tokenID
}

func (r *sessionRepository) Save(ctx context.Context, session *repository.Session, ttl time.Duration) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return r.client.Set(ctx, sessionKey(session.TokenID), data, ttl).Err()
}

func (r *sessionRepository) Get(ctx context.Context, tokenID string) (*repository.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(tokenID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	var session repository.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, tokenID string) error {
	return r.client.Del(ctx, sessionKey(tokenID)).Err()
}
