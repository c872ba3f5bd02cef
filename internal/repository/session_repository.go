package repository

import (
	"context"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
)

// Session is a server-side record for an issued token, keyed by the JWT jti.
// Deleting it revokes the token before its expiry.
type Session struct {
	TokenID  string          `json:"token_id"`
	UserID   int             `json:"user_id"`
	Role     domain.UserRole `json:"role"`
	IssuedAt time.Time       `json:"issued_at"`
}

type SessionRepository interface {
	Save(ctx context.Context, session *Session, ttl time.Duration) error
	Get(ctx context.Context, tokenID string) (*Session, error)
	Delete(ctx context.Context, tokenID string) error
}
