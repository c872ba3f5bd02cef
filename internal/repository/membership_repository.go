package repository

import (
	"context"

	"github.com/gomatri/matrimony-backend/internal/domain"
)

type MembershipRepository interface {
	Create(ctx context.Context, membership *domain.Membership) error
	GetByID(ctx context.Context, id int) (*domain.Membership, error)
	GetByProfileID(ctx context.Context, profileID int) (*domain.Membership, error)
	Update(ctx context.Context, membership *domain.Membership) error
	Delete(ctx context.Context, id int) error

	// Counter increments run as single UPDATE statements so concurrent
	// requests cannot lose updates the way read-modify-write would.
	IncrementChatCount(ctx context.Context, profileID int) error
	IncrementRequestCount(ctx context.Context, profileID int) error
}
