package repository

import (
	"context"

	"github.com/gomatri/matrimony-backend/internal/domain"
)

type MatchRequestRepository interface {
	Create(ctx context.Context, request *domain.MatchRequest) error
	GetByID(ctx context.Context, id int) (*domain.MatchRequest, error)
	GetByProfiles(ctx context.Context, sentProfileID, receivedProfileID int) (*domain.MatchRequest, error)
	GetSent(ctx context.Context, profileID int) ([]*domain.MatchRequest, error)
	GetReceived(ctx context.Context, profileID int) ([]*domain.MatchRequest, error)
	Update(ctx context.Context, request *domain.MatchRequest) error
	Delete(ctx context.Context, id int) error
}
