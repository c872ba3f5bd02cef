package repository

import (
	"context"

	"github.com/gomatri/matrimony-backend/internal/domain"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id int) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID int) ([]*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Delete(ctx context.Context, id int) error
	SetMembershipID(ctx context.Context, profileID int, membershipID *int) error
	SetPreferenceID(ctx context.Context, profileID int, preferenceID *int) error
	Search(ctx context.Context, filters map[string]interface{}, limit, offset int) ([]*domain.Profile, error)
}
