package repository

import (
	"context"

	"github.com/gomatri/matrimony-backend/internal/domain"
)

type PreferenceRepository interface {
	Create(ctx context.Context, preference *domain.Preference) error
	GetByID(ctx context.Context, id int) (*domain.Preference, error)
	GetByProfileID(ctx context.Context, profileID int) (*domain.Preference, error)
	Update(ctx context.Context, preference *domain.Preference) error
	Delete(ctx context.Context, id int) error
}
