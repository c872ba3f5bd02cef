package repository

import (
	"context"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
)

type ProfileViewRepository interface {
	// Create inserts a view without touching any counter. Administrative
	// import path.
	Create(ctx context.Context, view *domain.ProfileView) error

	// CreateWithCount inserts the view and increments the viewer's
	// membership views_count inside one transaction.
	CreateWithCount(ctx context.Context, view *domain.ProfileView) error

	GetByID(ctx context.Context, id int) (*domain.ProfileView, error)
	GetAll(ctx context.Context) ([]*domain.ProfileView, error)
	GetByViewedProfile(ctx context.Context, profileID int) ([]*domain.ProfileView, error)
	GetOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.ProfileView, error)
	Delete(ctx context.Context, id int) error
}
