package repository

import (
	"context"

	"github.com/gomatri/matrimony-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int) error
	IncrementLoginAttempts(ctx context.Context, id int) (int, error)
	ResetLoginAttempts(ctx context.Context, id int) error
	SetVerified(ctx context.Context, id int, verified bool) error
}
