package repository

import (
	"context"

	"github.com/gomatri/matrimony-backend/internal/domain"
)

type AddressRepository interface {
	Create(ctx context.Context, address *domain.Address) error
	GetByID(ctx context.Context, id int) (*domain.Address, error)
	GetAll(ctx context.Context) ([]*domain.Address, error)
	Update(ctx context.Context, address *domain.Address) error
	Delete(ctx context.Context, id int) error
}
