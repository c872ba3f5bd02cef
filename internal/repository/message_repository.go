package repository

import (
	"context"

	"github.com/gomatri/matrimony-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetByID(ctx context.Context, id int) (*domain.Message, error)
	GetAll(ctx context.Context) ([]*domain.Message, error)
	GetBySender(ctx context.Context, userID int) ([]*domain.Message, error)
	GetByReceiver(ctx context.Context, userID int) ([]*domain.Message, error)
	Update(ctx context.Context, message *domain.Message) error
	Delete(ctx context.Context, id int) error
}
