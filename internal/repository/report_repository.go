package repository

import (
	"context"

	"github.com/gomatri/matrimony-backend/internal/domain"
)

type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id int) (*domain.Report, error)
	GetAll(ctx context.Context) ([]*domain.Report, error)
	Delete(ctx context.Context, id int) error
}
