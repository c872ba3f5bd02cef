package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type reportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	query := `
		INSERT INTO reports (profile_id, reported_by_id, reason)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		report.ProfileID, report.ReportedByID, report.Reason,
	).Scan(&report.ID, &report.CreatedAt)
}

func (r *reportRepository) GetByID(ctx context.Context, id int) (*domain.Report, error) {
	var report domain.Report
	query := `SELECT * FROM reports WHERE id = $1`
	err := r.db.GetContext(ctx, &report, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) GetAll(ctx context.Context) ([]*domain.Report, error) {
	var reports []*domain.Report
	query := `SELECT * FROM reports ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &reports, query)
	return reports, err
}

func (r *reportRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM reports WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrReportNotFound
	}
	return nil
}
