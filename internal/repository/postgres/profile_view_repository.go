package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type profileViewRepository struct {
	db *sqlx.DB
}

func NewProfileViewRepository(db *sqlx.DB) repository.ProfileViewRepository {
	return &profileViewRepository{db: db}
}

func (r *profileViewRepository) Create(ctx context.Context, view *domain.ProfileView) error {
	query := `
		INSERT INTO profile_views (viewer_id, viewed_profile_at, viewed_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.db.QueryRowContext(ctx, query, view.ViewerID, view.ViewedProfileAt, view.ViewedAt).
		Scan(&view.ID)
}

// CreateWithCount inserts the view and bumps the viewer's views_count in the
// same transaction. The increment is a single UPDATE so two concurrent
// viewers cannot lose a count to a read-modify-write race.
func (r *profileViewRepository) CreateWithCount(ctx context.Context, view *domain.ProfileView) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO profile_views (viewer_id, viewed_profile_at, viewed_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, insert, view.ViewerID, view.ViewedProfileAt, view.ViewedAt).
		Scan(&view.ID); err != nil {
		return err
	}

	update := `
		UPDATE memberships
		SET views_count = views_count + 1, updated_at = CURRENT_TIMESTAMP
		WHERE profile_id = $1
	`
	result, err := tx.ExecContext(ctx, update, view.ViewerID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMembershipNotFound
	}

	return tx.Commit()
}

func (r *profileViewRepository) GetByID(ctx context.Context, id int) (*domain.ProfileView, error) {
	var view domain.ProfileView
	query := `SELECT * FROM profile_views WHERE id = $1`
	err := r.db.GetContext(ctx, &view, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileViewNotFound
		}
		return nil, err
	}
	return &view, nil
}

func (r *profileViewRepository) GetAll(ctx context.Context) ([]*domain.ProfileView, error) {
	var views []*domain.ProfileView
	query := `SELECT * FROM profile_views ORDER BY id`
	err := r.db.SelectContext(ctx, &views, query)
	return views, err
}

func (r *profileViewRepository) GetByViewedProfile(ctx context.Context, profileID int) ([]*domain.ProfileView, error) {
	var views []*domain.ProfileView
	query := `SELECT * FROM profile_views WHERE viewed_profile_at = $1 ORDER BY id`
	err := r.db.SelectContext(ctx, &views, query, profileID)
	return views, err
}

func (r *profileViewRepository) GetOlderThan(ctx context.Context, cutoff time.Time) ([]*domain.ProfileView, error) {
	var views []*domain.ProfileView
	query := `SELECT * FROM profile_views WHERE viewed_at < $1 ORDER BY viewed_at`
	err := r.db.SelectContext(ctx, &views, query, cutoff)
	return views, err
}

func (r *profileViewRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM profile_views WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileViewNotFound
	}
	return nil
}
