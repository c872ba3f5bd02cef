package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type membershipRepository struct {
	db *sqlx.DB
}

func NewMembershipRepository(db *sqlx.DB) repository.MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Create(ctx context.Context, membership *domain.Membership) error {
	if !membership.Tier.Valid() {
		return fmt.Errorf("%w: tier %q", domain.ErrInvalidInput, membership.Tier)
	}
	query := `
		INSERT INTO memberships (
			profile_id, tier, description, ends_at, is_trial, is_trial_ended,
			views_count, chat_count, request_count
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		membership.ProfileID, membership.Tier, membership.Description,
		membership.EndsAt, membership.IsTrial, membership.IsTrialEnded,
		membership.ViewsCount, membership.ChatCount, membership.RequestCount,
	).Scan(&membership.ID, &membership.CreatedAt, &membership.UpdatedAt)
}

func (r *membershipRepository) GetByID(ctx context.Context, id int) (*domain.Membership, error) {
	var membership domain.Membership
	query := `SELECT * FROM memberships WHERE id = $1`
	err := r.db.GetContext(ctx, &membership, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, err
	}
	return &membership, nil
}

func (r *membershipRepository) GetByProfileID(ctx context.Context, profileID int) (*domain.Membership, error) {
	var membership domain.Membership
	query := `SELECT * FROM memberships WHERE profile_id = $1`
	err := r.db.GetContext(ctx, &membership, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, err
	}
	return &membership, nil
}

func (r *membershipRepository) Update(ctx context.Context, membership *domain.Membership) error {
	if !membership.Tier.Valid() {
		return fmt.Errorf("%w: tier %q", domain.ErrInvalidInput, membership.Tier)
	}
	query := `
		UPDATE memberships
		SET tier = $1, description = $2, ends_at = $3, is_trial = $4,
		    is_trial_ended = $5, views_count = $6, chat_count = $7,
		    request_count = $8, updated_at = CURRENT_TIMESTAMP
		WHERE id = $9
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		membership.Tier, membership.Description, membership.EndsAt,
		membership.IsTrial, membership.IsTrialEnded, membership.ViewsCount,
		membership.ChatCount, membership.RequestCount, membership.ID,
	).Scan(&membership.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrMembershipNotFound
	}
	return err
}

func (r *membershipRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM memberships WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
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
	return nil
}

func (r *membershipRepository) IncrementChatCount(ctx context.Context, profileID int) error {
	return r.incrementCounter(ctx, "chat_count", profileID)
}

func (r *membershipRepository) IncrementRequestCount(ctx context.Context, profileID int) error {
	return r.incrementCounter(ctx, "request_count", profileID)
}

func (r *membershipRepository) incrementCounter(ctx context.Context, column string, profileID int) error {
	// column comes from the two callers above, never from input
	query := fmt.Sprintf(`
		UPDATE memberships
		SET %s = %s + 1, updated_at = CURRENT_TIMESTAMP
		WHERE profile_id = $1
	`, column, column)
	result, err := r.db.ExecContext(ctx, query, profileID)
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
	return nil
}
