package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type matchRequestRepository struct {
	db *sqlx.DB
}

func NewMatchRequestRepository(db *sqlx.DB) repository.MatchRequestRepository {
	return &matchRequestRepository{db: db}
}

func (r *matchRequestRepository) Create(ctx context.Context, request *domain.MatchRequest) error {
	query := `
		INSERT INTO match_requests (
			sent_profile_id, received_profile_id, level,
			profile_one_like, profile_two_like, is_rejected
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		request.SentProfileID, request.ReceivedProfileID, request.Level,
		request.ProfileOneLike, request.ProfileTwoLike, request.IsRejected,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
}

func (r *matchRequestRepository) GetByID(ctx context.Context, id int) (*domain.MatchRequest, error) {
	var request domain.MatchRequest
	query := `SELECT * FROM match_requests WHERE id = $1`
	err := r.db.GetContext(ctx, &request, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *matchRequestRepository) GetByProfiles(ctx context.Context, sentProfileID, receivedProfileID int) (*domain.MatchRequest, error) {
	var request domain.MatchRequest
	query := `SELECT * FROM match_requests WHERE sent_profile_id = $1 AND received_profile_id = $2`
	err := r.db.GetContext(ctx, &request, query, sentProfileID, receivedProfileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *matchRequestRepository) GetSent(ctx context.Context, profileID int) ([]*domain.MatchRequest, error) {
	var requests []*domain.MatchRequest
	query := `SELECT * FROM match_requests WHERE sent_profile_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &requests, query, profileID)
	return requests, err
}

func (r *matchRequestRepository) GetReceived(ctx context.Context, profileID int) ([]*domain.MatchRequest, error) {
	var requests []*domain.MatchRequest
	query := `SELECT * FROM match_requests WHERE received_profile_id = $1 ORDER BY created_at DESC`
	err := r.db.SelectContext(ctx, &requests, query, profileID)
	return requests, err
}

func (r *matchRequestRepository) Update(ctx context.Context, request *domain.MatchRequest) error {
	query := `
		UPDATE match_requests
		SET level = $1, profile_one_like = $2, profile_two_like = $3,
		    is_rejected = $4, updated_at = CURRENT_TIMESTAMP
		WHERE id = $5
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		request.Level, request.ProfileOneLike, request.ProfileTwoLike,
		request.IsRejected, request.ID,
	).Scan(&request.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrMatchRequestNotFound
	}
	return err
}

func (r *matchRequestRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM match_requests WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchRequestNotFound
	}
	return nil
}
