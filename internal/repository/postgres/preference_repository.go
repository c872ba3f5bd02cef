package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/jmoiron/sqlx"
)

type preferenceRepository struct {
	db *sqlx.DB
}

func NewPreferenceRepository(db *sqlx.DB) repository.PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Create(ctx context.Context, preference *domain.Preference) error {
	query := `
		INSERT INTO preferences (
			preference_for_id, gender, mother_tongue, religion, education,
			occupation, min_height, max_height, min_age, max_age
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		preference.PreferenceForID, preference.Gender, preference.MotherTongue,
		preference.Religion, preference.Education, preference.Occupation,
		preference.MinHeight, preference.MaxHeight, preference.MinAge, preference.MaxAge,
	).Scan(&preference.ID, &preference.CreatedAt, &preference.UpdatedAt)
}

func (r *preferenceRepository) GetByID(ctx context.Context, id int) (*domain.Preference, error) {
	var preference domain.Preference
	query := `SELECT * FROM preferences WHERE id = $1`
	err := r.db.GetContext(ctx, &preference, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferenceNotFound
		}
		return nil, err
	}
	return &preference, nil
}

func (r *preferenceRepository) GetByProfileID(ctx context.Context, profileID int) (*domain.Preference, error) {
	var preference domain.Preference
	query := `SELECT * FROM preferences WHERE preference_for_id = $1`
	err := r.db.GetContext(ctx, &preference, query, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPreferenceNotFound
		}
		return nil, err
	}
	return &preference, nil
}

func (r *preferenceRepository) Update(ctx context.Context, preference *domain.Preference) error {
	query := `
		UPDATE preferences
		SET gender = $1, mother_tongue = $2, religion = $3, education = $4,
		    occupation = $5, min_height = $6, max_height = $7, min_age = $8,
		    max_age = $9, updated_at = CURRENT_TIMESTAMP
		WHERE id = $10
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		preference.Gender, preference.MotherTongue, preference.Religion,
		preference.Education, preference.Occupation, preference.MinHeight,
		preference.MaxHeight, preference.MinAge, preference.MaxAge, preference.ID,
	).Scan(&preference.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrPreferenceNotFound
	}
	return err
}

func (r *preferenceRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM preferences WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrPreferenceNotFound
	}
	return nil
}
