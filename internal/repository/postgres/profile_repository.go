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

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			user_id, managed_by_relation, date_of_birth, gender,
			education, occupation, annual_income, marital_status,
			mother_tongue, religion, ethnicity, bio, height, weight,
			membership_id, preference_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.UserID, profile.ManagedByRelation, profile.DateOfBirth, profile.Gender,
		profile.Education, profile.Occupation, profile.AnnualIncome, profile.MaritalStatus,
		profile.MotherTongue, profile.Religion, profile.Ethnicity, profile.Bio,
		profile.Height, profile.Weight, profile.MembershipID, profile.PreferenceID,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByID(ctx context.Context, id int) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE id = $1`
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	query := `SELECT * FROM profiles WHERE user_id = $1 ORDER BY id`
	err := r.db.SelectContext(ctx, &profiles, query, userID)
	return profiles, err
}

func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET managed_by_relation = $1, date_of_birth = $2, gender = $3,
		    education = $4, occupation = $5, annual_income = $6,
		    marital_status = $7, mother_tongue = $8, religion = $9,
		    ethnicity = $10, bio = $11, height = $12, weight = $13,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $14
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		profile.ManagedByRelation, profile.DateOfBirth, profile.Gender,
		profile.Education, profile.Occupation, profile.AnnualIncome,
		profile.MaritalStatus, profile.MotherTongue, profile.Religion,
		profile.Ethnicity, profile.Bio, profile.Height, profile.Weight,
		profile.ID,
	).Scan(&profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrProfileNotFound
	}
	return err
}

func (r *profileRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM profiles WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) SetMembershipID(ctx context.Context, profileID int, membershipID *int) error {
	query := `
		UPDATE profiles
		SET membership_id = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, membershipID, profileID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) SetPreferenceID(ctx context.Context, profileID int, preferenceID *int) error {
	query := `
		UPDATE profiles
		SET preference_id = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, preferenceID, profileID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) Search(ctx context.Context, filters map[string]interface{}, limit, offset int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile

	query := `SELECT * FROM profiles WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	if gender, ok := filters["gender"].(string); ok && gender != "" {
		query += fmt.Sprintf(" AND gender = $%d", argCount)
		args = append(args, gender)
		argCount++
	}

	if religion, ok := filters["religion"].(string); ok && religion != "" {
		query += fmt.Sprintf(" AND religion = $%d", argCount)
		args = append(args, religion)
		argCount++
	}

	if motherTongue, ok := filters["mother_tongue"].(string); ok && motherTongue != "" {
		query += fmt.Sprintf(" AND mother_tongue = $%d", argCount)
		args = append(args, motherTongue)
		argCount++
	}

	if maritalStatus, ok := filters["marital_status"].(string); ok && maritalStatus != "" {
		query += fmt.Sprintf(" AND marital_status = $%d", argCount)
		args = append(args, maritalStatus)
		argCount++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argCount, argCount+1)
	args = append(args, limit, offset)

	err := r.db.SelectContext(ctx, &profiles, query, args...)
	return profiles, err
}
