package preference

import (
	"context"
	"fmt"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
)

type PreferenceUseCase struct {
	preferenceRepo repository.PreferenceRepository
	profileRepo    repository.ProfileRepository
}

func NewPreferenceUseCase(
	preferenceRepo repository.PreferenceRepository,
	profileRepo repository.ProfileRepository,
) *PreferenceUseCase {
	return &PreferenceUseCase{
		preferenceRepo: preferenceRepo,
		profileRepo:    profileRepo,
	}
}

type PreferenceRequest struct {
	PreferenceForID int     `json:"preference_for_id" binding:"required"`
	Gender          *string `json:"gender" binding:"omitempty,oneof=Male Female Other"`
	MotherTongue    *string `json:"mother_tongue" binding:"omitempty,max=50"`
	Religion        *string `json:"religion" binding:"omitempty,max=50"`
	Education       *string `json:"education" binding:"omitempty,max=50"`
	Occupation      *string `json:"occupation" binding:"omitempty,max=50"`
	MinHeight       *int    `json:"min_height" binding:"omitempty,min=50,max=250"`
	MaxHeight       *int    `json:"max_height" binding:"omitempty,min=50,max=250"`
	MinAge          *int    `json:"min_age" binding:"omitempty,min=18,max=100"`
	MaxAge          *int    `json:"max_age" binding:"omitempty,min=18,max=100"`
}

// Add creates a partner preference for a profile and links it.
func (uc *PreferenceUseCase) Add(ctx context.Context, req *PreferenceRequest) (*domain.Preference, error) {
	if _, err := uc.profileRepo.GetByID(ctx, req.PreferenceForID); err != nil {
		return nil, err
	}

	preference := &domain.Preference{
		PreferenceForID: req.PreferenceForID,
		Gender:          req.Gender,
		MotherTongue:    req.MotherTongue,
		Religion:        req.Religion,
		Education:       req.Education,
		Occupation:      req.Occupation,
		MinHeight:       req.MinHeight,
		MaxHeight:       req.MaxHeight,
		MinAge:          req.MinAge,
		MaxAge:          req.MaxAge,
	}
	if err := uc.preferenceRepo.Create(ctx, preference); err != nil {
		return nil, fmt.Errorf("failed to create preference: %w", err)
	}
	if err := uc.profileRepo.SetPreferenceID(ctx, req.PreferenceForID, &preference.ID); err != nil {
		return nil, fmt.Errorf("failed to link preference to profile: %w", err)
	}
	return preference, nil
}

func (uc *PreferenceUseCase) GetByID(ctx context.Context, id int) (*domain.Preference, error) {
	return uc.preferenceRepo.GetByID(ctx, id)
}

func (uc *PreferenceUseCase) GetByProfileID(ctx context.Context, profileID int) (*domain.Preference, error) {
	return uc.preferenceRepo.GetByProfileID(ctx, profileID)
}

func (uc *PreferenceUseCase) Update(ctx context.Context, id int, req *PreferenceRequest) (*domain.Preference, error) {
	preference, err := uc.preferenceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Gender != nil {
		preference.Gender = req.Gender
	}
	if req.MotherTongue != nil {
		preference.MotherTongue = req.MotherTongue
	}
	if req.Religion != nil {
		preference.Religion = req.Religion
	}
	if req.Education != nil {
		preference.Education = req.Education
	}
	if req.Occupation != nil {
		preference.Occupation = req.Occupation
	}
	if req.MinHeight != nil {
		preference.MinHeight = req.MinHeight
	}
	if req.MaxHeight != nil {
		preference.MaxHeight = req.MaxHeight
	}
	if req.MinAge != nil {
		preference.MinAge = req.MinAge
	}
	if req.MaxAge != nil {
		preference.MaxAge = req.MaxAge
	}

	if err := uc.preferenceRepo.Update(ctx, preference); err != nil {
		return nil, err
	}
	return preference, nil
}

func (uc *PreferenceUseCase) DeleteByID(ctx context.Context, id int) error {
	preference, err := uc.preferenceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.preferenceRepo.Delete(ctx, id); err != nil {
		return err
	}
	// Unlink; the profile may no longer exist, which is fine.
	_ = uc.profileRepo.SetPreferenceID(ctx, preference.PreferenceForID, nil)
	return nil
}
