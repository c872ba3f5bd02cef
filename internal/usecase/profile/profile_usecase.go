package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/rs/zerolog"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	logger zerolog.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// CreateProfileRequest represents profile creation input.
type CreateProfileRequest struct {
	ManagedByRelation string  `json:"managed_by_relation" binding:"required,max=50"`
	DateOfBirth       string  `json:"date_of_birth" binding:"required"`
	Gender            string  `json:"gender" binding:"required,oneof=Male Female Other"`
	Education         *string `json:"education" binding:"omitempty,max=50"`
	Occupation        *string `json:"occupation" binding:"omitempty,max=50"`
	AnnualIncome      *int    `json:"annual_income" binding:"omitempty,min=0"`
	MaritalStatus     *string `json:"marital_status" binding:"omitempty,max=30"`
	MotherTongue      *string `json:"mother_tongue" binding:"omitempty,max=50"`
	Religion          *string `json:"religion" binding:"omitempty,max=50"`
	Ethnicity         *string `json:"ethnicity" binding:"omitempty,max=50"`
	Bio               *string `json:"bio" binding:"omitempty,max=500"`
	Height            *int    `json:"height" binding:"omitempty,min=50,max=250"`
	Weight            *int    `json:"weight" binding:"omitempty,min=20,max=300"`
}

// UpdateProfileRequest carries optional field updates.
type UpdateProfileRequest struct {
	ManagedByRelation *string `json:"managed_by_relation" binding:"omitempty,max=50"`
	Education         *string `json:"education" binding:"omitempty,max=50"`
	Occupation        *string `json:"occupation" binding:"omitempty,max=50"`
	AnnualIncome      *int    `json:"annual_income" binding:"omitempty,min=0"`
	MaritalStatus     *string `json:"marital_status" binding:"omitempty,max=30"`
	MotherTongue      *string `json:"mother_tongue" binding:"omitempty,max=50"`
	Religion          *string `json:"religion" binding:"omitempty,max=50"`
	Ethnicity         *string `json:"ethnicity" binding:"omitempty,max=50"`
	Bio               *string `json:"bio" binding:"omitempty,max=500"`
	Height            *int    `json:"height" binding:"omitempty,min=50,max=250"`
	Weight            *int    `json:"weight" binding:"omitempty,min=20,max=300"`
}

// ProfileResponse is a profile with its derived age.
type ProfileResponse struct {
	*domain.Profile
	Age int `json:"age"`
}

// CreateProfile creates a profile managed by userID.
func (uc *ProfileUseCase) CreateProfile(ctx context.Context, userID int, req *CreateProfileRequest) (*domain.Profile, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("%w: date_of_birth must be YYYY-MM-DD", domain.ErrInvalidInput)
	}

	profile := &domain.Profile{
		UserID:            userID,
		ManagedByRelation: req.ManagedByRelation,
		DateOfBirth:       dob,
		Gender:            req.Gender,
		Education:         req.Education,
		Occupation:        req.Occupation,
		AnnualIncome:      req.AnnualIncome,
		MaritalStatus:     req.MaritalStatus,
		MotherTongue:      req.MotherTongue,
		Religion:          req.Religion,
		Ethnicity:         req.Ethnicity,
		Bio:               req.Bio,
		Height:            req.Height,
		Weight:            req.Weight,
	}
	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}
	return profile, nil
}

// GetProfileByID returns the raw profile. Collaborators use this for
// existence validation.
func (uc *ProfileUseCase) GetProfileByID(ctx context.Context, id int) (*domain.Profile, error) {
	return uc.profileRepo.GetByID(ctx, id)
}

// GetProfileDetails returns the profile with derived fields for responses.
func (uc *ProfileUseCase) GetProfileDetails(ctx context.Context, id int) (*ProfileResponse, error) {
	profile, err := uc.profileRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProfileResponse{Profile: profile, Age: profile.Age(time.Now())}, nil
}

// GetProfilesByUserID lists every profile the user manages.
func (uc *ProfileUseCase) GetProfilesByUserID(ctx context.Context, userID int) ([]*domain.Profile, error) {
	return uc.profileRepo.GetByUserID(ctx, userID)
}

// UpdateProfile applies the provided fields to a profile owned by userID.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID, profileID int, req *UpdateProfileRequest) (*domain.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.UserID != userID {
		return nil, domain.ErrProfileNotFound
	}

	if req.ManagedByRelation != nil {
		profile.ManagedByRelation = *req.ManagedByRelation
	}
	if req.Education != nil {
		profile.Education = req.Education
	}
	if req.Occupation != nil {
		profile.Occupation = req.Occupation
	}
	if req.AnnualIncome != nil {
		profile.AnnualIncome = req.AnnualIncome
	}
	if req.MaritalStatus != nil {
		profile.MaritalStatus = req.MaritalStatus
	}
	if req.MotherTongue != nil {
		profile.MotherTongue = req.MotherTongue
	}
	if req.Religion != nil {
		profile.Religion = req.Religion
	}
	if req.Ethnicity != nil {
		profile.Ethnicity = req.Ethnicity
	}
	if req.Bio != nil {
		profile.Bio = req.Bio
	}
	if req.Height != nil {
		profile.Height = req.Height
	}
	if req.Weight != nil {
		profile.Weight = req.Weight
	}

	if err := uc.profileRepo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return profile, nil
}

// DeleteProfile removes a profile owned by userID. Admins may delete any.
func (uc *ProfileUseCase) DeleteProfile(ctx context.Context, userID, profileID int, isAdmin bool) error {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return err
	}
	if !isAdmin && profile.UserID != userID {
		return domain.ErrProfileNotFound
	}
	return uc.profileRepo.Delete(ctx, profileID)
}

// SearchProfiles lists candidate profiles matching simple attribute filters.
func (uc *ProfileUseCase) SearchProfiles(ctx context.Context, filters map[string]interface{}, limit, offset int) ([]*ProfileResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	profiles, err := uc.profileRepo.Search(ctx, filters, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}
	now := time.Now()
	results := make([]*ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		results = append(results, &ProfileResponse{Profile: p, Age: p.Age(now)})
	}
	return results, nil
}
