package membership

import (
	"context"
	"fmt"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	rediscache "github.com/gomatri/matrimony-backend/internal/repository/redis"
	"github.com/rs/zerolog"
)

type MembershipUseCase struct {
	membershipRepo repository.MembershipRepository
	profileRepo    repository.ProfileRepository
	cache          *rediscache.MembershipCache
	logger         zerolog.Logger
	now            func() time.Time
}

func NewMembershipUseCase(
	membershipRepo repository.MembershipRepository,
	profileRepo repository.ProfileRepository,
	cache *rediscache.MembershipCache,
	logger zerolog.Logger,
) *MembershipUseCase {
	return &MembershipUseCase{
		membershipRepo: membershipRepo,
		profileRepo:    profileRepo,
		cache:          cache,
		logger:         logger,
		now:            time.Now,
	}
}

// AddMembershipRequest creates a membership for a profile.
type AddMembershipRequest struct {
	ProfileID   int     `json:"profile_id" binding:"required"`
	Tier        string  `json:"tier" binding:"required"`
	Description *string `json:"description" binding:"omitempty,max=100"`
	EndsAt      string  `json:"ends_at" binding:"required"`
	IsTrial     bool    `json:"is_trial"`
}

// Add creates the membership and links it to its profile. A profile carries
// exactly one membership, so an existing one is an input error.
func (uc *MembershipUseCase) Add(ctx context.Context, req *AddMembershipRequest) (*domain.Membership, error) {
	tier, err := domain.ParseMembershipTier(req.Tier)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	endsAt, err := time.Parse(time.RFC3339, req.EndsAt)
	if err != nil {
		return nil, fmt.Errorf("%w: ends_at must be RFC3339", domain.ErrInvalidInput)
	}
	if _, err := uc.profileRepo.GetByID(ctx, req.ProfileID); err != nil {
		return nil, err
	}
	if existing, err := uc.membershipRepo.GetByProfileID(ctx, req.ProfileID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: profile %d already has a membership", domain.ErrInvalidInput, req.ProfileID)
	}

	membership := &domain.Membership{
		ProfileID:   req.ProfileID,
		Tier:        tier,
		Description: req.Description,
		EndsAt:      endsAt,
		IsTrial:     req.IsTrial,
	}
	if err := uc.membershipRepo.Create(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}
	if err := uc.profileRepo.SetMembershipID(ctx, req.ProfileID, &membership.ID); err != nil {
		return nil, fmt.Errorf("failed to link membership to profile: %w", err)
	}
	return membership, nil
}

func (uc *MembershipUseCase) GetByID(ctx context.Context, id int) (*domain.Membership, error) {
	membership, err := uc.membershipRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.settleTrial(ctx, membership)
}

// GetByProfileID is the gating hot path, so it reads through the cache when
// one is configured.
func (uc *MembershipUseCase) GetByProfileID(ctx context.Context, profileID int) (*domain.Membership, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, profileID); err == nil {
			return cached, nil
		} else if err != rediscache.ErrCacheMiss {
			uc.logger.Warn().Err(err).Int("profile_id", profileID).
				Msg("membership cache read failed, falling back to store")
		}
	}

	membership, err := uc.membershipRepo.GetByProfileID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	membership, err = uc.settleTrial(ctx, membership)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, membership); err != nil {
			uc.logger.Warn().Err(err).Int("profile_id", profileID).
				Msg("failed to populate membership cache")
		}
	}
	return membership, nil
}

// Update persists the membership as given. Counters are not resettable from
// this path in any way that bypasses their invariants; the caller owns the
// values it writes.
func (uc *MembershipUseCase) Update(ctx context.Context, membership *domain.Membership) (*domain.Membership, error) {
	if err := uc.membershipRepo.Update(ctx, membership); err != nil {
		return nil, err
	}
	uc.invalidate(ctx, membership.ProfileID)
	return membership, nil
}

func (uc *MembershipUseCase) DeleteByID(ctx context.Context, id int) error {
	membership, err := uc.membershipRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := uc.membershipRepo.Delete(ctx, id); err != nil {
		return err
	}
	if err := uc.profileRepo.SetMembershipID(ctx, membership.ProfileID, nil); err != nil {
		uc.logger.Error().Err(err).Int("profile_id", membership.ProfileID).
			Msg("failed to unlink deleted membership from profile")
	}
	uc.invalidate(ctx, membership.ProfileID)
	return nil
}

func (uc *MembershipUseCase) IncrementChatCount(ctx context.Context, profileID int) error {
	if err := uc.membershipRepo.IncrementChatCount(ctx, profileID); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

func (uc *MembershipUseCase) IncrementRequestCount(ctx context.Context, profileID int) error {
	if err := uc.membershipRepo.IncrementRequestCount(ctx, profileID); err != nil {
		return err
	}
	uc.invalidate(ctx, profileID)
	return nil
}

// InvalidateCache drops the cached membership for a profile. Exposed for
// collaborators that mutate counters through their own transactions.
func (uc *MembershipUseCase) InvalidateCache(ctx context.Context, profileID int) error {
	if uc.cache == nil {
		return nil
	}
	return uc.cache.Invalidate(ctx, profileID)
}

// settleTrial ends an expired trial on read. The membership keeps its tier;
// only the trial privileges lapse.
func (uc *MembershipUseCase) settleTrial(ctx context.Context, membership *domain.Membership) (*domain.Membership, error) {
	if !membership.IsTrial || !membership.Expired(uc.now()) {
		return membership, nil
	}
	membership.IsTrial = false
	membership.IsTrialEnded = true
	if err := uc.membershipRepo.Update(ctx, membership); err != nil {
		return nil, fmt.Errorf("failed to end expired trial: %w", err)
	}
	uc.invalidate(ctx, membership.ProfileID)
	uc.logger.Info().Int("membership_id", membership.ID).Msg("trial ended")
	return membership, nil
}

func (uc *MembershipUseCase) invalidate(ctx context.Context, profileID int) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, profileID); err != nil {
		uc.logger.Warn().Err(err).Int("profile_id", profileID).
			Msg("failed to invalidate membership cache")
	}
}
