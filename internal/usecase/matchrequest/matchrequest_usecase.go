package matchrequest

import (
	"context"
	"errors"
	"fmt"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/rs/zerolog"
)

// MembershipService is the slice of the membership usecase match requests need.
type MembershipService interface {
	GetByProfileID(ctx context.Context, profileID int) (*domain.Membership, error)
	IncrementRequestCount(ctx context.Context, profileID int) error
}

type MatchRequestUseCase struct {
	requestRepo repository.MatchRequestRepository
	profileRepo repository.ProfileRepository
	memberships MembershipService
	logger      zerolog.Logger
}

func NewMatchRequestUseCase(
	requestRepo repository.MatchRequestRepository,
	profileRepo repository.ProfileRepository,
	memberships MembershipService,
	logger zerolog.Logger,
) *MatchRequestUseCase {
	return &MatchRequestUseCase{
		requestRepo: requestRepo,
		profileRepo: profileRepo,
		memberships: memberships,
		logger:      logger,
	}
}

type SendRequestRequest struct {
	ReceivedProfileID int `json:"received_profile_id" binding:"required"`
	Level             int `json:"level" binding:"omitempty,min=1,max=7"`
}

// SendRequest creates a match request from one profile to another under the
// same tier rules that gate profile views: free denied, basic quota-limited,
// premium and trial unrestricted.
func (uc *MatchRequestUseCase) SendRequest(ctx context.Context, sentProfileID int, req *SendRequestRequest) (*domain.MatchRequest, error) {
	if sentProfileID == req.ReceivedProfileID {
		return nil, domain.ErrSelfMatchRequest
	}
	if _, err := uc.profileRepo.GetByID(ctx, req.ReceivedProfileID); err != nil {
		return nil, err
	}
	if _, err := uc.profileRepo.GetByID(ctx, sentProfileID); err != nil {
		return nil, err
	}

	membership, err := uc.memberships.GetByProfileID(ctx, sentProfileID)
	if err != nil {
		return nil, err
	}
	if membership.Gated() {
		switch membership.Tier {
		case domain.TierFree:
			return nil, domain.ErrRequestQuotaForbidden
		case domain.TierBasic:
			if membership.RequestCount >= domain.BasicRequestLimit {
				return nil, domain.ErrRequestQuotaExhausted
			}
		}
	}

	if existing, err := uc.requestRepo.GetByProfiles(ctx, sentProfileID, req.ReceivedProfileID); err == nil && existing != nil {
		return existing, nil
	} else if err != nil && !errors.Is(err, domain.ErrMatchRequestNotFound) {
		return nil, err
	}

	request := &domain.MatchRequest{
		SentProfileID:     sentProfileID,
		ReceivedProfileID: req.ReceivedProfileID,
		Level:             req.Level,
		ProfileOneLike:    true,
	}
	if err := uc.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("failed to create match request: %w", err)
	}
	if err := uc.memberships.IncrementRequestCount(ctx, sentProfileID); err != nil {
		uc.logger.Error().Err(err).Int("profile_id", sentProfileID).
			Msg("match request stored but request count not incremented")
	}
	return request, nil
}

func (uc *MatchRequestUseCase) GetByID(ctx context.Context, id int) (*domain.MatchRequest, error) {
	return uc.requestRepo.GetByID(ctx, id)
}

func (uc *MatchRequestUseCase) GetSent(ctx context.Context, profileID int) ([]*domain.MatchRequest, error) {
	if _, err := uc.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}
	return uc.requestRepo.GetSent(ctx, profileID)
}

func (uc *MatchRequestUseCase) GetReceived(ctx context.Context, profileID int) ([]*domain.MatchRequest, error) {
	if _, err := uc.profileRepo.GetByID(ctx, profileID); err != nil {
		return nil, err
	}
	return uc.requestRepo.GetReceived(ctx, profileID)
}

// Accept marks the receiving side's like. Only the receiving profile may
// accept.
func (uc *MatchRequestUseCase) Accept(ctx context.Context, receiverProfileID, requestID int) (*domain.MatchRequest, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.ReceivedProfileID != receiverProfileID {
		return nil, domain.ErrMatchRequestNotFound
	}
	request.ProfileTwoLike = true
	request.IsRejected = false
	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (uc *MatchRequestUseCase) Reject(ctx context.Context, receiverProfileID, requestID int) (*domain.MatchRequest, error) {
	request, err := uc.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.ReceivedProfileID != receiverProfileID {
		return nil, domain.ErrMatchRequestNotFound
	}
	request.ProfileTwoLike = false
	request.IsRejected = true
	if err := uc.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (uc *MatchRequestUseCase) DeleteByID(ctx context.Context, id int) error {
	return uc.requestRepo.Delete(ctx, id)
}
