package profileview

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog"
)

// recentViewWindow and recentViewLimit bound what a BasicUser sees of their
// own visitors: the trailing month, oldest first, five entries.
const (
	recentViewWindow = 30 * 24 * time.Hour
	recentViewLimit  = 5
)

// ProfileService is the slice of the profile usecase the gating engine needs:
// existence checks only.
type ProfileService interface {
	GetProfileByID(ctx context.Context, id int) (*domain.Profile, error)
}

// MembershipService resolves the membership that gates a profile's actions.
type MembershipService interface {
	GetByProfileID(ctx context.Context, profileID int) (*domain.Membership, error)
	InvalidateCache(ctx context.Context, profileID int) error
}

// ProfileViewDto is the wire shape for a view record.
type ProfileViewDto struct {
	ProfileViewID   int       `json:"profile_view_id"`
	ViewerID        int       `json:"viewer_id" binding:"required"`
	ViewedProfileAt int       `json:"viewed_profile_at" binding:"required"`
	ViewedAt        time.Time `json:"viewed_at"`
}

type ProfileViewUseCase struct {
	viewRepo       repository.ProfileViewRepository
	profileService ProfileService
	memberships    MembershipService
	logger         zerolog.Logger
	now            func() time.Time
}

func NewProfileViewUseCase(
	viewRepo repository.ProfileViewRepository,
	profileService ProfileService,
	memberships MembershipService,
	logger zerolog.Logger,
) *ProfileViewUseCase {
	return &ProfileViewUseCase{
		viewRepo:       viewRepo,
		profileService: profileService,
		memberships:    memberships,
		logger:         logger,
		now:            time.Now,
	}
}

// RecordView records that viewerProfileID looked at targetProfileID, subject
// to the viewer's membership tier. Validation order is part of the contract:
// self-view first, then target existence, then viewer existence, then
// membership.
func (uc *ProfileViewUseCase) RecordView(ctx context.Context, viewerProfileID, targetProfileID int) error {
	if viewerProfileID == targetProfileID {
		return domain.ErrSelfProfileView
	}
	if _, err := uc.profileService.GetProfileByID(ctx, targetProfileID); err != nil {
		return err
	}
	if _, err := uc.profileService.GetProfileByID(ctx, viewerProfileID); err != nil {
		return err
	}

	membership, err := uc.memberships.GetByProfileID(ctx, viewerProfileID)
	if err != nil {
		return err
	}

	if membership.Gated() {
		switch membership.Tier {
		case domain.TierFree:
			return domain.ErrViewQuotaForbidden
		case domain.TierBasic:
			if membership.ViewsCount >= domain.BasicViewLimit {
				return domain.ErrViewQuotaExhausted
			}
		}
	}

	view := &domain.ProfileView{
		ViewerID:        viewerProfileID,
		ViewedProfileAt: targetProfileID,
		ViewedAt:        uc.now(),
	}
	if err := uc.viewRepo.CreateWithCount(ctx, view); err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}

	if err := uc.memberships.InvalidateCache(ctx, viewerProfileID); err != nil {
		uc.logger.Warn().Err(err).Int("profile_id", viewerProfileID).
			Msg("failed to invalidate membership cache after view")
	}

	uc.logger.Debug().
		Int("viewer_id", viewerProfileID).
		Int("target_id", targetProfileID).
		Msg("profile view recorded")
	return nil
}

// RecordViewDirect persists a view exactly as given, with no gating and no
// counter change. Reserved for administrative import paths.
func (uc *ProfileViewUseCase) RecordViewDirect(ctx context.Context, dto *ProfileViewDto) error {
	var view domain.ProfileView
	if err := copier.Copy(&view, dto); err != nil {
		return fmt.Errorf("failed to map view dto: %w", err)
	}
	view.ID = 0
	if view.ViewedAt.IsZero() {
		view.ViewedAt = uc.now()
	}
	return uc.viewRepo.Create(ctx, &view)
}

func (uc *ProfileViewUseCase) GetViewByID(ctx context.Context, id int) (*ProfileViewDto, error) {
	view, err := uc.viewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDto(view)
}

// GetViewsForProfile lists who viewed targetProfileID. The membership checked
// here is the target's own, not the viewer's: seeing your visitors is a
// privilege of your plan. BasicUser gets the trailing month only, oldest
// first, capped at five; premium and trial get everything.
func (uc *ProfileViewUseCase) GetViewsForProfile(ctx context.Context, targetProfileID int) ([]*ProfileViewDto, error) {
	all, err := uc.viewRepo.GetByViewedProfile(ctx, targetProfileID)
	if err != nil {
		return nil, err
	}

	membership, err := uc.memberships.GetByProfileID(ctx, targetProfileID)
	if err != nil {
		return nil, err
	}
	if membership.Tier == domain.TierFree {
		return nil, domain.ErrViewQuotaForbidden
	}

	if membership.Tier == domain.TierBasic {
		since := uc.now().Add(-recentViewWindow)
		recent := make([]*domain.ProfileView, 0, len(all))
		for _, view := range all {
			if view.ViewedAt.After(since) {
				recent = append(recent, view)
			}
		}
		sort.Slice(recent, func(i, j int) bool {
			return recent[i].ViewedAt.Before(recent[j].ViewedAt)
		})
		if len(recent) > recentViewLimit {
			recent = recent[:recentViewLimit]
		}
		all = recent
	}

	dtos := make([]*ProfileViewDto, 0, len(all))
	for _, view := range all {
		dto, err := toDto(view)
		if err != nil {
			return nil, err
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (uc *ProfileViewUseCase) DeleteViewByID(ctx context.Context, id int) error {
	return uc.viewRepo.Delete(ctx, id)
}

// PurgeViewsOlderThan deletes every view recorded before cutoff. Cutoffs in
// the future are rejected; a cutoff less than a day old is suspicious for a
// cleanup job but allowed. Individual delete failures do not abort the sweep:
// the sweep continues and the failures come back joined, alongside the count
// of views that were removed.
func (uc *ProfileViewUseCase) PurgeViewsOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	now := uc.now()
	if cutoff.After(now) {
		return 0, domain.ErrInvalidCutoff
	}
	if now.Sub(cutoff) < 24*time.Hour {
		uc.logger.Warn().Time("cutoff", cutoff).
			Msg("purge cutoff is less than a day old, deleting very recent views")
	}

	stale, err := uc.viewRepo.GetOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale views: %w", err)
	}

	purged := 0
	var errs []error
	for _, view := range stale {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := uc.viewRepo.Delete(ctx, view.ID); err != nil {
			// Already-gone rows count as purged on a concurrent sweep.
			if errors.Is(err, domain.ErrProfileViewNotFound) {
				continue
			}
			uc.logger.Error().Err(err).Int("view_id", view.ID).
				Msg("failed to delete stale view, continuing sweep")
			errs = append(errs, fmt.Errorf("view %d: %w", view.ID, err))
			continue
		}
		purged++
	}

	return purged, errors.Join(errs...)
}

func toDto(view *domain.ProfileView) (*ProfileViewDto, error) {
	var dto ProfileViewDto
	if err := copier.Copy(&dto, view); err != nil {
		return nil, fmt.Errorf("failed to map view: %w", err)
	}
	dto.ProfileViewID = view.ID
	return &dto, nil
}
