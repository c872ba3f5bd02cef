package membership

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/rs/zerolog"
)

type fakeMembershipRepo struct {
	memberships map[int]*domain.Membership
	nextID      int
	updates     int
}

func newFakeMembershipRepo() *fakeMembershipRepo {
	return &fakeMembershipRepo{memberships: make(map[int]*domain.Membership), nextID: 1}
}

func (r *fakeMembershipRepo) Create(_ context.Context, membership *domain.Membership) error {
	membership.ID = r.nextID
	r.nextID++
	r.memberships[membership.ID] = membership
	return nil
}

func (r *fakeMembershipRepo) GetByID(_ context.Context, id int) (*domain.Membership, error) {
	membership, ok := r.memberships[id]
	if !ok {
		return nil, domain.ErrMembershipNotFound
	}
	return membership, nil
}

func (r *fakeMembershipRepo) GetByProfileID(_ context.Context, profileID int) (*domain.Membership, error) {
	for _, membership := range r.memberships {
		if membership.ProfileID == profileID {
			return membership, nil
		}
	}
	return nil, domain.ErrMembershipNotFound
}

func (r *fakeMembershipRepo) Update(_ context.Context, membership *domain.Membership) error {
	if _, ok := r.memberships[membership.ID]; !ok {
		return domain.ErrMembershipNotFound
	}
	r.memberships[membership.ID] = membership
	r.updates++
	return nil
}

func (r *fakeMembershipRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.memberships[id]; !ok {
		return domain.ErrMembershipNotFound
	}
	delete(r.memberships, id)
	return nil
}

func (r *fakeMembershipRepo) IncrementChatCount(_ context.Context, profileID int) error {
	membership, err := r.GetByProfileID(context.Background(), profileID)
	if err != nil {
		return err
	}
	membership.ChatCount++
	return nil
}

func (r *fakeMembershipRepo) IncrementRequestCount(_ context.Context, profileID int) error {
	membership, err := r.GetByProfileID(context.Background(), profileID)
	if err != nil {
		return err
	}
	membership.RequestCount++
	return nil
}

type fakeProfileRepo struct {
	profiles map[int]*domain.Profile
	links    map[int]*int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{
		profiles: make(map[int]*domain.Profile),
		links:    make(map[int]*int),
	}
}

func (r *fakeProfileRepo) Create(_ context.Context, _ *domain.Profile) error { return nil }

func (r *fakeProfileRepo) GetByID(_ context.Context, id int) (*domain.Profile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, _ int) ([]*domain.Profile, error) {
	return nil, nil
}
func (r *fakeProfileRepo) Update(_ context.Context, _ *domain.Profile) error { return nil }
func (r *fakeProfileRepo) Delete(_ context.Context, _ int) error             { return nil }

func (r *fakeProfileRepo) SetMembershipID(_ context.Context, profileID int, membershipID *int) error {
	if _, ok := r.profiles[profileID]; !ok {
		return domain.ErrProfileNotFound
	}
	r.links[profileID] = membershipID
	return nil
}

func (r *fakeProfileRepo) SetPreferenceID(_ context.Context, _ int, _ *int) error {
	return nil
}
func (r *fakeProfileRepo) Search(_ context.Context, _ map[string]interface{}, _, _ int) ([]*domain.Profile, error) {
	return nil, nil
}

type fixture struct {
	uc             *MembershipUseCase
	membershipRepo *fakeMembershipRepo
	profileRepo    *fakeProfileRepo
	now            time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	membershipRepo := newFakeMembershipRepo()
	profileRepo := newFakeProfileRepo()

	uc := NewMembershipUseCase(membershipRepo, profileRepo, nil, zerolog.Nop())
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	return &fixture{uc: uc, membershipRepo: membershipRepo, profileRepo: profileRepo, now: now}
}

func TestAdd_InvalidTier(t *testing.T) {
	f := newFixture(t)
	f.profileRepo.profiles[1] = &domain.Profile{ID: 1}

	_, err := f.uc.Add(context.Background(), &AddMembershipRequest{
		ProfileID: 1,
		Tier:      "GoldUser",
		EndsAt:    f.now.Format(time.RFC3339),
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAdd_BadEndsAt(t *testing.T) {
	f := newFixture(t)
	f.profileRepo.profiles[1] = &domain.Profile{ID: 1}

	_, err := f.uc.Add(context.Background(), &AddMembershipRequest{
		ProfileID: 1,
		Tier:      "BasicUser",
		EndsAt:    "next tuesday",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAdd_ProfileMissing(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Add(context.Background(), &AddMembershipRequest{
		ProfileID: 99,
		Tier:      "BasicUser",
		EndsAt:    f.now.Format(time.RFC3339),
	})
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestAdd_OnePerProfile(t *testing.T) {
	f := newFixture(t)
	f.profileRepo.profiles[1] = &domain.Profile{ID: 1}
	req := &AddMembershipRequest{
		ProfileID: 1,
		Tier:      "BasicUser",
		EndsAt:    f.now.Add(30 * 24 * time.Hour).Format(time.RFC3339),
	}

	created, err := f.uc.Add(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Tier != domain.TierBasic {
		t.Fatalf("expected BasicUser tier, got %q", created.Tier)
	}
	if linked := f.profileRepo.links[1]; linked == nil || *linked != created.ID {
		t.Fatal("membership not linked to its profile")
	}

	if _, err := f.uc.Add(context.Background(), req); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("second membership for the same profile must fail, got %v", err)
	}
}

func TestGetByProfileID_EndsExpiredTrial(t *testing.T) {
	f := newFixture(t)
	f.membershipRepo.memberships[1] = &domain.Membership{
		ID:        1,
		ProfileID: 7,
		Tier:      domain.TierBasic,
		IsTrial:   true,
		EndsAt:    f.now.Add(-time.Hour),
	}

	membership, err := f.uc.GetByProfileID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if membership.IsTrial {
		t.Fatal("expired trial must lose trial status")
	}
	if !membership.IsTrialEnded {
		t.Fatal("expired trial must be flagged as ended")
	}
	if membership.Tier != domain.TierBasic {
		t.Fatalf("tier must survive trial expiry, got %q", membership.Tier)
	}
	if f.membershipRepo.updates != 1 {
		t.Fatalf("trial settlement must be persisted, got %d updates", f.membershipRepo.updates)
	}
}

func TestGetByProfileID_LiveTrialUntouched(t *testing.T) {
	f := newFixture(t)
	f.membershipRepo.memberships[1] = &domain.Membership{
		ID:        1,
		ProfileID: 7,
		Tier:      domain.TierFree,
		IsTrial:   true,
		EndsAt:    f.now.Add(time.Hour),
	}

	membership, err := f.uc.GetByProfileID(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !membership.IsTrial || membership.IsTrialEnded {
		t.Fatalf("live trial must be untouched: %+v", membership)
	}
	if f.membershipRepo.updates != 0 {
		t.Fatal("live trial must not trigger a write")
	}
}

func TestDeleteByID_UnlinksProfile(t *testing.T) {
	f := newFixture(t)
	f.profileRepo.profiles[1] = &domain.Profile{ID: 1}
	created, err := f.uc.Add(context.Background(), &AddMembershipRequest{
		ProfileID: 1,
		Tier:      "PremiumUser",
		EndsAt:    f.now.Add(30 * 24 * time.Hour).Format(time.RFC3339),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := f.uc.DeleteByID(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.profileRepo.links[1] != nil {
		t.Fatal("profile must be unlinked after membership delete")
	}
	if _, err := f.uc.GetByID(context.Background(), created.ID); !errors.Is(err, domain.ErrMembershipNotFound) {
		t.Fatalf("expected ErrMembershipNotFound after delete, got %v", err)
	}
}

func TestIncrementCounts(t *testing.T) {
	f := newFixture(t)
	f.membershipRepo.memberships[1] = &domain.Membership{ID: 1, ProfileID: 7, Tier: domain.TierBasic}

	if err := f.uc.IncrementChatCount(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.uc.IncrementRequestCount(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	membership := f.membershipRepo.memberships[1]
	if membership.ChatCount != 1 || membership.RequestCount != 1 {
		t.Fatalf("counters not incremented: %+v", membership)
	}
}
