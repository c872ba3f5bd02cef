package profileview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/rs/zerolog"
)

// fakeViewRepo is an in-memory ProfileViewRepository.
type fakeViewRepo struct {
	views      map[int]*domain.ProfileView
	nextID     int
	counted    int
	deleteErrs map[int]error
}

func newFakeViewRepo() *fakeViewRepo {
	return &fakeViewRepo{
		views:      make(map[int]*domain.ProfileView),
		nextID:     1,
		deleteErrs: make(map[int]error),
	}
}

func (r *fakeViewRepo) add(viewerID, targetID int, viewedAt time.Time) *domain.ProfileView {
	view := &domain.ProfileView{
		ID:              r.nextID,
		ViewerID:        viewerID,
		ViewedProfileAt: targetID,
		ViewedAt:        viewedAt,
	}
	r.views[view.ID] = view
	r.nextID++
	return view
}

func (r *fakeViewRepo) Create(_ context.Context, view *domain.ProfileView) error {
	view.ID = r.nextID
	r.nextID++
	r.views[view.ID] = view
	return nil
}

func (r *fakeViewRepo) CreateWithCount(ctx context.Context, view *domain.ProfileView) error {
	if err := r.Create(ctx, view); err != nil {
		return err
	}
	r.counted++
	return nil
}

func (r *fakeViewRepo) GetByID(_ context.Context, id int) (*domain.ProfileView, error) {
	view, ok := r.views[id]
	if !ok {
		return nil, domain.ErrProfileViewNotFound
	}
	return view, nil
}

func (r *fakeViewRepo) GetAll(_ context.Context) ([]*domain.ProfileView, error) {
	all := make([]*domain.ProfileView, 0, len(r.views))
	for _, view := range r.views {
		all = append(all, view)
	}
	return all, nil
}

func (r *fakeViewRepo) GetByViewedProfile(_ context.Context, profileID int) ([]*domain.ProfileView, error) {
	var matched []*domain.ProfileView
	for id := 1; id < r.nextID; id++ {
		if view, ok := r.views[id]; ok && view.ViewedProfileAt == profileID {
			matched = append(matched, view)
		}
	}
	return matched, nil
}

func (r *fakeViewRepo) GetOlderThan(_ context.Context, cutoff time.Time) ([]*domain.ProfileView, error) {
	var stale []*domain.ProfileView
	for id := 1; id < r.nextID; id++ {
		if view, ok := r.views[id]; ok && view.ViewedAt.Before(cutoff) {
			stale = append(stale, view)
		}
	}
	return stale, nil
}

func (r *fakeViewRepo) Delete(_ context.Context, id int) error {
	if err, ok := r.deleteErrs[id]; ok {
		return err
	}
	if _, ok := r.views[id]; !ok {
		return domain.ErrProfileViewNotFound
	}
	delete(r.views, id)
	return nil
}

type fakeProfileService struct {
	profiles map[int]*domain.Profile
	lookups  []int
}

func (s *fakeProfileService) GetProfileByID(_ context.Context, id int) (*domain.Profile, error) {
	s.lookups = append(s.lookups, id)
	profile, ok := s.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return profile, nil
}

type fakeMembershipService struct {
	memberships map[int]*domain.Membership
	invalidated []int
}

func (s *fakeMembershipService) GetByProfileID(_ context.Context, profileID int) (*domain.Membership, error) {
	membership, ok := s.memberships[profileID]
	if !ok {
		return nil, domain.ErrMembershipNotFound
	}
	return membership, nil
}

func (s *fakeMembershipService) InvalidateCache(_ context.Context, profileID int) error {
	s.invalidated = append(s.invalidated, profileID)
	return nil
}

type fixture struct {
	uc          *ProfileViewUseCase
	viewRepo    *fakeViewRepo
	profiles    *fakeProfileService
	memberships *fakeMembershipService
	now         time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	viewRepo := newFakeViewRepo()
	profiles := &fakeProfileService{profiles: make(map[int]*domain.Profile)}
	memberships := &fakeMembershipService{memberships: make(map[int]*domain.Membership)}

	uc := NewProfileViewUseCase(viewRepo, profiles, memberships, zerolog.Nop())
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	return &fixture{
		uc:          uc,
		viewRepo:    viewRepo,
		profiles:    profiles,
		memberships: memberships,
		now:         now,
	}
}

func (f *fixture) addProfile(id int) {
	f.profiles.profiles[id] = &domain.Profile{ID: id, UserID: id}
}

func (f *fixture) addMembership(profileID int, tier domain.MembershipTier, isTrial bool, viewsCount int) {
	f.memberships.memberships[profileID] = &domain.Membership{
		ID:         profileID,
		ProfileID:  profileID,
		Tier:       tier,
		IsTrial:    isTrial,
		ViewsCount: viewsCount,
		EndsAt:     f.now.Add(30 * 24 * time.Hour),
	}
}

func TestRecordView_SelfView(t *testing.T) {
	f := newFixture(t)

	err := f.uc.RecordView(context.Background(), 7, 7)
	if !errors.Is(err, domain.ErrSelfProfileView) {
		t.Fatalf("expected ErrSelfProfileView, got %v", err)
	}
	if len(f.profiles.lookups) != 0 {
		t.Fatalf("self view should fail before any profile lookup, got %v", f.profiles.lookups)
	}
}

func TestRecordView_TargetCheckedBeforeViewer(t *testing.T) {
	// Neither profile exists; the target must be the one looked up first.
	f := newFixture(t)

	err := f.uc.RecordView(context.Background(), 1, 2)
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if len(f.profiles.lookups) != 1 || f.profiles.lookups[0] != 2 {
		t.Fatalf("expected single lookup of target 2, got %v", f.profiles.lookups)
	}
}

func TestRecordView_ViewerMissing(t *testing.T) {
	f := newFixture(t)
	f.addProfile(2)

	err := f.uc.RecordView(context.Background(), 1, 2)
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
	if len(f.profiles.lookups) != 2 || f.profiles.lookups[1] != 1 {
		t.Fatalf("expected viewer lookup after target, got %v", f.profiles.lookups)
	}
}

func TestRecordView_MembershipMissing(t *testing.T) {
	f := newFixture(t)
	f.addProfile(1)
	f.addProfile(2)

	err := f.uc.RecordView(context.Background(), 1, 2)
	if !errors.Is(err, domain.ErrMembershipNotFound) {
		t.Fatalf("expected ErrMembershipNotFound, got %v", err)
	}
}

func TestRecordView_Gating(t *testing.T) {
	tests := []struct {
		name       string
		tier       domain.MembershipTier
		isTrial    bool
		viewsCount int
		wantErr    error
	}{
		{"free user is forbidden", domain.TierFree, false, 0, domain.ErrViewQuotaForbidden},
		{"free trial is unrestricted", domain.TierFree, true, 0, nil},
		{"basic under limit", domain.TierBasic, false, domain.BasicViewLimit - 1, nil},
		{"basic at limit", domain.TierBasic, false, domain.BasicViewLimit, domain.ErrViewQuotaExhausted},
		{"basic over limit", domain.TierBasic, false, domain.BasicViewLimit + 10, domain.ErrViewQuotaExhausted},
		{"basic trial ignores limit", domain.TierBasic, true, domain.BasicViewLimit, nil},
		{"premium ignores limit", domain.TierPremium, false, domain.BasicViewLimit * 2, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.addProfile(1)
			f.addProfile(2)
			f.addMembership(1, tt.tier, tt.isTrial, tt.viewsCount)

			err := f.uc.RecordView(context.Background(), 1, 2)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(f.viewRepo.views) != 0 {
					t.Fatal("rejected view must not be persisted")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(f.viewRepo.views) != 1 {
				t.Fatalf("expected 1 persisted view, got %d", len(f.viewRepo.views))
			}
			if f.viewRepo.counted != 1 {
				t.Fatal("allowed view must go through the counting insert")
			}
		})
	}
}

func TestRecordView_PersistsAndInvalidates(t *testing.T) {
	f := newFixture(t)
	f.addProfile(1)
	f.addProfile(2)
	f.addMembership(1, domain.TierPremium, false, 0)

	if err := f.uc.RecordView(context.Background(), 1, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view := f.viewRepo.views[1]
	if view == nil {
		t.Fatal("view not persisted")
	}
	if view.ViewerID != 1 || view.ViewedProfileAt != 2 {
		t.Fatalf("wrong view persisted: %+v", view)
	}
	if !view.ViewedAt.Equal(f.now) {
		t.Fatalf("expected ViewedAt %v, got %v", f.now, view.ViewedAt)
	}
	if len(f.memberships.invalidated) != 1 || f.memberships.invalidated[0] != 1 {
		t.Fatalf("expected cache invalidation for viewer, got %v", f.memberships.invalidated)
	}
}

func TestRecordViewDirect_DefaultsTimestamp(t *testing.T) {
	f := newFixture(t)

	dto := &ProfileViewDto{ViewerID: 3, ViewedProfileAt: 4}
	if err := f.uc.RecordViewDirect(context.Background(), dto); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	view := f.viewRepo.views[1]
	if view == nil {
		t.Fatal("view not persisted")
	}
	if view.ViewerID != 3 || view.ViewedProfileAt != 4 {
		t.Fatalf("wrong view persisted: %+v", view)
	}
	if !view.ViewedAt.Equal(f.now) {
		t.Fatalf("expected defaulted ViewedAt %v, got %v", f.now, view.ViewedAt)
	}
	if f.viewRepo.counted != 0 {
		t.Fatal("direct insert must not touch the views counter")
	}
}

func TestGetViewsForProfile_FreeForbidden(t *testing.T) {
	for _, isTrial := range []bool{false, true} {
		f := newFixture(t)
		f.addMembership(2, domain.TierFree, isTrial, 0)
		f.viewRepo.add(1, 2, f.now.Add(-time.Hour))

		_, err := f.uc.GetViewsForProfile(context.Background(), 2)
		if !errors.Is(err, domain.ErrViewQuotaForbidden) {
			t.Fatalf("isTrial=%v: expected ErrViewQuotaForbidden, got %v", isTrial, err)
		}
	}
}

func TestGetViewsForProfile_BasicWindow(t *testing.T) {
	f := newFixture(t)
	f.addMembership(2, domain.TierBasic, false, 0)

	// One view outside the trailing month, seven inside, inserted newest
	// first to prove the result is re-sorted oldest first.
	f.viewRepo.add(10, 2, f.now.Add(-31*24*time.Hour))
	for i := 0; i < 7; i++ {
		f.viewRepo.add(20+i, 2, f.now.Add(-time.Duration(i+1)*24*time.Hour))
	}

	views, err := f.uc.GetViewsForProfile(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 5 {
		t.Fatalf("expected 5 views, got %d", len(views))
	}
	// Oldest of the in-window views first: 7 days ago down to 3 days ago.
	for i, want := range []int{26, 25, 24, 23, 22} {
		if views[i].ViewerID != want {
			t.Fatalf("position %d: expected viewer %d, got %d", i, want, views[i].ViewerID)
		}
	}
	for i := 1; i < len(views); i++ {
		if views[i].ViewedAt.Before(views[i-1].ViewedAt) {
			t.Fatal("views not in ascending ViewedAt order")
		}
	}
}

func TestGetViewsForProfile_PremiumUnfiltered(t *testing.T) {
	f := newFixture(t)
	f.addMembership(2, domain.TierPremium, false, 0)

	f.viewRepo.add(10, 2, f.now.Add(-90*24*time.Hour))
	for i := 0; i < 7; i++ {
		f.viewRepo.add(20+i, 2, f.now.Add(-time.Duration(i+1)*24*time.Hour))
	}
	f.viewRepo.add(99, 3, f.now) // someone else's view

	views, err := f.uc.GetViewsForProfile(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 8 {
		t.Fatalf("expected all 8 views, got %d", len(views))
	}
}

func TestGetViewsForProfile_MembershipMissing(t *testing.T) {
	f := newFixture(t)
	f.viewRepo.add(1, 2, f.now)

	_, err := f.uc.GetViewsForProfile(context.Background(), 2)
	if !errors.Is(err, domain.ErrMembershipNotFound) {
		t.Fatalf("expected ErrMembershipNotFound, got %v", err)
	}
}

func TestPurgeViewsOlderThan_FutureCutoff(t *testing.T) {
	f := newFixture(t)

	purged, err := f.uc.PurgeViewsOlderThan(context.Background(), f.now.Add(time.Hour))
	if !errors.Is(err, domain.ErrInvalidCutoff) {
		t.Fatalf("expected ErrInvalidCutoff, got %v", err)
	}
	if purged != 0 {
		t.Fatalf("expected 0 purged, got %d", purged)
	}
}

func TestPurgeViewsOlderThan_RemovesStale(t *testing.T) {
	f := newFixture(t)
	cutoff := f.now.Add(-180 * 24 * time.Hour)

	f.viewRepo.add(1, 2, cutoff.Add(-time.Hour))
	f.viewRepo.add(3, 4, cutoff.Add(-48*time.Hour))
	kept := f.viewRepo.add(5, 6, cutoff.Add(time.Hour))

	purged, err := f.uc.PurgeViewsOlderThan(context.Background(), cutoff)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if purged != 2 {
		t.Fatalf("expected 2 purged, got %d", purged)
	}
	if len(f.viewRepo.views) != 1 {
		t.Fatalf("expected 1 remaining view, got %d", len(f.viewRepo.views))
	}
	if _, ok := f.viewRepo.views[kept.ID]; !ok {
		t.Fatal("view inside the retention window must survive")
	}
}

func TestPurgeViewsOlderThan_PartialFailure(t *testing.T) {
	f := newFixture(t)
	cutoff := f.now.Add(-180 * 24 * time.Hour)

	ok := f.viewRepo.add(1, 2, cutoff.Add(-time.Hour))
	broken := f.viewRepo.add(3, 4, cutoff.Add(-time.Hour))
	gone := f.viewRepo.add(5, 6, cutoff.Add(-time.Hour))
	f.viewRepo.deleteErrs[broken.ID] = errors.New("connection reset")
	f.viewRepo.deleteErrs[gone.ID] = domain.ErrProfileViewNotFound

	purged, err := f.uc.PurgeViewsOlderThan(context.Background(), cutoff)
	if err == nil {
		t.Fatal("expected joined delete error")
	}
	if purged != 1 {
		t.Fatalf("expected 1 purged, got %d", purged)
	}
	if _, stillThere := f.viewRepo.views[ok.ID]; stillThere {
		t.Fatal("healthy stale view should have been deleted")
	}
}

func TestPurgeViewsOlderThan_CancelledContext(t *testing.T) {
	f := newFixture(t)
	cutoff := f.now.Add(-180 * 24 * time.Hour)
	f.viewRepo.add(1, 2, cutoff.Add(-time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	purged, err := f.uc.PurgeViewsOlderThan(ctx, cutoff)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if purged != 0 {
		t.Fatalf("expected 0 purged, got %d", purged)
	}
}
