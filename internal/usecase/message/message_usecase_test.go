package message

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/rs/zerolog"
)

type fakeMessageRepo struct {
	messages map[int]*domain.Message
	nextID   int
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[int]*domain.Message), nextID: 1}
}

func (r *fakeMessageRepo) Create(_ context.Context, message *domain.Message) error {
	message.ID = r.nextID
	r.nextID++
	r.messages[message.ID] = message
	return nil
}

func (r *fakeMessageRepo) GetByID(_ context.Context, id int) (*domain.Message, error) {
	message, ok := r.messages[id]
	if !ok {
		return nil, domain.ErrMessageNotFound
	}
	return message, nil
}

func (r *fakeMessageRepo) GetAll(_ context.Context) ([]*domain.Message, error) {
	all := make([]*domain.Message, 0, len(r.messages))
	for _, message := range r.messages {
		all = append(all, message)
	}
	return all, nil
}

func (r *fakeMessageRepo) GetBySender(_ context.Context, userID int) ([]*domain.Message, error) {
	var sent []*domain.Message
	for id := 1; id < r.nextID; id++ {
		if message, ok := r.messages[id]; ok && message.SenderID == userID {
			sent = append(sent, message)
		}
	}
	return sent, nil
}

func (r *fakeMessageRepo) GetByReceiver(_ context.Context, userID int) ([]*domain.Message, error) {
	var received []*domain.Message
	for id := 1; id < r.nextID; id++ {
		if message, ok := r.messages[id]; ok && message.ReceiverID == userID {
			received = append(received, message)
		}
	}
	return received, nil
}

func (r *fakeMessageRepo) Update(_ context.Context, message *domain.Message) error {
	if _, ok := r.messages[message.ID]; !ok {
		return domain.ErrMessageNotFound
	}
	r.messages[message.ID] = message
	return nil
}

func (r *fakeMessageRepo) Delete(_ context.Context, id int) error {
	if _, ok := r.messages[id]; !ok {
		return domain.ErrMessageNotFound
	}
	delete(r.messages, id)
	return nil
}

type fakeUserRepo struct {
	users map[int]*domain.User
}

func (r *fakeUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id int) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]*domain.User, error) { return nil, nil }
func (r *fakeUserRepo) Update(_ context.Context, _ *domain.User) error   { return nil }
func (r *fakeUserRepo) Delete(_ context.Context, _ int) error            { return nil }

func (r *fakeUserRepo) IncrementLoginAttempts(_ context.Context, _ int) (int, error) {
	return 0, nil
}

func (r *fakeUserRepo) ResetLoginAttempts(_ context.Context, _ int) error { return nil }
func (r *fakeUserRepo) SetVerified(_ context.Context, _ int, _ bool) error {
	return nil
}

type fakeProfileRepo struct {
	byUser map[int][]*domain.Profile
}

func (r *fakeProfileRepo) Create(_ context.Context, _ *domain.Profile) error { return nil }

func (r *fakeProfileRepo) GetByID(_ context.Context, _ int) (*domain.Profile, error) {
	return nil, domain.ErrProfileNotFound
}

func (r *fakeProfileRepo) GetByUserID(_ context.Context, userID int) ([]*domain.Profile, error) {
	return r.byUser[userID], nil
}

func (r *fakeProfileRepo) Update(_ context.Context, _ *domain.Profile) error { return nil }
func (r *fakeProfileRepo) Delete(_ context.Context, _ int) error             { return nil }
func (r *fakeProfileRepo) SetMembershipID(_ context.Context, _ int, _ *int) error {
	return nil
}
func (r *fakeProfileRepo) SetPreferenceID(_ context.Context, _ int, _ *int) error {
	return nil
}
func (r *fakeProfileRepo) Search(_ context.Context, _ map[string]interface{}, _, _ int) ([]*domain.Profile, error) {
	return nil, nil
}

type fakeMembershipService struct {
	memberships map[int]*domain.Membership
	incremented []int
}

func (s *fakeMembershipService) GetByProfileID(_ context.Context, profileID int) (*domain.Membership, error) {
	membership, ok := s.memberships[profileID]
	if !ok {
		return nil, domain.ErrMembershipNotFound
	}
	return membership, nil
}

func (s *fakeMembershipService) IncrementChatCount(_ context.Context, profileID int) error {
	s.incremented = append(s.incremented, profileID)
	return nil
}

type fixture struct {
	uc          *MessageUseCase
	messageRepo *fakeMessageRepo
	users       *fakeUserRepo
	profiles    *fakeProfileRepo
	memberships *fakeMembershipService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	messageRepo := newFakeMessageRepo()
	users := &fakeUserRepo{users: make(map[int]*domain.User)}
	profiles := &fakeProfileRepo{byUser: make(map[int][]*domain.Profile)}
	memberships := &fakeMembershipService{memberships: make(map[int]*domain.Membership)}

	uc := NewMessageUseCase(messageRepo, users, profiles, memberships, zerolog.Nop())
	uc.now = func() time.Time { return time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC) }

	return &fixture{
		uc:          uc,
		messageRepo: messageRepo,
		users:       users,
		profiles:    profiles,
		memberships: memberships,
	}
}

// addMember gives userID a profile with the given membership, plus the user
// record itself.
func (f *fixture) addMember(userID, profileID int, tier domain.MembershipTier, isTrial bool, chatCount int) {
	f.users.users[userID] = &domain.User{ID: userID}
	f.profiles.byUser[userID] = []*domain.Profile{{ID: profileID, UserID: userID}}
	f.memberships.memberships[profileID] = &domain.Membership{
		ProfileID: profileID,
		Tier:      tier,
		IsTrial:   isTrial,
		ChatCount: chatCount,
	}
}

func TestSendMessage_ReceiverMissing(t *testing.T) {
	f := newFixture(t)
	f.addMember(1, 10, domain.TierPremium, false, 0)

	_, err := f.uc.SendMessage(context.Background(), 1, &SendMessageRequest{ReceiverID: 99, Content: "hi"})
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestSendMessage_Gating(t *testing.T) {
	tests := []struct {
		name      string
		tier      domain.MembershipTier
		isTrial   bool
		chatCount int
		wantErr   error
	}{
		{"free user cannot chat", domain.TierFree, false, 0, domain.ErrChatQuotaForbidden},
		{"free trial can chat", domain.TierFree, true, 0, nil},
		{"basic under quota", domain.TierBasic, false, domain.BasicChatLimit - 1, nil},
		{"basic at quota", domain.TierBasic, false, domain.BasicChatLimit, domain.ErrChatQuotaExhausted},
		{"basic trial ignores quota", domain.TierBasic, true, domain.BasicChatLimit, nil},
		{"premium unrestricted", domain.TierPremium, false, domain.BasicChatLimit * 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.addMember(1, 10, tt.tier, tt.isTrial, tt.chatCount)
			f.addMember(2, 20, domain.TierFree, false, 0)

			message, err := f.uc.SendMessage(context.Background(), 1, &SendMessageRequest{ReceiverID: 2, Content: "hello"})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if len(f.messageRepo.messages) != 0 {
					t.Fatal("rejected message must not be stored")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if message.SenderID != 1 || message.ReceiverID != 2 {
				t.Fatalf("wrong message stored: %+v", message)
			}
			if len(f.memberships.incremented) != 1 || f.memberships.incremented[0] != 10 {
				t.Fatalf("expected chat count increment for profile 10, got %v", f.memberships.incremented)
			}
		})
	}
}

func TestSendMessage_SenderWithoutProfile(t *testing.T) {
	f := newFixture(t)
	f.users.users[1] = &domain.User{ID: 1}
	f.addMember(2, 20, domain.TierFree, false, 0)

	_, err := f.uc.SendMessage(context.Background(), 1, &SendMessageRequest{ReceiverID: 2, Content: "hi"})
	if !errors.Is(err, domain.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGetSentMessages_FreeForbidden(t *testing.T) {
	f := newFixture(t)
	f.addMember(1, 10, domain.TierFree, false, 0)

	_, err := f.uc.GetSentMessages(context.Background(), 1)
	if !errors.Is(err, domain.ErrChatQuotaForbidden) {
		t.Fatalf("expected ErrChatQuotaForbidden, got %v", err)
	}
}

func TestGetReceivedMessages_BasicAllowed(t *testing.T) {
	f := newFixture(t)
	f.addMember(1, 10, domain.TierBasic, false, domain.BasicChatLimit)
	f.messageRepo.add(2, 1, "hello")
	f.messageRepo.add(1, 2, "not for us")

	received, err := f.uc.GetReceivedMessages(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(received) != 1 || received[0].SenderID != 2 {
		t.Fatalf("expected exactly the message sent to user 1, got %+v", received)
	}
}

func TestMarkSeen_ReceiverOnly(t *testing.T) {
	f := newFixture(t)
	message := f.messageRepo.add(1, 2, "hello")

	if _, err := f.uc.MarkSeen(context.Background(), 1, message.ID); !errors.Is(err, domain.ErrMessageNotFound) {
		t.Fatalf("sender must not mark a message seen, got %v", err)
	}

	seen, err := f.uc.MarkSeen(context.Background(), 2, message.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !seen.Seen {
		t.Fatal("message not flagged as seen")
	}
}

func (r *fakeMessageRepo) add(senderID, receiverID int, content string) *domain.Message {
	message := &domain.Message{
		ID:         r.nextID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
	}
	r.messages[message.ID] = message
	r.nextID++
	return message
}
