package message

import (
	"context"
	"fmt"
	"time"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/rs/zerolog"
)

// MembershipService is the slice of the membership usecase messaging needs.
type MembershipService interface {
	GetByProfileID(ctx context.Context, profileID int) (*domain.Membership, error)
	IncrementChatCount(ctx context.Context, profileID int) error
}

type MessageUseCase struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	memberships MembershipService
	logger      zerolog.Logger
	now         func() time.Time
}

func NewMessageUseCase(
	messageRepo repository.MessageRepository,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	memberships MembershipService,
	logger zerolog.Logger,
) *MessageUseCase {
	return &MessageUseCase{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		profileRepo: profileRepo,
		memberships: memberships,
		logger:      logger,
		now:         time.Now,
	}
}

type SendMessageRequest struct {
	ReceiverID int    `json:"receiver_id" binding:"required"`
	Content    string `json:"content" binding:"required,max=2000"`
}

// SendMessage sends a message, gated by the sender's membership tier the
// same way profile views are: free tiers cannot chat at all, basic tiers
// carry a chat quota, premium and trial are unrestricted.
func (uc *MessageUseCase) SendMessage(ctx context.Context, senderID int, req *SendMessageRequest) (*domain.Message, error) {
	if _, err := uc.userRepo.GetByID(ctx, req.ReceiverID); err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.GetByID(ctx, senderID); err != nil {
		return nil, err
	}

	profileID, membership, err := uc.membershipForUser(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if membership.Gated() {
		switch membership.Tier {
		case domain.TierFree:
			return nil, domain.ErrChatQuotaForbidden
		case domain.TierBasic:
			if membership.ChatCount >= domain.BasicChatLimit {
				return nil, domain.ErrChatQuotaExhausted
			}
		}
	}

	message := &domain.Message{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		SentAt:     uc.now(),
	}
	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}
	if err := uc.memberships.IncrementChatCount(ctx, profileID); err != nil {
		uc.logger.Error().Err(err).Int("profile_id", profileID).
			Msg("message stored but chat count not incremented")
	}
	return message, nil
}

func (uc *MessageUseCase) GetMessageByID(ctx context.Context, id int) (*domain.Message, error) {
	return uc.messageRepo.GetByID(ctx, id)
}

func (uc *MessageUseCase) GetAllMessages(ctx context.Context) ([]*domain.Message, error) {
	return uc.messageRepo.GetAll(ctx)
}

// GetSentMessages lists what userID sent. Reading your own conversations is
// itself a plan privilege, so the user's membership is checked here too.
func (uc *MessageUseCase) GetSentMessages(ctx context.Context, userID int) ([]*domain.Message, error) {
	if err := uc.requireChatAccess(ctx, userID); err != nil {
		return nil, err
	}
	return uc.messageRepo.GetBySender(ctx, userID)
}

func (uc *MessageUseCase) GetReceivedMessages(ctx context.Context, userID int) ([]*domain.Message, error) {
	if err := uc.requireChatAccess(ctx, userID); err != nil {
		return nil, err
	}
	return uc.messageRepo.GetByReceiver(ctx, userID)
}

// MarkSeen flags a received message as read by its receiver.
func (uc *MessageUseCase) MarkSeen(ctx context.Context, userID, messageID int) (*domain.Message, error) {
	message, err := uc.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if message.ReceiverID != userID {
		return nil, domain.ErrMessageNotFound
	}
	message.Seen = true
	if err := uc.messageRepo.Update(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (uc *MessageUseCase) DeleteMessageByID(ctx context.Context, id int) error {
	return uc.messageRepo.Delete(ctx, id)
}

func (uc *MessageUseCase) requireChatAccess(ctx context.Context, userID int) error {
	_, membership, err := uc.membershipForUser(ctx, userID)
	if err != nil {
		return err
	}
	if membership.Gated() && membership.Tier == domain.TierFree {
		return domain.ErrChatQuotaForbidden
	}
	return nil
}

// membershipForUser resolves the membership gating a user's messaging via
// the first profile the user manages.
func (uc *MessageUseCase) membershipForUser(ctx context.Context, userID int) (int, *domain.Membership, error) {
	profiles, err := uc.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return 0, nil, err
	}
	if len(profiles) == 0 {
		return 0, nil, domain.ErrProfileNotFound
	}
	profileID := profiles[0].ID
	membership, err := uc.memberships.GetByProfileID(ctx, profileID)
	if err != nil {
		return 0, nil, err
	}
	return profileID, membership, nil
}
