package domain

import (
	"fmt"
	"time"
)

// MembershipTier is the closed set of membership levels. It is stored as
// text in the memberships table; ParseMembershipTier guards the boundary so
// business logic never compares raw strings.
type MembershipTier string

const (
	TierFree    MembershipTier = "FreeUser"
	TierBasic   MembershipTier = "BasicUser"
	TierPremium MembershipTier = "PremiumUser"
)

// Per-tier quotas for the BasicUser tier. FreeUser is denied outright and
// PremiumUser is unrestricted, so only the basic tier carries numbers.
const (
	BasicViewLimit    = 50
	BasicChatLimit    = 100
	BasicRequestLimit = 100
)

func ParseMembershipTier(s string) (MembershipTier, error) {
	switch MembershipTier(s) {
	case TierFree, TierBasic, TierPremium:
		return MembershipTier(s), nil
	}
	return "", fmt.Errorf("unknown membership tier %q", s)
}

func (t MembershipTier) String() string {
	return string(t)
}

func (t MembershipTier) Valid() bool {
	_, err := ParseMembershipTier(string(t))
	return err == nil
}

type Membership struct {
	ID           int            `json:"id" db:"id"`
	ProfileID    int            `json:"profile_id" db:"profile_id"`
	Tier         MembershipTier `json:"tier" db:"tier"`
	Description  *string        `json:"description" db:"description"`
	EndsAt       time.Time      `json:"ends_at" db:"ends_at"`
	IsTrial      bool           `json:"is_trial" db:"is_trial"`
	IsTrialEnded bool           `json:"is_trial_ended" db:"is_trial_ended"`
	ViewsCount   int            `json:"views_count" db:"views_count"`
	ChatCount    int            `json:"chat_count" db:"chat_count"`
	RequestCount int            `json:"request_count" db:"request_count"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// Expired reports whether the membership period has lapsed.
func (m *Membership) Expired(now time.Time) bool {
	return now.After(m.EndsAt)
}

// Gated reports whether tier quotas apply at all. Trial memberships are
// unrestricted regardless of tier until the trial ends.
func (m *Membership) Gated() bool {
	return !m.IsTrial
}
