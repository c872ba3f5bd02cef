package domain

import "time"

type MatchRequest struct {
	ID                int       `json:"id" db:"id"`
	SentProfileID     int       `json:"sent_profile_id" db:"sent_profile_id"`
	ReceivedProfileID int       `json:"received_profile_id" db:"received_profile_id"`
	Level             int       `json:"level" db:"level"`
	ProfileOneLike    bool      `json:"profile_one_like" db:"profile_one_like"`
	ProfileTwoLike    bool      `json:"profile_two_like" db:"profile_two_like"`
	IsRejected        bool      `json:"is_rejected" db:"is_rejected"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

func (m *MatchRequest) HasProfile(profileID int) bool {
	return m.SentProfileID == profileID || m.ReceivedProfileID == profileID
}

func (m *MatchRequest) OtherProfileID(profileID int) (int, bool) {
	if m.SentProfileID == profileID {
		return m.ReceivedProfileID, true
	}
	if m.ReceivedProfileID == profileID {
		return m.SentProfileID, true
	}
	return 0, false
}

// Accepted means both sides liked and nobody rejected.
func (m *MatchRequest) Accepted() bool {
	return m.ProfileOneLike && m.ProfileTwoLike && !m.IsRejected
}
