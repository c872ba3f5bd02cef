package domain

import "time"

// ProfileView records one profile looking at another. ViewedProfileAt is the
// target profile id; the name is awkward but it is the wire and column
// contract carried over from the original data model.
type ProfileView struct {
	ID              int       `json:"id" db:"id"`
	ViewerID        int       `json:"viewer_id" db:"viewer_id"`
	ViewedProfileAt int       `json:"viewed_profile_at" db:"viewed_profile_at"`
	ViewedAt        time.Time `json:"viewed_at" db:"viewed_at"`
}
