package domain

import "time"

// Report is an abuse report filed by a user against a profile.
type Report struct {
	ID           int       `json:"id" db:"id"`
	ProfileID    int       `json:"profile_id" db:"profile_id"`
	ReportedByID int       `json:"reported_by_id" db:"reported_by_id"`
	Reason       string    `json:"reason" db:"reason"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
