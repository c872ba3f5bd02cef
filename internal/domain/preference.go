package domain

import "time"

type Preference struct {
	ID              int       `json:"id" db:"id"`
	PreferenceForID int       `json:"preference_for_id" db:"preference_for_id"`
	Gender          *string   `json:"gender" db:"gender"`
	MotherTongue    *string   `json:"mother_tongue" db:"mother_tongue"`
	Religion        *string   `json:"religion" db:"religion"`
	Education       *string   `json:"education" db:"education"`
	Occupation      *string   `json:"occupation" db:"occupation"`
	MinHeight       *int      `json:"min_height" db:"min_height"`
	MaxHeight       *int      `json:"max_height" db:"max_height"`
	MinAge          *int      `json:"min_age" db:"min_age"`
	MaxAge          *int      `json:"max_age" db:"max_age"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}
