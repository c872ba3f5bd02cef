package domain

import "time"

type Profile struct {
	ID                int       `json:"id" db:"id"`
	UserID            int       `json:"user_id" db:"user_id"`
	ManagedByRelation string    `json:"managed_by_relation" db:"managed_by_relation"`
	DateOfBirth       time.Time `json:"date_of_birth" db:"date_of_birth"`
	Gender            string    `json:"gender" db:"gender"`
	Education         *string   `json:"education" db:"education"`
	Occupation        *string   `json:"occupation" db:"occupation"`
	AnnualIncome      *int      `json:"annual_income" db:"annual_income"`
	MaritalStatus     *string   `json:"marital_status" db:"marital_status"`
	MotherTongue      *string   `json:"mother_tongue" db:"mother_tongue"`
	Religion          *string   `json:"religion" db:"religion"`
	Ethnicity         *string   `json:"ethnicity" db:"ethnicity"`
	Bio               *string   `json:"bio" db:"bio"`
	Height            *int      `json:"height" db:"height"`
	Weight            *int      `json:"weight" db:"weight"`
	MembershipID      *int      `json:"membership_id" db:"membership_id"`
	PreferenceID      *int      `json:"preference_id" db:"preference_id"`
	CreatedAt         time.Time `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

func (p *Profile) Age(now time.Time) int {
	age := now.Year() - p.DateOfBirth.Year()
	if now.YearDay() < p.DateOfBirth.YearDay() {
		age--
	}
	return age
}
