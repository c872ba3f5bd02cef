package domain

import "time"

type UserRole string

const (
	RoleUser  UserRole = "User"
	RoleAdmin UserRole = "Admin"
)

// MaxLoginAttempts locks the account until an admin re-verifies it.
const MaxLoginAttempts = 5

type User struct {
	ID            int       `json:"id" db:"id"`
	Email         string    `json:"email" db:"email"`
	FirstName     string    `json:"first_name" db:"first_name"`
	LastName      string    `json:"last_name" db:"last_name"`
	PhoneNumber   string    `json:"phone_number" db:"phone_number"`
	AddressID     *int      `json:"address_id" db:"address_id"`
	PasswordHash  []byte    `json:"-" db:"password_hash"`
	IsVerified    bool      `json:"is_verified" db:"is_verified"`
	LoginAttempts int       `json:"-" db:"login_attempts"`
	Role          UserRole  `json:"role" db:"role"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) Locked() bool {
	return u.LoginAttempts >= MaxLoginAttempts
}
