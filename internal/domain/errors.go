package domain

import "errors"

// Not-found family, one sentinel per entity. Repositories translate
// sql.ErrNoRows into these so handlers never see driver errors.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrMembershipNotFound   = errors.New("membership not found")
	ErrProfileViewNotFound  = errors.New("profile view not found")
	ErrMessageNotFound      = errors.New("message not found")
	ErrMatchRequestNotFound = errors.New("match request not found")
	ErrPreferenceNotFound   = errors.New("preference not found")
	ErrAddressNotFound      = errors.New("address not found")
	ErrReportNotFound       = errors.New("report not found")
)

// Client input errors.
var (
	ErrSelfProfileView  = errors.New("cannot view your own profile")
	ErrSelfMatchRequest = errors.New("cannot send a match request to your own profile")
	ErrInvalidCutoff    = errors.New("cleanup cutoff must not be in the future")
	ErrInvalidInput     = errors.New("invalid input")
	ErrEmailTaken       = errors.New("email already registered")
)

// Access-control errors. Forbidden means the tier lacks the capability
// entirely; exhausted means the tier has it but hit its numeric limit.
// Clients render "upgrade" vs "blocked" messaging off this distinction.
var (
	ErrViewQuotaForbidden    = errors.New("free tier cannot view profiles")
	ErrViewQuotaExhausted    = errors.New("profile view limit reached")
	ErrChatQuotaForbidden    = errors.New("free tier cannot use messaging")
	ErrChatQuotaExhausted    = errors.New("message limit reached")
	ErrRequestQuotaForbidden = errors.New("free tier cannot send match requests")
	ErrRequestQuotaExhausted = errors.New("match request limit reached")
)

// Auth errors.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountLocked      = errors.New("account locked after too many failed logins")
	ErrUserNotVerified    = errors.New("user is not verified")
)
