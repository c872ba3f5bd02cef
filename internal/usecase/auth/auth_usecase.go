package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type AuthUseCase struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	jwtSecret   string
	tokenTTL    time.Duration
	logger      zerolog.Logger
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// RegisterRequest represents a new account.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email,max=256"`
	FirstName   string `json:"first_name" binding:"required,max=50"`
	LastName    string `json:"last_name" binding:"required,max=50"`
	PhoneNumber string `json:"phone_number" binding:"required,len=10"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// Claims carried in the access token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Register creates an unverified account.
func (uc *AuthUseCase) Register(ctx context.Context, req *RegisterRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.logger.Info().Int("user_id", user.ID).Msg("user registered")
	return user, nil
}

// Login checks credentials and issues a session-backed JWT. Failed attempts
// are counted; once the account locks only an admin re-verification resets it.
func (uc *AuthUseCase) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Locked() {
		return nil, domain.ErrAccountLocked
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(req.Password)); err != nil {
		attempts, incErr := uc.userRepo.IncrementLoginAttempts(ctx, user.ID)
		if incErr != nil {
			uc.logger.Error().Err(incErr).Int("user_id", user.ID).
				Msg("failed to count login attempt")
		}
		if attempts >= domain.MaxLoginAttempts {
			return nil, domain.ErrAccountLocked
		}
		return nil, domain.ErrInvalidCredentials
	}

	if user.LoginAttempts > 0 {
		if err := uc.userRepo.ResetLoginAttempts(ctx, user.ID); err != nil {
			uc.logger.Error().Err(err).Int("user_id", user.ID).
				Msg("failed to reset login attempts")
		}
	}

	token, expiresAt, err := uc.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Logout revokes the session behind the token id.
func (uc *AuthUseCase) Logout(ctx context.Context, tokenID string) error {
	return uc.sessionRepo.Delete(ctx, tokenID)
}

// Me returns the authenticated user.
func (uc *AuthUseCase) Me(ctx context.Context, userID int) (*domain.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

// VerifyToken validates the JWT signature and that its session is still
// live, returning the claims the middleware places in the request context.
func (uc *AuthUseCase) VerifyToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := uc.sessionRepo.Get(ctx, claims.ID); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return claims, nil
}

// ListUsers is an admin operation.
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return uc.userRepo.GetAll(ctx)
}

// VerifyUser marks a user verified and clears any login lock. Admin only.
func (uc *AuthUseCase) VerifyUser(ctx context.Context, userID int) error {
	if err := uc.userRepo.SetVerified(ctx, userID, true); err != nil {
		return err
	}
	return uc.userRepo.ResetLoginAttempts(ctx, userID)
}

func (uc *AuthUseCase) issueToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(uc.tokenTTL)
	tokenID := uuid.NewString()

	claims := &Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   strconv.Itoa(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	session := &repository.Session{
		TokenID:  tokenID,
		UserID:   user.ID,
		Role:     user.Role,
		IssuedAt: now,
	}
	if err := uc.sessionRepo.Save(ctx, session, uc.tokenTTL); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to save session: %w", err)
	}
	return token, expiresAt, nil
}
