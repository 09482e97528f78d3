package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"smartread/internal/models"
	"smartread/internal/repository"
	"smartread/internal/security"
	"smartread/internal/validation"
)

var (
	ErrEmailTaken         = errors.New("email already taken")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSessionNotFound    = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrInvalidRole        = errors.New("invalid role")
)

const resetTokenTTL = 1 * time.Hour

// AuthService handles authentication business logic for email accounts
type AuthService struct {
	userRepo        *repository.UserRepository
	sessionDuration time.Duration
	resetSecret     []byte
}

// NewAuthService creates a new auth service. The secret signs password
// reset tokens, so it must be stable across restarts.
func NewAuthService(userRepo *repository.UserRepository, sessionDuration time.Duration, secret string) *AuthService {
	return &AuthService{
		userRepo:        userRepo,
		sessionDuration: sessionDuration,
		resetSecret:     []byte(secret),
	}
}

// Register creates a new account with the chosen role and logs it in
func (s *AuthService) Register(username, email, password string, role models.Role) (*models.Session, *models.User, error) {
	if err := validation.ValidateName(username); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, nil, err
	}
	if !role.Valid() {
		return nil, nil, ErrInvalidRole
	}

	existingUser, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, nil, ErrEmailTaken
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.CreateUser(username, email, passwordHash, role)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	session, err := s.createSession(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return session, user, nil
}

// Login authenticates a user and creates a session
func (s *AuthService) Login(email, password string) (*models.Session, *models.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, nil, ErrInvalidCredentials
	}

	if !security.CheckPassword(user.PasswordHash, password) {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.createSession(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return session, user, nil
}

func (s *AuthService) createSession(userID int64) (*models.Session, error) {
	sessionID := security.GenerateSessionID()
	expiresAt := time.Now().Add(s.sessionDuration)

	session, err := s.userRepo.CreateSession(sessionID, userID, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return session, nil
}

// ValidateSession checks if a session is valid and returns the associated user
func (s *AuthService) ValidateSession(sessionID string) (*models.User, error) {
	session, err := s.userRepo.GetSession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, ErrSessionNotFound
	}

	if session.IsExpired() {
		_ = s.userRepo.DeleteSession(sessionID)
		return nil, ErrSessionExpired
	}

	user, err := s.userRepo.GetUserByID(session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, ErrSessionNotFound
	}

	return user, nil
}

// Logout invalidates a session
func (s *AuthService) Logout(sessionID string) error {
	if err := s.userRepo.DeleteSession(sessionID); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

// CleanupExpiredSessions removes expired sessions from the database
func (s *AuthService) CleanupExpiredSessions() error {
	if err := s.userRepo.DeleteExpiredSessions(); err != nil {
		return fmt.Errorf("failed to cleanup sessions: %w", err)
	}
	return nil
}

// OAuthLogin authenticates or creates a user from an OAuth provider.
// New accounts default to the guardian role; staff access is granted
// separately.
func (s *AuthService) OAuthLogin(provider, subject, email, name string) (*models.Session, *models.User, error) {
	if provider == "" || subject == "" {
		return nil, nil, errors.New("missing oauth provider information")
	}
	if err := validation.ValidateEmail(email); err != nil {
		return nil, nil, err
	}

	user, err := s.userRepo.GetUserByOAuth(provider, subject)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lookup oauth user: %w", err)
	}

	if user == nil {
		existingUser, err := s.userRepo.GetUserByEmail(email)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to check existing user: %w", err)
		}
		if existingUser != nil {
			if existingUser.OAuthProvider != "" && existingUser.OAuthProvider != provider {
				return nil, nil, ErrEmailTaken
			}
			if err := s.userRepo.LinkOAuthProvider(existingUser.ID, provider, subject); err != nil {
				return nil, nil, fmt.Errorf("failed to link oauth provider: %w", err)
			}
			user = existingUser
		} else {
			if name == "" {
				name = strings.Split(email, "@")[0]
			}
			user, err = s.userRepo.CreateOAuthUser(name, email, models.RoleGuardian, provider, subject)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to create oauth user: %w", err)
			}
		}
	}

	session, err := s.createSession(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return session, user, nil
}

// resetClaims are the signed contents of a password reset token
type resetClaims struct {
	UserID int64 `json:"uid"`
	jwt.RegisteredClaims
}

// RequestPasswordReset issues a signed reset token and emails the reset
// link. Unknown addresses are not revealed to the caller.
func (s *AuthService) RequestPasswordReset(ctx context.Context, emailService *EmailService, email string) error {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil
	}

	// OAuth-only accounts have no password to reset
	if user.OAuthProvider != "" && user.PasswordHash == "" {
		return nil
	}

	token, err := s.issueResetToken(user)
	if err != nil {
		return err
	}

	if emailService != nil && emailService.IsEnabled() {
		if err := emailService.SendPasswordResetEmail(ctx, user.Email, user.Username, token); err != nil {
			return fmt.Errorf("failed to send reset email: %w", err)
		}
	}

	return nil
}

func (s *AuthService) issueResetToken(user *models.User) (string, error) {
	now := time.Now()
	claims := resetClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(resetTokenTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.resetSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}
	return token, nil
}

// ValidatePasswordResetToken parses a reset token and returns the user
// it was issued for.
func (s *AuthService) ValidatePasswordResetToken(token string) (*models.User, error) {
	claims := &resetClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256"}))
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return s.resetSecret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidResetToken
	}

	user, err := s.userRepo.GetUserByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil || user.Email != claims.Subject {
		return nil, ErrInvalidResetToken
	}

	return user, nil
}

// ResetPassword replaces a user's password using a valid reset token
func (s *AuthService) ResetPassword(token, newPassword string) error {
	if err := validation.ValidatePassword(newPassword); err != nil {
		return err
	}

	user, err := s.ValidatePasswordResetToken(token)
	if err != nil {
		return err
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(user.ID, passwordHash); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}
