package service

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"smartread/internal/database"
	"smartread/internal/models"
	"smartread/internal/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return NewAuthService(repository.NewUserRepository(db), time.Hour, "test-reset-secret")
}

func TestRegisterLoginSessionLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc := newAuthService(t)

	session, user, err := svc.Register("Pat Doe", "pat@example.com", "password123", models.RoleGuardian)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if user.Role != models.RoleGuardian {
		t.Errorf("registered role = %v, want guardian", user.Role)
	}
	if session.UserID != user.ID {
		t.Errorf("session user = %d, want %d", session.UserID, user.ID)
	}

	// A fresh lookup of the session restores the same identity
	restored, err := svc.ValidateSession(session.ID)
	if err != nil {
		t.Fatalf("ValidateSession failed: %v", err)
	}
	if restored.ID != user.ID || restored.Email != user.Email || restored.Role != user.Role {
		t.Errorf("restored identity %+v does not match registered user %+v", restored, user)
	}

	// Logging in issues a new session for the same user
	session2, user2, err := svc.Login("pat@example.com", "password123")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if user2.ID != user.ID {
		t.Errorf("login returned user %d, want %d", user2.ID, user.ID)
	}
	if session2.ID == session.ID {
		t.Error("login reused the registration session id")
	}

	// After logout the session no longer resolves
	if err := svc.Logout(session.ID); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	if _, err := svc.ValidateSession(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("ValidateSession after logout = %v, want ErrSessionNotFound", err)
	}
	// The other session is unaffected
	if _, err := svc.ValidateSession(session2.ID); err != nil {
		t.Errorf("ValidateSession on live session failed: %v", err)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc := newAuthService(t)

	if _, _, err := svc.Register("Pat Doe", "pat@example.com", "password123", models.RoleAdmin); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if _, _, err := svc.Register("Other Pat", "pat@example.com", "password456", models.RoleGuardian); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("duplicate Register = %v, want ErrEmailTaken", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc := newAuthService(t)

	if _, _, err := svc.Register("Pat Doe", "pat@example.com", "password123", models.RoleGuardian); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, _, err := svc.Login("pat@example.com", "wrongpassword"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with wrong password = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login("nobody@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login with unknown email = %v, want ErrInvalidCredentials", err)
	}
}

func TestExpiredSessionIsRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := db.RunMigrations("../../migrations"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	// Sessions that expire immediately
	svc := NewAuthService(repository.NewUserRepository(db), -time.Minute, "test-reset-secret")

	session, _, err := svc.Register("Pat Doe", "pat@example.com", "password123", models.RoleGuardian)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := svc.ValidateSession(session.ID); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("ValidateSession on expired session = %v, want ErrSessionExpired", err)
	}
	// Expired sessions are deleted on sight
	if _, err := svc.ValidateSession(session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second ValidateSession = %v, want ErrSessionNotFound", err)
	}
}

func TestPasswordResetTokenRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc := newAuthService(t)

	_, user, err := svc.Register("Pat Doe", "pat@example.com", "password123", models.RoleGuardian)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	token, err := svc.issueResetToken(user)
	if err != nil {
		t.Fatalf("issueResetToken failed: %v", err)
	}

	got, err := svc.ValidatePasswordResetToken(token)
	if err != nil {
		t.Fatalf("ValidatePasswordResetToken failed: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("token resolved to user %d, want %d", got.ID, user.ID)
	}

	if err := svc.ResetPassword(token, "newpassword456"); err != nil {
		t.Fatalf("ResetPassword failed: %v", err)
	}
	if _, _, err := svc.Login("pat@example.com", "password123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("old password still accepted after reset")
	}
	if _, _, err := svc.Login("pat@example.com", "newpassword456"); err != nil {
		t.Errorf("Login with new password failed: %v", err)
	}
}

func TestPasswordResetTokenRejectsTampering(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc := newAuthService(t)

	_, user, err := svc.Register("Pat Doe", "pat@example.com", "password123", models.RoleGuardian)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	token, err := svc.issueResetToken(user)
	if err != nil {
		t.Fatalf("issueResetToken failed: %v", err)
	}

	if _, err := svc.ValidatePasswordResetToken(token + "x"); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("tampered token = %v, want ErrInvalidResetToken", err)
	}
	if _, err := svc.ValidatePasswordResetToken("not-a-token"); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("garbage token = %v, want ErrInvalidResetToken", err)
	}

	// Tokens signed under a different secret are rejected
	other := NewAuthService(svc.userRepo, time.Hour, "other-secret")
	otherToken, err := other.issueResetToken(user)
	if err != nil {
		t.Fatalf("issueResetToken failed: %v", err)
	}
	if _, err := svc.ValidatePasswordResetToken(otherToken); !errors.Is(err, ErrInvalidResetToken) {
		t.Errorf("foreign-secret token = %v, want ErrInvalidResetToken", err)
	}
}

func TestOAuthLoginCreatesGuardianAccount(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	svc := newAuthService(t)

	session, user, err := svc.OAuthLogin("google", "subject-123", "pat@example.com", "Pat Doe")
	if err != nil {
		t.Fatalf("OAuthLogin failed: %v", err)
	}
	if user.Role != models.RoleGuardian {
		t.Errorf("oauth account role = %v, want guardian", user.Role)
	}
	if session == nil {
		t.Fatal("OAuthLogin returned no session")
	}

	// A second login with the same subject reuses the account
	_, again, err := svc.OAuthLogin("google", "subject-123", "pat@example.com", "Pat Doe")
	if err != nil {
		t.Fatalf("second OAuthLogin failed: %v", err)
	}
	if again.ID != user.ID {
		t.Errorf("second oauth login created user %d, want %d", again.ID, user.ID)
	}
}
