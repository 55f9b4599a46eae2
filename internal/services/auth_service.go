// Package services – AuthService
//
// This file implements the AuthService backing the admin gate. There is a
// single shared admin credential configured at startup; a successful login
// mints a server-side session row whose opaque ID travels in a cookie.
// Password comparison is constant-time, either via bcrypt when a hash is
// configured or via subtle.ConstantTimeCompare for the plaintext fallback.
package services

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/medigo-care/go-leads-backend/internal/domain"
)

// SessionRepo defines the repository contract required by AuthService.
type SessionRepo interface {
	// CreateSession mints a new admin session with the given TTL.
	CreateSession(ctx context.Context, db *gorm.DB, ttl time.Duration) (*domain.Session, error)

	// GetSession returns the live session for id, expiring lazily.
	GetSession(ctx context.Context, db *gorm.DB, id string, now time.Time) (*domain.Session, error)

	// DeleteSession removes a session; absent sessions are not an error.
	DeleteSession(ctx context.Context, db *gorm.DB, id string) error
}

// AuthService verifies the admin credential and manages session lifetimes.
type AuthService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the session repository used by this service.
	Repo SessionRepo

	// Password is the plaintext admin credential. Ignored when PasswordHash
	// is set.
	Password string
	// PasswordHash is an optional bcrypt hash of the admin credential.
	PasswordHash string
	// SessionTTL is the absolute lifetime of a minted session.
	SessionTTL time.Duration
}

// NewAuthService constructs an AuthService. A non-positive ttl defaults to 24h.
func NewAuthService(db *gorm.DB, r SessionRepo, password, passwordHash string, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{
		DB:           db,
		Repo:         r,
		Password:     password,
		PasswordHash: passwordHash,
		SessionTTL:   ttl,
	}
}

// Login verifies the password and mints a session. Returns
// ErrPasswordRequired for a blank password and ErrInvalidPassword when the
// credential does not match.
func (s *AuthService) Login(ctx context.Context, password string) (*domain.Session, error) {
	if strings.TrimSpace(password) == "" {
		return nil, ErrPasswordRequired
	}
	if !s.verify(password) {
		return nil, ErrInvalidPassword
	}
	return s.Repo.CreateSession(ctx, s.DB, s.SessionTTL)
}

// Logout deletes the session for the given id. Unknown or empty ids succeed,
// making logout idempotent.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Repo.DeleteSession(ctx, s.DB, sessionID)
}

// IsAuthenticated reports whether sessionID names a live admin session.
func (s *AuthService) IsAuthenticated(ctx context.Context, sessionID string) bool {
	sess, err := s.Repo.GetSession(ctx, s.DB, sessionID, time.Now().UTC())
	return err == nil && sess != nil && sess.IsAdmin
}

// verify compares the supplied password against the configured credential in
// constant time.
func (s *AuthService) verify(password string) bool {
	if s.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.PasswordHash), []byte(password)) == nil
	}
	if s.Password == "" {
		// No credential configured: fail closed.
		return false
	}
	return subtle.ConstantTimeCompare([]byte(s.Password), []byte(password)) == 1
}
