// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository helpers for the Session
// model backing the admin authentication gate. Sessions are TTL records:
// created on login, deleted on logout, and lazily expired on lookup.
package repo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/medigo-care/go-leads-backend/internal/domain"
)

// CreateSession inserts an admin session with an opaque UUID identifier and
// an absolute expiry of now+ttl.
func CreateSession(ctx context.Context, db *gorm.DB, ttl time.Duration) (*domain.Session, error) {
	now := time.Now().UTC()
	sess := &domain.Session{
		ID:        uuid.NewString(),
		IsAdmin:   true,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	if err := db.WithContext(ctx).Create(sess).Error; err != nil {
		return nil, err
	}
	return sess, nil
}

// GetSession returns the live session for id, or ErrNotFound. An expired row
// is deleted on the way out, so expiry needs no background sweeper.
func GetSession(ctx context.Context, db *gorm.DB, id string, now time.Time) (*domain.Session, error) {
	if id == "" {
		return nil, ErrNotFound
	}
	var sess domain.Session
	err := db.WithContext(ctx).Where("id = ?", id).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if sess.Expired(now) {
		// Lazy expiry. A delete failure is irrelevant to the caller: the
		// session is invalid either way.
		db.WithContext(ctx).Delete(&domain.Session{}, "id = ?", id)
		return nil, ErrNotFound
	}
	return &sess, nil
}

// DeleteSession removes the session for id. Deleting an absent session is
// not an error, making logout idempotent.
func DeleteSession(ctx context.Context, db *gorm.DB, id string) error {
	if id == "" {
		return nil
	}
	return db.WithContext(ctx).Delete(&domain.Session{}, "id = ?", id).Error
}

// PurgeExpiredSessions removes all rows past their expiry and returns the
// number deleted. Called opportunistically at startup; correctness does not
// depend on it because GetSession expires lazily.
func PurgeExpiredSessions(ctx context.Context, db *gorm.DB, now time.Time) (int64, error) {
	res := db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&domain.Session{})
	return res.RowsAffected, res.Error
}
