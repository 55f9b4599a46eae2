// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ContactRequest model, including the single mutation this entity supports:
// the status update performed by an admin confirming a lead.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/medigo-care/go-leads-backend/internal/domain"
)

// CreateContactRequest inserts a new contact-form lead. The creation
// timestamp is set server-side in UTC.
func CreateContactRequest(ctx context.Context, db *gorm.DB, c *domain.ContactRequest) error {
	c.ID = 0
	c.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(c).Error
}

// ListContactRequests returns leads ordered newest-first. A positive limit
// caps the result; limit <= 0 returns everything.
func ListContactRequests(ctx context.Context, db *gorm.DB, limit int) ([]domain.ContactRequest, error) {
	q := db.WithContext(ctx).
		Model(&domain.ContactRequest{}).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []domain.ContactRequest
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateContactRequestStatus sets the status of a lead and returns the
// updated record. Setting the value already stored succeeds (confirming an
// already-confirmed lead is not an error). Returns ErrNotFound when the id
// does not exist.
func UpdateContactRequestStatus(ctx context.Context, db *gorm.DB, id uint, status string) (*domain.ContactRequest, error) {
	var rec domain.ContactRequest
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if rec.Status == status {
			return nil
		}
		if err := tx.Model(&rec).Update("status", status).Error; err != nil {
			return err
		}
		rec.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CountContactRequests returns the number of stored leads, optionally
// filtered by status (empty status counts all).
func CountContactRequests(ctx context.Context, db *gorm.DB, status string) (int64, error) {
	q := db.WithContext(ctx).Model(&domain.ContactRequest{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	err := q.Count(&n).Error
	return n, err
}
