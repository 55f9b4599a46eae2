// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// QuotationRequest model.
//
// The repository follows a "thin" approach: persistence and simple query
// composition only, with business rules (required fields, language
// normalization) living in the services package. Quotation requests are
// insert-only: there is deliberately no update or delete function here.
//
// Error semantics:
//   - GetQuotationRequest returns ErrNotFound when the id does not exist.
//   - On other DB errors the raw gorm error is propagated.
package repo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/medigo-care/go-leads-backend/internal/domain"
)

// CreateQuotationRequest inserts a new assessment submission. The creation
// timestamp is set server-side in UTC; the caller's value is ignored.
func CreateQuotationRequest(ctx context.Context, db *gorm.DB, q *domain.QuotationRequest) error {
	q.ID = 0
	q.CreatedAt = time.Now().UTC()
	return db.WithContext(ctx).Create(q).Error
}

// ListQuotationRequests returns submissions ordered newest-first. A positive
// limit caps the result; limit <= 0 returns everything.
func ListQuotationRequests(ctx context.Context, db *gorm.DB, limit int) ([]domain.QuotationRequest, error) {
	q := db.WithContext(ctx).
		Model(&domain.QuotationRequest{}).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var out []domain.QuotationRequest
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// GetQuotationRequest fetches a single submission by id, or ErrNotFound.
func GetQuotationRequest(ctx context.Context, db *gorm.DB, id uint) (*domain.QuotationRequest, error) {
	var rec domain.QuotationRequest
	err := db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// CountQuotationRequests returns the total number of stored submissions.
func CountQuotationRequests(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	err := db.WithContext(ctx).Model(&domain.QuotationRequest{}).Count(&n).Error
	return n, err
}
