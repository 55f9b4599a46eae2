// Package services – CatalogService
//
// This file implements the CatalogService over the treatment price list. The
// list is read far more often than it changes; the only mutation is an admin
// adjusting a base price or commission, after which the final price is
// recomputed server-side.
package services

import (
	"context"

	"gorm.io/gorm"

	"github.com/medigo-care/go-leads-backend/internal/domain"
	"github.com/medigo-care/go-leads-backend/internal/repo"
)

// CatalogRepo defines the repository contract required by CatalogService.
type CatalogRepo interface {
	// ListCatalog returns the full price list grouped by category.
	ListCatalog(ctx context.Context, db *gorm.DB) ([]domain.CatalogItem, error)

	// UpdateCatalogItem applies optional price fields and recomputes.
	UpdateCatalogItem(ctx context.Context, db *gorm.DB, id string, basePrice *int, commission *float64) (*domain.CatalogItem, error)
}

// CatalogService provides read and price-edit operations over the treatment
// price list.
type CatalogService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the catalog repository used by this service.
	Repo CatalogRepo
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(db *gorm.DB, r CatalogRepo) *CatalogService {
	return &CatalogService{DB: db, Repo: r}
}

// List returns the full price list.
func (s *CatalogService) List(ctx context.Context) ([]domain.CatalogItem, error) {
	return s.Repo.ListCatalog(ctx, s.DB)
}

// UpdatePrice applies a base price and/or commission change to one entry and
// returns the updated record with its recomputed final price. At least one
// field must be provided. Returns ErrInvalidPrice for a negative base price,
// ErrInvalidCommission for a commission outside [0, 100], and
// ErrCatalogItemNotFound for an unknown id.
func (s *CatalogService) UpdatePrice(ctx context.Context, id string, basePrice *int, commission *float64) (*domain.CatalogItem, error) {
	if basePrice == nil && commission == nil {
		return nil, &ValidationError{Fields: []string{"basePrice", "commission"}}
	}
	if basePrice != nil && *basePrice < 0 {
		return nil, ErrInvalidPrice
	}
	if commission != nil && (*commission < 0 || *commission > 100) {
		return nil, ErrInvalidCommission
	}
	it, err := s.Repo.UpdateCatalogItem(ctx, s.DB, id, basePrice, commission)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrCatalogItemNotFound
		}
		return nil, err
	}
	return it, nil
}
