// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the treatment
// price catalog. The catalog is seeded once from static defaults; admin
// price edits are persisted here so they survive a restart.
package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/medigo-care/go-leads-backend/internal/domain"
)

// SeedCatalog inserts any catalog items that do not exist yet. Existing rows
// are left untouched so admin edits are never clobbered by a restart.
func SeedCatalog(ctx context.Context, db *gorm.DB, items []domain.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&items).Error
}

// ListCatalog returns the full price list grouped by category.
func ListCatalog(ctx context.Context, db *gorm.DB) ([]domain.CatalogItem, error) {
	var out []domain.CatalogItem
	err := db.WithContext(ctx).
		Order("category, id").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetCatalogItem fetches one price-list entry by id, or ErrNotFound.
func GetCatalogItem(ctx context.Context, db *gorm.DB, id string) (*domain.CatalogItem, error) {
	var it domain.CatalogItem
	err := db.WithContext(ctx).Where("id = ?", id).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

// UpdateCatalogItem applies the provided base price and/or commission to one
// entry and recomputes the final price in the same transaction, so the three
// fields always change consistently. Nil pointers leave a field untouched.
// Returns the updated record, or ErrNotFound.
func UpdateCatalogItem(ctx context.Context, db *gorm.DB, id string, basePrice *int, commission *float64) (*domain.CatalogItem, error) {
	var it domain.CatalogItem
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&it).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if basePrice != nil {
			it.BasePrice = *basePrice
		}
		if commission != nil {
			it.Commission = *commission
		}
		it.Recompute()
		return tx.Model(&it).Updates(map[string]any{
			"base_price":  it.BasePrice,
			"commission":  it.Commission,
			"final_price": it.FinalPrice,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return &it, nil
}
