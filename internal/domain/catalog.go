package domain

import (
	"math"
	"time"
)

// CatalogItem is one procedure on the admin price list. The customer-facing
// FinalPrice is derived from the clinic base price plus the brokerage
// commission percentage; both edits go through the same recompute so the
// three fields never drift apart.
type CatalogItem struct {
	ID          string    `json:"id"          gorm:"type:TEXT;primaryKey"`
	Name        string    `json:"name"        gorm:"type:TEXT;not null"`
	NameKR      string    `json:"nameKr"      gorm:"column:name_kr;type:TEXT;not null"`
	Description string    `json:"description" gorm:"type:TEXT;not null"`
	Category    string    `json:"category"    gorm:"type:TEXT;not null"`
	BasePrice   int       `json:"basePrice"   gorm:"not null"`
	Commission  float64   `json:"commission"  gorm:"not null"`
	FinalPrice  int       `json:"finalPrice"  gorm:"not null"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the database table name for CatalogItem.
func (CatalogItem) TableName() string { return "catalog_items" }

// FinalPriceFor derives the customer price in KRW from a base price and a
// commission percentage: round(base * (1 + commission/100)).
func FinalPriceFor(basePrice int, commission float64) int {
	return int(math.Round(float64(basePrice) * (1 + commission/100)))
}

// Recompute refreshes FinalPrice from the current BasePrice and Commission.
func (c *CatalogItem) Recompute() {
	c.FinalPrice = FinalPriceFor(c.BasePrice, c.Commission)
}
