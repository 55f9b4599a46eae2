package services

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/medigo-care/go-leads-backend/internal/domain"
	"github.com/medigo-care/go-leads-backend/internal/repo"
)

// ----- Fake repo -----

type fakeCatalogRepo struct {
	listItems []domain.CatalogItem
	listErr   error

	updateID   string
	updateBase *int
	updateComm *float64
	updateRec  *domain.CatalogItem
	updateErr  error
}

func (r *fakeCatalogRepo) ListCatalog(ctx context.Context, db *gorm.DB) ([]domain.CatalogItem, error) {
	return r.listItems, r.listErr
}

func (r *fakeCatalogRepo) UpdateCatalogItem(ctx context.Context, db *gorm.DB, id string, basePrice *int, commission *float64) (*domain.CatalogItem, error) {
	r.updateID, r.updateBase, r.updateComm = id, basePrice, commission
	return r.updateRec, r.updateErr
}

// ----- Tests -----

func TestCatalogUpdatePrice_RequiresAField(t *testing.T) {
	r := &fakeCatalogRepo{}
	s := NewCatalogService(nil, r)

	_, err := s.UpdatePrice(context.Background(), "pdt", nil, nil)
	if ve := AsValidationError(err); ve == nil {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if r.updateID != "" {
		t.Fatalf("repo should not be called")
	}
}

func TestCatalogUpdatePrice_RangeChecks(t *testing.T) {
	s := NewCatalogService(nil, &fakeCatalogRepo{})

	neg := -1
	if _, err := s.UpdatePrice(context.Background(), "pdt", &neg, nil); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
	over := 101.0
	if _, err := s.UpdatePrice(context.Background(), "pdt", nil, &over); !errors.Is(err, ErrInvalidCommission) {
		t.Fatalf("expected ErrInvalidCommission, got %v", err)
	}
	under := -0.5
	if _, err := s.UpdatePrice(context.Background(), "pdt", nil, &under); !errors.Is(err, ErrInvalidCommission) {
		t.Fatalf("expected ErrInvalidCommission, got %v", err)
	}
}

func TestCatalogUpdatePrice_Success(t *testing.T) {
	want := &domain.CatalogItem{ID: "pdt", BasePrice: 200000, Commission: 20, FinalPrice: 240000}
	r := &fakeCatalogRepo{updateRec: want}
	s := NewCatalogService(nil, r)

	base := 200000
	got, err := s.UpdatePrice(context.Background(), "pdt", &base, nil)
	if err != nil {
		t.Fatalf("UpdatePrice: %v", err)
	}
	if got != want || r.updateID != "pdt" || r.updateBase == nil || *r.updateBase != 200000 || r.updateComm != nil {
		t.Fatalf("unexpected call/result: %+v", got)
	}
}

func TestCatalogUpdatePrice_NotFound(t *testing.T) {
	s := NewCatalogService(nil, &fakeCatalogRepo{updateErr: repo.ErrNotFound})

	base := 100
	if _, err := s.UpdatePrice(context.Background(), "nope", &base, nil); !errors.Is(err, ErrCatalogItemNotFound) {
		t.Fatalf("expected ErrCatalogItemNotFound, got %v", err)
	}
}

func TestCatalogList_PassesThrough(t *testing.T) {
	r := &fakeCatalogRepo{listItems: []domain.CatalogItem{{ID: "a"}, {ID: "b"}}}
	s := NewCatalogService(nil, r)

	items, err := s.List(context.Background())
	if err != nil || len(items) != 2 {
		t.Fatalf("items=%v err=%v", items, err)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"":           LangEnglish,
		"en":         LangEnglish,
		"en-US":      LangEnglish,
		"cn":         LangChinese,
		"zh":         LangChinese,
		"zh-Hans":    LangChinese,
		"zh-Hant-TW": LangChinese,
		"fr":         LangEnglish,
		"not a tag":  LangEnglish,
	}
	for hint, want := range cases {
		if got := NormalizeLanguage(hint); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", hint, got, want)
		}
	}
}
