// Package services – QuotationService
//
// This file implements the QuotationService, which manages assessment
// questionnaire submissions. It validates required fields, normalizes the
// submission language, and coordinates repository operations for creating and
// listing quotation requests. It also re-derives the treatment recommendation
// for a stored submission, since the score is computed on demand rather than
// persisted.
//
// Service-level errors (e.g., ErrQuotationNotFound) are returned for
// predictable cases so handlers can map them to HTTP results consistently.
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/medigo-care/go-leads-backend/internal/domain"
	"github.com/medigo-care/go-leads-backend/internal/recommend"
	"github.com/medigo-care/go-leads-backend/internal/repo"
)

// QuotationRepo defines the repository contract required by QuotationService.
type QuotationRepo interface {
	// CreateQuotationRequest inserts a new submission row.
	CreateQuotationRequest(ctx context.Context, db *gorm.DB, q *domain.QuotationRequest) error

	// ListQuotationRequests returns submissions newest-first, optionally capped.
	ListQuotationRequests(ctx context.Context, db *gorm.DB, limit int) ([]domain.QuotationRequest, error)

	// GetQuotationRequest fetches a submission by ID.
	GetQuotationRequest(ctx context.Context, db *gorm.DB, id uint) (*domain.QuotationRequest, error)
}

// QuotationService provides operations over assessment submissions: intake
// with validation, admin listing, and recommendation derivation.
type QuotationService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the quotation repository used by this service.
	Repo QuotationRepo
}

// NewQuotationService constructs a QuotationService.
func NewQuotationService(db *gorm.DB, r QuotationRepo) *QuotationService {
	return &QuotationService{DB: db, Repo: r}
}

// Create validates and stores a new submission. Required fields missing or
// blank produce a *ValidationError naming every offending field at once. The
// language hint is normalized to "en" or "cn" before storage.
func (s *QuotationService) Create(ctx context.Context, q *domain.QuotationRequest) error {
	var missing []string
	if strings.TrimSpace(q.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(q.Email) == "" {
		missing = append(missing, "email")
	}
	if len(q.MainConcern) == 0 {
		missing = append(missing, "mainConcern")
	}
	if len(q.DesiredResults) == 0 {
		missing = append(missing, "desiredResults")
	}
	if strings.TrimSpace(q.BudgetRange) == "" {
		missing = append(missing, "budgetRange")
	}
	if strings.TrimSpace(q.PreferredDuration) == "" {
		missing = append(missing, "preferredDuration")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	q.Name = strings.TrimSpace(q.Name)
	q.Email = strings.TrimSpace(q.Email)
	q.Language = NormalizeLanguage(q.Language)
	return s.Repo.CreateQuotationRequest(ctx, s.DB, q)
}

// List returns stored submissions newest-first. A non-positive limit returns
// everything.
func (s *QuotationService) List(ctx context.Context, limit int) ([]domain.QuotationRequest, error) {
	return s.Repo.ListQuotationRequests(ctx, s.DB, limit)
}

// Recommendation re-derives the treatment recommendation for a stored
// submission. Returns ErrQuotationNotFound when the id does not exist.
func (s *QuotationService) Recommendation(ctx context.Context, id uint) (*recommend.Recommendation, error) {
	q, err := s.Repo.GetQuotationRequest(ctx, s.DB, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrQuotationNotFound
		}
		return nil, err
	}
	rec := recommend.Recommend(recommend.Input{
		MainConcern:    q.MainConcern,
		DesiredResults: q.DesiredResults,
		BudgetRange:    q.BudgetRange,
	})
	return &rec, nil
}
