// Handler wiring and service contracts.
//
// Handlers are transport-thin: they validate input, call application services,
// and translate results into HTTP responses. Each service dependency is an
// interface so tests can substitute fakes without a database.
package handlers

import (
	"context"

	"github.com/medigo-care/go-leads-backend/internal/domain"
	"github.com/medigo-care/go-leads-backend/internal/recommend"
)

//
// Service contracts (context-aware)
//

// QuotationService defines assessment-submission operations consumed by HTTP
// handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts.
type QuotationService interface {
	// Create validates and stores a new submission.
	Create(ctx context.Context, q *domain.QuotationRequest) error
	// List returns submissions newest-first, capped at limit when positive.
	List(ctx context.Context, limit int) ([]domain.QuotationRequest, error)
	// Recommendation re-derives the treatment recommendation for a stored
	// submission.
	Recommendation(ctx context.Context, id uint) (*recommend.Recommendation, error)
}

// ContactService defines contact-lead operations consumed by HTTP handlers.
type ContactService interface {
	// Create validates and stores a new lead with status "new".
	Create(ctx context.Context, c *domain.ContactRequest) error
	// List returns leads newest-first, capped at limit when positive.
	List(ctx context.Context, limit int) ([]domain.ContactRequest, error)
	// UpdateStatus moves a lead between "new" and "sent".
	UpdateStatus(ctx context.Context, id uint, status string) (*domain.ContactRequest, error)
}

// AuthService defines the admin session operations consumed by HTTP handlers
// and the admin-gate middleware.
type AuthService interface {
	// Login verifies the admin password and mints a session.
	Login(ctx context.Context, password string) (*domain.Session, error)
	// Logout deletes a session; unknown ids succeed.
	Logout(ctx context.Context, sessionID string) error
	// IsAuthenticated reports whether sessionID names a live admin session.
	IsAuthenticated(ctx context.Context, sessionID string) bool
}

// CatalogService defines treatment price-list operations consumed by HTTP
// handlers.
type CatalogService interface {
	// List returns the full price list.
	List(ctx context.Context) ([]domain.CatalogItem, error)
	// UpdatePrice edits one entry and returns it with the recomputed final
	// price.
	UpdatePrice(ctx context.Context, id string, basePrice *int, commission *float64) (*domain.CatalogItem, error)
}

//
// Handler wiring
//

// Handlers groups HTTP endpoints for quotations, contacts, authentication,
// the price catalog, and recommendation previews. It depends on abstract
// service interfaces to keep transport concerns separate from business logic.
type Handlers struct {
	quotationSvc QuotationService
	contactSvc   ContactService
	authSvc      AuthService
	catalogSvc   CatalogService
}

// New constructs a Handlers instance bound to the given services.
func New(q QuotationService, c ContactService, a AuthService, cat CatalogService) *Handlers {
	return &Handlers{
		quotationSvc: q,
		contactSvc:   c,
		authSvc:      a,
		catalogSvc:   cat,
	}
}
