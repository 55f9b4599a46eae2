// Package services – ContactService
//
// This file implements the ContactService, which manages contact-form leads.
// Intake validates required fields and always stores the lead with status
// "new" regardless of what the client sent; the only mutation is the admin
// confirmation flipping the status to "sent".
package services

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/medigo-care/go-leads-backend/internal/domain"
	"github.com/medigo-care/go-leads-backend/internal/repo"
)

// ContactRepo defines the repository contract required by ContactService.
type ContactRepo interface {
	// CreateContactRequest inserts a new lead row.
	CreateContactRequest(ctx context.Context, db *gorm.DB, c *domain.ContactRequest) error

	// ListContactRequests returns leads newest-first, optionally capped.
	ListContactRequests(ctx context.Context, db *gorm.DB, limit int) ([]domain.ContactRequest, error)

	// UpdateContactRequestStatus sets a lead's status and returns the record.
	UpdateContactRequestStatus(ctx context.Context, db *gorm.DB, id uint, status string) (*domain.ContactRequest, error)
}

// ContactService provides operations over contact-form leads.
type ContactService struct {
	// DB is the GORM handle used for persistence.
	DB *gorm.DB
	// Repo is the contact repository used by this service.
	Repo ContactRepo
}

// NewContactService constructs a ContactService.
func NewContactService(db *gorm.DB, r ContactRepo) *ContactService {
	return &ContactService{DB: db, Repo: r}
}

// Create validates and stores a new lead. Status is forced to "new" on
// creation; clients cannot submit pre-confirmed leads. Missing required
// fields produce a *ValidationError naming every offending field.
func (s *ContactService) Create(ctx context.Context, c *domain.ContactRequest) error {
	var missing []string
	if strings.TrimSpace(c.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(c.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(c.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(c.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(c.ServiceInterest) == "" {
		missing = append(missing, "serviceInterest")
	}
	if strings.TrimSpace(c.Message) == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	c.Status = domain.ContactStatusNew
	c.Language = NormalizeLanguage(c.Language)
	return s.Repo.CreateContactRequest(ctx, s.DB, c)
}

// List returns stored leads newest-first. A non-positive limit returns
// everything.
func (s *ContactService) List(ctx context.Context, limit int) ([]domain.ContactRequest, error) {
	return s.Repo.ListContactRequests(ctx, s.DB, limit)
}

// UpdateStatus moves a lead to the given status and returns the updated
// record. Only "new" and "sent" are accepted; anything else returns
// ErrInvalidStatus. Setting the status already stored succeeds, so repeating
// a confirmation is harmless. Returns ErrContactNotFound for an unknown id.
func (s *ContactService) UpdateStatus(ctx context.Context, id uint, status string) (*domain.ContactRequest, error) {
	if status != domain.ContactStatusNew && status != domain.ContactStatusSent {
		return nil, ErrInvalidStatus
	}
	rec, err := s.Repo.UpdateContactRequestStatus(ctx, s.DB, id, status)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}
	return rec, nil
}
