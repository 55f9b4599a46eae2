// Package services defines the business logic for leads, authentication, and
// the treatment price catalog. This file centralizes common service-level
// error values so that they can be consistently returned by service methods
// and checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler/controller layer.
package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Lead-related errors.
var (
	// ErrQuotationNotFound indicates that the requested assessment submission
	// does not exist.
	ErrQuotationNotFound = errors.New("quotation request not found")

	// ErrContactNotFound indicates that the requested contact lead does not
	// exist.
	ErrContactNotFound = errors.New("contact request not found")

	// ErrInvalidStatus is returned when a status update names a value outside
	// the allowed set (currently "new" or "sent").
	ErrInvalidStatus = errors.New("invalid contact request status")
)

// Authentication errors.
var (
	// ErrPasswordRequired is returned when a login attempt carries no password.
	ErrPasswordRequired = errors.New("password is required")

	// ErrInvalidPassword is returned when the supplied password does not match
	// the configured admin credential.
	ErrInvalidPassword = errors.New("invalid password")
)

// Catalog errors.
var (
	// ErrCatalogItemNotFound indicates that the requested price-list entry
	// does not exist.
	ErrCatalogItemNotFound = errors.New("catalog item not found")

	// ErrInvalidPrice is returned when a price edit carries a negative base
	// price.
	ErrInvalidPrice = errors.New("base price must not be negative")

	// ErrInvalidCommission is returned when a price edit carries a commission
	// outside [0, 100].
	ErrInvalidCommission = errors.New("commission must be between 0 and 100")
)

// ValidationError reports which required fields of a submission were missing
// or malformed. Handlers map it to a 400 response listing the fields.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	f := append([]string(nil), e.Fields...)
	sort.Strings(f)
	return fmt.Sprintf("invalid request: missing or invalid fields: %s", strings.Join(f, ", "))
}

// AsValidationError unwraps err as a *ValidationError, or nil.
func AsValidationError(err error) *ValidationError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
