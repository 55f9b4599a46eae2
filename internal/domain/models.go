// Package domain defines the persistence models for quotation requests,
// contact requests, admin sessions, and the treatment price catalog. These
// types are mapped with GORM and form the core data layer of the lead-capture
// application.
package domain

import "time"

// StringList stores a multi-select questionnaire answer as an ordered list of
// tags. The upstream schema used a text[] column; SQLite has no array type, so
// the list is persisted through GORM's JSON serializer. Element order is
// preserved across a round trip.
type StringList []string

// Known contact-request status values. A contact request starts as "new" and
// moves to "sent" exactly once, when an admin confirms it was handled.
const (
	ContactStatusNew  = "new"
	ContactStatusSent = "sent"
)

// QuotationRequest is one submitted assessment questionnaire. The record is
// immutable after creation: there is no update path for this entity.
//
// Required fields (enforced by the service layer and transport bindings):
// Name, Email, MainConcern, DesiredResults, BudgetRange, PreferredDuration.
// Everything else is optional free text captured as the visitor entered it;
// single-choice answers are UI-constrained strings, not enums.
type QuotationRequest struct {
	ID    uint   `json:"id"    gorm:"primaryKey;autoIncrement"`
	Name  string `json:"name"  gorm:"type:TEXT;not null"`
	Email string `json:"email" gorm:"type:TEXT;not null"`

	Age         *string `json:"age"`
	Nationality *string `json:"nationality"`

	// Multi-select answers. MainConcern and DesiredResults feed the
	// recommendation scorer.
	MainConcern     StringList `json:"mainConcern"     gorm:"type:TEXT;serializer:json;not null"`
	DesiredResults  StringList `json:"desiredResults"  gorm:"type:TEXT;serializer:json;not null"`
	SkinSensitivity StringList `json:"skinSensitivity" gorm:"type:TEXT;serializer:json"`
	MedicalHistory  StringList `json:"medicalHistory"  gorm:"type:TEXT;serializer:json"`

	SkinType           *string `json:"skinType"`
	PreviousTreatments *string `json:"previousTreatments"`
	TreatmentDetails   *string `json:"treatmentDetails"`
	SideEffects        *string `json:"sideEffects"`
	SideEffectDetails  *string `json:"sideEffectDetails"`
	MedicationsList    *string `json:"medicationsList"`
	ColdSores          *string `json:"coldSores"`
	Retinoids          *string `json:"retinoids"`
	RetinoidsDate      *string `json:"retinoidsDate"`
	Allergies          *string `json:"allergies"`
	AllergyDetails     *string `json:"allergyDetails"`
	SunscreenUse       *string `json:"sunscreenUse"`
	Smoking            *string `json:"smoking"`
	Alcohol            *string `json:"alcohol"`
	WaterIntake        *string `json:"waterIntake"`
	Exercise           *string `json:"exercise"`
	PreferredDowntime  *string `json:"preferredDowntime"`
	EffectDuration     *string `json:"effectDuration"`

	BudgetRange        string  `json:"budgetRange"        gorm:"type:TEXT;not null"`
	TreatmentIntensity *string `json:"treatmentIntensity"`
	PreferredDuration  string  `json:"preferredDuration"  gorm:"type:TEXT;not null"`
	AdditionalDetails  *string `json:"additionalDetails"`

	// Language is the content language of the submission: "en" or "cn".
	Language  string    `json:"language" gorm:"type:TEXT;not null;default:'en'"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the database table name for QuotationRequest.
func (QuotationRequest) TableName() string { return "quotation_requests" }

// ContactRequest is a lead captured by the contact form. Unlike a quotation
// request, it carries a mutable Status field: "new" on creation, "sent" once
// an admin confirms it was forwarded.
type ContactRequest struct {
	ID              uint      `json:"id"              gorm:"primaryKey;autoIncrement"`
	FirstName       string    `json:"firstName"       gorm:"type:TEXT;not null"`
	LastName        string    `json:"lastName"        gorm:"type:TEXT;not null"`
	Email           string    `json:"email"           gorm:"type:TEXT;not null"`
	Phone           string    `json:"phone"           gorm:"type:TEXT;not null"`
	ServiceInterest string    `json:"serviceInterest" gorm:"type:TEXT;not null"`
	Message         string    `json:"message"         gorm:"type:TEXT;not null"`
	Language        string    `json:"language"        gorm:"type:TEXT;not null;default:'en'"`
	Status          string    `json:"status"          gorm:"type:TEXT;not null;default:'new'"`
	CreatedAt       time.Time `json:"createdAt"`
}

// TableName returns the database table name for ContactRequest.
func (ContactRequest) TableName() string { return "contact_requests" }
