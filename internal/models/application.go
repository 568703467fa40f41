package models

import (
	"time"

	"github.com/google/uuid"
)

// ============================================================================
// APPLICATION (INVESTOR ONBOARDING APPLICATIONS)
// ============================================================================

type Application struct {
	ID              uuid.UUID        `json:"id" db:"id"`
	ReferenceNumber string           `json:"reference_number" db:"reference_number"`
	State           ApplicationState `json:"state" db:"state"`
	FirstName       string           `json:"first_name" db:"first_name"`
	LastName        string           `json:"last_name" db:"last_name"`
	Email           string           `json:"email" db:"email"`
	IsLegalEntity   bool             `json:"is_legal_entity" db:"is_legal_entity"`
	LegalEntity     *LegalEntity     `json:"legal_entity,omitempty" db:"-"`
	Products        []Product        `json:"products" db:"-"`
	CurrentReview   *Review          `json:"current_review,omitempty" db:"-"`
	SubmittedAt     time.Time        `json:"submitted_at" db:"submitted_at"`
	CreatedAt       time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at" db:"updated_at"`
}

// FullName is the applicant name as printed on documents.
func (a *Application) FullName() string {
	return a.FirstName + " " + a.LastName
}

type LegalEntity struct {
	RegisteredName     string  `json:"registered_name" db:"registered_name"`
	RegistrationNumber string  `json:"registration_number" db:"registration_number"`
	VATNumber          *string `json:"vat_number,omitempty" db:"vat_number"`
}

type Product struct {
	ID            uuid.UUID `json:"id" db:"id"`
	ApplicationID uuid.UUID `json:"application_id" db:"application_id"`
	ProductName   string    `json:"product_name" db:"product_name"`
	Funds         []Fund    `json:"funds" db:"-"`
}

type Fund struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ProductID uuid.UUID `json:"product_id" db:"product_id"`
	FundName  string    `json:"fund_name" db:"fund_name"`
	Amount    float64   `json:"amount" db:"amount"`
	Fees      float64   `json:"fees" db:"fees"`
}

// Review is the current in-review record for an application. It is only
// meaningful while the application state is in_review; historical reviews
// are kept in the same table with resolved_at set.
type Review struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	ApplicationID uuid.UUID  `json:"application_id" db:"application_id"`
	Reason        string     `json:"reason" db:"reason"`
	Reviewer      *string    `json:"reviewer,omitempty" db:"reviewer"`
	Notes         *string    `json:"notes,omitempty" db:"notes"`
	OpenedAt      time.Time  `json:"opened_at" db:"opened_at"`
	ResolvedAt    *time.Time `json:"resolved_at,omitempty" db:"resolved_at"`
}

// ReportTemplate maps a template key to the relative path of the HTML
// template object under the template base URI.
type ReportTemplate struct {
	TemplateKey  string    `json:"template_key" db:"template_key"`
	RelativePath string    `json:"relative_path" db:"relative_path"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
