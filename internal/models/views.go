package models

// ============================================================================
// DOCUMENT VIEW MODELS
// ============================================================================
//
// Write-only projections handed to the HTML template. Built fresh per
// generate call and discarded once the document is rendered; never persisted.

// PendingApplicationView backs the PendingApplication template.
type PendingApplicationView struct {
	ReferenceNumber string `json:"reference_number"`
	StateLabel      string `json:"state_label"`
	FullName        string `json:"full_name"`
	AppliedOn       string `json:"applied_on"`
	SupportEmail    string `json:"support_email"`
	Signature       string `json:"signature"`
}

// ActivatedApplicationView backs the ActivatedApplication template.
// LegalEntity is nil unless the application is flagged as a legal entity.
type ActivatedApplicationView struct {
	PendingApplicationView
	LegalEntity    *LegalEntity `json:"legal_entity,omitempty"`
	Funds          []Fund       `json:"funds"`
	PortfolioTotal float64      `json:"portfolio_total"`
}

// InReviewApplicationView backs the InReviewApplication template.
type InReviewApplicationView struct {
	ActivatedApplicationView
	ReviewMessage string  `json:"review_message"`
	CurrentReview *Review `json:"current_review"`
}
