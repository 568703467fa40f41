package models

type ApplicationState string

const (
	ApplicationPending   ApplicationState = "pending"
	ApplicationActivated ApplicationState = "activated"
	ApplicationInReview  ApplicationState = "in_review"
	ApplicationRejected  ApplicationState = "rejected"
	ApplicationClosed    ApplicationState = "closed"
)

// Label returns the human-readable form shown on generated documents.
func (s ApplicationState) Label() string {
	switch s {
	case ApplicationPending:
		return "Pending"
	case ApplicationActivated:
		return "Activated"
	case ApplicationInReview:
		return "In Review"
	case ApplicationRejected:
		return "Rejected"
	case ApplicationClosed:
		return "Closed"
	default:
		return string(s)
	}
}

type TemplateKey string

const (
	TemplatePendingApplication   TemplateKey = "PendingApplication"
	TemplateActivatedApplication TemplateKey = "ActivatedApplication"
	TemplateInReviewApplication  TemplateKey = "InReviewApplication"
)
