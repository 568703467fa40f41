package services

import "strings"

const reviewMessagePrefix = "Your application has been placed in review"

// Suffixes keep their leading space and exact wording; downstream templates
// print the message verbatim.
const (
	reviewSuffixAddress    = " pending outstanding address verification for FICA purposes."
	reviewSuffixBank       = " pending outstanding bank account verification."
	reviewSuffixSuspicious = " because of suspicious account behaviour. Please contact support ASAP."
)

// ClassifyReviewReason maps a free-text review reason to one of three canned
// customer-facing messages. Matching is a case-sensitive substring check,
// address before bank, with the suspicious-behaviour message as fallback.
func ClassifyReviewReason(reason string) string {
	switch {
	case strings.Contains(reason, "address"):
		return reviewMessagePrefix + reviewSuffixAddress
	case strings.Contains(reason, "bank"):
		return reviewMessagePrefix + reviewSuffixBank
	default:
		return reviewMessagePrefix + reviewSuffixSuspicious
	}
}
