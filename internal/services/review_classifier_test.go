package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyReviewReason_Address(t *testing.T) {
	message := ClassifyReviewReason("please update your home address")

	assert.Equal(t,
		"Your application has been placed in review pending outstanding address verification for FICA purposes.",
		message)
}

func TestClassifyReviewReason_Bank(t *testing.T) {
	message := ClassifyReviewReason("bank details mismatch")

	assert.Equal(t,
		"Your application has been placed in review pending outstanding bank account verification.",
		message)
}

func TestClassifyReviewReason_Fallback(t *testing.T) {
	message := ClassifyReviewReason("unusual login pattern")

	assert.Equal(t,
		"Your application has been placed in review because of suspicious account behaviour. Please contact support ASAP.",
		message)
}

func TestClassifyReviewReason_AddressTakesPriorityOverBank(t *testing.T) {
	message := ClassifyReviewReason("bank statement does not match address")

	assert.Contains(t, message, "address verification for FICA purposes")
}

func TestClassifyReviewReason_MatchIsCaseSensitive(t *testing.T) {
	// "Address" with a capital A does not match; the fallback applies.
	message := ClassifyReviewReason("Address confirmation outstanding")

	assert.Contains(t, message, "suspicious account behaviour")
}
