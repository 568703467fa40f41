package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitStorageURI(t *testing.T) {
	bucket, object, err := splitStorageURI("report-templates/statements/pending_application.html")

	assert.NoError(t, err)
	assert.Equal(t, "report-templates", bucket)
	assert.Equal(t, "statements/pending_application.html", object)
}

func TestSplitStorageURI_LeadingSlash(t *testing.T) {
	bucket, object, err := splitStorageURI("/report-templates/tpl.html")

	assert.NoError(t, err)
	assert.Equal(t, "report-templates", bucket)
	assert.Equal(t, "tpl.html", object)
}

func TestSplitStorageURI_MissingObject(t *testing.T) {
	_, _, err := splitStorageURI("report-templates")

	assert.ErrorContains(t, err, "expected bucket/object")
}
