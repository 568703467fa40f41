package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"report-service/internal/models"

	"github.com/stretchr/testify/assert"
)

type fakeRegistry struct {
	templates map[string]*models.ReportTemplate
	err       error
}

func (f *fakeRegistry) GetByKey(_ context.Context, templateKey string) (*models.ReportTemplate, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.templates[templateKey], nil
}

func TestResolve_ReturnsRegisteredPath(t *testing.T) {
	registry := &fakeRegistry{templates: map[string]*models.ReportTemplate{
		"PendingApplication": {TemplateKey: "PendingApplication", RelativePath: "statements/pending_application.html"},
	}}
	resolver := NewCachedTemplateResolver(registry, nil, time.Minute)

	path, err := resolver.Resolve(context.Background(), models.TemplatePendingApplication)

	assert.NoError(t, err)
	assert.Equal(t, "statements/pending_application.html", path)
}

func TestResolve_UnregisteredKeyFails(t *testing.T) {
	resolver := NewCachedTemplateResolver(&fakeRegistry{templates: map[string]*models.ReportTemplate{}}, nil, time.Minute)

	_, err := resolver.Resolve(context.Background(), models.TemplateKey("NoSuchTemplate"))

	assert.ErrorContains(t, err, "no template registered")
}

func TestResolve_RegistryFailurePropagates(t *testing.T) {
	resolver := NewCachedTemplateResolver(&fakeRegistry{err: errors.New("db down")}, nil, time.Minute)

	_, err := resolver.Resolve(context.Background(), models.TemplatePendingApplication)

	assert.ErrorContains(t, err, "db down")
}
