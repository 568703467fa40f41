package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"report-service/internal/models"

	"github.com/google/uuid"
)

// ApplicationStore looks up applications for document generation. A missing
// application is reported as (nil, nil), not as an error.
type ApplicationStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
}

// HTMLRenderer executes the template at templateURI with the given view
// model and returns the resulting HTML.
type HTMLRenderer interface {
	Render(ctx context.Context, templateURI string, model any) (string, error)
}

// DocumentRenderer converts an HTML string into a binary document.
type DocumentRenderer interface {
	RenderFromHTML(ctx context.Context, html string, opts RenderOptions) (Document, error)
}

// Document is a rendered binary document.
type Document interface {
	Bytes() []byte
}

// ReportArchiver stores a rendered report and returns its object name.
type ReportArchiver interface {
	UploadRenderedReport(ctx context.Context, referenceNumber string, pdf []byte) (string, error)
}

// ReportNotifier announces that a report was generated and archived.
type ReportNotifier interface {
	NotifyReportGenerated(ctx context.Context, app *models.Application, objectName string) error
}

// PageNumbering selects the footer page-number style.
type PageNumbering string

const PageNumberingNumeric PageNumbering = "numeric"

// RenderOptions is fixed for every status document; it is never derived from
// application data.
type RenderOptions struct {
	PageNumbering       PageNumbering
	HeaderFirstPageOnly bool
	HeaderHTML          string
}

// DefaultRenderOptions returns the document options used for all status
// reports: numeric page numbers and the standard header on the first page
// only.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		PageNumbering:       PageNumberingNumeric,
		HeaderFirstPageOnly: true,
		HeaderHTML:          `<div class="report-header"><strong>InvestHub</strong> &mdash; Application Status Report</div>`,
	}
}

// ReportService generates the downloadable status document for an
// application. One synchronous unit of work per call; the view model never
// outlives the call and no state is shared between concurrent calls.
type ReportService struct {
	store      ApplicationStore
	builder    *ViewModelBuilder
	htmlRender HTMLRenderer
	pdfRender  DocumentRenderer
	archiver   ReportArchiver
	notifier   ReportNotifier
	renderOpts RenderOptions
}

func NewReportService(
	store ApplicationStore,
	builder *ViewModelBuilder,
	htmlRender HTMLRenderer,
	pdfRender DocumentRenderer,
	archiver ReportArchiver,
	notifier ReportNotifier,
) *ReportService {
	return &ReportService{
		store:      store,
		builder:    builder,
		htmlRender: htmlRender,
		pdfRender:  pdfRender,
		archiver:   archiver,
		notifier:   notifier,
		renderOpts: DefaultRenderOptions(),
	}
}

// Generate renders the status document for the given application and returns
// its raw bytes. Collaborator failures propagate unwrapped apart from the
// usual context added at each step; there are no retries and no caching.
func (s *ReportService) Generate(ctx context.Context, applicationID uuid.UUID, baseURI string) ([]byte, error) {
	app, err := s.store.FindByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	if app == nil {
		slog.Warn("No application found for status document request",
			"application_id", applicationID)
		return nil, &ApplicationNotFoundError{ID: applicationID}
	}

	return s.generateForApplication(ctx, app, baseURI)
}

func (s *ReportService) generateForApplication(ctx context.Context, app *models.Application, baseURI string) ([]byte, error) {
	view, err := s.builder.Build(ctx, app, NormalizeBaseURI(baseURI))
	if err != nil {
		return nil, err
	}
	if view == nil {
		slog.Warn("Application state has no status document template",
			"application_id", app.ID,
			"state", app.State)
		return nil, &UnsupportedStateError{State: app.State}
	}

	html, err := s.htmlRender.Render(ctx, view.TemplateURI, view.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", view.TemplateKey, err)
	}

	doc, err := s.pdfRender.RenderFromHTML(ctx, html, s.renderOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to render document: %w", err)
	}

	slog.Info("Status document generated",
		"application_id", app.ID,
		"state", app.State,
		"template_key", view.TemplateKey,
		"size_bytes", len(doc.Bytes()))

	return doc.Bytes(), nil
}

// GenerateAndArchive renders the status document, stores it, and publishes a
// notification event. Returns the stored object name.
func (s *ReportService) GenerateAndArchive(ctx context.Context, applicationID uuid.UUID, baseURI string) (string, error) {
	app, err := s.store.FindByID(ctx, applicationID)
	if err != nil {
		return "", fmt.Errorf("failed to load application: %w", err)
	}
	if app == nil {
		slog.Warn("No application found for status document archive request",
			"application_id", applicationID)
		return "", &ApplicationNotFoundError{ID: applicationID}
	}

	pdf, err := s.generateForApplication(ctx, app, baseURI)
	if err != nil {
		return "", err
	}

	objectName, err := s.archiver.UploadRenderedReport(ctx, app.ReferenceNumber, pdf)
	if err != nil {
		return "", fmt.Errorf("failed to archive status document: %w", err)
	}

	if err := s.notifier.NotifyReportGenerated(ctx, app, objectName); err != nil {
		// Archiving succeeded; a lost notification is not worth failing the call.
		slog.Error("Failed to publish report generated notification",
			"application_id", applicationID,
			"object_name", objectName,
			"error", err)
	}

	slog.Info("Status document archived",
		"application_id", applicationID,
		"object_name", objectName)

	return objectName, nil
}

// NormalizeBaseURI strips exactly one trailing path separator if present.
// Normalizing an already-normalized base address leaves it unchanged.
func NormalizeBaseURI(baseURI string) string {
	if strings.HasSuffix(baseURI, "/") {
		return baseURI[:len(baseURI)-1]
	}
	return baseURI
}
