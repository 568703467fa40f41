package services

import (
	"context"
	"errors"
	"testing"

	"report-service/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ============================================================================
// COLLABORATOR FAKES
// ============================================================================

type fakeStore struct {
	applications map[uuid.UUID]*models.Application
	err          error
}

func (f *fakeStore) FindByID(_ context.Context, id uuid.UUID) (*models.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.applications[id], nil
}

type fakeHTMLRenderer struct {
	calls []string
	html  string
	err   error
}

func (f *fakeHTMLRenderer) Render(_ context.Context, templateURI string, _ any) (string, error) {
	f.calls = append(f.calls, templateURI)
	if f.err != nil {
		return "", f.err
	}
	return f.html, nil
}

type fakePDFRenderer struct {
	calls int
	pdf   []byte
	err   error
}

func (f *fakePDFRenderer) RenderFromHTML(_ context.Context, _ string, _ RenderOptions) (Document, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &PDFDocument{data: f.pdf}, nil
}

type fakeArchiver struct {
	objectName string
	uploads    int
}

func (f *fakeArchiver) UploadRenderedReport(_ context.Context, _ string, _ []byte) (string, error) {
	f.uploads++
	return f.objectName, nil
}

type fakeNotifier struct {
	notified int
}

func (f *fakeNotifier) NotifyReportGenerated(_ context.Context, _ *models.Application, _ string) error {
	f.notified++
	return nil
}

type reportServiceFixture struct {
	service    *ReportService
	store      *fakeStore
	resolver   *fakeResolver
	htmlRender *fakeHTMLRenderer
	pdfRender  *fakePDFRenderer
	archiver   *fakeArchiver
	notifier   *fakeNotifier
}

func newReportServiceFixture(apps ...*models.Application) *reportServiceFixture {
	store := &fakeStore{applications: map[uuid.UUID]*models.Application{}}
	for _, app := range apps {
		store.applications[app.ID] = app
	}

	resolver := newTestResolver()
	htmlRender := &fakeHTMLRenderer{html: "<html><body>report</body></html>"}
	pdfRender := &fakePDFRenderer{pdf: []byte("%PDF-1.7 fake content")}
	archiver := &fakeArchiver{objectName: "status-reports/APP-2026-00042.pdf"}
	notifier := &fakeNotifier{}

	builder := NewViewModelBuilder(resolver, testReportConfig())
	service := NewReportService(store, builder, htmlRender, pdfRender, archiver, notifier)

	return &reportServiceFixture{
		service:    service,
		store:      store,
		resolver:   resolver,
		htmlRender: htmlRender,
		pdfRender:  pdfRender,
		archiver:   archiver,
		notifier:   notifier,
	}
}

// ============================================================================
// GENERATE
// ============================================================================

func TestGenerate_SupportedStatesReturnDocumentBytes(t *testing.T) {
	states := []models.ApplicationState{
		models.ApplicationPending,
		models.ApplicationActivated,
		models.ApplicationInReview,
	}

	for _, state := range states {
		app := createTestApplication(state)
		if state == models.ApplicationInReview {
			app.CurrentReview = &models.Review{Reason: "bank details mismatch"}
		}
		fixture := newReportServiceFixture(app)

		pdf, err := fixture.service.Generate(context.Background(), app.ID, "report-templates")

		assert.NoError(t, err, "state %s", state)
		assert.NotEmpty(t, pdf, "state %s", state)
	}
}

func TestGenerate_UnknownApplicationReturnsNotFound(t *testing.T) {
	fixture := newReportServiceFixture()
	missingID := uuid.New()

	pdf, err := fixture.service.Generate(context.Background(), missingID, "report-templates")

	assert.Nil(t, pdf)

	var notFound *ApplicationNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, missingID, notFound.ID)

	// No downstream collaborator may run for a missing application.
	assert.Empty(t, fixture.resolver.calls)
	assert.Empty(t, fixture.htmlRender.calls)
	assert.Zero(t, fixture.pdfRender.calls)
}

func TestGenerate_UnsupportedStateReturnsTypedError(t *testing.T) {
	app := createTestApplication(models.ApplicationClosed)
	fixture := newReportServiceFixture(app)

	pdf, err := fixture.service.Generate(context.Background(), app.ID, "report-templates")

	assert.Nil(t, pdf)

	var unsupported *UnsupportedStateError
	assert.ErrorAs(t, err, &unsupported)
	assert.Equal(t, models.ApplicationClosed, unsupported.State)

	assert.Empty(t, fixture.htmlRender.calls)
	assert.Zero(t, fixture.pdfRender.calls)
}

func TestGenerate_StoreFailurePropagates(t *testing.T) {
	fixture := newReportServiceFixture()
	fixture.store.err = errors.New("connection reset")

	_, err := fixture.service.Generate(context.Background(), uuid.New(), "report-templates")

	assert.ErrorContains(t, err, "connection reset")
}

func TestGenerate_RendererFailurePropagates(t *testing.T) {
	app := createTestApplication(models.ApplicationPending)
	fixture := newReportServiceFixture(app)
	fixture.htmlRender.err = errors.New("template exploded")

	_, err := fixture.service.Generate(context.Background(), app.ID, "report-templates")

	assert.ErrorContains(t, err, "template exploded")
	assert.Zero(t, fixture.pdfRender.calls, "PDF rendering must not run after a template failure")
}

func TestGenerate_TrailingSeparatorStrippedFromBaseURI(t *testing.T) {
	app := createTestApplication(models.ApplicationPending)
	fixture := newReportServiceFixture(app)

	_, err := fixture.service.Generate(context.Background(), app.ID, "report-templates/")

	assert.NoError(t, err)
	assert.Equal(t,
		[]string{"report-templates/statements/pending_application.html"},
		fixture.htmlRender.calls)
}

// ============================================================================
// GENERATE AND ARCHIVE
// ============================================================================

func TestGenerateAndArchive_UploadsAndNotifies(t *testing.T) {
	app := createTestApplication(models.ApplicationActivated)
	fixture := newReportServiceFixture(app)

	objectName, err := fixture.service.GenerateAndArchive(context.Background(), app.ID, "report-templates")

	assert.NoError(t, err)
	assert.Equal(t, "status-reports/APP-2026-00042.pdf", objectName)
	assert.Equal(t, 1, fixture.archiver.uploads)
	assert.Equal(t, 1, fixture.notifier.notified)
}

func TestGenerateAndArchive_UnknownApplicationDoesNotUpload(t *testing.T) {
	fixture := newReportServiceFixture()

	_, err := fixture.service.GenerateAndArchive(context.Background(), uuid.New(), "report-templates")

	var notFound *ApplicationNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Zero(t, fixture.archiver.uploads)
	assert.Zero(t, fixture.notifier.notified)
}

// ============================================================================
// BASE URI NORMALIZATION
// ============================================================================

func TestNormalizeBaseURI(t *testing.T) {
	assert.Equal(t, "report-templates", NormalizeBaseURI("report-templates/"))
	assert.Equal(t, "report-templates", NormalizeBaseURI("report-templates"))
	// Exactly one separator is stripped per call.
	assert.Equal(t, "report-templates/", NormalizeBaseURI("report-templates//"))
}

func TestNormalizeBaseURI_Idempotent(t *testing.T) {
	once := NormalizeBaseURI("http://storage.local/templates/")

	assert.Equal(t, once, NormalizeBaseURI(once))
}
