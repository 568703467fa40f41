package services

import (
	"context"
	"fmt"
	"strings"

	"report-service/internal/config"
	"report-service/internal/models"
)

// TemplatePathResolver resolves a template key to the relative path of the
// HTML template under the template base URI.
type TemplatePathResolver interface {
	Resolve(ctx context.Context, key models.TemplateKey) (string, error)
}

// StatusDocumentView is the builder output handed to the rendering step: the
// fully resolved template URI plus the view model the template executes with.
type StatusDocumentView struct {
	TemplateKey models.TemplateKey
	TemplateURI string
	Model       any
}

// ViewModelBuilder assembles the state-specific view model for an
// application's status document. Apart from template path resolution it is a
// pure transform of the application and the report configuration.
type ViewModelBuilder struct {
	resolver  TemplatePathResolver
	reportCfg config.ReportConfig
}

func NewViewModelBuilder(resolver TemplatePathResolver, reportCfg config.ReportConfig) *ViewModelBuilder {
	return &ViewModelBuilder{
		resolver:  resolver,
		reportCfg: reportCfg,
	}
}

// Build dispatches on the application's lifecycle state. States without an
// associated document yield (nil, nil); the caller decides how to signal
// that to its own caller.
func (b *ViewModelBuilder) Build(ctx context.Context, app *models.Application, baseURI string) (*StatusDocumentView, error) {
	switch app.State {
	case models.ApplicationPending:
		return b.buildView(ctx, models.TemplatePendingApplication, baseURI, b.pendingView(app))
	case models.ApplicationActivated:
		return b.buildView(ctx, models.TemplateActivatedApplication, baseURI, b.activatedView(app))
	case models.ApplicationInReview:
		return b.buildView(ctx, models.TemplateInReviewApplication, baseURI, b.inReviewView(app))
	default:
		return nil, nil
	}
}

func (b *ViewModelBuilder) buildView(ctx context.Context, key models.TemplateKey, baseURI string, model any) (*StatusDocumentView, error) {
	relativePath, err := b.resolver.Resolve(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve template path for %s: %w", key, err)
	}

	return &StatusDocumentView{
		TemplateKey: key,
		TemplateURI: joinTemplateURI(baseURI, relativePath),
		Model:       model,
	}, nil
}

func (b *ViewModelBuilder) pendingView(app *models.Application) models.PendingApplicationView {
	return models.PendingApplicationView{
		ReferenceNumber: app.ReferenceNumber,
		StateLabel:      app.State.Label(),
		FullName:        app.FullName(),
		AppliedOn:       app.SubmittedAt.Format("02 January 2006"),
		SupportEmail:    b.reportCfg.SupportEmail,
		Signature:       b.reportCfg.Signature,
	}
}

func (b *ViewModelBuilder) activatedView(app *models.Application) models.ActivatedApplicationView {
	view := models.ActivatedApplicationView{
		PendingApplicationView: b.pendingView(app),
		Funds:                  FlattenFunds(app.Products),
		PortfolioTotal:         CalculatePortfolioTotal(app.Products, b.reportCfg.TaxRate),
	}

	// Legal entity detail only appears on documents for legal-entity
	// applications; natural persons get no entity block at all.
	if app.IsLegalEntity {
		view.LegalEntity = app.LegalEntity
	}

	return view
}

func (b *ViewModelBuilder) inReviewView(app *models.Application) models.InReviewApplicationView {
	view := models.InReviewApplicationView{
		ActivatedApplicationView: b.activatedView(app),
		CurrentReview:            app.CurrentReview,
	}

	if app.CurrentReview != nil {
		view.ReviewMessage = ClassifyReviewReason(app.CurrentReview.Reason)
	}

	return view
}

func joinTemplateURI(baseURI, relativePath string) string {
	return baseURI + "/" + strings.TrimPrefix(relativePath, "/")
}
