package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"report-service/internal/models"

	"github.com/jmoiron/sqlx"
)

// TemplateRepository is the registry mapping template keys to the relative
// paths of HTML template objects.
type TemplateRepository struct {
	db *sqlx.DB
}

func NewTemplateRepository(db *sqlx.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// GetByKey returns (nil, nil) when no template is registered for the key.
func (r *TemplateRepository) GetByKey(ctx context.Context, templateKey string) (*models.ReportTemplate, error) {
	var template models.ReportTemplate
	query := `SELECT * FROM report_template WHERE template_key = $1`

	err := r.db.GetContext(ctx, &template, query, templateKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report template: %w", err)
	}

	return &template, nil
}

func (r *TemplateRepository) Upsert(ctx context.Context, template *models.ReportTemplate) error {
	template.UpdatedAt = time.Now()

	query := `
		INSERT INTO report_template (template_key, relative_path, updated_at)
		VALUES (:template_key, :relative_path, :updated_at)
		ON CONFLICT (template_key) DO UPDATE SET
			relative_path = EXCLUDED.relative_path,
			updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, template)
	if err != nil {
		return fmt.Errorf("failed to upsert report template: %w", err)
	}

	return nil
}

func (r *TemplateRepository) GetAll(ctx context.Context) ([]models.ReportTemplate, error) {
	var templates []models.ReportTemplate
	query := `SELECT * FROM report_template ORDER BY template_key`

	err := r.db.SelectContext(ctx, &templates, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get report templates: %w", err)
	}

	return templates, nil
}
