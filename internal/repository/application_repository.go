package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"report-service/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type ApplicationRepository struct {
	db *sqlx.DB
}

func NewApplicationRepository(db *sqlx.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, app *models.Application) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	}
	app.CreatedAt = time.Now()
	app.UpdatedAt = time.Now()

	query := `
		INSERT INTO application (
			id, reference_number, state, first_name, last_name, email,
			is_legal_entity, submitted_at, created_at, updated_at
		) VALUES (
			:id, :reference_number, :state, :first_name, :last_name, :email,
			:is_legal_entity, :submitted_at, :created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, app)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	if app.IsLegalEntity && app.LegalEntity != nil {
		if err := r.upsertLegalEntity(ctx, app.ID, app.LegalEntity); err != nil {
			return err
		}
	}

	return nil
}

func (r *ApplicationRepository) upsertLegalEntity(ctx context.Context, applicationID uuid.UUID, entity *models.LegalEntity) error {
	query := `
		INSERT INTO application_legal_entity (application_id, registered_name, registration_number, vat_number)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (application_id) DO UPDATE SET
			registered_name = EXCLUDED.registered_name,
			registration_number = EXCLUDED.registration_number,
			vat_number = EXCLUDED.vat_number`

	_, err := r.db.ExecContext(ctx, query, applicationID, entity.RegisteredName, entity.RegistrationNumber, entity.VATNumber)
	if err != nil {
		return fmt.Errorf("failed to upsert legal entity detail: %w", err)
	}

	return nil
}

// FindByID loads an application with its legal entity detail, products,
// funds and current (unresolved) review. Returns (nil, nil) when no
// application exists for the given identifier.
func (r *ApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	query := `SELECT * FROM application WHERE id = $1`

	err := r.db.GetContext(ctx, &app, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}

	if app.IsLegalEntity {
		entity, err := r.getLegalEntity(ctx, id)
		if err != nil {
			return nil, err
		}
		app.LegalEntity = entity
	}

	products, err := r.getProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	app.Products = products

	review, err := r.getCurrentReview(ctx, id)
	if err != nil {
		return nil, err
	}
	app.CurrentReview = review

	return &app, nil
}

func (r *ApplicationRepository) getLegalEntity(ctx context.Context, applicationID uuid.UUID) (*models.LegalEntity, error) {
	var entity models.LegalEntity
	query := `SELECT registered_name, registration_number, vat_number
		FROM application_legal_entity WHERE application_id = $1`

	err := r.db.GetContext(ctx, &entity, query, applicationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get legal entity detail: %w", err)
	}

	return &entity, nil
}

func (r *ApplicationRepository) getProducts(ctx context.Context, applicationID uuid.UUID) ([]models.Product, error) {
	var products []models.Product
	query := `SELECT * FROM application_product WHERE application_id = $1 ORDER BY product_name`

	err := r.db.SelectContext(ctx, &products, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application products: %w", err)
	}

	for i := range products {
		var funds []models.Fund
		fundQuery := `SELECT * FROM product_fund WHERE product_id = $1 ORDER BY fund_name`

		err := r.db.SelectContext(ctx, &funds, fundQuery, products[i].ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get product funds: %w", err)
		}
		products[i].Funds = funds
	}

	return products, nil
}

func (r *ApplicationRepository) getCurrentReview(ctx context.Context, applicationID uuid.UUID) (*models.Review, error) {
	var review models.Review
	query := `SELECT * FROM application_review
		WHERE application_id = $1 AND resolved_at IS NULL
		ORDER BY opened_at DESC LIMIT 1`

	err := r.db.GetContext(ctx, &review, query, applicationID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get current review: %w", err)
	}

	return &review, nil
}

func (r *ApplicationRepository) GetAll(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	query := `SELECT * FROM application ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &apps, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get applications: %w", err)
	}

	return apps, nil
}

func (r *ApplicationRepository) UpdateState(ctx context.Context, id uuid.UUID, state models.ApplicationState) error {
	query := `UPDATE application SET state = $1, updated_at = $2 WHERE id = $3`

	result, err := r.db.ExecContext(ctx, query, state, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update application state: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("application %s not found", id)
	}

	return nil
}
