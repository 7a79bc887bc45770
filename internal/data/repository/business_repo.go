package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BusinessRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Business, error)
	UpdateSettings(ctx context.Context, business *entity.Business) error
}

type businessRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBusinessRepository(db database.PgxIface, log *zap.Logger) BusinessRepository {
	return &businessRepository{
		db:  db,
		log: log.With(zap.String("repository", "business")),
	}
}

const businessColumns = `id, name, slug, currency, auto_cancel_enabled, auto_cancel_minutes, created_at, updated_at`

func scanBusiness(row pgx.Row) (*entity.Business, error) {
	var business entity.Business
	err := row.Scan(
		&business.ID,
		&business.Name,
		&business.Slug,
		&business.Currency,
		&business.AutoCancelEnabled,
		&business.AutoCancelMinutes,
		&business.CreatedAt,
		&business.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &business, nil
}

func (r *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE id = $1`

	business, err := scanBusiness(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find business by ID",
			zap.Error(err),
			zap.String("business_id", id.String()),
		)
		return nil, fmt.Errorf("find business by ID %s: %w", id.String(), err)
	}

	return business, nil
}

func (r *businessRepository) FindBySlug(ctx context.Context, slug string) (*entity.Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses WHERE slug = $1`

	business, err := scanBusiness(r.db.QueryRow(ctx, query, slug))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find business by slug",
			zap.Error(err),
			zap.String("slug", slug),
		)
		return nil, fmt.Errorf("find business by slug %s: %w", slug, err)
	}

	return business, nil
}

func (r *businessRepository) UpdateSettings(ctx context.Context, business *entity.Business) error {
	query := `
		UPDATE businesses
		SET name = $2, currency = $3, auto_cancel_enabled = $4, auto_cancel_minutes = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		business.ID,
		business.Name,
		business.Currency,
		business.AutoCancelEnabled,
		business.AutoCancelMinutes,
		business.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update business settings",
			zap.Error(err),
			zap.String("business_id", business.ID.String()),
		)
		return fmt.Errorf("update business %s settings: %w", business.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("business %s not found", business.ID.String())
	}

	return nil
}
