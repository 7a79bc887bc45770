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

type ServiceAddonRepository interface {
	Create(ctx context.Context, addon *entity.ServiceAddon) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceAddon, error)
	FindByServiceID(ctx context.Context, serviceID uuid.UUID, activeOnly bool) ([]*entity.ServiceAddon, error)
	Update(ctx context.Context, addon *entity.ServiceAddon) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type serviceAddonRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewServiceAddonRepository(db database.PgxIface, log *zap.Logger) ServiceAddonRepository {
	return &serviceAddonRepository{
		db:  db,
		log: log.With(zap.String("repository", "service_addon")),
	}
}

const addonColumns = `id, service_id, name, price, is_active, created_at, updated_at`

func scanAddon(row pgx.Row) (*entity.ServiceAddon, error) {
	var addon entity.ServiceAddon
	err := row.Scan(
		&addon.ID,
		&addon.ServiceID,
		&addon.Name,
		&addon.Price,
		&addon.IsActive,
		&addon.CreatedAt,
		&addon.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &addon, nil
}

func (r *serviceAddonRepository) Create(ctx context.Context, addon *entity.ServiceAddon) error {
	query := `
		INSERT INTO service_addons (` + addonColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		addon.ID,
		addon.ServiceID,
		addon.Name,
		addon.Price,
		addon.IsActive,
		addon.CreatedAt,
		addon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create addon",
			zap.Error(err),
			zap.String("service_id", addon.ServiceID.String()),
			zap.String("name", addon.Name),
		)
		return fmt.Errorf("create addon %s: %w", addon.Name, err)
	}

	return nil
}

func (r *serviceAddonRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceAddon, error) {
	query := `SELECT ` + addonColumns + ` FROM service_addons WHERE id = $1`

	addon, err := scanAddon(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find addon by ID",
			zap.Error(err),
			zap.String("addon_id", id.String()),
		)
		return nil, fmt.Errorf("find addon by ID %s: %w", id.String(), err)
	}

	return addon, nil
}

func (r *serviceAddonRepository) FindByServiceID(ctx context.Context, serviceID uuid.UUID, activeOnly bool) ([]*entity.ServiceAddon, error) {
	query := `
		SELECT ` + addonColumns + `
		FROM service_addons
		WHERE service_id = $1 AND ($2 = false OR is_active)
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, serviceID, activeOnly)
	if err != nil {
		r.log.Error("Failed to find addons by service",
			zap.Error(err),
			zap.String("service_id", serviceID.String()),
		)
		return nil, fmt.Errorf("find addons by service %s: %w", serviceID.String(), err)
	}
	defer rows.Close()

	var addons []*entity.ServiceAddon
	for rows.Next() {
		addon, err := scanAddon(rows)
		if err != nil {
			r.log.Error("Failed to scan addon row", zap.Error(err))
			return nil, fmt.Errorf("scan addon row: %w", err)
		}
		addons = append(addons, addon)
	}

	return addons, nil
}

func (r *serviceAddonRepository) Update(ctx context.Context, addon *entity.ServiceAddon) error {
	query := `
		UPDATE service_addons
		SET name = $2, price = $3, is_active = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		addon.ID,
		addon.Name,
		addon.Price,
		addon.IsActive,
		addon.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update addon",
			zap.Error(err),
			zap.String("addon_id", addon.ID.String()),
		)
		return fmt.Errorf("update addon %s: %w", addon.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("addon %s not found", addon.ID.String())
	}

	return nil
}

func (r *serviceAddonRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM service_addons WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete addon",
			zap.Error(err),
			zap.String("addon_id", id.String()),
		)
		return fmt.Errorf("delete addon %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("addon %s not found", id.String())
	}

	return nil
}
