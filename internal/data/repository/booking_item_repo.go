package repository

import (
	"context"
	"fmt"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingItemRepository interface {
	CreateBatch(ctx context.Context, items []*entity.BookingItem) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingItem, error)
}

type bookingItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingItemRepository(db database.PgxIface, log *zap.Logger) BookingItemRepository {
	return &bookingItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_item")),
	}
}

func (r *bookingItemRepository) CreateBatch(ctx context.Context, items []*entity.BookingItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO booking_items (id, booking_id, addon_id, name, price, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, item := range items {
		_, err := r.db.Exec(ctx, query,
			item.ID,
			item.BookingID,
			item.AddonID,
			item.Name,
			item.Price,
			item.Quantity,
			item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create booking item",
				zap.Error(err),
				zap.String("booking_id", item.BookingID.String()),
				zap.String("addon_id", item.AddonID.String()),
			)
			return fmt.Errorf("create booking item: %w", err)
		}
	}

	return nil
}

func (r *bookingItemRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingItem, error) {
	query := `
		SELECT id, booking_id, addon_id, name, price, quantity, created_at
		FROM booking_items
		WHERE booking_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking items",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find booking items for %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var items []*entity.BookingItem
	for rows.Next() {
		var item entity.BookingItem
		err := rows.Scan(
			&item.ID,
			&item.BookingID,
			&item.AddonID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking item row", zap.Error(err))
			return nil, fmt.Errorf("scan booking item row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}
