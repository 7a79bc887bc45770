package repository

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AvailabilityRepository interface {
	Create(ctx context.Context, slot *entity.AvailabilitySlot) error
	CreateBatch(ctx context.Context, slots []*entity.AvailabilitySlot) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error)
	FindByService(ctx context.Context, serviceID uuid.UUID, from, to time.Time) ([]*entity.AvailabilitySlot, error)
	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Capacity ledger. ReserveCapacity is a single conditional update so
	// two concurrent reservations near full capacity cannot both pass the
	// precondition check.
	ReserveCapacity(ctx context.Context, id uuid.UUID, pax int) error
	ReleaseCapacity(ctx context.Context, id uuid.UUID, pax int) error
}

type availabilityRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAvailabilityRepository(db database.PgxIface, log *zap.Logger) AvailabilityRepository {
	return &availabilityRepository{
		db:  db,
		log: log.With(zap.String("repository", "availability")),
	}
}

const slotColumns = `id, business_id, service_id, slot_date, start_time, end_time, capacity, booked_count, is_blocked, created_at, updated_at`

func (r *availabilityRepository) Create(ctx context.Context, slot *entity.AvailabilitySlot) error {
	query := `
		INSERT INTO availability_slots (id, business_id, service_id, slot_date, start_time, end_time, capacity, booked_count, is_blocked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		slot.ID,
		slot.BusinessID,
		slot.ServiceID,
		slot.SlotDate,
		slot.StartTime,
		slot.EndTime,
		slot.Capacity,
		slot.BookedCount,
		slot.IsBlocked,
		slot.CreatedAt,
		slot.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create availability slot",
			zap.Error(err),
			zap.String("service_id", slot.ServiceID.String()),
			zap.Time("slot_date", slot.SlotDate),
		)
		return fmt.Errorf("create availability slot: %w", err)
	}

	return nil
}

func (r *availabilityRepository) CreateBatch(ctx context.Context, slots []*entity.AvailabilitySlot) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin slot batch: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO availability_slots (id, business_id, service_id, slot_date, start_time, end_time, capacity, booked_count, is_blocked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, slot := range slots {
		_, err := tx.Exec(ctx, query,
			slot.ID,
			slot.BusinessID,
			slot.ServiceID,
			slot.SlotDate,
			slot.StartTime,
			slot.EndTime,
			slot.Capacity,
			slot.BookedCount,
			slot.IsBlocked,
			slot.CreatedAt,
			slot.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create slot in batch",
				zap.Error(err),
				zap.Time("slot_date", slot.SlotDate),
				zap.String("start_time", slot.StartTime),
			)
			return fmt.Errorf("create slot batch: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit slot batch: %w", err)
	}

	return nil
}

func (r *availabilityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	query := `SELECT ` + slotColumns + ` FROM availability_slots WHERE id = $1`

	var slot entity.AvailabilitySlot
	err := r.db.QueryRow(ctx, query, id).Scan(
		&slot.ID,
		&slot.BusinessID,
		&slot.ServiceID,
		&slot.SlotDate,
		&slot.StartTime,
		&slot.EndTime,
		&slot.Capacity,
		&slot.BookedCount,
		&slot.IsBlocked,
		&slot.CreatedAt,
		&slot.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find slot by ID",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return nil, fmt.Errorf("find slot by ID %s: %w", id.String(), err)
	}

	return &slot, nil
}

func (r *availabilityRepository) FindByService(ctx context.Context, serviceID uuid.UUID, from, to time.Time) ([]*entity.AvailabilitySlot, error) {
	query := `
		SELECT ` + slotColumns + `
		FROM availability_slots
		WHERE service_id = $1 AND slot_date >= $2 AND slot_date <= $3
		ORDER BY slot_date, start_time
	`

	rows, err := r.db.Query(ctx, query, serviceID, from, to)
	if err != nil {
		r.log.Error("Failed to find slots by service",
			zap.Error(err),
			zap.String("service_id", serviceID.String()),
		)
		return nil, fmt.Errorf("find slots by service %s: %w", serviceID.String(), err)
	}
	defer rows.Close()

	var slots []*entity.AvailabilitySlot
	for rows.Next() {
		var slot entity.AvailabilitySlot
		err := rows.Scan(
			&slot.ID,
			&slot.BusinessID,
			&slot.ServiceID,
			&slot.SlotDate,
			&slot.StartTime,
			&slot.EndTime,
			&slot.Capacity,
			&slot.BookedCount,
			&slot.IsBlocked,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan slot row", zap.Error(err))
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		slots = append(slots, &slot)
	}

	return slots, nil
}

func (r *availabilityRepository) SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error {
	query := `UPDATE availability_slots SET is_blocked = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, blocked)
	if err != nil {
		r.log.Error("Failed to update slot blocked flag",
			zap.Error(err),
			zap.String("slot_id", id.String()),
			zap.Bool("blocked", blocked),
		)
		return fmt.Errorf("set slot %s blocked: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Delete removes a slot only while no booking holds capacity on it.
func (r *availabilityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM availability_slots WHERE id = $1 AND booked_count = 0`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete slot",
			zap.Error(err),
			zap.String("slot_id", id.String()),
		)
		return fmt.Errorf("delete slot %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		slot, findErr := r.FindByID(ctx, id)
		if findErr != nil {
			return findErr
		}
		if slot == nil {
			return ErrSlotNotFound
		}
		return ErrSlotHasBookings
	}

	r.log.Info("Slot deleted", zap.String("slot_id", id.String()))
	return nil
}

// ReserveCapacity increments booked_count by pax if and only if the slot
// exists, is not blocked, and has at least pax spots open. The guard runs
// inside the UPDATE itself, so a lost-update race between two concurrent
// reservations is not possible. A zero-row result is classified by reading
// the slot back.
func (r *availabilityRepository) ReserveCapacity(ctx context.Context, id uuid.UUID, pax int) error {
	query := `
		UPDATE availability_slots
		SET booked_count = booked_count + $2, updated_at = NOW()
		WHERE id = $1 AND NOT is_blocked AND booked_count + $2 <= capacity
	`

	result, err := r.db.Exec(ctx, query, id, pax)
	if err != nil {
		r.log.Error("Failed to reserve capacity",
			zap.Error(err),
			zap.String("slot_id", id.String()),
			zap.Int("pax", pax),
		)
		return fmt.Errorf("reserve capacity on slot %s: %w", id.String(), err)
	}

	if result.RowsAffected() > 0 {
		return nil
	}

	slot, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if slot == nil {
		return ErrSlotNotFound
	}
	if slot.IsBlocked {
		return ErrSlotBlocked
	}
	return &CapacityExceededError{Remaining: slot.Remaining()}
}

// ReleaseCapacity decrements booked_count by pax, clamped at zero so a
// duplicate release can never drive the counter negative.
func (r *availabilityRepository) ReleaseCapacity(ctx context.Context, id uuid.UUID, pax int) error {
	query := `
		UPDATE availability_slots
		SET booked_count = GREATEST(booked_count - $2, 0), updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, pax)
	if err != nil {
		r.log.Error("Failed to release capacity",
			zap.Error(err),
			zap.String("slot_id", id.String()),
			zap.Int("pax", pax),
		)
		return fmt.Errorf("release capacity on slot %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrSlotNotFound
	}

	return nil
}
