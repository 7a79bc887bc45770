package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

type BookingFilter struct {
	BusinessID uuid.UUID
	Status     *entity.BookingStatus
	DateFrom   *time.Time
	DateTo     *time.Time
}

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	FindByBusiness(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error)
	CountByBusiness(ctx context.Context, filter BookingFilter) (int64, error)
	FindExpiredPending(ctx context.Context, now time.Time, limit int) ([]*entity.Booking, error)

	Confirm(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID, reason string, at time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, business_id, slot_id, service_id, customer_name, customer_email, customer_phone, pax, subtotal, addons_total, total_amount, status, expires_at, cancelled_at, cancelled_reason, created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.BusinessID,
		&booking.SlotID,
		&booking.ServiceID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.Pax,
		&booking.Subtotal,
		&booking.AddonsTotal,
		&booking.TotalAmount,
		&booking.Status,
		&booking.ExpiresAt,
		&booking.CancelledAt,
		&booking.CancelledReason,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (` + bookingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.BusinessID,
		booking.SlotID,
		booking.ServiceID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.Pax,
		booking.Subtotal,
		booking.AddonsTotal,
		booking.TotalAmount,
		booking.Status,
		booking.ExpiresAt,
		booking.CancelledAt,
		booking.CancelledReason,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.log.Warn("Booking reference collision",
				zap.String("reference", booking.Reference),
			)
			return ErrDuplicateReference
		}
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, reference))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", reference, err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByBusiness(ctx context.Context, filter BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE business_id = $1
		  AND ($2::text IS NULL OR status = $2)
		  AND ($3::timestamptz IS NULL OR created_at >= $3)
		  AND ($4::timestamptz IS NULL OR created_at <= $4)
		ORDER BY created_at DESC
		LIMIT $5 OFFSET $6
	`

	rows, err := r.db.Query(ctx, query, filter.BusinessID, filter.Status, filter.DateFrom, filter.DateTo, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by business",
			zap.Error(err),
			zap.String("business_id", filter.BusinessID.String()),
		)
		return nil, fmt.Errorf("find bookings by business %s: %w", filter.BusinessID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByBusiness(ctx context.Context, filter BookingFilter) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE business_id = $1
		  AND ($2::text IS NULL OR status = $2)
		  AND ($3::timestamptz IS NULL OR created_at >= $3)
		  AND ($4::timestamptz IS NULL OR created_at <= $4)
	`

	var count int64
	err := r.db.QueryRow(ctx, query, filter.BusinessID, filter.Status, filter.DateFrom, filter.DateTo).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by business",
			zap.Error(err),
			zap.String("business_id", filter.BusinessID.String()),
		)
		return 0, fmt.Errorf("count bookings by business %s: %w", filter.BusinessID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindExpiredPending(ctx context.Context, now time.Time, limit int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE status = 'pending' AND expires_at IS NOT NULL AND expires_at < $1
		ORDER BY expires_at
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		r.log.Error("Failed to find expired pending bookings", zap.Error(err))
		return nil, fmt.Errorf("find expired pending bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

// Confirm moves a booking to confirmed and clears the payment deadline.
func (r *bookingRepository) Confirm(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE bookings
		SET status = 'confirmed', expires_at = NULL, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to confirm booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("confirm booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *bookingRepository) Cancel(ctx context.Context, id uuid.UUID, reason string, at time.Time) error {
	query := `
		UPDATE bookings
		SET status = 'cancelled', cancelled_at = $2, cancelled_reason = $3, updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query, id, at, reason)
	if err != nil {
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("cancel booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}
