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

type ProfileRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

const profileColumns = `id, business_id, email, password_hash, full_name, role, is_active, created_at, updated_at`

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	var profile entity.Profile
	err := row.Scan(
		&profile.ID,
		&profile.BusinessID,
		&profile.Email,
		&profile.PasswordHash,
		&profile.FullName,
		&profile.Role,
		&profile.IsActive,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile by ID",
			zap.Error(err),
			zap.String("profile_id", id.String()),
		)
		return nil, fmt.Errorf("find profile by ID %s: %w", id.String(), err)
	}

	return profile, nil
}

func (r *profileRepository) FindByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE email = $1`

	profile, err := scanProfile(r.db.QueryRow(ctx, query, email))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find profile by email %s: %w", email, err)
	}

	return profile, nil
}
