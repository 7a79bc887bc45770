package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"
	"tour-booking/internal/dto/response"
	"tour-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo          *repository.Repository
	sessionExpiry time.Duration
	log           *zap.Logger
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		repo:          repo,
		sessionExpiry: time.Duration(config.Auth.SessionExpiryHours) * time.Hour,
		log:           log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	profile, err := s.repo.Profile.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.IsActive {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("Login failed", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	token := utils.GenerateSessionToken()

	now := time.Now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		ProfileID: profile.ID,
		Token:     token,
		ExpiresAt: now.Add(s.sessionExpiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info("Login succeeded",
		zap.String("profile_id", profile.ID.String()),
		zap.String("email", profile.Email),
	)

	return &response.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		Profile: response.ProfileResponse{
			ID:       profile.ID.String(),
			Email:    profile.Email,
			FullName: profile.FullName,
			Role:     profile.Role,
		},
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.DeleteByToken(ctx, token); err != nil {
		return err
	}
	s.log.Info("Logout succeeded")
	return nil
}
