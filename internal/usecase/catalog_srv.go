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
)

// CatalogService manages the tour services and their add-ons.
type CatalogService interface {
	ListServicesBySlug(ctx context.Context, slug string, activeOnly bool) ([]response.ServiceResponse, error)
	ListServices(ctx context.Context, businessID string, activeOnly bool) ([]response.ServiceResponse, error)
	GetService(ctx context.Context, serviceID string) (*response.ServiceResponse, error)
	CreateService(ctx context.Context, businessID string, req *request.CreateServiceRequest) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error)
	DeleteService(ctx context.Context, serviceID string) error
	CreateAddon(ctx context.Context, serviceID string, req *request.CreateAddonRequest) (*response.AddonResponse, error)
	UpdateAddon(ctx context.Context, addonID string, req *request.UpdateAddonRequest) (*response.AddonResponse, error)
	DeleteAddon(ctx context.Context, addonID string) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

// ListServicesBySlug is the public catalog view, keyed by the tenant
// slug the storefront is deployed under.
func (s *catalogService) ListServicesBySlug(ctx context.Context, slug string, activeOnly bool) ([]response.ServiceResponse, error) {
	business, err := s.repo.Business.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, fmt.Errorf("business %s not found", slug)
	}
	return s.list(ctx, business.ID, activeOnly)
}

func (s *catalogService) ListServices(ctx context.Context, businessID string, activeOnly bool) ([]response.ServiceResponse, error) {
	id, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("invalid business id: %w", err)
	}
	return s.list(ctx, id, activeOnly)
}

func (s *catalogService) list(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]response.ServiceResponse, error) {
	services, err := s.repo.Service.FindByBusiness(ctx, businessID, activeOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]response.ServiceResponse, 0, len(services))
	for _, svc := range services {
		item := response.ServiceToResponse(svc)
		addons, err := s.repo.ServiceAddon.FindByServiceID(ctx, svc.ID, activeOnly)
		if err != nil {
			return nil, err
		}
		for _, addon := range addons {
			item.Addons = append(item.Addons, response.AddonToResponse(addon))
		}
		resp = append(resp, item)
	}
	return resp, nil
}

func (s *catalogService) GetService(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service id: %w", err)
	}

	svc, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}

	resp := response.ServiceToResponse(svc)
	addons, err := s.repo.ServiceAddon.FindByServiceID(ctx, svc.ID, false)
	if err != nil {
		return nil, err
	}
	for _, addon := range addons {
		resp.Addons = append(resp.Addons, response.AddonToResponse(addon))
	}
	return &resp, nil
}

func (s *catalogService) CreateService(ctx context.Context, businessID string, req *request.CreateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(businessID)
	if err != nil {
		return nil, fmt.Errorf("invalid business id: %w", err)
	}

	now := time.Now()
	svc := &entity.Service{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BusinessID:      id,
		Name:            req.Name,
		Description:     req.Description,
		BasePrice:       req.BasePrice,
		DurationMinutes: req.DurationMinutes,
		IsActive:        req.IsActive,
	}

	if err := s.repo.Service.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.log.Info("Service created",
		zap.String("service_id", svc.ID.String()),
		zap.String("name", svc.Name),
	)

	resp := response.ServiceToResponse(svc)
	return &resp, nil
}

func (s *catalogService) UpdateService(ctx context.Context, serviceID string, req *request.UpdateServiceRequest) (*response.ServiceResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service id: %w", err)
	}

	svc, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}

	svc.Name = req.Name
	svc.Description = req.Description
	svc.BasePrice = req.BasePrice
	svc.DurationMinutes = req.DurationMinutes
	svc.IsActive = req.IsActive
	svc.UpdatedAt = time.Now()

	if err := s.repo.Service.Update(ctx, svc); err != nil {
		return nil, err
	}

	s.log.Info("Service updated", zap.String("service_id", serviceID))

	resp := response.ServiceToResponse(svc)
	return &resp, nil
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID string) error {
	id, err := uuid.Parse(serviceID)
	if err != nil {
		return fmt.Errorf("invalid service id: %w", err)
	}

	if err := s.repo.Service.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Service deleted", zap.String("service_id", serviceID))
	return nil
}

func (s *catalogService) CreateAddon(ctx context.Context, serviceID string, req *request.CreateAddonRequest) (*response.AddonResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(serviceID)
	if err != nil {
		return nil, fmt.Errorf("invalid service id: %w", err)
	}

	svc, err := s.repo.Service.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s not found", serviceID)
	}

	now := time.Now()
	addon := &entity.ServiceAddon{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ServiceID: id,
		Name:      req.Name,
		Price:     req.Price,
		IsActive:  req.IsActive,
	}

	if err := s.repo.ServiceAddon.Create(ctx, addon); err != nil {
		return nil, err
	}

	s.log.Info("Addon created",
		zap.String("addon_id", addon.ID.String()),
		zap.String("service_id", serviceID),
	)

	resp := response.AddonToResponse(addon)
	return &resp, nil
}

func (s *catalogService) UpdateAddon(ctx context.Context, addonID string, req *request.UpdateAddonRequest) (*response.AddonResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(addonID)
	if err != nil {
		return nil, fmt.Errorf("invalid addon id: %w", err)
	}

	addon, err := s.repo.ServiceAddon.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if addon == nil {
		return nil, fmt.Errorf("addon %s not found", addonID)
	}

	addon.Name = req.Name
	addon.Price = req.Price
	addon.IsActive = req.IsActive
	addon.UpdatedAt = time.Now()

	if err := s.repo.ServiceAddon.Update(ctx, addon); err != nil {
		return nil, err
	}

	s.log.Info("Addon updated", zap.String("addon_id", addonID))

	resp := response.AddonToResponse(addon)
	return &resp, nil
}

func (s *catalogService) DeleteAddon(ctx context.Context, addonID string) error {
	id, err := uuid.Parse(addonID)
	if err != nil {
		return fmt.Errorf("invalid addon id: %w", err)
	}

	if err := s.repo.ServiceAddon.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Addon deleted", zap.String("addon_id", addonID))
	return nil
}
