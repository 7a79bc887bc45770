package response

import (
	"tour-booking/internal/data/entity"
)

type ServiceResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	BasePrice       float64         `json:"base_price"`
	DurationMinutes int             `json:"duration_minutes"`
	IsActive        bool            `json:"is_active"`
	Addons          []AddonResponse `json:"addons,omitempty"`
}

type AddonResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	IsActive bool    `json:"is_active"`
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:              service.ID.String(),
		Name:            service.Name,
		Description:     service.Description,
		BasePrice:       service.BasePrice,
		DurationMinutes: service.DurationMinutes,
		IsActive:        service.IsActive,
	}
}

func AddonToResponse(addon *entity.ServiceAddon) AddonResponse {
	return AddonResponse{
		ID:       addon.ID.String(),
		Name:     addon.Name,
		Price:    addon.Price,
		IsActive: addon.IsActive,
	}
}
