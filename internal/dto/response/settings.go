package response

import (
	"tour-booking/internal/data/entity"
)

type SettingsResponse struct {
	Name              string `json:"name"`
	Slug              string `json:"slug"`
	Currency          string `json:"currency"`
	AutoCancelEnabled bool   `json:"auto_cancel_enabled"`
	AutoCancelMinutes int    `json:"auto_cancel_minutes"`
}

func SettingsToResponse(business *entity.Business) SettingsResponse {
	return SettingsResponse{
		Name:              business.Name,
		Slug:              business.Slug,
		Currency:          business.Currency,
		AutoCancelEnabled: business.AutoCancelEnabled,
		AutoCancelMinutes: business.AutoCancelMinutes,
	}
}
