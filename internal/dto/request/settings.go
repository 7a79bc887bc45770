package request

type UpdateSettingsRequest struct {
	Name              string `json:"name" validate:"required,min=2,max=120"`
	Currency          string `json:"currency" validate:"required,len=3"`
	AutoCancelEnabled bool   `json:"auto_cancel_enabled"`
	AutoCancelMinutes int    `json:"auto_cancel_minutes" validate:"required_if=AutoCancelEnabled true,omitempty,min=5,max=1440"`
}
