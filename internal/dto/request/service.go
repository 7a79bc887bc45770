package request

type CreateServiceRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=120"`
	Description     string  `json:"description" validate:"max=2000"`
	BasePrice       float64 `json:"base_price" validate:"required,gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=15"`
	IsActive        bool    `json:"is_active"`
}

type UpdateServiceRequest struct {
	Name            string  `json:"name" validate:"required,min=2,max=120"`
	Description     string  `json:"description" validate:"max=2000"`
	BasePrice       float64 `json:"base_price" validate:"required,gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,min=15"`
	IsActive        bool    `json:"is_active"`
}

type CreateAddonRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=120"`
	Price    float64 `json:"price" validate:"gte=0"`
	IsActive bool    `json:"is_active"`
}

type UpdateAddonRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=120"`
	Price    float64 `json:"price" validate:"gte=0"`
	IsActive bool    `json:"is_active"`
}
