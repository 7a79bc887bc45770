package request

type BookingAddonRequest struct {
	AddonID  string `json:"addon_id" validate:"required,uuid4"`
	Quantity int    `json:"quantity" validate:"required,min=1"`
}

type CreateBookingRequest struct {
	SlotID        string                `json:"slot_id" validate:"required,uuid4"`
	CustomerName  string                `json:"customer_name" validate:"required,min=2,max=120"`
	CustomerEmail string                `json:"customer_email" validate:"required,email"`
	CustomerPhone string                `json:"customer_phone" validate:"required,min=7,max=20"`
	Pax           int                   `json:"pax" validate:"required,min=1"`
	Addons        []BookingAddonRequest `json:"addons,omitempty" validate:"omitempty,dive"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

type ListBookingsRequest struct {
	PaginatedRequest
	Status   string `json:"status" validate:"omitempty,oneof=pending confirmed completed cancelled no_show"`
	DateFrom string `json:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `json:"date_to" validate:"omitempty,datetime=2006-01-02"`
}
