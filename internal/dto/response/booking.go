package response

import (
	"time"

	"tour-booking/internal/data/entity"
)

type BookingItemResponse struct {
	AddonID  string  `json:"addon_id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type BookingResponse struct {
	ID              string                `json:"id"`
	Reference       string                `json:"reference"`
	SlotID          *string               `json:"slot_id,omitempty"`
	ServiceID       string                `json:"service_id"`
	ServiceName     string                `json:"service_name,omitempty"`
	SlotDate        string                `json:"slot_date,omitempty"`
	StartTime       string                `json:"start_time,omitempty"`
	CustomerName    string                `json:"customer_name"`
	CustomerEmail   string                `json:"customer_email"`
	CustomerPhone   string                `json:"customer_phone"`
	Pax             int                   `json:"pax"`
	Subtotal        float64               `json:"subtotal"`
	AddonsTotal     float64               `json:"addons_total"`
	TotalAmount     float64               `json:"total_amount"`
	Status          entity.BookingStatus  `json:"status"`
	ExpiresAt       *time.Time            `json:"expires_at,omitempty"`
	CancelledAt     *time.Time            `json:"cancelled_at,omitempty"`
	CancelledReason *string               `json:"cancelled_reason,omitempty"`
	Items           []BookingItemResponse `json:"items,omitempty"`
	Payment         *PaymentResponse      `json:"payment,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              booking.ID.String(),
		Reference:       booking.Reference,
		ServiceID:       booking.ServiceID.String(),
		CustomerName:    booking.CustomerName,
		CustomerEmail:   booking.CustomerEmail,
		CustomerPhone:   booking.CustomerPhone,
		Pax:             booking.Pax,
		Subtotal:        booking.Subtotal,
		AddonsTotal:     booking.AddonsTotal,
		TotalAmount:     booking.TotalAmount,
		Status:          booking.Status,
		ExpiresAt:       booking.ExpiresAt,
		CancelledAt:     booking.CancelledAt,
		CancelledReason: booking.CancelledReason,
		CreatedAt:       booking.CreatedAt,
	}

	if booking.SlotID != nil {
		slotID := booking.SlotID.String()
		resp.SlotID = &slotID
	}

	return resp
}

func BookingItemToResponse(item *entity.BookingItem) BookingItemResponse {
	return BookingItemResponse{
		AddonID:  item.AddonID.String(),
		Name:     item.Name,
		Price:    item.Price,
		Quantity: item.Quantity,
	}
}
