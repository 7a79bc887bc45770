package response

import (
	"tour-booking/internal/data/entity"
)

type SlotResponse struct {
	ID          string `json:"id"`
	ServiceID   string `json:"service_id"`
	SlotDate    string `json:"slot_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Capacity    int    `json:"capacity"`
	BookedCount int    `json:"booked_count"`
	Remaining   int    `json:"remaining"`
	IsBlocked   bool   `json:"is_blocked"`
}

func SlotToResponse(slot *entity.AvailabilitySlot) SlotResponse {
	return SlotResponse{
		ID:          slot.ID.String(),
		ServiceID:   slot.ServiceID.String(),
		SlotDate:    slot.SlotDate.Format("2006-01-02"),
		StartTime:   slot.StartTime,
		EndTime:     slot.EndTime,
		Capacity:    slot.Capacity,
		BookedCount: slot.BookedCount,
		Remaining:   slot.Remaining(),
		IsBlocked:   slot.IsBlocked,
	}
}
