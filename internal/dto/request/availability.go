package request

type CreateSlotRequest struct {
	ServiceID string `json:"service_id" validate:"required,uuid4"`
	SlotDate  string `json:"slot_date" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
	Capacity  int    `json:"capacity" validate:"required,min=1"`
}

// GenerateSlotsRequest creates slots on a recurring weekday pattern over a
// date range. Weekdays follow time.Weekday numbering (0 = Sunday).
type GenerateSlotsRequest struct {
	ServiceID string `json:"service_id" validate:"required,uuid4"`
	DateFrom  string `json:"date_from" validate:"required,datetime=2006-01-02"`
	DateTo    string `json:"date_to" validate:"required,datetime=2006-01-02"`
	Weekdays  []int  `json:"weekdays" validate:"required,min=1,dive,min=0,max=6"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"required,datetime=15:04"`
	Capacity  int    `json:"capacity" validate:"required,min=1"`
}
