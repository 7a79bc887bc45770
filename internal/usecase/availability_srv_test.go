package usecase

import (
	"context"
	"testing"
	"time"

	"tour-booking/internal/data/repository"
	"tour-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGenerateSlotsWeekdayPattern(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewAvailabilityService(f.repo, zap.NewNop())

	// 2026-09-01 is a Tuesday; two full weeks follow.
	resp, err := svc.GenerateSlots(context.Background(), &request.GenerateSlotsRequest{
		ServiceID: f.tour.ID.String(),
		DateFrom:  "2026-09-01",
		DateTo:    "2026-09-14",
		Weekdays:  []int{6, 0}, // Saturday and Sunday
		StartTime: "09:00",
		EndTime:   "11:00",
		Capacity:  12,
	})
	require.NoError(t, err)
	require.Len(t, resp, 4)

	dates := make([]string, len(resp))
	for i, slot := range resp {
		dates[i] = slot.SlotDate
		assert.Equal(t, 12, slot.Capacity)
		assert.Equal(t, 12, slot.Remaining)
		assert.Equal(t, "09:00", slot.StartTime)
	}
	assert.ElementsMatch(t, []string{"2026-09-05", "2026-09-06", "2026-09-12", "2026-09-13"}, dates)
}

func TestGenerateSlotsNoMatchingDays(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewAvailabilityService(f.repo, zap.NewNop())

	// 2026-09-07 to 09-11 is Monday through Friday.
	resp, err := svc.GenerateSlots(context.Background(), &request.GenerateSlotsRequest{
		ServiceID: f.tour.ID.String(),
		DateFrom:  "2026-09-07",
		DateTo:    "2026-09-11",
		Weekdays:  []int{6},
		StartTime: "09:00",
		EndTime:   "11:00",
		Capacity:  12,
	})
	require.NoError(t, err)
	assert.Empty(t, resp)
}

func TestGenerateSlotsInvertedRange(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewAvailabilityService(f.repo, zap.NewNop())

	_, err := svc.GenerateSlots(context.Background(), &request.GenerateSlotsRequest{
		ServiceID: f.tour.ID.String(),
		DateFrom:  "2026-09-14",
		DateTo:    "2026-09-01",
		Weekdays:  []int{0},
		StartTime: "09:00",
		EndTime:   "11:00",
		Capacity:  12,
	})
	assert.Error(t, err)
}

func TestListOpenSlotsFiltersBlockedAndFull(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewAvailabilityService(f.repo, zap.NewNop())
	ctx := context.Background()

	slots := f.repo.Availability.(*fakeAvailabilityRepo).slots

	blocked := *f.slot
	blocked.ID = uuid.New()
	blocked.IsBlocked = true
	slots[blocked.ID] = &blocked

	full := *f.slot
	full.ID = uuid.New()
	full.BookedCount = full.Capacity
	slots[full.ID] = &full

	from := f.slot.SlotDate.AddDate(0, 0, -1)
	to := f.slot.SlotDate.AddDate(0, 0, 1)

	open, err := svc.ListOpenSlots(ctx, f.tour.ID.String(), from, to)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, f.slot.ID.String(), open[0].ID)
	assert.Equal(t, 2, open[0].Remaining)

	// Staff listing shows everything.
	all, err := svc.ListSlots(ctx, f.tour.ID.String(), from, to)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteSlotWithBookings(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewAvailabilityService(f.repo, zap.NewNop())
	ctx := context.Background()

	err := svc.DeleteSlot(ctx, f.slot.ID.String())
	assert.ErrorIs(t, err, repository.ErrSlotHasBookings)

	f.slot.BookedCount = 0
	require.NoError(t, svc.DeleteSlot(ctx, f.slot.ID.String()))

	err = svc.DeleteSlot(ctx, f.slot.ID.String())
	assert.ErrorIs(t, err, repository.ErrSlotNotFound)
}

func TestBlockUnblockSlot(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewAvailabilityService(f.repo, zap.NewNop())
	ctx := context.Background()

	slot, err := svc.SetBlocked(ctx, f.slot.ID.String(), true)
	require.NoError(t, err)
	assert.True(t, slot.IsBlocked)

	// Existing bookings keep their spots while the slot is blocked.
	assert.Equal(t, 8, f.slot.BookedCount)

	slot, err = svc.SetBlocked(ctx, f.slot.ID.String(), false)
	require.NoError(t, err)
	assert.False(t, slot.IsBlocked)
}

func TestCreateSlotUnknownService(t *testing.T) {
	f := newBookingFixture(t)
	svc := NewAvailabilityService(f.repo, zap.NewNop())

	_, err := svc.CreateSlot(context.Background(), &request.CreateSlotRequest{
		ServiceID: uuid.NewString(),
		SlotDate:  time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		StartTime: "10:00",
		EndTime:   "12:00",
		Capacity:  8,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
