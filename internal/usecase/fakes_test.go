package usecase

import (
	"context"
	"errors"
	"sort"
	"time"

	"tour-booking/internal/data/entity"
	"tour-booking/internal/data/repository"

	"github.com/google/uuid"
)

var errItemInsert = errors.New("item insert failed")

// In-memory repository fakes. They mirror the behavior the SQL layer
// guarantees (conditional capacity updates, unique references, clamped
// release) so the services can be exercised without a database.

type fakeBusinessRepo struct {
	businesses map[uuid.UUID]*entity.Business
}

func (f *fakeBusinessRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Business, error) {
	return f.businesses[id], nil
}

func (f *fakeBusinessRepo) FindBySlug(_ context.Context, slug string) (*entity.Business, error) {
	for _, b := range f.businesses {
		if b.Slug == slug {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBusinessRepo) UpdateSettings(_ context.Context, business *entity.Business) error {
	f.businesses[business.ID] = business
	return nil
}

type fakeServiceRepo struct {
	services map[uuid.UUID]*entity.Service
}

func (f *fakeServiceRepo) Create(_ context.Context, service *entity.Service) error {
	f.services[service.ID] = service
	return nil
}

func (f *fakeServiceRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Service, error) {
	return f.services[id], nil
}

func (f *fakeServiceRepo) FindByBusiness(_ context.Context, businessID uuid.UUID, activeOnly bool) ([]*entity.Service, error) {
	var out []*entity.Service
	for _, svc := range f.services {
		if svc.BusinessID != businessID {
			continue
		}
		if activeOnly && !svc.IsActive {
			continue
		}
		out = append(out, svc)
	}
	return out, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, service *entity.Service) error {
	f.services[service.ID] = service
	return nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.services, id)
	return nil
}

type fakeAddonRepo struct {
	addons map[uuid.UUID]*entity.ServiceAddon
}

func (f *fakeAddonRepo) Create(_ context.Context, addon *entity.ServiceAddon) error {
	f.addons[addon.ID] = addon
	return nil
}

func (f *fakeAddonRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ServiceAddon, error) {
	return f.addons[id], nil
}

func (f *fakeAddonRepo) FindByServiceID(_ context.Context, serviceID uuid.UUID, activeOnly bool) ([]*entity.ServiceAddon, error) {
	var out []*entity.ServiceAddon
	for _, addon := range f.addons {
		if addon.ServiceID != serviceID {
			continue
		}
		if activeOnly && !addon.IsActive {
			continue
		}
		out = append(out, addon)
	}
	return out, nil
}

func (f *fakeAddonRepo) Update(_ context.Context, addon *entity.ServiceAddon) error {
	f.addons[addon.ID] = addon
	return nil
}

func (f *fakeAddonRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.addons, id)
	return nil
}

type fakeAvailabilityRepo struct {
	slots map[uuid.UUID]*entity.AvailabilitySlot
}

func (f *fakeAvailabilityRepo) Create(_ context.Context, slot *entity.AvailabilitySlot) error {
	f.slots[slot.ID] = slot
	return nil
}

func (f *fakeAvailabilityRepo) CreateBatch(_ context.Context, slots []*entity.AvailabilitySlot) error {
	for _, slot := range slots {
		f.slots[slot.ID] = slot
	}
	return nil
}

func (f *fakeAvailabilityRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AvailabilitySlot, error) {
	return f.slots[id], nil
}

func (f *fakeAvailabilityRepo) FindByService(_ context.Context, serviceID uuid.UUID, from, to time.Time) ([]*entity.AvailabilitySlot, error) {
	var out []*entity.AvailabilitySlot
	for _, slot := range f.slots {
		if slot.ServiceID != serviceID {
			continue
		}
		if slot.SlotDate.Before(from) || slot.SlotDate.After(to) {
			continue
		}
		out = append(out, slot)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotDate.Before(out[j].SlotDate) })
	return out, nil
}

func (f *fakeAvailabilityRepo) SetBlocked(_ context.Context, id uuid.UUID, blocked bool) error {
	slot, ok := f.slots[id]
	if !ok {
		return repository.ErrSlotNotFound
	}
	slot.IsBlocked = blocked
	return nil
}

func (f *fakeAvailabilityRepo) Delete(_ context.Context, id uuid.UUID) error {
	slot, ok := f.slots[id]
	if !ok {
		return repository.ErrSlotNotFound
	}
	if slot.BookedCount > 0 {
		return repository.ErrSlotHasBookings
	}
	delete(f.slots, id)
	return nil
}

func (f *fakeAvailabilityRepo) ReserveCapacity(_ context.Context, id uuid.UUID, pax int) error {
	slot, ok := f.slots[id]
	if !ok {
		return repository.ErrSlotNotFound
	}
	if slot.IsBlocked {
		return repository.ErrSlotBlocked
	}
	if slot.BookedCount+pax > slot.Capacity {
		return &repository.CapacityExceededError{Remaining: slot.Remaining()}
	}
	slot.BookedCount += pax
	return nil
}

func (f *fakeAvailabilityRepo) ReleaseCapacity(_ context.Context, id uuid.UUID, pax int) error {
	slot, ok := f.slots[id]
	if !ok {
		return repository.ErrSlotNotFound
	}
	slot.BookedCount -= pax
	if slot.BookedCount < 0 {
		slot.BookedCount = 0
	}
	return nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*entity.Booking

	takenReferences map[string]bool

	// rejectFirst makes the first N inserts report a reference collision,
	// simulating concurrent bookings landing the same code.
	rejectFirst int
	createCalls int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *entity.Booking) error {
	f.createCalls++
	if f.createCalls <= f.rejectFirst {
		return repository.ErrDuplicateReference
	}
	if f.takenReferences[booking.Reference] {
		return repository.ErrDuplicateReference
	}
	f.takenReferences[booking.Reference] = true
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return f.bookings[id], nil
}

func (f *fakeBookingRepo) FindByReference(_ context.Context, reference string) (*entity.Booking, error) {
	for _, b := range f.bookings {
		if b.Reference == reference {
			return b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByBusiness(_ context.Context, filter repository.BookingFilter, limit, offset int) ([]*entity.Booking, error) {
	matched := f.filter(filter)
	if offset >= len(matched) {
		return nil, nil
	}
	matched = matched[offset:]
	if limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

func (f *fakeBookingRepo) CountByBusiness(_ context.Context, filter repository.BookingFilter) (int64, error) {
	return int64(len(f.filter(filter))), nil
}

func (f *fakeBookingRepo) filter(filter repository.BookingFilter) []*entity.Booking {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.BusinessID != filter.BusinessID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if filter.DateFrom != nil && b.CreatedAt.Before(*filter.DateFrom) {
			continue
		}
		if filter.DateTo != nil && b.CreatedAt.After(*filter.DateTo) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (f *fakeBookingRepo) FindExpiredPending(_ context.Context, now time.Time, limit int) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.IsExpired(now) {
			out = append(out, b)
		}
	}
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBookingRepo) Confirm(_ context.Context, id uuid.UUID) error {
	b, ok := f.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	b.Status = entity.BookingStatusConfirmed
	b.ExpiresAt = nil
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id uuid.UUID, reason string, at time.Time) error {
	b, ok := f.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	b.Status = entity.BookingStatusCancelled
	b.CancelledReason = &reason
	b.CancelledAt = &at
	return nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return repository.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.bookings, id)
	return nil
}

type fakeBookingItemRepo struct {
	items map[uuid.UUID][]*entity.BookingItem

	failCreate bool
}

func (f *fakeBookingItemRepo) CreateBatch(_ context.Context, items []*entity.BookingItem) error {
	if f.failCreate {
		return errItemInsert
	}
	for _, item := range items {
		f.items[item.BookingID] = append(f.items[item.BookingID], item)
	}
	return nil
}

func (f *fakeBookingItemRepo) FindByBookingID(_ context.Context, bookingID uuid.UUID) ([]*entity.BookingItem, error) {
	return f.items[bookingID], nil
}

type fakePaymentRepo struct {
	payments map[uuid.UUID]*entity.Payment
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *entity.Payment) error {
	f.payments[payment.ID] = payment
	return nil
}

func (f *fakePaymentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Payment, error) {
	return f.payments[id], nil
}

func (f *fakePaymentRepo) FindByGatewayPaymentID(_ context.Context, gatewayPaymentID string) (*entity.Payment, error) {
	for _, p := range f.payments {
		if p.GatewayPaymentID == gatewayPaymentID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindLatestByBookingID(_ context.Context, bookingID uuid.UUID) (*entity.Payment, error) {
	var latest *entity.Payment
	for _, p := range f.payments {
		if p.BookingID != bookingID {
			continue
		}
		if latest == nil || p.CreatedAt.After(latest.CreatedAt) {
			latest = p
		}
	}
	return latest, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.PaymentStatus, transactionID, exchangeReference *string) error {
	p, ok := f.payments[id]
	if !ok {
		return repository.ErrPaymentNotFound
	}
	p.Status = status
	if transactionID != nil {
		p.TransactionID = transactionID
	}
	if exchangeReference != nil {
		p.ExchangeReference = exchangeReference
	}
	return nil
}

type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func (f *fakeProfileRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Profile, error) {
	return f.profiles[id], nil
}

func (f *fakeProfileRepo) FindByEmail(_ context.Context, email string) (*entity.Profile, error) {
	for _, p := range f.profiles {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

// newFakeRepository wires all fakes into the aggregate the services take.
func newFakeRepository() *repository.Repository {
	return &repository.Repository{
		Business:     &fakeBusinessRepo{businesses: map[uuid.UUID]*entity.Business{}},
		Service:      &fakeServiceRepo{services: map[uuid.UUID]*entity.Service{}},
		ServiceAddon: &fakeAddonRepo{addons: map[uuid.UUID]*entity.ServiceAddon{}},
		Availability: &fakeAvailabilityRepo{slots: map[uuid.UUID]*entity.AvailabilitySlot{}},
		Booking: &fakeBookingRepo{
			bookings:        map[uuid.UUID]*entity.Booking{},
			takenReferences: map[string]bool{},
		},
		BookingItem: &fakeBookingItemRepo{items: map[uuid.UUID][]*entity.BookingItem{}},
		Payment:     &fakePaymentRepo{payments: map[uuid.UUID]*entity.Payment{}},
		Profile:     &fakeProfileRepo{profiles: map[uuid.UUID]*entity.Profile{}},
		Session:     &fakeSessionRepo{sessions: map[string]*entity.Session{}},
	}
}
