package memstore

import (
	"sync"

	"table-booking/internal/domain/booking"
)

// BookingStore owns the booking collection for the process lifetime.
// Entries are only ever appended.
type BookingStore struct {
	mu       sync.RWMutex
	bookings []*booking.Booking
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make([]*booking.Booking, 0),
	}
}

// List returns bookings in creation order.
func (s *BookingStore) List() []*booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*booking.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

func (s *BookingStore) Append(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, b)
}

func (s *BookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.bookings)
}
