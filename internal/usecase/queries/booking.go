package queries

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking.go -package=queriesmock

import (
	"context"

	"table-booking/internal/domain/booking"
)

type BookingReadStore interface {
	List() []*booking.Booking
}

type BookingQueries interface {
	List(ctx context.Context) []*BookingView
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

// List returns bookings in creation order.
func (q *bookingQueriesImpl) List(_ context.Context) []*BookingView {
	bookings := q.store.List()
	views := make([]*BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = ToBookingView(b)
	}
	return views
}
