package booking

import (
	"table-booking/internal/domain/table"
	"table-booking/internal/pkg/clock"
)

type Factory struct {
	Clock clock.Clock
	IDs   IDGenerator
}

func NewFactory(clock clock.Clock, ids IDGenerator) *Factory {
	return &Factory{
		Clock: clock,
		IDs:   ids,
	}
}

// CreateBooking stamps a new id and the current time. The table must already
// be resolved by the caller.
func (f *Factory) CreateBooking(t *table.Table, customerName, bookingTime string) *Booking {
	return NewBooking(
		f.IDs.NewID(),
		t.ID(),
		customerName,
		bookingTime,
		f.Clock.Now(),
	)
}
