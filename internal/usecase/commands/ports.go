package commands

import (
	"table-booking/internal/domain/booking"
	"table-booking/internal/domain/table"
)

// Write-side ports implemented by the in-memory stores

type TableFinder interface {
	FindByID(id string) (*table.Table, bool)
}

type BookingRepository interface {
	Append(b *booking.Booking)
}
