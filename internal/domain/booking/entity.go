package booking

import "time"

// CreatedAtLayout renders created_at as YYYY-MM-DD HH:MM:SS.
const CreatedAtLayout = "2006-01-02 15:04:05"

// Booking links a customer to a table at a caller-stated time. BookingTime is
// kept verbatim; no format is enforced.
type Booking struct {
	id           string
	tableID      string
	customerName string
	bookingTime  string
	createdAt    time.Time
}

func NewBooking(id, tableID, customerName, bookingTime string, createdAt time.Time) *Booking {
	return &Booking{
		id:           id,
		tableID:      tableID,
		customerName: customerName,
		bookingTime:  bookingTime,
		createdAt:    createdAt,
	}
}

// CreatedAtString formats the creation time in the server's local zone.
func (b *Booking) CreatedAtString() string {
	return b.createdAt.Local().Format(CreatedAtLayout)
}

func (b *Booking) ID() string           { return b.id }
func (b *Booking) TableID() string      { return b.tableID }
func (b *Booking) CustomerName() string { return b.customerName }
func (b *Booking) BookingTime() string  { return b.bookingTime }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
