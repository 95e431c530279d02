package queries

import (
	"table-booking/internal/domain/booking"
	"table-booking/internal/domain/table"
)

// Read models (DTO for read side)
type TableView struct {
	ID       string `json:"id"`
	Capacity int    `json:"capacity"`
	Location string `json:"location"`
}

type BookingView struct {
	ID           string `json:"id"`
	TableID      string `json:"table_id"`
	CustomerName string `json:"customer_name"`
	BookingTime  string `json:"booking_time"`
	CreatedAt    string `json:"created_at"`
}

func ToTableView(t *table.Table) *TableView {
	return &TableView{
		ID:       t.ID(),
		Capacity: t.Capacity(),
		Location: t.Location(),
	}
}

func ToBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:           b.ID(),
		TableID:      b.TableID(),
		CustomerName: b.CustomerName(),
		BookingTime:  b.BookingTime(),
		CreatedAt:    b.CreatedAtString(),
	}
}
