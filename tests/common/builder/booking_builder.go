//go:build unit || e2e

package builder

import (
	"time"

	"table-booking/internal/domain/booking"
	reqdto "table-booking/internal/handler/dto/request"
	"table-booking/internal/usecase/commands"
	"table-booking/internal/usecase/queries"

	"github.com/brianvoe/gofakeit/v7"
)

type BookingBuilder struct {
	ID           string
	TableID      string
	CustomerName string
	BookingTime  string
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           gofakeit.Regex(`[0-9a-f]{12}`),
		TableID:      "T1",
		CustomerName: gofakeit.Name(),
		BookingTime:  "2025-01-01 19:00:00",
		CreatedAt:    time.Date(2024, 12, 24, 10, 30, 0, 0, time.Local),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithTableID(id string) *BookingBuilder {
	b.TableID = id
	return b
}

func (b *BookingBuilder) WithCustomerName(name string) *BookingBuilder {
	b.CustomerName = name
	return b
}

func (b *BookingBuilder) WithBookingTime(at string) *BookingBuilder {
	b.BookingTime = at
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.NewBooking(b.ID, b.TableID, b.CustomerName, b.BookingTime, b.CreatedAt)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.ToBookingView(b.BuildDomain())
}

func (b *BookingBuilder) BuildParams() commands.CreateBookingParams {
	return b.BuildCreateRequestDTO().ToParams()
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		TableID:      reqdto.RequiredText(b.TableID),
		CustomerName: reqdto.RequiredText(b.CustomerName),
		BookingTime:  reqdto.RequiredText(b.BookingTime),
	}
}
