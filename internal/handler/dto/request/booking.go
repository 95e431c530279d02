package request

import (
	"table-booking/internal/usecase/commands"
)

// binding:"required" rejects absent fields, empty strings and falsy literals alike.
type CreateBookingRequest struct {
	TableID      RequiredText `json:"table_id" binding:"required" swaggertype:"string"`
	CustomerName RequiredText `json:"customer_name" binding:"required" swaggertype:"string"`
	BookingTime  RequiredText `json:"booking_time" binding:"required" swaggertype:"string"`
}

func (r CreateBookingRequest) ToParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		TableID:      r.TableID.String(),
		CustomerName: r.CustomerName.String(),
		BookingTime:  r.BookingTime.String(),
	}
}
