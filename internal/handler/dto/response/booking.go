package response

import (
	"table-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           string `json:"id"`
	TableID      string `json:"table_id"`
	CustomerName string `json:"customer_name"`
	BookingTime  string `json:"booking_time"`
	CreatedAt    string `json:"created_at"`
}

func FromBookingView(view *queries.BookingView) (*BookingResponse, error) {
	var out BookingResponse
	if err := copier.Copy(&out, view); err != nil {
		return nil, err
	}
	return &out, nil
}

// FromBookingViews never returns nil so the JSON body is [] rather than null.
func FromBookingViews(views []*queries.BookingView) ([]BookingResponse, error) {
	out := make([]BookingResponse, len(views))
	for i, v := range views {
		if err := copier.Copy(&out[i], v); err != nil {
			return nil, err
		}
	}
	return out, nil
}
