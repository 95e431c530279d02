package response

import (
	"table-booking/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type TableResponse struct {
	ID       string `json:"id"`
	Capacity int    `json:"capacity"`
	Location string `json:"location"`
}

// FromTableViews never returns nil so the JSON body is [] rather than null.
func FromTableViews(views []*queries.TableView) ([]TableResponse, error) {
	out := make([]TableResponse, len(views))
	for i, v := range views {
		if err := copier.Copy(&out[i], v); err != nil {
			return nil, err
		}
	}
	return out, nil
}
