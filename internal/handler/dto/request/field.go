package request

import (
	"bytes"
	"encoding/json"

	"table-booking/internal/pkg/errs"
)

// RequiredText is a string body field that also accepts the falsy literals
// null, false and 0. They decode to "" so binding:"required" reports them as
// missing. Any other non-string value fails decoding.
type RequiredText string

func (f *RequiredText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = RequiredText(s)
		return nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case bool:
		if !x {
			*f = ""
			return nil
		}
	case float64:
		if x == 0 {
			*f = ""
			return nil
		}
	}
	return errs.Newf("expected a string, got %s", bytes.TrimSpace(data))
}

func (f RequiredText) String() string {
	return string(f)
}
