package request

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// NumericID accepts a JSON number or a numeric string. Clients have
// historically sent movieId both ways; anything that does not coerce
// to a finite number unmarshals to zero and fails validation.
type NumericID int64

func (n *NumericID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = 0
		return nil
	}

	// Strip quotes for the string form
	if data[0] == '"' && data[len(data)-1] == '"' && len(data) >= 2 {
		data = data[1 : len(data)-1]
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid numeric id: %q", string(data))
	}

	*n = NumericID(int64(f))
	return nil
}

type SwipeRequest struct {
	MovieID NumericID `json:"movieId" validate:"required"`
	// Absent or falsy means dislike
	UserLiked bool `json:"userLiked"`
}
