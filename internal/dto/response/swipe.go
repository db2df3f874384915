package response

import (
	"time"

	"movie-swiper/internal/data/entity"
)

type SwipeRecord struct {
	UserID     string    `json:"user_id"`
	MovieID    int64     `json:"movie_id"`
	Liked      bool      `json:"liked"`
	InsertedAt time.Time `json:"inserted_at"`
}

// SwipeResponse is the success envelope for a recorded swipe.
type SwipeResponse struct {
	Data SwipeRecord `json:"data"`
}

func SwipeToResponse(swipe *entity.Swipe) *SwipeResponse {
	return &SwipeResponse{
		Data: SwipeRecord{
			UserID:     swipe.UserID.String(),
			MovieID:    swipe.MovieID,
			Liked:      swipe.Liked,
			InsertedAt: swipe.InsertedAt,
		},
	}
}
