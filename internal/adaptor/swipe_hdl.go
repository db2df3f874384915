package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"movie-swiper/internal/dto/request"
	"movie-swiper/internal/usecase"
	"movie-swiper/pkg/utils"

	"go.uber.org/zap"
)

type SwipeHandler struct {
	service usecase.SwipeService
	log     *zap.Logger
}

func NewSwipeHandler(service usecase.SwipeService, log *zap.Logger) *SwipeHandler {
	return &SwipeHandler{
		service: service,
		log:     log.With(zap.String("handler", "swipe")),
	}
}

// RecordSwipe handles POST /api/swipes
func (h *SwipeHandler) RecordSwipe(w http.ResponseWriter, r *http.Request) {
	var req request.SwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid or missing movieId")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid or missing movieId")
		return
	}

	resp, err := h.service.Record(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthorized):
			utils.ResponseUnauthorized(w, "Unauthorized")
		case errors.Is(err, usecase.ErrInvalidInput):
			utils.ResponseBadRequest(w, "Invalid or missing movieId")
		default:
			h.log.Error("Failed to record swipe", zap.Error(err))
			utils.ResponseInternalError(w, err.Error())
		}
		return
	}

	utils.ResponseOK(w, resp)
}
