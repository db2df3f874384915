package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"movie-swiper/internal/dto/request"
	"movie-swiper/internal/usecase"
	"movie-swiper/pkg/utils"

	"go.uber.org/zap"
)

type SeedHandler struct {
	service usecase.SeedService
	log     *zap.Logger
}

func NewSeedHandler(service usecase.SeedService, log *zap.Logger) *SeedHandler {
	return &SeedHandler{
		service: service,
		log:     log.With(zap.String("handler", "seed")),
	}
}

// SeedMovies handles POST /api/admin/seed. An empty body runs with
// defaults (10 pages, listing-only).
func (h *SeedHandler) SeedMovies(w http.ResponseWriter, r *http.Request) {
	var req request.SeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	resp, err := h.service.Run(r.Context(), &req)
	if err != nil {
		h.log.Error("Seed run failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error())
		return
	}

	utils.ResponseOK(w, resp)
}
