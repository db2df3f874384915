package adaptor

import (
	"errors"
	"net/http"

	"movie-swiper/internal/usecase"
	"movie-swiper/pkg/utils"

	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListPopular(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list movies")
		return
	}

	utils.ResponseOK(w, resp)
}

// GetUnseenMovies handles GET /api/movies/unseen
func (h *MovieHandler) GetUnseenMovies(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.ListUnseen(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list unseen movies")
		return
	}

	utils.ResponseOK(w, resp)
}

// RefreshMovies handles POST /api/movies/refresh
func (h *MovieHandler) RefreshMovies(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.RefreshPopular(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "refresh movies")
		return
	}

	utils.ResponseOK(w, resp)
}

// handleServiceError maps movie listing failures; anything that is
// not an auth problem surfaces as 400 with the underlying message.
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	if errors.Is(err, usecase.ErrUnauthorized) {
		h.log.Warn(operation+" rejected: unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	h.log.Error("Failed to "+operation, zap.Error(err))
	utils.ResponseBadRequest(w, err.Error())
}
