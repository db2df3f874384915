// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-swiper/internal/adaptor"
	"movie-swiper/internal/auth"
	"movie-swiper/internal/data/repository"
	"movie-swiper/internal/tmdb"
	"movie-swiper/internal/usecase"
	"movie-swiper/pkg/middleware"
	"movie-swiper/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes clients, services, handlers and routes. repos is
// bound to the row-scoped pool, adminRepos to the privileged one.
func Wiring(repos, adminRepos *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	catalog := tmdb.NewClient(config.TMDb, logger)
	verifier := auth.NewClient(config.Auth, logger)

	service := usecase.NewService(repos, adminRepos, catalog, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, verifier, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, verifier middleware.TokenVerifier, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireMovie(r, handler.Movie, verifier, logger)
	wireSwipe(r, handler.Swipe, verifier, logger)
	wireSeed(r, handler.Seed)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
