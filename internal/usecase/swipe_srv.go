package usecase

import (
	"context"
	"fmt"

	"movie-swiper/internal/data/entity"
	"movie-swiper/internal/data/repository"
	"movie-swiper/internal/dto/request"
	"movie-swiper/internal/dto/response"
	"movie-swiper/pkg/utils"

	"go.uber.org/zap"
)

type SwipeService interface {
	// Record appends one swipe attributed to the authenticated
	// identity in ctx.
	Record(ctx context.Context, req *request.SwipeRequest) (*response.SwipeResponse, error)
}

type swipeService struct {
	swipes repository.SwipeRepository
	log    *zap.Logger
}

func NewSwipeService(swipes repository.SwipeRepository, log *zap.Logger) SwipeService {
	return &swipeService{
		swipes: swipes,
		log:    log.With(zap.String("service", "swipe")),
	}
}

func (s *swipeService) Record(ctx context.Context, req *request.SwipeRequest) (*response.SwipeResponse, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthorized
	}

	if req.MovieID == 0 {
		s.log.Warn("Swipe rejected: invalid movieId", zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("%w: invalid or missing movieId", ErrInvalidInput)
	}

	swipe := &entity.Swipe{
		UserID:  userID,
		MovieID: int64(req.MovieID),
		Liked:   req.UserLiked,
	}

	if err := s.swipes.Insert(ctx, swipe); err != nil {
		s.log.Error("Failed to record swipe",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int64("movie_id", swipe.MovieID),
		)
		return nil, fmt.Errorf("record swipe: %w", err)
	}

	s.log.Info("Swipe recorded",
		zap.String("user_id", userID.String()),
		zap.Int64("movie_id", swipe.MovieID),
		zap.Bool("liked", swipe.Liked),
	)

	return response.SwipeToResponse(swipe), nil
}
