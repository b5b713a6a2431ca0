package service

import (
	"context"
	"errors"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	"gorm.io/gorm"
)

type FavoriteService interface {
	List(ctx context.Context, userID uint) ([]model.Favorite, error)
	Add(ctx context.Context, userID, restaurantID uint) (*model.Favorite, error)
	Remove(ctx context.Context, userID, restaurantID uint) error
}

type favoriteService struct {
	tm repository.TransactionManager
}

func NewFavoriteService(tm repository.TransactionManager) FavoriteService {
	return &favoriteService{tm: tm}
}

func (s *favoriteService) List(ctx context.Context, userID uint) ([]model.Favorite, error) {
	return s.tm.Favorites().ListByUser(ctx, userID)
}

func (s *favoriteService) Add(ctx context.Context, userID, restaurantID uint) (*model.Favorite, error) {
	favorite, err := model.NewFavorite(userID, restaurantID)
	if err != nil {
		return nil, err
	}

	_, err = s.tm.Favorites().FindByPair(ctx, userID, restaurantID)
	switch {
	case err == nil:
		logger.Warn("Restaurant already in favorites", logger.Fields{
			"user_id":       userID,
			"restaurant_id": restaurantID,
		})
		return nil, ErrFavoriteAlreadyExists
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	if err := s.tm.Favorites().Create(ctx, favorite); err != nil {
		return nil, err
	}

	logger.Info("Restaurant added to favorites", logger.Fields{
		"user_id":       userID,
		"restaurant_id": restaurantID,
	})
	return s.tm.Favorites().FindByID(ctx, favorite.ID)
}

func (s *favoriteService) Remove(ctx context.Context, userID, restaurantID uint) error {
	if err := s.tm.Favorites().DeleteByPair(ctx, userID, restaurantID); err != nil {
		return notFoundAs(err, ErrFavoriteNotFound)
	}

	logger.Info("Restaurant removed from favorites", logger.Fields{
		"user_id":       userID,
		"restaurant_id": restaurantID,
	})
	return nil
}
