package repository

import (
	"context"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *model.Favorite) error
	FindByID(ctx context.Context, id uint) (*model.Favorite, error)
	FindByPair(ctx context.Context, userID, restaurantID uint) (*model.Favorite, error)
	ListByUser(ctx context.Context, userID uint) ([]model.Favorite, error)
	DeleteByPair(ctx context.Context, userID, restaurantID uint) error
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *model.Favorite) error {
	logger.Debug("Creating favorite in database", map[string]interface{}{
		"user_id":       favorite.UserID,
		"restaurant_id": favorite.RestaurantID,
	})

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(favorite).Error; err != nil {
		logger.Error("Failed to create favorite in database", err, map[string]interface{}{
			"user_id":       favorite.UserID,
			"restaurant_id": favorite.RestaurantID,
		})
		return wrapConstraint(err)
	}

	logger.Debug("Favorite created in database", map[string]interface{}{
		"favorite_id": favorite.ID,
	})
	return nil
}

// FindByID loads the favorite with its user and restaurant.
func (r *favoriteRepository) FindByID(ctx context.Context, id uint) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.db.WithContext(ctx).Preload("User").Preload("Restaurant").First(&favorite, id).Error
	if err != nil {
		logLookupFailure("favorite", err, map[string]interface{}{"favorite_id": id})
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) FindByPair(ctx context.Context, userID, restaurantID uint) (*model.Favorite, error) {
	var favorite model.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&favorite).Error
	if err != nil {
		logLookupFailure("favorite", err, map[string]interface{}{
			"user_id":       userID,
			"restaurant_id": restaurantID,
		})
		return nil, err
	}
	return &favorite, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]model.Favorite, error) {
	logger.Debug("Finding favorites by user ID in database", map[string]interface{}{
		"user_id": userID,
	})

	var favorites []model.Favorite
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("User").
		Preload("Restaurant").
		Order("id").
		Find(&favorites).Error
	if err != nil {
		logger.Error("Failed to find favorites by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return favorites, nil
}

func (r *favoriteRepository) DeleteByPair(ctx context.Context, userID, restaurantID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&model.Favorite{})
	if result.Error != nil {
		logger.Error("Failed to delete favorite from database", result.Error, map[string]interface{}{
			"user_id":       userID,
			"restaurant_id": restaurantID,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
