package repository

import (
	"context"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RestaurantRepository interface {
	Create(ctx context.Context, restaurant *model.Restaurant) error
	FindByID(ctx context.Context, id uint) (*model.Restaurant, error)
	FindByIDWithRelations(ctx context.Context, id uint) (*model.Restaurant, error)
	List(ctx context.Context) ([]model.Restaurant, error)
	Update(ctx context.Context, restaurant *model.Restaurant) error
	Delete(ctx context.Context, id uint) error
}

type restaurantRepository struct {
	db *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	logger.Debug("Creating restaurant in database", map[string]interface{}{
		"name": restaurant.Name,
	})

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(restaurant).Error; err != nil {
		logger.Error("Failed to create restaurant in database", err, map[string]interface{}{
			"name": restaurant.Name,
		})
		return wrapConstraint(err)
	}
	return nil
}

func (r *restaurantRepository) FindByID(ctx context.Context, id uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	if err := r.db.WithContext(ctx).First(&restaurant, id).Error; err != nil {
		logLookupFailure("restaurant", err, map[string]interface{}{"restaurant_id": id})
		return nil, err
	}
	return &restaurant, nil
}

// FindByIDWithRelations loads menus down to each dish's menu links, reviews
// with authors, and favorites with the favoriting users.
func (r *restaurantRepository) FindByIDWithRelations(ctx context.Context, id uint) (*model.Restaurant, error) {
	var restaurant model.Restaurant
	err := r.db.WithContext(ctx).
		Preload("Menus", orderByID).
		Preload("Menus.Restaurant").
		Preload("Menus.MenuDishes", orderByID).
		Preload("Menus.MenuDishes.Dish").
		Preload("Menus.MenuDishes.Dish.MenuDishes", orderByID).
		Preload("Menus.MenuDishes.Dish.MenuDishes.Menu").
		Preload("Reviews", orderByID).
		Preload("Reviews.User").
		Preload("Reviews.Restaurant").
		Preload("Favorites", orderByID).
		Preload("Favorites.User").
		Preload("Favorites.Restaurant").
		First(&restaurant, id).Error
	if err != nil {
		logLookupFailure("restaurant", err, map[string]interface{}{"restaurant_id": id})
		return nil, err
	}
	return &restaurant, nil
}

func (r *restaurantRepository) List(ctx context.Context) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	if err := r.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		logger.Error("Failed to list restaurants", err)
		return nil, err
	}
	return restaurants, nil
}

func (r *restaurantRepository) Update(ctx context.Context, restaurant *model.Restaurant) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(restaurant).Error; err != nil {
		logger.Error("Failed to update restaurant in database", err, map[string]interface{}{
			"restaurant_id": restaurant.ID,
		})
		return wrapConstraint(err)
	}
	return nil
}

// Delete removes the restaurant with its menus (and their dish links) and
// reviews. Favorites go through the foreign key's ON DELETE CASCADE.
func (r *restaurantRepository) Delete(ctx context.Context, id uint) error {
	logger.Debug("Deleting restaurant from database", map[string]interface{}{
		"restaurant_id": id,
	})

	db := r.db.WithContext(ctx)
	menuIDs := db.Model(&model.Menu{}).Select("id").Where("restaurant_id = ?", id)
	if err := db.Where("menu_id IN (?)", menuIDs).Delete(&model.MenuDish{}).Error; err != nil {
		return err
	}
	if err := db.Where("restaurant_id = ?", id).Delete(&model.Menu{}).Error; err != nil {
		return err
	}
	if err := db.Where("restaurant_id = ?", id).Delete(&model.Review{}).Error; err != nil {
		return err
	}

	if err := deleteByID(db, &model.Restaurant{}, id); err != nil {
		logLookupFailure("restaurant", err, map[string]interface{}{"restaurant_id": id})
		return err
	}
	return nil
}
