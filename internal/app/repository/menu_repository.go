package repository

import (
	"context"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuRepository interface {
	Create(ctx context.Context, menu *model.Menu) error
	FindByID(ctx context.Context, id uint) (*model.Menu, error)
	FindByIDWithRelations(ctx context.Context, id uint) (*model.Menu, error)
	// List returns every menu, or only the restaurant's when restaurantID is set.
	List(ctx context.Context, restaurantID *uint) ([]model.Menu, error)
	Update(ctx context.Context, menu *model.Menu) error
	Delete(ctx context.Context, id uint) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Restaurant").
		Preload("MenuDishes", orderByID).
		Preload("MenuDishes.Dish").
		Preload("MenuDishes.Dish.MenuDishes", orderByID).
		Preload("MenuDishes.Dish.MenuDishes.Menu")
}

func (r *menuRepository) Create(ctx context.Context, menu *model.Menu) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(menu).Error; err != nil {
		logger.Error("Failed to create menu in database", err, map[string]interface{}{
			"restaurant_id": menu.RestaurantID,
		})
		return wrapConstraint(err)
	}
	return nil
}

func (r *menuRepository) FindByID(ctx context.Context, id uint) (*model.Menu, error) {
	var menu model.Menu
	if err := r.db.WithContext(ctx).First(&menu, id).Error; err != nil {
		logLookupFailure("menu", err, map[string]interface{}{"menu_id": id})
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) FindByIDWithRelations(ctx context.Context, id uint) (*model.Menu, error) {
	var menu model.Menu
	if err := r.withRelations(ctx).First(&menu, id).Error; err != nil {
		logLookupFailure("menu", err, map[string]interface{}{"menu_id": id})
		return nil, err
	}
	return &menu, nil
}

func (r *menuRepository) List(ctx context.Context, restaurantID *uint) ([]model.Menu, error) {
	query := r.withRelations(ctx).Order("id")
	if restaurantID != nil {
		query = query.Where("restaurant_id = ?", *restaurantID)
	}

	var menus []model.Menu
	if err := query.Find(&menus).Error; err != nil {
		logger.Error("Failed to list menus", err)
		return nil, err
	}
	return menus, nil
}

func (r *menuRepository) Update(ctx context.Context, menu *model.Menu) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(menu).Error; err != nil {
		logger.Error("Failed to update menu in database", err, map[string]interface{}{
			"menu_id": menu.ID,
		})
		return wrapConstraint(err)
	}
	return nil
}

// Delete removes the menu and its dish links. The dishes stay.
func (r *menuRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("menu_id = ?", id).Delete(&model.MenuDish{}).Error; err != nil {
		return err
	}
	return deleteByID(db, &model.Menu{}, id)
}
