package repository

import (
	"context"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MenuDishRepository interface {
	Create(ctx context.Context, link *model.MenuDish) error
	FindByID(ctx context.Context, id uint) (*model.MenuDish, error)
	FindByPair(ctx context.Context, menuID, dishID uint) (*model.MenuDish, error)
	DeleteByPair(ctx context.Context, menuID, dishID uint) error
}

type menuDishRepository struct {
	db *gorm.DB
}

func NewMenuDishRepository(db *gorm.DB) MenuDishRepository {
	return &menuDishRepository{db: db}
}

func (r *menuDishRepository) Create(ctx context.Context, link *model.MenuDish) error {
	logger.Debug("Linking dish to menu", map[string]interface{}{
		"menu_id": link.MenuID,
		"dish_id": link.DishID,
	})

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(link).Error; err != nil {
		logger.Error("Failed to link dish to menu", err, map[string]interface{}{
			"menu_id": link.MenuID,
			"dish_id": link.DishID,
		})
		return wrapConstraint(err)
	}
	return nil
}

// FindByID loads the link with its dish and menu.
func (r *menuDishRepository) FindByID(ctx context.Context, id uint) (*model.MenuDish, error) {
	var link model.MenuDish
	if err := r.db.WithContext(ctx).Preload("Dish").Preload("Menu").First(&link, id).Error; err != nil {
		logLookupFailure("menu dish", err, map[string]interface{}{"menu_dish_id": id})
		return nil, err
	}
	return &link, nil
}

func (r *menuDishRepository) FindByPair(ctx context.Context, menuID, dishID uint) (*model.MenuDish, error) {
	var link model.MenuDish
	err := r.db.WithContext(ctx).
		Where("menu_id = ? AND dish_id = ?", menuID, dishID).
		First(&link).Error
	if err != nil {
		logLookupFailure("menu dish", err, map[string]interface{}{
			"menu_id": menuID,
			"dish_id": dishID,
		})
		return nil, err
	}
	return &link, nil
}

func (r *menuDishRepository) DeleteByPair(ctx context.Context, menuID, dishID uint) error {
	result := r.db.WithContext(ctx).
		Where("menu_id = ? AND dish_id = ?", menuID, dishID).
		Delete(&model.MenuDish{})
	if result.Error != nil {
		logger.Error("Failed to unlink dish from menu", result.Error, map[string]interface{}{
			"menu_id": menuID,
			"dish_id": dishID,
		})
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
