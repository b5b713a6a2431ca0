package repository

import (
	"context"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DishRepository interface {
	Create(ctx context.Context, dish *model.Dish) error
	FindByID(ctx context.Context, id uint) (*model.Dish, error)
	FindByIDWithRelations(ctx context.Context, id uint) (*model.Dish, error)
	List(ctx context.Context) ([]model.Dish, error)
	Update(ctx context.Context, dish *model.Dish) error
	Delete(ctx context.Context, id uint) error
}

type dishRepository struct {
	db *gorm.DB
}

func NewDishRepository(db *gorm.DB) DishRepository {
	return &dishRepository{db: db}
}

func (r *dishRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("MenuDishes", orderByID).
		Preload("MenuDishes.Menu")
}

func (r *dishRepository) Create(ctx context.Context, dish *model.Dish) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(dish).Error; err != nil {
		logger.Error("Failed to create dish in database", err, map[string]interface{}{
			"name": dish.Name,
		})
		return wrapConstraint(err)
	}
	return nil
}

func (r *dishRepository) FindByID(ctx context.Context, id uint) (*model.Dish, error) {
	var dish model.Dish
	if err := r.db.WithContext(ctx).First(&dish, id).Error; err != nil {
		logLookupFailure("dish", err, map[string]interface{}{"dish_id": id})
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) FindByIDWithRelations(ctx context.Context, id uint) (*model.Dish, error) {
	var dish model.Dish
	if err := r.withRelations(ctx).First(&dish, id).Error; err != nil {
		logLookupFailure("dish", err, map[string]interface{}{"dish_id": id})
		return nil, err
	}
	return &dish, nil
}

func (r *dishRepository) List(ctx context.Context) ([]model.Dish, error) {
	var dishes []model.Dish
	if err := r.withRelations(ctx).Order("id").Find(&dishes).Error; err != nil {
		logger.Error("Failed to list dishes", err)
		return nil, err
	}
	return dishes, nil
}

func (r *dishRepository) Update(ctx context.Context, dish *model.Dish) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(dish).Error; err != nil {
		logger.Error("Failed to update dish in database", err, map[string]interface{}{
			"dish_id": dish.ID,
		})
		return wrapConstraint(err)
	}
	return nil
}

// Delete removes the dish from every menu and then the dish itself.
func (r *dishRepository) Delete(ctx context.Context, id uint) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("dish_id = ?", id).Delete(&model.MenuDish{}).Error; err != nil {
		return err
	}
	return deleteByID(db, &model.Dish{}, id)
}
