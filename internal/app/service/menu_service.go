package service

import (
	"context"
	"errors"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	"gorm.io/gorm"
)

type CreateMenuInput struct {
	Name         string `json:"name"`
	RestaurantID uint   `json:"restaurant_id"`
}

type UpdateMenuInput struct {
	Name         Optional[string] `json:"name"`
	RestaurantID Optional[uint]   `json:"restaurant_id"`
}

type MenuService interface {
	List(ctx context.Context, restaurantID *uint) ([]model.Menu, error)
	Get(ctx context.Context, id uint) (*model.Menu, error)
	Create(ctx context.Context, input CreateMenuInput) (*model.Menu, error)
	Update(ctx context.Context, id uint, input UpdateMenuInput) (*model.Menu, error)
	Delete(ctx context.Context, id uint) error
	AddDish(ctx context.Context, menuID, dishID uint) (*model.MenuDish, error)
	RemoveDish(ctx context.Context, menuID, dishID uint) error
}

type menuService struct {
	tm repository.TransactionManager
}

func NewMenuService(tm repository.TransactionManager) MenuService {
	return &menuService{tm: tm}
}

func (s *menuService) List(ctx context.Context, restaurantID *uint) ([]model.Menu, error) {
	return s.tm.Menus().List(ctx, restaurantID)
}

func (s *menuService) Get(ctx context.Context, id uint) (*model.Menu, error) {
	menu, err := s.tm.Menus().FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrMenuNotFound)
	}
	return menu, nil
}

func (s *menuService) Create(ctx context.Context, input CreateMenuInput) (*model.Menu, error) {
	menu, err := model.NewMenu(input.Name, input.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.tm.Menus().Create(ctx, menu); err != nil {
		return nil, err
	}

	logger.Info("Menu created", logger.Fields{
		"menu_id":       menu.ID,
		"restaurant_id": menu.RestaurantID,
	})
	return s.Get(ctx, menu.ID)
}

func (s *menuService) Update(ctx context.Context, id uint, input UpdateMenuInput) (*model.Menu, error) {
	menu, err := s.tm.Menus().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrMenuNotFound)
	}

	if input.Name.Set {
		if err := menu.SetName(input.Name.OrZero()); err != nil {
			return nil, err
		}
	}
	if input.RestaurantID.Set {
		if err := menu.SetRestaurantID(input.RestaurantID.OrZero()); err != nil {
			return nil, err
		}
	}

	if err := s.tm.Menus().Update(ctx, menu); err != nil {
		return nil, err
	}
	return s.Get(ctx, menu.ID)
}

func (s *menuService) Delete(ctx context.Context, id uint) error {
	err := s.tm.Execute(ctx, func(tx repository.Repositories) error {
		return tx.Menus().Delete(ctx, id)
	})
	if err != nil {
		return notFoundAs(err, ErrMenuNotFound)
	}

	logger.Info("Menu deleted", logger.Fields{
		"menu_id": id,
	})
	return nil
}

// AddDish puts a dish on the menu. Each dish can be on a menu once; an
// unknown dish fails the foreign key.
func (s *menuService) AddDish(ctx context.Context, menuID, dishID uint) (*model.MenuDish, error) {
	if _, err := s.tm.Menus().FindByID(ctx, menuID); err != nil {
		return nil, notFoundAs(err, ErrMenuNotFound)
	}
	link, err := model.NewMenuDish(menuID, dishID)
	if err != nil {
		return nil, err
	}

	_, err = s.tm.MenuDishes().FindByPair(ctx, menuID, dishID)
	switch {
	case err == nil:
		logger.Warn("Dish is already on menu", logger.Fields{
			"menu_id": menuID,
			"dish_id": dishID,
		})
		return nil, ErrDishAlreadyOnMenu
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	if err := s.tm.MenuDishes().Create(ctx, link); err != nil {
		return nil, err
	}

	logger.Info("Dish added to menu", logger.Fields{
		"menu_id": menuID,
		"dish_id": dishID,
	})
	return s.tm.MenuDishes().FindByID(ctx, link.ID)
}

func (s *menuService) RemoveDish(ctx context.Context, menuID, dishID uint) error {
	if _, err := s.tm.Menus().FindByID(ctx, menuID); err != nil {
		return notFoundAs(err, ErrMenuNotFound)
	}
	if err := s.tm.MenuDishes().DeleteByPair(ctx, menuID, dishID); err != nil {
		return notFoundAs(err, ErrMenuDishNotFound)
	}

	logger.Info("Dish removed from menu", logger.Fields{
		"menu_id": menuID,
		"dish_id": dishID,
	})
	return nil
}
