package service

import (
	"context"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/pkg/logger"
)

type CreateDishInput struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

type UpdateDishInput struct {
	Name        Optional[string]  `json:"name"`
	Description Optional[string]  `json:"description"`
	Price       Optional[float64] `json:"price"`
}

type DishService interface {
	List(ctx context.Context) ([]model.Dish, error)
	Get(ctx context.Context, id uint) (*model.Dish, error)
	Create(ctx context.Context, input CreateDishInput) (*model.Dish, error)
	Update(ctx context.Context, id uint, input UpdateDishInput) (*model.Dish, error)
	Delete(ctx context.Context, id uint) error
}

type dishService struct {
	tm repository.TransactionManager
}

func NewDishService(tm repository.TransactionManager) DishService {
	return &dishService{tm: tm}
}

func (s *dishService) List(ctx context.Context) ([]model.Dish, error) {
	return s.tm.Dishes().List(ctx)
}

func (s *dishService) Get(ctx context.Context, id uint) (*model.Dish, error) {
	dish, err := s.tm.Dishes().FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrDishNotFound)
	}
	return dish, nil
}

func (s *dishService) Create(ctx context.Context, input CreateDishInput) (*model.Dish, error) {
	dish, err := model.NewDish(input.Name, input.Description, input.Price)
	if err != nil {
		return nil, err
	}
	if err := s.tm.Dishes().Create(ctx, dish); err != nil {
		return nil, err
	}

	logger.Info("Dish created", logger.Fields{
		"dish_id": dish.ID,
		"name":    dish.Name,
	})
	return s.Get(ctx, dish.ID)
}

func (s *dishService) Update(ctx context.Context, id uint, input UpdateDishInput) (*model.Dish, error) {
	dish, err := s.tm.Dishes().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrDishNotFound)
	}

	if input.Name.Set {
		if err := dish.SetName(input.Name.OrZero()); err != nil {
			return nil, err
		}
	}
	if input.Description.Set {
		dish.SetDescription(input.Description.Value)
	}
	if input.Price.Set {
		if err := dish.SetPrice(input.Price.Value); err != nil {
			return nil, err
		}
	}

	if err := s.tm.Dishes().Update(ctx, dish); err != nil {
		return nil, err
	}
	return s.Get(ctx, dish.ID)
}

// Delete removes the dish and takes it off every menu.
func (s *dishService) Delete(ctx context.Context, id uint) error {
	err := s.tm.Execute(ctx, func(tx repository.Repositories) error {
		return tx.Dishes().Delete(ctx, id)
	})
	if err != nil {
		return notFoundAs(err, ErrDishNotFound)
	}

	logger.Info("Dish deleted", logger.Fields{
		"dish_id": id,
	})
	return nil
}
