package service

import (
	"context"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/pkg/logger"
)

type CreateRestaurantInput struct {
	Name        string   `json:"name"`
	Rating      *float64 `json:"rating"`
	ImageURL    *string  `json:"image_url"`
	PhoneNumber *string  `json:"phone_number"`
	Address     *string  `json:"address"`
}

type UpdateRestaurantInput struct {
	Name        Optional[string]  `json:"name"`
	Rating      Optional[float64] `json:"rating"`
	ImageURL    Optional[string]  `json:"image_url"`
	PhoneNumber Optional[string]  `json:"phone_number"`
	Address     Optional[string]  `json:"address"`
}

type RestaurantService interface {
	List(ctx context.Context) ([]model.Restaurant, error)
	Get(ctx context.Context, id uint) (*model.Restaurant, error)
	Create(ctx context.Context, input CreateRestaurantInput) (*model.Restaurant, error)
	Update(ctx context.Context, id uint, input UpdateRestaurantInput) (*model.Restaurant, error)
	Delete(ctx context.Context, id uint) error
}

type restaurantService struct {
	tm repository.TransactionManager
}

func NewRestaurantService(tm repository.TransactionManager) RestaurantService {
	return &restaurantService{tm: tm}
}

func (s *restaurantService) List(ctx context.Context) ([]model.Restaurant, error) {
	return s.tm.Restaurants().List(ctx)
}

// Get loads the restaurant with menus, reviews and favorites.
func (s *restaurantService) Get(ctx context.Context, id uint) (*model.Restaurant, error) {
	restaurant, err := s.tm.Restaurants().FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrRestaurantNotFound)
	}
	return restaurant, nil
}

func (s *restaurantService) Create(ctx context.Context, input CreateRestaurantInput) (*model.Restaurant, error) {
	restaurant, err := model.NewRestaurant(model.RestaurantFields{
		Name:        input.Name,
		Rating:      input.Rating,
		ImageURL:    input.ImageURL,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
	})
	if err != nil {
		return nil, err
	}

	if err := s.tm.Restaurants().Create(ctx, restaurant); err != nil {
		return nil, err
	}

	logger.Info("Restaurant created", logger.Fields{
		"restaurant_id": restaurant.ID,
		"name":          restaurant.Name,
	})
	return s.Get(ctx, restaurant.ID)
}

func (s *restaurantService) Update(ctx context.Context, id uint, input UpdateRestaurantInput) (*model.Restaurant, error) {
	restaurant, err := s.tm.Restaurants().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrRestaurantNotFound)
	}

	if input.Name.Set {
		if err := restaurant.SetName(input.Name.OrZero()); err != nil {
			return nil, err
		}
	}
	if input.Rating.Set {
		if err := restaurant.SetRating(input.Rating.Value); err != nil {
			return nil, err
		}
	}
	if input.ImageURL.Set {
		if err := restaurant.SetImageURL(input.ImageURL.Value); err != nil {
			return nil, err
		}
	}
	if input.PhoneNumber.Set {
		if err := restaurant.SetPhoneNumber(input.PhoneNumber.Value); err != nil {
			return nil, err
		}
	}
	if input.Address.Set {
		restaurant.SetAddress(input.Address.Value)
	}

	if err := s.tm.Restaurants().Update(ctx, restaurant); err != nil {
		return nil, err
	}

	logger.Info("Restaurant updated", logger.Fields{
		"restaurant_id": restaurant.ID,
	})
	return s.Get(ctx, restaurant.ID)
}

// Delete removes the restaurant with its menus, reviews and favorites.
func (s *restaurantService) Delete(ctx context.Context, id uint) error {
	err := s.tm.Execute(ctx, func(tx repository.Repositories) error {
		return tx.Restaurants().Delete(ctx, id)
	})
	if err != nil {
		return notFoundAs(err, ErrRestaurantNotFound)
	}

	logger.Info("Restaurant deleted", logger.Fields{
		"restaurant_id": id,
	})
	return nil
}
