package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrMenuNotFound       = errors.New("menu not found")
	ErrDishNotFound       = errors.New("dish not found")
	ErrMenuDishNotFound   = errors.New("dish is not on this menu")
	ErrReviewNotFound     = errors.New("review not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")

	ErrDishAlreadyOnMenu     = errors.New("dish is already on this menu")
	ErrFavoriteAlreadyExists = errors.New("restaurant is already in favorites")

	// ErrForbidden is returned when a user acts on someone else's account or review.
	ErrForbidden = errors.New("not allowed to modify another user's data")
)

// notFoundAs replaces gorm.ErrRecordNotFound with the given domain error.
func notFoundAs(err error, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}
