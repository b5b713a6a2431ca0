package service

import (
	"context"
	"errors"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/pkg/logger"
)

var ErrCurrentPasswordInvalid = errors.New("current password is missing or incorrect")

// UserDetail is a user with the restaurants they favorited.
type UserDetail struct {
	User                *model.User
	FavoriteRestaurants []model.Restaurant
}

// UpdateUserInput is a partial update. Unset fields are left alone.
type UpdateUserInput struct {
	Username        Optional[string] `json:"username"`
	Email           Optional[string] `json:"email"`
	CurrentPassword *string          `json:"currentPassword"`
	NewPassword     *string          `json:"newPassword"`
}

type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	Get(ctx context.Context, id uint) (*UserDetail, error)
	Update(ctx context.Context, actorID, id uint, input UpdateUserInput) (*UserDetail, error)
	Delete(ctx context.Context, actorID, id uint) error
}

type userService struct {
	tm repository.TransactionManager
}

func NewUserService(tm repository.TransactionManager) UserService {
	return &userService{tm: tm}
}

func loadUserDetail(ctx context.Context, repos repository.Repositories, id uint) (*UserDetail, error) {
	user, err := repos.Users().FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	favorites, err := repos.Users().FavoriteRestaurants(ctx, id)
	if err != nil {
		return nil, err
	}
	return &UserDetail{User: user, FavoriteRestaurants: favorites}, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	return s.tm.Users().List(ctx)
}

func (s *userService) Get(ctx context.Context, id uint) (*UserDetail, error) {
	return loadUserDetail(ctx, s.tm, id)
}

func (s *userService) Update(ctx context.Context, actorID, id uint, input UpdateUserInput) (*UserDetail, error) {
	user, err := s.tm.Users().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrUserNotFound)
	}
	if actorID != user.ID {
		logger.Warn("Rejected update of another user's account", logger.Fields{
			"actor_id": actorID,
			"user_id":  id,
		})
		return nil, ErrForbidden
	}

	if input.Username.Set {
		if err := user.SetUsername(input.Username.Value); err != nil {
			return nil, err
		}
	}
	if input.Email.Set {
		if err := user.SetEmail(input.Email.OrZero()); err != nil {
			return nil, err
		}
	}
	if input.NewPassword != nil {
		// 기존 비밀번호가 있으면 현재 비밀번호 확인 필요
		if user.HasPassword() {
			if input.CurrentPassword == nil || !user.Authenticate(*input.CurrentPassword) {
				logger.Warn("Password change rejected: current password mismatch", logger.Fields{
					"user_id": user.ID,
				})
				return nil, ErrCurrentPasswordInvalid
			}
		}
		if err := user.SetPassword(*input.NewPassword); err != nil {
			return nil, err
		}
	}

	if err := s.tm.Users().Update(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("User updated", logger.Fields{
		"user_id":          user.ID,
		"password_changed": input.NewPassword != nil,
	})
	return loadUserDetail(ctx, s.tm, user.ID)
}

func (s *userService) Delete(ctx context.Context, actorID, id uint) error {
	if _, err := s.tm.Users().FindByID(ctx, id); err != nil {
		return notFoundAs(err, ErrUserNotFound)
	}
	if actorID != id {
		return ErrForbidden
	}

	err := s.tm.Execute(ctx, func(tx repository.Repositories) error {
		return tx.Users().Delete(ctx, id)
	})
	if err != nil {
		return notFoundAs(err, ErrUserNotFound)
	}

	logger.Info("User deleted", logger.Fields{
		"user_id": id,
	})
	return nil
}
