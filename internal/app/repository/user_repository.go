package repository

import (
	"context"
	"errors"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByIDWithRelations(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByLogin(ctx context.Context, login string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	FavoriteRestaurants(ctx context.Context, userID uint) ([]model.Restaurant, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"email": user.Email,
	})

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": user.Email,
		})
		return wrapConstraint(err)
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		logLookupFailure("user", err, map[string]interface{}{"user_id": id})
		return nil, err
	}
	return &user, nil
}

// FindByIDWithRelations loads the user's reviews with their restaurant and
// author.
func (r *userRepository) FindByIDWithRelations(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Reviews", orderByID).
		Preload("Reviews.User").
		Preload("Reviews.Restaurant").
		First(&user, id).Error
	if err != nil {
		logLookupFailure("user", err, map[string]interface{}{"user_id": id})
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		logLookupFailure("user", err, map[string]interface{}{"email": email})
		return nil, err
	}
	return &user, nil
}

// FindByLogin matches login against username or email. When two accounts
// match (one by username, one by email) the email match wins.
func (r *userRepository) FindByLogin(ctx context.Context, login string) (*model.User, error) {
	user, err := r.FindByEmail(ctx, login)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var byName model.User
	if err := r.db.WithContext(ctx).Where("username = ?", login).First(&byName).Error; err != nil {
		logLookupFailure("user", err, map[string]interface{}{"login": login})
		return nil, err
	}
	return &byName, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		logger.Error("Failed to count users by username", err, map[string]interface{}{
			"username": username,
		})
		return false, err
	}
	return count > 0, nil
}

// FavoriteRestaurants is the user's favorited restaurants, in the order they
// were favorited.
func (r *userRepository) FavoriteRestaurants(ctx context.Context, userID uint) ([]model.Restaurant, error) {
	var restaurants []model.Restaurant
	err := r.db.WithContext(ctx).
		Model(&model.Restaurant{}).
		Joins("JOIN favorites ON favorites.restaurant_id = restaurants.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.id").
		Find(&restaurants).Error
	if err != nil {
		logger.Error("Failed to load favorite restaurants", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}
	return restaurants, nil
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		logger.Error("Failed to list users", err)
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	logger.Debug("Updating user in database", map[string]interface{}{
		"user_id": user.ID,
	})

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(user).Error; err != nil {
		logger.Error("Failed to update user in database", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return wrapConstraint(err)
	}
	return nil
}

// Delete removes the user together with their reviews and favorites.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	logger.Debug("Deleting user from database", map[string]interface{}{
		"user_id": id,
	})

	db := r.db.WithContext(ctx)
	if err := db.Where("user_id = ?", id).Delete(&model.Favorite{}).Error; err != nil {
		return err
	}
	if err := db.Where("user_id = ?", id).Delete(&model.Review{}).Error; err != nil {
		return err
	}

	result := db.Delete(&model.User{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete user from database", result.Error, map[string]interface{}{
			"user_id": id,
		})
		return wrapConstraint(result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
