package repository

import (
	"context"
	"testing"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/db"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func setupRepositoryTest(t *testing.T) (*gorm.DB, TransactionManager) {
	t.Helper()
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return testDB, NewTransactionManager(testDB)
}

func createUser(t *testing.T, repos Repositories, email string, username *string) *model.User {
	t.Helper()
	u, err := model.NewUser(email, username)
	require.NoError(t, err)
	require.NoError(t, repos.Users().Create(context.Background(), u))
	return u
}

func createRestaurant(t *testing.T, repos Repositories, name string) *model.Restaurant {
	t.Helper()
	r, err := model.NewRestaurant(model.RestaurantFields{Name: name})
	require.NoError(t, err)
	require.NoError(t, repos.Restaurants().Create(context.Background(), r))
	return r
}

func createMenu(t *testing.T, repos Repositories, name string, restaurantID uint) *model.Menu {
	t.Helper()
	m, err := model.NewMenu(name, restaurantID)
	require.NoError(t, err)
	require.NoError(t, repos.Menus().Create(context.Background(), m))
	return m
}

func createDish(t *testing.T, repos Repositories, name string) *model.Dish {
	t.Helper()
	d, err := model.NewDish(name, nil, floatPtr(10))
	require.NoError(t, err)
	require.NoError(t, repos.Dishes().Create(context.Background(), d))
	return d
}

func linkDish(t *testing.T, repos Repositories, menuID, dishID uint) *model.MenuDish {
	t.Helper()
	link, err := model.NewMenuDish(menuID, dishID)
	require.NoError(t, err)
	require.NoError(t, repos.MenuDishes().Create(context.Background(), link))
	return link
}

func createReview(t *testing.T, repos Repositories, userID, restaurantID uint, content string) *model.Review {
	t.Helper()
	r, err := model.NewReview(content, floatPtr(4), userID, restaurantID)
	require.NoError(t, err)
	require.NoError(t, repos.Reviews().Create(context.Background(), r))
	return r
}

func createFavorite(t *testing.T, repos Repositories, userID, restaurantID uint) *model.Favorite {
	t.Helper()
	f, err := model.NewFavorite(userID, restaurantID)
	require.NoError(t, err)
	require.NoError(t, repos.Favorites().Create(context.Background(), f))
	return f
}
