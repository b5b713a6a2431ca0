package service

import (
	"context"
	"testing"

	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteService(t *testing.T) {
	tm := setupServiceTest(t)
	favorites := NewFavoriteService(tm)
	ctx := context.Background()

	alice := signup(t, tm, "alice@example.com", "alice", "secret")
	bob := signup(t, tm, "bob@example.com", "bob", "secret")
	r := newRestaurant(t, tm, "Noodle Bar")

	favorite, err := favorites.Add(ctx, alice.ID, r.ID)
	require.NoError(t, err)
	require.NotNil(t, favorite.Restaurant)
	assert.Equal(t, "Noodle Bar", favorite.Restaurant.Name)
	require.NotNil(t, favorite.User)
	assert.Equal(t, alice.ID, favorite.User.ID)

	_, err = favorites.Add(ctx, alice.ID, r.ID)
	assert.ErrorIs(t, err, ErrFavoriteAlreadyExists)

	_, err = favorites.Add(ctx, bob.ID, r.ID)
	require.NoError(t, err, "different users may favorite the same restaurant")

	_, err = favorites.Add(ctx, alice.ID, 9999)
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)

	_, err = favorites.Add(ctx, alice.ID, 0)
	requireValidationError(t, err, "restaurant_id")

	mine, err := favorites.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, r.ID, mine[0].RestaurantID)

	restaurant, err := NewRestaurantService(tm).Get(ctx, r.ID)
	require.NoError(t, err)
	assert.Len(t, restaurant.Favorites, 2)

	require.NoError(t, favorites.Remove(ctx, alice.ID, r.ID))
	assert.ErrorIs(t, favorites.Remove(ctx, alice.ID, r.ID), ErrFavoriteNotFound)

	mine, err = favorites.List(ctx, alice.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)
}
