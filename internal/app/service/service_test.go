package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/internal/db"
	"github.com/ikkim/foodreview-backend/pkg/google"
	"github.com/ikkim/foodreview-backend/pkg/util"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	util.SetBcryptCost(bcrypt.MinCost)
	m.Run()
}

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func setupServiceTest(t *testing.T) repository.TransactionManager {
	t.Helper()
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })
	return repository.NewTransactionManager(testDB)
}

// fakeIdentityProvider answers UserInfo from a fixed token table.
type fakeIdentityProvider struct {
	users map[string]*google.UserInfo
	err   error
}

func (f *fakeIdentityProvider) UserInfo(ctx context.Context, accessToken string) (*google.UserInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	info, ok := f.users[accessToken]
	if !ok {
		return nil, google.ErrInvalidToken
	}
	return info, nil
}

func signup(t *testing.T, tm repository.TransactionManager, email, username, password string) *model.User {
	t.Helper()
	var name *string
	if username != "" {
		name = &username
	}
	detail, err := NewAuthService(tm, &fakeIdentityProvider{}).Signup(context.Background(), SignupInput{
		Username: name,
		Email:    email,
		Password: password,
	})
	require.NoError(t, err)
	return detail.User
}

func newRestaurant(t *testing.T, tm repository.TransactionManager, name string) *model.Restaurant {
	t.Helper()
	r, err := NewRestaurantService(tm).Create(context.Background(), CreateRestaurantInput{Name: name})
	require.NoError(t, err)
	return r
}

func requireValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var verr *model.ValidationError
	require.True(t, errors.As(err, &verr), "expected validation error, got %v", err)
	require.Equal(t, field, verr.Field)
}
