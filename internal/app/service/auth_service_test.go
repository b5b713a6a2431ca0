package service

import (
	"context"
	"errors"
	"testing"

	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/pkg/google"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Signup(t *testing.T) {
	tm := setupServiceTest(t)
	auth := NewAuthService(tm, &fakeIdentityProvider{})
	ctx := context.Background()

	detail, err := auth.Signup(ctx, SignupInput{Username: strPtr(" alice "), Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.NotZero(t, detail.User.ID)
	assert.Equal(t, "alice", *detail.User.Username)
	assert.True(t, detail.User.HasPassword())
	assert.Empty(t, detail.FavoriteRestaurants)

	tests := []struct {
		name      string
		input     SignupInput
		wantField string
		wantErr   error
	}{
		{
			name:      "Missing password",
			input:     SignupInput{Email: "bob@example.com"},
			wantField: "password",
		},
		{
			name:      "Invalid email",
			input:     SignupInput{Email: "not-an-email", Password: "secret"},
			wantField: "email",
		},
		{
			name:      "Blank username",
			input:     SignupInput{Username: strPtr("   "), Email: "bob@example.com", Password: "secret"},
			wantField: "username",
		},
		{
			name:    "Duplicate email",
			input:   SignupInput{Email: "alice@example.com", Password: "other"},
			wantErr: repository.ErrConstraintViolation,
		},
		{
			name:    "Duplicate username",
			input:   SignupInput{Username: strPtr("alice"), Email: "alice2@example.com", Password: "other"},
			wantErr: repository.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := auth.Signup(ctx, tt.input)
			assert.Nil(t, detail)
			if tt.wantField != "" {
				requireValidationError(t, err, tt.wantField)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tm := setupServiceTest(t)
	auth := NewAuthService(tm, &fakeIdentityProvider{})
	ctx := context.Background()
	user := signup(t, tm, "alice@example.com", "alice", "secret")

	tests := []struct {
		name     string
		login    string
		password string
		wantErr  error
	}{
		{name: "By email", login: "alice@example.com", password: "secret"},
		{name: "By username", login: "alice", password: "secret"},
		{name: "Surrounding whitespace", login: "  alice  ", password: "secret"},
		{name: "Wrong password", login: "alice", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "Unknown user", login: "mallory", password: "secret", wantErr: ErrInvalidCredentials},
		{name: "Empty password", login: "alice", password: "", wantErr: ErrInvalidCredentials},
		{name: "Empty login", login: "", password: "secret", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail, err := auth.Login(ctx, tt.login, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, detail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, user.ID, detail.User.ID)
		})
	}
}

func TestAuthService_LoginWithGoogle(t *testing.T) {
	tm := setupServiceTest(t)
	ctx := context.Background()
	existing := signup(t, tm, "carol@example.com", "carol", "secret")

	provider := &fakeIdentityProvider{users: map[string]*google.UserInfo{
		"new-token":      {ID: "g-1", Email: "dave@example.com", VerifiedEmail: true, Name: "Dave"},
		"existing-token": {ID: "g-2", Email: "carol@example.com", VerifiedEmail: true, Name: "Carol"},
		"taken-token":    {ID: "g-3", Email: "erin@example.com", VerifiedEmail: true, Name: "carol"},
		"blank-token":    {ID: "g-4", Email: "frank@example.com", VerifiedEmail: true, Name: "  "},
		"unverified":     {ID: "g-5", Email: "grace@example.com", VerifiedEmail: false, Name: "Grace"},
	}}
	auth := NewAuthService(tm, provider)

	t.Run("Creates a password-less user", func(t *testing.T) {
		detail, err := auth.LoginWithGoogle(ctx, "new-token")
		require.NoError(t, err)
		assert.Equal(t, "dave@example.com", detail.User.Email)
		require.NotNil(t, detail.User.Username)
		assert.Equal(t, "Dave", *detail.User.Username)
		require.NotNil(t, detail.User.GoogleID)
		assert.Equal(t, "g-1", *detail.User.GoogleID)
		assert.False(t, detail.User.HasPassword())

		_, err = auth.Login(ctx, "dave@example.com", "anything")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Second login reuses the account", func(t *testing.T) {
		first, err := auth.LoginWithGoogle(ctx, "new-token")
		require.NoError(t, err)
		users, err := tm.Users().List(ctx)
		require.NoError(t, err)

		second, err := auth.LoginWithGoogle(ctx, "new-token")
		require.NoError(t, err)
		assert.Equal(t, first.User.ID, second.User.ID)
		after, err := tm.Users().List(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(users))
	})

	t.Run("Links an existing account", func(t *testing.T) {
		detail, err := auth.LoginWithGoogle(ctx, "existing-token")
		require.NoError(t, err)
		assert.Equal(t, existing.ID, detail.User.ID)
		require.NotNil(t, detail.User.GoogleID)
		assert.Equal(t, "g-2", *detail.User.GoogleID)
		assert.True(t, detail.User.HasPassword())
	})

	t.Run("Taken name leaves username empty", func(t *testing.T) {
		detail, err := auth.LoginWithGoogle(ctx, "taken-token")
		require.NoError(t, err)
		assert.Nil(t, detail.User.Username)
	})

	t.Run("Blank name leaves username empty", func(t *testing.T) {
		detail, err := auth.LoginWithGoogle(ctx, "blank-token")
		require.NoError(t, err)
		assert.Nil(t, detail.User.Username)
	})

	t.Run("Unverified email", func(t *testing.T) {
		_, err := auth.LoginWithGoogle(ctx, "unverified")
		assert.ErrorIs(t, err, ErrEmailNotVerified)
	})

	t.Run("Rejected token", func(t *testing.T) {
		_, err := auth.LoginWithGoogle(ctx, "bogus")
		assert.ErrorIs(t, err, ErrInvalidOAuthToken)
	})

	t.Run("Missing token", func(t *testing.T) {
		_, err := auth.LoginWithGoogle(ctx, "  ")
		assert.ErrorIs(t, err, ErrOAuthTokenRequired)
	})

	t.Run("Provider unreachable", func(t *testing.T) {
		down := NewAuthService(tm, &fakeIdentityProvider{err: errors.Join(google.ErrNetworkError, errors.New("dial tcp: connection refused"))})
		_, err := down.LoginWithGoogle(ctx, "new-token")
		assert.ErrorIs(t, err, ErrIdentityProviderUnavailable)
	})
}
