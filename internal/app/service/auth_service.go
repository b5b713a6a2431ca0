package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/pkg/google"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid username, email or password")
	ErrOAuthTokenRequired = errors.New("access token is required")
	ErrInvalidOAuthToken  = errors.New("invalid google access token")
	ErrEmailNotVerified   = errors.New("google account email is not verified")
	// ErrIdentityProviderUnavailable wraps transport failures talking to Google.
	ErrIdentityProviderUnavailable = errors.New("identity provider unavailable")
)

// IdentityProvider resolves an OAuth access token to the account behind it.
type IdentityProvider interface {
	UserInfo(ctx context.Context, accessToken string) (*google.UserInfo, error)
}

type SignupInput struct {
	Username *string `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*UserDetail, error)
	Login(ctx context.Context, login, password string) (*UserDetail, error)
	LoginWithGoogle(ctx context.Context, accessToken string) (*UserDetail, error)
}

type authService struct {
	tm       repository.TransactionManager
	provider IdentityProvider
}

func NewAuthService(tm repository.TransactionManager, provider IdentityProvider) AuthService {
	return &authService{tm: tm, provider: provider}
}

func (s *authService) Signup(ctx context.Context, input SignupInput) (*UserDetail, error) {
	logger.Info("Attempting user signup", logger.Fields{
		"email": input.Email,
	})

	user, err := model.NewUser(input.Email, input.Username)
	if err != nil {
		return nil, err
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.tm.Users().Create(ctx, user); err != nil {
		logger.Warn("Signup failed", logger.Fields{
			"email": user.Email,
			"error": err.Error(),
		})
		return nil, err
	}

	logger.Info("User signed up successfully", logger.Fields{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return loadUserDetail(ctx, s.tm, user.ID)
}

func (s *authService) Login(ctx context.Context, login, password string) (*UserDetail, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.tm.Users().FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", logger.Fields{
				"login": login,
			})
			return nil, ErrInvalidCredentials
		}
		logger.Error("Failed to find user", err, logger.Fields{
			"login": login,
		})
		return nil, err
	}

	if !user.Authenticate(password) {
		logger.Warn("Login failed: invalid password", logger.Fields{
			"user_id":      user.ID,
			"has_password": user.HasPassword(),
		})
		return nil, ErrInvalidCredentials
	}

	logger.Info("User logged in successfully", logger.Fields{
		"user_id": user.ID,
	})
	return loadUserDetail(ctx, s.tm, user.ID)
}

func (s *authService) LoginWithGoogle(ctx context.Context, accessToken string) (*UserDetail, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		return nil, ErrOAuthTokenRequired
	}

	info, err := s.provider.UserInfo(ctx, accessToken)
	if err != nil {
		switch {
		case errors.Is(err, google.ErrInvalidToken):
			logger.Warn("Google login failed: token rejected")
			return nil, ErrInvalidOAuthToken
		default:
			logger.Error("Failed to fetch Google user info", err)
			return nil, errors.Join(ErrIdentityProviderUnavailable, err)
		}
	}
	if !info.VerifiedEmail || strings.TrimSpace(info.Email) == "" {
		logger.Warn("Google login failed: email not verified", logger.Fields{
			"email": info.Email,
		})
		return nil, ErrEmailNotVerified
	}

	var userID uint
	err = s.tm.Execute(ctx, func(tx repository.Repositories) error {
		user, err := tx.Users().FindByEmail(ctx, strings.TrimSpace(info.Email))
		switch {
		case err == nil:
			if user.GoogleID == nil && info.ID != "" {
				user.SetGoogleID(info.ID)
				if err := tx.Users().Update(ctx, user); err != nil {
					return err
				}
				logger.Info("Linked Google account to existing user", logger.Fields{
					"user_id": user.ID,
				})
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			username, err := availableUsername(ctx, tx.Users(), info.Name)
			if err != nil {
				return err
			}
			user, err = model.NewUser(info.Email, username)
			if err != nil {
				return err
			}
			if info.ID != "" {
				user.SetGoogleID(info.ID)
			}
			if err := tx.Users().Create(ctx, user); err != nil {
				return err
			}
			logger.Info("Created user from Google account", logger.Fields{
				"user_id": user.ID,
				"email":   user.Email,
			})
		default:
			return err
		}
		userID = user.ID
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loadUserDetail(ctx, s.tm, userID)
}

// availableUsername returns the display name as a username, or nil when it
// is blank or already taken.
func availableUsername(ctx context.Context, users repository.UserRepository, name string) (*string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	taken, err := users.ExistsByUsername(ctx, name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, nil
	}
	return &name, nil
}
