package service

import (
	"context"
	"errors"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/internal/session"
	"github.com/ikkim/foodreview-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrNoSession = errors.New("not logged in")
	// ErrStaleSession means the session outlived its user. The session is
	// destroyed before this is returned.
	ErrStaleSession = errors.New("session user no longer exists")
)

// SessionService ties session tokens to users.
type SessionService interface {
	Start(ctx context.Context, userID uint) (string, error)
	Identify(ctx context.Context, token string) (*model.User, error)
	End(ctx context.Context, token string) error
}

type sessionService struct {
	store session.Store
	users repository.Repositories
}

func NewSessionService(store session.Store, repos repository.Repositories) SessionService {
	return &sessionService{store: store, users: repos}
}

func (s *sessionService) Start(ctx context.Context, userID uint) (string, error) {
	token, err := s.store.Save(ctx, userID)
	if err != nil {
		return "", err
	}
	logger.Debug("Session started", logger.Fields{
		"user_id": userID,
	})
	return token, nil
}

func (s *sessionService) Identify(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	userID, err := s.store.Load(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	user, err := s.users.Users().FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Clearing session of deleted user", logger.Fields{
				"user_id": userID,
			})
			if err := s.store.Destroy(ctx, token); err != nil {
				return nil, err
			}
			return nil, ErrStaleSession
		}
		return nil, err
	}
	return user, nil
}

func (s *sessionService) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.store.Destroy(ctx, token)
}
