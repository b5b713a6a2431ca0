package service

import (
	"context"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/pkg/logger"
)

type CreateReviewInput struct {
	Content      string   `json:"content"`
	Rating       *float64 `json:"rating"`
	RestaurantID uint     `json:"restaurant_id"`
}

type UpdateReviewInput struct {
	Content Optional[string]  `json:"content"`
	Rating  Optional[float64] `json:"rating"`
}

type ReviewService interface {
	List(ctx context.Context, restaurantID *uint) ([]model.Review, error)
	Get(ctx context.Context, id uint) (*model.Review, error)
	Create(ctx context.Context, userID uint, input CreateReviewInput) (*model.Review, error)
	Update(ctx context.Context, userID, id uint, input UpdateReviewInput) (*model.Review, error)
	Delete(ctx context.Context, userID, id uint) error
}

type reviewService struct {
	tm repository.TransactionManager
}

func NewReviewService(tm repository.TransactionManager) ReviewService {
	return &reviewService{tm: tm}
}

// List 리뷰 목록 (식당별 필터 가능)
func (s *reviewService) List(ctx context.Context, restaurantID *uint) ([]model.Review, error) {
	return s.tm.Reviews().List(ctx, restaurantID)
}

// Get 리뷰 조회
func (s *reviewService) Get(ctx context.Context, id uint) (*model.Review, error) {
	review, err := s.tm.Reviews().FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrReviewNotFound)
	}
	return review, nil
}

// Create 리뷰 작성 (작성자는 로그인한 사용자)
func (s *reviewService) Create(ctx context.Context, userID uint, input CreateReviewInput) (*model.Review, error) {
	review, err := model.NewReview(input.Content, input.Rating, userID, input.RestaurantID)
	if err != nil {
		return nil, err
	}
	if err := s.tm.Reviews().Create(ctx, review); err != nil {
		return nil, err
	}

	logger.Info("Review created", logger.Fields{
		"review_id":     review.ID,
		"user_id":       userID,
		"restaurant_id": review.RestaurantID,
	})
	return s.Get(ctx, review.ID)
}

// Update 리뷰 수정 (작성자만 가능)
func (s *reviewService) Update(ctx context.Context, userID, id uint, input UpdateReviewInput) (*model.Review, error) {
	review, err := s.ownedReview(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.Content.Set {
		if err := review.SetContent(input.Content.OrZero()); err != nil {
			return nil, err
		}
	}
	if input.Rating.Set {
		if err := review.SetRating(input.Rating.Value); err != nil {
			return nil, err
		}
	}

	if err := s.tm.Reviews().Update(ctx, review); err != nil {
		return nil, err
	}
	return s.Get(ctx, review.ID)
}

// Delete 리뷰 삭제 (작성자만 가능)
func (s *reviewService) Delete(ctx context.Context, userID, id uint) error {
	if _, err := s.ownedReview(ctx, userID, id); err != nil {
		return err
	}
	if err := s.tm.Reviews().Delete(ctx, id); err != nil {
		return notFoundAs(err, ErrReviewNotFound)
	}

	logger.Info("Review deleted", logger.Fields{
		"review_id": id,
		"user_id":   userID,
	})
	return nil
}

func (s *reviewService) ownedReview(ctx context.Context, userID, id uint) (*model.Review, error) {
	review, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if review.UserID != userID {
		logger.Warn("Review access denied", logger.Fields{
			"review_id": id,
			"user_id":   userID,
			"author_id": review.UserID,
		})
		return nil, ErrForbidden
	}
	return review, nil
}
