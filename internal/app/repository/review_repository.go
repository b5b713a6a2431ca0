package repository

import (
	"context"

	"github.com/ikkim/foodreview-backend/internal/app/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id uint) (*model.Review, error)
	List(ctx context.Context, restaurantID *uint) ([]model.Review, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id uint) error
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create 리뷰 생성
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return wrapConstraint(r.db.WithContext(ctx).Omit(clause.Associations).Create(review).Error)
}

// FindByID ID로 리뷰 조회 (작성자, 식당 포함)
func (r *reviewRepository) FindByID(ctx context.Context, id uint) (*model.Review, error) {
	var review model.Review
	err := r.db.WithContext(ctx).Preload("User").Preload("Restaurant").First(&review, id).Error
	if err != nil {
		logLookupFailure("review", err, map[string]interface{}{"review_id": id})
		return nil, err
	}
	return &review, nil
}

// List 리뷰 목록 조회 (식당 ID로 필터링 가능)
func (r *reviewRepository) List(ctx context.Context, restaurantID *uint) ([]model.Review, error) {
	query := r.db.WithContext(ctx).Preload("User").Preload("Restaurant").Order("id")
	if restaurantID != nil {
		query = query.Where("restaurant_id = ?", *restaurantID)
	}

	var reviews []model.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// Update 리뷰 수정
func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	return wrapConstraint(r.db.WithContext(ctx).Omit(clause.Associations).Save(review).Error)
}

// Delete 리뷰 삭제
func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &model.Review{}, id)
}
