package model

import (
	"time"

	"gorm.io/gorm"
)

type Review struct {
	ID           uint      `gorm:"primarykey" json:"id"`                // 리뷰 ID
	Content      string    `gorm:"type:text;not null" json:"content"`   // 리뷰 내용
	Rating       *float64  `json:"rating"`                              // 평점 (0~5)
	ReviewDate   time.Time `gorm:"not null" json:"review_date"`         // 작성일
	UserID       uint      `gorm:"not null;index" json:"user_id"`       // 작성자 ID
	RestaurantID uint      `gorm:"not null;index" json:"restaurant_id"` // 식당 ID

	User       *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"restaurant,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}

// NewReview dates the review now (UTC).
func NewReview(content string, rating *float64, userID, restaurantID uint) (*Review, error) {
	r := &Review{ReviewDate: time.Now().UTC()}
	if err := r.SetContent(content); err != nil {
		return nil, err
	}
	if err := r.SetRating(rating); err != nil {
		return nil, err
	}
	if err := validateReference("user_id", userID); err != nil {
		return nil, err
	}
	if err := validateReference("restaurant_id", restaurantID); err != nil {
		return nil, err
	}
	r.UserID = userID
	r.RestaurantID = restaurantID
	return r, nil
}

// SetContent rejects blank content; the text itself is stored as written.
func (r *Review) SetContent(content string) error {
	if _, err := requiredText("content", content, 1); err != nil {
		return err
	}
	r.Content = content
	return nil
}

func (r *Review) SetRating(rating *float64) error {
	normalized, err := validateRating("rating", rating)
	if err != nil {
		return err
	}
	r.Rating = normalized
	return nil
}

func (r *Review) BeforeSave(tx *gorm.DB) error {
	if _, err := requiredText("content", r.Content, 1); err != nil {
		return err
	}
	if _, err := validateRating("rating", r.Rating); err != nil {
		return err
	}
	if r.ReviewDate.IsZero() {
		r.ReviewDate = time.Now().UTC()
	}
	return nil
}
