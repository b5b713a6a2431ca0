package model

import "time"

// Favorite marks a restaurant as favorited by a user. The pair is unique.
type Favorite struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                                                          // 즐겨찾기 ID
	UserID       uint      `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant" json:"user_id"`             // 사용자 ID
	RestaurantID uint      `gorm:"not null;uniqueIndex:idx_favorites_user_restaurant;index" json:"restaurant_id"` // 식당 ID
	CreatedAt    time.Time `json:"created_at"`                                                                    // 생성 시각
	UpdatedAt    time.Time `json:"updated_at"`                                                                    // 수정 시각

	// Associations (loaded with Preload)
	User       *User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"restaurant,omitempty"`
}

func (Favorite) TableName() string {
	return "favorites"
}

func NewFavorite(userID, restaurantID uint) (*Favorite, error) {
	if err := validateReference("user_id", userID); err != nil {
		return nil, err
	}
	if err := validateReference("restaurant_id", restaurantID); err != nil {
		return nil, err
	}
	return &Favorite{UserID: userID, RestaurantID: restaurantID}, nil
}
