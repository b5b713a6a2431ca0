package model

import "gorm.io/gorm"

type Restaurant struct {
	ID          uint     `gorm:"primarykey" json:"id"`                 // 식당 ID
	Name        string   `gorm:"size:200;not null" json:"name"`        // 식당명
	Rating      *float64 `json:"rating"`                               // 평점 (0~5)
	ImageURL    *string  `gorm:"type:text" json:"image_url"`           // 대표 이미지
	PhoneNumber *string  `gorm:"type:varchar(30)" json:"phone_number"` // 연락처
	Address     *string  `gorm:"type:text" json:"address"`             // 주소

	Menus     []Menu     `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"menus,omitempty"`
	Reviews   []Review   `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"reviews,omitempty"`
	Favorites []Favorite `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"favorites,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// RestaurantFields are the writable attributes of a restaurant.
type RestaurantFields struct {
	Name        string
	Rating      *float64
	ImageURL    *string
	PhoneNumber *string
	Address     *string
}

func NewRestaurant(fields RestaurantFields) (*Restaurant, error) {
	r := &Restaurant{}
	if err := r.SetName(fields.Name); err != nil {
		return nil, err
	}
	if err := r.SetRating(fields.Rating); err != nil {
		return nil, err
	}
	if err := r.SetImageURL(fields.ImageURL); err != nil {
		return nil, err
	}
	if err := r.SetPhoneNumber(fields.PhoneNumber); err != nil {
		return nil, err
	}
	r.SetAddress(fields.Address)
	return r, nil
}

func (r *Restaurant) SetName(name string) error {
	normalized, err := requiredText("name", name, 1)
	if err != nil {
		return err
	}
	r.Name = normalized
	return nil
}

func (r *Restaurant) SetRating(rating *float64) error {
	normalized, err := validateRating("rating", rating)
	if err != nil {
		return err
	}
	r.Rating = normalized
	return nil
}

func (r *Restaurant) SetImageURL(url *string) error {
	normalized, err := validateImageURL(url)
	if err != nil {
		return err
	}
	r.ImageURL = normalized
	return nil
}

func (r *Restaurant) SetPhoneNumber(phone *string) error {
	normalized, err := validatePhoneNumber(phone)
	if err != nil {
		return err
	}
	r.PhoneNumber = normalized
	return nil
}

func (r *Restaurant) SetAddress(address *string) {
	r.Address = address
}

func (r *Restaurant) BeforeSave(tx *gorm.DB) error {
	if _, err := requiredText("name", r.Name, 1); err != nil {
		return err
	}
	if _, err := validateRating("rating", r.Rating); err != nil {
		return err
	}
	if _, err := validateImageURL(r.ImageURL); err != nil {
		return err
	}
	_, err := validatePhoneNumber(r.PhoneNumber)
	return err
}
