package model

import "gorm.io/gorm"

type Menu struct {
	ID           uint   `gorm:"primarykey" json:"id"`                // 메뉴 ID
	Name         string `gorm:"size:200;not null" json:"name"`       // 메뉴명 (예: 점심, 디저트)
	RestaurantID uint   `gorm:"not null;index" json:"restaurant_id"` // 식당 ID

	Restaurant *Restaurant `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE" json:"restaurant,omitempty"`
	MenuDishes []MenuDish  `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"menu_dishes,omitempty"`
}

func (Menu) TableName() string {
	return "menus"
}

func NewMenu(name string, restaurantID uint) (*Menu, error) {
	m := &Menu{}
	if err := m.SetName(name); err != nil {
		return nil, err
	}
	if err := m.SetRestaurantID(restaurantID); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Menu) SetName(name string) error {
	normalized, err := requiredText("name", name, 1)
	if err != nil {
		return err
	}
	m.Name = normalized
	return nil
}

func (m *Menu) SetRestaurantID(restaurantID uint) error {
	if err := validateReference("restaurant_id", restaurantID); err != nil {
		return err
	}
	m.RestaurantID = restaurantID
	return nil
}

// Dishes returns the dishes linked through loaded MenuDishes.
func (m *Menu) Dishes() []*Dish {
	dishes := make([]*Dish, 0, len(m.MenuDishes))
	for i := range m.MenuDishes {
		if d := m.MenuDishes[i].Dish; d != nil {
			dishes = append(dishes, d)
		}
	}
	return dishes
}

func (m *Menu) BeforeSave(tx *gorm.DB) error {
	if _, err := requiredText("name", m.Name, 1); err != nil {
		return err
	}
	return validateReference("restaurant_id", m.RestaurantID)
}
