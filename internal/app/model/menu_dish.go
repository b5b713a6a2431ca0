package model

// MenuDish links a dish to a menu. A dish appears on a given menu at most once.
type MenuDish struct {
	ID     uint `gorm:"primarykey" json:"id"`
	DishID uint `gorm:"not null;uniqueIndex:idx_menu_dishes_dish_menu" json:"dish_id"`
	MenuID uint `gorm:"not null;uniqueIndex:idx_menu_dishes_dish_menu;index" json:"menu_id"`

	Dish *Dish `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"dish,omitempty"`
	Menu *Menu `gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE" json:"menu,omitempty"`
}

func (MenuDish) TableName() string {
	return "menu_dishes"
}

func NewMenuDish(menuID, dishID uint) (*MenuDish, error) {
	if err := validateReference("menu_id", menuID); err != nil {
		return nil, err
	}
	if err := validateReference("dish_id", dishID); err != nil {
		return nil, err
	}
	return &MenuDish{MenuID: menuID, DishID: dishID}, nil
}
