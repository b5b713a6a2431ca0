package model

import "gorm.io/gorm"

const minDishNameLength = 2

type Dish struct {
	ID          uint     `gorm:"primarykey" json:"id"`          // 요리 ID
	Name        string   `gorm:"size:200;not null" json:"name"` // 요리명
	Description *string  `gorm:"type:text" json:"description"`  // 설명
	Price       *float64 `json:"price"`                         // 가격 (소수점 둘째 자리)

	MenuDishes []MenuDish `gorm:"foreignKey:DishID;constraint:OnDelete:CASCADE" json:"menu_dishes,omitempty"`
}

func (Dish) TableName() string {
	return "dishes"
}

func NewDish(name string, description *string, price *float64) (*Dish, error) {
	d := &Dish{}
	if err := d.SetName(name); err != nil {
		return nil, err
	}
	d.SetDescription(description)
	if err := d.SetPrice(price); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Dish) SetName(name string) error {
	normalized, err := requiredText("name", name, minDishNameLength)
	if err != nil {
		return err
	}
	d.Name = normalized
	return nil
}

func (d *Dish) SetDescription(description *string) {
	d.Description = optionalText(description)
}

func (d *Dish) SetPrice(price *float64) error {
	normalized, err := validatePrice(price)
	if err != nil {
		return err
	}
	d.Price = normalized
	return nil
}

func (d *Dish) BeforeSave(tx *gorm.DB) error {
	if _, err := requiredText("name", d.Name, minDishNameLength); err != nil {
		return err
	}
	_, err := validatePrice(d.Price)
	return err
}
