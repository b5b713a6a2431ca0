// Package serializer projects models into their JSON response forms.
//
// Every entity has a lite form (scalar columns and foreign keys) and, where
// it owns relations, a full form. Full forms embed the lite form of the
// entity itself and only lite forms (or full forms built purely from lite
// forms) of related entities, so no projection type can reach itself.
package serializer

import (
	"time"

	"github.com/ikkim/foodreview-backend/internal/app/model"
)

// formatTime renders t as RFC 3339 in UTC, or nil for the zero time.
func formatTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

type UserLite struct {
	ID       uint    `json:"id"`
	Username *string `json:"username"`
	Email    string  `json:"email"`
}

type UserFull struct {
	UserLite
	GoogleID    *string          `json:"google_id"`
	CreatedAt   *string          `json:"created_at"`
	UpdatedAt   *string          `json:"updated_at"`
	Restaurants []RestaurantLite `json:"restaurants"`
	Reviews     []ReviewFull     `json:"reviews"`
}

type RestaurantLite struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Rating      *float64 `json:"rating"`
	ImageURL    *string  `json:"image_url"`
	PhoneNumber *string  `json:"phone_number"`
	Address     *string  `json:"address"`
}

type RestaurantFull struct {
	RestaurantLite
	Menus       []MenuFull     `json:"menus"`
	Reviews     []ReviewFull   `json:"reviews"`
	Favorites   []FavoriteFull `json:"favorites"`
	FavoritedBy []string       `json:"favorited_by"`
}

type MenuLite struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	RestaurantID uint   `json:"restaurant_id"`
}

type MenuFull struct {
	MenuLite
	Restaurant *RestaurantLite `json:"restaurant"`
	Dishes     []DishFull      `json:"dishes"`
}

type DishLite struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

type DishFull struct {
	DishLite
	MenuDishes []MenuDishLite `json:"menu_dishes"`
}

type MenuDishLite struct {
	ID     uint      `json:"id"`
	DishID uint      `json:"dish_id"`
	MenuID uint      `json:"menu_id"`
	Dish   *DishLite `json:"dish"`
	Menu   *MenuLite `json:"menu"`
}

type ReviewFull struct {
	ID           uint            `json:"id"`
	Content      string          `json:"content"`
	Rating       *float64        `json:"rating"`
	ReviewDate   *string         `json:"review_date"`
	UserID       uint            `json:"user_id"`
	RestaurantID uint            `json:"restaurant_id"`
	User         *UserLite       `json:"user"`
	Restaurant   *RestaurantLite `json:"restaurant"`
}

type FavoriteFull struct {
	ID           uint            `json:"id"`
	UserID       uint            `json:"user_id"`
	RestaurantID uint            `json:"restaurant_id"`
	CreatedAt    *string         `json:"created_at"`
	UpdatedAt    *string         `json:"updated_at"`
	User         *UserLite       `json:"user"`
	Restaurant   *RestaurantLite `json:"restaurant"`
}

func ToUserLite(u *model.User) UserLite {
	return UserLite{ID: u.ID, Username: u.Username, Email: u.Email}
}

func ToUserLites(users []model.User) []UserLite {
	out := make([]UserLite, 0, len(users))
	for i := range users {
		out = append(out, ToUserLite(&users[i]))
	}
	return out
}

// ToUserFull needs the user's favorite restaurants separately since they are
// derived through the favorites table rather than stored on the user.
func ToUserFull(u *model.User, favoriteRestaurants []model.Restaurant) UserFull {
	return UserFull{
		UserLite:    ToUserLite(u),
		GoogleID:    u.GoogleID,
		CreatedAt:   formatTime(u.CreatedAt),
		UpdatedAt:   formatTime(u.UpdatedAt),
		Restaurants: ToRestaurantLites(favoriteRestaurants),
		Reviews:     ToReviewFulls(u.Reviews),
	}
}

func ToRestaurantLite(r *model.Restaurant) RestaurantLite {
	return RestaurantLite{
		ID:          r.ID,
		Name:        r.Name,
		Rating:      r.Rating,
		ImageURL:    r.ImageURL,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
	}
}

func ToRestaurantLites(restaurants []model.Restaurant) []RestaurantLite {
	out := make([]RestaurantLite, 0, len(restaurants))
	for i := range restaurants {
		out = append(out, ToRestaurantLite(&restaurants[i]))
	}
	return out
}

func ToRestaurantFull(r *model.Restaurant) RestaurantFull {
	favoritedBy := make([]string, 0, len(r.Favorites))
	for i := range r.Favorites {
		if u := r.Favorites[i].User; u != nil && u.Username != nil {
			favoritedBy = append(favoritedBy, *u.Username)
		}
	}

	menus := make([]MenuFull, 0, len(r.Menus))
	for i := range r.Menus {
		menus = append(menus, ToMenuFull(&r.Menus[i]))
	}

	return RestaurantFull{
		RestaurantLite: ToRestaurantLite(r),
		Menus:          menus,
		Reviews:        ToReviewFulls(r.Reviews),
		Favorites:      ToFavoriteFulls(r.Favorites),
		FavoritedBy:    favoritedBy,
	}
}

func ToMenuLite(m *model.Menu) MenuLite {
	return MenuLite{ID: m.ID, Name: m.Name, RestaurantID: m.RestaurantID}
}

func ToMenuFull(m *model.Menu) MenuFull {
	full := MenuFull{
		MenuLite: ToMenuLite(m),
		Dishes:   make([]DishFull, 0, len(m.MenuDishes)),
	}
	if m.Restaurant != nil {
		lite := ToRestaurantLite(m.Restaurant)
		full.Restaurant = &lite
	}
	for _, d := range m.Dishes() {
		full.Dishes = append(full.Dishes, ToDishFull(d))
	}
	return full
}

func ToMenuFulls(menus []model.Menu) []MenuFull {
	out := make([]MenuFull, 0, len(menus))
	for i := range menus {
		out = append(out, ToMenuFull(&menus[i]))
	}
	return out
}

func ToDishLite(d *model.Dish) DishLite {
	return DishLite{ID: d.ID, Name: d.Name, Description: d.Description, Price: d.Price}
}

// ToDishFull lists every menu link of the dish. The dish side of each link
// is the dish itself.
func ToDishFull(d *model.Dish) DishFull {
	self := ToDishLite(d)
	links := make([]MenuDishLite, 0, len(d.MenuDishes))
	for i := range d.MenuDishes {
		link := ToMenuDishLite(&d.MenuDishes[i])
		dish := self
		link.Dish = &dish
		links = append(links, link)
	}
	return DishFull{DishLite: self, MenuDishes: links}
}

func ToDishFulls(dishes []model.Dish) []DishFull {
	out := make([]DishFull, 0, len(dishes))
	for i := range dishes {
		out = append(out, ToDishFull(&dishes[i]))
	}
	return out
}

func ToMenuDishLite(md *model.MenuDish) MenuDishLite {
	lite := MenuDishLite{ID: md.ID, DishID: md.DishID, MenuID: md.MenuID}
	if md.Dish != nil {
		d := ToDishLite(md.Dish)
		lite.Dish = &d
	}
	if md.Menu != nil {
		m := ToMenuLite(md.Menu)
		lite.Menu = &m
	}
	return lite
}

func ToReviewFull(r *model.Review) ReviewFull {
	full := ReviewFull{
		ID:           r.ID,
		Content:      r.Content,
		Rating:       r.Rating,
		ReviewDate:   formatTime(r.ReviewDate),
		UserID:       r.UserID,
		RestaurantID: r.RestaurantID,
	}
	if r.User != nil {
		u := ToUserLite(r.User)
		full.User = &u
	}
	if r.Restaurant != nil {
		rl := ToRestaurantLite(r.Restaurant)
		full.Restaurant = &rl
	}
	return full
}

func ToReviewFulls(reviews []model.Review) []ReviewFull {
	out := make([]ReviewFull, 0, len(reviews))
	for i := range reviews {
		out = append(out, ToReviewFull(&reviews[i]))
	}
	return out
}

func ToFavoriteFull(f *model.Favorite) FavoriteFull {
	full := FavoriteFull{
		ID:           f.ID,
		UserID:       f.UserID,
		RestaurantID: f.RestaurantID,
		CreatedAt:    formatTime(f.CreatedAt),
		UpdatedAt:    formatTime(f.UpdatedAt),
	}
	if f.User != nil {
		u := ToUserLite(f.User)
		full.User = &u
	}
	if f.Restaurant != nil {
		r := ToRestaurantLite(f.Restaurant)
		full.Restaurant = &r
	}
	return full
}

func ToFavoriteFulls(favorites []model.Favorite) []FavoriteFull {
	out := make([]FavoriteFull, 0, len(favorites))
	for i := range favorites {
		out = append(out, ToFavoriteFull(&favorites[i]))
	}
	return out
}
