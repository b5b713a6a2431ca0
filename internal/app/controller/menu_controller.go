package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/foodreview-backend/internal/app/serializer"
	"github.com/ikkim/foodreview-backend/internal/app/service"
)

type MenuController struct {
	menuService service.MenuService
}

func NewMenuController(menuService service.MenuService) *MenuController {
	return &MenuController{menuService: menuService}
}

type AddDishRequest struct {
	DishID uint `json:"dish_id"`
}

// ListMenus GET /api/v1/menus?restaurant_id=
func (ctrl *MenuController) ListMenus(c *gin.Context) {
	restaurantID, ok := parseOptionalID(c, "restaurant_id")
	if !ok {
		return
	}

	menus, err := ctrl.menuService.List(c.Request.Context(), restaurantID)
	if err != nil {
		respondServiceError(c, err, "list menus")
		return
	}
	c.JSON(http.StatusOK, serializer.ToMenuFulls(menus))
}

// GetMenu GET /api/v1/menus/:id
func (ctrl *MenuController) GetMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	menu, err := ctrl.menuService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get menu")
		return
	}
	c.JSON(http.StatusOK, serializer.ToMenuFull(menu))
}

// CreateMenu POST /api/v1/menus
func (ctrl *MenuController) CreateMenu(c *gin.Context) {
	var req service.CreateMenuInput
	if !bindJSON(c, &req) {
		return
	}

	menu, err := ctrl.menuService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "create menu")
		return
	}
	c.JSON(http.StatusCreated, serializer.ToMenuFull(menu))
}

// UpdateMenu PATCH /api/v1/menus/:id
func (ctrl *MenuController) UpdateMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateMenuInput
	if !bindJSON(c, &req) {
		return
	}

	menu, err := ctrl.menuService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "update menu")
		return
	}
	c.JSON(http.StatusOK, serializer.ToMenuFull(menu))
}

// DeleteMenu DELETE /api/v1/menus/:id
func (ctrl *MenuController) DeleteMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.menuService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete menu")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddDish POST /api/v1/menus/:id/dishes
func (ctrl *MenuController) AddDish(c *gin.Context) {
	menuID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req AddDishRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := ctrl.menuService.AddDish(c.Request.Context(), menuID, req.DishID)
	if err != nil {
		respondServiceError(c, err, "add dish to menu")
		return
	}
	c.JSON(http.StatusCreated, serializer.ToMenuDishLite(link))
}

// RemoveDish DELETE /api/v1/menus/:id/dishes/:dish_id
func (ctrl *MenuController) RemoveDish(c *gin.Context) {
	menuID, ok := parseID(c, "id")
	if !ok {
		return
	}
	dishID, ok := parseID(c, "dish_id")
	if !ok {
		return
	}

	if err := ctrl.menuService.RemoveDish(c.Request.Context(), menuID, dishID); err != nil {
		respondServiceError(c, err, "remove dish from menu")
		return
	}
	c.Status(http.StatusNoContent)
}
