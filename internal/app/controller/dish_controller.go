package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/foodreview-backend/internal/app/serializer"
	"github.com/ikkim/foodreview-backend/internal/app/service"
)

type DishController struct {
	dishService service.DishService
}

func NewDishController(dishService service.DishService) *DishController {
	return &DishController{dishService: dishService}
}

// ListDishes GET /api/v1/dishes
func (ctrl *DishController) ListDishes(c *gin.Context) {
	dishes, err := ctrl.dishService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list dishes")
		return
	}
	c.JSON(http.StatusOK, serializer.ToDishFulls(dishes))
}

// GetDish GET /api/v1/dishes/:id
func (ctrl *DishController) GetDish(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	dish, err := ctrl.dishService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get dish")
		return
	}
	c.JSON(http.StatusOK, serializer.ToDishFull(dish))
}

// CreateDish POST /api/v1/dishes
func (ctrl *DishController) CreateDish(c *gin.Context) {
	var req service.CreateDishInput
	if !bindJSON(c, &req) {
		return
	}

	dish, err := ctrl.dishService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "create dish")
		return
	}
	c.JSON(http.StatusCreated, serializer.ToDishFull(dish))
}

// UpdateDish PATCH /api/v1/dishes/:id
func (ctrl *DishController) UpdateDish(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateDishInput
	if !bindJSON(c, &req) {
		return
	}

	dish, err := ctrl.dishService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "update dish")
		return
	}
	c.JSON(http.StatusOK, serializer.ToDishFull(dish))
}

// DeleteDish DELETE /api/v1/dishes/:id
func (ctrl *DishController) DeleteDish(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.dishService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete dish")
		return
	}
	c.Status(http.StatusNoContent)
}
