package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/foodreview-backend/internal/app/serializer"
	"github.com/ikkim/foodreview-backend/internal/app/service"
)

type RestaurantController struct {
	restaurantService service.RestaurantService
}

func NewRestaurantController(restaurantService service.RestaurantService) *RestaurantController {
	return &RestaurantController{restaurantService: restaurantService}
}

// ListRestaurants GET /api/v1/restaurants
func (ctrl *RestaurantController) ListRestaurants(c *gin.Context) {
	restaurants, err := ctrl.restaurantService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list restaurants")
		return
	}
	c.JSON(http.StatusOK, serializer.ToRestaurantLites(restaurants))
}

// GetRestaurant GET /api/v1/restaurants/:id
func (ctrl *RestaurantController) GetRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	restaurant, err := ctrl.restaurantService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get restaurant")
		return
	}
	c.JSON(http.StatusOK, serializer.ToRestaurantFull(restaurant))
}

// CreateRestaurant POST /api/v1/restaurants
func (ctrl *RestaurantController) CreateRestaurant(c *gin.Context) {
	var req service.CreateRestaurantInput
	if !bindJSON(c, &req) {
		return
	}

	restaurant, err := ctrl.restaurantService.Create(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "create restaurant")
		return
	}
	c.JSON(http.StatusCreated, serializer.ToRestaurantFull(restaurant))
}

// UpdateRestaurant PATCH /api/v1/restaurants/:id
func (ctrl *RestaurantController) UpdateRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateRestaurantInput
	if !bindJSON(c, &req) {
		return
	}

	restaurant, err := ctrl.restaurantService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondServiceError(c, err, "update restaurant")
		return
	}
	c.JSON(http.StatusOK, serializer.ToRestaurantFull(restaurant))
}

// DeleteRestaurant DELETE /api/v1/restaurants/:id
func (ctrl *RestaurantController) DeleteRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.restaurantService.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "delete restaurant")
		return
	}
	c.Status(http.StatusNoContent)
}
