package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/foodreview-backend/internal/app/serializer"
	"github.com/ikkim/foodreview-backend/internal/app/service"
)

type FavoriteController struct {
	favoriteService service.FavoriteService
}

func NewFavoriteController(favoriteService service.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

type AddFavoriteRequest struct {
	RestaurantID uint `json:"restaurant_id"`
}

// ListFavorites returns the caller's favorites
// GET /api/v1/favorites
func (ctrl *FavoriteController) ListFavorites(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	favorites, err := ctrl.favoriteService.List(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "list favorites")
		return
	}
	c.JSON(http.StatusOK, serializer.ToFavoriteFulls(favorites))
}

// AddFavorite POST /api/v1/favorites
func (ctrl *FavoriteController) AddFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req AddFavoriteRequest
	if !bindJSON(c, &req) {
		return
	}

	favorite, err := ctrl.favoriteService.Add(c.Request.Context(), userID, req.RestaurantID)
	if err != nil {
		respondServiceError(c, err, "create favorite")
		return
	}
	c.JSON(http.StatusCreated, serializer.ToFavoriteFull(favorite))
}

// RemoveFavorite DELETE /api/v1/favorites/:restaurant_id
func (ctrl *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	restaurantID, ok := parseID(c, "restaurant_id")
	if !ok {
		return
	}

	if err := ctrl.favoriteService.Remove(c.Request.Context(), userID, restaurantID); err != nil {
		respondServiceError(c, err, "delete favorite")
		return
	}
	c.Status(http.StatusNoContent)
}
