package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/foodreview-backend/internal/app/serializer"
	"github.com/ikkim/foodreview-backend/internal/app/service"
	"github.com/ikkim/foodreview-backend/internal/middleware"
)

type UserController struct {
	userService    service.UserService
	authMiddleware *middleware.AuthMiddleware
}

func NewUserController(userService service.UserService, authMiddleware *middleware.AuthMiddleware) *UserController {
	return &UserController{
		userService:    userService,
		authMiddleware: authMiddleware,
	}
}

// ListUsers GET /api/v1/users
func (ctrl *UserController) ListUsers(c *gin.Context) {
	users, err := ctrl.userService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "list users")
		return
	}
	c.JSON(http.StatusOK, serializer.ToUserLites(users))
}

// GetUser GET /api/v1/users/:id
func (ctrl *UserController) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	detail, err := ctrl.userService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "get user")
		return
	}
	c.JSON(http.StatusOK, serializer.ToUserFull(detail.User, detail.FavoriteRestaurants))
}

// UpdateUser PATCH /api/v1/users/:id
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req service.UpdateUserInput
	if !bindJSON(c, &req) {
		return
	}

	detail, err := ctrl.userService.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		respondServiceError(c, err, "update user")
		return
	}
	c.JSON(http.StatusOK, serializer.ToUserFull(detail.User, detail.FavoriteRestaurants))
}

// DeleteUser deletes the caller's own account and ends the session
// DELETE /api/v1/users/:id
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := ctrl.userService.Delete(c.Request.Context(), userID, id); err != nil {
		respondServiceError(c, err, "delete user")
		return
	}
	if err := ctrl.authMiddleware.EndSession(c); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to end session of deleted user", map[string]interface{}{
			"user_id": id,
			"error":   err.Error(),
		})
	}
	c.Status(http.StatusNoContent)
}
