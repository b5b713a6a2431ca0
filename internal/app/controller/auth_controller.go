package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/foodreview-backend/internal/app/serializer"
	"github.com/ikkim/foodreview-backend/internal/app/service"
	apperrors "github.com/ikkim/foodreview-backend/internal/errors"
	"github.com/ikkim/foodreview-backend/internal/middleware"
)

type AuthController struct {
	authService    service.AuthService
	userService    service.UserService
	authMiddleware *middleware.AuthMiddleware
}

func NewAuthController(
	authService service.AuthService,
	userService service.UserService,
	authMiddleware *middleware.AuthMiddleware,
) *AuthController {
	return &AuthController{
		authService:    authService,
		userService:    userService,
		authMiddleware: authMiddleware,
	}
}

type LoginRequest struct {
	Login    string `json:"login"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// identifier accepts the login name under any of the three keys.
func (r LoginRequest) identifier() string {
	switch {
	case r.Login != "":
		return r.Login
	case r.Username != "":
		return r.Username
	}
	return r.Email
}

type GoogleLoginRequest struct {
	AccessToken string `json:"access_token"`
}

// Signup creates an account and logs it in
// POST /api/v1/auth/signup
func (ctrl *AuthController) Signup(c *gin.Context) {
	var req service.SignupInput
	if !bindJSON(c, &req) {
		return
	}

	detail, err := ctrl.authService.Signup(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "create user")
		return
	}
	if !ctrl.startSession(c, detail.User.ID) {
		return
	}

	c.JSON(http.StatusCreated, serializer.ToUserFull(detail.User, detail.FavoriteRestaurants))
}

// Login authenticates with username or email and password
// POST /api/v1/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	detail, err := ctrl.authService.Login(c.Request.Context(), req.identifier(), req.Password)
	if err != nil {
		respondServiceError(c, err, "login")
		return
	}
	if !ctrl.startSession(c, detail.User.ID) {
		return
	}

	c.JSON(http.StatusOK, serializer.ToUserFull(detail.User, detail.FavoriteRestaurants))
}

// GoogleLogin exchanges a Google access token for a session
// POST /api/v1/auth/google
func (ctrl *AuthController) GoogleLogin(c *gin.Context) {
	var req GoogleLoginRequest
	if !bindJSON(c, &req) {
		return
	}

	detail, err := ctrl.authService.LoginWithGoogle(c.Request.Context(), req.AccessToken)
	if err != nil {
		respondServiceError(c, err, "google login")
		return
	}
	if !ctrl.startSession(c, detail.User.ID) {
		return
	}

	c.JSON(http.StatusOK, serializer.ToUserFull(detail.User, detail.FavoriteRestaurants))
}

// Logout ends the session
// DELETE /api/v1/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	if err := ctrl.authMiddleware.EndSession(c); err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to end session", err)
		apperrors.InternalError(c, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// Session returns the logged-in user
// GET /api/v1/auth/session
func (ctrl *AuthController) Session(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	detail, err := ctrl.userService.Get(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "get user")
		return
	}
	c.JSON(http.StatusOK, serializer.ToUserFull(detail.User, detail.FavoriteRestaurants))
}

func (ctrl *AuthController) startSession(c *gin.Context, userID uint) bool {
	if err := ctrl.authMiddleware.StartSession(c, userID); err != nil {
		middleware.GetLoggerFromContext(c).Error("Failed to start session", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.InternalError(c, "")
		return false
	}
	return true
}
