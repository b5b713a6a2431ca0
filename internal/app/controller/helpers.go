package controller

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/foodreview-backend/internal/app/model"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/internal/app/service"
	apperrors "github.com/ikkim/foodreview-backend/internal/errors"
	"github.com/ikkim/foodreview-backend/internal/middleware"
)

type serviceError struct {
	target  error
	status  int
	code    string
	message string
}

var serviceErrors = []serviceError{
	{service.ErrUserNotFound, http.StatusNotFound, apperrors.UserNotFound, "User not found"},
	{service.ErrRestaurantNotFound, http.StatusNotFound, apperrors.RestaurantNotFound, "Restaurant not found"},
	{service.ErrMenuNotFound, http.StatusNotFound, apperrors.MenuNotFound, "Menu not found"},
	{service.ErrDishNotFound, http.StatusNotFound, apperrors.DishNotFound, "Dish not found"},
	{service.ErrMenuDishNotFound, http.StatusNotFound, apperrors.DishNotFound, "Dish is not on this menu"},
	{service.ErrReviewNotFound, http.StatusNotFound, apperrors.ReviewNotFound, "Review not found"},
	{service.ErrFavoriteNotFound, http.StatusNotFound, apperrors.FavoriteNotFound, "Restaurant is not in favorites"},
	{service.ErrDishAlreadyOnMenu, http.StatusBadRequest, apperrors.DishAlreadyOnMenu, "Dish is already on this menu"},
	{service.ErrFavoriteAlreadyExists, http.StatusBadRequest, apperrors.FavoriteAlreadyExists, "Restaurant is already in favorites"},
	{service.ErrForbidden, http.StatusForbidden, apperrors.AuthzForbidden, "You are not allowed to modify this resource"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "Invalid username, email or password"},
	{service.ErrCurrentPasswordInvalid, http.StatusBadRequest, apperrors.AuthPasswordMismatch, "Current password is missing or incorrect"},
	{service.ErrOAuthTokenRequired, http.StatusBadRequest, apperrors.ValidationRequired, "access_token is required"},
	{service.ErrInvalidOAuthToken, http.StatusUnauthorized, apperrors.AuthInvalidOAuthToken, "Google rejected the access token"},
	{service.ErrEmailNotVerified, http.StatusUnauthorized, apperrors.AuthEmailNotVerified, "Google account email is not verified"},
	{service.ErrIdentityProviderUnavailable, http.StatusBadGateway, apperrors.InternalExternalAPI, "Could not reach Google. Please try again later"},
	{service.ErrNoSession, http.StatusUnauthorized, apperrors.AuthUnauthorized, "Login required"},
	{service.ErrStaleSession, http.StatusUnauthorized, apperrors.AuthSessionExpired, "Session is no longer valid. Please log in again"},
}

// respondServiceError writes the response for an error returned by a
// service. operation ("create menu", "update user") shapes storage messages.
func respondServiceError(c *gin.Context, err error, operation string) {
	log := middleware.GetLoggerFromContext(c)

	var verr *model.ValidationError
	if stderrors.As(err, &verr) {
		log.Warn("Validation failed", map[string]interface{}{
			"operation": operation,
			"field":     verr.Field,
			"error":     verr.Message,
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, verr.Message)
		return
	}

	if stderrors.Is(err, repository.ErrConstraintViolation) {
		info := apperrors.ParseError(err, operation)
		log.Warn("Constraint violation", map[string]interface{}{
			"operation": operation,
			"code":      info.Code,
			"error":     err.Error(),
		})
		apperrors.BadRequest(c, info.Code, info.Message)
		return
	}

	for _, se := range serviceErrors {
		if stderrors.Is(err, se.target) {
			if se.status >= http.StatusInternalServerError {
				log.Error("Upstream failure", err, map[string]interface{}{
					"operation": operation,
				})
			}
			apperrors.RespondWithError(c, se.status, se.code, se.message)
			return
		}
	}

	log.Error("Unhandled service error", err, map[string]interface{}{
		"operation": operation,
	})
	info := apperrors.ParseError(err, operation)
	apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
}

// parseID reads a positive integer path parameter. On failure it writes a
// 400 and returns false.
func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid "+param)
		return 0, false
	}
	return uint(id), true
}

// parseOptionalID reads a positive integer query parameter. A missing
// parameter yields nil.
func parseOptionalID(c *gin.Context, name string) (*uint, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid "+name)
		return nil, false
	}
	v := uint(id)
	return &v, true
}

// bindJSON decodes the request body into req. On failure it writes a 400
// and returns false.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Invalid request body", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

// currentUserID returns the session user. Routes using it sit behind
// AuthMiddleware.Authenticate, so a missing user is answered with 401.
func currentUserID(c *gin.Context) (uint, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apperrors.Unauthorized(c, "Login required")
	}
	return userID, ok
}
