package errors

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrorInfo 에러 정보 구조
type ErrorInfo struct {
	Code    string // 에러 코드 (codes.go 참조)
	Message string // 사용자 친화적 메시지
}

// ParseError turns a storage error into a client-facing code and message.
// context names the operation ("create restaurant", "update user") and only
// shapes fallback messages.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{
			Code:    InternalServerError,
			Message: getDefaultErrorMessage(context),
		}
	}

	errStrLower := strings.ToLower(err.Error())

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrorInfo{
			Code:    ResourceNotFound,
			Message: getNotFoundMessage(context),
		}
	}

	// Unique (postgres 23505, sqlite UNIQUE constraint failed)
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(errStrLower, "duplicate key") ||
		strings.Contains(errStrLower, "unique constraint") {
		return parseDuplicateKeyError(errStrLower)
	}

	// Foreign key (postgres 23503, sqlite FOREIGN KEY constraint failed)
	if errors.Is(err, gorm.ErrForeignKeyViolated) || strings.Contains(errStrLower, "foreign key") {
		return parseForeignKeyError(errStrLower, context)
	}

	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "timeout") {
		return ErrorInfo{
			Code:    InternalExternalAPI,
			Message: "Could not reach an upstream service. Please try again later",
		}
	}

	return ErrorInfo{
		Code:    InternalServerError,
		Message: getDefaultErrorMessage(context),
	}
}

// parseDuplicateKeyError Unique constraint 위반 에러 파싱
// 복합 인덱스(favorites, menu_dishes)를 단일 컬럼보다 먼저 확인
func parseDuplicateKeyError(errLower string) ErrorInfo {
	switch {
	case strings.Contains(errLower, "favorites"):
		return ErrorInfo{Code: FavoriteAlreadyExists, Message: "Restaurant is already in favorites"}
	case strings.Contains(errLower, "menu_dishes"):
		return ErrorInfo{Code: DishAlreadyOnMenu, Message: "Dish is already on this menu"}
	case strings.Contains(errLower, "email"):
		return ErrorInfo{Code: AuthEmailAlreadyExists, Message: "Email is already in use"}
	case strings.Contains(errLower, "username"):
		return ErrorInfo{Code: AuthUsernameExists, Message: "Username is already taken"}
	case strings.Contains(errLower, "google_id"):
		return ErrorInfo{Code: ResourceAlreadyExists, Message: "Google account is already linked to another user"}
	}
	return ErrorInfo{Code: ResourceAlreadyExists, Message: "Resource already exists"}
}

// parseForeignKeyError Foreign key constraint 위반 에러 파싱
// sqlite는 제약 이름을 알려주지 않으므로 context로 보완
func parseForeignKeyError(errLower string, context string) ErrorInfo {
	contextLower := strings.ToLower(context)
	switch {
	case strings.Contains(errLower, "dish"), strings.Contains(contextLower, "dish"):
		return ErrorInfo{Code: ResourceConstraint, Message: "Referenced dish does not exist"}
	case strings.Contains(errLower, "restaurant"), strings.Contains(contextLower, "menu"),
		strings.Contains(contextLower, "review"), strings.Contains(contextLower, "favorite"):
		return ErrorInfo{Code: ResourceConstraint, Message: "Referenced restaurant does not exist"}
	case strings.Contains(errLower, "user"):
		return ErrorInfo{Code: ResourceConstraint, Message: "Referenced user does not exist"}
	}
	return ErrorInfo{Code: ResourceConstraint, Message: "Referenced resource does not exist"}
}

// getNotFoundMessage context에 따른 Not Found 메시지
func getNotFoundMessage(context string) string {
	contextLower := strings.ToLower(context)

	for _, entity := range []struct{ key, message string }{
		{"restaurant", "Restaurant not found"},
		{"menu", "Menu not found"},
		{"dish", "Dish not found"},
		{"review", "Review not found"},
		{"favorite", "Favorite not found"},
		{"user", "User not found"},
	} {
		if strings.Contains(contextLower, entity.key) {
			return entity.message
		}
	}
	return "Resource not found"
}

// getDefaultErrorMessage context에 따른 기본 에러 메시지
func getDefaultErrorMessage(context string) string {
	contextLower := strings.ToLower(context)

	switch {
	case strings.Contains(contextLower, "create"):
		return "Failed to create. Please try again later"
	case strings.Contains(contextLower, "update"):
		return "Failed to update. Please try again later"
	case strings.Contains(contextLower, "delete"):
		return "Failed to delete. Please try again later"
	}
	return "Something went wrong. Please try again later"
}

// ParseAndRespond 에러를 파싱하여 응답 반환 (헬퍼 함수)
func ParseAndRespond(c interface{ JSON(int, interface{}) }, statusCode int, err error, context string) {
	errorInfo := ParseError(err, context)
	c.JSON(statusCode, ErrorResponse{
		Error:   errorInfo.Code,
		Message: errorInfo.Message,
	})
}
